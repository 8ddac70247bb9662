package icons

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// FileName is the launcher icon written into every mipmap directory.
const FileName = "ic_launcher.png"

// IconPath is where the icon for d lands under the resource root.
func IconPath(resDir string, d Density) string {
	return filepath.Join(resDir, d.Dir(), FileName)
}

// MissingSourceError means the source logo is absent or cannot be decoded.
// Nothing is written when Generate returns it.
type MissingSourceError struct {
	Path string
	Err  error
}

func (e *MissingSourceError) Error() string {
	return fmt.Sprintf("source icon %s: %v", e.Path, e.Err)
}

func (e *MissingSourceError) Unwrap() error { return e.Err }

// Result is the outcome for a single density.
type Result struct {
	Density Density
	Path    string
	Err     error
}

// Report collects one Result per table entry, in table order.
type Report struct {
	Results []Result
}

func (r *Report) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if res.Err == nil {
			n++
		}
	}
	return n
}

func (r *Report) Failed() int {
	return len(r.Results) - r.Succeeded()
}

// OK reports whether every density was written.
func (r *Report) OK() bool {
	return r.Failed() == 0
}

// Generator renders launcher icons from a single source logo.
type Generator struct {
	// Percent of the canvas edge the logo covers. Zero means DefaultPercent.
	Percent int
	// Encoder defaults to best compression.
	Encoder *png.Encoder
	// OnResult, if set, is called after each density is processed.
	OnResult func(Result)
}

// Generate uses a Generator with default settings.
func Generate(sourcePath, outputRoot string, table []Density) (*Report, error) {
	return (&Generator{}).Generate(sourcePath, outputRoot, table)
}

// Generate writes outputRoot/mipmap-<density>/ic_launcher.png for every
// entry of table. A failure on one density is recorded in the report and
// does not stop the others; only a missing or unreadable source is
// returned as an error.
func (g *Generator) Generate(sourcePath, outputRoot string, table []Density) (*Report, error) {
	src, err := loadSource(sourcePath)
	if err != nil {
		return nil, err
	}

	report := &Report{Results: make([]Result, 0, len(table))}
	for _, d := range table {
		path := IconPath(outputRoot, d)
		res := Result{Density: d, Path: path}
		if err := g.render(src, d, path); err != nil {
			res.Err = fmt.Errorf("%s: %w", d.Name, err)
		}
		report.Results = append(report.Results, res)
		if g.OnResult != nil {
			g.OnResult(res)
		}
	}
	return report, nil
}

func (g *Generator) render(src image.Image, d Density, path string) error {
	if d.Size <= 0 {
		return fmt.Errorf("invalid size %d", d.Size)
	}
	percent := g.Percent
	if percent == 0 {
		percent = DefaultPercent
	}
	img := Compose(src, d.Size, percent)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}
	return writePNG(path, img, g.encoder())
}

func (g *Generator) encoder() *png.Encoder {
	if g.Encoder != nil {
		return g.Encoder
	}
	return &png.Encoder{CompressionLevel: png.BestCompression}
}

func loadSource(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, &MissingSourceError{Path: path, Err: err}
	}
	return img, nil
}

// writePNG encodes into a temp file next to path and renames it into place,
// so a failed encode never clobbers an existing icon.
func writePNG(path string, img image.Image, enc *png.Encoder) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".ic_launcher-*.png")
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	tmp := f.Name()
	if err := enc.Encode(f, img); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close: %w", err)
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
