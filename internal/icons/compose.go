package icons

import (
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Compose scales src to percent of size (aspect ratio is not kept) and
// alpha-blends it onto the center of an opaque white size×size canvas.
func Compose(src image.Image, size, percent int) *image.RGBA {
	iconSize := IconSize(size, percent)
	off := Offset(size, iconSize)

	canvas := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	if iconSize <= 0 {
		return canvas
	}

	icon := imaging.Resize(src, iconSize, iconSize, imaging.Lanczos)
	r := image.Rect(off, off, off+iconSize, off+iconSize)
	draw.Draw(canvas, r, icon, icon.Bounds().Min, draw.Over)
	return canvas
}
