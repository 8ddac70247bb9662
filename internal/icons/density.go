package icons

// Density is an Android screen density bucket and the launcher icon size it
// requires, in pixels.
type Density struct {
	Name string
	Size int
}

// Dir returns the resource directory name for the bucket, e.g. "mipmap-hdpi".
func (d Density) Dir() string {
	return "mipmap-" + d.Name
}

// Fixed by the platform, do not reorder.
var densities = [...]Density{
	{"mdpi", 48},
	{"hdpi", 72},
	{"xhdpi", 96},
	{"xxhdpi", 144},
	{"xxxhdpi", 192},
}

// Densities returns a copy of the launcher density table in mdpi..xxxhdpi order.
func Densities() []Density {
	out := make([]Density, len(densities))
	copy(out, densities[:])
	return out
}

// DefaultPercent is the share of the canvas the logo occupies.
const DefaultPercent = 85

// IconSize is floor(size * percent / 100).
func IconSize(size, percent int) int {
	return size * percent / 100
}

// Offset centers an iconSize square on a size square, rounding down.
func Offset(size, iconSize int) int {
	return (size - iconSize) / 2
}
