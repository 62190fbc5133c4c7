package render

import (
	"github.com/tsawler/imago/geom"
)

const (
	// DefaultResolution is the output resolution in DPI used when an
	// ImageOptions bundle does not name one. 72 DPI maps one user-space
	// unit to one pixel.
	DefaultResolution = 72.0

	// DefaultQuality is the JPEG quality used when none is given.
	DefaultQuality = 90
)

// ColorMode selects the color space of rendered output.
type ColorMode int

const (
	// Color renders in full RGB color.
	Color ColorMode = iota
	// Grayscale renders in 8-bit grayscale.
	Grayscale
)

// String returns the string representation of the color mode.
func (m ColorMode) String() string {
	switch m {
	case Grayscale:
		return "grayscale"
	default:
		return "color"
	}
}

// ImageOptions bundles the parameters of a single render. The zero
// value renders the whole page in color at 72 DPI with annotations
// omitted.
//
// Sizing rules:
//   - Width > 0: the raster is Width pixels wide; Height 0 lets the
//     engine derive the height from the page aspect ratio, Height > 0
//     rescales to exactly Width x Height.
//   - Width == 0: both dimensions are computed from the rendered area
//     and the resolution, truncating fractional pixels.
type ImageOptions struct {
	// Width is the target pixel width. Zero derives it from the
	// resolution.
	Width int

	// Height is the target pixel height. Zero derives it from the
	// aspect ratio (or the resolution when Width is zero too).
	Height int

	// XResolution and YResolution are the output resolutions in DPI,
	// applied per axis when deriving pixel dimensions. Zero values
	// fall back to DefaultResolution; a zero YResolution follows
	// XResolution.
	XResolution float64
	YResolution float64

	// Mode selects color or grayscale output.
	Mode ColorMode

	// Region restricts rendering to a sub-rectangle of the page in
	// user space. Nil renders the page's own boxes.
	Region *geom.Rect

	// IncludeAnnotations draws page annotations into the raster.
	IncludeAnnotations bool

	// Quality is the JPEG quality (1-100) used by Export. Zero means
	// DefaultQuality. PNG and TIFF ignore it.
	Quality int
}

// targetDims computes the derived pixel dimensions for rendering box
// under rot at the bundle's resolutions.
func (o ImageOptions) targetDims(box geom.Rect, rot geom.Rotation) (int, int, error) {
	xres := o.XResolution
	if xres == 0 {
		xres = DefaultResolution
	}
	yres := o.YResolution
	if yres == 0 {
		yres = xres
	}

	width, height, err := geom.ScaledDims(box, rot, 1.0, xres)
	if err != nil {
		return 0, 0, err
	}
	if yres != xres {
		_, height, err = geom.ScaledDims(box, rot, 1.0, yres)
		if err != nil {
			return 0, 0, err
		}
	}
	return width, height, nil
}
