package geom

import (
	"errors"
	"fmt"
	"math"
)

// UnitsPerInch is the number of PDF user-space units per inch.
const UnitsPerInch = 72.0

var (
	// ErrDegenerateRect is returned when a rectangle has no usable area
	ErrDegenerateRect = errors.New("rectangle has zero width or height")

	// ErrInvalidRotation is returned for rotations that are not a
	// multiple of a quarter turn
	ErrInvalidRotation = errors.New("rotation is not a multiple of 90 degrees")
)

// Rect represents an axis-aligned rectangle in PDF user space.
// (Llx, Lly) is the lower-left corner and (Urx, Ury) the upper-right.
type Rect struct {
	Llx, Lly float64
	Urx, Ury float64
}

// NewRect creates a rectangle from two corner points, normalizing the
// coordinate order so the lower-left corner really is lower-left.
func NewRect(llx, lly, urx, ury float64) Rect {
	return Rect{
		Llx: math.Min(llx, urx),
		Lly: math.Min(lly, ury),
		Urx: math.Max(llx, urx),
		Ury: math.Max(lly, ury),
	}
}

// Width returns the horizontal extent in user units
func (r Rect) Width() float64 {
	return r.Urx - r.Llx
}

// Height returns the vertical extent in user units
func (r Rect) Height() float64 {
	return r.Ury - r.Lly
}

// Area returns the area in square user units
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// IsEmpty returns true if the rectangle has zero width or height
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Contains checks if another rectangle lies fully inside this one
func (r Rect) Contains(other Rect) bool {
	return other.Llx >= r.Llx && other.Urx <= r.Urx &&
		other.Lly >= r.Lly && other.Ury <= r.Ury
}

// String formats the rectangle in PDF array order [llx lly urx ury]
func (r Rect) String() string {
	return fmt.Sprintf("[%.2f %.2f %.2f %.2f]", r.Llx, r.Lly, r.Urx, r.Ury)
}

// Rotation represents a page viewing rotation as one of the four
// quarter turns, in clockwise degrees.
type Rotation int

const (
	Rotate0   Rotation = 0
	Rotate90  Rotation = 90
	Rotate180 Rotation = 180
	Rotate270 Rotation = 270
)

// DecodeRotation normalizes a /Rotate value to a quarter turn.
// Negative values and values of 360 or more wrap around, so -90
// decodes to Rotate270. Values that are not a multiple of 90 return
// ErrInvalidRotation.
func DecodeRotation(degrees int) (Rotation, error) {
	if degrees%90 != 0 {
		return Rotate0, fmt.Errorf("%w: %d", ErrInvalidRotation, degrees)
	}
	degrees %= 360
	if degrees < 0 {
		degrees += 360
	}
	return Rotation(degrees), nil
}

// SwapsAxes returns true for rotations that display the page
// sideways, so that the rendered width comes from the user-space
// height and vice versa.
func (r Rotation) SwapsAxes() bool {
	return r == Rotate90 || r == Rotate270
}

// String returns the rotation in degrees, e.g. "90°"
func (r Rotation) String() string {
	return fmt.Sprintf("%d°", int(r))
}

// ScaledDims computes the integer pixel dimensions of a rectangle
// rendered at the given scale factor and output resolution in DPI.
//
// The user-space extents are swapped first when the rotation displays
// the page sideways, then each extent is converted to inches, scaled,
// multiplied by the resolution, and truncated toward zero. A 100x200
// unit rectangle at scale 0.5 and 72 DPI yields exactly 50x100
// pixels; fractional results always round down.
//
// A degenerate rectangle returns ErrDegenerateRect; a non-positive
// scale or resolution is rejected as well, instead of silently
// producing a zero-pixel image.
func ScaledDims(r Rect, rot Rotation, scale, resolution float64) (width, height int, err error) {
	if r.IsEmpty() {
		return 0, 0, fmt.Errorf("%w: %s", ErrDegenerateRect, r)
	}
	if scale <= 0 {
		return 0, 0, fmt.Errorf("scale must be positive, got %g", scale)
	}
	if resolution <= 0 {
		return 0, 0, fmt.Errorf("resolution must be positive, got %g", resolution)
	}

	w, h := r.Width(), r.Height()
	if rot.SwapsAxes() {
		w, h = h, w
	}

	width = int(w / UnitsPerInch * scale * resolution)
	height = int(h / UnitsPerInch * scale * resolution)
	return width, height, nil
}

// TopHalf returns the half of a rectangle that a viewer sees at the
// top of the page once the rotation is applied. The input is never
// modified; the bisected axis depends on the rotation:
//
//   - 0°:   upper half (Lly raised to the vertical midpoint)
//   - 90°:  left half  (Urx lowered to the horizontal midpoint)
//   - 180°: lower half (Ury lowered to the vertical midpoint)
//   - 270°: right half (Llx raised to the horizontal midpoint)
//
// The unbisected axis keeps its full extent. Rotations outside the
// four quarter turns are treated as 0°.
func TopHalf(r Rect, rot Rotation) Rect {
	midX := (r.Llx + r.Urx) / 2
	midY := (r.Lly + r.Ury) / 2

	switch rot {
	case Rotate90:
		return Rect{Llx: r.Llx, Lly: r.Lly, Urx: midX, Ury: r.Ury}
	case Rotate180:
		return Rect{Llx: r.Llx, Lly: r.Lly, Urx: r.Urx, Ury: midY}
	case Rotate270:
		return Rect{Llx: midX, Lly: r.Lly, Urx: r.Urx, Ury: r.Ury}
	default:
		return Rect{Llx: r.Llx, Lly: midY, Urx: r.Urx, Ury: r.Ury}
	}
}
