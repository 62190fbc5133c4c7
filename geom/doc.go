// Package geom provides the page geometry used by raster export.
//
// All coordinates are in PDF user space, where one unit is 1/72 of an
// inch and the origin sits at the lower-left corner of the page.
//
// # Rectangles
//
// The [Rect] type is an axis-aligned rectangle in user space. Use
// [NewRect] to build one; it normalizes the corner order so that
// (Llx, Lly) is always the lower-left corner:
//
//	r := geom.NewRect(0, 0, 612, 792) // US Letter
//	r.Width()                         // 612
//
// # Rotation
//
// PDF pages carry an optional /Rotate entry giving the clockwise
// viewing rotation in degrees. [DecodeRotation] normalizes any
// multiple of 90 (including negatives and values >= 360) to one of
// the four quarter turns:
//
//	rot, _ := geom.DecodeRotation(-90) // Rotate270
//	rot.SwapsAxes()                    // true
//
// # Export geometry
//
// [ScaledDims] converts a rectangle to integer pixel dimensions for a
// given scale factor and output resolution, swapping the axes for
// quarter turns that display the page sideways. [TopHalf] bisects a
// rectangle so that the returned half is the one a viewer sees at the
// top of the rotated page.
package geom
