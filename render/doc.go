// Package render wraps the PDF rendering engine behind a small,
// scoped API for turning document pages into raster images.
//
// # Documents and Pages
//
// A [Document] owns the engine handle and the underlying file. Open
// one with [Open] (or [NewDocument] for a caller-owned source), use
// it, and release it with [Document.Close]. Close is idempotent:
// calling it a second time is a no-op.
//
//	doc, err := render.Open("report.pdf")
//	if err != nil {
//	    return err
//	}
//	defer doc.Close()
//
//	page, err := doc.Page(1) // pages are 1-indexed
//
// The [Page] type exposes the geometry raster export cares about:
// the crop box (falling back to the media box when the page has
// none), the viewing rotation, and the rotation-aware display size.
//
// # Rendering
//
// [Page.Render] produces an [image.Image] according to an
// [ImageOptions] bundle: target pixel dimensions or resolution, an
// optional user-space crop region, color or grayscale output, and
// whether annotations are drawn. [Export] combines rendering with
// encoding to a file, picking JPEG, PNG or TIFF from the output
// filename extension.
//
// # Engine configuration
//
// [Configure] applies process-wide engine settings: the metered
// license key and the console log level. It is optional; without it
// the engine runs unlicensed and quiet.
package render
