package imago

import (
	"fmt"
	"image"

	"github.com/tsawler/imago/geom"
	"github.com/tsawler/imago/ocr"
	"github.com/tsawler/imago/render"
)

// Exporter provides a fluent interface for exporting PDF pages as
// images. Each configuration method returns a new Exporter instance,
// so a partially configured Exporter can be reused as a template
// without later calls affecting it.
type Exporter struct {
	// Source
	filename string

	// Document handle
	doc *render.Document

	// Document lifecycle
	ownsDoc   bool // true if we opened the document and should close it
	docOpened bool // true if doc is ready for use

	// Configuration
	options ExportOptions

	// Error encountered during configuration (fail-fast)
	err error
}

// clone creates a copy of the Exporter for immutable chaining.
func (e *Exporter) clone() *Exporter {
	return &Exporter{
		filename:  e.filename,
		doc:       e.doc,
		ownsDoc:   e.ownsDoc,
		docOpened: e.docOpened,
		options:   e.options.clone(),
		err:       e.err,
	}
}

// ensureDoc opens the document if it has not been opened yet.
func (e *Exporter) ensureDoc() error {
	if e.docOpened {
		return nil
	}

	if e.filename == "" {
		return fmt.Errorf("no PDF source specified")
	}

	doc, err := render.Open(e.filename)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}

	e.doc = doc
	e.ownsDoc = true
	e.docOpened = true

	return nil
}

// Close releases the document held by the Exporter, if the Exporter
// owns it. It is safe to call Close multiple times. Exporters built
// with FromDocument never close the caller's document.
func (e *Exporter) Close() error {
	if e.ownsDoc && e.doc != nil {
		err := e.doc.Close()
		e.doc = nil
		e.ownsDoc = false
		e.docOpened = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (these return a new Exporter instance)
// ============================================================================

// Page selects which page to export (1-indexed). The default is
// page 1.
func (e *Exporter) Page(n int) *Exporter {
	newExp := e.clone()
	newExp.options.page = n
	return newExp
}

// DPI sets the output resolution in dots per inch for exports that
// derive their pixel dimensions from the physical page size. The
// default is 72, which maps one PDF unit to one pixel.
func (e *Exporter) DPI(dpi float64) *Exporter {
	newExp := e.clone()
	if dpi <= 0 {
		newExp.err = fmt.Errorf("dpi must be positive, got %g", dpi)
		return newExp
	}
	newExp.options.dpi = dpi
	return newExp
}

// Quality sets the JPEG quality, from 1 to 100. The default is 90.
// The setting has no effect on PNG or TIFF output.
func (e *Exporter) Quality(quality int) *Exporter {
	newExp := e.clone()
	if quality < 1 || quality > 100 {
		newExp.err = fmt.Errorf("quality must be between 1 and 100, got %d", quality)
		return newExp
	}
	newExp.options.quality = quality
	return newExp
}

// Grayscale switches the output to 8-bit grayscale.
func (e *Exporter) Grayscale() *Exporter {
	newExp := e.clone()
	newExp.options.grayscale = true
	return newExp
}

// Region restricts the export to a rectangle given in page user space
// (points, origin at the lower-left corner). Exports render only the
// region and size their output from it.
func (e *Exporter) Region(r geom.Rect) *Exporter {
	newExp := e.clone()
	if r.IsEmpty() {
		newExp.err = fmt.Errorf("%w: %s", geom.ErrDegenerateRect, r)
		return newExp
	}
	region := r
	newExp.options.region = &region
	return newExp
}

// IncludeAnnotations controls whether page annotations are drawn into
// the output. The default is true.
func (e *Exporter) IncludeAnnotations(include bool) *Exporter {
	newExp := e.clone()
	newExp.options.includeAnnotations = include
	return newExp
}

// ============================================================================
// Info Operations (these do not close the document)
// ============================================================================

// PageCount returns the number of pages in the document.
// Note: This does NOT close the document, so it can be called before
// other operations on the same Exporter.
func (e *Exporter) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}

	if err := e.ensureDoc(); err != nil {
		return 0, err
	}

	return e.doc.PageCount(), nil
}

// Geometry returns the crop box and rotation of the selected page.
// Note: This does NOT close the document, so it can be called before
// other operations on the same Exporter.
func (e *Exporter) Geometry() (geom.Rect, geom.Rotation, error) {
	if e.err != nil {
		return geom.Rect{}, geom.Rotate0, e.err
	}

	if err := e.ensureDoc(); err != nil {
		return geom.Rect{}, geom.Rotate0, err
	}

	page, err := e.doc.Page(e.options.page)
	if err != nil {
		return geom.Rect{}, geom.Rotate0, err
	}

	box, err := page.CropBox()
	if err != nil {
		return geom.Rect{}, geom.Rotate0, err
	}

	rot, err := page.Rotation()
	if err != nil {
		return geom.Rect{}, geom.Rotate0, err
	}

	return box, rot, nil
}

// ============================================================================
// Terminal Operations (these execute the export and close the document)
// ============================================================================

// Image renders the selected page and returns the raster without
// writing a file. This is a terminal operation.
func (e *Exporter) Image() (image.Image, error) {
	if e.err != nil {
		return nil, e.err
	}

	if err := e.ensureDoc(); err != nil {
		return nil, err
	}
	defer e.Close()

	page, err := e.doc.Page(e.options.page)
	if err != nil {
		return nil, err
	}

	return page.Render(e.options.imageOptions())
}

// Save renders the selected page at the configured DPI and writes it
// to outPath. The image format is chosen from the file extension.
// This is a terminal operation.
func (e *Exporter) Save(outPath string) error {
	return e.save(e.options.imageOptions(), outPath)
}

// SaveWidth renders the selected page scaled to a fixed pixel width,
// with the height following from the page aspect ratio, and writes it
// to outPath. This is a terminal operation.
//
// Example:
//
//	err := imago.Open("document.pdf").SaveWidth(400, "page1.jpg")
func (e *Exporter) SaveWidth(width int, outPath string) error {
	if e.err != nil {
		return e.err
	}

	if width <= 0 {
		return fmt.Errorf("width must be positive, got %d", width)
	}

	opts := e.options.imageOptions()
	opts.Width = width

	return e.save(opts, outPath)
}

// SaveScaled renders the selected page at a fraction of its physical
// size and writes it to outPath. The pixel dimensions are computed
// from the page crop box (or the configured region), the page
// rotation, the scale factor and the configured DPI. This is a
// terminal operation.
//
// Example:
//
//	// Half size at 150 DPI, in grayscale.
//	err := imago.Open("document.pdf").
//	    DPI(150).
//	    Grayscale().
//	    SaveScaled(0.5, "page1-half.jpg")
func (e *Exporter) SaveScaled(scale float64, outPath string) error {
	if e.err != nil {
		return e.err
	}

	if err := e.ensureDoc(); err != nil {
		return err
	}
	defer e.Close()

	page, err := e.doc.Page(e.options.page)
	if err != nil {
		return err
	}

	box, err := e.exportBox(page)
	if err != nil {
		return err
	}

	rot, err := page.Rotation()
	if err != nil {
		return err
	}

	width, height, err := geom.ScaledDims(box, rot, scale, e.options.dpi)
	if err != nil {
		return err
	}

	opts := e.options.imageOptions()
	opts.Width = width
	opts.Height = height

	return render.Export(page, opts, outPath)
}

// SaveTopHalf renders the half of the selected page that a viewer
// sees on top, honoring the page rotation, and writes it to outPath.
// When a region is configured, its top half is exported instead.
// This is a terminal operation.
//
// Example:
//
//	err := imago.Open("document.pdf").SaveTopHalf("page1-top.jpg")
func (e *Exporter) SaveTopHalf(outPath string) error {
	if e.err != nil {
		return e.err
	}

	if err := e.ensureDoc(); err != nil {
		return err
	}
	defer e.Close()

	page, err := e.doc.Page(e.options.page)
	if err != nil {
		return err
	}

	box, err := e.exportBox(page)
	if err != nil {
		return err
	}

	rot, err := page.Rotation()
	if err != nil {
		return err
	}

	half := geom.TopHalf(box, rot)

	opts := e.options.imageOptions()
	opts.Region = &half

	return render.Export(page, opts, outPath)
}

// Thumbnail renders a preview of the selected page scaled to fit
// within maxWidth x maxHeight pixels, preserving the aspect ratio,
// and writes it to outPath. This is a terminal operation.
func (e *Exporter) Thumbnail(maxWidth, maxHeight int, outPath string) error {
	if e.err != nil {
		return e.err
	}

	if maxWidth <= 0 || maxHeight <= 0 {
		return fmt.Errorf("thumbnail bounds must be positive, got %dx%d", maxWidth, maxHeight)
	}

	if err := e.ensureDoc(); err != nil {
		return err
	}
	defer e.Close()

	page, err := e.doc.Page(e.options.page)
	if err != nil {
		return err
	}

	box, err := e.exportBox(page)
	if err != nil {
		return err
	}

	rot, err := page.Rotation()
	if err != nil {
		return err
	}

	width, height, err := fitWithin(box, rot, maxWidth, maxHeight)
	if err != nil {
		return err
	}

	opts := e.options.imageOptions()
	opts.Width = width
	opts.Height = height

	return render.Export(page, opts, outPath)
}

// RecognizeText renders the selected page and runs OCR on the result.
// It requires a build with the ocr build tag; without it, the call
// returns ocr.ErrOCRNotEnabled. Recognition quality improves with
// resolution, so configure DPI(300) or similar for small text. This
// is a terminal operation.
func (e *Exporter) RecognizeText() (string, error) {
	if e.err != nil {
		return "", e.err
	}

	if err := e.ensureDoc(); err != nil {
		return "", err
	}
	defer e.Close()

	client, err := ocr.New()
	if err != nil {
		return "", err
	}
	defer client.Close()

	page, err := e.doc.Page(e.options.page)
	if err != nil {
		return "", err
	}

	img, err := page.Render(e.options.imageOptions())
	if err != nil {
		return "", err
	}

	return client.Recognize(img)
}

// ============================================================================
// Internal helpers
// ============================================================================

// save is the shared implementation of terminal save operations that
// need no extra page geometry.
func (e *Exporter) save(opts render.ImageOptions, outPath string) error {
	if e.err != nil {
		return e.err
	}

	if err := e.ensureDoc(); err != nil {
		return err
	}
	defer e.Close()

	page, err := e.doc.Page(e.options.page)
	if err != nil {
		return err
	}

	return render.Export(page, opts, outPath)
}

// exportBox returns the rectangle an export works from: the
// configured region when one is set, the page crop box otherwise.
func (e *Exporter) exportBox(page *render.Page) (geom.Rect, error) {
	if e.options.region != nil {
		return *e.options.region, nil
	}
	return page.CropBox()
}

// fitWithin computes the largest pixel dimensions that fit inside the
// given bounds while preserving the aspect ratio of the rotated box.
func fitWithin(box geom.Rect, rot geom.Rotation, maxWidth, maxHeight int) (int, int, error) {
	if box.IsEmpty() {
		return 0, 0, fmt.Errorf("%w: %s", geom.ErrDegenerateRect, box)
	}

	w, h := box.Width(), box.Height()
	if rot.SwapsAxes() {
		w, h = h, w
	}

	ratio := float64(maxWidth) / w
	if r := float64(maxHeight) / h; r < ratio {
		ratio = r
	}

	width := int(w * ratio)
	height := int(h * ratio)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	return width, height, nil
}
