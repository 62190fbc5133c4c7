package render

import (
	"fmt"
	"image"

	"github.com/unidoc/unipdf/v4/model"
	urender "github.com/unidoc/unipdf/v4/render"

	"github.com/tsawler/imago/geom"
)

// Page represents a single document page held by the engine.
type Page struct {
	page   *model.PdfPage
	number int
}

// Number returns the 1-indexed page number.
func (p *Page) Number() int {
	return p.number
}

// MediaBox returns the page media box in user space.
func (p *Page) MediaBox() (geom.Rect, error) {
	box, err := p.page.GetMediaBox()
	if err != nil {
		return geom.Rect{}, fmt.Errorf("page %d media box: %w", p.number, err)
	}
	return geom.NewRect(box.Llx, box.Lly, box.Urx, box.Ury), nil
}

// CropBox returns the page crop box.
// This defaults to the media box when the page has none.
func (p *Page) CropBox() (geom.Rect, error) {
	if p.page.CropBox != nil {
		box := p.page.CropBox
		return geom.NewRect(box.Llx, box.Lly, box.Urx, box.Ury), nil
	}
	return p.MediaBox()
}

// Rotation returns the page viewing rotation. A missing /Rotate entry
// means no rotation; a /Rotate value that is not a quarter turn is an
// error.
func (p *Page) Rotation() (geom.Rotation, error) {
	if p.page.Rotate == nil {
		return geom.Rotate0, nil
	}
	rot, err := geom.DecodeRotation(int(*p.page.Rotate))
	if err != nil {
		return geom.Rotate0, fmt.Errorf("page %d: %w", p.number, err)
	}
	return rot, nil
}

// Size returns the displayed page size in user units, with width and
// height swapped for rotations that show the page sideways.
func (p *Page) Size() (width, height float64, err error) {
	box, err := p.CropBox()
	if err != nil {
		return 0, 0, err
	}
	rot, err := p.Rotation()
	if err != nil {
		return 0, 0, err
	}

	w, h := box.Width(), box.Height()
	if rot.SwapsAxes() {
		w, h = h, w
	}
	return w, h, nil
}

// Render rasterizes the page according to opts.
//
// When opts.Region is set, the engine page is cropped to the region
// for the duration of the render and restored afterward, so the page
// object comes back unchanged. Target pixel dimensions follow the
// rules documented on [ImageOptions].
func (p *Page) Render(opts ImageOptions) (image.Image, error) {
	box, err := p.CropBox()
	if err != nil {
		return nil, err
	}
	rot, err := p.Rotation()
	if err != nil {
		return nil, err
	}

	if opts.Region != nil {
		if opts.Region.IsEmpty() {
			return nil, fmt.Errorf("render region %s: %w", opts.Region, geom.ErrDegenerateRect)
		}
		box = *opts.Region
		restore := p.setBoxes(box)
		defer restore()
	}

	width, height := opts.Width, opts.Height
	if width == 0 {
		w, h, err := opts.targetDims(box, rot)
		if err != nil {
			return nil, err
		}
		width = w
		if height == 0 {
			height = h
		}
	}

	if !opts.IncludeAnnotations {
		saved, _ := p.page.GetAnnotations()
		p.page.SetAnnotations(nil)
		defer func() { p.page.SetAnnotations(saved) }()
	}

	device := urender.NewImageDevice()
	device.OutputWidth = width

	img, err := device.Render(p.page)
	if err != nil {
		return nil, fmt.Errorf("failed to render page %d: %w", p.number, err)
	}

	if height > 0 {
		img = scaleTo(img, width, height)
	}
	if opts.Mode == Grayscale {
		img = toGray(img)
	}
	return img, nil
}

// setBoxes points both the media box and the crop box of the engine
// page at r. The engine sizes its raster from the media box, while
// viewers honor the crop box, so the two must move together. The
// returned func restores the original boxes.
func (p *Page) setBoxes(r geom.Rect) func() {
	savedMedia := p.page.MediaBox
	savedCrop := p.page.CropBox

	box := &model.PdfRectangle{Llx: r.Llx, Lly: r.Lly, Urx: r.Urx, Ury: r.Ury}
	p.page.MediaBox = box
	p.page.CropBox = box

	return func() {
		p.page.MediaBox = savedMedia
		p.page.CropBox = savedCrop
	}
}
