// Package imago provides a simple, fluent API for exporting PDF pages
// as raster images.
//
// Basic usage:
//
//	err := imago.Open("document.pdf").SaveWidth(400, "page1.jpg")
//
// With options:
//
//	err := imago.Open("document.pdf").
//	    Page(3).
//	    DPI(150).
//	    Grayscale().
//	    SaveScaled(0.5, "page3-half.jpg")
//
// Several exports can share one open document:
//
//	doc, err := render.Open("document.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer doc.Close()
//
//	err = imago.FromDocument(doc).SaveWidth(400, "wide.jpg")
//	err = imago.FromDocument(doc).Grayscale().SaveScaled(0.5, "half.jpg")
//
// The output format is chosen from the file extension: .jpg/.jpeg,
// .png and .tif/.tiff are supported.
package imago

import "github.com/tsawler/imago/render"

// Open creates a new Exporter for the given PDF file. The file is not
// opened until a terminal operation or an info operation needs it.
// Terminal operations close the document automatically.
func Open(filename string) *Exporter {
	return &Exporter{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromDocument creates a new Exporter from an already-open
// render.Document. The caller keeps ownership of the document and is
// responsible for closing it; terminal operations on the returned
// Exporter leave it open.
func FromDocument(doc *render.Document) *Exporter {
	return &Exporter{
		doc:       doc,
		ownsDoc:   false,
		docOpened: true,
		options:   defaultOptions(),
	}
}

// Must is a helper that wraps a call returning (T, error) and panics
// if the error is non-nil. It simplifies one-off scripts and examples.
//
// Example:
//
//	img := imago.Must(imago.Open("document.pdf").Image())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustSave wraps a terminal save call and panics if it returned an
// error.
//
// Example:
//
//	imago.MustSave(imago.Open("document.pdf").SaveWidth(400, "page1.jpg"))
func MustSave(err error) {
	if err != nil {
		panic(err)
	}
}
