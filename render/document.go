package render

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/unidoc/unipdf/v4/model"
)

var (
	// ErrClosed is returned when a document is used after Close.
	ErrClosed = errors.New("document is closed")

	// ErrPasswordProtected is returned for documents that cannot be
	// opened without credentials.
	ErrPasswordProtected = errors.New("document is password protected")
)

// Document represents an open PDF document backed by the rendering
// engine. It holds the engine reader and, when opened via Open, the
// underlying file.
type Document struct {
	src    io.Closer // non-nil when the document owns the source
	reader *model.PdfReader
	pages  int
}

// Open opens the PDF at path and prepares it for rendering. The
// returned document owns the file; release it with Close.
func Open(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	doc, err := NewDocument(file)
	if err != nil {
		file.Close()
		return nil, err
	}
	doc.src = file

	return doc, nil
}

// NewDocument prepares a document from an already-open source. The
// caller keeps ownership of rs; Close on the returned document
// releases the engine handle but does not close rs.
func NewDocument(rs io.ReadSeeker) (*Document, error) {
	reader, err := model.NewPdfReader(rs)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	encrypted, err := reader.IsEncrypted()
	if err != nil {
		return nil, fmt.Errorf("failed to check encryption: %w", err)
	}
	if encrypted {
		// Only the empty owner password is tried. Anything stronger
		// needs credentials this API does not accept.
		ok, err := reader.Decrypt([]byte(""))
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt document: %w", err)
		}
		if !ok {
			return nil, ErrPasswordProtected
		}
	}

	count, err := reader.GetNumPages()
	if err != nil {
		return nil, fmt.Errorf("failed to count pages: %w", err)
	}

	return &Document{reader: reader, pages: count}, nil
}

// Close releases the engine handle and, when the document owns it,
// the underlying file. It is safe to call more than once; only the
// first call has any effect.
func (d *Document) Close() error {
	if d.reader == nil {
		return nil
	}
	d.reader = nil

	if d.src != nil {
		src := d.src
		d.src = nil
		return src.Close()
	}
	return nil
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.pages
}

// Page returns the page with the given 1-indexed number.
func (d *Document) Page(n int) (*Page, error) {
	if d.reader == nil {
		return nil, ErrClosed
	}
	if n < 1 || n > d.pages {
		return nil, fmt.Errorf("page %d out of range: document has %d pages", n, d.pages)
	}

	page, err := d.reader.GetPage(n)
	if err != nil {
		return nil, fmt.Errorf("failed to load page %d: %w", n, err)
	}

	return &Page{page: page, number: n}, nil
}
