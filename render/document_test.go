package render

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/tsawler/imago/geom"
)

// samplePDFPath returns the path to the bundled two-page sample. Page
// one is an unrotated US Letter page, page two carries /Rotate 90.
func samplePDFPath() string {
	return filepath.Join("..", "testdata", "sample.pdf")
}

func openSample(t *testing.T) *Document {
	t.Helper()
	path := samplePDFPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Skip("sample PDF not found:", path)
	}

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("failed to open sample: %v", err)
	}
	t.Cleanup(func() { doc.Close() })
	return doc
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open("nonexistent.pdf")
	if err == nil {
		t.Error("expected error for non-existent file")
	}
}

func TestDocumentLifecycle(t *testing.T) {
	doc := openSample(t)

	if got := doc.PageCount(); got != 2 {
		t.Errorf("PageCount() = %d, want 2", got)
	}

	if err := doc.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if err := doc.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}

	if _, err := doc.Page(1); !errors.Is(err, ErrClosed) {
		t.Errorf("Page() after Close = %v, want ErrClosed", err)
	}
}

func TestPageOutOfRange(t *testing.T) {
	doc := openSample(t)

	for _, n := range []int{0, -1, 3, 1000} {
		if _, err := doc.Page(n); err == nil {
			t.Errorf("Page(%d) should fail for a 2-page document", n)
		}
	}
}

func TestSamplePageGeometry(t *testing.T) {
	doc := openSample(t)

	first, err := doc.Page(1)
	if err != nil {
		t.Fatalf("Page(1) error: %v", err)
	}

	box, err := first.CropBox()
	if err != nil {
		t.Fatalf("CropBox() error: %v", err)
	}
	if want := geom.NewRect(0, 0, 612, 792); box != want {
		t.Errorf("page 1 crop box = %v, want %v", box, want)
	}

	rot, err := first.Rotation()
	if err != nil {
		t.Fatalf("Rotation() error: %v", err)
	}
	if rot != geom.Rotate0 {
		t.Errorf("page 1 rotation = %v, want none", rot)
	}

	second, err := doc.Page(2)
	if err != nil {
		t.Fatalf("Page(2) error: %v", err)
	}

	rot, err = second.Rotation()
	if err != nil {
		t.Fatalf("Rotation() error: %v", err)
	}
	if rot != geom.Rotate90 {
		t.Errorf("page 2 rotation = %v, want %v", rot, geom.Rotate90)
	}

	w, h, err := second.Size()
	if err != nil {
		t.Fatalf("Size() error: %v", err)
	}
	if w != 792 || h != 612 {
		t.Errorf("page 2 display size = %gx%g, want 792x612 (sideways)", w, h)
	}
}

func TestRenderFixedWidth(t *testing.T) {
	doc := openSample(t)

	page, err := doc.Page(1)
	if err != nil {
		t.Fatalf("Page(1) error: %v", err)
	}

	img, err := page.Render(ImageOptions{Width: 61})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if got := img.Bounds().Dx(); got != 61 {
		t.Errorf("rendered width = %d, want 61", got)
	}
	if img.Bounds().Dy() <= 0 {
		t.Error("rendered height should be positive")
	}
}

func TestRenderGrayscale(t *testing.T) {
	doc := openSample(t)

	page, err := doc.Page(1)
	if err != nil {
		t.Fatalf("Page(1) error: %v", err)
	}

	img, err := page.Render(ImageOptions{Width: 40, Mode: Grayscale})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if _, ok := img.(*image.Gray); !ok {
		t.Errorf("grayscale render returned %T, want *image.Gray", img)
	}
}

func TestRenderRegion(t *testing.T) {
	doc := openSample(t)

	page, err := doc.Page(1)
	if err != nil {
		t.Fatalf("Page(1) error: %v", err)
	}

	// Upper half of the page at native resolution.
	region := geom.NewRect(0, 396, 612, 792)
	img, err := page.Render(ImageOptions{Region: &region})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	b := img.Bounds()
	if b.Dx() != 612 || b.Dy() != 396 {
		t.Errorf("region render = %dx%d, want 612x396", b.Dx(), b.Dy())
	}

	// The engine page must come back with its original boxes.
	if page.page.CropBox != nil {
		t.Errorf("crop box not restored after region render: %+v", page.page.CropBox)
	}

	box, err := page.CropBox()
	if err != nil {
		t.Fatalf("CropBox() after region render: %v", err)
	}
	if want := geom.NewRect(0, 0, 612, 792); box != want {
		t.Errorf("page box after region render = %v, want %v", box, want)
	}
}

func TestRenderDegenerateRegion(t *testing.T) {
	doc := openSample(t)

	page, err := doc.Page(1)
	if err != nil {
		t.Fatalf("Page(1) error: %v", err)
	}

	region := geom.NewRect(50, 0, 50, 100)
	_, err = page.Render(ImageOptions{Region: &region})
	if !errors.Is(err, geom.ErrDegenerateRect) {
		t.Errorf("Render() with empty region = %v, want ErrDegenerateRect", err)
	}
}
