// batch.go provides whole-document export helpers built on the render package.
package imago

import (
	"fmt"

	"github.com/tsawler/imago/render"
)

// ExportAllPages renders every page of the PDF at path as a JPEG
// scaled to the given pixel width, writing "<prefix>-page-N.jpg"
// files, and returns the written paths.
//
// Example:
//
//	files, err := imago.ExportAllPages("document.pdf", "out/doc", 800)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, f := range files {
//	    fmt.Println("wrote", f)
//	}
func ExportAllPages(path, prefix string, width int) ([]string, error) {
	opts := render.ImageOptions{
		Width:              width,
		Quality:            render.DefaultQuality,
		IncludeAnnotations: true,
	}
	return ExportAllPagesWithOptions(path, prefix, ".jpg", opts)
}

// ExportAllPagesWithOptions renders every page of the PDF at path
// with explicit render options, writing "<prefix>-page-N<ext>" files.
// The extension picks the output format.
func ExportAllPagesWithOptions(path, prefix, ext string, opts render.ImageOptions) ([]string, error) {
	doc, err := render.Open(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	files := make([]string, 0, doc.PageCount())
	for n := 1; n <= doc.PageCount(); n++ {
		page, err := doc.Page(n)
		if err != nil {
			return files, err
		}

		outPath := fmt.Sprintf("%s-page-%d%s", prefix, n, ext)
		if err := render.Export(page, opts, outPath); err != nil {
			return files, fmt.Errorf("failed to export page %d: %w", n, err)
		}
		files = append(files, outPath)
	}

	return files, nil
}
