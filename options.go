package imago

import (
	"github.com/tsawler/imago/geom"
	"github.com/tsawler/imago/render"
)

// ExportOptions holds configuration for raster export.
type ExportOptions struct {
	// Page selection (1-indexed)
	page int

	// Raster parameters
	dpi       float64
	quality   int
	grayscale bool

	// Optional crop region in page user space
	region *geom.Rect

	// Annotation rendering
	includeAnnotations bool
}

// defaultOptions returns the default export options.
func defaultOptions() ExportOptions {
	return ExportOptions{
		page:               1,
		dpi:                render.DefaultResolution,
		quality:            render.DefaultQuality,
		grayscale:          false,
		includeAnnotations: true,
	}
}

// clone creates a deep copy of ExportOptions.
func (o ExportOptions) clone() ExportOptions {
	newOpts := o

	// Deep copy the region so chained exporters cannot share it
	if o.region != nil {
		region := *o.region
		newOpts.region = &region
	}

	return newOpts
}

// imageOptions converts the export configuration into a render
// bundle. Terminal operations adjust Width/Height/Region on the
// result before rendering.
func (o ExportOptions) imageOptions() render.ImageOptions {
	mode := render.Color
	if o.grayscale {
		mode = render.Grayscale
	}

	return render.ImageOptions{
		XResolution:        o.dpi,
		YResolution:        o.dpi,
		Mode:               mode,
		Region:             o.region,
		IncludeAnnotations: o.includeAnnotations,
		Quality:            o.quality,
	}
}
