package sink

import (
	"github.com/radarhq/techradar/pkg/radar/chart"
	"github.com/radarhq/techradar/pkg/render"
)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	svgOpts []SVGOption
}

// WithPDFSVGOptions passes options through to the underlying SVG renderer.
func WithPDFSVGOptions(opts ...SVGOption) PDFOption {
	return func(r *pdfRenderer) { r.svgOpts = opts }
}

// RenderPDF renders the chart as PDF via SVG conversion.
func RenderPDF(c *chart.Chart, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	svg := RenderSVG(c, append(r.svgOpts, WithoutScript())...)
	return render.ToPDF(svg)
}
