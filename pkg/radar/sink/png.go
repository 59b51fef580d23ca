package sink

import (
	"github.com/radarhq/techradar/pkg/radar/chart"
	"github.com/radarhq/techradar/pkg/render"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts []SVGOption
	scale   float64
}

// WithPNGSVGOptions passes options through to the underlying SVG renderer.
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.svgOpts = opts }
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG renders the chart as PNG via SVG conversion. The embedded
// interaction script is dropped automatically — it has no meaning in a
// raster image.
func RenderPNG(c *chart.Chart, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	svg := RenderSVG(c, append(r.svgOpts, WithoutScript())...)
	return render.ToPNG(svg, r.scale)
}
