package pipeline

import (
	"github.com/radarhq/techradar/pkg/errors"
	"github.com/radarhq/techradar/pkg/radar"
	"github.com/radarhq/techradar/pkg/radar/chart"
	"github.com/radarhq/techradar/pkg/radar/sink"
)

// AssembleChart runs the layout stage: grouping, placement, and overlap
// relaxation, producing a drawable chart.
func AssembleChart(ds *Dataset, opts Options) (*chart.Chart, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	w, h := float64(opts.Width), float64(opts.Height)
	if opts.IsDetail() {
		c, err := chart.AssembleDetail(ds.Items, opts.Section, ds.Taxonomy, w, h)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSection, err, "assemble detail chart")
		}
		return c, nil
	}
	return chart.Assemble(ds.Items, ds.Taxonomy, w, h), nil
}

// RenderFromChart generates artifacts in the requested formats.
func RenderFromChart(c *chart.Chart, items []radar.Item, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(c, items, format, opts)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(c *chart.Chart, items []radar.Item, format string, opts Options) ([]byte, error) {
	var svgOpts []sink.SVGOption
	if opts.Title != "" {
		svgOpts = append(svgOpts, sink.WithTitle(opts.Title))
	}

	switch format {
	case FormatSVG:
		return sink.RenderSVG(c, svgOpts...), nil
	case FormatPNG:
		return sink.RenderPNG(c, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
	case FormatPDF:
		return sink.RenderPDF(c, sink.WithPDFSVGOptions(svgOpts...))
	case FormatJSON:
		return sink.RenderJSON(c)
	case FormatCSV:
		return sink.RenderCSV(items)
	default:
		return nil, errors.ValidateFormat(format, ValidFormats)
	}
}
