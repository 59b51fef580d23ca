package sink

import (
	"bytes"
	"fmt"

	"github.com/radarhq/techradar/pkg/radar/chart"
	"github.com/radarhq/techradar/pkg/radar/geom"
	"github.com/radarhq/techradar/pkg/radar/layout"
)

const (
	markerRadius   = 9.0
	newRingRadius  = 12.5
	triangleHalf   = 10.0
	ringFill       = "#ebebeb"
	ringFillAlt    = "#f7f7f7"
	dividerStroke  = "#ffffff"
	labelFill      = "#8a8a8a"
	markerTextFill = "#ffffff"
)

const radarCSS = `
    .blip { cursor: pointer; }
    .blip circle, .blip polygon { transition: transform 0.15s ease; transform-origin: center; transform-box: fill-box; }
    .blip:hover circle, .blip:hover polygon { transform: scale(1.25); }
    .section-label { cursor: pointer; font-weight: bold; }
    .section-label:hover { text-decoration: underline; }`

const radarJS = `
    document.querySelectorAll('.blip').forEach(el => {
      el.addEventListener('click', () => {
        el.dispatchEvent(new CustomEvent('radar:item', { bubbles: true, detail: { id: Number(el.dataset.id) } }));
      });
    });
    document.querySelectorAll('.section-label').forEach(el => {
      el.addEventListener('click', () => {
        el.dispatchEvent(new CustomEvent('radar:section', { bubbles: true, detail: { section: el.dataset.section } }));
      });
    });`

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	idPrefix string
	noScript bool
	title    string
}

// WithIDPrefix namespaces every element id, so multiple radars can be
// embedded in one document without collisions.
func WithIDPrefix(p string) SVGOption { return func(r *svgRenderer) { r.idPrefix = p } }

// WithoutScript omits the embedded interaction script and stylesheet.
func WithoutScript() SVGOption { return func(r *svgRenderer) { r.noScript = true } }

// WithTitle adds a heading above the chart.
func WithTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

// RenderSVG draws the assembled chart as a standalone SVG document.
// Draw order matters: ring bands first, then dividers and labels, then
// markers on top.
func RenderSVG(c *chart.Chart, opts ...SVGOption) []byte {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		c.Width, c.Height, c.Width, c.Height)

	if !r.noScript {
		fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", radarCSS)
	}

	renderRings(&buf, c)
	renderDividers(&buf, c)
	renderRingLabels(&buf, c)
	renderSectionLabels(&buf, c)
	for _, m := range c.Markers {
		renderMarker(&buf, m, r.idPrefix)
	}

	if r.title != "" {
		fmt.Fprintf(&buf, `  <text x="%.1f" y="24" font-size="18" font-weight="bold" fill="#333">%s</text>`+"\n", c.Width/2-80, escape(r.title))
	}
	if !r.noScript {
		fmt.Fprintf(&buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", radarJS)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// renderRings draws the concentric bands, outermost first so each inner
// band paints over its predecessor.
func renderRings(buf *bytes.Buffer, c *chart.Chart) {
	for i := len(c.Rings) - 1; i >= 0; i-- {
		band := c.Rings[i]
		fill := ringFillAlt
		if band.Shaded {
			fill = ringFill
		}
		if c.Detail {
			// Detail charts only show the quadrant wedge per band.
			path := geom.AnnulusSectorPath(c.CenterX, c.CenterY, band.Inner, band.Outer,
				layout.DetailStartAngle, layout.DetailEndAngle)
			fmt.Fprintf(buf, `  <path d="%s" fill="%s"/>`+"\n", path, fill)
			continue
		}
		fmt.Fprintf(buf, `  <circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n",
			c.CenterX, c.CenterY, band.Outer, fill)
	}
}

func renderDividers(buf *bytes.Buffer, c *chart.Chart) {
	for _, d := range c.Dividers {
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2"/>`+"\n",
			d.X1, d.Y1, d.X2, d.Y2, dividerStroke)
	}
}

func renderRingLabels(buf *bytes.Buffer, c *chart.Chart) {
	for _, l := range c.RingLabels {
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="12" text-anchor="middle" dominant-baseline="middle" fill="%s">%s</text>`+"\n",
			l.X, l.Y, labelFill, escape(l.Text))
	}
}

func renderSectionLabels(buf *bytes.Buffer, c *chart.Chart) {
	for _, s := range c.SectionLabels {
		anchor := "middle"
		if s.X > c.CenterX+1 {
			anchor = "start"
		} else if s.X < c.CenterX-1 {
			anchor = "end"
		}
		fmt.Fprintf(buf, `  <text class="section-label" data-section="%s" x="%.1f" y="%.1f" font-size="14" text-anchor="%s" fill="%s">%s</text>`+"\n",
			escape(s.Name), s.X, s.Y, anchor, s.Color, escape(s.Name))
	}
}

// renderMarker draws one blip: the movement-keyed glyph, the visible id
// label, and a tooltip carrying the item name. The group element is
// tagged with the item id for later lookup.
func renderMarker(buf *bytes.Buffer, m chart.Marker, prefix string) {
	fmt.Fprintf(buf, `  <g id="%sblip-%d" class="blip" data-id="%d" data-section="%s">`+"\n",
		prefix, m.Item.ID, m.Item.ID, escape(m.Key))

	switch m.Glyph {
	case chart.GlyphRinged:
		fmt.Fprintf(buf, `    <circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s" stroke-width="1.5"/>`+"\n",
			m.X, m.Y, newRingRadius, m.Color)
		fmt.Fprintf(buf, `    <circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n",
			m.X, m.Y, markerRadius, m.Color)
	case chart.GlyphTriangle:
		fmt.Fprintf(buf, `    <polygon points="%s" fill="%s"/>`+"\n", trianglePoints(m.X, m.Y), m.Color)
	default:
		fmt.Fprintf(buf, `    <circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n",
			m.X, m.Y, markerRadius, m.Color)
	}

	fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" font-size="9" text-anchor="middle" dominant-baseline="middle" fill="%s">%d</text>`+"\n",
		m.X, m.Y, markerTextFill, m.Item.ID)
	fmt.Fprintf(buf, "    <title>%s</title>\n", escape(m.Item.Name))
	buf.WriteString("  </g>\n")
}

func trianglePoints(x, y float64) string {
	return fmt.Sprintf("%.1f,%.1f %.1f,%.1f %.1f,%.1f",
		x, y-triangleHalf,
		x-triangleHalf*0.9, y+triangleHalf*0.7,
		x+triangleHalf*0.9, y+triangleHalf*0.7)
}

func escape(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
