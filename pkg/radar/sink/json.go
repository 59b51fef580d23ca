package sink

import (
	"encoding/json"
	"fmt"

	"github.com/radarhq/techradar/pkg/radar"
	"github.com/radarhq/techradar/pkg/radar/chart"
)

// Layout is the serialized form of an assembled chart: enough to
// redraw markers without re-running the layout engine, and stable
// enough to diff across radar editions.
type Layout struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Detail  bool    `json:"detail,omitempty"`
	Section string  `json:"section,omitempty"`

	Rings   []LayoutRing   `json:"rings"`
	Markers []LayoutMarker `json:"markers"`
}

// LayoutRing is one serialized ring band.
type LayoutRing struct {
	Name  string  `json:"name"`
	Inner float64 `json:"inner"`
	Outer float64 `json:"outer"`
}

// LayoutMarker is one serialized marker with its resolved position.
type LayoutMarker struct {
	ID       int            `json:"id"`
	Name     string         `json:"name"`
	Section  string         `json:"section"`
	Ring     string         `json:"ring"`
	Movement radar.Movement `json:"movement"`
	Score    *float64       `json:"score,omitempty"`
	X        float64        `json:"x"`
	Y        float64        `json:"y"`
	Glyph    chart.Glyph    `json:"glyph"`
}

// RenderJSON serializes the chart as pretty-printed JSON.
func RenderJSON(c *chart.Chart) ([]byte, error) {
	l := Layout{
		Width:   c.Width,
		Height:  c.Height,
		Detail:  c.Detail,
		Section: c.Section,
		Rings:   make([]LayoutRing, len(c.Rings)),
		Markers: make([]LayoutMarker, len(c.Markers)),
	}
	for i, r := range c.Rings {
		l.Rings[i] = LayoutRing{Name: r.Name, Inner: r.Inner, Outer: r.Outer}
	}
	for i, m := range c.Markers {
		l.Markers[i] = LayoutMarker{
			ID:       m.Item.ID,
			Name:     m.Item.Name,
			Section:  m.Item.Section,
			Ring:     m.Item.Ring,
			Movement: m.Item.Movement,
			Score:    m.Item.Score,
			X:        m.X,
			Y:        m.Y,
			Glyph:    m.Glyph,
		}
	}
	return json.MarshalIndent(l, "", "  ")
}

// ParseJSON deserializes a layout document and validates its shape.
func ParseJSON(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}
	if l.Width <= 0 || l.Height <= 0 {
		return Layout{}, fmt.Errorf("layout must carry positive dimensions")
	}
	if len(l.Rings) == 0 {
		return Layout{}, fmt.Errorf("layout must contain rings")
	}
	return l, nil
}
