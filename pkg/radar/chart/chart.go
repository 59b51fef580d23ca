// Package chart assembles a drawable radar from classified items: ring
// bands, sector dividers, labels, and one positioned marker per item.
// The chart is a plain data structure; sinks turn it into SVG, JSON, or
// other formats, and the browse TUI walks it directly.
//
// Interaction is modeled as a capability interface injected by the
// caller, so the assembly stays testable without any DOM or terminal.
package chart

import (
	"fmt"

	"github.com/radarhq/techradar/pkg/radar"
	"github.com/radarhq/techradar/pkg/radar/geom"
	"github.com/radarhq/techradar/pkg/radar/layout"
)

// Glyph selects the marker shape drawn for an item, keyed by its
// movement state.
type Glyph string

const (
	GlyphCircle   Glyph = "circle"   // no movement
	GlyphRinged   Glyph = "ringed"   // new this edition
	GlyphTriangle Glyph = "triangle" // changed ring
)

// GlyphFor maps a movement state to its marker glyph.
func GlyphFor(m radar.Movement) Glyph {
	switch m {
	case radar.MovementNew:
		return GlyphRinged
	case radar.MovementMoved:
		return GlyphTriangle
	default:
		return GlyphCircle
	}
}

// Interaction receives activation events from the chart. The SVG sink
// compiles these into embedded script hooks; the terminal UI calls them
// directly.
type Interaction interface {
	SectionActivated(name string)
	ItemActivated(item radar.Item)
}

// NopInteraction ignores all events. It is the default when the caller
// injects nothing.
type NopInteraction struct{}

func (NopInteraction) SectionActivated(string)  {}
func (NopInteraction) ItemActivated(radar.Item) {}

// RingBand is one concentric maturity band.
type RingBand struct {
	Name   string
	Inner  float64
	Outer  float64
	Shaded bool
}

// Divider is a sector boundary line radiating from the center.
type Divider struct {
	X1, Y1, X2, Y2 float64
}

// Label is positioned text.
type Label struct {
	Text string
	X, Y float64
}

// SectionLabel is the clickable category label at a sector's outer edge.
type SectionLabel struct {
	Name  string
	Key   string
	Color string
	X, Y  float64
}

// Marker is one item's drawn blip.
type Marker struct {
	Item  radar.Item
	X, Y  float64
	Color string
	Key   string
	Glyph Glyph
}

// Chart is the fully assembled drawable structure for one render pass.
type Chart struct {
	Width, Height float64
	CenterX       float64
	CenterY       float64
	MaxRadius     float64

	Rings         []RingBand
	Dividers      []Divider
	RingLabels    []Label
	SectionLabels []SectionLabel
	Markers       []Marker

	// Detail is set when the chart shows a single section; Section
	// names it.
	Detail  bool
	Section string

	interaction Interaction
}

// Option configures chart assembly.
type Option func(*assembler)

type assembler struct {
	cfg         layout.Config
	cfgSet      bool
	interaction Interaction
}

// WithInteraction injects the activation callbacks.
func WithInteraction(i Interaction) Option {
	return func(a *assembler) { a.interaction = i }
}

// WithLayoutConfig overrides the geometry derived from the chart size.
func WithLayoutConfig(cfg layout.Config) Option {
	return func(a *assembler) { a.cfg = cfg; a.cfgSet = true }
}

func newAssembler(width, height float64, opts ...Option) assembler {
	a := assembler{interaction: NopInteraction{}}
	for _, opt := range opts {
		opt(&a)
	}
	if !a.cfgSet {
		a.cfg = layout.DefaultConfig(width, height)
	}
	return a
}

// Assemble builds the full radar chart: background bands, dividers,
// labels, and relaxed marker positions for every item that resolves
// against the taxonomy.
func Assemble(items []radar.Item, tax radar.Taxonomy, width, height float64, opts ...Option) *Chart {
	a := newAssembler(width, height, opts...)
	cfg := a.cfg

	c := &Chart{
		Width:       width,
		Height:      height,
		CenterX:     cfg.CenterX,
		CenterY:     cfg.CenterY,
		MaxRadius:   cfg.MaxRadius,
		interaction: a.interaction,
	}

	c.Rings = buildRings(tax, cfg)
	c.RingLabels = buildRingLabels(tax, cfg)
	c.Dividers = buildDividers(len(tax.Sections), cfg)
	c.SectionLabels = buildSectionLabels(tax, cfg)

	blips := layout.Build(items, tax, cfg)
	c.Markers = buildMarkers(blips, tax)
	return c
}

// AssembleDetail builds the single-section variant: the section's items
// laid out in the fixed detail quadrant, with the same ring machinery.
// Unknown section names yield an error; unknown rings on individual
// items are still a silent per-item skip.
func AssembleDetail(items []radar.Item, section string, tax radar.Taxonomy, width, height float64, opts ...Option) (*Chart, error) {
	if _, ok := tax.SectionIndex(section); !ok {
		return nil, fmt.Errorf("unknown section: %q", section)
	}
	a := newAssembler(width, height, opts...)
	cfg := a.cfg

	c := &Chart{
		Width:       width,
		Height:      height,
		CenterX:     cfg.CenterX,
		CenterY:     cfg.CenterY,
		MaxRadius:   cfg.MaxRadius,
		Detail:      true,
		Section:     section,
		interaction: a.interaction,
	}

	c.Rings = buildRings(tax, cfg)
	c.RingLabels = buildRingLabels(tax, cfg)

	sec, _ := tax.SectionByName(section)
	lx, ly := sectionLabelPos(layout.DetailStartAngle, layout.DetailEndAngle, cfg)
	c.SectionLabels = []SectionLabel{{Name: sec.Name, Key: sec.Key, Color: sec.Color, X: lx, Y: ly}}

	blips := layout.BuildDetail(items, section, tax, cfg)
	c.Markers = buildMarkers(blips, tax)
	return c, nil
}

func buildRings(tax radar.Taxonomy, cfg layout.Config) []RingBand {
	rings := make([]RingBand, radar.RingCount)
	for i := 0; i < radar.RingCount; i++ {
		inner, outer := cfg.RingBand(i)
		rings[i] = RingBand{
			Name:   tax.Rings[i],
			Inner:  inner,
			Outer:  outer,
			Shaded: i%2 == 0,
		}
	}
	return rings
}

// buildRingLabels places each ring's name at the midpoint radius of its
// band along the horizontal axis — the strip the layout engine keeps
// markers out of.
func buildRingLabels(tax radar.Taxonomy, cfg layout.Config) []Label {
	labels := make([]Label, radar.RingCount)
	for i := 0; i < radar.RingCount; i++ {
		inner, outer := cfg.RingBand(i)
		labels[i] = Label{
			Text: tax.Rings[i],
			X:    cfg.CenterX + (inner+outer)/2,
			Y:    cfg.CenterY,
		}
	}
	return labels
}

func buildDividers(sections int, cfg layout.Config) []Divider {
	dividers := make([]Divider, sections)
	outer := cfg.Breakpoints[radar.RingCount-1] * cfg.MaxRadius
	for i := 0; i < sections; i++ {
		start, _ := cfg.SectionSpan(i, sections)
		x, y := pointAt(start, outer, cfg)
		dividers[i] = Divider{X1: cfg.CenterX, Y1: cfg.CenterY, X2: x, Y2: y}
	}
	return dividers
}

func buildSectionLabels(tax radar.Taxonomy, cfg layout.Config) []SectionLabel {
	n := len(tax.Sections)
	labels := make([]SectionLabel, n)
	for i, s := range tax.Sections {
		start, end := cfg.SectionSpan(i, n)
		x, y := sectionLabelPos(start, end, cfg)
		labels[i] = SectionLabel{Name: s.Name, Key: s.Key, Color: s.Color, X: x, Y: y}
	}
	return labels
}

// sectionLabelPos places a section label on the sector bisector, just
// outside the outermost ring.
func sectionLabelPos(start, end float64, cfg layout.Config) (float64, float64) {
	mid := (start + end) / 2
	r := 0.94 * cfg.MaxRadius
	return pointAt(mid, r, cfg)
}

func pointAt(theta, r float64, cfg layout.Config) (float64, float64) {
	return geom.Cartesian(r, theta, cfg.CenterX, cfg.CenterY)
}

func buildMarkers(blips []layout.Blip, tax radar.Taxonomy) []Marker {
	markers := make([]Marker, len(blips))
	for i, b := range blips {
		sec := tax.Sections[b.SectionIndex]
		markers[i] = Marker{
			Item:  b.Item,
			X:     b.X,
			Y:     b.Y,
			Color: sec.Color,
			Key:   sec.Key,
			Glyph: GlyphFor(b.Item.Movement),
		}
	}
	return markers
}

// MarkerByID finds the marker for an item id, for scroll-to/highlight
// style lookups.
func (c *Chart) MarkerByID(id int) (Marker, bool) {
	for _, m := range c.Markers {
		if m.Item.ID == id {
			return m, true
		}
	}
	return Marker{}, false
}

// ActivateSection fires the section-activated callback if the section
// exists on this chart.
func (c *Chart) ActivateSection(name string) bool {
	for _, s := range c.SectionLabels {
		if s.Name == name {
			c.interaction.SectionActivated(name)
			return true
		}
	}
	return false
}

// ActivateItem fires the item-activated callback for the marker with
// the given id.
func (c *Chart) ActivateItem(id int) bool {
	m, ok := c.MarkerByID(id)
	if !ok {
		return false
	}
	c.interaction.ItemActivated(m.Item)
	return true
}
