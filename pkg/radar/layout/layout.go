// Package layout computes marker positions for a technology radar: a
// deterministic initial placement inside each item's angular sector and
// radial ring band, followed by an iterative collision relaxation that
// pushes overlapping markers apart without ever letting one leave its
// assigned bounds.
//
// The engine is pure computation over an immutable item list. All
// randomness is seeded from stable identifiers, so a fixed input and
// fixed chart dimensions always produce the identical layout.
package layout

import (
	"math"

	"github.com/radarhq/techradar/pkg/radar"
	"github.com/radarhq/techradar/pkg/radar/geom"
)

// Detail charts map their single section onto the top-right quadrant.
const (
	DetailStartAngle = -math.Pi / 2
	DetailEndAngle   = 0.0
)

// Config holds the geometry constants and relaxation parameters for one
// layout pass. Zero values are not usable; start from DefaultConfig.
type Config struct {
	CenterX   float64
	CenterY   float64
	MaxRadius float64

	// Breakpoints are the outer edge of each ring band as a fraction of
	// MaxRadius, innermost ring first. The innermost band starts at the
	// center.
	Breakpoints [radar.RingCount]float64

	// MinSeparation is the minimum center distance between two markers.
	MinSeparation float64

	// RadialMargin keeps markers off ring boundaries; AngularPad keeps
	// them off sector boundaries (radians).
	RadialMargin float64
	AngularPad   float64

	// LabelBandHalf is the half-height of the horizontal band reserved
	// for ring labels. Markers are evicted from it after relaxation.
	LabelBandHalf float64

	// ScoreJitterFrac is the maximum perturbation of a score-derived
	// radius, as a fraction of the usable band range.
	ScoreJitterFrac float64

	// Iterations is the relaxation budget for the full radar;
	// DetailIterations the reduced budget for single-section charts.
	Iterations       int
	DetailIterations int

	// Step scales velocity integration; Damping decays velocity each
	// iteration; RelaxJitter is the amplitude of per-iteration noise
	// that keeps markers from settling into straight-line stacks.
	Step        float64
	Damping     float64
	RelaxJitter float64
}

// DefaultConfig returns the standard geometry for a chart of the given
// pixel dimensions.
func DefaultConfig(width, height float64) Config {
	return Config{
		CenterX:          width / 2,
		CenterY:          height / 2,
		MaxRadius:        math.Min(width, height) / 2,
		Breakpoints:      [radar.RingCount]float64{0.28, 0.48, 0.68, 0.88},
		MinSeparation:    26,
		RadialMargin:     14,
		AngularPad:       0.14,
		LabelBandHalf:    9,
		ScoreJitterFrac:  0.08,
		Iterations:       150,
		DetailIterations: 75,
		Step:             0.35,
		Damping:          0.85,
		RelaxJitter:      0.5,
	}
}

// RingBand returns the inner and outer radius of ring index i
// (0 = innermost), before margins.
func (c Config) RingBand(i int) (inner, outer float64) {
	if i > 0 {
		inner = c.Breakpoints[i-1] * c.MaxRadius
	}
	return inner, c.Breakpoints[i] * c.MaxRadius
}

// SectionSpan returns the angular bounds of section index i out of n,
// before padding. Sections start at the top of the chart and proceed
// clockwise.
func (c Config) SectionSpan(i, n int) (start, end float64) {
	span := geom.Tau / float64(n)
	start = -math.Pi/2 + float64(i)*span
	return start, start + span
}

// Blip is one item's marker during and after a layout pass. Bounds is
// the padded annular wedge the marker is clamped to; X, Y is the marker
// center. Blips are rebuilt from the item list on every render and
// never persist.
type Blip struct {
	Item         radar.Item
	SectionIndex int
	RingIndex    int
	X, Y         float64
	Bounds       geom.Sector
}

// Build places and relaxes markers for a full radar. Items whose
// section or ring is not in the taxonomy are skipped. The returned
// slice preserves input order of the surviving items.
func Build(items []radar.Item, tax radar.Taxonomy, cfg Config) []Blip {
	blips := Place(items, tax, cfg)
	Relax(blips, cfg)
	return blips
}

// BuildDetail places and relaxes markers for a single-section chart.
// Items outside the section (or with an unknown ring) are skipped.
// There is only one group, so relaxation runs the per-group phase with
// the reduced iteration budget plus the label-band pass.
func BuildDetail(items []radar.Item, section string, tax radar.Taxonomy, cfg Config) []Blip {
	blips := PlaceDetail(items, section, tax, cfg)
	all := indexRange(len(blips))
	relaxGroup(blips, all, cfg, cfg.DetailIterations)
	excludeLabelBand(blips, all, cfg)
	return blips
}

func indexRange(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
