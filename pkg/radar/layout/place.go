package layout

import (
	"math"

	"github.com/radarhq/techradar/pkg/radar"
	"github.com/radarhq/techradar/pkg/radar/geom"
)

// Place computes the initial marker position for every item that
// resolves against the taxonomy. Unknown sections or rings are a
// caller-data-quality issue: the item is skipped, not an error.
func Place(items []radar.Item, tax radar.Taxonomy, cfg Config) []Blip {
	n := len(tax.Sections)
	blips := make([]Blip, 0, len(items))
	for _, it := range items {
		si, ok := tax.SectionIndex(it.Section)
		if !ok {
			continue
		}
		ri, ok := tax.RingIndex(it.Ring)
		if !ok {
			continue
		}
		start, end := cfg.SectionSpan(si, n)
		blips = append(blips, placeOne(it, si, ri, start, end, cfg))
	}
	return blips
}

// PlaceDetail is Place restricted to one section, mapped onto the fixed
// detail quadrant.
func PlaceDetail(items []radar.Item, section string, tax radar.Taxonomy, cfg Config) []Blip {
	si, ok := tax.SectionIndex(section)
	if !ok {
		return nil
	}
	blips := make([]Blip, 0, len(items))
	for _, it := range items {
		if it.Section != section {
			continue
		}
		ri, ok := tax.RingIndex(it.Ring)
		if !ok {
			continue
		}
		blips = append(blips, placeOne(it, si, ri, DetailStartAngle, DetailEndAngle, cfg))
	}
	return blips
}

// placeOne computes the seeded initial position of a single item inside
// its padded annular wedge.
func placeOne(it radar.Item, si, ri int, start, end float64, cfg Config) Blip {
	inner, outer := cfg.RingBand(ri)
	bounds := geom.Sector{
		CX:        cfg.CenterX,
		CY:        cfg.CenterY,
		MinAngle:  start + cfg.AngularPad,
		MaxAngle:  end - cfg.AngularPad,
		MinRadius: inner + cfg.RadialMargin,
		MaxRadius: outer - cfg.RadialMargin,
	}

	id := uint64(it.ID)
	usable := bounds.MaxRadius - bounds.MinRadius

	var r float64
	if it.HasScore() {
		// Higher score sits closer to the inner (more mature) edge,
		// perturbed so equal scores do not stack on one circle.
		score := math.Max(0, math.Min(1, *it.Score))
		r = bounds.MinRadius + (1-score)*usable
		r += signedJitter(saltScore, id) * cfg.ScoreJitterFrac * usable
		r = math.Max(bounds.MinRadius, math.Min(bounds.MaxRadius, r))
	} else {
		r = bounds.MinRadius + Jitter(saltRadial, id)*usable
	}

	theta := bounds.MinAngle + Jitter(saltAngular, id)*(bounds.MaxAngle-bounds.MinAngle)
	x, y := geom.Cartesian(r, theta, cfg.CenterX, cfg.CenterY)

	return Blip{
		Item:         it,
		SectionIndex: si,
		RingIndex:    ri,
		X:            x,
		Y:            y,
		Bounds:       bounds,
	}
}
