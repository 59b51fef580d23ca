package layout

import (
	"math"
	"sort"

	"github.com/radarhq/techradar/pkg/radar/geom"
)

// labelClearance is how far past the label band edge a snapped marker
// lands, so it does not sit exactly on the boundary.
const labelClearance = 2.0

// Relax resolves marker collisions in place. It runs three phases:
//
//  1. Per-section relaxation: sections are independent groups; markers
//     in different sections never interact.
//  2. Cross-section push-apart: pairs from different sections that are
//     still too close are pushed outward along their own radius vector
//     and re-clamped. A radial push can drive a marker back into one of
//     its own section's neighbors, so each push pass is followed by a
//     short per-section re-relax, repeating until a push pass moves
//     nothing or the round budget runs out.
//  3. Label-band exclusion: markers inside the horizontal ring-label
//     band are snapped out of it, re-clamped, and each group is
//     re-relaxed to absorb any overlaps the snap introduced.
//
// Every position update is followed by a clamp to the blip's own
// sector/ring bounds, so containment holds at every step.
func Relax(blips []Blip, cfg Config) {
	const pushRounds = 6

	groups := groupBySection(blips)
	for _, g := range groups {
		relaxGroup(blips, g, cfg, cfg.Iterations)
	}
	for round := 0; round < pushRounds; round++ {
		if !pushApartCrossSections(blips, cfg) {
			break
		}
		for _, g := range groups {
			relaxGroup(blips, g, cfg, shortIterations(cfg))
		}
	}
	for _, g := range groups {
		excludeLabelBand(blips, g, cfg)
	}
}

// shortIterations is the reduced relaxation budget used when absorbing
// the localized overlaps a push or snap introduces.
func shortIterations(cfg Config) int {
	short := cfg.Iterations / 5
	if short < 10 {
		short = 10
	}
	return short
}

// groupBySection partitions blip indices by section, ordered by section
// index so iteration order is stable.
func groupBySection(blips []Blip) [][]int {
	bySection := make(map[int][]int)
	for i, b := range blips {
		bySection[b.SectionIndex] = append(bySection[b.SectionIndex], i)
	}
	sections := make([]int, 0, len(bySection))
	for s := range bySection {
		sections = append(sections, s)
	}
	sort.Ints(sections)
	groups := make([][]int, 0, len(sections))
	for _, s := range sections {
		groups = append(groups, bySection[s])
	}
	return groups
}

// relaxGroup runs the iterative spring relaxer over one group of blips.
// Velocities are transient simulation state: they are allocated here and
// discarded when the function returns.
func relaxGroup(blips []Blip, group []int, cfg Config, iterations int) {
	n := len(group)
	if n < 2 {
		return
	}
	vx := make([]float64, n)
	vy := make([]float64, n)

	for iter := 0; iter < iterations; iter++ {
		// Pairwise repulsion: equal and opposite impulses proportional
		// to half the overlap along the separating axis.
		for a := 0; a < n; a++ {
			for b := a + 1; b < n; b++ {
				bi, bj := &blips[group[a]], &blips[group[b]]
				dx := bj.X - bi.X
				dy := bj.Y - bi.Y
				dist := math.Hypot(dx, dy)
				if dist >= cfg.MinSeparation {
					continue
				}
				var ux, uy float64
				if dist > 0 {
					ux, uy = dx/dist, dy/dist
				} else {
					// Coincident markers: deterministic direction keyed
					// by the pair's item ids.
					ang := Jitter(saltPair, uint64(bi.Item.ID), uint64(bj.Item.ID)) * geom.Tau
					ux, uy = math.Cos(ang), math.Sin(ang)
				}
				push := (cfg.MinSeparation - dist) / 2
				vx[a] -= ux * push
				vy[a] -= uy * push
				vx[b] += ux * push
				vy[b] += uy * push
			}
		}

		// Integrate, damp, clamp. The jitter keeps markers from
		// settling into degenerate straight-line stacks.
		for a := 0; a < n; a++ {
			b := &blips[group[a]]
			id := uint64(b.Item.ID)
			vx[a] += signedJitter(saltRelax, uint64(iter), id, 0) * cfg.RelaxJitter
			vy[a] += signedJitter(saltRelax, uint64(iter), id, 1) * cfg.RelaxJitter
			b.X += vx[a] * cfg.Step
			b.Y += vy[a] * cfg.Step
			vx[a] *= cfg.Damping
			vy[a] *= cfg.Damping
			b.X, b.Y = b.Bounds.Clamp(b.X, b.Y)
		}
	}
}

// pushApartCrossSections separates pairs from different sections.
// The remaining conflicts sit near shared sector boundaries; pushing
// both markers outward along their own radius vector increases their
// arc separation without crossing either boundary. Reports whether any
// marker moved, so the caller knows to re-relax the affected sections.
func pushApartCrossSections(blips []Blip, cfg Config) bool {
	const maxPasses = 24
	const extra = 1.5

	anyMoved := false
	for pass := 0; pass < maxPasses; pass++ {
		moved := false
		for i := range blips {
			for j := i + 1; j < len(blips); j++ {
				bi, bj := &blips[i], &blips[j]
				if bi.SectionIndex == bj.SectionIndex {
					continue
				}
				dist := math.Hypot(bj.X-bi.X, bj.Y-bi.Y)
				if dist >= cfg.MinSeparation {
					continue
				}
				push := (cfg.MinSeparation-dist)/2 + extra
				if pushOutward(bi, push, cfg) {
					moved = true
				}
				if pushOutward(bj, push, cfg) {
					moved = true
				}
			}
		}
		if !moved {
			break
		}
		anyMoved = true
	}
	return anyMoved
}

// pushOutward moves a blip radially away from the chart center by push
// units, then re-clamps. Reports whether the position actually changed
// (a blip pinned at its band's outer edge cannot move further).
func pushOutward(b *Blip, push float64, cfg Config) bool {
	r, theta := geom.Polar(b.X, b.Y, cfg.CenterX, cfg.CenterY)
	x, y := geom.Cartesian(r+push, theta, cfg.CenterX, cfg.CenterY)
	x, y = b.Bounds.Clamp(x, y)
	if math.Abs(x-b.X) < 1e-6 && math.Abs(y-b.Y) < 1e-6 {
		return false
	}
	b.X, b.Y = x, y
	return true
}

// excludeLabelBand evicts one group's markers from the horizontal
// ring-label band, then re-runs a short relaxation to absorb any
// overlaps the snap introduced. It finishes with a final eviction so
// the band ends empty.
func excludeLabelBand(blips []Blip, group []int, cfg Config) {
	const passes = 3
	for p := 0; p < passes; p++ {
		if !snapOutOfBand(blips, group, cfg) {
			return
		}
		relaxGroup(blips, group, cfg, shortIterations(cfg))
	}
	snapOutOfBand(blips, group, cfg)
}

// snapOutOfBand moves every in-band marker of the group to just outside
// the band on the side it started on, re-clamping afterwards. If the
// clamp pulls the marker back into the band (small radius close to the
// horizontal axis), the radius is raised until the band clears, capped
// at the band's outer bound. Reports whether any marker was in the band.
func snapOutOfBand(blips []Blip, group []int, cfg Config) bool {
	snapped := false
	edge := cfg.LabelBandHalf + labelClearance
	for _, gi := range group {
		b := &blips[gi]
		dy := b.Y - cfg.CenterY
		if math.Abs(dy) >= cfg.LabelBandHalf {
			continue
		}
		snapped = true
		if dy >= 0 {
			b.Y = cfg.CenterY + edge
		} else {
			b.Y = cfg.CenterY - edge
		}
		b.X, b.Y = b.Bounds.Clamp(b.X, b.Y)

		if math.Abs(b.Y-cfg.CenterY) < cfg.LabelBandHalf {
			r, theta := geom.Polar(b.X, b.Y, cfg.CenterX, cfg.CenterY)
			sin := math.Abs(math.Sin(theta))
			if sin > 1e-6 {
				need := math.Min(edge/sin, b.Bounds.MaxRadius)
				if need > r {
					b.X, b.Y = geom.Cartesian(need, theta, cfg.CenterX, cfg.CenterY)
					b.X, b.Y = b.Bounds.Clamp(b.X, b.Y)
				}
			}
		}
	}
	return snapped
}
