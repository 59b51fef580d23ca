// Package geom provides the polar geometry primitives the radar layout
// is built on: polar/cartesian conversion, angle normalization, sector
// membership tests, SVG arc path construction, and the sector/ring
// clamp used throughout relaxation.
//
// Angles are in radians, measured from the positive x-axis and
// increasing clockwise (screen coordinates, y grows downward).
package geom

import (
	"fmt"
	"math"
)

// Tau is one full turn.
const Tau = 2 * math.Pi

// Polar converts a cartesian point to polar coordinates relative to the
// center (cx, cy). The returned angle is in [0, Tau).
func Polar(x, y, cx, cy float64) (r, theta float64) {
	dx, dy := x-cx, y-cy
	r = math.Hypot(dx, dy)
	theta = math.Atan2(dy, dx)
	if theta < 0 {
		theta += Tau
	}
	return r, theta
}

// Cartesian converts polar coordinates relative to (cx, cy) back to a
// cartesian point.
func Cartesian(r, theta, cx, cy float64) (x, y float64) {
	return cx + r*math.Cos(theta), cy + r*math.Sin(theta)
}

// NormalizeInto shifts theta by whole turns until it lies in
// [start, start+Tau). This handles sectors that straddle the angular
// discontinuity: membership and clamping are always evaluated in the
// sector's own frame.
func NormalizeInto(theta, start float64) float64 {
	for theta < start {
		theta += Tau
	}
	for theta >= start+Tau {
		theta -= Tau
	}
	return theta
}

// InSector reports whether theta falls within [start, end). The end
// angle may exceed Tau for sectors crossing the discontinuity.
func InSector(theta, start, end float64) bool {
	theta = NormalizeInto(theta, start)
	return theta < end
}

// Sector describes the region a point may occupy: an annular wedge
// centered on (CX, CY). MinAngle/MaxAngle already include any angular
// padding, MinRadius/MaxRadius any radial margin.
type Sector struct {
	CX, CY    float64
	MinAngle  float64
	MaxAngle  float64
	MinRadius float64
	MaxRadius float64
}

// Clamp forces (x, y) back inside the sector. The point is converted to
// polar form, its angle normalized into the sector's frame, then angle
// and radius are clamped independently. Clamping an already-valid point
// is a no-op (up to floating-point round-trip error).
func (s Sector) Clamp(x, y float64) (float64, float64) {
	r, theta := Polar(x, y, s.CX, s.CY)
	theta = NormalizeInto(theta, s.MinAngle)
	if theta > s.MaxAngle {
		// Snap to the nearer boundary.
		if theta-s.MaxAngle < s.MinAngle+Tau-theta {
			theta = s.MaxAngle
		} else {
			theta = s.MinAngle
		}
	}
	r = math.Max(s.MinRadius, math.Min(s.MaxRadius, r))
	return Cartesian(r, theta, s.CX, s.CY)
}

// Contains reports whether (x, y) lies inside the sector, within tol of
// its boundaries.
func (s Sector) Contains(x, y, tol float64) bool {
	r, theta := Polar(x, y, s.CX, s.CY)
	theta = NormalizeInto(theta, s.MinAngle-tol)
	if theta > s.MaxAngle+tol {
		return false
	}
	return r >= s.MinRadius-tol && r <= s.MaxRadius+tol
}

// ArcPath returns an SVG path description for a circular arc of radius
// r from startAngle to endAngle around (cx, cy).
func ArcPath(cx, cy, r, start, end float64) string {
	x1, y1 := Cartesian(r, start, cx, cy)
	x2, y2 := Cartesian(r, end, cx, cy)
	large := 0
	if end-start > math.Pi {
		large = 1
	}
	return fmt.Sprintf("M %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f", x1, y1, r, r, large, x2, y2)
}

// AnnulusSectorPath returns a closed SVG path for the annular wedge
// between inner and outer radii across [start, end]. Used to shade ring
// bands per section.
func AnnulusSectorPath(cx, cy, inner, outer, start, end float64) string {
	ox1, oy1 := Cartesian(outer, start, cx, cy)
	ox2, oy2 := Cartesian(outer, end, cx, cy)
	ix1, iy1 := Cartesian(inner, end, cx, cy)
	ix2, iy2 := Cartesian(inner, start, cx, cy)
	large := 0
	if end-start > math.Pi {
		large = 1
	}
	return fmt.Sprintf("M %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f L %.2f %.2f A %.2f %.2f 0 %d 0 %.2f %.2f Z",
		ox1, oy1, outer, outer, large, ox2, oy2,
		ix1, iy1, inner, inner, large, ix2, iy2)
}
