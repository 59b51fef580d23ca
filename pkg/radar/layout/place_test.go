package layout

import (
	"math"
	"testing"

	"github.com/radarhq/techradar/pkg/radar"
	"github.com/radarhq/techradar/pkg/radar/geom"
)

func testConfig() Config { return DefaultConfig(800, 800) }

func ptr(v float64) *float64 { return &v }

func TestPlaceContainment(t *testing.T) {
	tax := radar.DefaultTaxonomy()
	cfg := testConfig()
	items := []radar.Item{
		{ID: 1, Name: "a", Section: "Tools", Ring: "Adopt"},
		{ID: 2, Name: "b", Section: "Tools", Ring: "Hold", Score: ptr(0.5)},
		{ID: 3, Name: "c", Section: "Platforms", Ring: "Trial"},
		{ID: 4, Name: "d", Section: "Techniques", Ring: "Assess", Score: ptr(1.0)},
		{ID: 5, Name: "e", Section: "Languages & Frameworks", Ring: "Adopt", Score: ptr(0.0)},
	}

	blips := Place(items, tax, cfg)
	if len(blips) != len(items) {
		t.Fatalf("placed %d blips, want %d", len(blips), len(items))
	}
	for _, b := range blips {
		if !b.Bounds.Contains(b.X, b.Y, 1e-6) {
			t.Errorf("item %d placed at (%v,%v) outside bounds %+v", b.Item.ID, b.X, b.Y, b.Bounds)
		}
	}
}

func TestPlaceSkipsUnknownReferences(t *testing.T) {
	tax := radar.DefaultTaxonomy()
	cfg := testConfig()
	items := []radar.Item{
		{ID: 1, Name: "ok", Section: "Tools", Ring: "Adopt"},
		{ID: 2, Name: "bad section", Section: "Gadgets", Ring: "Adopt"},
		{ID: 3, Name: "bad ring", Section: "Tools", Ring: "Maybe"},
		{ID: 4, Name: "ok too", Section: "Platforms", Ring: "Hold"},
	}

	blips := Place(items, tax, cfg)
	if len(blips) != 2 {
		t.Fatalf("placed %d blips, want 2", len(blips))
	}
	if blips[0].Item.ID != 1 || blips[1].Item.ID != 4 {
		t.Errorf("survivors = %d, %d; want 1, 4", blips[0].Item.ID, blips[1].Item.ID)
	}
}

func TestUnknownItemDoesNotAffectOthers(t *testing.T) {
	tax := radar.DefaultTaxonomy()
	cfg := testConfig()
	clean := []radar.Item{
		{ID: 1, Name: "a", Section: "Tools", Ring: "Adopt"},
		{ID: 2, Name: "b", Section: "Tools", Ring: "Adopt"},
		{ID: 3, Name: "c", Section: "Platforms", Ring: "Trial"},
	}
	dirty := []radar.Item{
		clean[0],
		{ID: 99, Name: "stray", Section: "Nope", Ring: "Adopt"},
		clean[1],
		clean[2],
	}

	a := Build(clean, tax, cfg)
	b := Build(dirty, tax, cfg)
	if len(a) != len(b) {
		t.Fatalf("layout sizes differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Item.ID != b[i].Item.ID || a[i].X != b[i].X || a[i].Y != b[i].Y {
			t.Errorf("blip %d differs: (%v,%v) vs (%v,%v)", a[i].Item.ID, a[i].X, a[i].Y, b[i].X, b[i].Y)
		}
	}
}

func TestScoreMonotonicity(t *testing.T) {
	tax := radar.DefaultTaxonomy()
	cfg := testConfig()
	items := []radar.Item{
		{ID: 1, Name: "high", Section: "Tools", Ring: "Trial", Score: ptr(0.9)},
		{ID: 2, Name: "low", Section: "Tools", Ring: "Trial", Score: ptr(0.1)},
	}

	blips := Place(items, tax, cfg)
	rHigh, _ := geom.Polar(blips[0].X, blips[0].Y, cfg.CenterX, cfg.CenterY)
	rLow, _ := geom.Polar(blips[1].X, blips[1].Y, cfg.CenterX, cfg.CenterY)
	if rHigh >= rLow {
		t.Errorf("higher score should sit closer to center: rHigh=%v, rLow=%v", rHigh, rLow)
	}
}

func TestScoreClamped(t *testing.T) {
	tax := radar.DefaultTaxonomy()
	cfg := testConfig()
	items := []radar.Item{
		{ID: 7, Name: "over", Section: "Tools", Ring: "Adopt", Score: ptr(1.0)},
		{ID: 8, Name: "under", Section: "Tools", Ring: "Adopt", Score: ptr(0.0)},
	}
	for _, b := range Place(items, tax, cfg) {
		r, _ := geom.Polar(b.X, b.Y, cfg.CenterX, cfg.CenterY)
		if r < b.Bounds.MinRadius-1e-9 || r > b.Bounds.MaxRadius+1e-9 {
			t.Errorf("item %d radius %v outside [%v,%v]", b.Item.ID, r, b.Bounds.MinRadius, b.Bounds.MaxRadius)
		}
	}
}

func TestRingBands(t *testing.T) {
	cfg := testConfig()
	prev := 0.0
	for i := 0; i < radar.RingCount; i++ {
		inner, outer := cfg.RingBand(i)
		if math.Abs(inner-prev) > 1e-9 {
			t.Errorf("band %d inner = %v, want %v", i, inner, prev)
		}
		if outer <= inner {
			t.Errorf("band %d outer %v <= inner %v", i, outer, inner)
		}
		prev = outer
	}
	if _, outer := cfg.RingBand(radar.RingCount - 1); math.Abs(outer-0.88*cfg.MaxRadius) > 1e-9 {
		t.Errorf("outermost band edge = %v, want %v", outer, 0.88*cfg.MaxRadius)
	}
}

func TestSectionSpans(t *testing.T) {
	cfg := testConfig()
	n := 4
	for i := 0; i < n; i++ {
		start, end := cfg.SectionSpan(i, n)
		if math.Abs((end-start)-geom.Tau/float64(n)) > 1e-9 {
			t.Errorf("section %d span = %v, want %v", i, end-start, geom.Tau/float64(n))
		}
	}
	start0, _ := cfg.SectionSpan(0, n)
	if math.Abs(start0+math.Pi/2) > 1e-9 {
		t.Errorf("first section starts at %v, want -pi/2", start0)
	}
}

func TestPlaceDetailQuadrant(t *testing.T) {
	tax := radar.DefaultTaxonomy()
	cfg := testConfig()
	items := []radar.Item{
		{ID: 1, Name: "a", Section: "Tools", Ring: "Adopt"},
		{ID: 2, Name: "b", Section: "Tools", Ring: "Hold"},
		{ID: 3, Name: "other", Section: "Platforms", Ring: "Adopt"},
	}

	blips := PlaceDetail(items, "Tools", tax, cfg)
	if len(blips) != 2 {
		t.Fatalf("detail placed %d blips, want 2", len(blips))
	}
	for _, b := range blips {
		_, theta := geom.Polar(b.X, b.Y, cfg.CenterX, cfg.CenterY)
		theta = geom.NormalizeInto(theta, DetailStartAngle)
		if theta < DetailStartAngle+cfg.AngularPad-1e-9 || theta > DetailEndAngle-cfg.AngularPad+1e-9 {
			t.Errorf("item %d at theta %v outside detail quadrant", b.Item.ID, theta)
		}
	}

	if got := PlaceDetail(items, "Gadgets", tax, cfg); got != nil {
		t.Errorf("unknown section should place nothing, got %d blips", len(got))
	}
}
