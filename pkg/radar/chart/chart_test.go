package chart

import (
	"testing"

	"github.com/radarhq/techradar/pkg/radar"
	"github.com/radarhq/techradar/pkg/source/sample"
)

type recordingInteraction struct {
	sections []string
	items    []int
}

func (r *recordingInteraction) SectionActivated(name string) { r.sections = append(r.sections, name) }
func (r *recordingInteraction) ItemActivated(it radar.Item)  { r.items = append(r.items, it.ID) }

func TestAssemble(t *testing.T) {
	tax := sample.Taxonomy()
	c := Assemble(sample.Items(), tax, 800, 800)

	if len(c.Rings) != radar.RingCount {
		t.Errorf("rings = %d, want %d", len(c.Rings), radar.RingCount)
	}
	if len(c.Dividers) != len(tax.Sections) {
		t.Errorf("dividers = %d, want %d", len(c.Dividers), len(tax.Sections))
	}
	if len(c.RingLabels) != radar.RingCount {
		t.Errorf("ring labels = %d, want %d", len(c.RingLabels), radar.RingCount)
	}
	if len(c.SectionLabels) != len(tax.Sections) {
		t.Errorf("section labels = %d, want %d", len(c.SectionLabels), len(tax.Sections))
	}
	if len(c.Markers) != 40 {
		t.Errorf("markers = %d, want 40", len(c.Markers))
	}
	if c.Detail {
		t.Error("full chart should not be marked detail")
	}

	// Ring labels sit on the horizontal axis at band midpoints.
	for i, l := range c.RingLabels {
		if l.Y != c.CenterY {
			t.Errorf("ring label %d at y=%v, want %v", i, l.Y, c.CenterY)
		}
		if l.X <= c.CenterX {
			t.Errorf("ring label %d at x=%v, want right of center", i, l.X)
		}
	}

	// Alternating shading starting with the innermost band.
	for i, r := range c.Rings {
		if r.Shaded != (i%2 == 0) {
			t.Errorf("ring %d shaded = %v", i, r.Shaded)
		}
	}
}

func TestAssembleSkipsUnknown(t *testing.T) {
	tax := radar.DefaultTaxonomy()
	items := []radar.Item{
		{ID: 1, Name: "ok", Section: "Tools", Ring: "Adopt"},
		{ID: 2, Name: "stray", Section: "Gadgets", Ring: "Adopt"},
	}
	c := Assemble(items, tax, 800, 800)
	if len(c.Markers) != 1 {
		t.Fatalf("markers = %d, want 1", len(c.Markers))
	}
	if c.Markers[0].Item.ID != 1 {
		t.Errorf("surviving marker id = %d, want 1", c.Markers[0].Item.ID)
	}
}

func TestGlyphFor(t *testing.T) {
	tests := []struct {
		movement radar.Movement
		want     Glyph
	}{
		{radar.MovementNone, GlyphCircle},
		{radar.MovementNew, GlyphRinged},
		{radar.MovementMoved, GlyphTriangle},
		{radar.Movement(""), GlyphCircle},
	}
	for _, tt := range tests {
		if got := GlyphFor(tt.movement); got != tt.want {
			t.Errorf("GlyphFor(%q) = %v, want %v", tt.movement, got, tt.want)
		}
	}
}

func TestMarkerColorsFollowSection(t *testing.T) {
	tax := sample.Taxonomy()
	c := Assemble(sample.Items(), tax, 800, 800)
	for _, m := range c.Markers {
		sec, ok := tax.SectionByName(m.Item.Section)
		if !ok {
			t.Fatalf("marker %d references unknown section %q", m.Item.ID, m.Item.Section)
		}
		if m.Color != sec.Color || m.Key != sec.Key {
			t.Errorf("marker %d color/key = %s/%s, want %s/%s", m.Item.ID, m.Color, m.Key, sec.Color, sec.Key)
		}
	}
}

func TestActivation(t *testing.T) {
	rec := &recordingInteraction{}
	tax := sample.Taxonomy()
	c := Assemble(sample.Items(), tax, 800, 800, WithInteraction(rec))

	if !c.ActivateSection("Tools") {
		t.Error("ActivateSection(Tools) = false")
	}
	if c.ActivateSection("Gadgets") {
		t.Error("ActivateSection(Gadgets) should fail")
	}
	if !c.ActivateItem(11) {
		t.Error("ActivateItem(11) = false")
	}
	if c.ActivateItem(999) {
		t.Error("ActivateItem(999) should fail")
	}

	if len(rec.sections) != 1 || rec.sections[0] != "Tools" {
		t.Errorf("sections = %v, want [Tools]", rec.sections)
	}
	if len(rec.items) != 1 || rec.items[0] != 11 {
		t.Errorf("items = %v, want [11]", rec.items)
	}
}

func TestMarkerByID(t *testing.T) {
	c := Assemble(sample.Items(), sample.Taxonomy(), 800, 800)
	m, ok := c.MarkerByID(22)
	if !ok || m.Item.Name != "PostgreSQL" {
		t.Errorf("MarkerByID(22) = %v, %v", m.Item.Name, ok)
	}
	if _, ok := c.MarkerByID(0); ok {
		t.Error("MarkerByID(0) should fail")
	}
}

func TestAssembleDetail(t *testing.T) {
	tax := sample.Taxonomy()
	c, err := AssembleDetail(sample.Items(), "Tools", tax, 500, 500)
	if err != nil {
		t.Fatalf("AssembleDetail: %v", err)
	}
	if !c.Detail || c.Section != "Tools" {
		t.Errorf("detail chart metadata = %v/%q", c.Detail, c.Section)
	}
	if len(c.Markers) != 10 {
		t.Errorf("detail markers = %d, want 10", len(c.Markers))
	}
	if len(c.SectionLabels) != 1 || c.SectionLabels[0].Name != "Tools" {
		t.Errorf("detail section labels = %v", c.SectionLabels)
	}
	if len(c.Rings) != radar.RingCount {
		t.Errorf("detail rings = %d, want %d", len(c.Rings), radar.RingCount)
	}

	if _, err := AssembleDetail(sample.Items(), "Gadgets", tax, 500, 500); err == nil {
		t.Error("expected error for unknown section")
	}
}
