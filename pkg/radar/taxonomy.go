package radar

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// RingCount is the fixed number of maturity rings on every radar.
const RingCount = 4

// Section is one pie-slice category of the radar. Key is a short
// identifier used in exports and CSS class names; Color is any SVG
// color literal.
type Section struct {
	Name  string `json:"name" toml:"name"`
	Key   string `json:"key" toml:"key"`
	Color string `json:"color" toml:"color"`
}

// Taxonomy holds the canonical orderings the layout engine clamps
// against: sections in drawing order and exactly four rings ordered
// innermost (most mature) to outermost.
type Taxonomy struct {
	Sections []Section `json:"sections" toml:"sections"`
	Rings    []string  `json:"rings" toml:"rings"`
}

// DefaultTaxonomy returns the built-in four-section taxonomy used when
// no configuration file is supplied.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		Sections: []Section{
			{Name: "Techniques", Key: "tech", Color: "#3db5be"},
			{Name: "Tools", Key: "tools", Color: "#83ad78"},
			{Name: "Platforms", Key: "plat", Color: "#e88744"},
			{Name: "Languages & Frameworks", Key: "lang", Color: "#8d2145"},
		},
		Rings: []string{"Adopt", "Trial", "Assess", "Hold"},
	}
}

// LoadTaxonomy reads a taxonomy from a TOML file and validates it.
func LoadTaxonomy(path string) (Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Taxonomy{}, fmt.Errorf("read taxonomy %s: %w", path, err)
	}
	var t Taxonomy
	if err := toml.Unmarshal(data, &t); err != nil {
		return Taxonomy{}, fmt.Errorf("parse taxonomy %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return Taxonomy{}, fmt.Errorf("taxonomy %s: %w", path, err)
	}
	return t, nil
}

// Validate checks cardinality and uniqueness constraints.
func (t Taxonomy) Validate() error {
	if len(t.Sections) == 0 {
		return fmt.Errorf("at least one section is required")
	}
	if len(t.Rings) != RingCount {
		return fmt.Errorf("exactly %d rings are required, got %d", RingCount, len(t.Rings))
	}
	names := make(map[string]bool, len(t.Sections))
	for _, s := range t.Sections {
		if s.Name == "" {
			return fmt.Errorf("section name is required")
		}
		if names[s.Name] {
			return fmt.Errorf("duplicate section %q", s.Name)
		}
		names[s.Name] = true
	}
	rings := make(map[string]bool, len(t.Rings))
	for _, r := range t.Rings {
		if r == "" {
			return fmt.Errorf("ring name is required")
		}
		if rings[r] {
			return fmt.Errorf("duplicate ring %q", r)
		}
		rings[r] = true
	}
	return nil
}

// SectionIndex returns the position of the named section in drawing
// order, or false if the name is not part of the taxonomy.
func (t Taxonomy) SectionIndex(name string) (int, bool) {
	for i, s := range t.Sections {
		if s.Name == name {
			return i, true
		}
	}
	return 0, false
}

// RingIndex returns the position of the named ring (0 = innermost), or
// false if the name is not part of the taxonomy.
func (t Taxonomy) RingIndex(name string) (int, bool) {
	for i, r := range t.Rings {
		if r == name {
			return i, true
		}
	}
	return 0, false
}

// SectionByName returns the section definition for name.
func (t Taxonomy) SectionByName(name string) (Section, bool) {
	for _, s := range t.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}
