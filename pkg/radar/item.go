// Package radar defines the data model shared by every stage of the
// techradar pipeline: items, movement states, and the taxonomy of
// sections and rings that classifies them.
//
// Items are owned by the caller and treated as immutable by the layout
// and rendering packages. A single rendering pass never mutates the
// item list; derived structures (blips, charts) are rebuilt from
// scratch on every render.
package radar

import (
	"fmt"
	"strings"
)

// Movement describes how an item changed since the previous radar
// edition. It only affects the marker glyph, never the layout.
type Movement string

const (
	// MovementNone marks an item that did not move between editions.
	MovementNone Movement = "none"

	// MovementNew marks an item appearing on the radar for the first time.
	MovementNew Movement = "new"

	// MovementMoved marks an item that changed ring since the last edition.
	MovementMoved Movement = "moved"
)

// ParseMovement converts a string into a Movement. The empty string
// maps to MovementNone.
func ParseMovement(s string) (Movement, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return MovementNone, nil
	case "new":
		return MovementNew, nil
	case "moved":
		return MovementMoved, nil
	default:
		return MovementNone, fmt.Errorf("unknown movement: %q", s)
	}
}

// Item is a single radar entry. ID doubles as the visible marker label
// and as the seed basis for deterministic placement, so it must be
// positive and unique within one rendering pass.
type Item struct {
	ID       int      `json:"id" toml:"id"`
	Name     string   `json:"name" toml:"name"`
	Section  string   `json:"section" toml:"section"`
	Ring     string   `json:"ring" toml:"ring"`
	Movement Movement `json:"movement,omitempty" toml:"movement"`

	// Score optionally biases the radial position within the ring band.
	// Higher scores place the marker closer to the inner edge of its
	// band. Values outside [0,1] are clamped during placement.
	Score *float64 `json:"score,omitempty" toml:"score"`
}

// HasScore reports whether the item carries an explicit score.
func (it Item) HasScore() bool { return it.Score != nil }

// Validate checks the fields that every source must guarantee before
// handing items to the layout engine. Section/ring membership is not
// checked here: unknown references are a per-item skip at layout time,
// not a load failure.
func (it Item) Validate() error {
	if it.ID <= 0 {
		return fmt.Errorf("item %q: id must be positive, got %d", it.Name, it.ID)
	}
	if it.Name == "" {
		return fmt.Errorf("item %d: name is required", it.ID)
	}
	if it.Score != nil && (*it.Score < 0 || *it.Score > 1) {
		return fmt.Errorf("item %d: score %v outside [0,1]", it.ID, *it.Score)
	}
	return nil
}

// ValidateItems validates a batch and checks ID uniqueness.
func ValidateItems(items []Item) error {
	seen := make(map[int]string, len(items))
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return err
		}
		if prev, dup := seen[it.ID]; dup {
			return fmt.Errorf("duplicate item id %d (%q and %q)", it.ID, prev, it.Name)
		}
		seen[it.ID] = it.Name
	}
	return nil
}
