package sink

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/radarhq/techradar/pkg/radar"
)

// CSVHeader is the column layout shared with the csvfile source, so an
// exported dataset re-imports unchanged.
var CSVHeader = []string{"id", "name", "section", "ring", "movement", "score"}

// RenderCSV writes the item list in spreadsheet form. Markers are not
// involved: the export carries source data, not computed positions
// (those live in the JSON layout export).
func RenderCSV(items []radar.Item) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(CSVHeader); err != nil {
		return nil, err
	}
	for _, it := range items {
		score := ""
		if it.Score != nil {
			score = strconv.FormatFloat(*it.Score, 'f', -1, 64)
		}
		movement := string(it.Movement)
		if movement == "" {
			movement = string(radar.MovementNone)
		}
		rec := []string{
			strconv.Itoa(it.ID),
			it.Name,
			it.Section,
			it.Ring,
			movement,
			score,
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
