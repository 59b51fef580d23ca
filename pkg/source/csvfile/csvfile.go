// Package csvfile loads radar items from CSV or TSV spreadsheets.
//
// The expected column layout matches the export produced by the csv
// sink: id, name, section, ring, movement, score. Column order is free
// and matching is case-insensitive; id, movement and score are
// optional. Rows that fail validation are skipped and reported as
// warnings rather than aborting the whole load.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/radarhq/techradar/pkg/errors"
	"github.com/radarhq/techradar/pkg/radar"
)

// Result carries the parsed items together with per-row warnings for
// records that were skipped.
type Result struct {
	Items    []radar.Item
	Warnings []string
}

type columns struct {
	id       int
	name     int
	section  int
	ring     int
	movement int
	score    int
}

// ParseFile loads a spreadsheet from disk. Files with a .tsv extension
// are read tab-separated; everything else is treated as CSV.
func ParseFile(path string) (*Result, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	delim := ','
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		delim = '\t'
	}
	return Parse(f, delim)
}

// Parse reads a spreadsheet from r using the given field delimiter.
func Parse(r io.Reader, delim rune) (*Result, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New(errors.ErrCodeInvalidData, "empty input: missing header row")
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read header")
	}

	cols, err := mapHeader(header)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	nextID := 1
	row := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("row %d: %v", row, err))
			continue
		}

		item, err := parseRow(rec, cols, &nextID)
		if err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("row %d: %s", row, errors.UserMessage(err)))
			continue
		}
		res.Items = append(res.Items, item)
	}

	if err := radar.ValidateItems(res.Items); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidData, err, "validate items")
	}
	return res, nil
}

// mapHeader resolves column positions by name. Unknown columns are
// ignored so datasets can carry extra bookkeeping columns.
func mapHeader(header []string) (columns, error) {
	cols := columns{id: -1, name: -1, section: -1, ring: -1, movement: -1, score: -1}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "id":
			cols.id = i
		case "name", "item", "label":
			cols.name = i
		case "section", "category", "quadrant":
			cols.section = i
		case "ring", "tier":
			cols.ring = i
		case "movement", "status":
			cols.movement = i
		case "score":
			cols.score = i
		}
	}

	var missing []string
	if cols.name == -1 {
		missing = append(missing, "name")
	}
	if cols.section == -1 {
		missing = append(missing, "section")
	}
	if cols.ring == -1 {
		missing = append(missing, "ring")
	}
	if len(missing) > 0 {
		return cols, errors.New(errors.ErrCodeInvalidFormat,
			"header is missing required columns: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

func parseRow(rec []string, cols columns, nextID *int) (radar.Item, error) {
	field := func(i int) string {
		if i < 0 || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	item := radar.Item{
		Name:    field(cols.name),
		Section: field(cols.section),
		Ring:    field(cols.ring),
	}
	if err := errors.ValidateItemName(item.Name); err != nil {
		return radar.Item{}, err
	}
	if item.Section == "" {
		return radar.Item{}, errors.New(errors.ErrCodeInvalidData, "missing section")
	}
	if item.Ring == "" {
		return radar.Item{}, errors.New(errors.ErrCodeInvalidData, "missing ring")
	}

	if raw := field(cols.id); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return radar.Item{}, errors.New(errors.ErrCodeInvalidData, "invalid id %q", raw)
		}
		item.ID = id
		if id >= *nextID {
			*nextID = id + 1
		}
	} else {
		item.ID = *nextID
		*nextID++
	}

	movement, err := radar.ParseMovement(field(cols.movement))
	if err != nil {
		return radar.Item{}, errors.New(errors.ErrCodeInvalidData, "invalid movement %q", field(cols.movement))
	}
	item.Movement = movement

	if raw := field(cols.score); raw != "" {
		score, err := strconv.ParseFloat(raw, 64)
		if err != nil || score < 0 || score > 1 {
			return radar.Item{}, errors.New(errors.ErrCodeInvalidData, "invalid score %q (want 0..1)", raw)
		}
		item.Score = &score
	}

	return item, nil
}
