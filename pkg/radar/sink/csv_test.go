package sink

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/radarhq/techradar/pkg/radar"
	"github.com/radarhq/techradar/pkg/source/sample"
)

func TestRenderCSV(t *testing.T) {
	data, err := RenderCSV(sample.Items())
	if err != nil {
		t.Fatal(err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 41 {
		t.Fatalf("rows = %d, want header + 40", len(records))
	}
	for i, col := range CSVHeader {
		if records[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], col)
		}
	}

	// Spot-check a scored and an unscored row.
	terraform := records[11]
	if terraform[1] != "Terraform" || terraform[5] != "0.95" {
		t.Errorf("terraform row = %v", terraform)
	}
	grafana := records[13]
	if grafana[1] != "Grafana" || grafana[4] != "moved" || grafana[5] != "" {
		t.Errorf("grafana row = %v", grafana)
	}
}

func TestRenderCSVDefaultsMovement(t *testing.T) {
	items := []radar.Item{{ID: 1, Name: "x", Section: "Tools", Ring: "Adopt"}}
	data, err := RenderCSV(items)
	if err != nil {
		t.Fatal(err)
	}
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if got := records[1][4]; got != string(radar.MovementNone) {
		t.Errorf("movement = %q, want %q", got, radar.MovementNone)
	}
}
