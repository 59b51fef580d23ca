package pipeline

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/radarhq/techradar/pkg/cache"
	"github.com/radarhq/techradar/pkg/errors"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"sample", Options{UseSample: true}, false},
		{"input file", Options{Input: "radar.csv"}, false},
		{"no source", Options{}, true},
		{"both sources", Options{Input: "radar.csv", UseSample: true}, true},
		{"bad format", Options{UseSample: true, Formats: []string{"gif"}}, true},
		{"bad dimensions", Options{UseSample: true, Width: 50, Height: 50}, true},
		{"detail", Options{UseSample: true, Section: "Tools"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			err := opts.ValidateAndSetDefaults()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAndSetDefaults() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{UseSample: true}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if opts.Width != DefaultWidth || opts.Height != DefaultHeight {
		t.Errorf("dimensions = %dx%d, want defaults", opts.Width, opts.Height)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("formats = %v, want [svg]", opts.Formats)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("scale = %v, want %v", opts.Scale, DefaultScale)
	}
	if opts.Logger == nil {
		t.Error("logger default not applied")
	}
}

func TestExecuteSample(t *testing.T) {
	runner := NewRunner(cache.NewNullCache(), nil, testLogger())
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{
		UseSample: true,
		Formats:   []string{FormatSVG, FormatJSON, FormatCSV},
	})
	if err != nil {
		t.Fatal(err)
	}

	if result.RunID == "" {
		t.Error("missing run id")
	}
	if result.Stats.ItemCount != 40 {
		t.Errorf("items = %d, want 40", result.Stats.ItemCount)
	}
	for _, format := range []string{FormatSVG, FormatJSON, FormatCSV} {
		if len(result.Artifacts[format]) == 0 {
			t.Errorf("missing %s artifact", format)
		}
	}
	if len(result.Layout.Markers) != 40 {
		t.Errorf("layout markers = %d, want 40", len(result.Layout.Markers))
	}
	if result.Dataset.Hash == "" {
		t.Error("missing dataset hash")
	}
}

func TestExecuteDeterministic(t *testing.T) {
	runner := NewRunner(nil, nil, testLogger())
	opts := Options{UseSample: true, Formats: []string{FormatSVG}}

	a, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Artifacts[FormatSVG], b.Artifacts[FormatSVG]) {
		t.Error("repeated runs should produce identical artifacts")
	}
	if a.Dataset.Hash != b.Dataset.Hash {
		t.Error("dataset hash should be stable")
	}
}

func TestExecuteCaching(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(c, nil, testLogger())
	defer runner.Close()

	opts := Options{UseSample: true, Formats: []string{FormatSVG, FormatJSON}}

	first, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheInfo.LayoutHit || first.CacheInfo.RenderHit {
		t.Error("first run should not hit cache")
	}

	second, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheInfo.LayoutHit {
		t.Error("second run should hit layout cache")
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second run should hit artifact cache")
	}
	if !bytes.Equal(first.Artifacts[FormatSVG], second.Artifacts[FormatSVG]) {
		t.Error("cached artifact should match rendered artifact")
	}

	// Refresh bypasses the cache.
	opts.Refresh = true
	third, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if third.CacheInfo.LayoutHit || third.CacheInfo.RenderHit {
		t.Error("refresh run should not report cache hits")
	}
}

func TestExecuteDetail(t *testing.T) {
	runner := NewRunner(nil, nil, testLogger())

	result, err := runner.Execute(context.Background(), Options{
		UseSample: true,
		Section:   "Tools",
		Formats:   []string{FormatJSON},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !result.Layout.Detail || result.Layout.Section != "Tools" {
		t.Errorf("layout detail = %v section = %q", result.Layout.Detail, result.Layout.Section)
	}
	if len(result.Layout.Markers) != 10 {
		t.Errorf("detail markers = %d, want 10", len(result.Layout.Markers))
	}

	_, err = runner.Execute(context.Background(), Options{
		UseSample: true,
		Section:   "Nonsense",
		Formats:   []string{FormatJSON},
	})
	if !errors.Is(err, errors.ErrCodeInvalidSection) {
		t.Errorf("unknown section error code = %v, want %v",
			errors.GetCode(err), errors.ErrCodeInvalidSection)
	}
}

func TestExecuteFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "radar.csv")
	data := "id,name,section,ring,movement,score\n" +
		"1,Terraform,Tools,Adopt,none,0.9\n" +
		"2,BadRow,,Adopt,none,\n" +
		"3,k6,Tools,Trial,new,\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	runner := NewRunner(nil, nil, testLogger())
	result, err := runner.Execute(context.Background(), Options{
		Input:   path,
		Formats: []string{FormatSVG},
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.Stats.ItemCount != 2 {
		t.Errorf("items = %d, want 2", result.Stats.ItemCount)
	}
	if result.Stats.SkippedCount != 1 {
		t.Errorf("skipped = %d, want 1", result.Stats.SkippedCount)
	}
}

func TestExecuteMissingFile(t *testing.T) {
	runner := NewRunner(nil, nil, testLogger())
	_, err := runner.Execute(context.Background(), Options{
		Input:   filepath.Join(t.TempDir(), "missing.csv"),
		Formats: []string{FormatSVG},
	})
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}
