package pipeline

import (
	"context"
	"encoding/json"

	"github.com/radarhq/techradar/pkg/cache"
	"github.com/radarhq/techradar/pkg/errors"
	"github.com/radarhq/techradar/pkg/radar"
	"github.com/radarhq/techradar/pkg/source/csvfile"
	"github.com/radarhq/techradar/pkg/source/sample"
)

// Load reads radar items and the taxonomy for a pipeline run. The
// returned dataset carries a content hash over the normalized items and
// taxonomy, so two loads of equivalent data produce identical cache keys
// regardless of source formatting.
func Load(ctx context.Context, opts Options) (*Dataset, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}

	tax, err := loadTaxonomy(opts)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{Taxonomy: tax}
	if opts.UseSample {
		ds.Items = sample.Items()
	} else {
		res, err := csvfile.ParseFile(opts.Input)
		if err != nil {
			return nil, err
		}
		ds.Items = res.Items
		ds.Warnings = res.Warnings
	}

	if len(ds.Items) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidData, "no valid items in %s", opts.Input)
	}

	hash, err := datasetHash(ds.Items, tax)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "hash dataset")
	}
	ds.Hash = hash

	return ds, nil
}

func loadTaxonomy(opts Options) (radar.Taxonomy, error) {
	if opts.TaxonomyPath == "" {
		return radar.DefaultTaxonomy(), nil
	}
	return radar.LoadTaxonomy(opts.TaxonomyPath)
}

// datasetHash computes the content hash that anchors every downstream
// cache key.
func datasetHash(items []radar.Item, tax radar.Taxonomy) (string, error) {
	data, err := json.Marshal(struct {
		Items    []radar.Item   `json:"items"`
		Taxonomy radar.Taxonomy `json:"taxonomy"`
	}{items, tax})
	if err != nil {
		return "", err
	}
	return cache.Hash(data), nil
}
