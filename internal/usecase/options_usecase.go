package usecase

import (
	"salary-predictor/internal/domain/encoding"
	"salary-predictor/internal/domain/features"
	"salary-predictor/internal/title"
)

type TableOptions struct {
	Name    string
	Entries []encoding.Entry
}

type Options struct {
	Tables          []TableOptions
	Categories      []title.Category
	DefaultCategory int
	Corrections     []title.Correction
	FeatureNames    []string
}

// EncodingOptions describes every table the encoder uses, in a stable order.
func EncodingOptions() Options {
	tables := make([]TableOptions, 0, len(encoding.All()))
	for _, t := range encoding.All() {
		tables = append(tables, TableOptions{Name: t.Name(), Entries: t.Entries()})
	}
	return Options{
		Tables:          tables,
		Categories:      title.Categories(),
		DefaultCategory: title.DefaultCategory,
		Corrections:     title.Corrections(),
		FeatureNames:    features.FeatureNames(),
	}
}
