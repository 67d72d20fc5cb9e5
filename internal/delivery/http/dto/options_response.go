package dto

import "salary-predictor/internal/usecase"

type CodeEntry struct {
	Key  string `json:"key" yaml:"key"`
	Code int    `json:"code" yaml:"code"`
}

type CodeTable struct {
	Name    string      `json:"name" yaml:"name"`
	Entries []CodeEntry `json:"entries" yaml:"entries"`
}

type JobCategory struct {
	Code     int      `json:"code" yaml:"code"`
	Name     string   `json:"name" yaml:"name"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

type TypoCorrection struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

type OptionsResponse struct {
	Tables          []CodeTable      `json:"tables" yaml:"tables"`
	JobCategories   []JobCategory    `json:"job_categories" yaml:"job_categories"`
	DefaultCategory int              `json:"default_category" yaml:"default_category"`
	TypoCorrections []TypoCorrection `json:"typo_corrections" yaml:"typo_corrections"`
	FeatureNames    []string         `json:"feature_names" yaml:"feature_names"`
}

func NewOptionsResponse(o usecase.Options) OptionsResponse {
	res := OptionsResponse{
		Tables:          make([]CodeTable, 0, len(o.Tables)),
		JobCategories:   make([]JobCategory, 0, len(o.Categories)),
		DefaultCategory: o.DefaultCategory,
		TypoCorrections: make([]TypoCorrection, 0, len(o.Corrections)),
		FeatureNames:    o.FeatureNames,
	}
	for _, t := range o.Tables {
		ct := CodeTable{Name: t.Name, Entries: make([]CodeEntry, 0, len(t.Entries))}
		for _, e := range t.Entries {
			ct.Entries = append(ct.Entries, CodeEntry{Key: e.Key, Code: e.Code})
		}
		res.Tables = append(res.Tables, ct)
	}
	for _, c := range o.Categories {
		res.JobCategories = append(res.JobCategories, JobCategory{Code: c.Code, Name: c.Name, Keywords: c.Keywords})
	}
	for _, c := range o.Corrections {
		res.TypoCorrections = append(res.TypoCorrections, TypoCorrection{From: c.From, To: c.To})
	}
	return res
}
