package dto

import (
	"salary-predictor/internal/domain/features"
	"salary-predictor/internal/usecase"
)

type FeatureValue struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

type PredictionResponse struct {
	Prediction   float64        `json:"prediction" yaml:"prediction"`
	Formatted    string         `json:"formatted" yaml:"formatted"`
	Currency     string         `json:"currency" yaml:"currency"`
	JobCategory  int            `json:"job_category" yaml:"job_category"`
	Features     []FeatureValue `json:"features" yaml:"features"`
	Cached       bool           `json:"cached" yaml:"cached"`
	ModelVersion string         `json:"model_version,omitempty" yaml:"model_version,omitempty"`
}

func NamedFeatures(v features.Vector) []FeatureValue {
	names := features.FeatureNames()
	out := make([]FeatureValue, 0, len(names))
	for i, n := range names {
		out = append(out, FeatureValue{Name: n, Value: v[i]})
	}
	return out
}

func NewPredictionResponse(p usecase.Prediction, version string) PredictionResponse {
	return PredictionResponse{
		Prediction:   p.Value,
		Formatted:    p.Formatted,
		Currency:     p.Currency,
		JobCategory:  p.Category,
		Features:     NamedFeatures(p.Features),
		Cached:       p.Cached,
		ModelVersion: version,
	}
}
