package model

import (
	"errors"
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"

	"salary-predictor/internal/domain/features"
)

var ErrInvalidArtifact = errors.New("invalid model artifact")

const (
	ScalerStandard = "standard"
	ScalerMinMax   = "minmax"

	RegressorLinear       = "linear"
	RegressorTreeEnsemble = "tree_ensemble"
)

// ScalerArtifact is the exported form of a fitted scaler. JSON documents are
// accepted as well since they are valid YAML.
type ScalerArtifact struct {
	Kind         string    `yaml:"kind" validate:"required,oneof=standard minmax"`
	Version      string    `yaml:"version"`
	FeatureNames []string  `yaml:"feature_names" validate:"omitempty,len=10"`
	Mean         []float64 `yaml:"mean" validate:"omitempty,len=10"`
	Min          []float64 `yaml:"min" validate:"omitempty,len=10"`
	Scale        []float64 `yaml:"scale" validate:"required,len=10"`
}

type RegressorArtifact struct {
	Kind         string    `yaml:"kind" validate:"required,oneof=linear tree_ensemble"`
	Version      string    `yaml:"version"`
	FeatureNames []string  `yaml:"feature_names" validate:"omitempty,len=10"`
	Intercept    float64   `yaml:"intercept"`
	Coefficients []float64 `yaml:"coefficients" validate:"omitempty,len=10"`
	Aggregation  string    `yaml:"aggregation" validate:"omitempty,oneof=mean sum"`
	BaseScore    float64   `yaml:"base_score"`
	LearningRate float64   `yaml:"learning_rate" validate:"gte=0"`
	Trees        []Tree    `yaml:"trees" validate:"dive"`
}

var validate = validator.New()

func DecodeScaler(data []byte) (Scaler, string, error) {
	var a ScalerArtifact
	if err := decode(data, &a); err != nil {
		return nil, "", err
	}
	if err := checkFeatureNames(a.FeatureNames); err != nil {
		return nil, "", err
	}

	switch a.Kind {
	case ScalerStandard:
		if len(a.Mean) != features.VectorLen {
			return nil, "", fmt.Errorf("%w: standard scaler needs %d means", ErrInvalidArtifact, features.VectorLen)
		}
		return StandardScaler{Mean: a.Mean, Scale: a.Scale}, a.Version, nil
	default:
		if len(a.Min) != features.VectorLen {
			return nil, "", fmt.Errorf("%w: minmax scaler needs %d mins", ErrInvalidArtifact, features.VectorLen)
		}
		return MinMaxScaler{Min: a.Min, Scale: a.Scale}, a.Version, nil
	}
}

func DecodeRegressor(data []byte) (Regressor, string, error) {
	var a RegressorArtifact
	if err := decode(data, &a); err != nil {
		return nil, "", err
	}
	if err := checkFeatureNames(a.FeatureNames); err != nil {
		return nil, "", err
	}

	switch a.Kind {
	case RegressorLinear:
		if len(a.Coefficients) != features.VectorLen {
			return nil, "", fmt.Errorf("%w: linear model needs %d coefficients", ErrInvalidArtifact, features.VectorLen)
		}
		return LinearRegressor{Intercept: a.Intercept, Coefficients: a.Coefficients}, a.Version, nil
	default:
		if len(a.Trees) == 0 {
			return nil, "", fmt.Errorf("%w: tree ensemble without trees", ErrInvalidArtifact)
		}
		for i, t := range a.Trees {
			if err := t.check(features.VectorLen); err != nil {
				return nil, "", fmt.Errorf("%w: tree %d: %v", ErrInvalidArtifact, i, err)
			}
		}
		agg := a.Aggregation
		if agg == "" {
			agg = AggregateMean
		}
		lr := a.LearningRate
		if agg == AggregateSum && lr == 0 {
			lr = 1
		}
		return TreeEnsemble{
			Trees:        a.Trees,
			Aggregation:  agg,
			BaseScore:    a.BaseScore,
			LearningRate: lr,
			Width:        features.VectorLen,
		}, a.Version, nil
	}
}

func decode(data []byte, out any) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty document", ErrInvalidArtifact)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArtifact, err)
	}
	if err := validate.Struct(out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArtifact, err)
	}
	return nil
}

func checkFeatureNames(names []string) error {
	if len(names) == 0 {
		return nil
	}
	if !slices.Equal(names, features.FeatureNames()) {
		return fmt.Errorf("%w: feature order %v does not match %v", ErrInvalidArtifact, names, features.FeatureNames())
	}
	return nil
}

// Artifacts is what a loader hands to the prediction service. Either part may
// be nil when it failed to load.
type Artifacts struct {
	Scaler      Scaler
	Regressor   Regressor
	Version     string
	// Fingerprint is a digest of the loaded documents. It tells apart
	// artifacts that declare the same version, or none.
	Fingerprint string
}

func (a Artifacts) Complete() bool {
	return a.Scaler != nil && a.Regressor != nil
}
