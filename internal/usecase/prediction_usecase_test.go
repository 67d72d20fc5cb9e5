package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"salary-predictor/internal/domain/features"
	"salary-predictor/internal/domain/model"
	"salary-predictor/internal/pkg/apperror"
)

type identityScaler struct {
	err error
}

func (s identityScaler) Transform(rows [][]float64) ([][]float64, error) {
	if s.err != nil {
		return nil, s.err
	}
	return rows, nil
}

type constRegressor struct {
	value float64
	calls *int
	panic bool
}

func (m constRegressor) Predict(rows [][]float64) ([]float64, error) {
	if m.panic {
		panic("index out of range")
	}
	if m.calls != nil {
		*m.calls++
	}
	out := make([]float64, len(rows))
	for i := range out {
		out[i] = m.value
	}
	return out, nil
}

type memCache struct {
	items map[string]float64
	err   error
}

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	if c.err != nil {
		return false, c.err
	}
	v, ok := c.items[key]
	if !ok {
		return false, nil
	}
	*(out.(*float64)) = v
	return true, nil
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	if c.err != nil {
		return c.err
	}
	c.items[key] = value.(float64)
	return nil
}

func sampleRecord() features.Record {
	return features.Record{
		Title:          "QA Tester",
		Years:          "2",
		SalaryDate:     "2024-02-29",
		CompanyCountry: "Else",
		WorkType:       "On Site",
		WorkHour:       "Full Time",
		City:           "Giza",
		Currency:       "USD",
	}
}

func TestPredictor_Predict(t *testing.T) {
	p := NewPredictor(model.Artifacts{Scaler: identityScaler{}, Regressor: constRegressor{value: 12345.6}}, nil, nil)

	out, err := p.Predict(context.Background(), sampleRecord())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.Formatted != "$12,346 USD" {
		t.Fatalf("unexpected formatted value %q", out.Formatted)
	}
	if out.Category != 3 {
		t.Fatalf("expected category 3, got %d", out.Category)
	}
	if out.Features[features.IdxDay] != 29 || out.Features[features.IdxCity] != 8 {
		t.Fatalf("unexpected features %v", out.Features)
	}
}

func TestPredictor_Unavailable(t *testing.T) {
	cases := map[string]model.Artifacts{
		"none":        {},
		"scaler only": {Scaler: identityScaler{}},
		"model only":  {Regressor: constRegressor{value: 1}},
	}
	for name, a := range cases {
		p := NewPredictor(a, nil, nil)
		if p.Available() {
			t.Fatalf("%s: expected unavailable", name)
		}

		_, err := p.Predict(context.Background(), features.Record{})
		if apperror.TypeOf(err) != apperror.TypeUnavailable {
			t.Fatalf("%s: expected UNAVAILABLE, got %v", name, err)
		}
		if apperror.PublicMessage(err) != apperror.MessageUnavailable {
			t.Fatalf("%s: unexpected message %q", name, apperror.PublicMessage(err))
		}
		if !errors.Is(err, ErrModelUnavailable) {
			t.Fatalf("%s: expected ErrModelUnavailable in chain", name)
		}
	}
}

func TestPredictor_ValidationMessageIsVerbatim(t *testing.T) {
	p := NewPredictor(model.Artifacts{Scaler: identityScaler{}, Regressor: constRegressor{value: 1}}, nil, nil)

	rec := sampleRecord()
	rec.SalaryDate = "2024-02-30"
	_, err := p.Predict(context.Background(), rec)
	if apperror.TypeOf(err) != apperror.TypeValidation {
		t.Fatalf("expected VALIDATION, got %v", err)
	}
	if got := apperror.PublicMessage(err); got != "Invalid date format: 2024-02-30. Expected YYYY-MM-DD" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestPredictor_InternalErrorsAreHidden(t *testing.T) {
	cases := map[string]model.Artifacts{
		"scaler error": {Scaler: identityScaler{err: errors.New("secret path /srv/model")}, Regressor: constRegressor{value: 1}},
		"nan":          {Scaler: identityScaler{}, Regressor: constRegressor{value: math.NaN()}},
		"panic":        {Scaler: identityScaler{}, Regressor: constRegressor{panic: true}},
	}
	for name, a := range cases {
		p := NewPredictor(a, nil, nil)
		_, err := p.Predict(context.Background(), sampleRecord())
		if apperror.TypeOf(err) != apperror.TypeInternal {
			t.Fatalf("%s: expected INTERNAL, got %v", name, err)
		}
		if apperror.PublicMessage(err) != apperror.MessageInternal {
			t.Fatalf("%s: internal detail leaked: %q", name, apperror.PublicMessage(err))
		}
	}
}

func TestPredictor_Cache(t *testing.T) {
	calls := 0
	c := &memCache{items: map[string]float64{}}
	p := NewPredictor(model.Artifacts{Scaler: identityScaler{}, Regressor: constRegressor{value: 5000, calls: &calls}, Version: "v1"}, c, nil)

	first, err := p.Predict(context.Background(), sampleRecord())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if first.Cached {
		t.Fatalf("first call must miss the cache")
	}

	rec := sampleRecord()
	rec.Title = "Software Tester"
	second, err := p.Predict(context.Background(), rec)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !second.Cached || second.Value != 5000 {
		t.Fatalf("expected cached 5000, got %+v", second)
	}
	if calls != 1 {
		t.Fatalf("expected model to run once, ran %d times", calls)
	}
}

func TestPredictor_CacheErrorsAreIgnored(t *testing.T) {
	c := &memCache{items: map[string]float64{}, err: errors.New("connection refused")}
	p := NewPredictor(model.Artifacts{Scaler: identityScaler{}, Regressor: constRegressor{value: 700}}, c, nil)

	out, err := p.Predict(context.Background(), sampleRecord())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.Cached || out.Value != 700 {
		t.Fatalf("unexpected prediction %+v", out)
	}
}

func TestPredictor_CacheSeparatesUnversionedArtifacts(t *testing.T) {
	c := &memCache{items: map[string]float64{}}
	first := NewPredictor(model.Artifacts{Scaler: identityScaler{}, Regressor: constRegressor{value: 100}, Fingerprint: "a"}, c, nil)
	second := NewPredictor(model.Artifacts{Scaler: identityScaler{}, Regressor: constRegressor{value: 200}, Fingerprint: "b"}, c, nil)

	if _, err := first.Predict(context.Background(), sampleRecord()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	out, err := second.Predict(context.Background(), sampleRecord())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.Cached || out.Value != 200 {
		t.Fatalf("second model must not read the first model's entry, got %+v", out)
	}
}

func TestPredictionCacheKey(t *testing.T) {
	v := features.Vector{1, 2, 3}
	a := PredictionCacheKey("v1", "d1", v)
	if a != PredictionCacheKey("v1", "d1", v) {
		t.Fatalf("key must be deterministic")
	}
	if a == PredictionCacheKey("v2", "d1", v) {
		t.Fatalf("key must depend on model version")
	}
	if PredictionCacheKey("", "d1", v) == PredictionCacheKey("", "d2", v) {
		t.Fatalf("unversioned artifacts with different content must not share keys")
	}
	v[0] = 9
	if a == PredictionCacheKey("v1", "d1", v) {
		t.Fatalf("key must depend on features")
	}
}

func TestEncodingOptions(t *testing.T) {
	opts := EncodingOptions()
	if len(opts.Tables) != 5 || opts.Tables[0].Name != "currency" || opts.Tables[4].Name != "city" {
		t.Fatalf("unexpected tables %+v", opts.Tables)
	}
	if len(opts.FeatureNames) != features.VectorLen {
		t.Fatalf("unexpected feature names %v", opts.FeatureNames)
	}
	if len(opts.Categories) != 7 || len(opts.Corrections) != 12 {
		t.Fatalf("unexpected categories/corrections")
	}
}
