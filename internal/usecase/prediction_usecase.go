package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"salary-predictor/internal/domain/features"
	"salary-predictor/internal/domain/model"
	"salary-predictor/internal/pkg/apperror"
)

type Prediction struct {
	Value     float64
	Formatted string
	Currency  string
	Category  int
	Features  features.Vector
	Cached    bool
}

type PredictionUsecase interface {
	Predict(ctx context.Context, rec features.Record) (Prediction, error)
	Available() bool
	Version() string
}

// Predictor holds the loaded artifacts. Nothing in it changes after
// NewPredictor returns, so one value serves all requests.
type Predictor struct {
	scaler    model.Scaler
	regressor model.Regressor
	version   string
	digest    string
	cache     PredictionCache
	logger    *zap.Logger
}

func NewPredictor(artifacts model.Artifacts, cache PredictionCache, logger *zap.Logger) *Predictor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Predictor{
		scaler:    artifacts.Scaler,
		regressor: artifacts.Regressor,
		version:   artifacts.Version,
		digest:    artifacts.Fingerprint,
		cache:     cache,
		logger:    logger.Named("predictor"),
	}
}

func (p *Predictor) Available() bool {
	return p != nil && p.scaler != nil && p.regressor != nil
}

func (p *Predictor) Version() string {
	if p == nil {
		return ""
	}
	return p.version
}

// Predict returns *apperror.Error on every failure path.
func (p *Predictor) Predict(ctx context.Context, rec features.Record) (out Prediction, err error) {
	if !p.Available() {
		return Prediction{}, apperror.Unavailable(ErrModelUnavailable)
	}

	defer func() {
		if r := recover(); r != nil {
			out = Prediction{}
			err = p.internal("panic", fmt.Errorf("recovered: %v", r))
		}
	}()

	vec, err := features.Build(rec)
	if err != nil {
		var ve *features.ValidationError
		if errors.As(err, &ve) {
			return Prediction{}, apperror.Validation(ve.Message, err)
		}
		return Prediction{}, p.internal("features", err)
	}

	out = Prediction{
		Currency: rec.Currency,
		Category: int(vec[features.IdxJobCategory]),
		Features: vec,
	}

	key := ""
	if p.cache != nil {
		key = PredictionCacheKey(p.version, p.digest, vec)
		var cached float64
		hit, cerr := p.cache.GetJSON(ctx, key, &cached)
		if cerr == nil && hit {
			p.logger.Debug("cache hit", zap.String("key", key))
			out.Value = cached
			out.Formatted = model.FormatSalary(cached, rec.Currency)
			out.Cached = true
			return out, nil
		}
	}

	value, err := p.infer(vec)
	if err != nil {
		return Prediction{}, p.internal("inference", err)
	}

	if p.cache != nil {
		if cerr := p.cache.SetJSON(ctx, key, value, 0); cerr != nil {
			p.logger.Debug("cache set failed", zap.String("key", key), zap.Error(cerr))
		}
	}

	out.Value = value
	out.Formatted = model.FormatSalary(value, rec.Currency)
	return out, nil
}

func (p *Predictor) infer(vec features.Vector) (float64, error) {
	scaled, err := p.scaler.Transform(vec.Matrix())
	if err != nil {
		return 0, fmt.Errorf("scale: %w", err)
	}
	ys, err := p.regressor.Predict(scaled)
	if err != nil {
		return 0, fmt.Errorf("predict: %w", err)
	}
	if len(ys) != 1 {
		return 0, fmt.Errorf("%w: %d values for one row", ErrBadPrediction, len(ys))
	}
	if math.IsNaN(ys[0]) || math.IsInf(ys[0], 0) {
		return 0, fmt.Errorf("%w: %v", ErrBadPrediction, ys[0])
	}
	return ys[0], nil
}

func (p *Predictor) internal(stage string, cause error) *apperror.Error {
	e := apperror.Internal(cause)
	p.logger.Error("prediction failed",
		zap.String("stage", stage),
		zap.Error(cause),
		zap.ByteString("stack", e.Stack),
	)
	return e
}
