package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"salary-predictor/internal/domain/features"
)

type PredictionCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type predictionCacheKeyInput struct {
	Version     string          `json:"version"`
	Fingerprint string          `json:"fingerprint"`
	Features    features.Vector `json:"features"`
}

// PredictionCacheKey identifies a raw prediction by the loaded artifacts and
// encoded features, so two titles that land in the same category share an
// entry.
func PredictionCacheKey(version, fingerprint string, v features.Vector) string {
	b, _ := json.Marshal(predictionCacheKeyInput{Version: version, Fingerprint: fingerprint, Features: v})
	sum := sha256.Sum256(b)
	return "prediction:" + hex.EncodeToString(sum[:])
}
