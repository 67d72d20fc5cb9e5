package artifact

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"salary-predictor/internal/domain/model"
)

// Source returns the raw document stored under name.
type Source interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// FileSource treats the name as a filesystem path.
type FileSource struct{}

func (FileSource) Fetch(_ context.Context, name string) ([]byte, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("artifact path is empty")
	}
	return os.ReadFile(name)
}

// Load fetches and decodes the scaler and the regressor. It never fails: a part
// that cannot be loaded is left nil and the reason is logged, so the service
// can start in degraded mode.
func Load(ctx context.Context, src Source, scalerName, modelName string, logger *zap.Logger) model.Artifacts {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("artifact")

	var out model.Artifacts
	if src == nil {
		logger.Warn("no artifact source configured, predictions disabled")
		return out
	}

	var scalerVersion, modelVersion string
	digest := sha256.New()

	if data, err := src.Fetch(ctx, scalerName); err != nil {
		logger.Warn("scaler not loaded", zap.String("name", scalerName), zap.Error(err))
	} else if s, v, err := model.DecodeScaler(data); err != nil {
		logger.Warn("scaler not loaded", zap.String("name", scalerName), zap.Error(err))
	} else {
		out.Scaler = s
		scalerVersion = v
		digest.Write(data)
		logger.Info("scaler loaded", zap.String("name", scalerName), zap.String("version", v))
	}

	if data, err := src.Fetch(ctx, modelName); err != nil {
		logger.Warn("model not loaded", zap.String("name", modelName), zap.Error(err))
	} else if r, v, err := model.DecodeRegressor(data); err != nil {
		logger.Warn("model not loaded", zap.String("name", modelName), zap.Error(err))
	} else {
		out.Regressor = r
		modelVersion = v
		digest.Write([]byte{0})
		digest.Write(data)
		logger.Info("model loaded", zap.String("name", modelName), zap.String("version", v))
	}

	out.Version = version(scalerVersion, modelVersion)
	if out.Complete() {
		out.Fingerprint = hex.EncodeToString(digest.Sum(nil))
	}
	if !out.Complete() {
		logger.Warn("prediction models unavailable, running degraded")
	}
	return out
}

func version(scaler, model string) string {
	switch {
	case scaler == "" && model == "":
		return ""
	case scaler == model:
		return model
	default:
		return fmt.Sprintf("%s+%s", model, scaler)
	}
}
