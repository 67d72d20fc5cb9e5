package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"salary-predictor/internal/config"
)

func New(cfg config.AppConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var zc zap.Config
	if cfg.Environment == "production" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	l, err := zc.Build()
	if err != nil {
		return nil, err
	}
	return l.With(zap.String("app", cfg.AppName), zap.String("env", cfg.Environment)), nil
}
