package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"salary-predictor/internal/config"
	"salary-predictor/internal/database"
	dbpostgres "salary-predictor/internal/database/postgres"
	"salary-predictor/internal/delivery/http/middleware"
	"salary-predictor/internal/delivery/http/routes"
	"salary-predictor/internal/domain/model"
	"salary-predictor/internal/infrastructure/artifact"
	"salary-predictor/internal/infrastructure/cache"
	"salary-predictor/internal/infrastructure/persistence/postgres"
	"salary-predictor/internal/usecase"
)

type App struct {
	Fiber     *fiber.App
	Predictor *usecase.Predictor
}

func New(cfg config.Config, uc usecase.PredictionUsecase, logger *zap.Logger) *fiber.App {
	if logger == nil {
		logger = zap.NewNop()
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f, logger)
	routes.NewRegistry(cfg.App.AppName, uc, logger).Register(f)

	return f
}

// Bootstrap wires the artifacts, the optional cache and the HTTP app. Missing
// models or an unreachable Redis never fail startup; the returned cleanup
// releases whatever was opened.
func Bootstrap(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var closers []func() error
	cleanup := func() error {
		var errs []error
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}

	artifacts, closeStore := LoadArtifacts(ctx, cfg, logger)
	closers = append(closers, closeStore)

	var predCache usecase.PredictionCache
	if cfg.Cache.Enabled {
		r := cache.NewRedis(ctx, cfg.Cache, logger)
		closers = append(closers, r.Close)
		predCache = r
	}

	pred := usecase.NewPredictor(artifacts, predCache, logger)
	return &App{Fiber: New(cfg, pred, logger), Predictor: pred}, cleanup, nil
}

// LoadArtifacts reads the scaler and the regressor from the configured source.
// The returned func closes the artifact store, if one was opened.
func LoadArtifacts(ctx context.Context, cfg config.Config, logger *zap.Logger) (model.Artifacts, func() error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	noop := func() error { return nil }

	switch cfg.Model.Source {
	case config.ModelSourcePostgres:
		db, err := ConnectStore(ctx, cfg.Database)
		if err != nil {
			logger.Warn("artifact store unavailable", zap.Error(err))
			return artifact.Load(ctx, nil, cfg.Model.ScalerName, cfg.Model.ModelName, logger), noop
		}
		repo := postgres.NewArtifactRepository(db)
		return artifact.Load(ctx, repo, cfg.Model.ScalerName, cfg.Model.ModelName, logger), db.Close
	default:
		return artifact.Load(ctx, artifact.FileSource{}, cfg.Model.ScalerPath, cfg.Model.ModelPath, logger), noop
	}
}

// ConnectStore opens the Postgres artifact store with a bounded connect time.
func ConnectStore(ctx context.Context, cfg config.DatabaseConfig) (database.DB, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return dbpostgres.Connect(connectCtx, cfg)
}

func registerGlobalMiddleware(app *fiber.App, logger *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
