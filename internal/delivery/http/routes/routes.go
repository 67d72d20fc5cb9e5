package routes

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"salary-predictor/internal/delivery/http/handler"
	"salary-predictor/internal/usecase"
)

type Registry struct {
	health  *handler.HealthHandler
	predict *handler.PredictHandler
	options *handler.OptionsHandler
}

func NewRegistry(appName string, uc usecase.PredictionUsecase, logger *zap.Logger) *Registry {
	return &Registry{
		health:  handler.NewHealthHandler(uc),
		predict: handler.NewPredictHandler(uc, appName, logger),
		options: handler.NewOptionsHandler(),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerPages(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerPages(app *fiber.App) {
	r.predict.RegisterPages(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	v1 := app.Group("/api/v1")
	r.predict.RegisterRoutes(v1)
	r.options.RegisterRoutes(v1)
}
