package handler

import (
	"github.com/gofiber/fiber/v3"

	"salary-predictor/internal/pkg/response"
	"salary-predictor/internal/usecase"
)

type HealthHandler struct {
	uc usecase.PredictionUsecase
}

type healthResponse struct {
	Status         string `json:"status"`
	ModelAvailable bool   `json:"model_available"`
	ModelVersion   string `json:"model_version,omitempty"`
}

func NewHealthHandler(uc usecase.PredictionUsecase) *HealthHandler {
	return &HealthHandler{uc: uc}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

// Health reports ok even in degraded mode; model_available tells the rest.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	res := healthResponse{Status: "ok"}
	if h.uc != nil {
		res.ModelAvailable = h.uc.Available()
		res.ModelVersion = h.uc.Version()
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
