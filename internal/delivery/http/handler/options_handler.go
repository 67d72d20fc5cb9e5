package handler

import (
	"github.com/gofiber/fiber/v3"

	"salary-predictor/internal/delivery/http/dto"
	"salary-predictor/internal/pkg/response"
	"salary-predictor/internal/usecase"
)

type OptionsHandler struct {
	options dto.OptionsResponse
}

func NewOptionsHandler() *OptionsHandler {
	return &OptionsHandler{options: dto.NewOptionsResponse(usecase.EncodingOptions())}
}

func (h *OptionsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/options", h.List)
}

func (h *OptionsHandler) List(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.options)
}
