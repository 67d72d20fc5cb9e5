package handler

import (
	"bytes"
	"encoding/json"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"salary-predictor/internal/delivery/http/dto"
	"salary-predictor/internal/domain/features"
	"salary-predictor/internal/pkg/apperror"
	"salary-predictor/internal/pkg/response"
	"salary-predictor/internal/usecase"
)

const validationPrefix = "Input validation error: "

type PredictHandler struct {
	uc      usecase.PredictionUsecase
	appName string
	logger  *zap.Logger
}

// flexString lets JSON clients send years as either 5 or "5".
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	*s = flexString(b)
	return nil
}

type predictRequest struct {
	Title          string     `json:"title" form:"title"`
	Years          flexString `json:"years" form:"years"`
	SalaryDate     string     `json:"salaryDate" form:"salaryDate"`
	CompanyCountry string     `json:"companyCountry" form:"companyCountry"`
	WorkType       string     `json:"worktype" form:"worktype"`
	WorkHour       string     `json:"workhour" form:"workhour"`
	City           string     `json:"city" form:"city"`
	Currency       string     `json:"currency" form:"currency"`
}

func (r predictRequest) record() features.Record {
	return features.Record{
		Title:          r.Title,
		Years:          string(r.Years),
		SalaryDate:     r.SalaryDate,
		CompanyCountry: r.CompanyCountry,
		WorkType:       r.WorkType,
		WorkHour:       r.WorkHour,
		City:           r.City,
		Currency:       r.Currency,
	}
}

func NewPredictHandler(uc usecase.PredictionUsecase, appName string, logger *zap.Logger) *PredictHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PredictHandler{uc: uc, appName: appName, logger: logger.Named("predict")}
}

func (h *PredictHandler) RegisterPages(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Form)
	r.Post("/", h.Submit)
}

func (h *PredictHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/predictions", h.Predict)
}

func (h *PredictHandler) Form(c fiber.Ctx) error {
	return h.render(c, newFormView(h.appName, features.Record{}))
}

// Submit always answers with the form page; failures become a message on it.
func (h *PredictHandler) Submit(c fiber.Ctx) error {
	var rec features.Record
	if err := c.Bind().Body(&rec); err != nil {
		h.logger.Debug("form bind failed", zap.Error(err))
	}

	view := newFormView(h.appName, rec)

	p, err := h.uc.Predict(c.Context(), rec)
	if err != nil {
		view.Error = formMessage(err)
		return h.render(c, view)
	}

	view.Prediction = p.Formatted
	return h.render(c, view)
}

func (h *PredictHandler) Predict(c fiber.Ctx) error {
	var req predictRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	p, err := h.uc.Predict(c.Context(), req.record())
	if err != nil {
		return err
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewPredictionResponse(p, h.uc.Version()))
}

func (h *PredictHandler) render(c fiber.Ctx, v formView) error {
	b, err := renderForm(v)
	if err != nil {
		return apperror.Internal(err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(fiber.StatusOK).Send(b)
}

func formMessage(err error) string {
	if apperror.TypeOf(err) == apperror.TypeValidation {
		return validationPrefix + apperror.PublicMessage(err)
	}
	return apperror.PublicMessage(err)
}
