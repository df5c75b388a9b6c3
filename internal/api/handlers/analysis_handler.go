package handlers

import (
	"pocketsense-backend/domain"
	"pocketsense-backend/internal/api/presenters"
	"pocketsense-backend/pkg/analysis"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AnalysisHandler interface {
		MonthlyAnalysis(c *fiber.Ctx) error
	}

	analysisHandler struct {
		analysisService analysis.AnalysisService
		validator       *validator.Validate
	}
)

func NewAnalysisHandler(analysisService analysis.AnalysisService, validator *validator.Validate) AnalysisHandler {
	return &analysisHandler{
		analysisService: analysisService,
		validator:       validator,
	}
}

func (h *analysisHandler) MonthlyAnalysis(c *fiber.Ctx) error {
	req := new(domain.MonthlyAnalysisRequest)
	if err := c.QueryParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedQueryRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMonthlyAnalysis, err)
	}

	res, err := h.analysisService.MonthlyAnalysis(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetMonthlyAnalysis, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMonthlyAnalysis)
}
