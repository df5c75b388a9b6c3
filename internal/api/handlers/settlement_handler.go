package handlers

import (
	"pocketsense-backend/domain"
	"pocketsense-backend/internal/api/presenters"
	"pocketsense-backend/pkg/settlement"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SettlementHandler interface {
		CreateSettlement(c *fiber.Ctx) error
		GetSettlements(c *fiber.Ctx) error
		GetSettlement(c *fiber.Ctx) error
		UpdateSettlement(c *fiber.Ctx) error
		DeleteSettlement(c *fiber.Ctx) error
		SendReminder(c *fiber.Ctx) error
	}

	settlementHandler struct {
		settlementService settlement.SettlementService
		validator         *validator.Validate
	}
)

func NewSettlementHandler(settlementService settlement.SettlementService, validator *validator.Validate) SettlementHandler {
	return &settlementHandler{
		settlementService: settlementService,
		validator:         validator,
	}
}

func (h *settlementHandler) CreateSettlement(c *fiber.Ctx) error {
	req := new(domain.CreateSettlementRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateSettlement, err)
	}

	res, err := h.settlementService.CreateSettlement(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, referenceStatus(err), domain.MessageFailedCreateSettlement, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateSettlement)
}

func (h *settlementHandler) GetSettlements(c *fiber.Ctx) error {
	params := parseListParams(c)
	filter := domain.SettlementFilter{
		GroupID: c.Query("group"),
		PayerID: c.Query("payer"),
		Status:  c.Query("status"),
	}

	settlements, count, err := h.settlementService.GetSettlements(c.Context(), filter, params)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetSettlements, err)
	}
	return presenters.SuccessResponse(c, paginated(settlements, params, count), fiber.StatusOK, domain.MessageSuccessGetSettlements)
}

func (h *settlementHandler) GetSettlement(c *fiber.Ctx) error {
	res, err := h.settlementService.GetSettlementByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetSettlement, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSettlement)
}

func (h *settlementHandler) UpdateSettlement(c *fiber.Ctx) error {
	req := new(domain.UpdateSettlementRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateSettlement, err)
	}

	res, err := h.settlementService.UpdateSettlement(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUpdateSettlement, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateSettlement)
}

func (h *settlementHandler) DeleteSettlement(c *fiber.Ctx) error {
	if err := h.settlementService.DeleteSettlement(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteSettlement, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteSettlement)
}

// SendReminder answers 200 when mailed, 400 when already settled, 404 for an
// unknown id and 500 when the mail transport fails.
func (h *settlementHandler) SendReminder(c *fiber.Ctx) error {
	if err := h.settlementService.SendReminder(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedSendReminder, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSendReminder)
}
