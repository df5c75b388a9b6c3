package handlers

import (
	"errors"

	"pocketsense-backend/domain"
	"pocketsense-backend/internal/api/presenters"
	"pocketsense-backend/pkg/expense"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ExpenseHandler interface {
		CreateExpense(c *fiber.Ctx) error
		GetExpenses(c *fiber.Ctx) error
		GetExpense(c *fiber.Ctx) error
		UpdateExpense(c *fiber.Ctx) error
		DeleteExpense(c *fiber.Ctx) error
		UploadReceipt(c *fiber.Ctx) error
	}

	expenseHandler struct {
		expenseService expense.ExpenseService
		validator      *validator.Validate
	}
)

func NewExpenseHandler(expenseService expense.ExpenseService, validator *validator.Validate) ExpenseHandler {
	return &expenseHandler{
		expenseService: expenseService,
		validator:      validator,
	}
}

func (h *expenseHandler) CreateExpense(c *fiber.Ctx) error {
	req := new(domain.CreateExpenseRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateExpense, err)
	}

	res, err := h.expenseService.CreateExpense(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, referenceStatus(err), domain.MessageFailedCreateExpense, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateExpense)
}

func (h *expenseHandler) GetExpenses(c *fiber.Ctx) error {
	params := parseListParams(c)

	expenses, count, err := h.expenseService.GetExpenses(c.Context(), params)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetExpenses, err)
	}
	return presenters.SuccessResponse(c, paginated(expenses, params, count), fiber.StatusOK, domain.MessageSuccessGetExpenses)
}

func (h *expenseHandler) GetExpense(c *fiber.Ctx) error {
	res, err := h.expenseService.GetExpenseByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetExpense, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetExpense)
}

func (h *expenseHandler) UpdateExpense(c *fiber.Ctx) error {
	req := new(domain.UpdateExpenseRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateExpense, err)
	}

	res, err := h.expenseService.UpdateExpense(c.Context(), c.Params("id"), *req)
	if err != nil {
		status := errorStatus(err)
		if errors.Is(err, domain.ErrCategoryNotFound) {
			status = fiber.StatusBadRequest
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedUpdateExpense, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateExpense)
}

func (h *expenseHandler) DeleteExpense(c *fiber.Ctx) error {
	if err := h.expenseService.DeleteExpense(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteExpense, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteExpense)
}

func (h *expenseHandler) UploadReceipt(c *fiber.Ctx) error {
	file, err := c.FormFile("receipt_image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadReceipt, domain.ErrReceiptRequired)
	}

	res, err := h.expenseService.UploadReceipt(c.Context(), c.Params("id"), file)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUploadReceipt, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadReceipt)
}
