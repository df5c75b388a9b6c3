package handlers

import (
	"errors"
	"strconv"

	"pocketsense-backend/domain"
	"pocketsense-backend/internal/utils/storage"

	"github.com/gofiber/fiber/v2"
)

func parseListParams(c *fiber.Ctx) domain.ListParams {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = domain.DefaultPage
	}

	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(domain.DefaultLimit)))
	if err != nil || limit < 1 {
		limit = domain.DefaultLimit
	}
	if limit > domain.MaxLimit {
		limit = domain.MaxLimit
	}

	return domain.ListParams{
		Search:   c.Query("search"),
		Ordering: c.Query("ordering"),
		Page:     page,
		Limit:    limit,
	}
}

func paginated(items interface{}, params domain.ListParams, count int64) fiber.Map {
	return fiber.Map{
		"items":      items,
		"pagination": domain.NewPagination(params.Page, params.Limit, count),
	}
}

var notFoundErrors = []error{
	domain.ErrStudentNotFound,
	domain.ErrGroupNotFound,
	domain.ErrCategoryNotFound,
	domain.ErrExpenseNotFound,
	domain.ErrSettlementNotFound,
	domain.ErrPaymentTransactionNotFound,
}

var badRequestErrors = []error{
	domain.ErrParseUUID,
	domain.ErrInvalidDate,
	domain.ErrGroupMemberNotFound,
	domain.ErrInvalidAmountPrecision,
	domain.ErrAmountNotPositive,
	domain.ErrAmountOutOfRange,
	domain.ErrSplitAmountNotPositive,
	domain.ErrReceiptRequired,
	domain.ErrInvalidImageFormat,
	domain.ErrSettlementAlreadySettled,
	domain.ErrPayerIsReceiver,
	domain.ErrInvalidStatusFilter,
	domain.ErrSettlementReference,
}

func isOneOf(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// errorStatus maps a service error onto an HTTP status code.
func errorStatus(err error) int {
	switch {
	case isOneOf(err, notFoundErrors):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUsernameTaken):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired):
		return fiber.StatusUnauthorized
	case errors.Is(err, storage.ErrStorageDisabled),
		errors.Is(err, domain.ErrPaymentNotConfigured):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, domain.ErrPaymentFailed):
		return fiber.StatusBadGateway
	case isOneOf(err, badRequestErrors):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// referenceStatus is errorStatus for create payloads, where an unknown
// referenced row is a bad request rather than a missing resource.
func referenceStatus(err error) int {
	if isOneOf(err, notFoundErrors) {
		return fiber.StatusBadRequest
	}
	return errorStatus(err)
}
