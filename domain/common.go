package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

const (
	DateLayout = "2006-01-02"

	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

var (
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedQueryRequest   = "failed to parse query parameters"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	ErrParseUUID     = errors.New("failed to parse UUID")
	ErrTokenNotFound = errors.New("failed to token not found")
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("token invalid")
	ErrInvalidDate   = errors.New("invalid date, expected YYYY-MM-DD")

	ErrAmountNotPositive      = errors.New("amount must be a positive number")
	ErrInvalidAmountPrecision = errors.New("amount must have at most 2 decimal places")
	ErrAmountOutOfRange       = errors.New("amount must be less than 100000000")

	// MaxAmount is the exclusive upper bound of a numeric(10,2) column.
	MaxAmount = decimal.New(1, 8)
)

// CheckAmount reports whether amount fits a numeric(10,2) money column
// without rounding: positive, at most two fractional digits, below MaxAmount.
func CheckAmount(amount decimal.Decimal) error {
	switch {
	case !amount.IsPositive():
		return ErrAmountNotPositive
	case !amount.Equal(amount.Round(2)):
		return ErrInvalidAmountPrecision
	case amount.GreaterThanOrEqual(MaxAmount):
		return ErrAmountOutOfRange
	}
	return nil
}

type (
	// ListParams carries the search, ordering and paging query parameters
	// shared by every list endpoint.
	ListParams struct {
		Search   string
		Ordering string
		Page     int
		Limit    int
	}

	Pagination struct {
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		Total      int64 `json:"total"`
		TotalPages int64 `json:"total_pages"`
	}
)

func (p ListParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

func NewPagination(page, limit int, total int64) Pagination {
	var totalPages int64
	if limit > 0 {
		totalPages = (total + int64(limit) - 1) / int64(limit)
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
