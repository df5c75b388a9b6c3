package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	AnalysisPageSize        = 10
	AnalysisCacheVersionKey = "analysis:monthly:version"
)

var (
	MessageSuccessGetMonthlyAnalysis = "monthly analysis retrieved successfully"
	MessageFailedGetMonthlyAnalysis  = "failed to retrieve monthly analysis"
)

type (
	MonthlyAnalysisRequest struct {
		Category  string `query:"category"`
		StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
		EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
		Page      int    `query:"page" validate:"omitempty,min=1"`
	}

	// AnalysisFilter applies the date window only when both bounds are set.
	AnalysisFilter struct {
		Category  string
		StartDate *time.Time
		EndDate   *time.Time
	}

	CategoryTotal struct {
		Category    string          `json:"category"`
		TotalAmount decimal.Decimal `json:"total_amount"`
	}

	AnalysisPage struct {
		Count      int64           `json:"count"`
		Page       int             `json:"page"`
		PageSize   int             `json:"page_size"`
		TotalPages int64           `json:"total_pages"`
		Results    []CategoryTotal `json:"results"`
	}
)
