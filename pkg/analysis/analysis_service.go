package analysis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pocketsense-backend/domain"
	"pocketsense-backend/internal/utils/cache"
	"pocketsense-backend/internal/utils/logger"
)

const cacheTTL = 10 * time.Minute

type (
	AnalysisService interface {
		MonthlyAnalysis(ctx context.Context, req domain.MonthlyAnalysisRequest) (*domain.AnalysisPage, error)
	}

	analysisService struct {
		analysisRepository AnalysisRepository
		cache              cache.Cache
	}
)

// NewAnalysisService builds the report service. A nil cache disables caching.
func NewAnalysisService(analysisRepository AnalysisRepository, cache cache.Cache) AnalysisService {
	return &analysisService{
		analysisRepository: analysisRepository,
		cache:              cache,
	}
}

// BuildFilter parses the request dates. The date window is only applied when
// both bounds are present.
func BuildFilter(req domain.MonthlyAnalysisRequest) (domain.AnalysisFilter, error) {
	filter := domain.AnalysisFilter{Category: strings.TrimSpace(req.Category)}
	if req.StartDate == "" || req.EndDate == "" {
		return filter, nil
	}

	start, err := time.Parse(domain.DateLayout, req.StartDate)
	if err != nil {
		return filter, domain.ErrInvalidDate
	}
	end, err := time.Parse(domain.DateLayout, req.EndDate)
	if err != nil {
		return filter, domain.ErrInvalidDate
	}
	filter.StartDate = &start
	filter.EndDate = &end
	return filter, nil
}

func (s *analysisService) cacheKey(ctx context.Context, filter domain.AnalysisFilter, page int) string {
	var version int64
	if v, err := s.cache.GetInt(ctx, domain.AnalysisCacheVersionKey); err == nil {
		version = v
	} else {
		logger.GetLogger().Warnw("Failed to read analysis cache version", "error", err)
	}

	var start, end string
	if filter.StartDate != nil {
		start = filter.StartDate.Format(domain.DateLayout)
		end = filter.EndDate.Format(domain.DateLayout)
	}
	return fmt.Sprintf("analysis:monthly:v%d:%s:%s:%s:%d",
		version, strings.ToLower(filter.Category), start, end, page)
}

func (s *analysisService) MonthlyAnalysis(ctx context.Context, req domain.MonthlyAnalysisRequest) (*domain.AnalysisPage, error) {
	filter, err := BuildFilter(req)
	if err != nil {
		return nil, err
	}

	page := req.Page
	if page < 1 {
		page = 1
	}

	compute := func() (*domain.AnalysisPage, error) {
		offset := (page - 1) * domain.AnalysisPageSize
		results, count, err := s.analysisRepository.GetCategoryTotals(ctx, filter, domain.AnalysisPageSize, offset)
		if err != nil {
			return nil, err
		}
		return &domain.AnalysisPage{
			Count:      count,
			Page:       page,
			PageSize:   domain.AnalysisPageSize,
			TotalPages: (count + domain.AnalysisPageSize - 1) / domain.AnalysisPageSize,
			Results:    results,
		}, nil
	}

	if s.cache == nil {
		return compute()
	}
	return cache.GetOrSet(ctx, s.cache, s.cacheKey(ctx, filter, page), cacheTTL, compute)
}
