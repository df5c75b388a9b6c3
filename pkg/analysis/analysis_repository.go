package analysis

import (
	"context"

	"pocketsense-backend/domain"
	"pocketsense-backend/internal/utils"

	"gorm.io/gorm"
)

type (
	AnalysisRepository interface {
		GetCategoryTotals(ctx context.Context, filter domain.AnalysisFilter, limit, offset int) ([]domain.CategoryTotal, int64, error)
	}

	analysisRepository struct {
		db *gorm.DB
	}
)

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

// GetCategoryTotals sums expense amounts per category name, largest first,
// and reports how many categories matched before paging.
func (r *analysisRepository) GetCategoryTotals(ctx context.Context, filter domain.AnalysisFilter, limit, offset int) ([]domain.CategoryTotal, int64, error) {
	base := r.db.WithContext(ctx).
		Table("expenses").
		Select("categories.name AS category, SUM(expenses.amount) AS total_amount").
		Joins("JOIN categories ON categories.id = expenses.category_id")

	if filter.Category != "" {
		base = base.Where(utils.ILikeContains("categories.name"), utils.ContainsPattern(filter.Category))
	}
	if filter.StartDate != nil && filter.EndDate != nil {
		base = base.Where("expenses.date BETWEEN ? AND ?", *filter.StartDate, *filter.EndDate)
	}
	base = base.Group("categories.name").Session(&gorm.Session{})

	var count int64
	if err := r.db.WithContext(ctx).Table("(?) AS grouped", base).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	results := make([]domain.CategoryTotal, 0)
	if count == 0 {
		return results, 0, nil
	}

	if err := base.
		Order("total_amount DESC").
		Order("category ASC").
		Limit(limit).
		Offset(offset).
		Scan(&results).Error; err != nil {
		return nil, 0, err
	}
	return results, count, nil
}
