package settlement

import (
	"context"

	"pocketsense-backend/domain"
	"pocketsense-backend/entities"
	"pocketsense-backend/internal/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var settlementOrdering = map[string]string{
	"due_date": "settlements.due_date",
	"amount":   "settlements.amount",
}

type (
	SettlementRepository interface {
		CreateSettlement(ctx context.Context, settlement *entities.Settlement) error
		GetSettlementByID(ctx context.Context, id string) (*entities.Settlement, error)
		GetSettlements(ctx context.Context, filter domain.SettlementFilter, params domain.ListParams) ([]*entities.Settlement, int64, error)
		UpdateSettlement(ctx context.Context, settlement *entities.Settlement) error
		DeleteSettlement(ctx context.Context, id string) error
	}

	settlementRepository struct {
		db *gorm.DB
	}
)

func NewSettlementRepository(db *gorm.DB) SettlementRepository {
	return &settlementRepository{db: db}
}

func (r *settlementRepository) preload(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Payer").
		Preload("Receiver").
		Preload("Group.Members").
		Preload("Expense.Category")
}

func (r *settlementRepository) CreateSettlement(ctx context.Context, settlement *entities.Settlement) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(settlement).Error
}

func (r *settlementRepository) GetSettlementByID(ctx context.Context, id string) (*entities.Settlement, error) {
	var settlement entities.Settlement
	if err := r.preload(r.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&settlement).Error; err != nil {
		return nil, err
	}
	return &settlement, nil
}

func (r *settlementRepository) GetSettlements(ctx context.Context, filter domain.SettlementFilter, params domain.ListParams) ([]*entities.Settlement, int64, error) {
	var settlements []*entities.Settlement
	var count int64

	query := r.db.WithContext(ctx).
		Model(&entities.Settlement{}).
		Joins("JOIN students AS payer ON payer.id = settlements.payer_id")

	if filter.GroupID != "" {
		query = query.Where("settlements.group_id = ?", filter.GroupID)
	}
	if filter.PayerID != "" {
		query = query.Where("settlements.payer_id = ?", filter.PayerID)
	}
	if filter.Status != "" {
		query = query.Where("settlements.payment_status = ?", filter.Status)
	}
	query = utils.ApplySearch(query, params.Search, "payer.username", "settlements.payment_status")

	if err := query.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	query = utils.ApplyOrdering(query, params.Ordering, settlementOrdering, "settlements.created_at DESC")
	if err := r.preload(query.Select("settlements.*")).
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&settlements).Error; err != nil {
		return nil, 0, err
	}
	return settlements, count, nil
}

func (r *settlementRepository) UpdateSettlement(ctx context.Context, settlement *entities.Settlement) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(settlement).Error
}

func (r *settlementRepository) DeleteSettlement(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Settlement{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
