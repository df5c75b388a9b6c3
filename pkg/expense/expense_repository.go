package expense

import (
	"context"

	"pocketsense-backend/domain"
	"pocketsense-backend/entities"
	"pocketsense-backend/internal/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var expenseOrdering = map[string]string{
	"date":   "expenses.date",
	"amount": "expenses.amount",
}

type (
	ExpenseRepository interface {
		CreateExpenseWithSettlements(ctx context.Context, expense *entities.Expense, settlements []*entities.Settlement) error
		GetExpenseByID(ctx context.Context, id string) (*entities.Expense, error)
		GetExpenses(ctx context.Context, params domain.ListParams) ([]*entities.Expense, int64, error)
		UpdateExpense(ctx context.Context, expense *entities.Expense) error
		UpdateReceiptImage(ctx context.Context, id string, url string) error
		DeleteExpense(ctx context.Context, id string) error
	}

	expenseRepository struct {
		db *gorm.DB
	}
)

func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

// CreateExpenseWithSettlements writes the expense and every derived
// settlement atomically.
func (r *expenseRepository) CreateExpenseWithSettlements(ctx context.Context, expense *entities.Expense, settlements []*entities.Settlement) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(expense).Error; err != nil {
			return err
		}
		if len(settlements) == 0 {
			return nil
		}
		return tx.Omit(clause.Associations).Create(&settlements).Error
	})
}

func (r *expenseRepository) GetExpenseByID(ctx context.Context, id string) (*entities.Expense, error) {
	var expense entities.Expense
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Payer").
		Preload("Group.Members").
		Where("id = ?", id).
		First(&expense).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepository) GetExpenses(ctx context.Context, params domain.ListParams) ([]*entities.Expense, int64, error) {
	var expenses []*entities.Expense
	var count int64

	query := r.db.WithContext(ctx).
		Model(&entities.Expense{}).
		Joins("JOIN categories ON categories.id = expenses.category_id").
		Joins("JOIN students AS payer ON payer.id = expenses.payer_id")
	query = utils.ApplySearch(query, params.Search, "categories.name", "payer.username")

	if err := query.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	query = utils.ApplyOrdering(query, params.Ordering, expenseOrdering, "expenses.date DESC")
	if err := query.
		Select("expenses.*").
		Preload("Category").
		Preload("Payer").
		Preload("Group.Members").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&expenses).Error; err != nil {
		return nil, 0, err
	}
	return expenses, count, nil
}

func (r *expenseRepository) UpdateExpense(ctx context.Context, expense *entities.Expense) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(expense).Error
}

func (r *expenseRepository) UpdateReceiptImage(ctx context.Context, id string, url string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Expense{}).
		Where("id = ?", id).
		Update("receipt_image", url).Error
}

func (r *expenseRepository) DeleteExpense(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Expense{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
