package midtrans

import (
	"context"

	"pocketsense-backend/domain"
	"pocketsense-backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	MidtransRepository interface {
		CreatePaymentTransaction(ctx context.Context, tx *entities.PaymentTransaction) error
		GetPaymentTransactionByOrderID(ctx context.Context, orderID string) (*entities.PaymentTransaction, error)
		MarkPaid(ctx context.Context, tx *entities.PaymentTransaction) error
		MarkFailed(ctx context.Context, tx *entities.PaymentTransaction) error
	}

	midtransRepository struct {
		db *gorm.DB
	}
)

func NewMidtransRepository(db *gorm.DB) MidtransRepository {
	return &midtransRepository{db: db}
}

func (r *midtransRepository) CreatePaymentTransaction(ctx context.Context, tx *entities.PaymentTransaction) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(tx).Error
}

func (r *midtransRepository) GetPaymentTransactionByOrderID(ctx context.Context, orderID string) (*entities.PaymentTransaction, error) {
	var tx entities.PaymentTransaction
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&tx).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

// MarkPaid flags the payment as paid and its settlement as settled together.
func (r *midtransRepository) MarkPaid(ctx context.Context, tx *entities.PaymentTransaction) error {
	return r.db.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		if err := db.Model(&entities.PaymentTransaction{}).
			Where("id = ?", tx.ID).
			Update("status", domain.PaymentTransactionPaid).Error; err != nil {
			return err
		}
		return db.Model(&entities.Settlement{}).
			Where("id = ?", tx.SettlementID).
			Update("payment_status", domain.PaymentStatusSettled).Error
	})
}

func (r *midtransRepository) MarkFailed(ctx context.Context, tx *entities.PaymentTransaction) error {
	return r.db.WithContext(ctx).
		Model(&entities.PaymentTransaction{}).
		Where("id = ?", tx.ID).
		Update("status", domain.PaymentTransactionFailed).Error
}
