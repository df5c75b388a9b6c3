package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Settlement struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ExpenseID        *uuid.UUID      `gorm:"type:uuid;index" json:"expense_id,omitempty"`
	GroupID          *uuid.UUID      `gorm:"type:uuid;index" json:"group_id,omitempty"`
	PayerID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"payer_id"`
	ReceiverID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"receiver_id"`
	Amount           decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	PaymentStatus    string          `gorm:"size:20;not null;default:pending" json:"payment_status"` // pending, settled
	SettlementMethod string          `gorm:"size:50;not null" json:"settlement_method"`              // cash, upi, card
	DueDate          *time.Time      `gorm:"type:date" json:"due_date,omitempty"`

	Expense  *Expense `gorm:"foreignKey:ExpenseID"`
	Group    *Group   `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	Payer    *Student `gorm:"foreignKey:PayerID;constraint:OnDelete:CASCADE"`
	Receiver *Student `gorm:"foreignKey:ReceiverID;constraint:OnDelete:CASCADE"`
	Timestamp
}

// PaymentTransaction tracks a Midtrans Snap payment opened for a settlement.
type PaymentTransaction struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	SettlementID uuid.UUID       `gorm:"type:uuid;not null;index" json:"settlement_id"`
	OrderID      string          `gorm:"uniqueIndex;not null" json:"order_id"`
	Token        string          `json:"token"`
	RedirectURL  string          `json:"redirect_url"`
	GrossAmount  decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"gross_amount"`
	Status       string          `gorm:"size:20;not null;default:pending" json:"status"` // pending, paid, failed

	Settlement *Settlement `gorm:"foreignKey:SettlementID;constraint:OnDelete:CASCADE"`
	Timestamp
}
