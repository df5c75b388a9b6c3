package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Expense struct {
	ID           uuid.UUID                  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Amount       decimal.Decimal            `gorm:"type:numeric(10,2);not null" json:"amount"`
	CategoryID   uuid.UUID                  `gorm:"type:uuid;not null;index" json:"category_id"`
	SplitType    string                     `gorm:"size:50;not null" json:"split_type"` // equal, proportional
	Date         time.Time                  `gorm:"type:date;not null;<-:create" json:"date"`
	ReceiptImage string                     `json:"receipt_image,omitempty"`
	GroupID      uuid.UUID                  `gorm:"type:uuid;not null;index" json:"group_id"`
	PayerID      uuid.UUID                  `gorm:"type:uuid;not null;index" json:"payer_id"`
	MembersSplit map[string]decimal.Decimal `gorm:"type:jsonb;serializer:json" json:"members_split"`

	Category    *Category     `gorm:"foreignKey:CategoryID"`
	Group       *Group        `gorm:"foreignKey:GroupID"`
	Payer       *Student      `gorm:"foreignKey:PayerID;constraint:OnDelete:CASCADE"`
	Settlements []*Settlement `gorm:"foreignKey:ExpenseID;constraint:OnDelete:CASCADE"`
	Timestamp
}
