package entities

import (
	"github.com/google/uuid"
)

type Student struct {
	ID                    uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username              string            `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Email                 string            `gorm:"size:254" json:"email"`
	Password              string            `json:"-"`
	College               string            `gorm:"size:255" json:"college"`
	Semester              int               `json:"semester"`
	DefaultPaymentMethods map[string]string `gorm:"type:jsonb;serializer:json" json:"default_payment_methods"`

	Groups []*Group `gorm:"many2many:group_members;" json:"-"`
	Timestamp
}
