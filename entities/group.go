package entities

import (
	"github.com/google/uuid"
)

type Group struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	GroupType string    `gorm:"size:50;not null" json:"group_type"` // study, sports, friends, trip_groups

	Members  []*Student `gorm:"many2many:group_members;constraint:OnDelete:CASCADE" json:"members"`
	Expenses []*Expense `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}

type Category struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `gorm:"size:50;not null" json:"name"`

	Expenses []*Expense `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}
