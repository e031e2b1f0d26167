package models

import (
	"time"

	"gorm.io/datatypes"
)

type EntityModel struct {
	ID        uint   `gorm:"primaryKey"`
	SID       string `gorm:"uniqueIndex;size:32;not null"`
	TaxID     string `gorm:"uniqueIndex;size:32;not null"`
	Name      string `gorm:"size:255;not null"`
	Kind      string `gorm:"size:20;not null"`
	Status    string `gorm:"size:20;not null;index"`
	Version   int    `gorm:"default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (EntityModel) TableName() string {
	return "entities"
}

// EntityProfileModel is the optional extension record, one row per entity.
type EntityProfileModel struct {
	ID           uint   `gorm:"primaryKey"`
	EntityID     uint   `gorm:"uniqueIndex;not null"`
	Address      string `gorm:"size:500"`
	ContactEmail string `gorm:"size:255"`
	ContactPhone string `gorm:"size:32"`
	BankName     string `gorm:"size:255"`
	BankAccount  string `gorm:"size:64"`
	Attributes   datatypes.JSON
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (EntityProfileModel) TableName() string {
	return "entity_profiles"
}
