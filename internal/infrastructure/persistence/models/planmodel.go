package models

import (
	"time"

	"gorm.io/datatypes"
)

type PlanModel struct {
	ID           uint   `gorm:"primaryKey"`
	SID          string `gorm:"uniqueIndex;size:32;not null"`
	Name         string `gorm:"size:255;not null"`
	PriceInCents int64  `gorm:"not null"`
	Currency     string `gorm:"size:10;not null;default:'BRL'"`
	BillingCycle string `gorm:"size:20;not null"`
	Active       bool   `gorm:"not null;default:true;index"`
	Revision     int    `gorm:"not null;default:1"`
	SupersededBy *uint  `gorm:"index"`
	Features     datatypes.JSON
	Version      int `gorm:"default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (PlanModel) TableName() string {
	return "plans"
}
