package models

import (
	"time"

	"gorm.io/datatypes"
)

type ContractModel struct {
	ID               uint   `gorm:"primaryKey"`
	SID              string `gorm:"uniqueIndex;size:32;not null"`
	EntityID         uint   `gorm:"index;not null"`
	PlanID           uint   `gorm:"index;not null"`
	Status           string `gorm:"size:20;not null;index"`
	CurrentPaymentID *uint  `gorm:"index"`
	SuspendReason    *string `gorm:"size:500"`
	TerminateReason  *string `gorm:"size:500"`
	ActivatedAt      *time.Time
	SuspendedAt      *time.Time
	TerminatedAt     *time.Time
	Annotations      datatypes.JSON
	Version          int `gorm:"default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (ContractModel) TableName() string {
	return "contracts"
}
