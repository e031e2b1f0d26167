package models

import "time"

type PaymentModel struct {
	ID             uint   `gorm:"primaryKey"`
	SID            string `gorm:"uniqueIndex;size:32;not null"`
	ContractID     uint   `gorm:"index;not null"`
	AmountInCents  int64  `gorm:"not null"`
	Currency       string `gorm:"size:10;not null;default:'BRL'"`
	Status         string `gorm:"size:20;not null;index"`
	IdempotencyKey string `gorm:"uniqueIndex;size:128;not null"`
	GatewayRef     *string `gorm:"size:128;index"`
	FailureReason  *string `gorm:"size:500"`
	SettledAt      *time.Time
	RefundedAt     *time.Time
	Version        int `gorm:"default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (PaymentModel) TableName() string {
	return "payments"
}
