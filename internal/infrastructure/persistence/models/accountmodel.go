package models

import "time"

type AccountModel struct {
	ID           uint   `gorm:"primaryKey"`
	SID          string `gorm:"uniqueIndex;size:32;not null"`
	LoginTaxID   string `gorm:"uniqueIndex;size:32;not null"`
	PasswordHash string `gorm:"size:128;not null"`
	Role         string `gorm:"size:20;not null"`
	EntityID     *uint  `gorm:"index"`
	Active       bool   `gorm:"not null;default:true"`
	LastLoginAt  *time.Time
	Version      int `gorm:"default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (AccountModel) TableName() string {
	return "accounts"
}
