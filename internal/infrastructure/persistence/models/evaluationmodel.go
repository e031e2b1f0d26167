package models

import "time"

type EvaluationModel struct {
	ID            uint   `gorm:"primaryKey"`
	SID           string `gorm:"uniqueIndex;size:32;not null"`
	EntityID      uint   `gorm:"index;not null"`
	Score         int    `gorm:"not null"`
	Comment       string `gorm:"size:1000"`
	Status        string `gorm:"size:20;not null;index"`
	InactivatedAt *time.Time
	Version       int `gorm:"default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (EvaluationModel) TableName() string {
	return "evaluations"
}
