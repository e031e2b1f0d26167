package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pactum/internal/domain/evaluation"
	"pactum/internal/infrastructure/persistence/mappers"
	"pactum/internal/infrastructure/persistence/models"
	"pactum/internal/shared/db"
	apperrors "pactum/internal/shared/errors"
)

type EvaluationRepository struct {
	db *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) *EvaluationRepository {
	return &EvaluationRepository{db: db}
}

func (r *EvaluationRepository) Create(ctx context.Context, e *evaluation.Evaluation) error {
	model := mappers.EvaluationToModel(e)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create evaluation: %w", err)
	}

	e.SetID(model.ID)
	return nil
}

func (r *EvaluationRepository) Update(ctx context.Context, e *evaluation.Evaluation) error {
	model := mappers.EvaluationToModel(e)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.EvaluationModel{}).
		Where("id = ? AND version < ?", model.ID, model.Version).
		Updates(map[string]interface{}{
			"status":         model.Status,
			"inactivated_at": model.InactivatedAt,
			"version":        model.Version,
			"updated_at":     model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update evaluation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewConflictError("evaluation was modified concurrently")
	}
	return nil
}

func (r *EvaluationRepository) GetByID(ctx context.Context, id uint) (*evaluation.Evaluation, error) {
	var model models.EvaluationModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get evaluation: %w", err)
	}
	return mappers.EvaluationToDomain(&model), nil
}

func (r *EvaluationRepository) GetBySID(ctx context.Context, sid string) (*evaluation.Evaluation, error) {
	var model models.EvaluationModel
	if err := db.GetTxFromContext(ctx, r.db).Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get evaluation by sid: %w", err)
	}
	return mappers.EvaluationToDomain(&model), nil
}

func (r *EvaluationRepository) GetByEntityID(ctx context.Context, entityID uint) ([]*evaluation.Evaluation, error) {
	var modelList []models.EvaluationModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("entity_id = ?", entityID).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}

	evaluations := make([]*evaluation.Evaluation, 0, len(modelList))
	for i := range modelList {
		evaluations = append(evaluations, mappers.EvaluationToDomain(&modelList[i]))
	}
	return evaluations, nil
}
