package mappers

import (
	"pactum/internal/domain/evaluation"
	"pactum/internal/infrastructure/persistence/models"
)

func EvaluationToModel(e *evaluation.Evaluation) *models.EvaluationModel {
	return &models.EvaluationModel{
		ID:            e.ID(),
		SID:           e.SID(),
		EntityID:      e.EntityID(),
		Score:         e.Score(),
		Comment:       e.Comment(),
		Status:        e.Status(),
		InactivatedAt: e.InactivatedAt(),
		Version:       e.Version(),
		CreatedAt:     e.CreatedAt(),
		UpdatedAt:     e.UpdatedAt(),
	}
}

func EvaluationToDomain(model *models.EvaluationModel) *evaluation.Evaluation {
	return evaluation.Reconstruct(evaluation.ReconstructParams{
		ID:            model.ID,
		SID:           model.SID,
		EntityID:      model.EntityID,
		Score:         model.Score,
		Comment:       model.Comment,
		Status:        model.Status,
		InactivatedAt: model.InactivatedAt,
		Version:       model.Version,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	})
}
