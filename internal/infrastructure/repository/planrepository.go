package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pactum/internal/domain/plan"
	"pactum/internal/infrastructure/persistence/mappers"
	"pactum/internal/infrastructure/persistence/models"
	"pactum/internal/shared/db"
	apperrors "pactum/internal/shared/errors"
)

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) Create(ctx context.Context, p *plan.Plan) error {
	model, err := mappers.PlanToModel(p)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create plan: %w", err)
	}

	p.SetID(model.ID)
	return nil
}

func (r *PlanRepository) Update(ctx context.Context, p *plan.Plan) error {
	model, err := mappers.PlanToModel(p)
	if err != nil {
		return err
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PlanModel{}).
		Where("id = ? AND version < ?", model.ID, model.Version).
		Updates(map[string]interface{}{
			"name":           model.Name,
			"price_in_cents": model.PriceInCents,
			"billing_cycle":  model.BillingCycle,
			"active":         model.Active,
			"superseded_by":  model.SupersededBy,
			"features":       model.Features,
			"version":        model.Version,
			"updated_at":     model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewConflictError("plan was modified concurrently")
	}
	return nil
}

func (r *PlanRepository) GetByID(ctx context.Context, id uint) (*plan.Plan, error) {
	var model models.PlanModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return mappers.PlanToDomain(&model)
}

func (r *PlanRepository) GetBySID(ctx context.Context, sid string) (*plan.Plan, error) {
	var model models.PlanModel
	if err := db.GetTxFromContext(ctx, r.db).Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get plan by sid: %w", err)
	}
	return mappers.PlanToDomain(&model)
}

func (r *PlanRepository) List(ctx context.Context, activeOnly bool) ([]*plan.Plan, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.PlanModel{})
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var modelList []models.PlanModel
	if err := query.Order("price_in_cents ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	plans := make([]*plan.Plan, 0, len(modelList))
	for i := range modelList {
		p, err := mappers.PlanToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, nil
}
