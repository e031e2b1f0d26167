package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pactum/internal/domain/contract"
	vo "pactum/internal/domain/contract/valueobjects"
	"pactum/internal/infrastructure/persistence/mappers"
	"pactum/internal/infrastructure/persistence/models"
	"pactum/internal/shared/db"
	apperrors "pactum/internal/shared/errors"
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

func (r *ContractRepository) Create(ctx context.Context, c *contract.Contract) error {
	model, err := mappers.ContractToModel(c)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create contract: %w", err)
	}

	c.SetID(model.ID)
	return nil
}

// Update persists a lifecycle transition guarded by the optimistic version
// column so two callers cannot both apply a transition from the same
// observed status.
func (r *ContractRepository) Update(ctx context.Context, c *contract.Contract) error {
	model, err := mappers.ContractToModel(c)
	if err != nil {
		return err
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ContractModel{}).
		Where("id = ? AND version < ?", model.ID, model.Version).
		Updates(map[string]interface{}{
			"status":             model.Status,
			"current_payment_id": model.CurrentPaymentID,
			"suspend_reason":     model.SuspendReason,
			"terminate_reason":   model.TerminateReason,
			"activated_at":       model.ActivatedAt,
			"suspended_at":       model.SuspendedAt,
			"terminated_at":      model.TerminatedAt,
			"annotations":        model.Annotations,
			"version":            model.Version,
			"updated_at":         model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update contract: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewConflictError("contract was modified concurrently")
	}
	return nil
}

func (r *ContractRepository) GetByID(ctx context.Context, id uint) (*contract.Contract, error) {
	var model models.ContractModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}
	return mappers.ContractToDomain(&model)
}

func (r *ContractRepository) GetBySID(ctx context.Context, sid string) (*contract.Contract, error) {
	var model models.ContractModel
	if err := db.GetTxFromContext(ctx, r.db).Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contract by sid: %w", err)
	}
	return mappers.ContractToDomain(&model)
}

func (r *ContractRepository) GetByEntityID(ctx context.Context, entityID uint) ([]*contract.Contract, error) {
	var modelList []models.ContractModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("entity_id = ?", entityID).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}

	contracts := make([]*contract.Contract, 0, len(modelList))
	for i := range modelList {
		c, err := mappers.ContractToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, c)
	}
	return contracts, nil
}

func (r *ContractRepository) GetOpenByEntityAndPlan(ctx context.Context, entityID, planID uint) (*contract.Contract, error) {
	var model models.ContractModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("entity_id = ? AND plan_id = ? AND status <> ?",
			entityID, planID, vo.ContractStatusTerminated.String()).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open contract: %w", err)
	}
	return mappers.ContractToDomain(&model)
}

func (r *ContractRepository) ExistsByPlanID(ctx context.Context, planID uint) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.ContractModel{}).
		Where("plan_id = ?", planID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count contracts by plan: %w", err)
	}
	return count > 0, nil
}
