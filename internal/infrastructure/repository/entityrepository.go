package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pactum/internal/domain/entity"
	"pactum/internal/infrastructure/persistence/mappers"
	"pactum/internal/infrastructure/persistence/models"
	"pactum/internal/shared/db"
	apperrors "pactum/internal/shared/errors"
)

type EntityRepository struct {
	db *gorm.DB
}

func NewEntityRepository(db *gorm.DB) *EntityRepository {
	return &EntityRepository{db: db}
}

func (r *EntityRepository) Create(ctx context.Context, e *entity.Entity) error {
	model := mappers.EntityToModel(e)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("tax identifier already registered")
		}
		return fmt.Errorf("failed to create entity: %w", err)
	}

	e.SetID(model.ID)
	return nil
}

func (r *EntityRepository) Update(ctx context.Context, e *entity.Entity) error {
	model := mappers.EntityToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.EntityModel{}).
		Where("id = ? AND version < ?", model.ID, model.Version).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"status":     model.Status,
			"version":    model.Version,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update entity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewConflictError("entity was modified concurrently")
	}

	if e.Profile() != nil {
		if err := r.upsertProfile(tx, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *EntityRepository) upsertProfile(tx *gorm.DB, e *entity.Entity) error {
	profileModel, err := mappers.EntityProfileToModel(e.ID(), e.Profile())
	if err != nil {
		return err
	}

	var existing models.EntityProfileModel
	err = tx.Where("entity_id = ?", e.ID()).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := tx.Create(profileModel).Error; err != nil {
			return fmt.Errorf("failed to create entity profile: %w", err)
		}
	case err != nil:
		return fmt.Errorf("failed to load entity profile: %w", err)
	default:
		profileModel.ID = existing.ID
		profileModel.CreatedAt = existing.CreatedAt
		if err := tx.Save(profileModel).Error; err != nil {
			return fmt.Errorf("failed to update entity profile: %w", err)
		}
	}
	return nil
}

func (r *EntityRepository) GetByID(ctx context.Context, id uint) (*entity.Entity, error) {
	var model models.EntityModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get entity: %w", err)
	}
	return r.withProfile(ctx, &model)
}

func (r *EntityRepository) GetBySID(ctx context.Context, sid string) (*entity.Entity, error) {
	var model models.EntityModel
	if err := db.GetTxFromContext(ctx, r.db).Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get entity by sid: %w", err)
	}
	return r.withProfile(ctx, &model)
}

func (r *EntityRepository) GetByTaxID(ctx context.Context, taxID string) (*entity.Entity, error) {
	var model models.EntityModel
	if err := db.GetTxFromContext(ctx, r.db).Where("tax_id = ?", taxID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get entity by tax id: %w", err)
	}
	return r.withProfile(ctx, &model)
}

func (r *EntityRepository) List(ctx context.Context) ([]*entity.Entity, error) {
	var modelList []models.EntityModel
	if err := db.GetTxFromContext(ctx, r.db).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list entities: %w", err)
	}

	entities := make([]*entity.Entity, 0, len(modelList))
	for i := range modelList {
		e, err := r.withProfile(ctx, &modelList[i])
		if err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}
	return entities, nil
}

func (r *EntityRepository) withProfile(ctx context.Context, model *models.EntityModel) (*entity.Entity, error) {
	var profileModel models.EntityProfileModel
	err := db.GetTxFromContext(ctx, r.db).Where("entity_id = ?", model.ID).First(&profileModel).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return mappers.EntityToDomain(model, nil)
	case err != nil:
		return nil, fmt.Errorf("failed to load entity profile: %w", err)
	default:
		return mappers.EntityToDomain(model, &profileModel)
	}
}
