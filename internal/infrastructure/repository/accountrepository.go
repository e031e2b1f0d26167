package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pactum/internal/domain/account"
	"pactum/internal/infrastructure/persistence/mappers"
	"pactum/internal/infrastructure/persistence/models"
	"pactum/internal/shared/db"
	apperrors "pactum/internal/shared/errors"
)

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, a *account.Account) error {
	model := mappers.AccountToModel(a)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("account already exists")
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	a.SetID(model.ID)
	return nil
}

func (r *AccountRepository) Update(ctx context.Context, a *account.Account) error {
	model := mappers.AccountToModel(a)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.AccountModel{}).
		Where("id = ? AND version < ?", model.ID, model.Version).
		Updates(map[string]interface{}{
			"password_hash": model.PasswordHash,
			"role":          model.Role,
			"active":        model.Active,
			"last_login_at": model.LastLoginAt,
			"version":       model.Version,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewConflictError("account was modified concurrently")
	}
	return nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id uint) (*account.Account, error) {
	var model models.AccountModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return mappers.AccountToDomain(&model), nil
}

func (r *AccountRepository) GetBySID(ctx context.Context, sid string) (*account.Account, error) {
	var model models.AccountModel
	if err := db.GetTxFromContext(ctx, r.db).Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account by sid: %w", err)
	}
	return mappers.AccountToDomain(&model), nil
}

func (r *AccountRepository) GetByLoginTaxID(ctx context.Context, loginTaxID string) (*account.Account, error) {
	var model models.AccountModel
	if err := db.GetTxFromContext(ctx, r.db).Where("login_tax_id = ?", loginTaxID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account by login: %w", err)
	}
	return mappers.AccountToDomain(&model), nil
}
