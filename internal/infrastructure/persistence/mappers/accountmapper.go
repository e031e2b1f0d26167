package mappers

import (
	"pactum/internal/domain/account"
	"pactum/internal/infrastructure/persistence/models"
	"pactum/internal/shared/authorization"
)

func AccountToModel(a *account.Account) *models.AccountModel {
	return &models.AccountModel{
		ID:           a.ID(),
		SID:          a.SID(),
		LoginTaxID:   a.LoginTaxID(),
		PasswordHash: a.PasswordHash(),
		Role:         a.Role().String(),
		EntityID:     a.EntityID(),
		Active:       a.IsActive(),
		LastLoginAt:  a.LastLoginAt(),
		Version:      a.Version(),
		CreatedAt:    a.CreatedAt(),
		UpdatedAt:    a.UpdatedAt(),
	}
}

func AccountToDomain(model *models.AccountModel) *account.Account {
	return account.Reconstruct(account.ReconstructParams{
		ID:           model.ID,
		SID:          model.SID,
		LoginTaxID:   model.LoginTaxID,
		PasswordHash: model.PasswordHash,
		Role:         authorization.ParseUserRole(model.Role),
		EntityID:     model.EntityID,
		Active:       model.Active,
		LastLoginAt:  model.LastLoginAt,
		Version:      model.Version,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	})
}
