package usecases

import (
	"context"

	"pactum/internal/domain/entity"
	"pactum/internal/shared/authorization"
	apperrors "pactum/internal/shared/errors"
	"pactum/internal/shared/session"
)

type FindEntityCommand struct {
	Session *session.Session
	// Exactly one of EntitySID or TaxID is set.
	EntitySID string
	TaxID     string
}

type FindEntityResult struct {
	Entity *entity.Entity
}

type FindEntityUseCase struct {
	entityRepo entity.EntityRepository
}

func NewFindEntityUseCase(entityRepo entity.EntityRepository) *FindEntityUseCase {
	return &FindEntityUseCase{entityRepo: entityRepo}
}

func (uc *FindEntityUseCase) Execute(ctx context.Context, cmd FindEntityCommand) (*FindEntityResult, error) {
	if err := cmd.Session.RequireRole(authorization.RoleEntitySelf); err != nil {
		return nil, err
	}

	var (
		ent *entity.Entity
		err error
	)
	switch {
	case cmd.EntitySID != "":
		ent, err = uc.entityRepo.GetBySID(ctx, cmd.EntitySID)
	case cmd.TaxID != "":
		ent, err = uc.entityRepo.GetByTaxID(ctx, cmd.TaxID)
	default:
		return nil, apperrors.NewValidationError("an entity sid or tax identifier is required")
	}
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, apperrors.NewNotFoundError("entity not found")
	}
	if err := cmd.Session.RequireEntityAccess(ent.ID()); err != nil {
		return nil, err
	}

	return &FindEntityResult{Entity: ent}, nil
}
