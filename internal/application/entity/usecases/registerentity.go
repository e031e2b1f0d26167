package usecases

import (
	"context"

	"pactum/internal/domain/entity"
	vo "pactum/internal/domain/entity/valueobjects"
	"pactum/internal/shared/authorization"
	apperrors "pactum/internal/shared/errors"
	"pactum/internal/shared/logger"
	"pactum/internal/shared/session"
)

type RegisterEntityCommand struct {
	Session *session.Session
	TaxID   string
	Name    string
	Kind    string
}

type RegisterEntityResult struct {
	Entity *entity.Entity
}

// RegisterEntityUseCase creates a contracting party. The tax identifier is
// unique; re-registering one is a conflict.
type RegisterEntityUseCase struct {
	entityRepo entity.EntityRepository
	logger     logger.Interface
}

func NewRegisterEntityUseCase(
	entityRepo entity.EntityRepository,
	logger logger.Interface,
) *RegisterEntityUseCase {
	return &RegisterEntityUseCase{
		entityRepo: entityRepo,
		logger:     logger,
	}
}

func (uc *RegisterEntityUseCase) Execute(ctx context.Context, cmd RegisterEntityCommand) (*RegisterEntityResult, error) {
	if err := cmd.Session.RequireRole(authorization.RoleOperator); err != nil {
		return nil, err
	}

	kind := vo.EntityKind(cmd.Kind)
	if !kind.IsValid() {
		return nil, apperrors.NewValidationError("kind must be individual or organization")
	}

	existing, err := uc.entityRepo.GetByTaxID(ctx, cmd.TaxID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("tax identifier already registered")
	}

	ent, err := entity.NewEntity(cmd.TaxID, cmd.Name, kind)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid entity", err.Error())
	}
	if err := uc.entityRepo.Create(ctx, ent); err != nil {
		// Unique constraint catches the race two registrations can run.
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("tax identifier already registered")
		}
		uc.logger.Errorw("failed to create entity", "error", err)
		return nil, err
	}

	uc.logger.Infow("entity registered", "entity_sid", ent.SID(), "kind", kind)
	return &RegisterEntityResult{Entity: ent}, nil
}
