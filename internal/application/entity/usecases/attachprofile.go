package usecases

import (
	"context"

	"pactum/internal/domain/entity"
	"pactum/internal/shared/authorization"
	apperrors "pactum/internal/shared/errors"
	"pactum/internal/shared/logger"
	"pactum/internal/shared/session"
)

type AttachProfileCommand struct {
	Session   *session.Session
	EntitySID string
	Profile   entity.Profile
}

type AttachProfileResult struct {
	Entity *entity.Entity
}

// AttachProfileUseCase sets or replaces an entity's extended profile record.
// Entities may update their own profile.
type AttachProfileUseCase struct {
	entityRepo entity.EntityRepository
	logger     logger.Interface
}

func NewAttachProfileUseCase(
	entityRepo entity.EntityRepository,
	logger logger.Interface,
) *AttachProfileUseCase {
	return &AttachProfileUseCase{
		entityRepo: entityRepo,
		logger:     logger,
	}
}

func (uc *AttachProfileUseCase) Execute(ctx context.Context, cmd AttachProfileCommand) (*AttachProfileResult, error) {
	if err := cmd.Session.RequireRole(authorization.RoleEntitySelf); err != nil {
		return nil, err
	}

	ent, err := uc.entityRepo.GetBySID(ctx, cmd.EntitySID)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, apperrors.NewNotFoundError("entity not found")
	}
	if err := cmd.Session.RequireEntityAccess(ent.ID()); err != nil {
		return nil, err
	}

	if err := ent.AttachProfile(cmd.Profile); err != nil {
		return nil, apperrors.NewValidationError("invalid profile", err.Error())
	}
	if err := uc.entityRepo.Update(ctx, ent); err != nil {
		uc.logger.Errorw("failed to persist profile", "error", err, "entity_sid", ent.SID())
		return nil, err
	}

	return &AttachProfileResult{Entity: ent}, nil
}
