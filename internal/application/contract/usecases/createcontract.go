package usecases

import (
	"context"

	"pactum/internal/domain/contract"
	"pactum/internal/domain/entity"
	"pactum/internal/domain/plan"
	"pactum/internal/shared/authorization"
	apperrors "pactum/internal/shared/errors"
	"pactum/internal/shared/logger"
	"pactum/internal/shared/session"
)

type CreateContractCommand struct {
	Session   *session.Session
	EntitySID string
	PlanSID   string
}

type CreateContractResult struct {
	Contract *contract.Contract
}

// CreateContractUseCase opens a draft contract binding an entity to a plan.
// One non-terminated contract per (entity, plan) pair at a time.
type CreateContractUseCase struct {
	contractRepo contract.ContractRepository
	entityRepo   entity.EntityRepository
	planRepo     plan.PlanRepository
	logger       logger.Interface
}

func NewCreateContractUseCase(
	contractRepo contract.ContractRepository,
	entityRepo entity.EntityRepository,
	planRepo plan.PlanRepository,
	logger logger.Interface,
) *CreateContractUseCase {
	return &CreateContractUseCase{
		contractRepo: contractRepo,
		entityRepo:   entityRepo,
		planRepo:     planRepo,
		logger:       logger,
	}
}

func (uc *CreateContractUseCase) Execute(ctx context.Context, cmd CreateContractCommand) (*CreateContractResult, error) {
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

	pln, err := uc.planRepo.GetBySID(ctx, cmd.PlanSID)
	if err != nil {
		return nil, err
	}
	if pln == nil || !pln.IsActive() {
		return nil, apperrors.NewNotFoundError("plan not found or inactive")
	}

	open, err := uc.contractRepo.GetOpenByEntityAndPlan(ctx, ent.ID(), pln.ID())
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, apperrors.NewConflictError("entity already has an open contract on this plan",
			"contract "+open.SID())
	}

	ctr, err := contract.NewContract(ent.ID(), pln.ID())
	if err != nil {
		return nil, apperrors.NewValidationError("invalid contract", err.Error())
	}
	if err := uc.contractRepo.Create(ctx, ctr); err != nil {
		uc.logger.Errorw("failed to create contract", "error", err, "entity_sid", cmd.EntitySID)
		return nil, err
	}

	uc.logger.Infow("contract created",
		"contract_sid", ctr.SID(), "entity_sid", ent.SID(), "plan_sid", pln.SID())
	return &CreateContractResult{Contract: ctr}, nil
}
