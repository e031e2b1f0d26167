package usecases

import (
	"context"

	"pactum/internal/application/plan/catalog"
	"pactum/internal/domain/plan"
	vo "pactum/internal/domain/plan/valueobjects"
	"pactum/internal/shared/authorization"
	apperrors "pactum/internal/shared/errors"
	"pactum/internal/shared/logger"
	"pactum/internal/shared/session"
)

type CreatePlanCommand struct {
	Session      *session.Session
	Name         string
	PriceInCents int64
	BillingCycle string
	Features     map[string]string
}

type CreatePlanResult struct {
	Plan *plan.Plan
}

type CreatePlanUseCase struct {
	planRepo plan.PlanRepository
	cache    catalog.PlanCache
	logger   logger.Interface
}

func NewCreatePlanUseCase(
	planRepo plan.PlanRepository,
	cache catalog.PlanCache,
	logger logger.Interface,
) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		planRepo: planRepo,
		cache:    cache,
		logger:   logger,
	}
}

func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*CreatePlanResult, error) {
	if err := cmd.Session.RequireRole(authorization.RoleAdmin); err != nil {
		return nil, err
	}

	cycle := vo.BillingCycle(cmd.BillingCycle)
	if !cycle.IsValid() {
		return nil, apperrors.NewValidationError("billing cycle must be monthly, annual or one_time")
	}

	p, err := plan.NewPlan(cmd.Name, cmd.PriceInCents, cycle, cmd.Features)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid plan", err.Error())
	}
	if err := uc.planRepo.Create(ctx, p); err != nil {
		uc.logger.Errorw("failed to create plan", "error", err)
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.InvalidateActiveList(ctx); err != nil {
			uc.logger.Warnw("plan cache invalidation failed", "error", err)
		}
	}

	uc.logger.Infow("plan created", "plan_sid", p.SID(), "cycle", cycle)
	return &CreatePlanResult{Plan: p}, nil
}
