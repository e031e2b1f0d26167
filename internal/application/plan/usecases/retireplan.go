package usecases

import (
	"context"

	"pactum/internal/application/plan/catalog"
	"pactum/internal/domain/plan"
	"pactum/internal/shared/authorization"
	apperrors "pactum/internal/shared/errors"
	"pactum/internal/shared/logger"
	"pactum/internal/shared/session"
)

type RetirePlanCommand struct {
	Session *session.Session
	PlanSID string
}

type RetirePlanResult struct {
	Plan *plan.Plan
}

// RetirePlanUseCase removes a plan from the catalog without a replacement.
// Contracts already signed on it are unaffected.
type RetirePlanUseCase struct {
	planRepo plan.PlanRepository
	cache    catalog.PlanCache
	logger   logger.Interface
}

func NewRetirePlanUseCase(
	planRepo plan.PlanRepository,
	cache catalog.PlanCache,
	logger logger.Interface,
) *RetirePlanUseCase {
	return &RetirePlanUseCase{
		planRepo: planRepo,
		cache:    cache,
		logger:   logger,
	}
}

func (uc *RetirePlanUseCase) Execute(ctx context.Context, cmd RetirePlanCommand) (*RetirePlanResult, error) {
	if err := cmd.Session.RequireRole(authorization.RoleAdmin); err != nil {
		return nil, err
	}

	p, err := uc.planRepo.GetBySID(ctx, cmd.PlanSID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NewNotFoundError("plan not found")
	}

	p.Retire()
	if err := uc.planRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to retire plan", "error", err, "plan_sid", p.SID())
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.InvalidatePlan(ctx, p.SID()); err != nil {
			uc.logger.Warnw("plan cache invalidation failed", "error", err)
		}
		if err := uc.cache.InvalidateActiveList(ctx); err != nil {
			uc.logger.Warnw("plan cache invalidation failed", "error", err)
		}
	}

	uc.logger.Infow("plan retired", "plan_sid", p.SID(), "actor", cmd.Session.ActorSID)
	return &RetirePlanResult{Plan: p}, nil
}
