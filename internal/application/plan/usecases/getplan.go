package usecases

import (
	"context"

	"pactum/internal/application/plan/catalog"
	"pactum/internal/domain/plan"
	apperrors "pactum/internal/shared/errors"
	"pactum/internal/shared/logger"
)

type GetPlanCommand struct {
	PlanSID string
}

type GetPlanResult struct {
	Plan *plan.Plan
}

type GetPlanUseCase struct {
	planRepo plan.PlanRepository
	cache    catalog.PlanCache
	logger   logger.Interface
}

func NewGetPlanUseCase(
	planRepo plan.PlanRepository,
	cache catalog.PlanCache,
	logger logger.Interface,
) *GetPlanUseCase {
	return &GetPlanUseCase{
		planRepo: planRepo,
		cache:    cache,
		logger:   logger,
	}
}

func (uc *GetPlanUseCase) Execute(ctx context.Context, cmd GetPlanCommand) (*GetPlanResult, error) {
	if uc.cache != nil {
		cached, err := uc.cache.GetPlan(ctx, cmd.PlanSID)
		if err != nil {
			uc.logger.Warnw("plan cache read failed", "error", err, "plan_sid", cmd.PlanSID)
		} else if cached != nil {
			return &GetPlanResult{Plan: cached}, nil
		}
	}

	p, err := uc.planRepo.GetBySID(ctx, cmd.PlanSID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NewNotFoundError("plan not found")
	}

	if uc.cache != nil {
		if err := uc.cache.SetPlan(ctx, p); err != nil {
			uc.logger.Warnw("plan cache write failed", "error", err, "plan_sid", cmd.PlanSID)
		}
	}
	return &GetPlanResult{Plan: p}, nil
}
