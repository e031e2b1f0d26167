package usecases

import (
	"context"

	"pactum/internal/application/plan/catalog"
	"pactum/internal/domain/plan"
	"pactum/internal/shared/logger"
)

type ListPlansCommand struct {
	ActiveOnly bool
}

type ListPlansResult struct {
	Plans []*plan.Plan
}

// ListPlansUseCase serves the catalog listing. Active-only listings are
// read through the cache; a cache failure degrades to a repository read.
type ListPlansUseCase struct {
	planRepo plan.PlanRepository
	cache    catalog.PlanCache
	logger   logger.Interface
}

func NewListPlansUseCase(
	planRepo plan.PlanRepository,
	cache catalog.PlanCache,
	logger logger.Interface,
) *ListPlansUseCase {
	return &ListPlansUseCase{
		planRepo: planRepo,
		cache:    cache,
		logger:   logger,
	}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context, cmd ListPlansCommand) (*ListPlansResult, error) {
	if cmd.ActiveOnly && uc.cache != nil {
		cached, err := uc.cache.GetActiveList(ctx)
		if err != nil {
			uc.logger.Warnw("plan cache read failed", "error", err)
		} else if cached != nil {
			return &ListPlansResult{Plans: cached}, nil
		}
	}

	plans, err := uc.planRepo.List(ctx, cmd.ActiveOnly)
	if err != nil {
		return nil, err
	}

	if cmd.ActiveOnly && uc.cache != nil {
		if err := uc.cache.SetActiveList(ctx, plans); err != nil {
			uc.logger.Warnw("plan cache write failed", "error", err)
		}
	}
	return &ListPlansResult{Plans: plans}, nil
}
