package usecases

import (
	"context"

	"pactum/internal/application/plan/catalog"
	"pactum/internal/domain/contract"
	"pactum/internal/domain/plan"
	vo "pactum/internal/domain/plan/valueobjects"
	"pactum/internal/shared/authorization"
	"pactum/internal/shared/db"
	apperrors "pactum/internal/shared/errors"
	"pactum/internal/shared/logger"
	"pactum/internal/shared/session"
)

type RevisePlanCommand struct {
	Session      *session.Session
	PlanSID      string
	Name         string
	PriceInCents int64
	BillingCycle string
	Features     map[string]string
}

type RevisePlanResult struct {
	Plan *plan.Plan
	// Replaced is the retired revision the new plan supersedes. Nil when the
	// plan was unreferenced and the terms were updated in place.
	Replaced *plan.Plan
}

// RevisePlanUseCase changes a plan's terms. A plan referenced by any signed
// contract is never mutated in place; the revision creates a new row, retires
// the old one and links the two, so existing contracts keep the terms they
// signed. An unreferenced plan is simply replaced.
type RevisePlanUseCase struct {
	planRepo     plan.PlanRepository
	contractRepo contract.ContractRepository
	txMgr        *db.TransactionManager
	cache        catalog.PlanCache
	logger       logger.Interface
}

func NewRevisePlanUseCase(
	planRepo plan.PlanRepository,
	contractRepo contract.ContractRepository,
	txMgr *db.TransactionManager,
	cache catalog.PlanCache,
	logger logger.Interface,
) *RevisePlanUseCase {
	return &RevisePlanUseCase{
		planRepo:     planRepo,
		contractRepo: contractRepo,
		txMgr:        txMgr,
		cache:        cache,
		logger:       logger,
	}
}

// runInTx wraps fn in a transaction when a manager is wired.
func (uc *RevisePlanUseCase) runInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if uc.txMgr == nil {
		return fn(ctx)
	}
	return uc.txMgr.RunInTransaction(ctx, fn)
}

func (uc *RevisePlanUseCase) Execute(ctx context.Context, cmd RevisePlanCommand) (*RevisePlanResult, error) {
	if err := cmd.Session.RequireRole(authorization.RoleAdmin); err != nil {
		return nil, err
	}

	cycle := vo.BillingCycle(cmd.BillingCycle)
	if !cycle.IsValid() {
		return nil, apperrors.NewValidationError("billing cycle must be monthly, annual or one_time")
	}

	current, err := uc.planRepo.GetBySID(ctx, cmd.PlanSID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, apperrors.NewNotFoundError("plan not found")
	}

	referenced, err := uc.contractRepo.ExistsByPlanID(ctx, current.ID())
	if err != nil {
		return nil, err
	}
	if !referenced {
		// No signed contract depends on these terms yet, so the row can be
		// updated outright.
		if err := current.UpdateTerms(cmd.Name, cmd.PriceInCents, cycle, cmd.Features); err != nil {
			return nil, apperrors.NewInvalidStateError("cannot update plan", err.Error())
		}
		if err := uc.planRepo.Update(ctx, current); err != nil {
			return nil, err
		}
		uc.invalidate(ctx, current.SID())
		uc.logger.Infow("plan updated in place", "plan_sid", current.SID())
		return &RevisePlanResult{Plan: current}, nil
	}

	next, err := current.Revise(cmd.Name, cmd.PriceInCents, cycle, cmd.Features)
	if err != nil {
		return nil, apperrors.NewInvalidStateError("cannot revise plan", err.Error())
	}

	// The new revision and the retirement of the old one land together or
	// not at all.
	txErr := uc.runInTx(ctx, func(txCtx context.Context) error {
		if err := uc.planRepo.Create(txCtx, next); err != nil {
			uc.logger.Errorw("failed to create plan revision", "error", err, "plan_sid", cmd.PlanSID)
			return err
		}
		current.MarkSupersededBy(next.ID())
		if err := uc.planRepo.Update(txCtx, current); err != nil {
			uc.logger.Errorw("failed to retire plan revision", "error", err, "plan_sid", cmd.PlanSID)
			return err
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.invalidate(ctx, current.SID())

	uc.logger.Infow("plan revised",
		"old_plan_sid", current.SID(), "new_plan_sid", next.SID(), "revision", next.Revision())
	return &RevisePlanResult{Plan: next, Replaced: current}, nil
}

func (uc *RevisePlanUseCase) invalidate(ctx context.Context, sid string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.InvalidatePlan(ctx, sid); err != nil {
		uc.logger.Warnw("plan cache invalidation failed", "error", err)
	}
	if err := uc.cache.InvalidateActiveList(ctx); err != nil {
		uc.logger.Warnw("plan cache invalidation failed", "error", err)
	}
}
