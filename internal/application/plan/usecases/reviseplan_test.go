package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contracttestutil "pactum/internal/application/contract/testutil"
	"pactum/internal/application/plan/testutil"
	"pactum/internal/domain/plan"
	planvo "pactum/internal/domain/plan/valueobjects"
	"pactum/internal/shared/authorization"
	apperrors "pactum/internal/shared/errors"
	"pactum/internal/shared/logger"
	"pactum/internal/shared/session"
)

func adminSession() *session.Session {
	return &session.Session{ActorSID: "acc_admin1", Role: authorization.RoleAdmin}
}

func catalogPlan(t *testing.T, active bool) *plan.Plan {
	t.Helper()
	return plan.Reconstruct(plan.ReconstructParams{
		ID:           1,
		SID:          "pln_test00000001",
		Name:         "Basic",
		PriceInCents: 9900,
		Currency:     "BRL",
		Cycle:        planvo.BillingCycleMonthly,
		Active:       active,
		Revision:     1,
	})
}

func TestRevisePlan(t *testing.T) {
	log := logger.NewLogger()
	cmd := RevisePlanCommand{
		Session:      adminSession(),
		PlanSID:      "pln_test00000001",
		Name:         "Basic",
		PriceInCents: 12900,
		BillingCycle: "monthly",
	}

	planRepo := func(p *plan.Plan) *contracttestutil.MockPlanRepository {
		return &contracttestutil.MockPlanRepository{
			GetBySIDFn: func(ctx context.Context, sid string) (*plan.Plan, error) {
				return p, nil
			},
		}
	}
	referenced := func(exists bool) *contracttestutil.MockContractRepository {
		return &contracttestutil.MockContractRepository{
			ExistsByPlanIDFn: func(ctx context.Context, planID uint) (bool, error) {
				return exists, nil
			},
		}
	}

	t.Run("referenced plan gets a new revision", func(t *testing.T) {
		current := catalogPlan(t, true)
		repo := planRepo(current)
		cache := &testutil.MockPlanCache{}
		uc := NewRevisePlanUseCase(repo, referenced(true), nil, cache, log)

		result, err := uc.Execute(context.Background(), cmd)

		require.NoError(t, err)
		require.NotNil(t, result.Replaced)
		assert.Same(t, current, result.Replaced)
		assert.Equal(t, 2, result.Plan.Revision())
		assert.Equal(t, int64(12900), result.Plan.PriceInCents())
		assert.False(t, current.IsActive(), "the superseded revision is retired")
		assert.Equal(t, int64(9900), current.PriceInCents(), "retired revision keeps its terms")
		assert.Equal(t, 1, repo.CreateCalls)
		assert.Equal(t, 1, repo.UpdateCalls)
		assert.Contains(t, cache.InvalidatedPlans, "pln_test00000001")
		assert.Equal(t, 1, cache.ActiveListFlushes)
	})

	t.Run("unreferenced plan is updated in place", func(t *testing.T) {
		current := catalogPlan(t, true)
		repo := planRepo(current)
		uc := NewRevisePlanUseCase(repo, referenced(false), nil, &testutil.MockPlanCache{}, log)

		result, err := uc.Execute(context.Background(), cmd)

		require.NoError(t, err)
		assert.Nil(t, result.Replaced)
		assert.Same(t, current, result.Plan)
		assert.Equal(t, 1, result.Plan.Revision(), "in-place updates keep the revision number")
		assert.Equal(t, int64(12900), result.Plan.PriceInCents())
		assert.Equal(t, 0, repo.CreateCalls)
		assert.Equal(t, 1, repo.UpdateCalls)
	})

	t.Run("retired plan cannot be revised", func(t *testing.T) {
		uc := NewRevisePlanUseCase(planRepo(catalogPlan(t, false)), referenced(true), nil, &testutil.MockPlanCache{}, log)

		_, err := uc.Execute(context.Background(), cmd)

		assert.True(t, apperrors.IsInvalidStateError(err))
	})

	t.Run("invalid billing cycle is rejected", func(t *testing.T) {
		uc := NewRevisePlanUseCase(planRepo(catalogPlan(t, true)), referenced(false), nil, &testutil.MockPlanCache{}, log)

		badCycle := cmd
		badCycle.BillingCycle = "weekly"
		_, err := uc.Execute(context.Background(), badCycle)

		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("unknown plan is not found", func(t *testing.T) {
		uc := NewRevisePlanUseCase(&contracttestutil.MockPlanRepository{}, referenced(false), nil, &testutil.MockPlanCache{}, log)

		_, err := uc.Execute(context.Background(), cmd)

		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("operators cannot revise plans", func(t *testing.T) {
		uc := NewRevisePlanUseCase(planRepo(catalogPlan(t, true)), referenced(false), nil, &testutil.MockPlanCache{}, log)

		opCmd := cmd
		opCmd.Session = &session.Session{ActorSID: "acc_operator1", Role: authorization.RoleOperator}
		_, err := uc.Execute(context.Background(), opCmd)

		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
	})
}
