package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contracttestutil "pactum/internal/application/contract/testutil"
	"pactum/internal/application/plan/testutil"
	"pactum/internal/domain/plan"
	"pactum/internal/shared/logger"
)

func TestListPlans(t *testing.T) {
	log := logger.NewLogger()

	repoReturning := func(plans ...*plan.Plan) *contracttestutil.MockPlanRepository {
		return &contracttestutil.MockPlanRepository{
			ListFn: func(ctx context.Context, activeOnly bool) ([]*plan.Plan, error) {
				return plans, nil
			},
		}
	}

	t.Run("cache hit skips the repository", func(t *testing.T) {
		cached := []*plan.Plan{catalogPlan(t, true)}
		cache := &testutil.MockPlanCache{
			GetActiveListFn: func(ctx context.Context) ([]*plan.Plan, error) {
				return cached, nil
			},
		}
		repo := &contracttestutil.MockPlanRepository{
			ListFn: func(ctx context.Context, activeOnly bool) ([]*plan.Plan, error) {
				t.Fatal("repository must not be hit on a cache hit")
				return nil, nil
			},
		}
		uc := NewListPlansUseCase(repo, cache, log)

		result, err := uc.Execute(context.Background(), ListPlansCommand{ActiveOnly: true})

		require.NoError(t, err)
		assert.Equal(t, cached, result.Plans)
	})

	t.Run("cache miss reads the repository and fills the cache", func(t *testing.T) {
		cache := &testutil.MockPlanCache{}
		uc := NewListPlansUseCase(repoReturning(catalogPlan(t, true)), cache, log)

		result, err := uc.Execute(context.Background(), ListPlansCommand{ActiveOnly: true})

		require.NoError(t, err)
		assert.Len(t, result.Plans, 1)
		assert.Equal(t, 1, cache.SetActiveListCalls)
	})

	t.Run("cache failure degrades to a repository read", func(t *testing.T) {
		cache := &testutil.MockPlanCache{
			GetActiveListFn: func(ctx context.Context) ([]*plan.Plan, error) {
				return nil, errors.New("connection refused")
			},
		}
		uc := NewListPlansUseCase(repoReturning(catalogPlan(t, true)), cache, log)

		result, err := uc.Execute(context.Background(), ListPlansCommand{ActiveOnly: true})

		require.NoError(t, err)
		assert.Len(t, result.Plans, 1)
	})

	t.Run("full listings bypass the cache", func(t *testing.T) {
		cache := &testutil.MockPlanCache{
			GetActiveListFn: func(ctx context.Context) ([]*plan.Plan, error) {
				t.Fatal("cache must not serve retired-inclusive listings")
				return nil, nil
			},
		}
		uc := NewListPlansUseCase(repoReturning(catalogPlan(t, true), catalogPlan(t, false)), cache, log)

		result, err := uc.Execute(context.Background(), ListPlansCommand{ActiveOnly: false})

		require.NoError(t, err)
		assert.Len(t, result.Plans, 2)
		assert.Equal(t, 0, cache.SetActiveListCalls)
	})
}
