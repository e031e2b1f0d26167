// Package testutil provides hand-rolled mocks for plan use case tests.
package testutil

import (
	"context"

	"pactum/internal/domain/plan"
)

// MockPlanCache records invalidations and serves whatever the Fn fields
// return. Nil Fn fields behave as an always-miss, always-ok cache.
type MockPlanCache struct {
	GetPlanFn       func(ctx context.Context, sid string) (*plan.Plan, error)
	SetPlanFn       func(ctx context.Context, p *plan.Plan) error
	GetActiveListFn func(ctx context.Context) ([]*plan.Plan, error)
	SetActiveListFn func(ctx context.Context, plans []*plan.Plan) error

	SetPlanCalls       int
	SetActiveListCalls int
	InvalidatedPlans   []string
	ActiveListFlushes  int
}

func (m *MockPlanCache) GetPlan(ctx context.Context, sid string) (*plan.Plan, error) {
	if m.GetPlanFn != nil {
		return m.GetPlanFn(ctx, sid)
	}
	return nil, nil
}

func (m *MockPlanCache) SetPlan(ctx context.Context, p *plan.Plan) error {
	m.SetPlanCalls++
	if m.SetPlanFn != nil {
		return m.SetPlanFn(ctx, p)
	}
	return nil
}

func (m *MockPlanCache) GetActiveList(ctx context.Context) ([]*plan.Plan, error) {
	if m.GetActiveListFn != nil {
		return m.GetActiveListFn(ctx)
	}
	return nil, nil
}

func (m *MockPlanCache) SetActiveList(ctx context.Context, plans []*plan.Plan) error {
	m.SetActiveListCalls++
	if m.SetActiveListFn != nil {
		return m.SetActiveListFn(ctx, plans)
	}
	return nil
}

func (m *MockPlanCache) InvalidatePlan(ctx context.Context, sid string) error {
	m.InvalidatedPlans = append(m.InvalidatedPlans, sid)
	return nil
}

func (m *MockPlanCache) InvalidateActiveList(ctx context.Context) error {
	m.ActiveListFlushes++
	return nil
}
