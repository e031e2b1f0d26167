// Package catalog defines the read-through cache port for the plan catalog.
// The catalog is read-mostly; reads go through the cache and writes
// invalidate it.
package catalog

import (
	"context"

	"pactum/internal/domain/plan"
)

// PlanCache caches catalog reads. A miss returns (nil, nil); cache failures
// are soft, callers fall back to the repository.
type PlanCache interface {
	GetPlan(ctx context.Context, sid string) (*plan.Plan, error)
	SetPlan(ctx context.Context, p *plan.Plan) error
	GetActiveList(ctx context.Context) ([]*plan.Plan, error)
	SetActiveList(ctx context.Context, plans []*plan.Plan) error
	InvalidatePlan(ctx context.Context, sid string) error
	InvalidateActiveList(ctx context.Context) error
}
