package contract

import "context"

type ContractRepository interface {
	Create(ctx context.Context, contract *Contract) error
	// Update persists lifecycle transitions with an optimistic version check
	// so two concurrent callers cannot both apply a transition from the same
	// observed status.
	Update(ctx context.Context, contract *Contract) error
	GetByID(ctx context.Context, contractID uint) (*Contract, error)
	GetBySID(ctx context.Context, sid string) (*Contract, error)
	GetByEntityID(ctx context.Context, entityID uint) ([]*Contract, error)
	// GetOpenByEntityAndPlan returns the entity's non-terminated contract on
	// the given plan, or nil when there is none.
	GetOpenByEntityAndPlan(ctx context.Context, entityID, planID uint) (*Contract, error)
	// ExistsByPlanID reports whether any contract references the plan. Plans
	// become immutable once referenced.
	ExistsByPlanID(ctx context.Context, planID uint) (bool, error)
}
