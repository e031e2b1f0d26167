// Package testutil provides hand-rolled mocks for contract use case tests.
package testutil

import (
	"context"

	"pactum/internal/domain/contract"
	"pactum/internal/domain/entity"
	"pactum/internal/domain/plan"
)

type MockContractRepository struct {
	CreateFn                 func(ctx context.Context, ct *contract.Contract) error
	UpdateFn                 func(ctx context.Context, ct *contract.Contract) error
	GetByIDFn                func(ctx context.Context, contractID uint) (*contract.Contract, error)
	GetBySIDFn               func(ctx context.Context, sid string) (*contract.Contract, error)
	GetByEntityIDFn          func(ctx context.Context, entityID uint) ([]*contract.Contract, error)
	GetOpenByEntityAndPlanFn func(ctx context.Context, entityID, planID uint) (*contract.Contract, error)
	ExistsByPlanIDFn         func(ctx context.Context, planID uint) (bool, error)

	CreateCalls int
	UpdateCalls int
}

func (m *MockContractRepository) Create(ctx context.Context, ct *contract.Contract) error {
	m.CreateCalls++
	if m.CreateFn != nil {
		return m.CreateFn(ctx, ct)
	}
	return nil
}

func (m *MockContractRepository) Update(ctx context.Context, ct *contract.Contract) error {
	m.UpdateCalls++
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, ct)
	}
	return nil
}

func (m *MockContractRepository) GetByID(ctx context.Context, contractID uint) (*contract.Contract, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, contractID)
	}
	return nil, nil
}

func (m *MockContractRepository) GetBySID(ctx context.Context, sid string) (*contract.Contract, error) {
	if m.GetBySIDFn != nil {
		return m.GetBySIDFn(ctx, sid)
	}
	return nil, nil
}

func (m *MockContractRepository) GetByEntityID(ctx context.Context, entityID uint) ([]*contract.Contract, error) {
	if m.GetByEntityIDFn != nil {
		return m.GetByEntityIDFn(ctx, entityID)
	}
	return nil, nil
}

func (m *MockContractRepository) GetOpenByEntityAndPlan(ctx context.Context, entityID, planID uint) (*contract.Contract, error) {
	if m.GetOpenByEntityAndPlanFn != nil {
		return m.GetOpenByEntityAndPlanFn(ctx, entityID, planID)
	}
	return nil, nil
}

func (m *MockContractRepository) ExistsByPlanID(ctx context.Context, planID uint) (bool, error) {
	if m.ExistsByPlanIDFn != nil {
		return m.ExistsByPlanIDFn(ctx, planID)
	}
	return false, nil
}

type MockEntityRepository struct {
	CreateFn     func(ctx context.Context, e *entity.Entity) error
	UpdateFn     func(ctx context.Context, e *entity.Entity) error
	GetByIDFn    func(ctx context.Context, entityID uint) (*entity.Entity, error)
	GetBySIDFn   func(ctx context.Context, sid string) (*entity.Entity, error)
	GetByTaxIDFn func(ctx context.Context, taxID string) (*entity.Entity, error)
	ListFn       func(ctx context.Context) ([]*entity.Entity, error)

	CreateCalls int
	UpdateCalls int
}

func (m *MockEntityRepository) Create(ctx context.Context, e *entity.Entity) error {
	m.CreateCalls++
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *MockEntityRepository) Update(ctx context.Context, e *entity.Entity) error {
	m.UpdateCalls++
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, e)
	}
	return nil
}

func (m *MockEntityRepository) GetByID(ctx context.Context, entityID uint) (*entity.Entity, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, entityID)
	}
	return nil, nil
}

func (m *MockEntityRepository) GetBySID(ctx context.Context, sid string) (*entity.Entity, error) {
	if m.GetBySIDFn != nil {
		return m.GetBySIDFn(ctx, sid)
	}
	return nil, nil
}

func (m *MockEntityRepository) GetByTaxID(ctx context.Context, taxID string) (*entity.Entity, error) {
	if m.GetByTaxIDFn != nil {
		return m.GetByTaxIDFn(ctx, taxID)
	}
	return nil, nil
}

func (m *MockEntityRepository) List(ctx context.Context) ([]*entity.Entity, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

type MockPlanRepository struct {
	CreateFn   func(ctx context.Context, p *plan.Plan) error
	UpdateFn   func(ctx context.Context, p *plan.Plan) error
	GetByIDFn  func(ctx context.Context, planID uint) (*plan.Plan, error)
	GetBySIDFn func(ctx context.Context, sid string) (*plan.Plan, error)
	ListFn     func(ctx context.Context, activeOnly bool) ([]*plan.Plan, error)

	CreateCalls int
	UpdateCalls int
}

func (m *MockPlanRepository) Create(ctx context.Context, p *plan.Plan) error {
	m.CreateCalls++
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *MockPlanRepository) Update(ctx context.Context, p *plan.Plan) error {
	m.UpdateCalls++
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, p)
	}
	return nil
}

func (m *MockPlanRepository) GetByID(ctx context.Context, planID uint) (*plan.Plan, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, planID)
	}
	return nil, nil
}

func (m *MockPlanRepository) GetBySID(ctx context.Context, sid string) (*plan.Plan, error) {
	if m.GetBySIDFn != nil {
		return m.GetBySIDFn(ctx, sid)
	}
	return nil, nil
}

func (m *MockPlanRepository) List(ctx context.Context, activeOnly bool) ([]*plan.Plan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, activeOnly)
	}
	return nil, nil
}
