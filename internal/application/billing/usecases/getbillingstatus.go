package usecases

import (
	"context"

	"pactum/internal/domain/contract"
	vo "pactum/internal/domain/contract/valueobjects"
	"pactum/internal/domain/entity"
	"pactum/internal/domain/payment"
	"pactum/internal/domain/plan"
	"pactum/internal/shared/authorization"
	apperrors "pactum/internal/shared/errors"
	"pactum/internal/shared/session"
)

type GetBillingStatusCommand struct {
	Session *session.Session
	TaxID   string
}

// ContractBillingView pairs a contract with the plan it was signed on and
// its most recent payment.
type ContractBillingView struct {
	Contract      *contract.Contract
	Plan          *plan.Plan
	LatestPayment *payment.Payment
}

type GetBillingStatusResult struct {
	Entity        *entity.Entity
	Contracts     []ContractBillingView
	LatestPayment *payment.Payment
	OverallStatus string
}

// GetBillingStatusUseCase is the administrative read side. It composes
// entity, contract, plan and payment state and never mutates any of them.
type GetBillingStatusUseCase struct {
	entityRepo   entity.EntityRepository
	contractRepo contract.ContractRepository
	planRepo     plan.PlanRepository
	paymentRepo  payment.PaymentRepository
}

func NewGetBillingStatusUseCase(
	entityRepo entity.EntityRepository,
	contractRepo contract.ContractRepository,
	planRepo plan.PlanRepository,
	paymentRepo payment.PaymentRepository,
) *GetBillingStatusUseCase {
	return &GetBillingStatusUseCase{
		entityRepo:   entityRepo,
		contractRepo: contractRepo,
		planRepo:     planRepo,
		paymentRepo:  paymentRepo,
	}
}

func (uc *GetBillingStatusUseCase) Execute(ctx context.Context, cmd GetBillingStatusCommand) (*GetBillingStatusResult, error) {
	if err := cmd.Session.RequireRole(authorization.RoleAdmin); err != nil {
		return nil, err
	}
	if cmd.TaxID == "" {
		return nil, apperrors.NewValidationError("tax identifier is required")
	}

	ent, err := uc.entityRepo.GetByTaxID(ctx, cmd.TaxID)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, apperrors.NewNotFoundError("entity not found")
	}

	contracts, err := uc.contractRepo.GetByEntityID(ctx, ent.ID())
	if err != nil {
		return nil, err
	}

	result := &GetBillingStatusResult{Entity: ent}
	for _, ctr := range contracts {
		pln, err := uc.planRepo.GetByID(ctx, ctr.PlanID())
		if err != nil {
			return nil, err
		}
		latest, err := uc.paymentRepo.GetLatestByContractID(ctx, ctr.ID())
		if err != nil {
			return nil, err
		}
		result.Contracts = append(result.Contracts, ContractBillingView{
			Contract:      ctr,
			Plan:          pln,
			LatestPayment: latest,
		})
		if latest != nil {
			if result.LatestPayment == nil || latest.CreatedAt().After(result.LatestPayment.CreatedAt()) {
				result.LatestPayment = latest
			}
		}
	}
	result.OverallStatus = overallStatus(contracts)
	return result, nil
}

// overallStatus collapses an entity's contracts to a single headline value.
// Any active contract wins, then suspended, then draft, then terminated.
func overallStatus(contracts []*contract.Contract) string {
	if len(contracts) == 0 {
		return "none"
	}
	rank := map[vo.ContractStatus]int{
		vo.ContractStatusActive:     4,
		vo.ContractStatusSuspended:  3,
		vo.ContractStatusDraft:      2,
		vo.ContractStatusTerminated: 1,
	}
	best := contracts[0].Status()
	for _, c := range contracts[1:] {
		if rank[c.Status()] > rank[best] {
			best = c.Status()
		}
	}
	return best.String()
}
