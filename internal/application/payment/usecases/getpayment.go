package usecases

import (
	"context"

	"pactum/internal/domain/contract"
	"pactum/internal/domain/payment"
	"pactum/internal/shared/authorization"
	apperrors "pactum/internal/shared/errors"
	"pactum/internal/shared/session"
)

type GetPaymentCommand struct {
	Session    *session.Session
	PaymentSID string
}

type GetPaymentResult struct {
	Payment *payment.Payment
}

type GetPaymentUseCase struct {
	paymentRepo  payment.PaymentRepository
	contractRepo contract.ContractRepository
}

func NewGetPaymentUseCase(
	paymentRepo payment.PaymentRepository,
	contractRepo contract.ContractRepository,
) *GetPaymentUseCase {
	return &GetPaymentUseCase{
		paymentRepo:  paymentRepo,
		contractRepo: contractRepo,
	}
}

func (uc *GetPaymentUseCase) Execute(ctx context.Context, cmd GetPaymentCommand) (*GetPaymentResult, error) {
	if err := cmd.Session.RequireRole(authorization.RoleEntitySelf); err != nil {
		return nil, err
	}

	p, err := uc.paymentRepo.GetBySID(ctx, cmd.PaymentSID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NewNotFoundError("payment not found")
	}

	ctr, err := uc.contractRepo.GetByID(ctx, p.ContractID())
	if err != nil {
		return nil, err
	}
	if ctr == nil {
		return nil, apperrors.NewNotFoundError("contract not found")
	}
	if err := cmd.Session.RequireEntityAccess(ctr.EntityID()); err != nil {
		return nil, err
	}

	return &GetPaymentResult{Payment: p}, nil
}
