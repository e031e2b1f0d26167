package usecases

import (
	"context"

	"pactum/internal/domain/contract"
	vo "pactum/internal/domain/contract/valueobjects"
	"pactum/internal/domain/payment"
	"pactum/internal/shared/authorization"
	apperrors "pactum/internal/shared/errors"
	"pactum/internal/shared/logger"
	"pactum/internal/shared/session"
)

type ActivateContractCommand struct {
	Session     *session.Session
	ContractSID string
	PaymentSID  string
}

type ActivateContractResult struct {
	Contract *contract.Contract
}

// ActivateContractUseCase moves a draft contract to active once a settled
// payment belonging to the contract is presented.
type ActivateContractUseCase struct {
	contractRepo contract.ContractRepository
	paymentRepo  payment.PaymentRepository
	logger       logger.Interface
}

func NewActivateContractUseCase(
	contractRepo contract.ContractRepository,
	paymentRepo payment.PaymentRepository,
	logger logger.Interface,
) *ActivateContractUseCase {
	return &ActivateContractUseCase{
		contractRepo: contractRepo,
		paymentRepo:  paymentRepo,
		logger:       logger,
	}
}

func (uc *ActivateContractUseCase) Execute(ctx context.Context, cmd ActivateContractCommand) (*ActivateContractResult, error) {
	if err := cmd.Session.RequireRole(authorization.RoleEntitySelf); err != nil {
		return nil, err
	}

	ctr, err := uc.contractRepo.GetBySID(ctx, cmd.ContractSID)
	if err != nil {
		return nil, err
	}
	if ctr == nil {
		return nil, apperrors.NewNotFoundError("contract not found")
	}
	if err := cmd.Session.RequireEntityAccess(ctr.EntityID()); err != nil {
		return nil, err
	}
	if ctr.Status() != vo.ContractStatusDraft {
		return nil, apperrors.NewInvalidStateError("only a draft contract can be activated",
			"current status: "+ctr.Status().String())
	}

	p, err := uc.paymentRepo.GetBySID(ctx, cmd.PaymentSID)
	if err != nil {
		return nil, err
	}
	if p == nil || p.ContractID() != ctr.ID() {
		return nil, apperrors.NewNotFoundError("payment does not belong to this contract")
	}
	if !p.Status().IsSettled() {
		return nil, apperrors.NewInvalidStateError("activation requires a settled payment",
			"payment status: "+p.Status().String())
	}

	if err := ctr.Activate(p.ID()); err != nil {
		return nil, apperrors.NewInvalidStateError("cannot activate contract", err.Error())
	}
	if err := uc.contractRepo.Update(ctx, ctr); err != nil {
		uc.logger.Errorw("failed to persist activation", "error", err, "contract_sid", ctr.SID())
		return nil, err
	}

	uc.logger.Infow("contract activated",
		"contract_sid", ctr.SID(), "payment_sid", p.SID(), "actor", cmd.Session.ActorSID)
	return &ActivateContractResult{Contract: ctr}, nil
}
