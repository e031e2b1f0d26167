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

type ReinstateContractCommand struct {
	Session     *session.Session
	ContractSID string
}

type ReinstateContractResult struct {
	Contract *contract.Contract
}

// ReinstateContractUseCase flips a suspended contract back to active. The
// payment check is delegated to the payment records: the contract's most
// recent payment must be settled.
type ReinstateContractUseCase struct {
	contractRepo contract.ContractRepository
	paymentRepo  payment.PaymentRepository
	logger       logger.Interface
}

func NewReinstateContractUseCase(
	contractRepo contract.ContractRepository,
	paymentRepo payment.PaymentRepository,
	logger logger.Interface,
) *ReinstateContractUseCase {
	return &ReinstateContractUseCase{
		contractRepo: contractRepo,
		paymentRepo:  paymentRepo,
		logger:       logger,
	}
}

func (uc *ReinstateContractUseCase) Execute(ctx context.Context, cmd ReinstateContractCommand) (*ReinstateContractResult, error) {
	if err := cmd.Session.RequireRole(authorization.RoleOperator); err != nil {
		return nil, err
	}

	ctr, err := uc.contractRepo.GetBySID(ctx, cmd.ContractSID)
	if err != nil {
		return nil, err
	}
	if ctr == nil {
		return nil, apperrors.NewNotFoundError("contract not found")
	}
	if ctr.Status() != vo.ContractStatusSuspended {
		return nil, apperrors.NewInvalidStateError("only a suspended contract can be reinstated",
			"current status: "+ctr.Status().String())
	}

	latest, err := uc.paymentRepo.GetLatestByContractID(ctx, ctr.ID())
	if err != nil {
		return nil, err
	}
	if latest == nil || !latest.Status().IsSettled() {
		return nil, apperrors.NewInvalidStateError("reinstatement requires a settled payment")
	}

	if err := ctr.Reinstate(latest.ID()); err != nil {
		return nil, apperrors.NewInvalidStateError("cannot reinstate contract", err.Error())
	}
	if err := uc.contractRepo.Update(ctx, ctr); err != nil {
		uc.logger.Errorw("failed to persist reinstatement", "error", err, "contract_sid", ctr.SID())
		return nil, err
	}

	uc.logger.Infow("contract reinstated",
		"contract_sid", ctr.SID(), "payment_sid", latest.SID(), "actor", cmd.Session.ActorSID)
	return &ReinstateContractResult{Contract: ctr}, nil
}
