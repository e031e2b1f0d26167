package usecases

import (
	"context"

	"pactum/internal/domain/contract"
	"pactum/internal/shared/authorization"
	apperrors "pactum/internal/shared/errors"
	"pactum/internal/shared/logger"
	"pactum/internal/shared/session"
)

type TerminateContractCommand struct {
	Session     *session.Session
	ContractSID string
	Reason      string
}

type TerminateContractResult struct {
	Contract *contract.Contract
	// AlreadyTerminated is true when the contract was terminal before the
	// call; the call still succeeds.
	AlreadyTerminated bool
}

// TerminateContractUseCase ends a contract from any non-terminal state.
// Terminating an already-terminated contract succeeds without change so
// retried administrative calls are safe.
type TerminateContractUseCase struct {
	contractRepo contract.ContractRepository
	logger       logger.Interface
}

func NewTerminateContractUseCase(
	contractRepo contract.ContractRepository,
	logger logger.Interface,
) *TerminateContractUseCase {
	return &TerminateContractUseCase{
		contractRepo: contractRepo,
		logger:       logger,
	}
}

func (uc *TerminateContractUseCase) Execute(ctx context.Context, cmd TerminateContractCommand) (*TerminateContractResult, error) {
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

	if ctr.Status().IsTerminated() {
		return &TerminateContractResult{Contract: ctr, AlreadyTerminated: true}, nil
	}

	if err := ctr.Terminate(cmd.Reason); err != nil {
		return nil, apperrors.NewInvalidStateError("cannot terminate contract", err.Error())
	}
	if err := uc.contractRepo.Update(ctx, ctr); err != nil {
		if apperrors.IsConflictError(err) {
			// A concurrent terminate got there first; re-read and report
			// success if the contract ended up terminated.
			current, lookupErr := uc.contractRepo.GetBySID(ctx, cmd.ContractSID)
			if lookupErr == nil && current != nil && current.Status().IsTerminated() {
				return &TerminateContractResult{Contract: current, AlreadyTerminated: true}, nil
			}
		}
		uc.logger.Errorw("failed to persist termination", "error", err, "contract_sid", ctr.SID())
		return nil, err
	}

	uc.logger.Infow("contract terminated",
		"contract_sid", ctr.SID(), "reason", cmd.Reason, "actor", cmd.Session.ActorSID)
	return &TerminateContractResult{Contract: ctr}, nil
}
