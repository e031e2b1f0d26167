package usecases

import (
	"context"

	"pactum/internal/domain/contract"
	vo "pactum/internal/domain/contract/valueobjects"
	"pactum/internal/shared/authorization"
	apperrors "pactum/internal/shared/errors"
	"pactum/internal/shared/logger"
	"pactum/internal/shared/session"
)

type SuspendContractCommand struct {
	Session     *session.Session
	ContractSID string
	Reason      string
}

type SuspendContractResult struct {
	Contract *contract.Contract
}

type SuspendContractUseCase struct {
	contractRepo contract.ContractRepository
	logger       logger.Interface
}

func NewSuspendContractUseCase(
	contractRepo contract.ContractRepository,
	logger logger.Interface,
) *SuspendContractUseCase {
	return &SuspendContractUseCase{
		contractRepo: contractRepo,
		logger:       logger,
	}
}

func (uc *SuspendContractUseCase) Execute(ctx context.Context, cmd SuspendContractCommand) (*SuspendContractResult, error) {
	if err := cmd.Session.RequireRole(authorization.RoleOperator); err != nil {
		return nil, err
	}
	if cmd.Reason == "" {
		return nil, apperrors.NewValidationError("suspension reason is required")
	}

	ctr, err := uc.contractRepo.GetBySID(ctx, cmd.ContractSID)
	if err != nil {
		return nil, err
	}
	if ctr == nil {
		return nil, apperrors.NewNotFoundError("contract not found")
	}
	if ctr.Status() != vo.ContractStatusActive {
		return nil, apperrors.NewInvalidStateError("only an active contract can be suspended",
			"current status: "+ctr.Status().String())
	}

	if err := ctr.Suspend(cmd.Reason); err != nil {
		return nil, apperrors.NewInvalidStateError("cannot suspend contract", err.Error())
	}
	if err := uc.contractRepo.Update(ctx, ctr); err != nil {
		uc.logger.Errorw("failed to persist suspension", "error", err, "contract_sid", ctr.SID())
		return nil, err
	}

	uc.logger.Infow("contract suspended",
		"contract_sid", ctr.SID(), "reason", cmd.Reason, "actor", cmd.Session.ActorSID)
	return &SuspendContractResult{Contract: ctr}, nil
}
