package usecases

import (
	"context"

	"pactum/internal/domain/contract"
	"pactum/internal/shared/authorization"
	apperrors "pactum/internal/shared/errors"
	"pactum/internal/shared/session"
)

type GetContractCommand struct {
	Session     *session.Session
	ContractSID string
}

type GetContractResult struct {
	Contract *contract.Contract
}

type GetContractUseCase struct {
	contractRepo contract.ContractRepository
}

func NewGetContractUseCase(contractRepo contract.ContractRepository) *GetContractUseCase {
	return &GetContractUseCase{contractRepo: contractRepo}
}

func (uc *GetContractUseCase) Execute(ctx context.Context, cmd GetContractCommand) (*GetContractResult, error) {
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

	return &GetContractResult{Contract: ctr}, nil
}
