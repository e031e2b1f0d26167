package usecases

import (
	"context"

	"pactum/internal/domain/contract"
	"pactum/internal/shared/authorization"
	apperrors "pactum/internal/shared/errors"
	"pactum/internal/shared/logger"
	"pactum/internal/shared/session"
)

type AnnotateContractCommand struct {
	Session     *session.Session
	ContractSID string
	Note        string
}

type AnnotateContractResult struct {
	Contract *contract.Contract
}

// AnnotateContractUseCase appends an audit note. Annotations are the one
// mutation a terminated contract still accepts.
type AnnotateContractUseCase struct {
	contractRepo contract.ContractRepository
	logger       logger.Interface
}

func NewAnnotateContractUseCase(
	contractRepo contract.ContractRepository,
	logger logger.Interface,
) *AnnotateContractUseCase {
	return &AnnotateContractUseCase{
		contractRepo: contractRepo,
		logger:       logger,
	}
}

func (uc *AnnotateContractUseCase) Execute(ctx context.Context, cmd AnnotateContractCommand) (*AnnotateContractResult, error) {
	if err := cmd.Session.RequireRole(authorization.RoleOperator); err != nil {
		return nil, err
	}
	if cmd.Note == "" {
		return nil, apperrors.NewValidationError("note is required")
	}

	ctr, err := uc.contractRepo.GetBySID(ctx, cmd.ContractSID)
	if err != nil {
		return nil, err
	}
	if ctr == nil {
		return nil, apperrors.NewNotFoundError("contract not found")
	}

	if err := ctr.Annotate(cmd.Session.ActorSID, cmd.Note); err != nil {
		return nil, apperrors.NewValidationError("invalid annotation", err.Error())
	}
	if err := uc.contractRepo.Update(ctx, ctr); err != nil {
		uc.logger.Errorw("failed to persist annotation", "error", err, "contract_sid", ctr.SID())
		return nil, err
	}

	return &AnnotateContractResult{Contract: ctr}, nil
}
