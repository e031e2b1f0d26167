package usecases

import (
	"context"

	"pactum/internal/domain/evaluation"
	"pactum/internal/shared/authorization"
	apperrors "pactum/internal/shared/errors"
	"pactum/internal/shared/logger"
	"pactum/internal/shared/session"
)

type InactivateEvaluationCommand struct {
	Session       *session.Session
	EvaluationSID string
}

type InactivateEvaluationResult struct {
	Evaluation *evaluation.Evaluation
	// AlreadyInactive reports an idempotent repeat of an earlier call.
	AlreadyInactive bool
}

// InactivateEvaluationUseCase hides an evaluation record. A sibling workflow
// to the billing surface that shares its authorization discipline and nothing
// else.
type InactivateEvaluationUseCase struct {
	evaluationRepo evaluation.EvaluationRepository
	logger         logger.Interface
}

func NewInactivateEvaluationUseCase(
	evaluationRepo evaluation.EvaluationRepository,
	logger logger.Interface,
) *InactivateEvaluationUseCase {
	return &InactivateEvaluationUseCase{
		evaluationRepo: evaluationRepo,
		logger:         logger,
	}
}

func (uc *InactivateEvaluationUseCase) Execute(ctx context.Context, cmd InactivateEvaluationCommand) (*InactivateEvaluationResult, error) {
	if err := cmd.Session.RequireRole(authorization.RoleAdmin); err != nil {
		return nil, err
	}

	ev, err := uc.evaluationRepo.GetBySID(ctx, cmd.EvaluationSID)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, apperrors.NewNotFoundError("evaluation not found")
	}
	if ev.Status() == evaluation.StatusInactive {
		return &InactivateEvaluationResult{Evaluation: ev, AlreadyInactive: true}, nil
	}

	ev.Inactivate()
	if err := uc.evaluationRepo.Update(ctx, ev); err != nil {
		uc.logger.Errorw("failed to inactivate evaluation", "error", err, "evaluation_sid", ev.SID())
		return nil, err
	}

	uc.logger.Infow("evaluation inactivated",
		"evaluation_sid", ev.SID(), "actor", cmd.Session.ActorSID)
	return &InactivateEvaluationResult{Evaluation: ev}, nil
}
