package evaluation

import "context"

type EvaluationRepository interface {
	Create(ctx context.Context, evaluation *Evaluation) error
	Update(ctx context.Context, evaluation *Evaluation) error
	GetByID(ctx context.Context, evaluationID uint) (*Evaluation, error)
	GetBySID(ctx context.Context, sid string) (*Evaluation, error)
	GetByEntityID(ctx context.Context, entityID uint) ([]*Evaluation, error)
}
