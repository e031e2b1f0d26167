package evaluation

import (
	"fmt"
	"time"

	"pactum/internal/shared/biztime"
	"pactum/internal/shared/id"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Evaluation is a standalone review record about an entity. It shares the
// authorization discipline of the billing surface but nothing else.
type Evaluation struct {
	evaluationID uint
	sid          string
	entityID     uint
	score        int
	comment      string
	status       string

	inactivatedAt *time.Time

	version   int
	createdAt time.Time
	updatedAt time.Time
}

func NewEvaluation(entityID uint, score int, comment string) (*Evaluation, error) {
	if entityID == 0 {
		return nil, fmt.Errorf("entity ID is required")
	}
	if score < 1 || score > 5 {
		return nil, fmt.Errorf("score must be between 1 and 5")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixEvaluation, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate evaluation sid: %w", err)
	}

	now := biztime.NowUTC()
	return &Evaluation{
		sid:       sid,
		entityID:  entityID,
		score:     score,
		comment:   comment,
		status:    StatusActive,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Inactivate hides the evaluation. Repeated calls are no-ops so retried
// administrative requests stay safe.
func (e *Evaluation) Inactivate() {
	if e.status == StatusInactive {
		return
	}

	now := biztime.NowUTC()
	e.status = StatusInactive
	e.inactivatedAt = &now
	e.touch()
}

func (e *Evaluation) touch() {
	e.updatedAt = biztime.NowUTC()
	e.version++
}

func (e *Evaluation) ID() uint                  { return e.evaluationID }
func (e *Evaluation) SID() string               { return e.sid }
func (e *Evaluation) EntityID() uint            { return e.entityID }
func (e *Evaluation) Score() int                { return e.score }
func (e *Evaluation) Comment() string           { return e.comment }
func (e *Evaluation) Status() string            { return e.status }
func (e *Evaluation) InactivatedAt() *time.Time { return e.inactivatedAt }
func (e *Evaluation) Version() int              { return e.version }
func (e *Evaluation) CreatedAt() time.Time      { return e.createdAt }
func (e *Evaluation) UpdatedAt() time.Time      { return e.updatedAt }

// SetID sets the evaluation ID after persistence (used by repository after Create).
func (e *Evaluation) SetID(evaluationID uint) {
	e.evaluationID = evaluationID
}

// ReconstructParams carries the persisted state of an evaluation.
type ReconstructParams struct {
	ID            uint
	SID           string
	EntityID      uint
	Score         int
	Comment       string
	Status        string
	InactivatedAt *time.Time
	Version       int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Reconstruct creates an Evaluation instance from persistence.
func Reconstruct(params ReconstructParams) *Evaluation {
	return &Evaluation{
		evaluationID:  params.ID,
		sid:           params.SID,
		entityID:      params.EntityID,
		score:         params.Score,
		comment:       params.Comment,
		status:        params.Status,
		inactivatedAt: params.InactivatedAt,
		version:       params.Version,
		createdAt:     params.CreatedAt,
		updatedAt:     params.UpdatedAt,
	}
}
