package contract

import (
	"fmt"
	"time"

	vo "pactum/internal/domain/contract/valueobjects"
	"pactum/internal/shared/biztime"
	"pactum/internal/shared/id"
)

// Contract binds one entity to one plan and owns the lifecycle status.
// Status moves only along the edges in valueobjects.ContractStatus; a
// terminated contract accepts nothing but audit annotations.
type Contract struct {
	contractID uint
	sid        string
	entityID   uint
	planID     uint
	status     vo.ContractStatus

	// currentPaymentID is a non-owning reference to the payment funding the
	// current period. Lookup only, never cascaded.
	currentPaymentID *uint

	suspendReason   *string
	terminateReason *string

	activatedAt  *time.Time
	suspendedAt  *time.Time
	terminatedAt *time.Time

	annotations []Annotation

	version   int
	createdAt time.Time
	updatedAt time.Time
}

// Annotation is an audit note attached to a contract. Notes are markdown;
// rendering sanitizes them at the presentation boundary.
type Annotation struct {
	AuthorSID string    `json:"author_sid"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

func NewContract(entityID, planID uint) (*Contract, error) {
	if entityID == 0 {
		return nil, fmt.Errorf("entity ID is required")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixContract, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate contract sid: %w", err)
	}

	now := biztime.NowUTC()
	return &Contract{
		sid:       sid,
		entityID:  entityID,
		planID:    planID,
		status:    vo.ContractStatusDraft,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Activate moves draft -> active. The caller has already verified the
// referenced payment is settled and belongs to this contract.
func (c *Contract) Activate(paymentID uint) error {
	if !c.status.CanTransitionTo(vo.ContractStatusActive) || c.status != vo.ContractStatusDraft {
		return fmt.Errorf("cannot activate contract with status %s", c.status)
	}
	if paymentID == 0 {
		return fmt.Errorf("payment ID is required")
	}

	now := biztime.NowUTC()
	c.status = vo.ContractStatusActive
	c.currentPaymentID = &paymentID
	c.activatedAt = &now
	c.touch()
	return nil
}

// Suspend moves active -> suspended and records the reason.
func (c *Contract) Suspend(reason string) error {
	if c.status != vo.ContractStatusActive {
		return fmt.Errorf("cannot suspend contract with status %s", c.status)
	}

	now := biztime.NowUTC()
	c.status = vo.ContractStatusSuspended
	c.suspendReason = &reason
	c.suspendedAt = &now
	c.touch()
	return nil
}

// Reinstate moves suspended -> active. The caller has already run the
// payment check with the orchestrator.
func (c *Contract) Reinstate(paymentID uint) error {
	if c.status != vo.ContractStatusSuspended {
		return fmt.Errorf("cannot reinstate contract with status %s", c.status)
	}
	if paymentID == 0 {
		return fmt.Errorf("payment ID is required")
	}

	c.status = vo.ContractStatusActive
	c.currentPaymentID = &paymentID
	c.suspendReason = nil
	c.suspendedAt = nil
	c.touch()
	return nil
}

// Terminate is legal from any non-terminal state and idempotent: terminating
// an already-terminated contract changes nothing and reports no error, so
// retried administrative calls stay safe.
func (c *Contract) Terminate(reason string) error {
	if c.status.IsTerminated() {
		return nil
	}

	now := biztime.NowUTC()
	c.status = vo.ContractStatusTerminated
	c.terminateReason = &reason
	c.terminatedAt = &now
	c.touch()
	return nil
}

// Annotate appends an audit note. This is the only mutation a terminated
// contract accepts.
func (c *Contract) Annotate(authorSID, note string) error {
	if authorSID == "" {
		return fmt.Errorf("author is required")
	}
	if note == "" {
		return fmt.Errorf("note is required")
	}

	c.annotations = append(c.annotations, Annotation{
		AuthorSID: authorSID,
		Note:      note,
		CreatedAt: biztime.NowUTC(),
	})
	c.touch()
	return nil
}

// SetCurrentPayment records the non-owning reference to the open payment.
func (c *Contract) SetCurrentPayment(paymentID uint) {
	c.currentPaymentID = &paymentID
	c.touch()
}

func (c *Contract) touch() {
	c.updatedAt = biztime.NowUTC()
	c.version++
}

func (c *Contract) ID() uint                    { return c.contractID }
func (c *Contract) SID() string                 { return c.sid }
func (c *Contract) EntityID() uint              { return c.entityID }
func (c *Contract) PlanID() uint                { return c.planID }
func (c *Contract) Status() vo.ContractStatus   { return c.status }
func (c *Contract) CurrentPaymentID() *uint     { return c.currentPaymentID }
func (c *Contract) SuspendReason() *string      { return c.suspendReason }
func (c *Contract) TerminateReason() *string    { return c.terminateReason }
func (c *Contract) ActivatedAt() *time.Time     { return c.activatedAt }
func (c *Contract) SuspendedAt() *time.Time     { return c.suspendedAt }
func (c *Contract) TerminatedAt() *time.Time    { return c.terminatedAt }
func (c *Contract) Annotations() []Annotation   { return c.annotations }
func (c *Contract) Version() int                { return c.version }
func (c *Contract) CreatedAt() time.Time        { return c.createdAt }
func (c *Contract) UpdatedAt() time.Time        { return c.updatedAt }

// SetID sets the contract ID after persistence (used by repository after Create).
func (c *Contract) SetID(contractID uint) {
	c.contractID = contractID
}

// ReconstructParams carries the persisted state of a contract.
type ReconstructParams struct {
	ID               uint
	SID              string
	EntityID         uint
	PlanID           uint
	Status           vo.ContractStatus
	CurrentPaymentID *uint
	SuspendReason    *string
	TerminateReason  *string
	ActivatedAt      *time.Time
	SuspendedAt      *time.Time
	TerminatedAt     *time.Time
	Annotations      []Annotation
	Version          int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Reconstruct creates a Contract instance from persistence.
func Reconstruct(params ReconstructParams) *Contract {
	return &Contract{
		contractID:       params.ID,
		sid:              params.SID,
		entityID:         params.EntityID,
		planID:           params.PlanID,
		status:           params.Status,
		currentPaymentID: params.CurrentPaymentID,
		suspendReason:    params.SuspendReason,
		terminateReason:  params.TerminateReason,
		activatedAt:      params.ActivatedAt,
		suspendedAt:      params.SuspendedAt,
		terminatedAt:     params.TerminatedAt,
		annotations:      params.Annotations,
		version:          params.Version,
		createdAt:        params.CreatedAt,
		updatedAt:        params.UpdatedAt,
	}
}
