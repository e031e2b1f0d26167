package plan

import (
	"fmt"
	"strings"
	"time"

	vo "pactum/internal/domain/plan/valueobjects"
	"pactum/internal/shared/biztime"
	"pactum/internal/shared/constants"
	"pactum/internal/shared/id"
)

// Plan is a purchasable service offering. Once a signed contract references a
// plan, the plan is immutable; changes create a new revision that supersedes
// it and the old row is retired.
type Plan struct {
	planID   uint
	sid      string
	name     string
	price    int64 // cents
	currency string
	cycle    vo.BillingCycle
	active   bool

	// revision is monotonically increasing within a plan family; supersededBy
	// points at the replacing plan once this one is revised.
	revision     int
	supersededBy *uint

	features map[string]string

	version   int
	createdAt time.Time
	updatedAt time.Time
}

func NewPlan(name string, priceInCents int64, cycle vo.BillingCycle, features map[string]string) (*Plan, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if priceInCents < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if !cycle.IsValid() {
		return nil, fmt.Errorf("invalid billing cycle: %s", cycle)
	}

	sid, err := id.GenerateWithPrefix(id.PrefixPlan, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate plan sid: %w", err)
	}

	now := biztime.NowUTC()
	return &Plan{
		sid:       sid,
		name:      name,
		price:     priceInCents,
		currency:  constants.DefaultCurrency,
		cycle:     cycle,
		active:    true,
		revision:  1,
		features:  features,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Revise produces the next revision of this plan with new terms and retires
// the current one. The caller persists both.
func (p *Plan) Revise(name string, priceInCents int64, cycle vo.BillingCycle, features map[string]string) (*Plan, error) {
	if !p.active {
		return nil, fmt.Errorf("cannot revise a retired plan")
	}

	next, err := NewPlan(name, priceInCents, cycle, features)
	if err != nil {
		return nil, err
	}
	next.revision = p.revision + 1

	p.Retire()
	return next, nil
}

// UpdateTerms mutates the plan in place. Only legal while no signed contract
// references it; once referenced, Revise is the only way to change terms.
func (p *Plan) UpdateTerms(name string, priceInCents int64, cycle vo.BillingCycle, features map[string]string) error {
	if !p.active {
		return fmt.Errorf("cannot update a retired plan")
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	if priceInCents < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	if !cycle.IsValid() {
		return fmt.Errorf("invalid billing cycle: %s", cycle)
	}

	p.name = name
	p.price = priceInCents
	p.cycle = cycle
	p.features = features
	p.touch()
	return nil
}

// Retire deactivates the plan. Existing contracts keep their reference.
func (p *Plan) Retire() {
	if !p.active {
		return
	}
	p.active = false
	p.touch()
}

// MarkSupersededBy links this plan to the revision that replaced it.
func (p *Plan) MarkSupersededBy(planID uint) {
	p.supersededBy = &planID
	p.touch()
}

func (p *Plan) touch() {
	p.updatedAt = biztime.NowUTC()
	p.version++
}

func (p *Plan) ID() uint                  { return p.planID }
func (p *Plan) SID() string               { return p.sid }
func (p *Plan) Name() string              { return p.name }
func (p *Plan) PriceInCents() int64       { return p.price }
func (p *Plan) Currency() string          { return p.currency }
func (p *Plan) Cycle() vo.BillingCycle    { return p.cycle }
func (p *Plan) IsActive() bool            { return p.active }
func (p *Plan) Revision() int             { return p.revision }
func (p *Plan) SupersededBy() *uint       { return p.supersededBy }
func (p *Plan) Features() map[string]string { return p.features }
func (p *Plan) Version() int              { return p.version }
func (p *Plan) CreatedAt() time.Time      { return p.createdAt }
func (p *Plan) UpdatedAt() time.Time      { return p.updatedAt }

// SetID sets the plan ID after persistence (used by repository after Create).
func (p *Plan) SetID(planID uint) {
	p.planID = planID
}

// ReconstructParams carries the persisted state of a plan.
type ReconstructParams struct {
	ID           uint
	SID          string
	Name         string
	PriceInCents int64
	Currency     string
	Cycle        vo.BillingCycle
	Active       bool
	Revision     int
	SupersededBy *uint
	Features     map[string]string
	Version      int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Reconstruct creates a Plan instance from persistence.
func Reconstruct(params ReconstructParams) *Plan {
	return &Plan{
		planID:       params.ID,
		sid:          params.SID,
		name:         params.Name,
		price:        params.PriceInCents,
		currency:     params.Currency,
		cycle:        params.Cycle,
		active:       params.Active,
		revision:     params.Revision,
		supersededBy: params.SupersededBy,
		features:     params.Features,
		version:      params.Version,
		createdAt:    params.CreatedAt,
		updatedAt:    params.UpdatedAt,
	}
}
