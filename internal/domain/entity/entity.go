package entity

import (
	"fmt"
	"strings"
	"time"

	vo "pactum/internal/domain/entity/valueobjects"
	"pactum/internal/shared/biztime"
	"pactum/internal/shared/id"
)

// Entity is a contracting party. The tax identifier is unique across all
// entities; registration with a duplicate one is a conflict.
type Entity struct {
	entityID uint
	sid      string
	taxID    string
	name     string
	kind     vo.EntityKind
	status   vo.EntityStatus

	profile *Profile

	version   int
	createdAt time.Time
	updatedAt time.Time
}

// Profile is the optional extended record attached after registration.
// Attributes carries free-form extras persisted as a JSON column.
type Profile struct {
	Address      string            `json:"address"`
	ContactEmail string            `json:"contact_email"`
	ContactPhone string            `json:"contact_phone"`
	BankName     string            `json:"bank_name"`
	BankAccount  string            `json:"bank_account"`
	Attributes   map[string]string `json:"attributes,omitempty"`
}

func NewEntity(taxID, name string, kind vo.EntityKind) (*Entity, error) {
	taxID = strings.TrimSpace(taxID)
	if taxID == "" {
		return nil, fmt.Errorf("tax identifier is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid entity kind: %s", kind)
	}

	sid, err := id.GenerateWithPrefix(id.PrefixEntity, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate entity sid: %w", err)
	}

	now := biztime.NowUTC()
	return &Entity{
		sid:       sid,
		taxID:     taxID,
		name:      name,
		kind:      kind,
		status:    vo.EntityStatusActive,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// AttachProfile sets or replaces the extended profile record.
func (e *Entity) AttachProfile(profile Profile) error {
	if profile.ContactEmail != "" && !strings.Contains(profile.ContactEmail, "@") {
		return fmt.Errorf("invalid contact email")
	}

	e.profile = &profile
	e.touch()
	return nil
}

// Deactivate flips the soft status. The record stays in place for the
// contracts that reference it.
func (e *Entity) Deactivate() {
	if e.status == vo.EntityStatusInactive {
		return
	}
	e.status = vo.EntityStatusInactive
	e.touch()
}

func (e *Entity) Reactivate() {
	if e.status == vo.EntityStatusActive {
		return
	}
	e.status = vo.EntityStatusActive
	e.touch()
}

func (e *Entity) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	e.name = name
	e.touch()
	return nil
}

func (e *Entity) touch() {
	e.updatedAt = biztime.NowUTC()
	e.version++
}

func (e *Entity) ID() uint                 { return e.entityID }
func (e *Entity) SID() string              { return e.sid }
func (e *Entity) TaxID() string            { return e.taxID }
func (e *Entity) Name() string             { return e.name }
func (e *Entity) Kind() vo.EntityKind      { return e.kind }
func (e *Entity) Status() vo.EntityStatus  { return e.status }
func (e *Entity) Profile() *Profile        { return e.profile }
func (e *Entity) Version() int             { return e.version }
func (e *Entity) CreatedAt() time.Time     { return e.createdAt }
func (e *Entity) UpdatedAt() time.Time     { return e.updatedAt }

// SetID sets the entity ID after persistence (used by repository after Create).
func (e *Entity) SetID(entityID uint) {
	e.entityID = entityID
}

// ReconstructParams carries the persisted state of an entity.
type ReconstructParams struct {
	ID        uint
	SID       string
	TaxID     string
	Name      string
	Kind      vo.EntityKind
	Status    vo.EntityStatus
	Profile   *Profile
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Reconstruct creates an Entity instance from persistence.
func Reconstruct(params ReconstructParams) *Entity {
	return &Entity{
		entityID:  params.ID,
		sid:       params.SID,
		taxID:     params.TaxID,
		name:      params.Name,
		kind:      params.Kind,
		status:    params.Status,
		profile:   params.Profile,
		version:   params.Version,
		createdAt: params.CreatedAt,
		updatedAt: params.UpdatedAt,
	}
}
