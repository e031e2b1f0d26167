package account

import (
	"fmt"
	"strings"
	"time"

	"pactum/internal/shared/authorization"
	"pactum/internal/shared/biztime"
	"pactum/internal/shared/id"
)

// Account is a login credential. Staff accounts carry no entity reference;
// entity-self accounts are scoped to the entity they belong to.
type Account struct {
	accountID    uint
	sid          string
	loginTaxID   string
	passwordHash string
	role         authorization.UserRole
	entityID     *uint
	active       bool

	lastLoginAt *time.Time

	version   int
	createdAt time.Time
	updatedAt time.Time
}

func NewAccount(loginTaxID, passwordHash string, role authorization.UserRole, entityID *uint) (*Account, error) {
	loginTaxID = strings.TrimSpace(loginTaxID)
	if loginTaxID == "" {
		return nil, fmt.Errorf("login tax identifier is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if role == authorization.RoleEntitySelf && (entityID == nil || *entityID == 0) {
		return nil, fmt.Errorf("entity-self account requires an entity reference")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixAccount, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate account sid: %w", err)
	}

	now := biztime.NowUTC()
	return &Account{
		sid:          sid,
		loginTaxID:   loginTaxID,
		passwordHash: passwordHash,
		role:         role,
		entityID:     entityID,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func (a *Account) RecordLogin() {
	now := biztime.NowUTC()
	a.lastLoginAt = &now
	a.touch()
}

func (a *Account) Deactivate() {
	if !a.active {
		return
	}
	a.active = false
	a.touch()
}

func (a *Account) touch() {
	a.updatedAt = biztime.NowUTC()
	a.version++
}

func (a *Account) ID() uint                      { return a.accountID }
func (a *Account) SID() string                   { return a.sid }
func (a *Account) LoginTaxID() string            { return a.loginTaxID }
func (a *Account) PasswordHash() string          { return a.passwordHash }
func (a *Account) Role() authorization.UserRole  { return a.role }
func (a *Account) EntityID() *uint               { return a.entityID }
func (a *Account) IsActive() bool                { return a.active }
func (a *Account) LastLoginAt() *time.Time       { return a.lastLoginAt }
func (a *Account) Version() int                  { return a.version }
func (a *Account) CreatedAt() time.Time          { return a.createdAt }
func (a *Account) UpdatedAt() time.Time          { return a.updatedAt }

// SetID sets the account ID after persistence (used by repository after Create).
func (a *Account) SetID(accountID uint) {
	a.accountID = accountID
}

// ReconstructParams carries the persisted state of an account.
type ReconstructParams struct {
	ID           uint
	SID          string
	LoginTaxID   string
	PasswordHash string
	Role         authorization.UserRole
	EntityID     *uint
	Active       bool
	LastLoginAt  *time.Time
	Version      int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Reconstruct creates an Account instance from persistence.
func Reconstruct(params ReconstructParams) *Account {
	return &Account{
		accountID:    params.ID,
		sid:          params.SID,
		loginTaxID:   params.LoginTaxID,
		passwordHash: params.PasswordHash,
		role:         params.Role,
		entityID:     params.EntityID,
		active:       params.Active,
		lastLoginAt:  params.LastLoginAt,
		version:      params.Version,
		createdAt:    params.CreatedAt,
		updatedAt:    params.UpdatedAt,
	}
}
