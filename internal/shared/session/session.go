// Package session defines the authenticated actor context carried into every
// mutating use case. A Session is resolved once at the HTTP boundary and
// passed explicitly; use cases never read ambient authentication state.
package session

import (
	"pactum/internal/shared/authorization"
	apperrors "pactum/internal/shared/errors"
)

// Session carries the authenticated actor's identity and role.
type Session struct {
	ActorSID  string
	SessionID string
	Role      authorization.UserRole
	// EntityID is set for entity-self sessions and scopes them to their own
	// records. Zero for staff sessions.
	EntityID uint
}

// RequireRole returns Unauthorized when the session is missing or invalid,
// and Forbidden when the role does not meet the operation's minimum.
// Checks fail closed.
func (s *Session) RequireRole(min authorization.UserRole) error {
	if s == nil || s.ActorSID == "" || !s.Role.IsValid() {
		return apperrors.NewUnauthorizedError("authentication required")
	}
	if !s.Role.AtLeast(min) {
		return apperrors.NewForbiddenError("insufficient role",
			"operation requires "+min.String())
	}
	return nil
}

// RequireEntityAccess verifies the session may operate on records owned by
// the given entity. Staff roles pass; entity-self sessions only for their
// own entity.
func (s *Session) RequireEntityAccess(entityID uint) error {
	if err := s.RequireRole(authorization.RoleEntitySelf); err != nil {
		return err
	}
	if !authorization.CanAccessEntity(s.EntityID, s.Role, entityID) {
		return apperrors.NewForbiddenError("not allowed to act on this entity")
	}
	return nil
}
