package authorization

// UserRole identifies the actor class attached to a session. Roles are
// ordered: admin > operator > entity-self.
type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleOperator   UserRole = "operator"
	RoleEntitySelf UserRole = "entity-self"
)

var roleRank = map[UserRole]int{
	RoleEntitySelf: 1,
	RoleOperator:   2,
	RoleAdmin:      3,
}

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r meets the given minimum role. Unknown roles
// never satisfy any minimum.
func (r UserRole) AtLeast(min UserRole) bool {
	rank, ok := roleRank[r]
	if !ok {
		return false
	}
	minRank, ok := roleRank[min]
	if !ok {
		return false
	}
	return rank >= minRank
}

// ParseUserRole maps a stored role string to a UserRole. Unknown input is
// returned as-is: it fails IsValid and AtLeast, so a corrupted or stale role
// grants nothing rather than defaulting to a real one.
func ParseUserRole(s string) UserRole {
	return UserRole(s)
}
