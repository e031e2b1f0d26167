package valueobjects

// EntityStatus is a soft flag. Entities are never hard-deleted because
// contracts keep referencing them.
type EntityStatus string

const (
	EntityStatusActive   EntityStatus = "active"
	EntityStatusInactive EntityStatus = "inactive"
)

func (s EntityStatus) IsValid() bool {
	return s == EntityStatusActive || s == EntityStatusInactive
}

func (s EntityStatus) IsActive() bool {
	return s == EntityStatusActive
}

func (s EntityStatus) String() string {
	return string(s)
}
