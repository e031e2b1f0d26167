package valueobjects

// EntityKind distinguishes natural persons from organizations.
type EntityKind string

const (
	EntityKindIndividual   EntityKind = "individual"
	EntityKindOrganization EntityKind = "organization"
)

func (k EntityKind) IsValid() bool {
	return k == EntityKindIndividual || k == EntityKindOrganization
}

func (k EntityKind) String() string {
	return string(k)
}
