package valueobjects

// ContractStatus tracks a contract through its lifecycle. Legal transitions:
// draft -> active -> suspended -> terminated, draft -> terminated and
// suspended -> active. Terminated is absorbing.
type ContractStatus string

const (
	ContractStatusDraft      ContractStatus = "draft"
	ContractStatusActive     ContractStatus = "active"
	ContractStatusSuspended  ContractStatus = "suspended"
	ContractStatusTerminated ContractStatus = "terminated"
)

var transitions = map[ContractStatus][]ContractStatus{
	ContractStatusDraft:      {ContractStatusActive, ContractStatusTerminated},
	ContractStatusActive:     {ContractStatusSuspended, ContractStatusTerminated},
	ContractStatusSuspended:  {ContractStatusActive, ContractStatusTerminated},
	ContractStatusTerminated: {},
}

func (s ContractStatus) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

func (s ContractStatus) IsTerminated() bool {
	return s == ContractStatusTerminated
}

// CanTransitionTo reports whether the edge s -> target exists in the
// lifecycle graph.
func (s ContractStatus) CanTransitionTo(target ContractStatus) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

func (s ContractStatus) String() string {
	return string(s)
}
