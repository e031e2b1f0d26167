package valueobjects

// BillingCycle is how often a plan bills.
type BillingCycle string

const (
	BillingCycleMonthly BillingCycle = "monthly"
	BillingCycleAnnual  BillingCycle = "annual"
	BillingCycleOneTime BillingCycle = "one_time"
)

func (c BillingCycle) IsValid() bool {
	switch c {
	case BillingCycleMonthly, BillingCycleAnnual, BillingCycleOneTime:
		return true
	}
	return false
}

func (c BillingCycle) IsRecurring() bool {
	return c == BillingCycleMonthly || c == BillingCycleAnnual
}

func (c BillingCycle) String() string {
	return string(c)
}
