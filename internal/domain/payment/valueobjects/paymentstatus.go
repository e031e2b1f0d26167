package valueobjects

// PaymentStatus tracks a funding attempt through gateway settlement.
// Legal transitions: initiated -> processing -> settled | failed,
// settled -> refunded. Settled, failed and refunded are terminal for the
// one-open-payment-per-contract rule; refund is the only move out of settled.
type PaymentStatus string

const (
	PaymentStatusInitiated  PaymentStatus = "initiated"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusSettled    PaymentStatus = "settled"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusInitiated, PaymentStatusProcessing, PaymentStatusSettled,
		PaymentStatusFailed, PaymentStatusRefunded:
		return true
	default:
		return false
	}
}

func (s PaymentStatus) IsSettled() bool {
	return s == PaymentStatusSettled
}

// IsOpen reports whether the payment still occupies the contract's single
// non-terminal payment slot.
func (s PaymentStatus) IsOpen() bool {
	return s == PaymentStatusInitiated || s == PaymentStatusProcessing
}

// IsTerminal reports whether no further gateway callback may change the
// status. Refund is a separate explicit operation, not a callback outcome.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusSettled || s == PaymentStatusFailed || s == PaymentStatusRefunded
}

func (s PaymentStatus) String() string {
	return string(s)
}
