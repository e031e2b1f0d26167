package payment

import (
	"fmt"
	"time"

	vo "pactum/internal/domain/payment/valueobjects"
	"pactum/internal/shared/biztime"
	"pactum/internal/shared/id"
)

// Payment is one funding attempt for a contract. The idempotency key is
// unique and stable for a given (contract, billing period) pair so a retried
// initiation never produces a second gateway charge.
type Payment struct {
	paymentID  uint
	sid        string
	contractID uint
	amount     vo.Money
	status     vo.PaymentStatus

	idempotencyKey string
	gatewayRef     *string
	failureReason  *string

	settledAt  *time.Time
	refundedAt *time.Time

	version   int
	createdAt time.Time
	updatedAt time.Time
}

func NewPayment(contractID uint, amount vo.Money, idempotencyKey string) (*Payment, error) {
	if contractID == 0 {
		return nil, fmt.Errorf("contract ID is required")
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive")
	}
	if idempotencyKey == "" {
		return nil, fmt.Errorf("idempotency key is required")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixPayment, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate payment sid: %w", err)
	}

	now := biztime.NowUTC()
	return &Payment{
		sid:            sid,
		contractID:     contractID,
		amount:         amount,
		status:         vo.PaymentStatusInitiated,
		idempotencyKey: idempotencyKey,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// MarkProcessing records the gateway's acceptance of the charge. Only legal
// from initiated.
func (p *Payment) MarkProcessing(gatewayRef string) error {
	if p.status != vo.PaymentStatusInitiated {
		return fmt.Errorf("cannot mark payment as processing with status %s", p.status)
	}
	if gatewayRef == "" {
		return fmt.Errorf("gateway reference is required")
	}

	p.status = vo.PaymentStatusProcessing
	p.gatewayRef = &gatewayRef
	p.touch()
	return nil
}

// MarkSettled applies a confirmed successful gateway outcome. Settling an
// already-settled payment is a no-op so duplicate callbacks stay harmless.
func (p *Payment) MarkSettled() error {
	if p.status == vo.PaymentStatusSettled {
		return nil
	}
	if !p.status.IsOpen() {
		return fmt.Errorf("cannot settle payment with terminal status %s", p.status)
	}

	now := biztime.NowUTC()
	p.status = vo.PaymentStatusSettled
	p.settledAt = &now
	p.touch()
	return nil
}

// MarkFailed applies a confirmed failed gateway outcome. A local timeout is
// never a reason to call this; only the gateway's word is.
func (p *Payment) MarkFailed(reason string) error {
	if p.status == vo.PaymentStatusFailed {
		return nil
	}
	if !p.status.IsOpen() {
		return fmt.Errorf("cannot fail payment with terminal status %s", p.status)
	}

	p.status = vo.PaymentStatusFailed
	p.failureReason = &reason
	p.touch()
	return nil
}

// MarkRefunded records a gateway-confirmed refund. Only legal from settled.
func (p *Payment) MarkRefunded() error {
	if p.status != vo.PaymentStatusSettled {
		return fmt.Errorf("cannot refund payment with status %s", p.status)
	}

	now := biztime.NowUTC()
	p.status = vo.PaymentStatusRefunded
	p.refundedAt = &now
	p.touch()
	return nil
}

// ValidateCallbackAmount verifies that a callback's amount and currency match
// the payment before any transition is applied.
func (p *Payment) ValidateCallbackAmount(amount int64, currency string) error {
	if p.amount.AmountInCents() != amount {
		return fmt.Errorf("amount mismatch: expected %d, got %d", p.amount.AmountInCents(), amount)
	}
	if p.amount.Currency() != currency {
		return fmt.Errorf("currency mismatch: expected %s, got %s", p.amount.Currency(), currency)
	}
	return nil
}

func (p *Payment) touch() {
	p.updatedAt = biztime.NowUTC()
	p.version++
}

func (p *Payment) ID() uint                { return p.paymentID }
func (p *Payment) SID() string             { return p.sid }
func (p *Payment) ContractID() uint        { return p.contractID }
func (p *Payment) Amount() vo.Money        { return p.amount }
func (p *Payment) Status() vo.PaymentStatus { return p.status }
func (p *Payment) IdempotencyKey() string  { return p.idempotencyKey }
func (p *Payment) GatewayRef() *string     { return p.gatewayRef }
func (p *Payment) FailureReason() *string  { return p.failureReason }
func (p *Payment) SettledAt() *time.Time   { return p.settledAt }
func (p *Payment) RefundedAt() *time.Time  { return p.refundedAt }
func (p *Payment) Version() int            { return p.version }
func (p *Payment) CreatedAt() time.Time    { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time    { return p.updatedAt }

// SetID sets the payment ID after persistence (used by repository after Create).
func (p *Payment) SetID(paymentID uint) {
	p.paymentID = paymentID
}

// ReconstructParams carries the persisted state of a payment.
type ReconstructParams struct {
	ID             uint
	SID            string
	ContractID     uint
	Amount         vo.Money
	Status         vo.PaymentStatus
	IdempotencyKey string
	GatewayRef     *string
	FailureReason  *string
	SettledAt      *time.Time
	RefundedAt     *time.Time
	Version        int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Reconstruct creates a Payment instance from persistence.
func Reconstruct(params ReconstructParams) *Payment {
	return &Payment{
		paymentID:      params.ID,
		sid:            params.SID,
		contractID:     params.ContractID,
		amount:         params.Amount,
		status:         params.Status,
		idempotencyKey: params.IdempotencyKey,
		gatewayRef:     params.GatewayRef,
		failureReason:  params.FailureReason,
		settledAt:      params.SettledAt,
		refundedAt:     params.RefundedAt,
		version:        params.Version,
		createdAt:      params.CreatedAt,
		updatedAt:      params.UpdatedAt,
	}
}
