// Package paymentgateway defines the port to the external payment gateway.
// The engine consumes charge, refund and status queries and receives signed
// callbacks; it never implements the gateway's side of the protocol.
package paymentgateway

import "context"

// Outcome is the gateway's authoritative word on a charge. Callbacks and
// status queries are validated into this tagged form at the boundary before
// any local transition is attempted.
type Outcome string

const (
	OutcomePending Outcome = "pending"
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

func (o Outcome) IsValid() bool {
	return o == OutcomePending || o == OutcomeSuccess || o == OutcomeFailure
}

// ChargeResult is the gateway's synchronous response to a charge request.
type ChargeResult struct {
	GatewayRef string
	Outcome    Outcome
}

// CallbackPayload is a verified inbound gateway notification. Delivery is
// at-least-once and possibly out of order.
type CallbackPayload struct {
	IdempotencyKey string  `json:"idempotency_key"`
	GatewayRef     string  `json:"gateway_ref"`
	Outcome        Outcome `json:"outcome"`
	AmountInCents  int64   `json:"amount_in_cents"`
	Currency       string  `json:"currency"`
	FailureReason  string  `json:"failure_reason,omitempty"`
}

// PaymentGateway is the outbound port. Implementations must pass the
// idempotency key through to the gateway unchanged so a retried charge never
// fires twice.
type PaymentGateway interface {
	Charge(ctx context.Context, amountInCents int64, currency, idempotencyKey string) (*ChargeResult, error)
	Refund(ctx context.Context, gatewayRef string) error
	// QueryStatus asks the gateway for the authoritative outcome of a charge,
	// used by the reconciliation sweep to bridge missed callbacks.
	QueryStatus(ctx context.Context, gatewayRef string) (Outcome, error)
	// VerifyCallback authenticates a raw callback body against its signature
	// and decodes it. Unverifiable callbacks are rejected before any lookup.
	VerifyCallback(body []byte, signature string) (*CallbackPayload, error)
}
