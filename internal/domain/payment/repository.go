package payment

import (
	"context"
	"time"
)

type PaymentRepository interface {
	// Create persists a new payment. The storage layer enforces idempotency
	// key uniqueness; a duplicate-key error is the backstop against racing
	// initiations.
	Create(ctx context.Context, payment *Payment) error
	// Update persists state transitions with an optimistic version check and
	// reports a conflict when another writer got there first.
	Update(ctx context.Context, payment *Payment) error
	GetByID(ctx context.Context, paymentID uint) (*Payment, error)
	GetBySID(ctx context.Context, sid string) (*Payment, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*Payment, error)
	GetByContractID(ctx context.Context, contractID uint) ([]*Payment, error)
	// GetOpenByContractID returns the contract's single non-terminal payment,
	// or nil when there is none.
	GetOpenByContractID(ctx context.Context, contractID uint) (*Payment, error)
	GetLatestByContractID(ctx context.Context, contractID uint) (*Payment, error)
	// GetStuckOpen returns non-terminal payments untouched since before the
	// cutoff, for the reconciliation sweep. Covers both processing payments
	// awaiting a callback and initiated payments whose charge never reached
	// the gateway.
	GetStuckOpen(ctx context.Context, cutoff time.Time) ([]*Payment, error)
}
