package usecases

import (
	"context"

	"pactum/internal/domain/payment"
)

// SettlementNotifier is notified after a payment reaches settled. Delivery is
// best effort and runs off the request path; a notification failure never
// rolls back the settlement.
type SettlementNotifier interface {
	NotifySettled(ctx context.Context, p *payment.Payment) error
}
