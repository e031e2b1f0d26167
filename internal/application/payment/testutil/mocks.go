// Package testutil provides hand-rolled mocks for payment use case tests.
// Each method delegates to an optional function field; unset fields return
// zero values, which repositories treat as "not found".
package testutil

import (
	"context"
	"sync"
	"time"

	"pactum/internal/application/payment/paymentgateway"
	"pactum/internal/domain/payment"
)

type MockPaymentRepository struct {
	mu sync.Mutex

	CreateFn                func(ctx context.Context, p *payment.Payment) error
	UpdateFn                func(ctx context.Context, p *payment.Payment) error
	GetByIDFn               func(ctx context.Context, paymentID uint) (*payment.Payment, error)
	GetBySIDFn              func(ctx context.Context, sid string) (*payment.Payment, error)
	GetByIdempotencyKeyFn   func(ctx context.Context, key string) (*payment.Payment, error)
	GetByContractIDFn       func(ctx context.Context, contractID uint) ([]*payment.Payment, error)
	GetOpenByContractIDFn   func(ctx context.Context, contractID uint) (*payment.Payment, error)
	GetLatestByContractIDFn func(ctx context.Context, contractID uint) (*payment.Payment, error)
	GetStuckOpenFn          func(ctx context.Context, cutoff time.Time) ([]*payment.Payment, error)

	CreateCalls int
	UpdateCalls int
}

func (m *MockPaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	m.mu.Lock()
	m.CreateCalls++
	m.mu.Unlock()
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *MockPaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	m.mu.Lock()
	m.UpdateCalls++
	m.mu.Unlock()
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, p)
	}
	return nil
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, paymentID uint) (*payment.Payment, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, paymentID)
	}
	return nil, nil
}

func (m *MockPaymentRepository) GetBySID(ctx context.Context, sid string) (*payment.Payment, error) {
	if m.GetBySIDFn != nil {
		return m.GetBySIDFn(ctx, sid)
	}
	return nil, nil
}

func (m *MockPaymentRepository) GetByIdempotencyKey(ctx context.Context, key string) (*payment.Payment, error) {
	if m.GetByIdempotencyKeyFn != nil {
		return m.GetByIdempotencyKeyFn(ctx, key)
	}
	return nil, nil
}

func (m *MockPaymentRepository) GetByContractID(ctx context.Context, contractID uint) ([]*payment.Payment, error) {
	if m.GetByContractIDFn != nil {
		return m.GetByContractIDFn(ctx, contractID)
	}
	return nil, nil
}

func (m *MockPaymentRepository) GetOpenByContractID(ctx context.Context, contractID uint) (*payment.Payment, error) {
	if m.GetOpenByContractIDFn != nil {
		return m.GetOpenByContractIDFn(ctx, contractID)
	}
	return nil, nil
}

func (m *MockPaymentRepository) GetLatestByContractID(ctx context.Context, contractID uint) (*payment.Payment, error) {
	if m.GetLatestByContractIDFn != nil {
		return m.GetLatestByContractIDFn(ctx, contractID)
	}
	return nil, nil
}

func (m *MockPaymentRepository) GetStuckOpen(ctx context.Context, cutoff time.Time) ([]*payment.Payment, error) {
	if m.GetStuckOpenFn != nil {
		return m.GetStuckOpenFn(ctx, cutoff)
	}
	return nil, nil
}

type MockGateway struct {
	mu sync.Mutex

	ChargeFn         func(ctx context.Context, amountInCents int64, currency, idempotencyKey string) (*paymentgateway.ChargeResult, error)
	RefundFn         func(ctx context.Context, gatewayRef string) error
	QueryStatusFn    func(ctx context.Context, gatewayRef string) (paymentgateway.Outcome, error)
	VerifyCallbackFn func(body []byte, signature string) (*paymentgateway.CallbackPayload, error)

	ChargeCalls int
	RefundCalls int
}

func (m *MockGateway) Charge(ctx context.Context, amountInCents int64, currency, idempotencyKey string) (*paymentgateway.ChargeResult, error) {
	m.mu.Lock()
	m.ChargeCalls++
	m.mu.Unlock()
	if m.ChargeFn != nil {
		return m.ChargeFn(ctx, amountInCents, currency, idempotencyKey)
	}
	return &paymentgateway.ChargeResult{GatewayRef: "gw_ref_mock", Outcome: paymentgateway.OutcomePending}, nil
}

func (m *MockGateway) Refund(ctx context.Context, gatewayRef string) error {
	m.mu.Lock()
	m.RefundCalls++
	m.mu.Unlock()
	if m.RefundFn != nil {
		return m.RefundFn(ctx, gatewayRef)
	}
	return nil
}

func (m *MockGateway) QueryStatus(ctx context.Context, gatewayRef string) (paymentgateway.Outcome, error) {
	if m.QueryStatusFn != nil {
		return m.QueryStatusFn(ctx, gatewayRef)
	}
	return paymentgateway.OutcomePending, nil
}

func (m *MockGateway) VerifyCallback(body []byte, signature string) (*paymentgateway.CallbackPayload, error) {
	if m.VerifyCallbackFn != nil {
		return m.VerifyCallbackFn(body, signature)
	}
	return nil, nil
}

type MockNotifier struct {
	mu sync.Mutex

	NotifySettledFn func(ctx context.Context, p *payment.Payment) error

	Notified []*payment.Payment
}

func (m *MockNotifier) NotifySettled(ctx context.Context, p *payment.Payment) error {
	m.mu.Lock()
	m.Notified = append(m.Notified, p)
	m.mu.Unlock()
	if m.NotifySettledFn != nil {
		return m.NotifySettledFn(ctx, p)
	}
	return nil
}

// NotifiedCount is safe to read while the use case's notification goroutine
// may still be running.
func (m *MockNotifier) NotifiedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Notified)
}
