package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pactum/internal/application/payment/paymentgateway"
	"pactum/internal/application/payment/testutil"
	"pactum/internal/domain/payment"
	paymentvo "pactum/internal/domain/payment/valueobjects"
	"pactum/internal/shared/logger"
)

func TestReconcilePayments(t *testing.T) {
	log := logger.NewLogger()
	cmd := ReconcilePaymentsCommand{ProcessingTimeout: 30 * time.Minute}

	stuckRepo := func(stuck ...*payment.Payment) *testutil.MockPaymentRepository {
		return &testutil.MockPaymentRepository{
			GetStuckOpenFn: func(ctx context.Context, cutoff time.Time) ([]*payment.Payment, error) {
				return stuck, nil
			},
		}
	}

	t.Run("settles payments the gateway confirms", func(t *testing.T) {
		p := testPayment(t, paymentvo.PaymentStatusProcessing, "key-1")
		repo := stuckRepo(p)
		gw := &testutil.MockGateway{
			QueryStatusFn: func(ctx context.Context, gatewayRef string) (paymentgateway.Outcome, error) {
				return paymentgateway.OutcomeSuccess, nil
			},
		}
		uc := NewReconcilePaymentsUseCase(repo, gw, &testutil.MockNotifier{}, log)

		result, err := uc.Execute(context.Background(), cmd)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Checked)
		assert.Equal(t, 1, result.Settled)
		assert.Equal(t, 0, result.Failed)
		assert.Equal(t, paymentvo.PaymentStatusSettled, p.Status())
	})

	t.Run("fails payments the gateway reports failed", func(t *testing.T) {
		p := testPayment(t, paymentvo.PaymentStatusProcessing, "key-1")
		gw := &testutil.MockGateway{
			QueryStatusFn: func(ctx context.Context, gatewayRef string) (paymentgateway.Outcome, error) {
				return paymentgateway.OutcomeFailure, nil
			},
		}
		uc := NewReconcilePaymentsUseCase(stuckRepo(p), gw, &testutil.MockNotifier{}, log)

		result, err := uc.Execute(context.Background(), cmd)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Failed)
		assert.Equal(t, paymentvo.PaymentStatusFailed, p.Status())
	})

	t.Run("pending payments are left alone", func(t *testing.T) {
		p := testPayment(t, paymentvo.PaymentStatusProcessing, "key-1")
		repo := stuckRepo(p)
		uc := NewReconcilePaymentsUseCase(repo, &testutil.MockGateway{}, &testutil.MockNotifier{}, log)

		result, err := uc.Execute(context.Background(), cmd)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Checked)
		assert.Equal(t, 0, result.Settled)
		assert.Equal(t, 0, result.Failed)
		assert.Equal(t, paymentvo.PaymentStatusProcessing, p.Status())
		assert.Equal(t, 0, repo.UpdateCalls)
	})

	t.Run("re-issues the charge for a payment the gateway never saw", func(t *testing.T) {
		p := testPayment(t, paymentvo.PaymentStatusInitiated, "key-1")
		repo := stuckRepo(p)
		gw := &testutil.MockGateway{
			ChargeFn: func(ctx context.Context, amountInCents int64, currency, key string) (*paymentgateway.ChargeResult, error) {
				assert.Equal(t, "key-1", key, "the stored key resumes the original attempt")
				return &paymentgateway.ChargeResult{GatewayRef: "gw_ref_late", Outcome: paymentgateway.OutcomePending}, nil
			},
		}
		uc := NewReconcilePaymentsUseCase(repo, gw, &testutil.MockNotifier{}, log)

		result, err := uc.Execute(context.Background(), cmd)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Checked)
		assert.Equal(t, 1, gw.ChargeCalls)
		assert.Equal(t, paymentvo.PaymentStatusProcessing, p.Status())
		require.NotNil(t, p.GatewayRef())
		assert.Equal(t, "gw_ref_late", *p.GatewayRef())
		assert.Equal(t, 1, repo.UpdateCalls, "the new gateway reference is persisted")
	})

	t.Run("re-issued charge that settles synchronously is settled", func(t *testing.T) {
		p := testPayment(t, paymentvo.PaymentStatusInitiated, "key-1")
		gw := &testutil.MockGateway{
			ChargeFn: func(ctx context.Context, amountInCents int64, currency, key string) (*paymentgateway.ChargeResult, error) {
				return &paymentgateway.ChargeResult{GatewayRef: "gw_ref_late", Outcome: paymentgateway.OutcomeSuccess}, nil
			},
		}
		uc := NewReconcilePaymentsUseCase(stuckRepo(p), gw, &testutil.MockNotifier{}, log)

		result, err := uc.Execute(context.Background(), cmd)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Settled)
		assert.Equal(t, paymentvo.PaymentStatusSettled, p.Status())
	})

	t.Run("an unreachable gateway defers, never fails locally", func(t *testing.T) {
		p := testPayment(t, paymentvo.PaymentStatusProcessing, "key-1")
		gw := &testutil.MockGateway{
			QueryStatusFn: func(ctx context.Context, gatewayRef string) (paymentgateway.Outcome, error) {
				return "", errors.New("connection timed out")
			},
		}
		uc := NewReconcilePaymentsUseCase(stuckRepo(p), gw, &testutil.MockNotifier{}, log)

		result, err := uc.Execute(context.Background(), cmd)

		require.NoError(t, err, "a sweep error is never fatal")
		assert.Equal(t, 1, result.Checked)
		assert.Equal(t, paymentvo.PaymentStatusProcessing, p.Status())
	})

	t.Run("one bad payment does not stop the sweep", func(t *testing.T) {
		bad := testPayment(t, paymentvo.PaymentStatusProcessing, "key-bad")
		good := testPayment(t, paymentvo.PaymentStatusProcessing, "key-good")
		queries := 0
		gw := &testutil.MockGateway{
			QueryStatusFn: func(ctx context.Context, gatewayRef string) (paymentgateway.Outcome, error) {
				queries++
				if queries == 1 {
					// first query is the bad payment
					return "", errors.New("boom")
				}
				return paymentgateway.OutcomeSuccess, nil
			},
		}
		uc := NewReconcilePaymentsUseCase(stuckRepo(bad, good), gw, &testutil.MockNotifier{}, log)

		result, err := uc.Execute(context.Background(), cmd)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Checked)
		assert.Equal(t, 1, result.Settled)
		assert.Equal(t, paymentvo.PaymentStatusSettled, good.Status())
		assert.Equal(t, paymentvo.PaymentStatusProcessing, bad.Status())
	})
}
