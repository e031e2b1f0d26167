package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "pactum/internal/domain/payment/valueobjects"
)

func newInitiatedPayment(t *testing.T) *Payment {
	t.Helper()
	p, err := NewPayment(1, vo.NewMoney(9900, "BRL"), "ctr-1-2026-08")
	require.NoError(t, err)
	return p
}

func newProcessingPayment(t *testing.T) *Payment {
	t.Helper()
	p := newInitiatedPayment(t)
	require.NoError(t, p.MarkProcessing("gw_ref_1"))
	return p
}

func newSettledPayment(t *testing.T) *Payment {
	t.Helper()
	p := newProcessingPayment(t)
	require.NoError(t, p.MarkSettled())
	return p
}

func TestNewPayment(t *testing.T) {
	t.Run("starts initiated", func(t *testing.T) {
		p := newInitiatedPayment(t)

		assert.Equal(t, vo.PaymentStatusInitiated, p.Status())
		assert.Equal(t, int64(9900), p.Amount().AmountInCents())
		assert.Equal(t, "BRL", p.Amount().Currency())
		assert.Equal(t, "ctr-1-2026-08", p.IdempotencyKey())
		assert.Nil(t, p.GatewayRef())
	})

	t.Run("requires contract", func(t *testing.T) {
		_, err := NewPayment(0, vo.NewMoney(100, "BRL"), "key")
		assert.Error(t, err)
	})

	t.Run("requires positive amount", func(t *testing.T) {
		_, err := NewPayment(1, vo.NewMoney(0, "BRL"), "key")
		assert.Error(t, err)

		_, err = NewPayment(1, vo.NewMoney(-100, "BRL"), "key")
		assert.Error(t, err)
	})

	t.Run("requires idempotency key", func(t *testing.T) {
		_, err := NewPayment(1, vo.NewMoney(100, "BRL"), "")
		assert.Error(t, err)
	})
}

func TestMarkProcessing(t *testing.T) {
	t.Run("records gateway reference", func(t *testing.T) {
		p := newInitiatedPayment(t)

		err := p.MarkProcessing("gw_ref_1")

		require.NoError(t, err)
		assert.Equal(t, vo.PaymentStatusProcessing, p.Status())
		require.NotNil(t, p.GatewayRef())
		assert.Equal(t, "gw_ref_1", *p.GatewayRef())
	})

	t.Run("requires reference", func(t *testing.T) {
		p := newInitiatedPayment(t)
		assert.Error(t, p.MarkProcessing(""))
	})

	t.Run("rejects non-initiated states", func(t *testing.T) {
		p := newProcessingPayment(t)
		assert.Error(t, p.MarkProcessing("gw_ref_2"))

		p = newSettledPayment(t)
		assert.Error(t, p.MarkProcessing("gw_ref_2"))
	})
}

func TestMarkSettled(t *testing.T) {
	t.Run("from processing", func(t *testing.T) {
		p := newProcessingPayment(t)

		require.NoError(t, p.MarkSettled())
		assert.Equal(t, vo.PaymentStatusSettled, p.Status())
		assert.NotNil(t, p.SettledAt())
	})

	t.Run("from initiated", func(t *testing.T) {
		// a callback may outrun the charge response; settling straight from
		// initiated has to work
		p := newInitiatedPayment(t)
		require.NoError(t, p.MarkSettled())
		assert.Equal(t, vo.PaymentStatusSettled, p.Status())
	})

	t.Run("idempotent on settled", func(t *testing.T) {
		p := newSettledPayment(t)
		settledAt := *p.SettledAt()
		version := p.Version()

		require.NoError(t, p.MarkSettled())
		assert.Equal(t, settledAt, *p.SettledAt())
		assert.Equal(t, version, p.Version())
	})

	t.Run("rejects failed and refunded", func(t *testing.T) {
		p := newProcessingPayment(t)
		require.NoError(t, p.MarkFailed("declined"))
		assert.Error(t, p.MarkSettled())

		p = newSettledPayment(t)
		require.NoError(t, p.MarkRefunded())
		assert.Error(t, p.MarkSettled())
	})
}

func TestMarkFailed(t *testing.T) {
	t.Run("records reason", func(t *testing.T) {
		p := newProcessingPayment(t)

		require.NoError(t, p.MarkFailed("declined by gateway"))
		assert.Equal(t, vo.PaymentStatusFailed, p.Status())
		require.NotNil(t, p.FailureReason())
		assert.Equal(t, "declined by gateway", *p.FailureReason())
	})

	t.Run("idempotent on failed", func(t *testing.T) {
		p := newProcessingPayment(t)
		require.NoError(t, p.MarkFailed("first"))
		version := p.Version()

		require.NoError(t, p.MarkFailed("second"))
		assert.Equal(t, "first", *p.FailureReason())
		assert.Equal(t, version, p.Version())
	})

	t.Run("rejects settled", func(t *testing.T) {
		p := newSettledPayment(t)
		assert.Error(t, p.MarkFailed("too late"))
		assert.Equal(t, vo.PaymentStatusSettled, p.Status())
	})
}

func TestMarkRefunded(t *testing.T) {
	t.Run("from settled only", func(t *testing.T) {
		p := newSettledPayment(t)

		require.NoError(t, p.MarkRefunded())
		assert.Equal(t, vo.PaymentStatusRefunded, p.Status())
		assert.NotNil(t, p.RefundedAt())
	})

	t.Run("rejects open and failed states", func(t *testing.T) {
		assert.Error(t, newInitiatedPayment(t).MarkRefunded())
		assert.Error(t, newProcessingPayment(t).MarkRefunded())

		p := newProcessingPayment(t)
		require.NoError(t, p.MarkFailed("declined"))
		assert.Error(t, p.MarkRefunded())
	})

	t.Run("rejects double refund", func(t *testing.T) {
		p := newSettledPayment(t)
		require.NoError(t, p.MarkRefunded())
		assert.Error(t, p.MarkRefunded())
	})
}

func TestValidateCallbackAmount(t *testing.T) {
	p := newProcessingPayment(t)

	assert.NoError(t, p.ValidateCallbackAmount(9900, "BRL"))
	assert.Error(t, p.ValidateCallbackAmount(9901, "BRL"))
	assert.Error(t, p.ValidateCallbackAmount(9900, "USD"))
}

func TestPaymentStatusPredicates(t *testing.T) {
	assert.True(t, vo.PaymentStatusInitiated.IsOpen())
	assert.True(t, vo.PaymentStatusProcessing.IsOpen())
	assert.False(t, vo.PaymentStatusSettled.IsOpen())

	assert.True(t, vo.PaymentStatusSettled.IsTerminal())
	assert.True(t, vo.PaymentStatusFailed.IsTerminal())
	assert.True(t, vo.PaymentStatusRefunded.IsTerminal())
	assert.False(t, vo.PaymentStatusProcessing.IsTerminal())
}
