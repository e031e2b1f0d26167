package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contracttestutil "pactum/internal/application/contract/testutil"
	"pactum/internal/application/payment/paymentgateway"
	"pactum/internal/application/payment/testutil"
	"pactum/internal/domain/contract"
	contractvo "pactum/internal/domain/contract/valueobjects"
	"pactum/internal/domain/payment"
	paymentvo "pactum/internal/domain/payment/valueobjects"
	"pactum/internal/shared/authorization"
	apperrors "pactum/internal/shared/errors"
	"pactum/internal/shared/logger"
	"pactum/internal/shared/session"
)

func entitySession(entityID uint) *session.Session {
	return &session.Session{
		ActorSID: "acc_entity1",
		Role:     authorization.RoleEntitySelf,
		EntityID: entityID,
	}
}

func operatorSession() *session.Session {
	return &session.Session{ActorSID: "acc_operator1", Role: authorization.RoleOperator}
}

func testContract(t *testing.T, status contractvo.ContractStatus) *contract.Contract {
	t.Helper()
	return contract.Reconstruct(contract.ReconstructParams{
		ID:       1,
		SID:      "ctr_test00000001",
		EntityID: 1,
		PlanID:   1,
		Status:   status,
	})
}

func testPayment(t *testing.T, status paymentvo.PaymentStatus, key string) *payment.Payment {
	t.Helper()
	var gatewayRef *string
	if status != paymentvo.PaymentStatusInitiated {
		ref := "gw_ref_1"
		gatewayRef = &ref
	}
	return payment.Reconstruct(payment.ReconstructParams{
		ID:             1,
		SID:            "pay_test00000001",
		ContractID:     1,
		Amount:         paymentvo.NewMoney(9900, "BRL"),
		Status:         status,
		IdempotencyKey: key,
		GatewayRef:     gatewayRef,
	})
}

func TestInitiatePayment(t *testing.T) {
	log := logger.NewLogger()
	cmd := InitiatePaymentCommand{
		Session:        entitySession(1),
		ContractSID:    "ctr_test00000001",
		AmountInCents:  9900,
		Currency:       "BRL",
		IdempotencyKey: "ctr-1-2026-08",
	}

	contractRepo := func(status contractvo.ContractStatus) *contracttestutil.MockContractRepository {
		return &contracttestutil.MockContractRepository{
			GetBySIDFn: func(ctx context.Context, sid string) (*contract.Contract, error) {
				return testContract(t, status), nil
			},
		}
	}

	t.Run("creates payment and charges the gateway", func(t *testing.T) {
		paymentRepo := &testutil.MockPaymentRepository{}
		gw := &testutil.MockGateway{
			ChargeFn: func(ctx context.Context, amountInCents int64, currency, key string) (*paymentgateway.ChargeResult, error) {
				assert.Equal(t, int64(9900), amountInCents)
				assert.Equal(t, "BRL", currency)
				assert.Equal(t, "ctr-1-2026-08", key)
				return &paymentgateway.ChargeResult{GatewayRef: "gw_ref_1", Outcome: paymentgateway.OutcomePending}, nil
			},
		}
		uc := NewInitiatePaymentUseCase(paymentRepo, contractRepo(contractvo.ContractStatusActive), gw, log)

		result, err := uc.Execute(context.Background(), cmd)

		require.NoError(t, err)
		assert.False(t, result.Reused)
		assert.Equal(t, paymentvo.PaymentStatusProcessing, result.Payment.Status())
		require.NotNil(t, result.Payment.GatewayRef())
		assert.Equal(t, "gw_ref_1", *result.Payment.GatewayRef())
		assert.Equal(t, 1, paymentRepo.CreateCalls)
		assert.Equal(t, 1, gw.ChargeCalls)
	})

	t.Run("same key returns existing payment without a second charge", func(t *testing.T) {
		existing := testPayment(t, paymentvo.PaymentStatusProcessing, cmd.IdempotencyKey)
		paymentRepo := &testutil.MockPaymentRepository{
			GetByIdempotencyKeyFn: func(ctx context.Context, key string) (*payment.Payment, error) {
				return existing, nil
			},
		}
		gw := &testutil.MockGateway{}
		uc := NewInitiatePaymentUseCase(paymentRepo, contractRepo(contractvo.ContractStatusActive), gw, log)

		result, err := uc.Execute(context.Background(), cmd)

		require.NoError(t, err)
		assert.True(t, result.Reused)
		assert.Same(t, existing, result.Payment)
		assert.Equal(t, 0, paymentRepo.CreateCalls)
		assert.Equal(t, 0, gw.ChargeCalls)
	})

	t.Run("retry with the same key re-charges a payment the gateway never answered", func(t *testing.T) {
		stuck := testPayment(t, paymentvo.PaymentStatusInitiated, cmd.IdempotencyKey)
		require.Nil(t, stuck.GatewayRef())
		paymentRepo := &testutil.MockPaymentRepository{
			GetByIdempotencyKeyFn: func(ctx context.Context, key string) (*payment.Payment, error) {
				return stuck, nil
			},
		}
		gw := &testutil.MockGateway{
			ChargeFn: func(ctx context.Context, amountInCents int64, currency, key string) (*paymentgateway.ChargeResult, error) {
				assert.Equal(t, cmd.IdempotencyKey, key, "the stored key resumes the original charge")
				return &paymentgateway.ChargeResult{GatewayRef: "gw_ref_1", Outcome: paymentgateway.OutcomePending}, nil
			},
		}
		uc := NewInitiatePaymentUseCase(paymentRepo, contractRepo(contractvo.ContractStatusActive), gw, log)

		result, err := uc.Execute(context.Background(), cmd)

		require.NoError(t, err)
		assert.True(t, result.Reused)
		assert.Same(t, stuck, result.Payment)
		assert.Equal(t, 1, gw.ChargeCalls)
		assert.Equal(t, paymentvo.PaymentStatusProcessing, result.Payment.Status())
		require.NotNil(t, result.Payment.GatewayRef())
		assert.Equal(t, "gw_ref_1", *result.Payment.GatewayRef())
		assert.Equal(t, 0, paymentRepo.CreateCalls)
		assert.Equal(t, 1, paymentRepo.UpdateCalls)
	})

	t.Run("key bound to another contract is a conflict", func(t *testing.T) {
		other := payment.Reconstruct(payment.ReconstructParams{
			ID:             9,
			SID:            "pay_other0000001",
			ContractID:     99,
			Amount:         paymentvo.NewMoney(9900, "BRL"),
			Status:         paymentvo.PaymentStatusProcessing,
			IdempotencyKey: cmd.IdempotencyKey,
		})
		paymentRepo := &testutil.MockPaymentRepository{
			GetByIdempotencyKeyFn: func(ctx context.Context, key string) (*payment.Payment, error) {
				return other, nil
			},
		}
		uc := NewInitiatePaymentUseCase(paymentRepo, contractRepo(contractvo.ContractStatusActive), &testutil.MockGateway{}, log)

		_, err := uc.Execute(context.Background(), cmd)

		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("open payment on the contract is a conflict", func(t *testing.T) {
		open := testPayment(t, paymentvo.PaymentStatusProcessing, "another-key")
		paymentRepo := &testutil.MockPaymentRepository{
			GetOpenByContractIDFn: func(ctx context.Context, contractID uint) (*payment.Payment, error) {
				return open, nil
			},
		}
		gw := &testutil.MockGateway{}
		uc := NewInitiatePaymentUseCase(paymentRepo, contractRepo(contractvo.ContractStatusActive), gw, log)

		_, err := uc.Execute(context.Background(), cmd)

		assert.True(t, apperrors.IsConflictError(err))
		assert.Equal(t, 0, gw.ChargeCalls)
	})

	t.Run("terminated contract rejects initiation", func(t *testing.T) {
		uc := NewInitiatePaymentUseCase(&testutil.MockPaymentRepository{}, contractRepo(contractvo.ContractStatusTerminated), &testutil.MockGateway{}, log)

		_, err := uc.Execute(context.Background(), cmd)

		assert.True(t, apperrors.IsInvalidStateError(err))
	})

	t.Run("duplicate key race returns the winner", func(t *testing.T) {
		winner := testPayment(t, paymentvo.PaymentStatusProcessing, cmd.IdempotencyKey)
		lookups := 0
		paymentRepo := &testutil.MockPaymentRepository{
			GetByIdempotencyKeyFn: func(ctx context.Context, key string) (*payment.Payment, error) {
				lookups++
				if lookups == 1 {
					// first lookup raced ahead of the winner's commit
					return nil, nil
				}
				return winner, nil
			},
			CreateFn: func(ctx context.Context, p *payment.Payment) error {
				return apperrors.NewConflictError("payment with this idempotency key already exists")
			},
		}
		gw := &testutil.MockGateway{}
		uc := NewInitiatePaymentUseCase(paymentRepo, contractRepo(contractvo.ContractStatusActive), gw, log)

		result, err := uc.Execute(context.Background(), cmd)

		require.NoError(t, err)
		assert.True(t, result.Reused)
		assert.Same(t, winner, result.Payment)
		assert.Equal(t, 0, gw.ChargeCalls)
	})

	t.Run("gateway failure leaves payment initiated and reports unavailable", func(t *testing.T) {
		var created *payment.Payment
		paymentRepo := &testutil.MockPaymentRepository{
			CreateFn: func(ctx context.Context, p *payment.Payment) error {
				created = p
				return nil
			},
		}
		gw := &testutil.MockGateway{
			ChargeFn: func(ctx context.Context, amountInCents int64, currency, key string) (*paymentgateway.ChargeResult, error) {
				return nil, errors.New("connection timed out")
			},
		}
		uc := NewInitiatePaymentUseCase(paymentRepo, contractRepo(contractvo.ContractStatusActive), gw, log)

		_, err := uc.Execute(context.Background(), cmd)

		assert.True(t, apperrors.IsUnavailableError(err))
		require.NotNil(t, created)
		assert.Equal(t, paymentvo.PaymentStatusInitiated, created.Status())
		assert.Equal(t, 0, paymentRepo.UpdateCalls, "no transition is persisted without a gateway answer")
	})

	t.Run("synchronous decline marks the payment failed", func(t *testing.T) {
		paymentRepo := &testutil.MockPaymentRepository{}
		gw := &testutil.MockGateway{
			ChargeFn: func(ctx context.Context, amountInCents int64, currency, key string) (*paymentgateway.ChargeResult, error) {
				return &paymentgateway.ChargeResult{GatewayRef: "gw_ref_1", Outcome: paymentgateway.OutcomeFailure}, nil
			},
		}
		uc := NewInitiatePaymentUseCase(paymentRepo, contractRepo(contractvo.ContractStatusActive), gw, log)

		result, err := uc.Execute(context.Background(), cmd)

		require.NoError(t, err)
		assert.Equal(t, paymentvo.PaymentStatusFailed, result.Payment.Status())
	})

	t.Run("decline without a gateway reference still fails the payment", func(t *testing.T) {
		paymentRepo := &testutil.MockPaymentRepository{}
		gw := &testutil.MockGateway{
			ChargeFn: func(ctx context.Context, amountInCents int64, currency, key string) (*paymentgateway.ChargeResult, error) {
				return &paymentgateway.ChargeResult{Outcome: paymentgateway.OutcomeFailure}, nil
			},
		}
		uc := NewInitiatePaymentUseCase(paymentRepo, contractRepo(contractvo.ContractStatusActive), gw, log)

		result, err := uc.Execute(context.Background(), cmd)

		require.NoError(t, err)
		assert.Equal(t, paymentvo.PaymentStatusFailed, result.Payment.Status())
		require.NotNil(t, result.Payment.FailureReason())
		assert.Nil(t, result.Payment.GatewayRef())
		assert.Equal(t, 1, paymentRepo.UpdateCalls)
	})

	t.Run("missing idempotency key is a validation error", func(t *testing.T) {
		uc := NewInitiatePaymentUseCase(&testutil.MockPaymentRepository{}, contractRepo(contractvo.ContractStatusActive), &testutil.MockGateway{}, log)

		noKey := cmd
		noKey.IdempotencyKey = ""
		_, err := uc.Execute(context.Background(), noKey)

		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("entity cannot pay another entity's contract", func(t *testing.T) {
		uc := NewInitiatePaymentUseCase(&testutil.MockPaymentRepository{}, contractRepo(contractvo.ContractStatusActive), &testutil.MockGateway{}, log)

		foreign := cmd
		foreign.Session = entitySession(2)
		_, err := uc.Execute(context.Background(), foreign)

		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
	})
}
