package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contracttestutil "pactum/internal/application/contract/testutil"
	paymenttestutil "pactum/internal/application/payment/testutil"
	"pactum/internal/domain/contract"
	contractvo "pactum/internal/domain/contract/valueobjects"
	"pactum/internal/domain/entity"
	entityvo "pactum/internal/domain/entity/valueobjects"
	"pactum/internal/domain/payment"
	paymentvo "pactum/internal/domain/payment/valueobjects"
	"pactum/internal/domain/plan"
	planvo "pactum/internal/domain/plan/valueobjects"
	"pactum/internal/shared/authorization"
	apperrors "pactum/internal/shared/errors"
	"pactum/internal/shared/session"
)

func adminSession() *session.Session {
	return &session.Session{ActorSID: "acc_admin1", Role: authorization.RoleAdmin}
}

func billedEntity(t *testing.T) *entity.Entity {
	t.Helper()
	return entity.Reconstruct(entity.ReconstructParams{
		ID:     1,
		SID:    "ent_test00000001",
		TaxID:  "12345678901",
		Name:   "Test Entity",
		Kind:   entityvo.EntityKindIndividual,
		Status: entityvo.EntityStatusActive,
	})
}

func billedContract(t *testing.T, id uint, status contractvo.ContractStatus) *contract.Contract {
	t.Helper()
	return contract.Reconstruct(contract.ReconstructParams{
		ID:       id,
		SID:      "ctr_test0000000" + string(rune('0'+id)),
		EntityID: 1,
		PlanID:   1,
		Status:   status,
	})
}

func billedPayment(t *testing.T, id, contractID uint, createdAt time.Time) *payment.Payment {
	t.Helper()
	return payment.Reconstruct(payment.ReconstructParams{
		ID:             id,
		SID:            "pay_test0000000" + string(rune('0'+id)),
		ContractID:     contractID,
		Amount:         paymentvo.NewMoney(9900, "BRL"),
		Status:         paymentvo.PaymentStatusSettled,
		IdempotencyKey: "key-" + string(rune('0'+id)),
		CreatedAt:      createdAt,
	})
}

func TestGetBillingStatus(t *testing.T) {
	cmd := GetBillingStatusCommand{Session: adminSession(), TaxID: "12345678901"}

	entityRepo := func() *contracttestutil.MockEntityRepository {
		return &contracttestutil.MockEntityRepository{
			GetByTaxIDFn: func(ctx context.Context, taxID string) (*entity.Entity, error) {
				return billedEntity(t), nil
			},
		}
	}
	planRepo := &contracttestutil.MockPlanRepository{
		GetByIDFn: func(ctx context.Context, planID uint) (*plan.Plan, error) {
			return plan.Reconstruct(plan.ReconstructParams{
				ID: planID, SID: "pln_test00000001", Name: "Basic",
				PriceInCents: 9900, Currency: "BRL",
				Cycle: planvo.BillingCycleMonthly, Active: true, Revision: 1,
			}), nil
		},
	}

	t.Run("composes contracts with plans and latest payments", func(t *testing.T) {
		contracts := []*contract.Contract{
			billedContract(t, 1, contractvo.ContractStatusTerminated),
			billedContract(t, 2, contractvo.ContractStatusActive),
		}
		contractRepo := &contracttestutil.MockContractRepository{
			GetByEntityIDFn: func(ctx context.Context, entityID uint) ([]*contract.Contract, error) {
				return contracts, nil
			},
		}
		older := billedPayment(t, 1, 1, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))
		newer := billedPayment(t, 2, 2, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
		paymentRepo := &paymenttestutil.MockPaymentRepository{
			GetLatestByContractIDFn: func(ctx context.Context, contractID uint) (*payment.Payment, error) {
				if contractID == 1 {
					return older, nil
				}
				return newer, nil
			},
		}
		uc := NewGetBillingStatusUseCase(entityRepo(), contractRepo, planRepo, paymentRepo)

		result, err := uc.Execute(context.Background(), cmd)

		require.NoError(t, err)
		assert.Equal(t, "active", result.OverallStatus)
		require.Len(t, result.Contracts, 2)
		assert.Equal(t, "Basic", result.Contracts[0].Plan.Name())
		assert.Same(t, older, result.Contracts[0].LatestPayment)
		assert.Same(t, newer, result.LatestPayment, "entity-wide latest payment is the newest across contracts")
	})

	t.Run("suspended outranks draft and terminated", func(t *testing.T) {
		contractRepo := &contracttestutil.MockContractRepository{
			GetByEntityIDFn: func(ctx context.Context, entityID uint) ([]*contract.Contract, error) {
				return []*contract.Contract{
					billedContract(t, 1, contractvo.ContractStatusDraft),
					billedContract(t, 2, contractvo.ContractStatusSuspended),
					billedContract(t, 3, contractvo.ContractStatusTerminated),
				}, nil
			},
		}
		uc := NewGetBillingStatusUseCase(entityRepo(), contractRepo, planRepo, &paymenttestutil.MockPaymentRepository{})

		result, err := uc.Execute(context.Background(), cmd)

		require.NoError(t, err)
		assert.Equal(t, "suspended", result.OverallStatus)
		assert.Nil(t, result.LatestPayment)
	})

	t.Run("no contracts reports none", func(t *testing.T) {
		uc := NewGetBillingStatusUseCase(entityRepo(), &contracttestutil.MockContractRepository{}, planRepo, &paymenttestutil.MockPaymentRepository{})

		result, err := uc.Execute(context.Background(), cmd)

		require.NoError(t, err)
		assert.Equal(t, "none", result.OverallStatus)
		assert.Empty(t, result.Contracts)
	})

	t.Run("unknown tax identifier is not found", func(t *testing.T) {
		uc := NewGetBillingStatusUseCase(&contracttestutil.MockEntityRepository{}, &contracttestutil.MockContractRepository{}, planRepo, &paymenttestutil.MockPaymentRepository{})

		_, err := uc.Execute(context.Background(), cmd)

		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("missing tax identifier is a validation error", func(t *testing.T) {
		uc := NewGetBillingStatusUseCase(entityRepo(), &contracttestutil.MockContractRepository{}, planRepo, &paymenttestutil.MockPaymentRepository{})

		noTaxID := cmd
		noTaxID.TaxID = ""
		_, err := uc.Execute(context.Background(), noTaxID)

		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("operators are not admins here", func(t *testing.T) {
		uc := NewGetBillingStatusUseCase(entityRepo(), &contracttestutil.MockContractRepository{}, planRepo, &paymenttestutil.MockPaymentRepository{})

		opCmd := cmd
		opCmd.Session = &session.Session{ActorSID: "acc_operator1", Role: authorization.RoleOperator}
		_, err := uc.Execute(context.Background(), opCmd)

		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
	})
}
