package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pactum/internal/application/contract/testutil"
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

func testEntity(t *testing.T) *entity.Entity {
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

func testPlan(t *testing.T, active bool) *plan.Plan {
	t.Helper()
	return plan.Reconstruct(plan.ReconstructParams{
		ID:           1,
		SID:          "pln_test00000001",
		Name:         "Basic",
		PriceInCents: 9900,
		Currency:     "BRL",
		Cycle:        planvo.BillingCycleMonthly,
		Active:       active,
		Revision:     1,
	})
}

func testContract(t *testing.T, status contractvo.ContractStatus) *contract.Contract {
	t.Helper()
	var suspendReason *string
	if status == contractvo.ContractStatusSuspended {
		r := "overdue"
		suspendReason = &r
	}
	return contract.Reconstruct(contract.ReconstructParams{
		ID:            1,
		SID:           "ctr_test00000001",
		EntityID:      1,
		PlanID:        1,
		Status:        status,
		SuspendReason: suspendReason,
	})
}

func testSettledPayment(t *testing.T, contractID uint) *payment.Payment {
	t.Helper()
	ref := "gw_ref_1"
	return payment.Reconstruct(payment.ReconstructParams{
		ID:             1,
		SID:            "pay_test00000001",
		ContractID:     contractID,
		Amount:         paymentvo.NewMoney(9900, "BRL"),
		Status:         paymentvo.PaymentStatusSettled,
		IdempotencyKey: "ctr-1-2026-08",
		GatewayRef:     &ref,
	})
}

func TestCreateContract(t *testing.T) {
	log := logger.NewLogger()
	cmd := CreateContractCommand{
		Session:   entitySession(1),
		EntitySID: "ent_test00000001",
		PlanSID:   "pln_test00000001",
	}

	entityRepo := func() *testutil.MockEntityRepository {
		return &testutil.MockEntityRepository{
			GetBySIDFn: func(ctx context.Context, sid string) (*entity.Entity, error) {
				return testEntity(t), nil
			},
		}
	}
	planRepo := func(active bool) *testutil.MockPlanRepository {
		return &testutil.MockPlanRepository{
			GetBySIDFn: func(ctx context.Context, sid string) (*plan.Plan, error) {
				return testPlan(t, active), nil
			},
		}
	}

	t.Run("creates a draft contract", func(t *testing.T) {
		contractRepo := &testutil.MockContractRepository{}
		uc := NewCreateContractUseCase(contractRepo, entityRepo(), planRepo(true), log)

		result, err := uc.Execute(context.Background(), cmd)

		require.NoError(t, err)
		assert.Equal(t, contractvo.ContractStatusDraft, result.Contract.Status())
		assert.Equal(t, uint(1), result.Contract.EntityID())
		assert.Equal(t, uint(1), result.Contract.PlanID())
		assert.Equal(t, 1, contractRepo.CreateCalls)
	})

	t.Run("open contract on the same plan is a conflict", func(t *testing.T) {
		contractRepo := &testutil.MockContractRepository{
			GetOpenByEntityAndPlanFn: func(ctx context.Context, entityID, planID uint) (*contract.Contract, error) {
				return testContract(t, contractvo.ContractStatusActive), nil
			},
		}
		uc := NewCreateContractUseCase(contractRepo, entityRepo(), planRepo(true), log)

		_, err := uc.Execute(context.Background(), cmd)

		assert.True(t, apperrors.IsConflictError(err))
		assert.Equal(t, 0, contractRepo.CreateCalls)
	})

	t.Run("retired plan is not contractable", func(t *testing.T) {
		uc := NewCreateContractUseCase(&testutil.MockContractRepository{}, entityRepo(), planRepo(false), log)

		_, err := uc.Execute(context.Background(), cmd)

		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("unknown entity is not found", func(t *testing.T) {
		uc := NewCreateContractUseCase(&testutil.MockContractRepository{}, &testutil.MockEntityRepository{}, planRepo(true), log)

		_, err := uc.Execute(context.Background(), cmd)

		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("entity cannot contract on another entity's behalf", func(t *testing.T) {
		uc := NewCreateContractUseCase(&testutil.MockContractRepository{}, entityRepo(), planRepo(true), log)

		foreign := cmd
		foreign.Session = entitySession(2)
		_, err := uc.Execute(context.Background(), foreign)

		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
	})

	t.Run("operators can create on behalf of any entity", func(t *testing.T) {
		contractRepo := &testutil.MockContractRepository{}
		uc := NewCreateContractUseCase(contractRepo, entityRepo(), planRepo(true), log)

		opCmd := cmd
		opCmd.Session = operatorSession()
		_, err := uc.Execute(context.Background(), opCmd)

		require.NoError(t, err)
		assert.Equal(t, 1, contractRepo.CreateCalls)
	})
}
