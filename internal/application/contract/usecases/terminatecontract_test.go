package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pactum/internal/application/contract/testutil"
	"pactum/internal/domain/contract"
	contractvo "pactum/internal/domain/contract/valueobjects"
	apperrors "pactum/internal/shared/errors"
	"pactum/internal/shared/logger"
)

func TestTerminateContract(t *testing.T) {
	log := logger.NewLogger()
	cmd := TerminateContractCommand{
		Session:     operatorSession(),
		ContractSID: "ctr_test00000001",
		Reason:      "non-payment",
	}

	contractRepo := func(status contractvo.ContractStatus) *testutil.MockContractRepository {
		return &testutil.MockContractRepository{
			GetBySIDFn: func(ctx context.Context, sid string) (*contract.Contract, error) {
				return testContract(t, status), nil
			},
		}
	}

	t.Run("terminates from any non-terminal status", func(t *testing.T) {
		for _, status := range []contractvo.ContractStatus{
			contractvo.ContractStatusDraft,
			contractvo.ContractStatusActive,
			contractvo.ContractStatusSuspended,
		} {
			repo := contractRepo(status)
			uc := NewTerminateContractUseCase(repo, log)

			result, err := uc.Execute(context.Background(), cmd)

			require.NoError(t, err, "status %s", status)
			assert.False(t, result.AlreadyTerminated)
			assert.Equal(t, contractvo.ContractStatusTerminated, result.Contract.Status())
			require.NotNil(t, result.Contract.TerminateReason())
			assert.Equal(t, "non-payment", *result.Contract.TerminateReason())
			assert.Equal(t, 1, repo.UpdateCalls)
		}
	})

	t.Run("terminating a terminated contract is a no-op", func(t *testing.T) {
		repo := contractRepo(contractvo.ContractStatusTerminated)
		uc := NewTerminateContractUseCase(repo, log)

		result, err := uc.Execute(context.Background(), cmd)

		require.NoError(t, err)
		assert.True(t, result.AlreadyTerminated)
		assert.Equal(t, 0, repo.UpdateCalls)
	})

	t.Run("losing a write race to a concurrent terminate reports already terminated", func(t *testing.T) {
		lookups := 0
		repo := &testutil.MockContractRepository{
			GetBySIDFn: func(ctx context.Context, sid string) (*contract.Contract, error) {
				lookups++
				if lookups == 1 {
					return testContract(t, contractvo.ContractStatusActive), nil
				}
				return testContract(t, contractvo.ContractStatusTerminated), nil
			},
			UpdateFn: func(ctx context.Context, ct *contract.Contract) error {
				return apperrors.NewConflictError("contract was modified concurrently")
			},
		}
		uc := NewTerminateContractUseCase(repo, log)

		result, err := uc.Execute(context.Background(), cmd)

		require.NoError(t, err)
		assert.True(t, result.AlreadyTerminated)
		assert.Equal(t, contractvo.ContractStatusTerminated, result.Contract.Status())
	})

	t.Run("unknown contract is not found", func(t *testing.T) {
		uc := NewTerminateContractUseCase(&testutil.MockContractRepository{}, log)

		_, err := uc.Execute(context.Background(), cmd)

		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("entity-self sessions are rejected", func(t *testing.T) {
		uc := NewTerminateContractUseCase(contractRepo(contractvo.ContractStatusActive), log)

		selfCmd := cmd
		selfCmd.Session = entitySession(1)
		_, err := uc.Execute(context.Background(), selfCmd)

		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
	})
}
