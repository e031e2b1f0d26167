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

func TestAnnotateContract(t *testing.T) {
	log := logger.NewLogger()
	cmd := AnnotateContractCommand{
		Session:     operatorSession(),
		ContractSID: "ctr_test00000001",
		Note:        "customer disputes the March charge",
	}

	contractRepo := func(status contractvo.ContractStatus) *testutil.MockContractRepository {
		return &testutil.MockContractRepository{
			GetBySIDFn: func(ctx context.Context, sid string) (*contract.Contract, error) {
				return testContract(t, status), nil
			},
		}
	}

	t.Run("annotations are accepted in every status", func(t *testing.T) {
		for _, status := range []contractvo.ContractStatus{
			contractvo.ContractStatusDraft,
			contractvo.ContractStatusActive,
			contractvo.ContractStatusSuspended,
			contractvo.ContractStatusTerminated,
		} {
			repo := contractRepo(status)
			uc := NewAnnotateContractUseCase(repo, log)

			result, err := uc.Execute(context.Background(), cmd)

			require.NoError(t, err, "status %s", status)
			notes := result.Contract.Annotations()
			require.Len(t, notes, 1)
			assert.Equal(t, "acc_operator1", notes[0].AuthorSID)
			assert.Equal(t, cmd.Note, notes[0].Note)
			assert.Equal(t, 1, repo.UpdateCalls)
		}
	})

	t.Run("empty note is rejected", func(t *testing.T) {
		uc := NewAnnotateContractUseCase(contractRepo(contractvo.ContractStatusActive), log)

		noNote := cmd
		noNote.Note = ""
		_, err := uc.Execute(context.Background(), noNote)

		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("unknown contract is not found", func(t *testing.T) {
		uc := NewAnnotateContractUseCase(&testutil.MockContractRepository{}, log)

		_, err := uc.Execute(context.Background(), cmd)

		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("entity-self sessions are rejected", func(t *testing.T) {
		uc := NewAnnotateContractUseCase(contractRepo(contractvo.ContractStatusActive), log)

		selfCmd := cmd
		selfCmd.Session = entitySession(1)
		_, err := uc.Execute(context.Background(), selfCmd)

		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
	})
}
