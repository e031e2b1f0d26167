package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pactum/internal/application/contract/testutil"
	"pactum/internal/domain/entity"
	apperrors "pactum/internal/shared/errors"
)

func TestFindEntity(t *testing.T) {
	t.Run("finds by sid", func(t *testing.T) {
		ent := registeredEntity(t)
		repo := &testutil.MockEntityRepository{
			GetBySIDFn: func(ctx context.Context, sid string) (*entity.Entity, error) {
				assert.Equal(t, "ent_test00000001", sid)
				return ent, nil
			},
		}
		uc := NewFindEntityUseCase(repo)

		result, err := uc.Execute(context.Background(), FindEntityCommand{
			Session:   operatorSession(),
			EntitySID: "ent_test00000001",
		})

		require.NoError(t, err)
		assert.Same(t, ent, result.Entity)
	})

	t.Run("finds by tax identifier", func(t *testing.T) {
		ent := registeredEntity(t)
		repo := &testutil.MockEntityRepository{
			GetByTaxIDFn: func(ctx context.Context, taxID string) (*entity.Entity, error) {
				assert.Equal(t, "12345678901", taxID)
				return ent, nil
			},
		}
		uc := NewFindEntityUseCase(repo)

		result, err := uc.Execute(context.Background(), FindEntityCommand{
			Session: operatorSession(),
			TaxID:   "12345678901",
		})

		require.NoError(t, err)
		assert.Same(t, ent, result.Entity)
	})

	t.Run("missing lookup key is a validation error", func(t *testing.T) {
		uc := NewFindEntityUseCase(&testutil.MockEntityRepository{})

		_, err := uc.Execute(context.Background(), FindEntityCommand{Session: operatorSession()})

		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("unknown entity is not found", func(t *testing.T) {
		uc := NewFindEntityUseCase(&testutil.MockEntityRepository{})

		_, err := uc.Execute(context.Background(), FindEntityCommand{
			Session:   operatorSession(),
			EntitySID: "ent_missing00001",
		})

		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("entity cannot look up another entity", func(t *testing.T) {
		repo := &testutil.MockEntityRepository{
			GetBySIDFn: func(ctx context.Context, sid string) (*entity.Entity, error) {
				return registeredEntity(t), nil
			},
		}
		uc := NewFindEntityUseCase(repo)

		_, err := uc.Execute(context.Background(), FindEntityCommand{
			Session:   selfSession(2),
			EntitySID: "ent_test00000001",
		})

		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
	})
}
