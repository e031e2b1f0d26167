package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pactum/internal/application/contract/testutil"
	"pactum/internal/domain/entity"
	entityvo "pactum/internal/domain/entity/valueobjects"
	"pactum/internal/shared/authorization"
	apperrors "pactum/internal/shared/errors"
	"pactum/internal/shared/logger"
	"pactum/internal/shared/session"
)

func operatorSession() *session.Session {
	return &session.Session{ActorSID: "acc_operator1", Role: authorization.RoleOperator}
}

func registeredEntity(t *testing.T) *entity.Entity {
	t.Helper()
	return entity.Reconstruct(entity.ReconstructParams{
		ID:     1,
		SID:    "ent_test00000001",
		TaxID:  "12345678901",
		Name:   "Existing Entity",
		Kind:   entityvo.EntityKindIndividual,
		Status: entityvo.EntityStatusActive,
	})
}

func TestRegisterEntity(t *testing.T) {
	log := logger.NewLogger()
	cmd := RegisterEntityCommand{
		Session: operatorSession(),
		TaxID:   "12345678901",
		Name:    "New Entity",
		Kind:    "individual",
	}

	t.Run("registers a new entity", func(t *testing.T) {
		repo := &testutil.MockEntityRepository{}
		uc := NewRegisterEntityUseCase(repo, log)

		result, err := uc.Execute(context.Background(), cmd)

		require.NoError(t, err)
		assert.Equal(t, "12345678901", result.Entity.TaxID())
		assert.Equal(t, entityvo.EntityKindIndividual, result.Entity.Kind())
		assert.Equal(t, entityvo.EntityStatusActive, result.Entity.Status())
		assert.Equal(t, 1, repo.CreateCalls)
	})

	t.Run("duplicate tax identifier is a conflict", func(t *testing.T) {
		repo := &testutil.MockEntityRepository{
			GetByTaxIDFn: func(ctx context.Context, taxID string) (*entity.Entity, error) {
				return registeredEntity(t), nil
			},
		}
		uc := NewRegisterEntityUseCase(repo, log)

		_, err := uc.Execute(context.Background(), cmd)

		assert.True(t, apperrors.IsConflictError(err))
		assert.Equal(t, 0, repo.CreateCalls)
	})

	t.Run("registration race falls back on the unique constraint", func(t *testing.T) {
		repo := &testutil.MockEntityRepository{
			CreateFn: func(ctx context.Context, e *entity.Entity) error {
				return apperrors.NewConflictError("entity with this tax identifier already exists")
			},
		}
		uc := NewRegisterEntityUseCase(repo, log)

		_, err := uc.Execute(context.Background(), cmd)

		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("unknown kind is a validation error", func(t *testing.T) {
		uc := NewRegisterEntityUseCase(&testutil.MockEntityRepository{}, log)

		badKind := cmd
		badKind.Kind = "partnership"
		_, err := uc.Execute(context.Background(), badKind)

		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("entity-self sessions cannot register entities", func(t *testing.T) {
		uc := NewRegisterEntityUseCase(&testutil.MockEntityRepository{}, log)

		selfCmd := cmd
		selfCmd.Session = &session.Session{
			ActorSID: "acc_entity1",
			Role:     authorization.RoleEntitySelf,
			EntityID: 1,
		}
		_, err := uc.Execute(context.Background(), selfCmd)

		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
	})
}
