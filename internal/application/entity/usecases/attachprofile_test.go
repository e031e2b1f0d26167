package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pactum/internal/application/contract/testutil"
	"pactum/internal/domain/entity"
	"pactum/internal/shared/authorization"
	apperrors "pactum/internal/shared/errors"
	"pactum/internal/shared/logger"
	"pactum/internal/shared/session"
)

func selfSession(entityID uint) *session.Session {
	return &session.Session{
		ActorSID: "acc_entity1",
		Role:     authorization.RoleEntitySelf,
		EntityID: entityID,
	}
}

func TestAttachProfile(t *testing.T) {
	log := logger.NewLogger()
	cmd := AttachProfileCommand{
		Session:   selfSession(1),
		EntitySID: "ent_test00000001",
		Profile: entity.Profile{
			Address:      "Av. Paulista 1000",
			ContactEmail: "billing@example.com",
			ContactPhone: "+55 11 99999-0000",
			BankName:     "Banco Teste",
			BankAccount:  "0001-12345-6",
		},
	}

	repoWith := func(ent *entity.Entity) *testutil.MockEntityRepository {
		return &testutil.MockEntityRepository{
			GetBySIDFn: func(ctx context.Context, sid string) (*entity.Entity, error) {
				return ent, nil
			},
		}
	}

	t.Run("entity attaches its own profile", func(t *testing.T) {
		ent := registeredEntity(t)
		repo := repoWith(ent)
		uc := NewAttachProfileUseCase(repo, log)

		result, err := uc.Execute(context.Background(), cmd)

		require.NoError(t, err)
		require.NotNil(t, result.Entity.Profile())
		assert.Equal(t, "Av. Paulista 1000", result.Entity.Profile().Address)
		assert.Equal(t, "billing@example.com", result.Entity.Profile().ContactEmail)
		assert.Equal(t, 1, repo.UpdateCalls)
	})

	t.Run("a second attach replaces the profile", func(t *testing.T) {
		ent := registeredEntity(t)
		repo := repoWith(ent)
		uc := NewAttachProfileUseCase(repo, log)

		_, err := uc.Execute(context.Background(), cmd)
		require.NoError(t, err)

		moved := cmd
		moved.Profile.Address = "Rua Nova 42"
		result, err := uc.Execute(context.Background(), moved)

		require.NoError(t, err)
		assert.Equal(t, "Rua Nova 42", result.Entity.Profile().Address)
		assert.Equal(t, "billing@example.com", result.Entity.Profile().ContactEmail)
		assert.Equal(t, 2, repo.UpdateCalls)
	})

	t.Run("operators may attach on behalf of an entity", func(t *testing.T) {
		ent := registeredEntity(t)
		uc := NewAttachProfileUseCase(repoWith(ent), log)

		staffCmd := cmd
		staffCmd.Session = operatorSession()
		_, err := uc.Execute(context.Background(), staffCmd)

		require.NoError(t, err)
		assert.NotNil(t, ent.Profile())
	})

	t.Run("invalid contact email is a validation error", func(t *testing.T) {
		repo := repoWith(registeredEntity(t))
		uc := NewAttachProfileUseCase(repo, log)

		badEmail := cmd
		badEmail.Profile.ContactEmail = "not-an-email"
		_, err := uc.Execute(context.Background(), badEmail)

		assert.True(t, apperrors.IsValidationError(err))
		assert.Equal(t, 0, repo.UpdateCalls)
	})

	t.Run("unknown entity is not found", func(t *testing.T) {
		uc := NewAttachProfileUseCase(&testutil.MockEntityRepository{}, log)

		_, err := uc.Execute(context.Background(), cmd)

		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("entity cannot attach another entity's profile", func(t *testing.T) {
		repo := repoWith(registeredEntity(t))
		uc := NewAttachProfileUseCase(repo, log)

		foreign := cmd
		foreign.Session = selfSession(2)
		_, err := uc.Execute(context.Background(), foreign)

		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
		assert.Equal(t, 0, repo.UpdateCalls)
	})
}
