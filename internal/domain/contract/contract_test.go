package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "pactum/internal/domain/contract/valueobjects"
)

func newDraftContract(t *testing.T) *Contract {
	t.Helper()
	ct, err := NewContract(1, 1)
	require.NoError(t, err)
	require.NotNil(t, ct)
	return ct
}

func newActiveContract(t *testing.T) *Contract {
	t.Helper()
	ct := newDraftContract(t)
	require.NoError(t, ct.Activate(10))
	return ct
}

func TestNewContract(t *testing.T) {
	t.Run("starts in draft", func(t *testing.T) {
		ct := newDraftContract(t)

		assert.Equal(t, vo.ContractStatusDraft, ct.Status())
		assert.Equal(t, uint(1), ct.EntityID())
		assert.Equal(t, uint(1), ct.PlanID())
		assert.Nil(t, ct.CurrentPaymentID())
		assert.NotEmpty(t, ct.SID())
	})

	t.Run("requires entity", func(t *testing.T) {
		_, err := NewContract(0, 1)
		assert.Error(t, err)
	})

	t.Run("requires plan", func(t *testing.T) {
		_, err := NewContract(1, 0)
		assert.Error(t, err)
	})
}

func TestContractActivate(t *testing.T) {
	t.Run("draft to active", func(t *testing.T) {
		ct := newDraftContract(t)

		err := ct.Activate(10)

		require.NoError(t, err)
		assert.Equal(t, vo.ContractStatusActive, ct.Status())
		require.NotNil(t, ct.CurrentPaymentID())
		assert.Equal(t, uint(10), *ct.CurrentPaymentID())
		assert.NotNil(t, ct.ActivatedAt())
	})

	t.Run("requires payment reference", func(t *testing.T) {
		ct := newDraftContract(t)

		err := ct.Activate(0)

		assert.Error(t, err)
		assert.Equal(t, vo.ContractStatusDraft, ct.Status())
	})

	t.Run("rejects non-draft states", func(t *testing.T) {
		ct := newActiveContract(t)
		assert.Error(t, ct.Activate(11))

		require.NoError(t, ct.Suspend("unpaid"))
		assert.Error(t, ct.Activate(11))

		require.NoError(t, ct.Terminate("done"))
		assert.Error(t, ct.Activate(11))
	})
}

func TestContractSuspend(t *testing.T) {
	t.Run("active to suspended", func(t *testing.T) {
		ct := newActiveContract(t)

		err := ct.Suspend("payment overdue")

		require.NoError(t, err)
		assert.Equal(t, vo.ContractStatusSuspended, ct.Status())
		require.NotNil(t, ct.SuspendReason())
		assert.Equal(t, "payment overdue", *ct.SuspendReason())
		assert.NotNil(t, ct.SuspendedAt())
	})

	t.Run("rejects draft", func(t *testing.T) {
		ct := newDraftContract(t)
		assert.Error(t, ct.Suspend("reason"))
	})

	t.Run("rejects suspended", func(t *testing.T) {
		ct := newActiveContract(t)
		require.NoError(t, ct.Suspend("first"))
		assert.Error(t, ct.Suspend("second"))
	})
}

func TestContractReinstate(t *testing.T) {
	t.Run("suspended to active clears suspension", func(t *testing.T) {
		ct := newActiveContract(t)
		require.NoError(t, ct.Suspend("unpaid"))

		err := ct.Reinstate(20)

		require.NoError(t, err)
		assert.Equal(t, vo.ContractStatusActive, ct.Status())
		assert.Nil(t, ct.SuspendReason())
		assert.Nil(t, ct.SuspendedAt())
		require.NotNil(t, ct.CurrentPaymentID())
		assert.Equal(t, uint(20), *ct.CurrentPaymentID())
	})

	t.Run("rejects active", func(t *testing.T) {
		ct := newActiveContract(t)
		assert.Error(t, ct.Reinstate(20))
	})

	t.Run("rejects terminated", func(t *testing.T) {
		ct := newActiveContract(t)
		require.NoError(t, ct.Terminate("done"))
		assert.Error(t, ct.Reinstate(20))
	})
}

func TestContractTerminate(t *testing.T) {
	t.Run("legal from draft", func(t *testing.T) {
		ct := newDraftContract(t)

		require.NoError(t, ct.Terminate("never signed"))
		assert.Equal(t, vo.ContractStatusTerminated, ct.Status())
		require.NotNil(t, ct.TerminateReason())
		assert.Equal(t, "never signed", *ct.TerminateReason())
		assert.NotNil(t, ct.TerminatedAt())
	})

	t.Run("legal from active", func(t *testing.T) {
		ct := newActiveContract(t)
		require.NoError(t, ct.Terminate("breach"))
		assert.Equal(t, vo.ContractStatusTerminated, ct.Status())
	})

	t.Run("legal from suspended", func(t *testing.T) {
		ct := newActiveContract(t)
		require.NoError(t, ct.Suspend("unpaid"))
		require.NoError(t, ct.Terminate("gave up"))
		assert.Equal(t, vo.ContractStatusTerminated, ct.Status())
	})

	t.Run("idempotent on terminated", func(t *testing.T) {
		ct := newActiveContract(t)
		require.NoError(t, ct.Terminate("first"))
		firstAt := *ct.TerminatedAt()
		versionAfterFirst := ct.Version()

		err := ct.Terminate("second")

		require.NoError(t, err)
		assert.Equal(t, "first", *ct.TerminateReason())
		assert.Equal(t, firstAt, *ct.TerminatedAt())
		assert.Equal(t, versionAfterFirst, ct.Version())
	})
}

func TestContractAnnotate(t *testing.T) {
	t.Run("appends note", func(t *testing.T) {
		ct := newDraftContract(t)

		require.NoError(t, ct.Annotate("acc_admin1", "called the customer"))
		require.NoError(t, ct.Annotate("acc_admin2", "second call"))

		notes := ct.Annotations()
		require.Len(t, notes, 2)
		assert.Equal(t, "acc_admin1", notes[0].AuthorSID)
		assert.Equal(t, "called the customer", notes[0].Note)
		assert.False(t, notes[0].CreatedAt.IsZero())
	})

	t.Run("accepted on terminated contract", func(t *testing.T) {
		ct := newActiveContract(t)
		require.NoError(t, ct.Terminate("done"))

		err := ct.Annotate("acc_admin1", "post-mortem note")

		require.NoError(t, err)
		assert.Len(t, ct.Annotations(), 1)
	})

	t.Run("requires author and note", func(t *testing.T) {
		ct := newDraftContract(t)
		assert.Error(t, ct.Annotate("", "note"))
		assert.Error(t, ct.Annotate("acc_admin1", ""))
	})
}

func TestContractVersionBumps(t *testing.T) {
	ct := newDraftContract(t)
	assert.Equal(t, 0, ct.Version())

	require.NoError(t, ct.Activate(10))
	assert.Equal(t, 1, ct.Version())

	require.NoError(t, ct.Suspend("unpaid"))
	assert.Equal(t, 2, ct.Version())
}

func TestReconstruct(t *testing.T) {
	now := time.Now().UTC()
	reason := "unpaid"
	paymentID := uint(7)

	ct := Reconstruct(ReconstructParams{
		ID:               3,
		SID:              "ctr_abc123def456",
		EntityID:         1,
		PlanID:           2,
		Status:           vo.ContractStatusSuspended,
		CurrentPaymentID: &paymentID,
		SuspendReason:    &reason,
		SuspendedAt:      &now,
		Version:          5,
		CreatedAt:        now,
		UpdatedAt:        now,
	})

	assert.Equal(t, uint(3), ct.ID())
	assert.Equal(t, vo.ContractStatusSuspended, ct.Status())
	assert.Equal(t, 5, ct.Version())
	require.NotNil(t, ct.CurrentPaymentID())
	assert.Equal(t, paymentID, *ct.CurrentPaymentID())
}
