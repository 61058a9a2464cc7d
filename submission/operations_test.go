package submission

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOperationsRollbackToClampsFinality(t *testing.T) {
	t.Parallel()

	ops := NewOperations()
	T := tx(1)

	s := New()
	s.Tip = Slot(100)
	s = s.Apply(AddSubmission{Expiring: Slot(150), Tx: T})
	s = s.Apply(MoveToLedger{Acceptance: Slot(110), Tx: T})
	s = s.Apply(MoveFinality{NewFinality: Slot(100)})

	require.Equal(t, Slot(100), s.Finality)

	rolled := ops.RollbackTo(s, Slot(50))

	require.Equal(t, Slot(50), rolled.Tip)
	require.True(t, rolled.Finality.AtOrBefore(rolled.Tip))

	status, ok := rolled.Lookup(T.TxId())
	require.True(t, ok)
	require.IsType(t, InSubmission{}, status)
}

func TestOperationsSubmitObserveDiscard(t *testing.T) {
	t.Parallel()

	ops := NewOperations()
	T := tx(7)

	s := New()
	s.Tip = Slot(10)

	s = ops.Submit(s, T, Slot(20))
	status, ok := s.Lookup(T.TxId())
	require.True(t, ok)
	require.IsType(t, InSubmission{}, status)

	s = ops.ObserveAccepted(s, T, Slot(15))
	status, ok = s.Lookup(T.TxId())
	require.True(t, ok)
	require.IsType(t, InLedger{}, status)

	s = ops.Discard(s, T)
	_, ok = s.Lookup(T.TxId())
	require.False(t, ok)
}
