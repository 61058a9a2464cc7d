package submission

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type testTx struct {
	id TxId
}

func (t testTx) TxId() TxId { return t.id }

func tx(b byte) testTx {
	var id TxId
	id[0] = b

	return testTx{id: id}
}

// TestAddThenRollback is spec.md's literal scenario S4.
func TestAddThenRollback(t *testing.T) {
	t.Parallel()

	T := tx(1)

	s := New()
	s.Tip = Slot(50)

	s = s.Apply(AddSubmission{Expiring: Slot(100), Tx: T})
	status, ok := s.Lookup(T.TxId())
	require.True(t, ok)
	require.IsType(t, InSubmission{}, status)

	s = s.Apply(MoveToLedger{Acceptance: Slot(60), Tx: T})
	status, ok = s.Lookup(T.TxId())
	require.True(t, ok)
	require.IsType(t, InLedger{}, status)

	s = s.Apply(MoveTip{NewTip: Slot(30)})
	status, ok = s.Lookup(T.TxId())
	require.True(t, ok)
	require.IsType(t, InSubmission{}, status)
	require.Equal(t, Slot(100), status.(InSubmission).Expiring)
}

// TestExpireThenUnexpire is spec.md's literal scenario S5.
func TestExpireThenUnexpire(t *testing.T) {
	t.Parallel()

	T := tx(1)

	s := New()
	s.Tip = Slot(50)
	s = s.Apply(AddSubmission{Expiring: Slot(60), Tx: T})

	s = s.Apply(MoveTip{NewTip: Slot(70)})
	status, ok := s.Lookup(T.TxId())
	require.True(t, ok)
	require.IsType(t, Expired{}, status)
	require.Equal(t, Slot(60), status.(Expired).Expiring)

	s = s.Apply(MoveTip{NewTip: Slot(55)})
	status, ok = s.Lookup(T.TxId())
	require.True(t, ok)
	require.IsType(t, InSubmission{}, status)
	require.Equal(t, Slot(60), status.(InSubmission).Expiring)
}

// TestFinalityPrunesLedgerButNotSubmission is spec.md's literal scenario
// S6.
func TestFinalityPrunesLedgerButNotSubmission(t *testing.T) {
	t.Parallel()

	A, B := tx(1), tx(2)

	// A must be submitted and accepted while the tip is still before its
	// acceptance slot; the tip then advances to 100.
	s := New()
	s.Tip = Slot(30)
	s.Finality = Slot(0)

	s = s.Apply(AddSubmission{Expiring: Slot(90), Tx: A})
	s = s.Apply(MoveToLedger{Acceptance: Slot(40), Tx: A})
	s = s.Apply(MoveTip{NewTip: Slot(100)})
	s = s.Apply(AddSubmission{Expiring: Slot(200), Tx: B})

	status, ok := s.Lookup(A.TxId())
	require.True(t, ok)
	require.IsType(t, InLedger{}, status)

	s = s.Apply(MoveFinality{NewFinality: Slot(50)})

	_, ok = s.Lookup(A.TxId())
	require.False(t, ok)

	status, ok = s.Lookup(B.TxId())
	require.True(t, ok)
	require.IsType(t, InSubmission{}, status)

	require.Equal(t, Slot(50), s.Finality)
}

// TestAddSubmissionIdempotentOnStaleAdds is testable property 8.
func TestAddSubmissionIdempotentOnStaleAdds(t *testing.T) {
	t.Parallel()

	T := tx(1)

	s := New()
	s.Tip = Slot(50)

	// expiring <= tip is a no-op.
	before := s
	after := s.Apply(AddSubmission{Expiring: Slot(50), Tx: T})
	require.Equal(t, before, after)
	require.Equal(t, 0, after.Len())

	// A duplicate txId, even once already tracked, is a no-op.
	s = s.Apply(AddSubmission{Expiring: Slot(100), Tx: T})
	require.Equal(t, 1, s.Len())

	dup := s.Apply(AddSubmission{Expiring: Slot(200), Tx: T})
	status, _ := dup.Lookup(T.TxId())
	require.Equal(t, Slot(100), status.(InSubmission).Expiring)
}

// TestRollbackReversibility is testable property 9.
func TestRollbackReversibility(t *testing.T) {
	t.Parallel()

	T := tx(1)

	s := New()
	s.Tip = Slot(10)
	s = s.Apply(AddSubmission{Expiring: Slot(20), Tx: T})
	s = s.Apply(MoveToLedger{Acceptance: Slot(15), Tx: T})

	t1 := s.Apply(MoveTip{NewTip: Slot(30)})
	status, ok := t1.Lookup(T.TxId())
	require.True(t, ok)
	require.IsType(t, InLedger{}, status)

	t0 := t1.Apply(MoveTip{NewTip: Slot(12)})
	status, ok = t0.Lookup(T.TxId())
	require.True(t, ok)
	require.IsType(t, InSubmission{}, status)
}

// TestInvariantPreservation is testable property 7, checked after a
// sequence of primitive applications that exercises submission, move to
// ledger, expiry and finality pruning.
func TestInvariantPreservation(t *testing.T) {
	t.Parallel()

	A, B, C := tx(1), tx(2), tx(3)

	s := New()
	s.Tip = Slot(10)

	s = s.Apply(AddSubmission{Expiring: Slot(20), Tx: A})
	s = s.Apply(AddSubmission{Expiring: Slot(15), Tx: B})
	s = s.Apply(MoveToLedger{Acceptance: Slot(12), Tx: A})
	s = s.Apply(MoveTip{NewTip: Slot(16)})
	s = s.Apply(AddSubmission{Expiring: Slot(50), Tx: C})
	s = s.Apply(MoveFinality{NewFinality: Slot(12)})

	requireStoreInvariants(t, s)
}

func requireStoreInvariants(t *testing.T, s *Store) {
	t.Helper()

	require.True(t, s.Finality.AtOrBefore(s.Tip))

	for _, status := range s.All() {
		switch st := status.(type) {
		case InLedger:
			require.True(t, st.Acceptance.AtOrBefore(s.Tip))
			require.True(t, st.Acceptance.AtOrBefore(st.Expiring))
		case Expired:
			require.True(t, st.Expiring.AtOrBefore(s.Tip))
		case InSubmission:
			require.True(t, s.Tip.Before(st.Expiring))
		}
	}
}
