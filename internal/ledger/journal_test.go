package ledger

import (
	"slices"
	"testing"
	"time"

	"fxledger/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournal_AppendAssignsIDsAndTimestamps(t *testing.T) {
	j := NewJournal()

	first := j.Append(models.TransactionRecord{ClientID: 1, Kind: models.TransactionDeposit})
	second := j.Append(models.TransactionRecord{ClientID: 1, Kind: models.TransactionWithdraw})

	assert.Equal(t, FirstTransactionID, first.ID)
	assert.Equal(t, FirstTransactionID+1, second.ID)
	assert.False(t, first.Timestamp.IsZero())
	assert.Equal(t, time.UTC, first.Timestamp.Location())
	assert.Equal(t, 2, j.Len())
	assert.Equal(t, uint64(3), j.NextID())
}

func TestJournal_ZeroValueStartsAtFirstID(t *testing.T) {
	var j Journal
	rec := j.Append(models.TransactionRecord{Kind: models.TransactionDeposit})
	assert.Equal(t, FirstTransactionID, rec.ID)
}

func TestJournal_QueryByClient(t *testing.T) {
	j := NewJournal()
	for i := 0; i < 6; i++ {
		j.Append(models.TransactionRecord{ClientID: uint32(i%2 + 1), Kind: models.TransactionDeposit})
	}

	seq := j.QueryByClient(2)
	got := slices.Collect(seq)
	require.Len(t, got, 3)
	assert.Equal(t, []uint64{6, 4, 2}, []uint64{got[0].ID, got[1].ID, got[2].ID})

	// restartable
	assert.Len(t, slices.Collect(seq), 3)

	assert.Empty(t, slices.Collect(j.QueryByClient(42)))
}

func TestJournal_QueryStopsEarly(t *testing.T) {
	j := NewJournal()
	for i := 0; i < 10; i++ {
		j.Append(models.TransactionRecord{ClientID: 1})
	}

	n := 0
	for range j.QueryByClient(1) {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestJournal_CopiesDoNotSeeLaterAppends(t *testing.T) {
	j := NewJournal()
	j.Append(models.TransactionRecord{ClientID: 1})

	snapshot := j
	j.Append(models.TransactionRecord{ClientID: 1})

	assert.Equal(t, 1, snapshot.Len())
	assert.Len(t, slices.Collect(snapshot.All()), 1)
	assert.Equal(t, 2, j.Len())
	assert.False(t, snapshot.Equal(j))
}

func TestJournal_OldestFirst(t *testing.T) {
	j := NewJournal()
	for i := 0; i < 3; i++ {
		j.Append(models.TransactionRecord{ClientID: 1})
	}

	records := j.oldestFirst()
	require.Len(t, records, 3)
	assert.Equal(t, uint64(1), records[0].ID)
	assert.Equal(t, uint64(3), records[2].ID)
}
