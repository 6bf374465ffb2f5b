package ledger

import (
	"iter"
	"time"

	"fxledger/internal/models"
)

// FirstTransactionID is the id assigned to the first journal record
const FirstTransactionID uint64 = 1

type journalNode struct {
	record models.TransactionRecord
	next   *journalNode
}

// Journal is an append-only list of committed transactions, newest first.
// Nodes are never modified after being linked, so copies of a Journal value
// share their history and a copy never observes records appended to another.
type Journal struct {
	head   *journalNode
	length int
	nextID uint64
}

// NewJournal returns an empty journal
func NewJournal() Journal {
	return Journal{nextID: FirstTransactionID}
}

// Append assigns the next transaction id and links the record at the head.
// A zero timestamp is replaced with the current UTC time.
func (j *Journal) Append(record models.TransactionRecord) models.TransactionRecord {
	if j.nextID == 0 {
		j.nextID = FirstTransactionID
	}
	record.ID = j.nextID
	j.nextID++
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().UTC()
	}
	j.push(record)
	return record
}

func (j *Journal) push(record models.TransactionRecord) {
	j.head = &journalNode{record: record, next: j.head}
	j.length++
}

// Len returns the number of records
func (j Journal) Len() int {
	return j.length
}

// NextID returns the id the next appended record will receive
func (j Journal) NextID() uint64 {
	if j.nextID == 0 {
		return FirstTransactionID
	}
	return j.nextID
}

// All iterates every record, most recent first
func (j Journal) All() iter.Seq[models.TransactionRecord] {
	head := j.head
	return func(yield func(models.TransactionRecord) bool) {
		for n := head; n != nil; n = n.next {
			if !yield(n.record) {
				return
			}
		}
	}
}

// QueryByClient iterates the records of one client, most recent first.
// The sequence can be ranged over any number of times.
func (j Journal) QueryByClient(clientID uint32) iter.Seq[models.TransactionRecord] {
	all := j.All()
	return func(yield func(models.TransactionRecord) bool) {
		for rec := range all {
			if rec.ClientID != clientID {
				continue
			}
			if !yield(rec) {
				return
			}
		}
	}
}

// oldestFirst returns the records in append order
func (j Journal) oldestFirst() []models.TransactionRecord {
	out := make([]models.TransactionRecord, j.length)
	i := j.length - 1
	for n := j.head; n != nil; n = n.next {
		out[i] = n.record
		i--
	}
	return out
}

// Equal compares two journals record by record
func (j Journal) Equal(other Journal) bool {
	if j.length != other.length || j.NextID() != other.NextID() {
		return false
	}
	a, b := j.head, other.head
	for a != nil && b != nil {
		if !a.record.Equal(b.record) {
			return false
		}
		a, b = a.next, b.next
	}
	return a == nil && b == nil
}
