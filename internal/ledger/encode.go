package ledger

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	apperrors "fxledger/internal/errors"
	"fxledger/internal/models"

	"github.com/shopspring/decimal"
)

// Snapshot format. All integers are big-endian.
//
//	magic "FXLG" | u16 version | u32 users | u32 nextClientID | 8 x dec rate
//	per user:    u32 clientID | u32 nextAccountID | u32 accounts | str username | str credential
//	per account: u32 id | u8 shared | 8 x dec balance | dec total
//	journal:     u64 nextTransactionID | u32 records | records oldest first
//	per record:  u64 id | u32 clientID | u32 accountID | u8 kind | u8 from | u8 to |
//	             dec amountFrom | dec amountTo | dec rate | i64 unix nanos
//
// str is u16 length + bytes, dec is u16 length + decimal.MarshalBinary.
const (
	SnapshotMagic   = "FXLG"
	SnapshotVersion = uint16(1)

	minUserSize    = 4 + 4 + 4 + 2 + 2
	minAccountSize = 4 + 1 + 9*2
	minRecordSize  = 8 + 4 + 4 + 3 + 3*2 + 8
)

var (
	ErrBadMagic           = errors.New("not a ledger snapshot")
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
	ErrCorruptSnapshot    = errors.New("corrupt snapshot")
)

// MarshalBinary encodes the whole ledger in the versioned snapshot format
func (l *Ledger) MarshalBinary() ([]byte, error) {
	e := &encoder{}
	e.buf.WriteString(SnapshotMagic)
	e.u16(SnapshotVersion)
	e.u32(uint32(len(l.Users)))
	e.u32(l.NextClientID)
	for _, rate := range l.Rates() {
		e.dec(rate)
	}

	for i := range l.Users {
		u := &l.Users[i]
		e.u32(u.ClientID)
		e.u32(u.NextAccountID)
		e.u32(uint32(len(u.Accounts)))
		e.str(u.Username)
		e.str(u.Credential)
		for j := range u.Accounts {
			e.account(&u.Accounts[j])
		}
	}

	e.u64(l.Journal.NextID())
	records := l.Journal.oldestFirst()
	e.u32(uint32(len(records)))
	for i := range records {
		e.record(&records[i])
	}

	if e.err != nil {
		return nil, e.err
	}
	return e.buf.Bytes(), nil
}

// Decode parses a snapshot produced by MarshalBinary
func Decode(data []byte) (*Ledger, error) {
	d := &decoder{r: bytes.NewReader(data)}

	magic := d.bytes(len(SnapshotMagic))
	if d.err != nil || string(magic) != SnapshotMagic {
		return nil, ErrBadMagic
	}
	if v := d.u16(); d.err == nil && v != SnapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}

	userCount := d.count(minUserSize)
	nextClientID := d.u32()
	var rates models.ExchangeRates
	for i := range rates {
		rates[i] = d.dec()
	}
	if d.err != nil {
		return nil, d.fail()
	}

	l, err := New(rates)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	l.NextClientID = nextClientID
	l.Users = make([]models.User, 0, userCount)

	for i := 0; i < userCount && d.err == nil; i++ {
		u := models.User{
			ClientID:      d.u32(),
			NextAccountID: d.u32(),
		}
		accountCount := d.count(minAccountSize)
		u.Username = d.str()
		u.Credential = d.str()
		if accountCount > 0 {
			u.Accounts = make([]models.CurrencyAccount, accountCount)
		}
		for j := 0; j < accountCount && d.err == nil; j++ {
			u.Accounts[j] = d.account()
		}
		l.Users = append(l.Users, u)
	}

	nextTxID := d.u64()
	recordCount := d.count(minRecordSize)
	journal := NewJournal()
	for i := 0; i < recordCount && d.err == nil; i++ {
		journal.push(d.record())
	}
	journal.nextID = nextTxID
	if d.err != nil {
		return nil, d.fail()
	}
	if d.r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorruptSnapshot, d.r.Len())
	}

	l.Journal = journal
	l.reindex()
	if err := l.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	return l, nil
}

// UnmarshalBinary replaces l with the decoded snapshot
func (l *Ledger) UnmarshalBinary(data []byte) error {
	decoded, err := Decode(data)
	if err != nil {
		return err
	}
	*l = *decoded
	return nil
}

// validate checks the invariants a well-formed snapshot must satisfy
func (l *Ledger) validate() error {
	if len(l.byName) != len(l.Users) {
		return errors.New("duplicate usernames")
	}
	var prev uint32
	for i := range l.Users {
		u := &l.Users[i]
		if u.ClientID <= prev || u.ClientID >= l.NextClientID {
			return fmt.Errorf("user %q has out of order client id %d", u.Username, u.ClientID)
		}
		prev = u.ClientID
		for _, a := range u.Accounts {
			if a.ID == 0 || a.ID >= u.NextAccountID {
				return fmt.Errorf("user %q has account id %d beyond counter %d", u.Username, a.ID, u.NextAccountID)
			}
			if a.Balances.HasNegative() {
				return fmt.Errorf("account %d of %q has a negative balance", a.ID, u.Username)
			}
		}
	}

	next := l.Journal.NextID()
	for rec := range l.Journal.All() {
		if rec.ID >= next {
			return fmt.Errorf("journal record %d out of order", rec.ID)
		}
		if !rec.Kind.IsValid() {
			return fmt.Errorf("journal record %d has unknown kind %d", rec.ID, rec.Kind)
		}
		next = rec.ID
	}
	return nil
}

type encoder struct {
	buf bytes.Buffer
	err error
}

func (e *encoder) u8(v uint8) { e.buf.WriteByte(v) }

func (e *encoder) u16(v uint16) { e.buf.Write(binary.BigEndian.AppendUint16(nil, v)) }

func (e *encoder) u32(v uint32) { e.buf.Write(binary.BigEndian.AppendUint32(nil, v)) }

func (e *encoder) u64(v uint64) { e.buf.Write(binary.BigEndian.AppendUint64(nil, v)) }

func (e *encoder) blob(b []byte) {
	if len(b) > math.MaxUint16 {
		if e.err == nil {
			e.err = fmt.Errorf("field of %d bytes exceeds snapshot limit", len(b))
		}
		return
	}
	e.u16(uint16(len(b)))
	e.buf.Write(b)
}

func (e *encoder) str(s string) { e.blob([]byte(s)) }

func (e *encoder) dec(d decimal.Decimal) {
	b, err := d.MarshalBinary()
	if err != nil {
		if e.err == nil {
			e.err = fmt.Errorf("encode decimal %s: %w", d, err)
		}
		return
	}
	e.blob(b)
}

func (e *encoder) bool(v bool) {
	if v {
		e.u8(1)
		return
	}
	e.u8(0)
}

func (e *encoder) account(a *models.CurrencyAccount) {
	e.u32(a.ID)
	e.bool(a.Shared)
	for _, b := range a.Balances {
		e.dec(b)
	}
	e.dec(a.Total)
}

func (e *encoder) record(r *models.TransactionRecord) {
	e.u64(r.ID)
	e.u32(r.ClientID)
	e.u32(r.AccountID)
	e.u8(uint8(r.Kind))
	e.u8(uint8(r.From))
	e.u8(uint8(r.To))
	e.dec(r.AmountFrom)
	e.dec(r.AmountTo)
	e.dec(r.Rate)
	e.u64(uint64(r.Timestamp.UnixNano()))
}

// decoder reads with a sticky error: after the first failure every read
// returns a zero value.
type decoder struct {
	r   *bytes.Reader
	err error
}

func (d *decoder) fail() error {
	if errors.Is(d.err, io.EOF) || errors.Is(d.err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: truncated", ErrCorruptSnapshot)
	}
	return d.err
}

func (d *decoder) bytes(n int) []byte {
	if d.err != nil {
		return nil
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(d.r, b); err != nil {
		d.err = err
		return nil
	}
	return b
}

func (d *decoder) u8() uint8 {
	if d.err != nil {
		return 0
	}
	b, err := d.r.ReadByte()
	if err != nil {
		d.err = err
	}
	return b
}

func (d *decoder) u16() uint16 {
	b := d.bytes(2)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

func (d *decoder) u32() uint32 {
	b := d.bytes(4)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

func (d *decoder) u64() uint64 {
	b := d.bytes(8)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint64(b)
}

// count reads an element count and refuses values the remaining input could
// not possibly hold, so a corrupt header cannot force a huge allocation.
func (d *decoder) count(minElemSize int) int {
	n := d.u32()
	if d.err != nil {
		return 0
	}
	if uint64(n)*uint64(minElemSize) > uint64(d.r.Len()) {
		d.err = apperrors.Wrap(apperrors.SystemAllocationFailure, "decode snapshot",
			fmt.Errorf("%w: count %d exceeds remaining %d bytes", ErrCorruptSnapshot, n, d.r.Len()))
		return 0
	}
	return int(n)
}

func (d *decoder) blob() []byte {
	n := d.u16()
	return d.bytes(int(n))
}

func (d *decoder) str() string {
	return string(d.blob())
}

func (d *decoder) dec() decimal.Decimal {
	b := d.blob()
	if d.err != nil {
		return decimal.Zero
	}
	var v decimal.Decimal
	if err := v.UnmarshalBinary(b); err != nil {
		d.err = fmt.Errorf("%w: decimal: %v", ErrCorruptSnapshot, err)
		return decimal.Zero
	}
	return v
}

func (d *decoder) account() models.CurrencyAccount {
	a := models.CurrencyAccount{
		ID:     d.u32(),
		Shared: d.u8() != 0,
	}
	for i := range a.Balances {
		a.Balances[i] = d.dec()
	}
	a.Total = d.dec()
	return a
}

func (d *decoder) record() models.TransactionRecord {
	r := models.TransactionRecord{
		ID:        d.u64(),
		ClientID:  d.u32(),
		AccountID: d.u32(),
		Kind:      models.TransactionKind(d.u8()),
		From:      models.Currency(d.u8()),
		To:        models.Currency(d.u8()),
	}
	r.AmountFrom = d.dec()
	r.AmountTo = d.dec()
	r.Rate = d.dec()
	r.Timestamp = time.Unix(0, int64(d.u64())).UTC()
	return r
}
