package protocol

import (
	"bufio"
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

const (
	// MaxCredentialsLength bounds the login/register payload
	MaxCredentialsLength = 256
	// MaxDecimalLength is the longest ASCII decimal a uint8 prefix can carry
	MaxDecimalLength = math.MaxUint8
)

var (
	// ErrMalformed marks input that cannot be parsed as a frame. The session
	// answers it with a protocol violation and closes.
	ErrMalformed = errors.New("malformed frame")
	// ErrValueTooLong is returned when an outgoing value exceeds its length prefix
	ErrValueTooLong = errors.New("value too long for length prefix")
)

// Decoder reads frames from a stream
type Decoder struct {
	r   io.Reader
	buf [8]byte
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

func (d *Decoder) read(n int) ([]byte, error) {
	b := d.buf[:n]
	if _, err := io.ReadFull(d.r, b); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: truncated", ErrMalformed)
		}
		return nil, err
	}
	return b, nil
}

// ReadOpcode reads the start of a request. A stream that ends cleanly
// before the first byte returns io.EOF.
func (d *Decoder) ReadOpcode() (Opcode, error) {
	b := d.buf[:4]
	n, err := io.ReadFull(d.r, b)
	if err != nil {
		if errors.Is(err, io.EOF) && n == 0 {
			return 0, io.EOF
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, fmt.Errorf("%w: truncated opcode", ErrMalformed)
		}
		return 0, err
	}
	return Opcode(int32(binary.BigEndian.Uint32(b))), nil
}

func (d *Decoder) ReadUint8() (uint8, error) {
	b, err := d.read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (d *Decoder) ReadBool() (bool, error) {
	v, err := d.ReadUint8()
	return v != 0, err
}

func (d *Decoder) ReadInt32() (int32, error) {
	v, err := d.ReadUint32()
	return int32(v), err
}

func (d *Decoder) ReadUint32() (uint32, error) {
	b, err := d.read(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (d *Decoder) ReadUint64() (uint64, error) {
	b, err := d.read(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (d *Decoder) ReadInt64() (int64, error) {
	v, err := d.ReadUint64()
	return int64(v), err
}

// ReadString reads a uint16-prefixed string of at most max bytes
func (d *Decoder) ReadString(max int) (string, error) {
	b, err := d.read(2)
	if err != nil {
		return "", err
	}
	n := int(binary.BigEndian.Uint16(b))
	if n > max {
		return "", fmt.Errorf("%w: string of %d bytes exceeds %d", ErrMalformed, n, max)
	}
	return d.readText(n)
}

func (d *Decoder) readText(n int) (string, error) {
	text := make([]byte, n)
	if _, err := io.ReadFull(d.r, text); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return "", fmt.Errorf("%w: truncated", ErrMalformed)
		}
		return "", err
	}
	return string(text), nil
}

// ReadDecimal reads a uint8-prefixed ASCII decimal
func (d *Decoder) ReadDecimal() (decimal.Decimal, error) {
	n, err := d.ReadUint8()
	if err != nil {
		return decimal.Zero, err
	}
	if n == 0 {
		return decimal.Zero, fmt.Errorf("%w: empty decimal", ErrMalformed)
	}
	text, err := d.readText(int(n))
	if err != nil {
		return decimal.Zero, err
	}
	v, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a decimal", ErrMalformed, text)
	}
	return v, nil
}

// ReadStatus reads a response header. For failures it also returns the
// echoed opcode and the error code.
func (d *Decoder) ReadStatus() (bool, uint8, apperrors.ErrorCode, error) {
	status, err := d.ReadUint8()
	if err != nil {
		return false, 0, 0, err
	}
	switch status {
	case StatusSuccess:
		return true, 0, 0, nil
	case StatusFailure:
		op, err := d.ReadUint8()
		if err != nil {
			return false, 0, 0, err
		}
		code, err := d.ReadUint8()
		if err != nil {
			return false, 0, 0, err
		}
		return false, op, apperrors.ErrorCode(code), nil
	default:
		return false, 0, 0, fmt.Errorf("%w: status byte 0x%02x", ErrMalformed, status)
	}
}

// ReadAccount reads an account record
func (d *Decoder) ReadAccount() (models.CurrencyAccount, error) {
	var acct models.CurrencyAccount
	var err error
	if acct.ID, err = d.ReadUint32(); err != nil {
		return acct, err
	}
	if acct.Shared, err = d.ReadBool(); err != nil {
		return acct, err
	}
	for i := range acct.Balances {
		if acct.Balances[i], err = d.ReadDecimal(); err != nil {
			return acct, err
		}
	}
	acct.Total, err = d.ReadDecimal()
	return acct, err
}

// ReadRecord reads a journal record. The client id is not on the wire.
func (d *Decoder) ReadRecord() (models.TransactionRecord, error) {
	var r models.TransactionRecord
	var err error
	if r.ID, err = d.ReadUint64(); err != nil {
		return r, err
	}
	if r.AccountID, err = d.ReadUint32(); err != nil {
		return r, err
	}
	kind, err := d.ReadUint8()
	if err != nil {
		return r, err
	}
	r.Kind = models.TransactionKind(kind)
	from, err := d.ReadUint8()
	if err != nil {
		return r, err
	}
	to, err := d.ReadUint8()
	if err != nil {
		return r, err
	}
	r.From, r.To = models.Currency(from), models.Currency(to)
	if r.AmountFrom, err = d.ReadDecimal(); err != nil {
		return r, err
	}
	if r.AmountTo, err = d.ReadDecimal(); err != nil {
		return r, err
	}
	if r.Rate, err = d.ReadDecimal(); err != nil {
		return r, err
	}
	secs, err := d.ReadInt64()
	if err != nil {
		return r, err
	}
	r.Timestamp = time.Unix(secs, 0).UTC()
	return r, nil
}

// Encoder buffers frames until Flush. The first write error sticks and is
// reported by Flush.
type Encoder struct {
	w   *bufio.Writer
	err error
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: bufio.NewWriter(w)}
}

func (e *Encoder) write(b []byte) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.Write(b)
}

func (e *Encoder) WriteOpcode(op Opcode) { e.WriteInt32(int32(op)) }

func (e *Encoder) WriteUint8(v uint8) { e.write([]byte{v}) }

func (e *Encoder) WriteBool(v bool) {
	if v {
		e.WriteUint8(1)
		return
	}
	e.WriteUint8(0)
}

func (e *Encoder) WriteInt32(v int32) { e.WriteUint32(uint32(v)) }

func (e *Encoder) WriteUint32(v uint32) { e.write(binary.BigEndian.AppendUint32(nil, v)) }

func (e *Encoder) WriteUint64(v uint64) { e.write(binary.BigEndian.AppendUint64(nil, v)) }

func (e *Encoder) WriteInt64(v int64) { e.WriteUint64(uint64(v)) }

func (e *Encoder) WriteString(s string) {
	if len(s) > math.MaxUint16 {
		e.fail(ErrValueTooLong)
		return
	}
	e.write(binary.BigEndian.AppendUint16(nil, uint16(len(s))))
	e.write([]byte(s))
}

func (e *Encoder) WriteDecimal(v decimal.Decimal) {
	text := v.String()
	if len(text) > MaxDecimalLength {
		e.fail(ErrValueTooLong)
		return
	}
	e.WriteUint8(uint8(len(text)))
	e.write([]byte(text))
}

// Success writes the success marker
func (e *Encoder) Success() { e.WriteUint8(StatusSuccess) }

// Failure writes the failure marker, the opcode it answers and the code
func (e *Encoder) Failure(op Opcode, code apperrors.ErrorCode) {
	e.WriteUint8(StatusFailure)
	e.WriteUint8(uint8(op))
	e.WriteUint8(uint8(code))
}

func (e *Encoder) WriteAccount(acct *models.CurrencyAccount) {
	e.WriteUint32(acct.ID)
	e.WriteBool(acct.Shared)
	for _, b := range acct.Balances {
		e.WriteDecimal(b)
	}
	e.WriteDecimal(acct.Total)
}

func (e *Encoder) WriteRecord(r *models.TransactionRecord) {
	e.WriteUint64(r.ID)
	e.WriteUint32(r.AccountID)
	e.WriteUint8(uint8(r.Kind))
	e.WriteUint8(uint8(r.From))
	e.WriteUint8(uint8(r.To))
	e.WriteDecimal(r.AmountFrom)
	e.WriteDecimal(r.AmountTo)
	e.WriteDecimal(r.Rate)
	e.WriteInt64(r.Timestamp.Unix())
}

func (e *Encoder) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

// Flush sends buffered frames
func (e *Encoder) Flush() error {
	if e.err != nil {
		return e.err
	}
	return e.w.Flush()
}

// Reset discards anything buffered and clears a sticky error
func (e *Encoder) Reset(w io.Writer) {
	e.w.Reset(w)
	e.err = nil
}
