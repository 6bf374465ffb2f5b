package protocol

import (
	"fmt"
	"io"

	apperrors "fxledger/internal/errors"
	"fxledger/internal/models"

	"github.com/shopspring/decimal"
)

// maxListLength bounds counts read from a server response
const maxListLength = 1 << 20

// ResponseError is a failure response received from the server
type ResponseError struct {
	Op   uint8
	Code apperrors.ErrorCode
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("opcode %d failed: %s", e.Op, e.Code)
}

// Unwrap exposes the code so that errors.Is matches the apperrors sentinels
func (e *ResponseError) Unwrap() error {
	return apperrors.New(e.Code)
}

// Client speaks the session protocol over rw. It is not safe for concurrent use.
type Client struct {
	enc *Encoder
	dec *Decoder
}

func NewClient(rw io.ReadWriter) *Client {
	return &Client{enc: NewEncoder(rw), dec: NewDecoder(rw)}
}

func (c *Client) send() error {
	return c.enc.Flush()
}

func (c *Client) status() error {
	ok, op, code, err := c.dec.ReadStatus()
	if err != nil {
		return err
	}
	if !ok {
		return &ResponseError{Op: op, Code: code}
	}
	return nil
}

func (c *Client) roundTrip() error {
	if err := c.send(); err != nil {
		return err
	}
	return c.status()
}

func (c *Client) credentials(op Opcode, username, password string) error {
	c.enc.WriteOpcode(op)
	c.enc.WriteString(username + "\n" + password)
	return c.roundTrip()
}

func (c *Client) Login(username, password string) error {
	return c.credentials(OpLogin, username, password)
}

func (c *Client) Register(username, password string) error {
	return c.credentials(OpRegister, username, password)
}

// Exit ends an anonymous session. The server does not answer.
func (c *Client) Exit() error {
	c.enc.WriteOpcode(OpExit)
	return c.send()
}

// Logout ends an authenticated session. The server does not answer.
func (c *Client) Logout() error {
	c.enc.WriteOpcode(OpLogout)
	return c.send()
}

// Call sends an opcode with no payload and reads the status
func (c *Client) Call(op Opcode) error {
	c.enc.WriteOpcode(op)
	return c.roundTrip()
}

func (c *Client) count() (int, error) {
	n, err := c.dec.ReadUint32()
	if err != nil {
		return 0, err
	}
	if n > maxListLength {
		return 0, fmt.Errorf("%w: list of %d entries", ErrMalformed, n)
	}
	return int(n), nil
}

func (c *Client) ListAccounts() ([]models.CurrencyAccount, error) {
	if err := c.Call(OpListAccounts); err != nil {
		return nil, err
	}
	n, err := c.count()
	if err != nil {
		return nil, err
	}
	accounts := make([]models.CurrencyAccount, 0, n)
	for i := 0; i < n; i++ {
		acct, err := c.dec.ReadAccount()
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

func (c *Client) History() ([]models.TransactionRecord, error) {
	if err := c.Call(OpHistory); err != nil {
		return nil, err
	}
	n, err := c.count()
	if err != nil {
		return nil, err
	}
	records := make([]models.TransactionRecord, 0, n)
	for i := 0; i < n; i++ {
		r, err := c.dec.ReadRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

func (c *Client) Deposit(index int32, currency models.Currency, amount decimal.Decimal) error {
	c.enc.WriteMovement(OpDeposit, MovementRequest{Index: index, Currency: uint8(currency), Amount: amount})
	return c.roundTrip()
}

func (c *Client) Withdraw(index int32, currency models.Currency, amount decimal.Decimal) error {
	c.enc.WriteMovement(OpWithdraw, MovementRequest{Index: index, Currency: uint8(currency), Amount: amount})
	return c.roundTrip()
}

// Exchange returns the converted amount and the applied rate
func (c *Client) Exchange(index int32, from, to models.Currency, amount decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	c.enc.WriteExchange(ExchangeRequest{Index: index, From: uint8(from), To: uint8(to), Amount: amount})
	if err := c.roundTrip(); err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	converted, err := c.dec.ReadDecimal()
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	rate, err := c.dec.ReadDecimal()
	return converted, rate, err
}

func (c *Client) CreateAccount(initialDeposit decimal.Decimal, shared bool) (uint32, error) {
	c.enc.WriteCreateAccount(CreateAccountRequest{InitialDeposit: initialDeposit, Shared: shared})
	if err := c.roundTrip(); err != nil {
		return 0, err
	}
	return c.dec.ReadUint32()
}

func (c *Client) DeleteAccount(index int32) error {
	c.enc.WriteOpcode(OpDeleteAccount)
	c.enc.WriteInt32(index)
	return c.roundTrip()
}
