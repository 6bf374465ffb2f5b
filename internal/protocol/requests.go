package protocol

import (
	"github.com/shopspring/decimal"
)

// MovementRequest is the payload of Deposit and Withdraw
type MovementRequest struct {
	Index    int32
	Currency uint8
	Amount   decimal.Decimal
}

// ExchangeRequest is the payload of Exchange
type ExchangeRequest struct {
	Index  int32
	From   uint8
	To     uint8
	Amount decimal.Decimal
}

// CreateAccountRequest is the payload of CreateAccount
type CreateAccountRequest struct {
	InitialDeposit decimal.Decimal
	Shared         bool
}

// ReadCredentials reads the raw "user<delim>pass" payload of Login and Register
func (d *Decoder) ReadCredentials() (string, error) {
	return d.ReadString(MaxCredentialsLength)
}

func (d *Decoder) ReadMovement() (MovementRequest, error) {
	var req MovementRequest
	var err error
	if req.Index, err = d.ReadInt32(); err != nil {
		return req, err
	}
	if req.Currency, err = d.ReadUint8(); err != nil {
		return req, err
	}
	req.Amount, err = d.ReadDecimal()
	return req, err
}

func (d *Decoder) ReadExchange() (ExchangeRequest, error) {
	var req ExchangeRequest
	var err error
	if req.Index, err = d.ReadInt32(); err != nil {
		return req, err
	}
	if req.From, err = d.ReadUint8(); err != nil {
		return req, err
	}
	if req.To, err = d.ReadUint8(); err != nil {
		return req, err
	}
	req.Amount, err = d.ReadDecimal()
	return req, err
}

func (d *Decoder) ReadCreateAccount() (CreateAccountRequest, error) {
	var req CreateAccountRequest
	var err error
	if req.InitialDeposit, err = d.ReadDecimal(); err != nil {
		return req, err
	}
	req.Shared, err = d.ReadBool()
	return req, err
}

// ReadIndex reads the account index payload of DeleteAccount
func (d *Decoder) ReadIndex() (int32, error) {
	return d.ReadInt32()
}

func (e *Encoder) WriteMovement(op Opcode, req MovementRequest) {
	e.WriteOpcode(op)
	e.WriteInt32(req.Index)
	e.WriteUint8(req.Currency)
	e.WriteDecimal(req.Amount)
}

func (e *Encoder) WriteExchange(req ExchangeRequest) {
	e.WriteOpcode(OpExchange)
	e.WriteInt32(req.Index)
	e.WriteUint8(req.From)
	e.WriteUint8(req.To)
	e.WriteDecimal(req.Amount)
}

func (e *Encoder) WriteCreateAccount(req CreateAccountRequest) {
	e.WriteOpcode(OpCreateAccount)
	e.WriteDecimal(req.InitialDeposit)
	e.WriteBool(req.Shared)
}
