package errors

import (
	stderrors "errors"
)

// LedgerError is the error type returned by the ledger core. It carries the
// wire code, the operation that failed and an optional cause.
type LedgerError struct {
	Code ErrorCode
	Op   string
	Err  error
}

// Sentinel errors, one per code. Compare with errors.Is; any LedgerError with
// the same code matches.
var (
	ErrInvalidCredentials  = New(AuthInvalidCredentials)
	ErrDuplicateUsername   = New(AuthDuplicateUsername)
	ErrRateLimited         = New(AuthRateLimited)
	ErrInvalidRequest      = New(ValidationInvalidRequest)
	ErrInvalidAmount       = New(ValidationInvalidAmount)
	ErrUnknownCurrency     = New(ValidationUnknownCurrency)
	ErrInsufficientFunds   = New(AccountInsufficientFunds)
	ErrInvalidAccountIndex = New(AccountInvalidIndex)
	ErrUserNotFound        = New(AccountUserNotFound)
	ErrProtocolViolation   = New(ProtocolViolation)
	ErrNotImplemented      = New(ProtocolNotImplemented)
	ErrPersistenceFailure  = New(SystemPersistenceFailure)
	ErrAllocationFailure   = New(SystemAllocationFailure)
	ErrInternal            = New(SystemInternalError)
)

// New creates a bare error for the given code
func New(code ErrorCode) *LedgerError {
	return &LedgerError{Code: code}
}

// Wrap attaches an operation name and a cause to a code
func Wrap(code ErrorCode, op string, err error) *LedgerError {
	return &LedgerError{Code: code, Op: op, Err: err}
}

// WithOp returns a LedgerError for code annotated with the failing operation
func WithOp(code ErrorCode, op string) *LedgerError {
	return &LedgerError{Code: code, Op: op}
}

func (e *LedgerError) Error() string {
	msg := GetErrorMessage(e.Code)
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LedgerError) Unwrap() error {
	return e.Err
}

// Is matches any LedgerError target carrying the same code
func (e *LedgerError) Is(target error) bool {
	var t *LedgerError
	if !stderrors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// CodeOf extracts the code of the first LedgerError in err's chain.
// Errors that are not LedgerErrors map to SystemInternalError.
func CodeOf(err error) ErrorCode {
	var le *LedgerError
	if stderrors.As(err, &le) {
		return le.Code
	}
	return SystemInternalError
}
