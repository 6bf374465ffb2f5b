package errors

import "fmt"

// ErrorCode represents a standardized error code carried on the session wire.
// Values are stable: clients decode them from the failure marker.
type ErrorCode uint8

// Authentication error codes (0x1_)
const (
	AuthInvalidCredentials ErrorCode = 0x10
	AuthDuplicateUsername  ErrorCode = 0x11
	AuthRateLimited        ErrorCode = 0x12
)

// Validation error codes (0x2_)
const (
	ValidationInvalidRequest  ErrorCode = 0x20
	ValidationInvalidAmount   ErrorCode = 0x21
	ValidationUnknownCurrency ErrorCode = 0x22
)

// Account error codes (0x3_)
const (
	AccountInsufficientFunds ErrorCode = 0x30
	AccountInvalidIndex      ErrorCode = 0x31
	AccountUserNotFound      ErrorCode = 0x32
)

// Protocol error codes (0x4_)
const (
	ProtocolViolation      ErrorCode = 0x40
	ProtocolNotImplemented ErrorCode = 0x41
)

// System error codes (0x5_)
const (
	SystemPersistenceFailure ErrorCode = 0x50
	SystemAllocationFailure  ErrorCode = 0x51
	SystemInternalError      ErrorCode = 0x52
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	AuthInvalidCredentials: "Invalid username or password",
	AuthDuplicateUsername:  "Username is already taken",
	AuthRateLimited:        "Too many login attempts. Please try again later",

	ValidationInvalidRequest:  "Request validation failed",
	ValidationInvalidAmount:   "Invalid amount",
	ValidationUnknownCurrency: "Unknown currency",

	AccountInsufficientFunds: "Insufficient funds",
	AccountInvalidIndex:      "Invalid account index",
	AccountUserNotFound:      "User not found",

	ProtocolViolation:      "Protocol violation",
	ProtocolNotImplemented: "Operation not implemented",

	SystemPersistenceFailure: "Failed to persist ledger",
	SystemAllocationFailure:  "Allocation failure",
	SystemInternalError:      "An unexpected error occurred",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}

// IsFatal reports whether the code must terminate the whole process.
func IsFatal(code ErrorCode) bool {
	return code == SystemAllocationFailure
}

// String implements fmt.Stringer
func (c ErrorCode) String() string {
	return fmt.Sprintf("0x%02X(%s)", uint8(c), GetErrorMessage(c))
}
