// Package protocol implements the binary request/response framing spoken on
// a ledger session. All integers are big-endian.
package protocol

import "fmt"

// Opcode selects the operation of a request. Its meaning depends on whether
// the session is authenticated.
type Opcode int32

// Anonymous session opcodes
const (
	OpLogin    Opcode = 1
	OpRegister Opcode = 2
	OpExit     Opcode = 3
)

// Authenticated session opcodes
const (
	OpListAccounts     Opcode = 1
	OpExchange         Opcode = 2
	OpWithdraw         Opcode = 3
	OpDeposit          Opcode = 4
	OpCreateAccount    Opcode = 5
	OpDeleteAccount    Opcode = 6
	OpSendRequestCoins Opcode = 7
	OpHistory          Opcode = 8
	OpLogout           Opcode = 9
	OpDeleteUser       Opcode = 10
)

const (
	StatusFailure byte = 0x00
	StatusSuccess byte = 0x01
)

var anonymousNames = map[Opcode]string{
	OpLogin:    "login",
	OpRegister: "register",
	OpExit:     "exit",
}

var authenticatedNames = map[Opcode]string{
	OpListAccounts:     "list_accounts",
	OpExchange:         "exchange",
	OpWithdraw:         "withdraw",
	OpDeposit:          "deposit",
	OpCreateAccount:    "create_account",
	OpDeleteAccount:    "delete_account",
	OpSendRequestCoins: "send_request_coins",
	OpHistory:          "history",
	OpLogout:           "logout",
	OpDeleteUser:       "delete_user",
}

// Name returns a stable label for op in the given session state
func (op Opcode) Name(authenticated bool) string {
	names := anonymousNames
	if authenticated {
		names = authenticatedNames
	}
	if name, ok := names[op]; ok {
		return name
	}
	return fmt.Sprintf("unknown_%d", int32(op))
}

// Known reports whether op is defined for the given session state
func (op Opcode) Known(authenticated bool) bool {
	if authenticated {
		_, ok := authenticatedNames[op]
		return ok
	}
	_, ok := anonymousNames[op]
	return ok
}
