package errors

import (
	"errors"

	"github.com/koinledger/koin/jsonx"
)

// FailureCode represents standardized reason codes for recoverable ledger
// failures. Callers branch on the code, not the message.
type FailureCode string

const (
	// Validation failures
	ErrCodeInvalidAddress FailureCode = "invalid_address"
	ErrCodeInvalidValue   FailureCode = "invalid_value"

	// Ledger rule failures
	ErrCodeSelfTransfer         FailureCode = "self_transfer"
	ErrCodeInsufficientBalance  FailureCode = "insufficient_balance"
	ErrCodeAuthorizationFailure FailureCode = "authorization_failure"
	ErrCodeInsufficientRC       FailureCode = "insufficient_rc"
)

// RevertCode represents reasons for non-recoverable aborts. A revert means
// the whole surrounding transaction must be discarded, not just the
// triggering call.
type RevertCode string

const (
	RevertCodeSupplyOverflow    RevertCode = "supply_overflow"
	RevertCodeSupplyUnderflow   RevertCode = "supply_underflow"
	RevertCodeBalanceOverflow   RevertCode = "balance_overflow"
	RevertCodeUnknownEntryPoint RevertCode = "unknown_entry_point"
	RevertCodeStorage           RevertCode = "storage_failure"
	RevertCodeMalformedArgs     RevertCode = "malformed_arguments"
)

// LedgerError is a recoverable failure: the triggering call's effects are
// discarded but the surrounding execution context may continue.
type LedgerError struct {
	Code    FailureCode `json:"code"`
	Message string      `json:"message"`
}

func (e *LedgerError) Error() string {
	out, _ := jsonx.Marshal(e)
	return string(out)
}

// RevertError is a non-recoverable abort signalling an invariant violation.
type RevertError struct {
	Code    RevertCode `json:"code"`
	Message string     `json:"message"`
}

func (e *RevertError) Error() string {
	out, _ := jsonx.Marshal(e)
	return string(out)
}

// Fail builds a recoverable failure with the given reason code.
func Fail(code FailureCode, message string) *LedgerError {
	return &LedgerError{Code: code, Message: message}
}

// Revert builds a non-recoverable abort with the given reason code.
func Revert(code RevertCode, message string) *RevertError {
	return &RevertError{Code: code, Message: message}
}

// FailureOf returns the LedgerError wrapped in err, if any.
func FailureOf(err error) (*LedgerError, bool) {
	var le *LedgerError
	if errors.As(err, &le) {
		return le, true
	}
	return nil, false
}

// RevertOf returns the RevertError wrapped in err, if any.
func RevertOf(err error) (*RevertError, bool) {
	var re *RevertError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// IsRevert reports whether err carries the non-recoverable severity.
func IsRevert(err error) bool {
	_, ok := RevertOf(err)
	return ok
}

// IsAuthorizationFailure reports whether err is a recoverable failure with
// the authorization reason code. Authorization failures must stay
// distinguishable from balance and logic failures.
func IsAuthorizationFailure(err error) bool {
	le, ok := FailureOf(err)
	return ok && le.Code == ErrCodeAuthorizationFailure
}

// Error message constants - user-friendly and concise
const (
	ErrMsgSelfTransfer         = "cannot transfer to self"
	ErrMsgTransferUnauthorized = "from has not authorized transfer"
	ErrMsgBurnUnauthorized     = "from has not authorized burn"
	ErrMsgInsufficientBalance  = "account 'from' has insufficient balance"
	ErrMsgMintOverflow         = "mint would overflow supply"
	ErrMsgBurnUnderflow        = "burn would underflow supply"
	ErrMsgUnknownEntryPoint    = "unknown entry point"
)
