// Package auth answers "is this call permitted to act on behalf of account
// X". The ledger core never interprets the authorization payload; it hands
// the raw call data to the oracle and branches on the boolean answer.
package auth

import (
	"github.com/koinledger/koin/types"
)

// Authorizer is the per-invocation authorization oracle. Caller identity and
// authority decisions both live here so the ledger core stays free of any
// signature or host-environment knowledge.
type Authorizer interface {
	// Caller returns the identity the host attributes this invocation to.
	Caller() types.Address

	// CheckAuthority reports whether the invocation is authorized to act on
	// behalf of account. callData is the opaque authorization token captured
	// from the call; the oracle alone decides what it means.
	CheckAuthority(account types.Address, callData []byte) bool
}

// CallerOracle is a host-provided oracle with pre-decided answers. The
// daemon uses it when the transport has already authenticated the caller;
// tests use it to script authorization outcomes.
type CallerOracle struct {
	caller     types.Address
	authorized map[string]bool
}

func NewCallerOracle(caller types.Address) *CallerOracle {
	return &CallerOracle{
		caller:     caller,
		authorized: make(map[string]bool),
	}
}

// Grant marks account as authorized for this invocation
func (o *CallerOracle) Grant(account types.Address) *CallerOracle {
	o.authorized[string(account)] = true
	return o
}

func (o *CallerOracle) Caller() types.Address {
	return o.caller
}

func (o *CallerOracle) CheckAuthority(account types.Address, _ []byte) bool {
	return o.authorized[string(account)]
}
