// Package ledger implements the fungible-token state transitions. Every
// operation is a single atomic step: all checks run against current state
// first, then every write for the operation commits through one storage
// batch. Balances and supply are uint64; a record absent from storage reads
// as zero.
package ledger

import (
	"fmt"

	"github.com/koinledger/koin/auth"
	"github.com/koinledger/koin/config"
	"github.com/koinledger/koin/errors"
	"github.com/koinledger/koin/events"
	"github.com/koinledger/koin/store"
	"github.com/koinledger/koin/types"
)

// Token is the ledger core. It owns no state of its own; all balances and
// the supply counter live in the token store, and authorization decisions
// come from the per-invocation oracle.
type Token struct {
	name     string
	symbol   string
	decimals uint32
	store    *store.TokenStore
	recorder events.Recorder
}

func NewToken(tokenStore *store.TokenStore) *Token {
	return &Token{
		name:     config.TokenName,
		symbol:   config.TokenSymbol,
		decimals: config.TokenDecimals,
		store:    tokenStore,
		recorder: events.NopRecorder{},
	}
}

// SetRecorder attaches an event recorder. The default discards events;
// emission is an observability hook, not ledger behavior.
func (t *Token) SetRecorder(r events.Recorder) {
	if r == nil {
		r = events.NopRecorder{}
	}
	t.recorder = r
}

func (t *Token) Name() string { return t.name }

func (t *Token) Symbol() string { return t.symbol }

func (t *Token) Decimals() uint32 { return t.decimals }

// TotalSupply returns the global supply counter, zero if never minted
func (t *Token) TotalSupply() (uint64, error) {
	supply, err := t.store.Supply()
	if err != nil {
		return 0, storageRevert("read supply", err)
	}
	return supply, nil
}

// BalanceOf returns owner's balance, zero for unknown accounts
func (t *Token) BalanceOf(owner types.Address) (uint64, error) {
	if err := owner.Validate(); err != nil {
		return 0, errors.Fail(errors.ErrCodeInvalidAddress, err.Error())
	}
	balance, err := t.store.Balance(owner)
	if err != nil {
		return 0, storageRevert("read balance", err)
	}
	return balance, nil
}

// Transfer moves value from one account to another. Supply is untouched.
// Failure order: self-transfer, authorization, balance sufficiency; the
// first failing check rejects the call with no state change.
func (t *Token) Transfer(az auth.Authorizer, from, to types.Address, value uint64, callData []byte) error {
	if err := from.Validate(); err != nil {
		return errors.Fail(errors.ErrCodeInvalidAddress, err.Error())
	}
	if err := to.Validate(); err != nil {
		return errors.Fail(errors.ErrCodeInvalidAddress, err.Error())
	}

	if from.Equal(to) {
		return errors.Fail(errors.ErrCodeSelfTransfer, errors.ErrMsgSelfTransfer)
	}

	if !az.Caller().Equal(from) && !az.CheckAuthority(from, callData) {
		return errors.Fail(errors.ErrCodeAuthorizationFailure, errors.ErrMsgTransferUnauthorized)
	}

	fromBalance, err := t.store.Balance(from)
	if err != nil {
		return storageRevert("read from balance", err)
	}
	if fromBalance < value {
		return errors.Fail(errors.ErrCodeInsufficientBalance, errors.ErrMsgInsufficientBalance)
	}

	toBalance, err := t.store.Balance(to)
	if err != nil {
		return storageRevert("read to balance", err)
	}
	// Supply conservation makes this unreachable; check anyway so a corrupt
	// store can never commit a wrapped balance.
	if toBalance+value < toBalance {
		return errors.Revert(errors.RevertCodeBalanceOverflow, "transfer would overflow recipient balance")
	}

	err = t.store.Commit(
		t.store.BalanceWrite(from, fromBalance-value),
		t.store.BalanceWrite(to, toBalance+value),
	)
	if err != nil {
		return storageRevert("commit transfer", err)
	}

	t.recorder.Record(events.NewTransferEvent(from, to, value))
	return nil
}

// Mint credits value to an account and grows the supply by the same amount.
// Supply wraparound aborts the whole transaction.
//
// Mint performs no authorization check. Minting authority is a deployment
// concern: hosts must gate the mint entry point themselves.
func (t *Token) Mint(to types.Address, value uint64) error {
	if err := to.Validate(); err != nil {
		return errors.Fail(errors.ErrCodeInvalidAddress, err.Error())
	}

	supply, err := t.store.Supply()
	if err != nil {
		return storageRevert("read supply", err)
	}

	newSupply := supply + value
	if newSupply < supply { // Check overflow
		return errors.Revert(errors.RevertCodeSupplyOverflow, errors.ErrMsgMintOverflow)
	}

	toBalance, err := t.store.Balance(to)
	if err != nil {
		return storageRevert("read to balance", err)
	}

	err = t.store.Commit(
		t.store.SupplyWrite(newSupply),
		t.store.BalanceWrite(to, toBalance+value),
	)
	if err != nil {
		return storageRevert("commit mint", err)
	}

	t.recorder.Record(events.NewMintEvent(to, value))
	return nil
}

// Burn debits value from an account and shrinks the supply by the same
// amount. Balance sufficiency is a recoverable failure; a supply smaller
// than the burned amount means the conservation invariant is already broken
// and aborts the whole transaction.
func (t *Token) Burn(az auth.Authorizer, from types.Address, value uint64, callData []byte) error {
	if err := from.Validate(); err != nil {
		return errors.Fail(errors.ErrCodeInvalidAddress, err.Error())
	}

	if !az.Caller().Equal(from) && !az.CheckAuthority(from, callData) {
		return errors.Fail(errors.ErrCodeAuthorizationFailure, errors.ErrMsgBurnUnauthorized)
	}

	fromBalance, err := t.store.Balance(from)
	if err != nil {
		return storageRevert("read from balance", err)
	}
	if fromBalance < value {
		return errors.Fail(errors.ErrCodeInsufficientBalance, errors.ErrMsgInsufficientBalance)
	}

	supply, err := t.store.Supply()
	if err != nil {
		return storageRevert("read supply", err)
	}
	if value > supply { // Check underflow
		return errors.Revert(errors.RevertCodeSupplyUnderflow, errors.ErrMsgBurnUnderflow)
	}

	err = t.store.Commit(
		t.store.SupplyWrite(supply-value),
		t.store.BalanceWrite(from, fromBalance-value),
	)
	if err != nil {
		return storageRevert("commit burn", err)
	}

	t.recorder.Record(events.NewBurnEvent(from, value))
	return nil
}

func storageRevert(op string, err error) error {
	return errors.Revert(errors.RevertCodeStorage, fmt.Sprintf("%s: %v", op, err))
}
