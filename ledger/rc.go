package ledger

import (
	"github.com/koinledger/koin/errors"
	"github.com/koinledger/koin/types"
)

// Resource credits mirror token balances: an account's RC budget is its
// balance minus what the host has already consumed. The privileged-caller
// gate on consumption sits in the dispatcher, not here.

// GetAccountRC returns account's remaining resource credits
func (t *Token) GetAccountRC(account types.Address) (uint64, error) {
	if err := account.Validate(); err != nil {
		return 0, errors.Fail(errors.ErrCodeInvalidAddress, err.Error())
	}

	balance, err := t.store.Balance(account)
	if err != nil {
		return 0, storageRevert("read balance", err)
	}
	consumed, err := t.store.RCConsumed(account)
	if err != nil {
		return 0, storageRevert("read consumed rc", err)
	}
	if consumed >= balance {
		return 0, nil
	}
	return balance - consumed, nil
}

// ConsumeAccountRC records value resource credits as consumed by account
func (t *Token) ConsumeAccountRC(account types.Address, value uint64) error {
	available, err := t.GetAccountRC(account)
	if err != nil {
		return err
	}
	if value > available {
		return errors.Fail(errors.ErrCodeInsufficientRC, "account has insufficient resource credits")
	}

	consumed, err := t.store.RCConsumed(account)
	if err != nil {
		return storageRevert("read consumed rc", err)
	}
	if err := t.store.Commit(t.store.RCConsumedWrite(account, consumed+value)); err != nil {
		return storageRevert("commit rc consumption", err)
	}
	return nil
}
