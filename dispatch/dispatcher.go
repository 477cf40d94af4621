// Package dispatch maps entry-point opcodes onto ledger operations. It
// deserializes the opaque argument payload, runs the matching state
// transition, and serializes the result; the raw payload doubles as the
// authorization token handed to the oracle.
package dispatch

import (
	"fmt"

	"github.com/koinledger/koin/auth"
	"github.com/koinledger/koin/codec"
	"github.com/koinledger/koin/errors"
	"github.com/koinledger/koin/ledger"
	"github.com/koinledger/koin/logx"
	"github.com/koinledger/koin/types"
)

// Dispatcher is the contract entry point. One Invoke is one transaction
// step: it either returns a result payload, a recoverable failure, or a
// revert that the host must treat as aborting the whole transaction.
type Dispatcher struct {
	token *ledger.Token
	// hostCaller is the only identity allowed to consume account RC.
	hostCaller types.Address
}

func NewDispatcher(token *ledger.Token, hostCaller types.Address) *Dispatcher {
	return &Dispatcher{token: token, hostCaller: hostCaller}
}

// Invoke runs one entry point against the ledger. args stays opaque here
// beyond deserialization; malformed argument records revert since a host
// that cannot build a valid payload is a broken host.
func (d *Dispatcher) Invoke(az auth.Authorizer, entryPoint uint32, args []byte) ([]byte, error) {
	switch entryPoint {
	case EntryName:
		res := codec.StringResult{Value: d.token.Name()}
		return res.Marshal(), nil

	case EntrySymbol:
		res := codec.StringResult{Value: d.token.Symbol()}
		return res.Marshal(), nil

	case EntryDecimals:
		res := codec.Uint64Result{Value: uint64(d.token.Decimals())}
		return res.Marshal(), nil

	case EntryTotalSupply:
		supply, err := d.token.TotalSupply()
		if err != nil {
			return nil, err
		}
		res := codec.Uint64Result{Value: supply}
		return res.Marshal(), nil

	case EntryBalanceOf:
		var a codec.BalanceOfArgs
		if err := a.Unmarshal(args); err != nil {
			return nil, malformedArgs(entryPoint, err)
		}
		balance, err := d.token.BalanceOf(a.Owner)
		if err != nil {
			return nil, err
		}
		res := codec.Uint64Result{Value: balance}
		return res.Marshal(), nil

	case EntryTransfer:
		var a codec.TransferArgs
		if err := a.Unmarshal(args); err != nil {
			return nil, malformedArgs(entryPoint, err)
		}
		if err := d.token.Transfer(az, a.From, a.To, a.Value, args); err != nil {
			return nil, err
		}
		return codec.EmptyResult{}.Marshal(), nil

	case EntryMint:
		var a codec.MintArgs
		if err := a.Unmarshal(args); err != nil {
			return nil, malformedArgs(entryPoint, err)
		}
		if err := d.token.Mint(a.To, a.Value); err != nil {
			return nil, err
		}
		return codec.EmptyResult{}.Marshal(), nil

	case EntryBurn:
		var a codec.BurnArgs
		if err := a.Unmarshal(args); err != nil {
			return nil, malformedArgs(entryPoint, err)
		}
		if err := d.token.Burn(az, a.From, a.Value, args); err != nil {
			return nil, err
		}
		return codec.EmptyResult{}.Marshal(), nil

	case EntryGetAccountRC:
		var a codec.AccountRCArgs
		if err := a.Unmarshal(args); err != nil {
			return nil, malformedArgs(entryPoint, err)
		}
		rc, err := d.token.GetAccountRC(a.Account)
		if err != nil {
			return nil, err
		}
		res := codec.Uint64Result{Value: rc}
		return res.Marshal(), nil

	case EntryConsumeAccountRC:
		var a codec.ConsumeRCArgs
		if err := a.Unmarshal(args); err != nil {
			return nil, malformedArgs(entryPoint, err)
		}
		if len(d.hostCaller) == 0 || !az.Caller().Equal(d.hostCaller) {
			return nil, errors.Fail(errors.ErrCodeAuthorizationFailure, "only the host may consume account rc")
		}
		if err := d.token.ConsumeAccountRC(a.Account, a.Value); err != nil {
			return nil, err
		}
		res := codec.BoolResult{Value: true}
		return res.Marshal(), nil

	case EntryAuthorize:
		// Authorization callback is outside the ledger's concern; this
		// contract never vouches for anything.
		res := codec.BoolResult{Value: false}
		return res.Marshal(), nil

	default:
		logx.Warn("DISPATCH", fmt.Sprintf("Unknown entry point 0x%08x", entryPoint))
		return nil, errors.Revert(errors.RevertCodeUnknownEntryPoint, errors.ErrMsgUnknownEntryPoint)
	}
}

func malformedArgs(entryPoint uint32, err error) error {
	return errors.Revert(errors.RevertCodeMalformedArgs,
		fmt.Sprintf("cannot decode %s arguments: %v", EntryPointName(entryPoint), err))
}
