package codec

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/koinledger/koin/types"
)

// BalanceOfArgs carries the owner whose balance is queried
type BalanceOfArgs struct {
	Owner types.Address
}

func (a *BalanceOfArgs) Marshal() []byte {
	return appendBytesField(nil, 1, a.Owner)
}

func (a *BalanceOfArgs) Unmarshal(data []byte) error {
	return scan(data, func(f field) error {
		if f.num == 1 && f.typ == protowire.BytesType {
			owner, err := addressField(f, "owner")
			if err != nil {
				return err
			}
			a.Owner = owner
		}
		return nil
	})
}

// TransferArgs carries a transfer's source, destination and amount
type TransferArgs struct {
	From  types.Address
	To    types.Address
	Value uint64
}

func (a *TransferArgs) Marshal() []byte {
	buf := appendBytesField(nil, 1, a.From)
	buf = appendBytesField(buf, 2, a.To)
	return appendVarintField(buf, 3, a.Value)
}

func (a *TransferArgs) Unmarshal(data []byte) error {
	return scan(data, func(f field) error {
		switch {
		case f.num == 1 && f.typ == protowire.BytesType:
			from, err := addressField(f, "from")
			if err != nil {
				return err
			}
			a.From = from
		case f.num == 2 && f.typ == protowire.BytesType:
			to, err := addressField(f, "to")
			if err != nil {
				return err
			}
			a.To = to
		case f.num == 3 && f.typ == protowire.VarintType:
			a.Value = f.varint
		}
		return nil
	})
}

// MintArgs carries a mint's destination and amount
type MintArgs struct {
	To    types.Address
	Value uint64
}

func (a *MintArgs) Marshal() []byte {
	buf := appendBytesField(nil, 1, a.To)
	return appendVarintField(buf, 2, a.Value)
}

func (a *MintArgs) Unmarshal(data []byte) error {
	return scan(data, func(f field) error {
		switch {
		case f.num == 1 && f.typ == protowire.BytesType:
			to, err := addressField(f, "to")
			if err != nil {
				return err
			}
			a.To = to
		case f.num == 2 && f.typ == protowire.VarintType:
			a.Value = f.varint
		}
		return nil
	})
}

// BurnArgs carries a burn's source and amount
type BurnArgs struct {
	From  types.Address
	Value uint64
}

func (a *BurnArgs) Marshal() []byte {
	buf := appendBytesField(nil, 1, a.From)
	return appendVarintField(buf, 2, a.Value)
}

func (a *BurnArgs) Unmarshal(data []byte) error {
	return scan(data, func(f field) error {
		switch {
		case f.num == 1 && f.typ == protowire.BytesType:
			from, err := addressField(f, "from")
			if err != nil {
				return err
			}
			a.From = from
		case f.num == 2 && f.typ == protowire.VarintType:
			a.Value = f.varint
		}
		return nil
	})
}

// AccountRCArgs carries the account whose resource credits are queried
type AccountRCArgs struct {
	Account types.Address
}

func (a *AccountRCArgs) Marshal() []byte {
	return appendBytesField(nil, 1, a.Account)
}

func (a *AccountRCArgs) Unmarshal(data []byte) error {
	return scan(data, func(f field) error {
		if f.num == 1 && f.typ == protowire.BytesType {
			account, err := addressField(f, "account")
			if err != nil {
				return err
			}
			a.Account = account
		}
		return nil
	})
}

// ConsumeRCArgs carries an account and the resource credits to consume
type ConsumeRCArgs struct {
	Account types.Address
	Value   uint64
}

func (a *ConsumeRCArgs) Marshal() []byte {
	buf := appendBytesField(nil, 1, a.Account)
	return appendVarintField(buf, 2, a.Value)
}

func (a *ConsumeRCArgs) Unmarshal(data []byte) error {
	return scan(data, func(f field) error {
		switch {
		case f.num == 1 && f.typ == protowire.BytesType:
			account, err := addressField(f, "account")
			if err != nil {
				return err
			}
			a.Account = account
		case f.num == 2 && f.typ == protowire.VarintType:
			a.Value = f.varint
		}
		return nil
	})
}

// StringResult is the value of the name and symbol queries
type StringResult struct {
	Value string
}

func (r *StringResult) Marshal() []byte {
	return appendBytesField(nil, 1, []byte(r.Value))
}

func (r *StringResult) Unmarshal(data []byte) error {
	return scan(data, func(f field) error {
		if f.num == 1 && f.typ == protowire.BytesType {
			r.Value = string(f.bytes)
		}
		return nil
	})
}

// Uint64Result is the value of the decimals, supply, balance and RC queries
type Uint64Result struct {
	Value uint64
}

func (r *Uint64Result) Marshal() []byte {
	return appendVarintField(nil, 1, r.Value)
}

func (r *Uint64Result) Unmarshal(data []byte) error {
	return scan(data, func(f field) error {
		if f.num == 1 && f.typ == protowire.VarintType {
			r.Value = f.varint
		}
		return nil
	})
}

// BoolResult is the value of the authorize and consume-RC entry points
type BoolResult struct {
	Value bool
}

func (r *BoolResult) Marshal() []byte {
	v := uint64(0)
	if r.Value {
		v = 1
	}
	return appendVarintField(nil, 1, v)
}

func (r *BoolResult) Unmarshal(data []byte) error {
	return scan(data, func(f field) error {
		if f.num == 1 && f.typ == protowire.VarintType {
			r.Value = f.varint != 0
		}
		return nil
	})
}

// EmptyResult is returned by transfer, mint and burn
type EmptyResult struct{}

func (EmptyResult) Marshal() []byte { return []byte{} }
