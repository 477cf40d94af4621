package store

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/koinledger/koin/types"
)

// TokenStore layers typed uint64 accessors over the raw state spaces.
// Values are stored as protobuf varints; a missing record reads as zero.
type TokenStore struct {
	state *StateStore
}

func NewTokenStore(state *StateStore) *TokenStore {
	return &TokenStore{state: state}
}

// Supply returns the persisted total supply, zero if unset
func (ts *TokenStore) Supply() (uint64, error) {
	return ts.readUint64(SpaceSupply, SupplyKey)
}

// Balance returns addr's balance, zero if unset
func (ts *TokenStore) Balance(addr types.Address) (uint64, error) {
	return ts.readUint64(SpaceBalance, addr)
}

// RCConsumed returns the resource credits already consumed by addr
func (ts *TokenStore) RCConsumed(addr types.Address) (uint64, error) {
	return ts.readUint64(SpaceRC, addr)
}

// SupplyWrite builds a pending total-supply write
func (ts *TokenStore) SupplyWrite(value uint64) ObjectWrite {
	return ObjectWrite{Space: SpaceSupply, Key: SupplyKey, Value: encodeUint64(value)}
}

// BalanceWrite builds a pending balance write for addr
func (ts *TokenStore) BalanceWrite(addr types.Address, value uint64) ObjectWrite {
	return ObjectWrite{Space: SpaceBalance, Key: addr, Value: encodeUint64(value)}
}

// RCConsumedWrite builds a pending consumed-RC write for addr
func (ts *TokenStore) RCConsumedWrite(addr types.Address, value uint64) ObjectWrite {
	return ObjectWrite{Space: SpaceRC, Key: addr, Value: encodeUint64(value)}
}

// Commit applies all pending writes in one atomic batch
func (ts *TokenStore) Commit(writes ...ObjectWrite) error {
	return ts.state.PutObjects(writes)
}

func (ts *TokenStore) readUint64(space Space, key []byte) (uint64, error) {
	data, err := ts.state.GetObject(space, key)
	if err != nil {
		return 0, err
	}
	if data == nil {
		return 0, nil
	}
	return decodeUint64(data)
}

func encodeUint64(v uint64) []byte {
	return protowire.AppendVarint(nil, v)
}

func decodeUint64(data []byte) (uint64, error) {
	v, n := protowire.ConsumeVarint(data)
	if n < 0 {
		return 0, fmt.Errorf("corrupt uint64 record: %w", protowire.ParseError(n))
	}
	return v, nil
}
