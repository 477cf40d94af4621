package events

import (
	"time"

	"github.com/koinledger/koin/types"
)

// EventType is an enum-like string type for ledger events
type EventType string

const (
	EventTransfer EventType = "Transfer"
	EventMint     EventType = "Mint"
	EventBurn     EventType = "Burn"
)

// LedgerEvent represents any event produced by a committed ledger operation
type LedgerEvent interface {
	Type() EventType
	Timestamp() time.Time
	// Impacted lists the accounts an observer filtering by account cares about
	Impacted() []types.Address
}

// TransferEvent describes a committed transfer
type TransferEvent struct {
	From      types.Address
	To        types.Address
	Value     uint64
	timestamp time.Time
}

func NewTransferEvent(from, to types.Address, value uint64) *TransferEvent {
	return &TransferEvent{From: from, To: to, Value: value, timestamp: time.Now()}
}

func (e *TransferEvent) Type() EventType { return EventTransfer }

func (e *TransferEvent) Timestamp() time.Time { return e.timestamp }

func (e *TransferEvent) Impacted() []types.Address {
	return []types.Address{e.To, e.From}
}

// MintEvent describes a committed mint
type MintEvent struct {
	To        types.Address
	Value     uint64
	timestamp time.Time
}

func NewMintEvent(to types.Address, value uint64) *MintEvent {
	return &MintEvent{To: to, Value: value, timestamp: time.Now()}
}

func (e *MintEvent) Type() EventType { return EventMint }

func (e *MintEvent) Timestamp() time.Time { return e.timestamp }

func (e *MintEvent) Impacted() []types.Address {
	return []types.Address{e.To}
}

// BurnEvent describes a committed burn
type BurnEvent struct {
	From      types.Address
	Value     uint64
	timestamp time.Time
}

func NewBurnEvent(from types.Address, value uint64) *BurnEvent {
	return &BurnEvent{From: from, Value: value, timestamp: time.Now()}
}

func (e *BurnEvent) Type() EventType { return EventBurn }

func (e *BurnEvent) Timestamp() time.Time { return e.timestamp }

func (e *BurnEvent) Impacted() []types.Address {
	return []types.Address{e.From}
}
