package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koinledger/koin/types"
)

func TestEventBusSubscribePublish(t *testing.T) {
	bus := NewEventBus()
	id, ch := bus.Subscribe()
	require.NotEmpty(t, id)
	assert.Equal(t, 1, bus.GetTotalSubscriptions())

	from := types.Address("alice")
	to := types.Address("bob")
	bus.Publish(NewTransferEvent(from, to, 75))

	select {
	case ev := <-ch:
		assert.Equal(t, EventTransfer, ev.Type())
		transfer, ok := ev.(*TransferEvent)
		require.True(t, ok)
		assert.True(t, transfer.From.Equal(from))
		assert.True(t, transfer.To.Equal(to))
		assert.Equal(t, uint64(75), transfer.Value)
	case <-time.After(time.Second):
		t.Fatal("expected event was not delivered")
	}
}

func TestEventBusUnsubscribe(t *testing.T) {
	bus := NewEventBus()
	id, ch := bus.Subscribe()

	assert.True(t, bus.Unsubscribe(id))
	assert.Equal(t, 0, bus.GetTotalSubscriptions())
	_, open := <-ch
	assert.False(t, open, "channel must be closed on unsubscribe")

	assert.False(t, bus.Unsubscribe(id))
}

func TestEventImpactedAccounts(t *testing.T) {
	alice := types.Address("alice")
	bob := types.Address("bob")

	assert.Equal(t, []types.Address{bob, alice}, NewTransferEvent(alice, bob, 1).Impacted())
	assert.Equal(t, []types.Address{bob}, NewMintEvent(bob, 1).Impacted())
	assert.Equal(t, []types.Address{alice}, NewBurnEvent(alice, 1).Impacted())
}

func TestBusRecorderForwardsToBus(t *testing.T) {
	bus := NewEventBus()
	_, ch := bus.Subscribe()

	recorder := NewBusRecorder(bus)
	recorder.Record(NewMintEvent(types.Address("alice"), 10))

	select {
	case ev := <-ch:
		assert.Equal(t, EventMint, ev.Type())
	case <-time.After(time.Second):
		t.Fatal("recorder did not publish to the bus")
	}
}
