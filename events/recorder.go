package events

// Recorder is the ledger's event hook. Emission is not part of ledger
// semantics: the core records events only after all state writes commit, and
// the default recorder drops them. An observability layer attaches by
// swapping in a real implementation (e.g. the EventBus).
type Recorder interface {
	Record(event LedgerEvent)
}

// NopRecorder discards every event. It is the default hook.
type NopRecorder struct{}

func (NopRecorder) Record(LedgerEvent) {}

// BusRecorder publishes events to an EventBus
type BusRecorder struct {
	bus *EventBus
}

func NewBusRecorder(bus *EventBus) *BusRecorder {
	return &BusRecorder{bus: bus}
}

func (r *BusRecorder) Record(event LedgerEvent) {
	r.bus.Publish(event)
}
