package syncengine

import (
	"context"
	"sync"

	"github.com/dashwallet/walletd/internal/core/ports"
)

const eventQueueMaxSize = 100

// Manual is a SyncEngine backed by an in-process channel. It records the
// set of addresses it was asked to watch and lets callers inject activity
// and progress events. It serves as the default wiring while no external
// engine is attached and as the engine double in tests.
type Manual struct {
	mtx     sync.RWMutex
	watched map[string]struct{}
	events  chan ports.Event
}

// NewManual returns an engine with an empty watch set.
func NewManual() *Manual {
	return &Manual{
		watched: map[string]struct{}{},
		events:  make(chan ports.Event, eventQueueMaxSize),
	}
}

// WatchAddress records the address in the watch set.
func (m *Manual) WatchAddress(_ context.Context, address string) error {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.watched[address] = struct{}{}
	return nil
}

// Events returns the channel the injected events are delivered on.
func (m *Manual) Events() <-chan ports.Event {
	return m.events
}

// IsWatching returns whether the address has been registered.
func (m *Manual) IsWatching(address string) bool {
	m.mtx.RLock()
	defer m.mtx.RUnlock()

	_, ok := m.watched[address]
	return ok
}

// EmitActivity delivers an activity event to the consumer. The address is
// deliberately not checked against the watch set, so protocol errors can be
// exercised end to end.
func (m *Manual) EmitActivity(event ports.ActivityEvent) {
	m.events <- event
}

// EmitProgress delivers a sync progress event to the consumer.
func (m *Manual) EmitProgress(event ports.SyncProgressEvent) {
	m.events <- event
}

// Stop tells the consumer to quit and closes the event channel.
func (m *Manual) Stop() {
	m.events <- ports.QuitEvent{}
	close(m.events)
}
