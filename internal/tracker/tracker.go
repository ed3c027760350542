// Package tracker serializes decoded control changes into a single
// controller snapshot and notifies subscribers of every change.
package tracker

import (
	"log/slog"
	"sync"

	"github.com/PixPMusic/gopher-kontrol/internal/nanokontrol"
)

// Listener receives each applied event together with the resulting state
type Listener func(ev nanokontrol.ControlEvent, state nanokontrol.ControllerState)

// Tracker owns the controller state for one device.
// Handle may be called from the MIDI driver goroutine.
type Tracker struct {
	mu        sync.Mutex
	state     nanokontrol.ControllerState
	listeners []Listener
	logger    *slog.Logger
}

// New creates a tracker with the power-on controller state
func New(logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{logger: logger}
}

// Subscribe registers l for all subsequent events
func (t *Tracker) Subscribe(l Listener) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.listeners = append(t.listeners, l)
}

// Handle decodes one control change, applies it and notifies listeners
func (t *Tracker) Handle(controller, value uint8, timestamp int64) nanokontrol.ControlEvent {
	ev := nanokontrol.Decode(controller, value, timestamp)

	t.mu.Lock()
	t.state.Apply(ev)
	snap := t.state
	listeners := t.listeners
	t.mu.Unlock()

	t.logger.Debug("control",
		"controller", controller,
		"kind", ev.Kind.String(),
		"group", int(ev.Group),
		"value", ev.Value,
		"time", ev.Timestamp,
	)

	for _, l := range listeners {
		l(ev, snap)
	}
	return ev
}

// Snapshot returns a copy of the current state
func (t *Tracker) Snapshot() nanokontrol.ControllerState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Reset returns the state to power-on defaults, e.g. after the device is
// reconnected and its physical positions are unknown again
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = nanokontrol.ControllerState{}
}
