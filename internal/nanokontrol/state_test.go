package nanokontrol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// allEvents produces one pressed and one released event for every control
func allEvents() []ControlEvent {
	var events []ControlEvent
	for cc := 0; cc < 128; cc++ {
		events = append(events, Decode(uint8(cc), 0, int64(cc)), Decode(uint8(cc), 99, int64(cc)))
	}
	return events
}

func TestApplySlider(t *testing.T) {
	var state ControllerState

	ev := Decode(0, 64, 1000)
	assert.Equal(t, ControlEvent{Kind: KindSlider, Group: 0, Value: 64, Timestamp: 1000}, ev)

	Apply(&state, ev)

	want := ControllerState{}
	want.Channels[0].Slider = 64
	assert.Equal(t, want, state)
}

func TestApplySolo(t *testing.T) {
	var state ControllerState

	ev := Decode(35, 127, 2000)
	assert.Equal(t, KindSolo, ev.Kind)
	assert.Equal(t, Group(3), ev.Group)
	assert.Equal(t, uint8(127), ev.Value)

	state.Apply(ev)

	want := ControllerState{}
	want.Channels[3].Solo = true
	assert.Equal(t, want, state)
}

func TestApplyLastValueWins(t *testing.T) {
	var state ControllerState

	state.Apply(ControlEvent{Kind: KindKnob, Group: 2, Value: 10})
	state.Apply(ControlEvent{Kind: KindKnob, Group: 2, Value: 90})

	assert.Equal(t, uint8(90), state.Channels[2].Knob)
}

func TestApplyIsIdempotent(t *testing.T) {
	var seed ControllerState
	seed.Channels[4].Mute = true
	seed.Channels[1].Knob = 33
	seed.Play = true

	for _, ev := range allEvents() {
		once := seed
		once.Apply(ev)
		twice := once
		twice.Apply(ev)
		assert.Equal(t, once, twice, ev.String())
	}
}

func TestApplyTouchesOneField(t *testing.T) {
	for _, ev := range allEvents() {
		// Start from the inverse of what ev writes so the target field must change.
		var before ControllerState
		if !ev.Pressed() {
			before = saturated()
		}
		after := before
		after.Apply(ev)

		assert.Equal(t, 1, fieldDiff(before, after), ev.String())
	}
}

func TestApplyTransportFields(t *testing.T) {
	for _, kind := range TransportKinds {
		var state ControllerState
		state.Apply(ControlEvent{Kind: kind, Group: GroupGlobal, Value: 127})
		assert.True(t, state.Transport(kind), kind.String())

		state.Apply(ControlEvent{Kind: kind, Group: GroupGlobal, Value: 0})
		assert.Equal(t, ControllerState{}, state, kind.String())
	}
}

func TestApplyRecordButtonsTargetDifferentFields(t *testing.T) {
	var state ControllerState

	state.Apply(Decode(45, 127, 0))
	assert.True(t, state.Record)
	for _, ch := range state.Channels {
		assert.False(t, ch.Record)
	}

	state = ControllerState{}
	state.Apply(Decode(70, 127, 0))
	assert.True(t, state.Channels[6].Record)
	assert.False(t, state.Record)
}

func TestApplyIgnoresChannelEventWithoutGroup(t *testing.T) {
	var state ControllerState

	state.Apply(ControlEvent{Kind: KindKnob, Group: GroupGlobal, Value: 50})
	state.Apply(ControlEvent{Kind: KindMute, Group: 8, Value: 1})

	assert.Equal(t, ControllerState{}, state)
}

func TestTransportUnknownKind(t *testing.T) {
	state := saturated()
	assert.False(t, state.Transport(KindKnob))
}

func saturated() ControllerState {
	var s ControllerState
	for i := range s.Channels {
		s.Channels[i] = ChannelState{Knob: 127, Slider: 127, Solo: true, Mute: true, Record: true}
	}
	for _, kind := range TransportKinds {
		*s.transportField(kind) = true
	}
	return s
}

// fieldDiff counts the fields that differ between two states
func fieldDiff(a, b ControllerState) int {
	n := 0
	for i := range a.Channels {
		ca, cb := a.Channels[i], b.Channels[i]
		if ca.Knob != cb.Knob {
			n++
		}
		if ca.Slider != cb.Slider {
			n++
		}
		if ca.Solo != cb.Solo {
			n++
		}
		if ca.Mute != cb.Mute {
			n++
		}
		if ca.Record != cb.Record {
			n++
		}
	}
	for _, kind := range TransportKinds {
		if a.Transport(kind) != b.Transport(kind) {
			n++
		}
	}
	return n
}
