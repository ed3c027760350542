package nanokontrol

import "fmt"

// ControlEvent is one decoded control change
type ControlEvent struct {
	Kind      ControlKind
	Group     Group
	Value     uint8 // raw 0-127
	Timestamp int64 // milliseconds, as reported by the MIDI driver
}

// AsPressed interprets a raw value as a button state
func AsPressed(value uint8) bool {
	return value != 0
}

// Pressed returns the button interpretation of the event's value
func (e ControlEvent) Pressed() bool {
	return AsPressed(e.Value)
}

func (e ControlEvent) String() string {
	group := "global"
	if e.Group != GroupGlobal {
		group = fmt.Sprintf("%d", e.Group)
	}
	if e.Kind.IsContinuous() {
		return fmt.Sprintf("%s group=%s value=%d time=%d", e.Kind, group, e.Value, e.Timestamp)
	}
	return fmt.Sprintf("%s group=%s pressed=%t time=%d", e.Kind, group, e.Pressed(), e.Timestamp)
}

// transportControllers maps the fixed controller numbers of the global buttons
var transportControllers = map[uint8]ControlKind{
	41: KindPlay,
	42: KindStop,
	43: KindRewind,
	44: KindFastForward,
	45: KindRecord,
	46: KindCycle,
	58: KindTrackLeft,
	59: KindTrackRight,
	60: KindSet,
	61: KindMarkerLeft,
	62: KindMarkerRight,
}

// fallbackKind is reported for controller numbers the device does not use
const fallbackKind = KindCycle

// Decode maps a control change to the control it came from.
// Unknown controller numbers decode to a global Cycle event.
func Decode(controller, value uint8, timestamp int64) ControlEvent {
	ev := ControlEvent{
		Kind:      fallbackKind,
		Group:     GroupGlobal,
		Value:     value,
		Timestamp: timestamp,
	}

	switch {
	case controller <= 7:
		ev.Kind = KindSlider
	case controller >= 16 && controller <= 23:
		ev.Kind = KindKnob
	case controller >= 32 && controller <= 39:
		ev.Kind = KindSolo
	case controller >= 48 && controller <= 55:
		ev.Kind = KindMute
	case controller >= 64 && controller <= 71:
		ev.Kind = KindRecordArm
	default:
		if kind, ok := transportControllers[controller]; ok {
			ev.Kind = kind
		}
		return ev
	}

	ev.Group = groupOf(controller)
	return ev
}
