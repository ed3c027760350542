// Package nanokontrol decodes Korg nanoKONTROL2 control changes and tracks
// the physical state of the controller.
package nanokontrol

// NumChannels is the number of channel strips on the device
const NumChannels = 8

// ControlKind identifies a logical control on the device
type ControlKind uint8

const (
	KindSolo ControlKind = iota
	KindMute
	KindRecordArm // per-channel record button
	KindKnob
	KindSlider
	KindTrackLeft
	KindTrackRight
	KindCycle
	KindSet
	KindMarkerLeft
	KindMarkerRight
	KindRewind
	KindFastForward
	KindStop
	KindPlay
	KindRecord // transport record button
)

var kindNames = [...]string{
	KindSolo:        "Solo",
	KindMute:        "Mute",
	KindRecordArm:   "RecordArm",
	KindKnob:        "Knob",
	KindSlider:      "Slider",
	KindTrackLeft:   "TrackLeft",
	KindTrackRight:  "TrackRight",
	KindCycle:       "Cycle",
	KindSet:         "Set",
	KindMarkerLeft:  "MarkerLeft",
	KindMarkerRight: "MarkerRight",
	KindRewind:      "Rewind",
	KindFastForward: "FastForward",
	KindStop:        "Stop",
	KindPlay:        "Play",
	KindRecord:      "Record",
}

// TransportKinds lists the global controls in front panel order
var TransportKinds = []ControlKind{
	KindTrackLeft, KindTrackRight,
	KindCycle,
	KindSet, KindMarkerLeft, KindMarkerRight,
	KindRewind, KindFastForward, KindStop, KindPlay, KindRecord,
}

func (k ControlKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// IsContinuous reports whether the control carries a 0-127 position
// rather than a pressed/released state
func (k ControlKind) IsContinuous() bool {
	return k == KindKnob || k == KindSlider
}

// IsChannel reports whether the control belongs to a channel strip
func (k ControlKind) IsChannel() bool {
	switch k {
	case KindSolo, KindMute, KindRecordArm, KindKnob, KindSlider:
		return true
	}
	return false
}

// Group is a channel strip index (0-7) or GroupGlobal
type Group int8

// GroupGlobal marks transport and other controls outside the channel strips
const GroupGlobal Group = -1

// Valid reports whether g indexes a channel strip
func (g Group) Valid() bool {
	return g >= 0 && g < NumChannels
}

// groupOf derives the strip index for a per-channel controller number.
// Every per-channel range starts on a multiple of 8.
func groupOf(controller uint8) Group {
	return Group(controller % NumChannels)
}
