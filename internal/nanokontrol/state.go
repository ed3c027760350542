package nanokontrol

// ChannelState is the snapshot of one channel strip
type ChannelState struct {
	Knob   uint8
	Slider uint8
	Solo   bool
	Mute   bool
	Record bool
}

// ControllerState is the snapshot of the whole device.
// The zero value is the power-on state.
type ControllerState struct {
	Channels [NumChannels]ChannelState

	TrackLeft   bool
	TrackRight  bool
	Cycle       bool
	Set         bool
	MarkerLeft  bool
	MarkerRight bool
	Rewind      bool
	FastForward bool
	Stop        bool
	Play        bool
	Record      bool
}

// Apply folds ev into state
func Apply(state *ControllerState, ev ControlEvent) {
	state.Apply(ev)
}

// Apply overwrites the single field ev targets with ev's value.
// Channel events with a group outside 0-7 leave the state untouched.
func (s *ControllerState) Apply(ev ControlEvent) {
	if ev.Kind.IsChannel() {
		if !ev.Group.Valid() {
			return
		}
		ch := &s.Channels[ev.Group]
		switch ev.Kind {
		case KindKnob:
			ch.Knob = ev.Value
		case KindSlider:
			ch.Slider = ev.Value
		case KindSolo:
			ch.Solo = ev.Pressed()
		case KindMute:
			ch.Mute = ev.Pressed()
		case KindRecordArm:
			ch.Record = ev.Pressed()
		}
		return
	}

	if field := s.transportField(ev.Kind); field != nil {
		*field = ev.Pressed()
	}
}

// Transport returns the state of a global control
func (s *ControllerState) Transport(kind ControlKind) bool {
	if field := s.transportField(kind); field != nil {
		return *field
	}
	return false
}

func (s *ControllerState) transportField(kind ControlKind) *bool {
	switch kind {
	case KindTrackLeft:
		return &s.TrackLeft
	case KindTrackRight:
		return &s.TrackRight
	case KindCycle:
		return &s.Cycle
	case KindSet:
		return &s.Set
	case KindMarkerLeft:
		return &s.MarkerLeft
	case KindMarkerRight:
		return &s.MarkerRight
	case KindRewind:
		return &s.Rewind
	case KindFastForward:
		return &s.FastForward
	case KindStop:
		return &s.Stop
	case KindPlay:
		return &s.Play
	case KindRecord:
		return &s.Record
	}
	return nil
}
