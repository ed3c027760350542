package midi

import "gitlab.com/gomidi/midi/v2"

// ChannelAny disables MIDI channel filtering
const ChannelAny = -1

// ControlChange is a decoded Control Change message
type ControlChange struct {
	Channel    uint8
	Controller uint8
	Value      uint8
}

// ParseControlChange extracts a Control Change from msg.
// Returns ok=false for other message types or when the channel does not match.
func ParseControlChange(msg midi.Message, channel int) (cc ControlChange, ok bool) {
	if !msg.GetControlChange(&cc.Channel, &cc.Controller, &cc.Value) {
		return ControlChange{}, false
	}
	if channel != ChannelAny && int(cc.Channel) != channel {
		return ControlChange{}, false
	}
	return cc, true
}
