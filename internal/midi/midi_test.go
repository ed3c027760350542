package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"
)

func TestParseControlChange(t *testing.T) {
	cc, ok := ParseControlChange(midi.ControlChange(0, 35, 127), ChannelAny)
	require.True(t, ok)
	assert.Equal(t, ControlChange{Channel: 0, Controller: 35, Value: 127}, cc)
}

func TestParseControlChangeChannelFilter(t *testing.T) {
	msg := midi.ControlChange(3, 16, 64)

	_, ok := ParseControlChange(msg, 0)
	assert.False(t, ok)

	cc, ok := ParseControlChange(msg, 3)
	require.True(t, ok)
	assert.Equal(t, uint8(3), cc.Channel)
	assert.Equal(t, uint8(16), cc.Controller)
	assert.Equal(t, uint8(64), cc.Value)
}

func TestParseControlChangeIgnoresOtherMessages(t *testing.T) {
	for _, msg := range []midi.Message{
		midi.NoteOn(0, 60, 100),
		midi.NoteOff(0, 60),
		midi.ProgramChange(0, 4),
	} {
		_, ok := ParseControlChange(msg, ChannelAny)
		assert.False(t, ok, msg.String())
	}
}

func TestMatchPort(t *testing.T) {
	ports := []string{
		"Midi Through:Midi Through Port-0 14:0",
		"nanoKONTROL2:nanoKONTROL2 MIDI 1 24:0",
		"Launchpad S",
	}

	name, err := MatchPort(ports, "")
	require.NoError(t, err)
	assert.Equal(t, "nanoKONTROL2:nanoKONTROL2 MIDI 1 24:0", name)

	name, err = MatchPort(ports, "launchpad")
	require.NoError(t, err)
	assert.Equal(t, "Launchpad S", name)
}

func TestMatchPortExcludesVirtualPorts(t *testing.T) {
	ports := []string{"Midi Through:Midi Through Port-0 14:0"}

	_, err := MatchPort(ports, "port")
	assert.ErrorIs(t, err, ErrPortNotFound)

	// An exact name is still honoured.
	name, err := MatchPort(ports, ports[0])
	require.NoError(t, err)
	assert.Equal(t, ports[0], name)
}

func TestMatchPortNotFound(t *testing.T) {
	_, err := MatchPort(nil, "nanoKONTROL2")
	assert.ErrorIs(t, err, ErrPortNotFound)
}
