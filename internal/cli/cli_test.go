package cli

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PixPMusic/gopher-kontrol/internal/config"
	"github.com/PixPMusic/gopher-kontrol/internal/midi"
	"github.com/PixPMusic/gopher-kontrol/internal/tracker"
)

// replaySource replays recorded control changes as soon as listening starts
type replaySource struct {
	ports   []string
	events  [][3]uint8
	port    string
	channel int
}

func (r *replaySource) ListInPorts() []string { return r.ports }

func (r *replaySource) StartListening(inPortName string, channel int, callback midi.ControlCallback) (func(), error) {
	r.port = inPortName
	r.channel = channel
	for i, ev := range r.events {
		callback(inPortName, ev[0], ev[1], int32(ev[2])*1000+int32(i))
	}
	return func() {}, nil
}

func useSource(t *testing.T, src tracker.Source) {
	t.Helper()
	orig := newSource
	newSource = func(*slog.Logger) (tracker.Source, func()) { return src, func() {} }
	t.Cleanup(func() { newSource = orig })
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	base := []string{
		"--config", filepath.Join(t.TempDir(), "config.json"),
		"--env-file", filepath.Join(t.TempDir(), "missing.env"),
	}
	cmd.SetArgs(append(base, args...))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestHeadlessPrintsEvents(t *testing.T) {
	src := &replaySource{
		ports:  []string{"nanoKONTROL2 MIDI 1"},
		events: [][3]uint8{{0, 64, 1}, {35, 127, 2}, {41, 0, 3}},
	}
	useSource(t, src)

	out, err := run(t, "--headless")
	require.NoError(t, err)

	assert.Equal(t,
		"Slider group=0 value=64 time=1000\n"+
			"Solo group=3 pressed=true time=2001\n"+
			"Play group=global pressed=false time=3002\n",
		out)
	assert.Equal(t, "nanoKONTROL2 MIDI 1", src.port)
	assert.Equal(t, config.ChannelAny, src.channel)
}

func TestHeadlessFlagsOverrideConfig(t *testing.T) {
	src := &replaySource{ports: []string{"nanoKONTROL2", "Other Controller"}}
	useSource(t, src)

	_, err := run(t, "--headless", "--port", "other", "--channel", "9")
	require.NoError(t, err)
	assert.Equal(t, "Other Controller", src.port)
	assert.Equal(t, 9, src.channel)
}

func TestHeadlessEnvOverridesConfig(t *testing.T) {
	t.Setenv(config.EnvInPort, "other")
	src := &replaySource{ports: []string{"nanoKONTROL2", "Other Controller"}}
	useSource(t, src)

	_, err := run(t, "--headless")
	require.NoError(t, err)
	assert.Equal(t, "Other Controller", src.port)
}

func TestHeadlessNoDevice(t *testing.T) {
	useSource(t, &replaySource{})

	_, err := run(t, "--headless")
	assert.ErrorIs(t, err, midi.ErrPortNotFound)
}

func TestInvalidChannel(t *testing.T) {
	useSource(t, &replaySource{ports: []string{"nanoKONTROL2"}})

	_, err := run(t, "--headless", "--channel", "16")
	assert.ErrorContains(t, err, "invalid channel")
}

func TestPortsCommand(t *testing.T) {
	useSource(t, &replaySource{ports: []string{"nanoKONTROL2 MIDI 1", "Launchpad S"}})

	out, err := run(t, "ports")
	require.NoError(t, err)
	assert.Equal(t, "nanoKONTROL2 MIDI 1\nLaunchpad S\n", out)
}

func TestPortsCommandEmpty(t *testing.T) {
	useSource(t, &replaySource{})

	out, err := run(t, "ports")
	require.NoError(t, err)
	assert.Equal(t, "no MIDI input ports found\n", out)
}
