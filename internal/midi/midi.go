package midi

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// DefaultPortPattern matches the input port the nanoKONTROL2 registers
const DefaultPortPattern = "nanoKONTROL2"

// ExcludedPortPatterns are virtual/system ports never picked automatically
var ExcludedPortPatterns = []string{"Midi Through", "Through Port", "Dummy"}

// ErrPortNotFound is returned when no input port matches a name or pattern
var ErrPortNotFound = errors.New("input port not found")

// ControlCallback is called for every Control Change received on a port
type ControlCallback func(portName string, controller, value uint8, timestampms int32)

// Manager handles MIDI device discovery and listening
type Manager struct {
	mu     sync.RWMutex
	logger *slog.Logger
}

// NewManager creates a new MIDI manager
func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{logger: logger}
}

// Close cleans up the MIDI driver
func (m *Manager) Close() {
	midi.CloseDriver()
}

// ListInPorts returns the names of available MIDI input ports
func (m *Manager) ListInPorts() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ins := midi.GetInPorts()
	names := make([]string, 0, len(ins))
	for _, in := range ins {
		names = append(names, in.String())
	}
	return names
}

// GetInPort returns an input port by exact name
func (m *Manager) GetInPort(name string) (drivers.In, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, in := range midi.GetInPorts() {
		if in.String() == name {
			return in, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPortNotFound, name)
}

// MatchPort picks the first port containing pattern, case-insensitively.
// An exact name always wins and excluded ports are skipped.
func MatchPort(ports []string, pattern string) (string, error) {
	if pattern == "" {
		pattern = DefaultPortPattern
	}

	for _, name := range ports {
		if name == pattern {
			return name, nil
		}
	}
	for _, name := range ports {
		if isExcluded(name) {
			continue
		}
		if containsCI(name, pattern) {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrPortNotFound, pattern)
}

// StartListening begins forwarding Control Change messages from the named
// input port. channel filters by MIDI channel; ChannelAny accepts all.
func (m *Manager) StartListening(inPortName string, channel int, callback ControlCallback) (func(), error) {
	inPort, err := m.GetInPort(inPortName)
	if err != nil {
		return nil, err
	}

	stop, err := midi.ListenTo(inPort, func(msg midi.Message, timestampms int32) {
		cc, ok := ParseControlChange(msg, channel)
		if !ok {
			m.logger.Debug("midi: ignored message", "port", inPortName, "msg", msg.String())
			return
		}
		callback(inPortName, cc.Controller, cc.Value, timestampms)
	}, midi.HandleError(func(listenErr error) {
		m.logger.Warn("midi: listener error", "port", inPortName, "err", listenErr)
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to start listening: %w", err)
	}

	m.logger.Info("midi: listening", "port", inPortName, "channel", channel)
	return stop, nil
}

func isExcluded(name string) bool {
	for _, pat := range ExcludedPortPatterns {
		if containsCI(name, pat) {
			return true
		}
	}
	return false
}

func containsCI(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
