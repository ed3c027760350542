package tracker

import (
	"github.com/PixPMusic/gopher-kontrol/internal/midi"
)

// Source delivers raw Control Changes from named input ports
type Source interface {
	ListInPorts() []string
	StartListening(inPortName string, channel int, callback midi.ControlCallback) (func(), error)
}

// Attach connects the tracker to the first input port matching pattern.
// It returns the resolved port name and a function that stops listening.
func (t *Tracker) Attach(src Source, pattern string, channel int) (string, func(), error) {
	port, err := midi.MatchPort(src.ListInPorts(), pattern)
	if err != nil {
		return "", nil, err
	}

	stop, err := src.StartListening(port, channel, func(_ string, controller, value uint8, timestampms int32) {
		t.Handle(controller, value, int64(timestampms))
	})
	if err != nil {
		return "", nil, err
	}

	t.logger.Info("tracking controller", "port", port)
	return port, stop, nil
}
