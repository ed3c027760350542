package window

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// ============ DEVICE BAR ============

func (mw *MonitorWindow) createDeviceBar() fyne.CanvasObject {
	header := widget.NewLabel("Input Port")
	header.TextStyle = fyne.TextStyle{Bold: true}

	mw.portList = widget.NewSelect(nil, func(s string) {
		if s == noPort {
			mw.cfg.Device.InPort = ""
		} else {
			mw.cfg.Device.InPort = s
		}
	})
	mw.refreshPorts()

	refreshBtn := widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), func() {
		mw.refreshPorts()
	})

	listenBtn := widget.NewButtonWithIcon("Listen", theme.MediaPlayIcon(), func() {
		mw.saveAndListen()
	})
	listenBtn.Importance = widget.HighImportance

	mw.status = widget.NewLabel("Not connected")

	return container.NewVBox(
		container.NewBorder(nil, nil, header, container.NewHBox(refreshBtn, listenBtn), mw.portList),
		mw.status,
		widget.NewSeparator(),
	)
}

func (mw *MonitorWindow) refreshPorts() {
	mw.portList.Options = append([]string{noPort}, mw.source.ListInPorts()...)
	if mw.cfg.Device.InPort == "" {
		mw.portList.SetSelected(noPort)
	} else {
		mw.portList.SetSelected(mw.cfg.Device.InPort)
	}
	mw.portList.Refresh()
}

// StartListening (re)connects to the configured input port
func (mw *MonitorWindow) StartListening() error {
	mw.StopListening()
	mw.tracker.Reset()
	mw.render(mw.tracker.Snapshot())

	port, stop, err := mw.tracker.Attach(mw.source, mw.cfg.Device.InPort, mw.cfg.Device.Channel)
	if err != nil {
		mw.status.SetText("Not connected: " + err.Error())
		return err
	}

	mw.stopListening = stop
	mw.status.SetText("Listening on " + port)
	return nil
}

// StopListening disconnects from the current input port, if any
func (mw *MonitorWindow) StopListening() {
	if mw.stopListening != nil {
		mw.stopListening()
		mw.stopListening = nil
	}
}

func (mw *MonitorWindow) saveAndListen() {
	if err := mw.cfg.Save(); err != nil {
		mw.logger.Error("failed to save config", "err", err)
	}
	if err := mw.StartListening(); err != nil {
		mw.logger.Warn("failed to start listener", "port", mw.cfg.Device.InPort, "err", err)
	}
}
