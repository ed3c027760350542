package window

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/PixPMusic/gopher-kontrol/internal/config"
	"github.com/PixPMusic/gopher-kontrol/internal/nanokontrol"
	"github.com/PixPMusic/gopher-kontrol/internal/tracker"
)

const noPort = "(Auto)"

// MonitorWindow shows the live state of the controller
type MonitorWindow struct {
	window  fyne.Window
	app     fyne.App
	cfg     *config.Config
	source  tracker.Source
	tracker *tracker.Tracker
	logger  *slog.Logger

	strips    [nanokontrol.NumChannels]*stripView
	transport map[nanokontrol.ControlKind]*indicator
	lastEvent *widget.Label
	status    *widget.Label
	portList  *widget.Select

	stopListening func()
}

// NewMonitorWindow creates the monitor window and subscribes it to tr
func NewMonitorWindow(app fyne.App, cfg *config.Config, source tracker.Source, tr *tracker.Tracker, logger *slog.Logger) *MonitorWindow {
	if logger == nil {
		logger = slog.Default()
	}
	win := app.NewWindow("GopherKontrol")

	mw := &MonitorWindow{
		window:    win,
		app:       app,
		cfg:       cfg,
		source:    source,
		tracker:   tr,
		logger:    logger,
		transport: make(map[nanokontrol.ControlKind]*indicator),
	}

	mw.setupUI()
	mw.render(tr.Snapshot())

	tr.Subscribe(func(ev nanokontrol.ControlEvent, state nanokontrol.ControllerState) {
		fyne.Do(func() {
			mw.lastEvent.SetText(ev.String())
			mw.render(state)
		})
	})

	win.Resize(fyne.NewSize(900, 420))
	win.CenterOnScreen()

	win.SetCloseIntercept(func() {
		win.Hide()
	})

	return mw
}

// Show brings the window to the front
func (mw *MonitorWindow) Show() {
	mw.window.Show()
	mw.window.RequestFocus()
}

func (mw *MonitorWindow) setupUI() {
	strips := make([]fyne.CanvasObject, 0, nanokontrol.NumChannels)
	for i := range mw.strips {
		mw.strips[i] = newStripView(i)
		strips = append(strips, widget.NewCard("", "", mw.strips[i].content))
	}

	transport := make([]fyne.CanvasObject, 0, len(nanokontrol.TransportKinds))
	for _, kind := range nanokontrol.TransportKinds {
		color := theme.ColorNamePrimary
		if kind == nanokontrol.KindRecord {
			color = theme.ColorNameError
		}
		ind := newIndicator(color)
		mw.transport[kind] = ind
		transport = append(transport, withCaption(ind.rect, kind.String()))
	}

	mw.lastEvent = widget.NewLabel("No events yet")
	mw.lastEvent.TextStyle = fyne.TextStyle{Monospace: true}

	mw.window.SetContent(container.NewBorder(
		mw.createDeviceBar(),
		container.NewVBox(
			widget.NewSeparator(),
			container.NewGridWithColumns(len(transport), transport...),
			mw.lastEvent,
		),
		nil, nil,
		container.NewGridWithColumns(nanokontrol.NumChannels, strips...),
	))
}

// render copies a controller snapshot onto the widgets
func (mw *MonitorWindow) render(state nanokontrol.ControllerState) {
	for i, strip := range mw.strips {
		strip.render(state.Channels[i])
	}
	for kind, ind := range mw.transport {
		ind.set(state.Transport(kind))
	}
}
