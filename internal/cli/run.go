package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2/app"

	"github.com/PixPMusic/gopher-kontrol/internal/config"
	"github.com/PixPMusic/gopher-kontrol/internal/midi"
	"github.com/PixPMusic/gopher-kontrol/internal/nanokontrol"
	"github.com/PixPMusic/gopher-kontrol/internal/tracker"
	"github.com/PixPMusic/gopher-kontrol/internal/tray"
	"github.com/PixPMusic/gopher-kontrol/internal/window"
)

// newSource is swapped out in tests
var newSource = func(logger *slog.Logger) (tracker.Source, func()) {
	mgr := midi.NewManager(logger)
	return mgr, mgr.Close
}

// runHeadless prints every decoded event until ctx is cancelled or the
// process is interrupted
func runHeadless(ctx context.Context, cfg *config.Config, src tracker.Source, logger *slog.Logger, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	tr := tracker.New(logger)
	tr.Subscribe(func(ev nanokontrol.ControlEvent, _ nanokontrol.ControllerState) {
		fmt.Fprintln(out, ev.String())
	})

	port, stop, err := tr.Attach(src, cfg.Device.InPort, cfg.Device.Channel)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer stop()

	logger.Info("headless mode, press Ctrl+C to exit", "port", port)
	<-ctx.Done()
	return nil
}

func runGUI(cfg *config.Config, logger *slog.Logger) error {
	src, closeSrc := newSource(logger)
	defer closeSrc()

	fyneApp := app.NewWithID("com.pixpmusic.gopherkontrol")
	tr := tracker.New(logger)
	monitor := window.NewMonitorWindow(fyneApp, cfg, src, tr, logger)

	tray.Setup(fyneApp, cfg, tray.Callbacks{
		OnOpen: monitor.Show,
		OnQuit: fyneApp.Quit,
	})

	if err := monitor.StartListening(); err != nil {
		logger.Warn("controller not connected", "err", err)
	}
	defer monitor.StopListening()

	if !cfg.FirstLaunchCompleted {
		cfg.FirstLaunchCompleted = true
		if err := cfg.Save(); err != nil {
			logger.Error("failed to save config", "err", err)
		}
		monitor.Show()
	}

	// Blocks until Quit
	fyneApp.Run()
	return nil
}
