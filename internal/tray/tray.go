package tray

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"

	"github.com/PixPMusic/gopher-kontrol/internal/config"
	"github.com/PixPMusic/gopher-kontrol/internal/startup"
)

// Callbacks for tray menu actions
type Callbacks struct {
	OnOpen func()
	OnQuit func()
}

// Setup installs the system tray menu when running as a desktop app
func Setup(app fyne.App, cfg *config.Config, callbacks Callbacks) {
	desk, ok := app.(desktop.App)
	if !ok {
		return
	}
	menu := newMenu(cfg, callbacks)
	desk.SetSystemTrayMenu(menu)
	desk.SetSystemTrayIcon(theme.MediaRecordIcon())
}

func newMenu(cfg *config.Config, callbacks Callbacks) *fyne.Menu {
	openItem := fyne.NewMenuItem("Open Monitor", func() {
		if callbacks.OnOpen != nil {
			callbacks.OnOpen()
		}
	})

	startupItem := fyne.NewMenuItem("Open at Startup", nil)
	startupItem.Checked = cfg.OpenAtStartup

	quitItem := fyne.NewMenuItem("Quit", func() {
		if callbacks.OnQuit != nil {
			callbacks.OnQuit()
		}
	})

	menu := fyne.NewMenu("GopherKontrol",
		openItem,
		fyne.NewMenuItemSeparator(),
		startupItem,
		fyne.NewMenuItemSeparator(),
		quitItem,
	)

	startupItem.Action = func() {
		enable := !startupItem.Checked
		toggle := startup.Disable
		if enable {
			toggle = startup.Enable
		}
		if err := toggle(); err != nil {
			slog.Warn("tray: failed to change startup registration", "enable", enable, "err", err)
			return
		}
		startupItem.Checked = enable
		cfg.OpenAtStartup = enable
		if err := cfg.Save(); err != nil {
			slog.Warn("tray: failed to save config", "err", err)
		}
		menu.Refresh()
	}

	return menu
}
