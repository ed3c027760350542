package startup

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	appLabel       = "com.pixpmusic.gopher-kontrol"
	appDisplayName = "GopherKontrol"
)

// Enable registers the application to launch at login
func Enable() error {
	execPath, err := os.Executable()
	if err != nil {
		return err
	}

	switch runtime.GOOS {
	case "darwin":
		return writeFile(macOSPlistPath(), macOSPlist(execPath))
	case "linux":
		return writeFile(linuxDesktopPath(), linuxDesktopEntry(execPath))
	case "windows":
		return exec.Command("reg", "add", windowsRunKey,
			"/v", appDisplayName,
			"/t", "REG_SZ",
			"/d", execPath,
			"/f").Run()
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}

// Disable removes the launch-at-login registration
func Disable() error {
	switch runtime.GOOS {
	case "darwin":
		return removeFile(macOSPlistPath())
	case "linux":
		return removeFile(linuxDesktopPath())
	case "windows":
		output, err := exec.Command("reg", "delete", windowsRunKey, "/v", appDisplayName, "/f").CombinedOutput()
		if err != nil && !strings.Contains(string(output), "unable to find") {
			return err
		}
		return nil
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}

// IsEnabled checks if the application is registered for launch at login
func IsEnabled() bool {
	switch runtime.GOOS {
	case "darwin":
		return fileExists(macOSPlistPath())
	case "linux":
		return fileExists(linuxDesktopPath())
	case "windows":
		return exec.Command("reg", "query", windowsRunKey, "/v", appDisplayName).Run() == nil
	default:
		return false
	}
}

// --- macOS ---

func macOSPlistPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, "Library", "LaunchAgents", appLabel+".plist")
}

func macOSPlist(execPath string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
    <key>Label</key>
    <string>%s</string>
    <key>ProgramArguments</key>
    <array>
        <string>%s</string>
    </array>
    <key>RunAtLoad</key>
    <true/>
</dict>
</plist>
`, appLabel, execPath)
}

// --- Linux ---

func linuxDesktopPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "autostart", "gopher-kontrol.desktop")
}

func linuxDesktopEntry(execPath string) string {
	return fmt.Sprintf(`[Desktop Entry]
Type=Application
Name=%s
Comment=nanoKONTROL2 state monitor
Exec=%s
Hidden=false
NoDisplay=false
X-GNOME-Autostart-enabled=true
`, appDisplayName, execPath)
}

// --- Windows ---

const windowsRunKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`

// --- helpers ---

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}

func removeFile(path string) error {
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil // already disabled
	}
	return err
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
