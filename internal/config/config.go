package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Environment variables that override the stored configuration
const (
	EnvInPort  = "KONTROL_IN_PORT"
	EnvChannel = "KONTROL_CHANNEL"
	EnvDebug   = "KONTROL_DEBUG"
)

// ChannelAny accepts Control Changes on every MIDI channel
const ChannelAny = -1

// DeviceConfig holds configuration for the controller being tracked
type DeviceConfig struct {
	ID      string `json:"id"`      // Unique identifier
	Name    string `json:"name"`    // User-friendly name
	InPort  string `json:"in_port"` // MIDI input port name or substring
	Channel int    `json:"channel"` // 0-15, or -1 for any channel
}

// NewDeviceConfig creates a device config with a generated ID
func NewDeviceConfig() DeviceConfig {
	return DeviceConfig{
		ID:      uuid.New().String(),
		Name:    "nanoKONTROL2",
		Channel: ChannelAny,
	}
}

// Config holds application configuration
type Config struct {
	FirstLaunchCompleted bool         `json:"first_launch_completed"`
	OpenAtStartup        bool         `json:"open_at_startup"`
	Debug                bool         `json:"debug"`
	Device               DeviceConfig `json:"device"`

	path string
}

// configDir returns the platform-appropriate config directory
func configDir() (string, error) {
	configHome, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configHome, "gopher-kontrol"), nil
}

// ConfigPath returns the full path to the config file
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Default returns the configuration used before anything is saved
func Default() *Config {
	return &Config{Device: NewDeviceConfig()}
}

// Load reads the config from the default location
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom reads the config at path, returning defaults if not found
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := Default()
		cfg.path = path
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.path = path

	if cfg.Device.ID == "" {
		cfg.Device.ID = uuid.New().String()
	}

	return cfg, nil
}

// Save writes the config to the file it was loaded from
func (c *Config) Save() error {
	if c.path == "" {
		configPath, err := ConfigPath()
		if err != nil {
			return err
		}
		c.path = configPath
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.path, data, 0644)
}

// LoadEnvFile loads variables from a .env file into the process environment.
// A missing file is not an error.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// ApplyEnv overrides fields from the environment. Malformed numbers and
// booleans are ignored.
func (c *Config) ApplyEnv() {
	if port, ok := os.LookupEnv(EnvInPort); ok {
		c.Device.InPort = port
	}
	if raw, ok := os.LookupEnv(EnvChannel); ok {
		if ch, err := strconv.Atoi(raw); err == nil && ch >= ChannelAny && ch <= 15 {
			c.Device.Channel = ch
		}
	}
	if raw, ok := os.LookupEnv(EnvDebug); ok {
		if debug, err := strconv.ParseBool(raw); err == nil {
			c.Debug = debug
		}
	}
}
