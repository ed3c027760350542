// Package cli provides the command-line interface for GopherKontrol.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/PixPMusic/gopher-kontrol/internal/config"
)

type options struct {
	configPath string
	envFile    string
	port       string
	channel    int
	headless   bool
	debug      bool
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "gopher-kontrol",
		Short: "Track the state of a Korg nanoKONTROL2",
		Long: `GopherKontrol listens to a Korg nanoKONTROL2 and keeps a live snapshot of its ` +
			`knobs, sliders and buttons. By default it opens a monitor window with a tray icon; ` +
			`--headless prints every decoded control change instead.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			logger := newLogger(cfg.Debug, cmd.ErrOrStderr())

			if opts.headless {
				src, closeSrc := newSource(logger)
				defer closeSrc()
				return runHeadless(cmd.Context(), cfg, src, logger, cmd.OutOrStdout())
			}
			return runGUI(cfg, logger)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default is the user config directory)")
	flags.StringVar(&opts.envFile, "env-file", ".env", "file with KONTROL_* environment overrides")
	flags.BoolVar(&opts.debug, "debug", false, "log every control change")
	cmd.Flags().StringVar(&opts.port, "port", "", "input port name or substring (default nanoKONTROL2)")
	cmd.Flags().IntVar(&opts.channel, "channel", config.ChannelAny, "MIDI channel 0-15, -1 for any")
	cmd.Flags().BoolVar(&opts.headless, "headless", false, "print events instead of opening a window")

	cmd.AddCommand(newPortsCmd())
	return cmd
}

// loadConfig applies, in order: the config file, the env file and
// environment, and explicitly set flags
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	if err := config.LoadEnvFile(opts.envFile); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", opts.envFile, err)
	}

	var cfg *config.Config
	var err error
	if opts.configPath != "" {
		cfg, err = config.LoadFrom(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ApplyEnv()

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Device.InPort = opts.port
	}
	if flags.Changed("channel") {
		if opts.channel < config.ChannelAny || opts.channel > 15 {
			return nil, fmt.Errorf("invalid channel %d: must be between -1 and 15", opts.channel)
		}
		cfg.Device.Channel = opts.channel
	}
	if flags.Changed("debug") {
		cfg.Debug = opts.debug
	}
	return cfg, nil
}

// newLogger configures the shared slog logger
func newLogger(debug bool, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	}))
	slog.SetDefault(logger)
	return logger
}
