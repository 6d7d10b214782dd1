package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/haskel/sysmon/internal/config"
	"github.com/haskel/sysmon/internal/logger"
)

var (
	// Global flags
	cfgFile  string
	jsonOut  bool
	noColor  bool
	logLevel string

	// Version info (set from main)
	Version = "0.1.0"
)

// rootCmd shows the dashboard when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "sysmon",
	Short: "Terminal system resource monitor",
	Long: `Sysmon samples CPU, memory, uptime, disk and process information from the
kernel pseudo-filesystems and draws it as a text dashboard, once or on an
interval.`,
	Example: `  sysmon                  Show all information once
  sysmon --watch          Continuous monitor mode
  sysmon --cpu --memory   Show only CPU and memory
  sysmon --json -p        Top processes as JSON`,
	SilenceUsage: true,
	RunE:         runDashboard,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

// SetVersion sets the version for the CLI
func SetVersion(v string) {
	Version = v
	rootCmd.Version = v
}

// loadConfig reads the config file and applies the global flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, err
	}

	if noColor {
		cfg.Display.Color = false
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	if w == nil {
		return logger.New(cfg.Logging.Level, cfg.Logging.Format)
	}
	return logger.NewWithWriter(w, cfg.Logging.Level, cfg.Logging.Format)
}
