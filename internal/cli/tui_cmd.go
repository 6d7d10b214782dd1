package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/haskel/sysmon/internal/cli/tui"
	"github.com/haskel/sysmon/internal/monitor"
)

var (
	refreshInterval time.Duration
	tuiLogFile      string
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	Long: `Launch an interactive terminal user interface for monitoring
system resources in real-time.

Examples:
  sysmon tui                    # Basic launch with default settings
  sysmon tui --refresh 500ms    # Faster refresh rate
  sysmon tui --log-file tui.log # Keep sampler warnings`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().DurationVar(&refreshInterval, "refresh", 0, "dashboard refresh interval (default from config)")
	tuiCmd.Flags().StringVar(&tuiLogFile, "log-file", "", "write logs to this file instead of discarding them")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if refreshInterval > 0 {
		cfg.Monitoring.IntervalMS = int(refreshInterval / time.Millisecond)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	// The alternate screen owns the terminal, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if tuiLogFile != "" {
		f, err := os.OpenFile(tuiLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	log := newLogger(cfg, logOut)

	opts, err := cfg.MonitorOptions()
	if err != nil {
		return err
	}

	return tui.Run(monitor.New(opts, log), tui.Config{
		RefreshInterval: cfg.MonitoringInterval(),
		Render:          cfg.RenderOptions(),
		Sections:        opts.Sections,
	})
}
