package cli

import (
	"encoding/json"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/haskel/sysmon/internal/config"
	"github.com/haskel/sysmon/internal/monitor"
	"github.com/haskel/sysmon/internal/render"
)

type dashboardFlags struct {
	watch     bool
	cpu       bool
	memory    bool
	uptime    bool
	disk      bool
	processes bool
	all       bool
	interval  time.Duration
	diskPath  string
	top       int
}

var dash dashboardFlags

func init() {
	f := rootCmd.Flags()
	f.BoolVarP(&dash.watch, "watch", "w", false, "continuous monitor mode")
	f.BoolVarP(&dash.cpu, "cpu", "c", false, "show CPU information")
	f.BoolVarP(&dash.memory, "memory", "m", false, "show memory information")
	f.BoolVarP(&dash.uptime, "uptime", "u", false, "show system uptime")
	f.BoolVarP(&dash.disk, "disk", "d", false, "show disk information")
	f.BoolVarP(&dash.processes, "processes", "p", false, "show top processes")
	f.BoolVarP(&dash.all, "all", "a", false, "show all information (default)")
	f.DurationVar(&dash.interval, "interval", 0, "refresh interval in watch mode (default from config, 2s)")
	f.StringVar(&dash.diskPath, "path", "", "filesystem to report in the disk section")
	f.IntVar(&dash.top, "top", 0, "number of processes to list (1-10)")
}

// sections returns the sections picked on the command line, 0 when none.
func (f dashboardFlags) sections() monitor.Sections {
	if f.all {
		return monitor.AllSections
	}

	var s monitor.Sections
	if f.cpu {
		s = s.With(monitor.SectionCPU)
	}
	if f.memory {
		s = s.With(monitor.SectionMemory)
	}
	if f.uptime {
		s = s.With(monitor.SectionUptime)
	}
	if f.disk {
		s = s.With(monitor.SectionDisk)
	}
	if f.processes {
		s = s.With(monitor.SectionProcesses)
	}
	return s
}

// apply overrides cfg with whatever was set on the command line.
func (f dashboardFlags) apply(cfg *config.Config) error {
	if s := f.sections(); s != 0 {
		cfg.Monitoring.Sections = s.Names()
	}
	if f.interval > 0 {
		cfg.Monitoring.IntervalMS = int(f.interval / time.Millisecond)
	}
	if f.diskPath != "" {
		cfg.Monitoring.DiskPath = f.diskPath
	}
	if f.top != 0 {
		cfg.Monitoring.TopProcesses = f.top
	}
	return cfg.Validate()
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := dash.apply(cfg); err != nil {
		return err
	}

	log := newLogger(cfg, nil)

	opts, err := cfg.MonitorOptions()
	if err != nil {
		return err
	}
	agg := monitor.New(opts, log)

	var interval time.Duration
	if dash.watch {
		interval = cfg.MonitoringInterval()
	}

	log.Debug("sysmon starting",
		"version", Version,
		"sections", opts.Sections.String(),
		"interval", interval,
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return agg.Run(ctx, interval, snapshotWriter(cmd.OutOrStdout(), cfg, dash.watch))
}

// snapshotWriter returns the per-cycle output step: one JSON object per
// line with --json, otherwise the rendered dashboard.
func snapshotWriter(w io.Writer, cfg *config.Config, watch bool) func(*monitor.SystemSnapshot) error {
	if jsonOut {
		enc := json.NewEncoder(w)
		return func(snap *monitor.SystemSnapshot) error {
			return enc.Encode(snap)
		}
	}

	r := render.New(w, cfg.RenderOptions())
	return func(snap *monitor.SystemSnapshot) error {
		if watch {
			if err := render.ClearScreen(w); err != nil {
				return err
			}
		}
		return r.Write(snap)
	}
}
