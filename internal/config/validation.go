package config

import (
	"errors"
	"fmt"

	"github.com/haskel/sysmon/internal/monitor"
)

func (c *Config) Validate() error {
	var errs []error

	if err := c.Monitoring.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("monitoring: %w", err))
	}

	if err := c.Display.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("display: %w", err))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	return errors.Join(errs...)
}

func (m *MonitoringConfig) Validate() error {
	var errs []error

	if m.IntervalMS < MinIntervalMS {
		errs = append(errs, fmt.Errorf("interval_ms must be at least %d, got %d", MinIntervalMS, m.IntervalMS))
	}

	if _, err := monitor.ParseSections(m.Sections); err != nil {
		errs = append(errs, fmt.Errorf("sections: %w", err))
	}

	if m.DiskPath == "" {
		errs = append(errs, fmt.Errorf("disk_path cannot be empty"))
	}

	if m.TopProcesses < 1 || m.TopProcesses > monitor.DefaultTopProcesses {
		errs = append(errs, fmt.Errorf("top_processes must be between 1 and %d, got %d",
			monitor.DefaultTopProcesses, m.TopProcesses))
	}

	if m.ProcRoot == "" {
		errs = append(errs, fmt.Errorf("proc_root cannot be empty"))
	}

	if m.SysRoot == "" {
		errs = append(errs, fmt.Errorf("sys_root cannot be empty"))
	}

	return errors.Join(errs...)
}

func (d *DisplayConfig) Validate() error {
	var errs []error

	if d.WarnPercent < 0 || d.WarnPercent > 100 {
		errs = append(errs, fmt.Errorf("warn_percent must be between 0 and 100"))
	}

	if d.CriticalPercent < 0 || d.CriticalPercent > 100 {
		errs = append(errs, fmt.Errorf("critical_percent must be between 0 and 100"))
	}

	if d.WarnPercent >= d.CriticalPercent {
		errs = append(errs, fmt.Errorf("warn_percent (%.1f) must be below critical_percent (%.1f)",
			d.WarnPercent, d.CriticalPercent))
	}

	// Truncation keeps at least one rune ahead of the "..." marker.
	if d.ModelWidth < 4 {
		errs = append(errs, fmt.Errorf("model_width must be at least 4, got %d", d.ModelWidth))
	}

	if d.NameWidth < 4 {
		errs = append(errs, fmt.Errorf("name_width must be at least 4, got %d", d.NameWidth))
	}

	return errors.Join(errs...)
}

func (l *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[l.Level] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", l.Level)
	}

	validFormats := map[string]bool{
		"json": true,
		"text": true,
	}
	if !validFormats[l.Format] {
		return fmt.Errorf("invalid log format: %s (valid: json, text)", l.Format)
	}

	return nil
}
