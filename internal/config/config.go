package config

import (
	"time"

	"github.com/haskel/sysmon/internal/monitor"
	"github.com/haskel/sysmon/internal/render"
)

type Config struct {
	Monitoring MonitoringConfig `yaml:"monitoring" json:"monitoring"`
	Display    DisplayConfig    `yaml:"display" json:"display"`
	Logging    LoggingConfig    `yaml:"logging" json:"logging"`
}

type MonitoringConfig struct {
	IntervalMS int `yaml:"interval_ms" json:"interval_ms"`
	// Sections lists what to sample: cpu, memory, uptime, disk, processes or all.
	Sections     []string `yaml:"sections" json:"sections"`
	DiskPath     string   `yaml:"disk_path" json:"disk_path"`
	TopProcesses int      `yaml:"top_processes" json:"top_processes"`
	// ProcRoot and SysRoot point at the kernel pseudo-filesystems.
	ProcRoot string `yaml:"proc_root" json:"proc_root"`
	SysRoot  string `yaml:"sys_root" json:"sys_root"`
}

type DisplayConfig struct {
	Color           bool    `yaml:"color" json:"color"`
	WarnPercent     float64 `yaml:"warn_percent" json:"warn_percent"`
	CriticalPercent float64 `yaml:"critical_percent" json:"critical_percent"`
	ModelWidth      int     `yaml:"model_width" json:"model_width"`
	NameWidth       int     `yaml:"name_width" json:"name_width"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

func (c *Config) MonitoringInterval() time.Duration {
	return time.Duration(c.Monitoring.IntervalMS) * time.Millisecond
}

func (c *Config) SectionSet() (monitor.Sections, error) {
	return monitor.ParseSections(c.Monitoring.Sections)
}

// MonitorOptions translates the monitoring block for monitor.New.
func (c *Config) MonitorOptions() (monitor.Options, error) {
	sections, err := c.SectionSet()
	if err != nil {
		return monitor.Options{}, err
	}
	return monitor.Options{
		Sections:     sections,
		ProcRoot:     c.Monitoring.ProcRoot,
		SysRoot:      c.Monitoring.SysRoot,
		DiskPath:     c.Monitoring.DiskPath,
		TopProcesses: c.Monitoring.TopProcesses,
	}, nil
}

func (c *Config) RenderOptions() render.Options {
	return render.Options{
		Color:           c.Display.Color,
		WarnPercent:     c.Display.WarnPercent,
		CriticalPercent: c.Display.CriticalPercent,
		ModelWidth:      c.Display.ModelWidth,
		NameWidth:       c.Display.NameWidth,
		MaxProcessRows:  c.Monitoring.TopProcesses,
	}
}
