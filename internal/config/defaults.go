package config

import (
	"github.com/haskel/sysmon/internal/monitor"
	"github.com/haskel/sysmon/internal/render"
)

const (
	DefaultIntervalMS = 2000
	MinIntervalMS     = 100
)

func Default() *Config {
	return &Config{
		Monitoring: MonitoringConfig{
			IntervalMS:   DefaultIntervalMS,
			Sections:     monitor.AllSections.Names(),
			DiskPath:     "/",
			TopProcesses: monitor.DefaultTopProcesses,
			ProcRoot:     "/proc",
			SysRoot:      "/sys",
		},
		Display: DisplayConfig{
			Color:           true,
			WarnPercent:     render.DefaultWarnPercent,
			CriticalPercent: render.DefaultCriticalPercent,
			ModelWidth:      render.DefaultModelWidth,
			NameWidth:       render.DefaultNameWidth,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
