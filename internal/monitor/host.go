package monitor

import (
	"context"
	"strings"

	"github.com/shirou/gopsutil/v4/common"
	"github.com/shirou/gopsutil/v4/host"
)

// HostMonitor reports host identity. gopsutil is pointed at the same proc
// and sys roots as the other samplers.
type HostMonitor struct {
	env  common.EnvMap
	info func(ctx context.Context) (*host.InfoStat, error)
}

func NewHostMonitor(procRoot, sysRoot string) *HostMonitor {
	env := common.EnvMap{}
	if procRoot != "" {
		env[common.HostProcEnvKey] = procRoot
	}
	if sysRoot != "" {
		env[common.HostSysEnvKey] = sysRoot
	}
	return &HostMonitor{env: env, info: host.InfoWithContext}
}

func (m *HostMonitor) Name() string {
	return "host"
}

func (m *HostMonitor) Collect() (any, error) {
	ctx := context.WithValue(context.Background(), common.EnvKey, m.env)
	info, err := m.info(ctx)
	if err != nil {
		return nil, err
	}

	platform := strings.TrimSpace(info.Platform + " " + info.PlatformVersion)
	if platform == "" {
		platform = info.OS
	}

	return &HostInfo{
		Hostname: info.Hostname,
		Platform: platform,
		Kernel:   info.KernelVersion,
	}, nil
}
