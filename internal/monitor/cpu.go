package monitor

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
)

// Sensor paths relative to the sys root, tried in order.
var temperatureSensors = []string{
	"class/thermal/thermal_zone0/temp",
	"devices/platform/coretemp.0/hwmon/hwmon0/temp1_input",
}

type lineKind int

const (
	lineUnknown lineKind = iota
	lineModelName
	lineProcessor
	lineAggregateCounters
	linePerCoreCounters
)

// cpuLine is one classified line of /proc/cpuinfo or /proc/stat.
type cpuLine struct {
	kind     lineKind
	core     int
	model    string
	counters CounterSample
}

func classifyInfoLine(line string) cpuLine {
	key, value, ok := strings.Cut(line, ":")
	if !ok {
		return cpuLine{kind: lineUnknown}
	}

	switch strings.TrimSpace(key) {
	case "model name":
		return cpuLine{kind: lineModelName, model: strings.TrimSpace(value)}
	case "processor":
		return cpuLine{kind: lineProcessor}
	}
	return cpuLine{kind: lineUnknown}
}

// classifyStatLine recognizes "cpu" and "cpuN" lines of /proc/stat.
// Fields: user nice system idle iowait irq softirq [steal guest guest_nice].
// Guest time is already part of user and is not summed again.
func classifyStatLine(line string) cpuLine {
	fields := strings.Fields(line)
	if len(fields) < 8 || !strings.HasPrefix(fields[0], "cpu") {
		return cpuLine{kind: lineUnknown}
	}

	parsed := cpuLine{kind: lineAggregateCounters, core: AggregateCore}
	if suffix := strings.TrimPrefix(fields[0], "cpu"); suffix != "" {
		core, err := strconv.Atoi(suffix)
		if err != nil || core < 0 || suffix[0] < '0' || suffix[0] > '9' {
			return cpuLine{kind: lineUnknown}
		}
		parsed.kind = linePerCoreCounters
		parsed.core = core
	}

	ticks := fields[1:]
	if len(ticks) > 8 {
		ticks = ticks[:8]
	}
	for i, field := range ticks {
		v, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return cpuLine{kind: lineUnknown}
		}
		parsed.counters.Total += v
		if i == 3 {
			parsed.counters.Idle = v
		}
	}
	return parsed
}

type CPUMonitor struct {
	procRoot string
	sysRoot  string
	store    *CounterStore
	logger   *slog.Logger
}

// NewCPUMonitor reads counters below procRoot and sensors below sysRoot. The
// store carries the previous counters between calls.
func NewCPUMonitor(procRoot, sysRoot string, store *CounterStore, logger *slog.Logger) *CPUMonitor {
	return &CPUMonitor{
		procRoot: procRoot,
		sysRoot:  sysRoot,
		store:    store,
		logger:   logger,
	}
}

func (m *CPUMonitor) Name() string {
	return "cpu"
}

func (m *CPUMonitor) Collect() (any, error) {
	return m.Sample()
}

func (m *CPUMonitor) Sample() (*CPUSnapshot, error) {
	snap := &CPUSnapshot{}

	err := readSource(filepath.Join(m.procRoot, "cpuinfo"), func(line string) {
		parsed := classifyInfoLine(line)
		switch parsed.kind {
		case lineModelName:
			if snap.Model == "" {
				snap.Model = parsed.model
			}
		case lineProcessor:
			snap.Cores++
		}
	})
	if err != nil {
		return nil, err
	}

	var lines []cpuLine
	err = readSource(filepath.Join(m.procRoot, "stat"), func(line string) {
		if !strings.HasPrefix(line, "cpu") {
			return
		}
		parsed := classifyStatLine(line)
		if parsed.kind == lineUnknown {
			m.logger.Debug("skipping malformed stat line", "line", line)
			return
		}
		lines = append(lines, parsed)
	})
	if err != nil {
		return nil, err
	}

	snap.CoreUsage = make([]float64, coreSlots(snap.Cores, lines))
	for _, line := range lines {
		prev, seen, err := m.store.Update(line.core, line.counters)
		if err != nil {
			m.logger.Debug("ignoring core beyond capacity", "core", line.core)
			continue
		}

		var usage float64
		if seen {
			usage = Utilization(prev, line.counters)
		}

		if line.kind == lineAggregateCounters {
			snap.UsagePercent = usage
		} else {
			snap.CoreUsage[line.core] = usage
		}
	}

	if temp, err := readTemperature(m.sysRoot); err == nil {
		snap.Temperature = &temp
	}

	return snap, nil
}

// coreSlots sizes the per-core slice so every tracked core id has an index.
func coreSlots(cores int, lines []cpuLine) int {
	n := cores
	for _, line := range lines {
		if line.kind == linePerCoreCounters && line.core < MaxCores && line.core+1 > n {
			n = line.core + 1
		}
	}
	if n > MaxCores {
		n = MaxCores
	}
	return n
}

func readTemperature(sysRoot string) (float64, error) {
	errs := make([]error, 0, len(temperatureSensors))
	for _, sensor := range temperatureSensors {
		line, err := readFirstLine(filepath.Join(sysRoot, sensor))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		milli, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		return float64(milli) / 1000.0, nil
	}
	return 0, errors.Join(errs...)
}
