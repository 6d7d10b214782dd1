package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/haskel/sysmon/internal/monitor"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return configPath
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Monitoring.IntervalMS != 2000 {
		t.Errorf("expected default interval 2000, got %d", cfg.Monitoring.IntervalMS)
	}

	if cfg.Monitoring.DiskPath != "/" {
		t.Errorf("expected default disk path /, got %s", cfg.Monitoring.DiskPath)
	}

	if cfg.Monitoring.TopProcesses != 10 {
		t.Errorf("expected default top processes 10, got %d", cfg.Monitoring.TopProcesses)
	}

	if cfg.Display.WarnPercent != 60 || cfg.Display.CriticalPercent != 80 {
		t.Errorf("expected thresholds 60/80, got %.0f/%.0f", cfg.Display.WarnPercent, cfg.Display.CriticalPercent)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Logging.Level)
	}

	sections, err := cfg.SectionSet()
	if err != nil {
		t.Fatalf("default sections should parse: %v", err)
	}
	if sections != monitor.AllSections {
		t.Errorf("expected all sections, got %s", sections)
	}
}

func TestLoad(t *testing.T) {
	configPath := writeConfig(t, `
monitoring:
  interval_ms: 500
  sections: [cpu, memory]
  top_processes: 5

display:
  color: false
  warn_percent: 50

logging:
  level: "debug"
  format: "json"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.MonitoringInterval() != 500*time.Millisecond {
		t.Errorf("expected interval 500ms, got %s", cfg.MonitoringInterval())
	}

	if cfg.Monitoring.TopProcesses != 5 {
		t.Errorf("expected top processes 5, got %d", cfg.Monitoring.TopProcesses)
	}

	if cfg.Display.Color {
		t.Error("expected color disabled")
	}

	if cfg.Logging.Format != "json" {
		t.Errorf("expected log format json, got %s", cfg.Logging.Format)
	}

	// Check that defaults are preserved for unspecified values
	if cfg.Display.CriticalPercent != 80 {
		t.Errorf("expected default critical percent 80, got %f", cfg.Display.CriticalPercent)
	}
	if cfg.Monitoring.ProcRoot != "/proc" {
		t.Errorf("expected default proc root, got %s", cfg.Monitoring.ProcRoot)
	}

	opts, err := cfg.MonitorOptions()
	if err != nil {
		t.Fatalf("MonitorOptions: %v", err)
	}
	if opts.Sections != monitor.SectionCPU|monitor.SectionMemory {
		t.Errorf("expected cpu,memory, got %s", opts.Sections)
	}
	if opts.TopProcesses != 5 {
		t.Errorf("expected 5 top processes, got %d", opts.TopProcesses)
	}

	ropts := cfg.RenderOptions()
	if ropts.WarnPercent != 50 || ropts.MaxProcessRows != 5 {
		t.Errorf("unexpected render options: %+v", ropts)
	}
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error for non-existent file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	configPath := writeConfig(t, "monitoring: [unclosed")

	_, err := Load(configPath)
	if err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadInvalidValues(t *testing.T) {
	configPath := writeConfig(t, `
monitoring:
  interval_ms: 10
  sections: [gpu]
`)

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"interval_ms", `unknown section "gpu"`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected error to mention %q, got %v", want, err)
		}
	}
}

func TestLoadOrDefault(t *testing.T) {
	// Empty path returns defaults
	cfg, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Monitoring.IntervalMS != 2000 {
		t.Errorf("expected default interval 2000, got %d", cfg.Monitoring.IntervalMS)
	}

	// Non-existent file returns defaults
	cfg, err = LoadOrDefault("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Monitoring.IntervalMS != 2000 {
		t.Errorf("expected default interval 2000, got %d", cfg.Monitoring.IntervalMS)
	}

	// A broken file is reported
	if _, err := LoadOrDefault(writeConfig(t, "logging:\n  level: loud\n")); err == nil {
		t.Error("expected error for invalid config file")
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Monitoring.DiskPath = "/data"

	data, err := cfg.YAML()
	if err != nil {
		t.Fatalf("YAML: %v", err)
	}

	parsed, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed.Monitoring.DiskPath != "/data" {
		t.Errorf("expected disk path /data, got %s", parsed.Monitoring.DiskPath)
	}
}
