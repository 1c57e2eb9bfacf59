package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.URL != "https://portal.permit.pcta.org/availability/mexican-border.php" {
		t.Errorf("unexpected default URL: %s", cfg.URL)
	}
	if cfg.Team != "jry.zed" {
		t.Errorf("unexpected default team: %s", cfg.Team)
	}
	if cfg.IntervalMin != 15*time.Second || cfg.IntervalMax != 3*time.Minute {
		t.Errorf("unexpected interval bounds: %s / %s", cfg.IntervalMin, cfg.IntervalMax)
	}
	if cfg.PermitLimit != 50 {
		t.Errorf("unexpected permit limit: %d", cfg.PermitLimit)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PCTA_PERMIT_LIMIT", "35")
	t.Setenv("PCTA_INTERVAL_MIN", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.PermitLimit != 35 {
		t.Errorf("permit limit = %d, want 35", cfg.PermitLimit)
	}
	if cfg.IntervalMin != 30*time.Second {
		t.Errorf("interval min = %s, want 30s", cfg.IntervalMin)
	}
}

func TestWatcher(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	wcfg, err := cfg.Watcher()
	if err != nil {
		t.Fatalf("Watcher failed: %v", err)
	}

	if got := wcfg.Range.Start.Format("2006-01-02"); got != "2023-04-01" {
		t.Errorf("range start = %s, want 2023-04-01", got)
	}
	if got := wcfg.Range.End.Format("2006-01-02"); got != "2023-05-05" {
		t.Errorf("range end = %s, want 2023-05-05", got)
	}
	if wcfg.Window.Open != 12*time.Hour {
		t.Errorf("window open = %s, want 12h", wcfg.Window.Open)
	}
	if wcfg.Window.Close != 20*time.Hour {
		t.Errorf("window close = %s, want 20h", wcfg.Window.Close)
	}
}

func TestValidate(t *testing.T) {
	base, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty url", func(c *Config) { c.URL = "" }},
		{"empty team", func(c *Config) { c.Team = "" }},
		{"zero interval", func(c *Config) { c.IntervalMin = 0 }},
		{"inverted intervals", func(c *Config) { c.IntervalMax = c.IntervalMin - time.Second }},
		{"zero limit", func(c *Config) { c.PermitLimit = 0 }},
		{"bad range date", func(c *Config) { c.RangeStart = "April 1" }},
		{"inverted range", func(c *Config) { c.RangeStart, c.RangeEnd = c.RangeEnd, c.RangeStart }},
		{"bad window time", func(c *Config) { c.WindowOpen = "noon" }},
		{"inverted window", func(c *Config) { c.WindowOpen, c.WindowClose = c.WindowClose, c.WindowOpen }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
