// Package config loads the watcher's configuration from the environment.
//
// Every knob defaults to the original deployment's value, so with no
// environment at all the binary watches the southern-terminus page for the
// 2023 season. Overrides use the PCTA_ prefix, e.g. PCTA_PERMIT_LIMIT=35.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/jryio/pcta/internal/availability"
	"github.com/jryio/pcta/internal/watcher"
)

// Config carries every tunable of the watcher as loaded from the
// environment. String-typed dates and clock times are parsed on demand by
// Watcher().
type Config struct {
	URL         string        `envconfig:"URL" default:"https://portal.permit.pcta.org/availability/mexican-border.php"`
	Team        string        `envconfig:"TEAM" default:"jry.zed"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`

	IntervalMin time.Duration `envconfig:"INTERVAL_MIN" default:"15s"`
	IntervalMax time.Duration `envconfig:"INTERVAL_MAX" default:"3m"`

	PermitLimit uint64 `envconfig:"PERMIT_LIMIT" default:"50"`

	// RangeStart is exclusive, RangeEnd inclusive, both YYYY-MM-DD.
	RangeStart string `envconfig:"RANGE_START" default:"2023-04-01"`
	RangeEnd   string `envconfig:"RANGE_END" default:"2023-05-05"`

	// Scraping window in local time, HH:MM, both endpoints inclusive.
	// Defaults cover 9 AM - 5 PM Pacific expressed in the deploy host's
	// Eastern clock.
	WindowOpen  string `envconfig:"WINDOW_OPEN" default:"12:00"`
	WindowClose string `envconfig:"WINDOW_CLOSE" default:"20:00"`
}

// Load reads configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("pcta", &cfg); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate enforces required values and the ordering of bounds.
func (c Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("url must not be empty")
	}
	if c.Team == "" {
		return fmt.Errorf("team must not be empty")
	}
	if c.IntervalMin <= 0 {
		return fmt.Errorf("interval_min must be > 0")
	}
	if c.IntervalMax < c.IntervalMin {
		return fmt.Errorf("interval_max must be >= interval_min")
	}
	if c.PermitLimit == 0 {
		return fmt.Errorf("permit_limit must be > 0")
	}
	if _, err := c.dateRange(); err != nil {
		return err
	}
	if _, err := c.window(); err != nil {
		return err
	}
	return nil
}

func (c Config) dateRange() (availability.DateRange, error) {
	start, err := availability.ParseDate(c.RangeStart)
	if err != nil {
		return availability.DateRange{}, fmt.Errorf("range_start: %w", err)
	}
	end, err := availability.ParseDate(c.RangeEnd)
	if err != nil {
		return availability.DateRange{}, fmt.Errorf("range_end: %w", err)
	}
	if !end.After(start) {
		return availability.DateRange{}, fmt.Errorf("range_end %s must be after range_start %s", c.RangeEnd, c.RangeStart)
	}
	return availability.DateRange{Start: start, End: end}, nil
}

func (c Config) window() (watcher.Window, error) {
	open, err := parseClock(c.WindowOpen)
	if err != nil {
		return watcher.Window{}, fmt.Errorf("window_open: %w", err)
	}
	close, err := parseClock(c.WindowClose)
	if err != nil {
		return watcher.Window{}, fmt.Errorf("window_close: %w", err)
	}
	if close < open {
		return watcher.Window{}, fmt.Errorf("window_close %s must not precede window_open %s", c.WindowClose, c.WindowOpen)
	}
	return watcher.Window{Open: open, Close: close}, nil
}

// parseClock converts an HH:MM string into an offset from midnight.
func parseClock(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// Watcher builds the watcher configuration from the validated settings.
func (c Config) Watcher() (watcher.Config, error) {
	rng, err := c.dateRange()
	if err != nil {
		return watcher.Config{}, err
	}
	win, err := c.window()
	if err != nil {
		return watcher.Config{}, err
	}
	return watcher.Config{
		IntervalMin: c.IntervalMin,
		IntervalMax: c.IntervalMax,
		Range:       rng,
		Limit:       c.PermitLimit,
		Window:      win,
	}, nil
}
