package watcher

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jryio/pcta/internal/availability"
	"github.com/jryio/pcta/internal/logger"
	"github.com/jryio/pcta/internal/notify"
	"github.com/jryio/pcta/internal/vpn"
)

// Scraper yields the embedded availability calendar of the permit page.
type Scraper interface {
	Scrape(ctx context.Context) (availability.Calendar, error)
}

// Config carries the watcher's tunables, threaded in explicitly so tests
// can inject arbitrary ranges and windows.
type Config struct {
	// IntervalMin/IntervalMax bound the jittered poll interval. The
	// interval is drawn once per Run, not per tick, so one process keeps
	// one cadence for its whole lifetime.
	IntervalMin time.Duration
	IntervalMax time.Duration

	// Range and Limit drive the availability filter.
	Range availability.DateRange
	Limit uint64

	// Window gates scraping to business hours.
	Window Window
}

// Watcher polls the permit page and notifies on what it finds.
type Watcher struct {
	cfg         Config
	scraper     Scraper
	notifier    notify.Notifier
	reconnector vpn.Reconnector
	log         *logger.Logger

	// now is injected in tests to pin the business-hours clock.
	now func() time.Time
}

// New wires a Watcher. log may be nil, in which case entries go to the
// package default logger.
func New(cfg Config, s Scraper, n notify.Notifier, r vpn.Reconnector, log *logger.Logger) *Watcher {
	if log == nil {
		log = logger.Default()
	}
	return &Watcher{
		cfg:         cfg,
		scraper:     s,
		notifier:    n,
		reconnector: r,
		log:         log,
		now:         time.Now,
	}
}

// drawInterval picks the poll interval uniformly from
// [IntervalMin, IntervalMax], both bounds inclusive. A randomized cadence
// avoids presenting a fixed, fingerprintable polling period.
func (w *Watcher) drawInterval() time.Duration {
	min, max := w.cfg.IntervalMin, w.cfg.IntervalMax
	if max <= min {
		return min
	}
	return min + time.Duration(rand.Int63n(int64(max-min)+1))
}

// Run executes the poll loop until ctx is cancelled. Scrape, parse and
// delivery failures are converted into notifications and never stop the
// loop.
func (w *Watcher) Run(ctx context.Context) error {
	interval := w.drawInterval()
	w.log.Info("starting watch loop", logger.Fields{
		"interval": interval.String(),
		"window":   fmt.Sprintf("%s-%s", formatClock(w.cfg.Window.Open), formatClock(w.cfg.Window.Close)),
	})
	logger.SetGauge("watcher.interval_seconds", interval.Seconds())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.Tick(ctx)
		}
	}
}

// Tick runs one full poll pass: window check, scrape, classify, notify,
// and remediation on failure. It returns only when the pass has fully
// completed, which is what keeps notifications in tick order.
func (w *Watcher) Tick(ctx context.Context) {
	now := w.now()
	stamp := now.Format(time.RFC3339)

	if !w.cfg.Window.Contains(now) {
		wait := w.cfg.Window.UntilOpen(now)
		w.log.Info("outside scraping hours", logger.Fields{"until_open": wait.String()})
		w.deliver(ctx, notify.Payload{
			Channel: notify.ChannelLogs,
			Body:    fmt.Sprintf("`%s` @ Outside scraping hours, window opens in %s", stamp, formatClock(wait)),
		})
		return
	}

	start := time.Now()
	outcome := w.scrape(ctx)
	logger.RecordTiming("watcher.scrape", time.Since(start))
	logger.IncrCounter("watcher.scrapes")

	w.deliver(ctx, notify.Classify(outcome, stamp))

	if outcome.Failed() {
		logger.IncrCounter("watcher.scrape_failures")
		w.log.Error("scrape failed", logger.Fields{"at": stamp}, outcome.Err())
		w.remediate(ctx, stamp)
		return
	}

	w.log.Info("completed scrape", logger.Fields{
		"at":       stamp,
		"openings": len(outcome.Openings()),
	})
}

// Check runs the pipeline once, ignoring the business-hours window, and
// returns the classified payload. Used by the one-shot CLI mode.
func (w *Watcher) Check(ctx context.Context) notify.Payload {
	return notify.Classify(w.scrape(ctx), w.now().Format(time.RFC3339))
}

// scrape collapses fetch, extraction and filter failures into a single
// failure outcome; the description travels verbatim to the errors channel.
func (w *Watcher) scrape(ctx context.Context) notify.Outcome {
	cal, err := w.scraper.Scrape(ctx)
	if err != nil {
		return notify.Failure(err)
	}

	openings, err := availability.Filter(cal, w.cfg.Range, w.cfg.Limit)
	if err != nil {
		return notify.Failure(err)
	}

	return notify.Success(openings)
}

// remediate asks for a VPN reconnect after a failed scrape and announces
// the attempt on the logs channel. Reconnect failure is reported, never
// fatal.
func (w *Watcher) remediate(ctx context.Context, stamp string) {
	err := w.reconnector.Reconnect(ctx)

	body := fmt.Sprintf("`%s` @ Reconnected VPN after a failed scrape", stamp)
	if err != nil {
		body = fmt.Sprintf("`%s` @ VPN reconnect failed after a failed scrape: %v", stamp, err)
		w.log.Error("vpn reconnect failed", logger.Fields{"at": stamp}, err)
	}

	w.deliver(ctx, notify.Payload{Channel: notify.ChannelLogs, Body: body})
}

// deliver sends a payload and logs delivery failures without propagating
// them; a lost notification must not stall the loop.
func (w *Watcher) deliver(ctx context.Context, p notify.Payload) {
	if err := w.notifier.Send(ctx, p); err != nil {
		w.log.Error("notification delivery failed", logger.Fields{"channel": string(p.Channel)}, err)
		return
	}
	logger.IncrCounter("watcher.notifications")
}
