package scraper

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"
)

const (
	// AvailabilityURL is the permit page for the southern terminus.
	AvailabilityURL = "https://portal.permit.pcta.org/availability/mexican-border.php"

	// DefaultTimeout bounds a single page fetch.
	DefaultTimeout = 30 * time.Second
)

// userAgents is rotated per request so repeated polls do not present a
// single fixed client fingerprint.
var userAgents = []string{
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/109.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/108.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.1 Safari/605.1.15",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:108.0) Gecko/20100101 Firefox/108.0",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/109.0.0.0 Safari/537.36",
}

// Scraper fetches the availability page over a single reusable HTTP client.
// Safe for serialized use across poll ticks; the watcher never overlaps
// ticks, so no locking is needed here.
type Scraper struct {
	client *http.Client
	url    string
}

// New creates a Scraper for the given page URL. A zero timeout falls back
// to DefaultTimeout.
func New(url string, timeout time.Duration) *Scraper {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Scraper{
		client: &http.Client{Timeout: timeout},
		url:    url,
	}
}

// Fetch GETs the availability page and returns its body. The request sends
// a randomized User-Agent and cache-busting headers so intermediaries hand
// back a fresh copy.
func (s *Scraper) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgents[rand.Intn(len(userAgents))])
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading page body: %w", err)
	}

	return string(body), nil
}
