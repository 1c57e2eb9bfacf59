package notify

import (
	"context"

	"github.com/jryio/pcta/internal/availability"
)

// Channel is the Keybase team topic a payload is routed to.
type Channel string

const (
	// ChannelLogs carries routine operational chatter.
	ChannelLogs Channel = "pcta-logs"
	// ChannelAlerts carries availability findings worth waking up for.
	ChannelAlerts Channel = "pcta-alerts"
	// ChannelErrors carries scrape failures with their full descriptions.
	ChannelErrors Channel = "pcta-errors"
)

// Payload is a classified notification: which topic to post to and what to
// say. Wire-format concerns stay in the delivery adapter.
type Payload struct {
	Channel Channel
	Body    string
}

// Outcome is the result of one scrape pass: either the openings found
// (possibly none) or the error that stopped the pass.
type Outcome struct {
	openings availability.Result
	err      error
}

// Success wraps the openings found by a completed scrape.
func Success(openings availability.Result) Outcome {
	return Outcome{openings: openings}
}

// Failure wraps the error that stopped a scrape. Fetch, extraction and
// parse failures all arrive here; the description travels verbatim to the
// errors channel.
func Failure(err error) Outcome {
	return Outcome{err: err}
}

// Failed reports whether the scrape pass errored.
func (o Outcome) Failed() bool {
	return o.err != nil
}

// Openings returns the openings of a successful pass.
func (o Outcome) Openings() availability.Result {
	return o.openings
}

// Err returns the error of a failed pass, or nil.
func (o Outcome) Err() error {
	return o.err
}

// Notifier delivers classified payloads. Delivery failures are reported to
// the caller but are expected to be non-fatal.
type Notifier interface {
	Send(ctx context.Context, p Payload) error
}
