package notify

import (
	"context"
	"fmt"
	"io"
)

// DryRunNotifier prints payloads instead of delivering them. Useful for
// local runs without a keybase session.
type DryRunNotifier struct {
	out io.Writer
}

// NewDryRunNotifier creates a notifier writing to out.
func NewDryRunNotifier(out io.Writer) *DryRunNotifier {
	return &DryRunNotifier{out: out}
}

// Send prints the payload's channel and body.
func (n *DryRunNotifier) Send(_ context.Context, p Payload) error {
	_, err := fmt.Fprintf(n.out, "--- %s ---\n%s\n", p.Channel, p.Body)
	return err
}
