// Package vpn forces a network-identity change after a suspected block.
//
// A scrape failure often means the exit IP has been flagged, so the watcher
// asks for a reconnect before the next attempt. The concrete implementation
// shells out to the mullvad CLI and observes the process result.
package vpn

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// Reconnector requests a fresh network identity. Failures are reported but
// callers treat them as non-fatal.
type Reconnector interface {
	Reconnect(ctx context.Context) error
}

type runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// MullvadReconnector reconnects through the mullvad CLI.
type MullvadReconnector struct {
	run runner
}

// NewMullvadReconnector creates a reconnector invoking the mullvad CLI.
func NewMullvadReconnector() *MullvadReconnector {
	return &MullvadReconnector{run: execRunner}
}

// Reconnect runs "mullvad reconnect" and waits for it to finish.
func (m *MullvadReconnector) Reconnect(ctx context.Context) error {
	out, err := m.run(ctx, "mullvad", "reconnect")
	if err != nil {
		return fmt.Errorf("mullvad reconnect: %w (output: %s)", err, bytes.TrimSpace(out))
	}
	return nil
}

// NoopReconnector does nothing. Used when no VPN tooling is available.
type NoopReconnector struct{}

// Reconnect always succeeds.
func (NoopReconnector) Reconnect(context.Context) error {
	return nil
}
