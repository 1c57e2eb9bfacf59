// Package cli wires configuration, scraper, notifier and reconnector into
// the pcta-watch command.
package cli
