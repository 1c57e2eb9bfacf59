package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jryio/pcta/internal/config"
	"github.com/jryio/pcta/internal/logger"
	"github.com/jryio/pcta/internal/notify"
	"github.com/jryio/pcta/internal/scraper"
	"github.com/jryio/pcta/internal/vpn"
	"github.com/jryio/pcta/internal/watcher"
)

var (
	flagOnce    bool
	flagDryRun  bool
	flagNoVPN   bool
	flagVerbose bool
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pcta-watch",
		Short: "Watch the PCTA permit page for open starting dates",
		Long: `Polls the PCTA long-distance permit availability page on a jittered
interval during business hours, and posts what it finds to a Keybase team:
openings to pcta-alerts, routine results to pcta-logs, scrape failures to
pcta-errors. A failed scrape also triggers a VPN reconnect.

Configuration comes from PCTA_* environment variables (or a .env file);
the defaults match the original southern-terminus deployment.`,
		RunE:          runWatch,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().BoolVar(&flagOnce, "once", false, "Scrape once, print the classified result, and exit")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print notifications instead of posting to Keybase")
	cmd.Flags().BoolVar(&flagNoVPN, "no-vpn", false, "Skip VPN reconnection on scrape failures")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	level := logger.LevelInfo
	if flagVerbose {
		level = logger.LevelDebug
	}
	log := logger.New(level, os.Stdout)
	logger.SetDefault(log)

	wcfg, err := cfg.Watcher()
	if err != nil {
		return fmt.Errorf("building watcher configuration: %w", err)
	}

	var notifier notify.Notifier = notify.NewKeybaseNotifier(cfg.Team)
	if flagDryRun {
		notifier = notify.NewDryRunNotifier(os.Stdout)
	}

	var reconnector vpn.Reconnector = vpn.NewMullvadReconnector()
	if flagNoVPN {
		reconnector = vpn.NoopReconnector{}
	}

	w := watcher.New(wcfg, scraper.New(cfg.URL, cfg.HTTPTimeout), notifier, reconnector, log)

	if flagOnce {
		p := w.Check(cmd.Context())
		fmt.Printf("--- %s ---\n%s\n", p.Channel, p.Body)
		return nil
	}

	return w.Run(cmd.Context())
}
