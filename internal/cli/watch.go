package cli

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/raveheart1/chlog/internal/changelog"
	"github.com/raveheart1/chlog/internal/watch"
)

var watchIntervalFlag time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render the change log whenever the file changes",
	Long: `Watch the change log file and re-render the recent messages on every
modification. Useful in a spare terminal while editing the file by hand.

Press Ctrl+C to stop.

Example:
  chlog watch`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch(cmd)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchIntervalFlag, "poll-interval", 500*time.Millisecond, "Backup polling interval")
}

func runWatch(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watcher, err := watch.New(cfg.File, watch.WithPollInterval(watchIntervalFlag))
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	changes, err := watcher.Changes(ctx)
	if err != nil {
		return fmt.Errorf("watching %s: %w", cfg.File, err)
	}

	if err := renderSnapshot(cmd, cfg.File); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			if err := renderSnapshot(cmd, cfg.File); err != nil {
				return err
			}
		}
	}
}

// renderSnapshot reloads the file and prints the recent messages with a
// timestamp separator.
func renderSnapshot(cmd *cobra.Command, path string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := changelog.Open(path)
	if err != nil {
		// A half-saved edit can be momentarily malformed; show that
		// instead of exiting.
		fmt.Fprintf(cmd.OutOrStdout(), "--- %s (parse error: %v)\n", time.Now().Format("15:04:05"), err)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "--- %s\n", time.Now().Format("15:04:05"))
	_, err = changelog.FormatRecent(log, cfg.ShowLast, cmd.OutOrStdout(), changelog.FormatOptions{Plain: cfg.Plain})
	if err != nil {
		return fmt.Errorf("formatting messages: %w", err)
	}
	return nil
}
