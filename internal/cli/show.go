package cli

import (
	stderrors "errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raveheart1/chlog/internal/changelog"
	"github.com/raveheart1/chlog/internal/errors"
)

var showLastFlag int

var showCmd = &cobra.Command{
	Use:   "show [version]",
	Short: "Show change log entries",
	Long: `Show change log entries from the configured file.

By default, shows the most recent messages. Pass a version argument to
see one release's entry, or "unreleased" for the current entry.

Examples:
  chlog show                 # Recent messages, newest entries first
  chlog show 0.1.1           # All messages recorded for 0.1.1
  chlog show unreleased      # The current (unreleased) entry
  chlog show --last 10       # Ten most recent messages
  chlog show --plain         # No colors or styling`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShow(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().IntVar(&showLastFlag, "last", 0, "Number of messages to show (default from config)")
}

func runShow(cmd *cobra.Command, args []string) error {
	log, cfg, err := openLog(cmd)
	if err != nil {
		return err
	}

	opts := changelog.FormatOptions{Plain: cfg.Plain}

	if len(args) == 1 {
		return showVersion(log, args[0], cmd, opts)
	}

	last := showLastFlag
	if last <= 0 {
		last = cfg.ShowLast
	}
	return showRecent(log, last, cmd, opts)
}

func showVersion(log *changelog.ChangeLog, version string, cmd *cobra.Command, opts changelog.FormatOptions) error {
	entry, err := lookupEntry(log, version)
	if err != nil {
		var notFound *changelog.EntryNotFoundError
		if stderrors.As(err, &notFound) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Version %q not found.\n\n", version)
			fmt.Fprintf(cmd.ErrOrStderr(), "Available versions:\n")
			for _, label := range log.Versions() {
				fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", label)
			}
			return NewExitError(ExitInvalidArguments)
		}
		var formatErr *changelog.VersionFormatError
		if stderrors.As(err, &formatErr) {
			errors.PrintError(errors.MalformedVersion(version))
			return NewExitError(ExitInvalidArguments)
		}
		var noEntry *changelog.NoEntryError
		if stderrors.As(err, &noEntry) {
			fmt.Fprintln(cmd.OutOrStdout(), "No change log entries found.")
			return nil
		}
		return fmt.Errorf("looking up entry: %w", err)
	}

	return changelog.FormatEntry(entry, cmd.OutOrStdout(), opts)
}

// lookupEntry resolves a version argument, treating "unreleased" as the
// current entry.
func lookupEntry(log *changelog.ChangeLog, version string) (*changelog.Entry, error) {
	if version == "unreleased" {
		entry, err := log.GetEntry("", false)
		if err != nil {
			return nil, err
		}
		if !entry.Version.IsZero() {
			return nil, &changelog.EntryNotFoundError{Available: log.Versions()}
		}
		return entry, nil
	}
	return log.GetEntry(version, false)
}

func showRecent(log *changelog.ChangeLog, n int, cmd *cobra.Command, opts changelog.FormatOptions) error {
	if log.MessageCount() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No change log entries found.")
		return nil
	}

	written, err := changelog.FormatRecent(log, n, cmd.OutOrStdout(), opts)
	if err != nil {
		return fmt.Errorf("formatting messages: %w", err)
	}

	if total := log.MessageCount(); total > written {
		fmt.Fprintf(cmd.OutOrStdout(), "\n(%d of %d messages shown. Use --last %d to see all)\n",
			written, total, total)
	}
	return nil
}
