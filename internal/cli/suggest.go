package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/raveheart1/chlog/internal/changelog"
	"github.com/raveheart1/chlog/internal/errors"
	"github.com/raveheart1/chlog/internal/git"
)

var (
	suggestApplyFlag bool
	suggestLimitFlag int
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Draft change messages from git commit subjects",
	Long: `Draft change messages from the subjects of commits made since the
last release. The last release is the newest entry with a version; when
its date cannot be parsed, the most recent commits are used instead, up
to the configured limit.

Commit subjects that already appear in the change log are skipped.
Merge commits are always skipped.

By default the drafts are only printed. With --apply they are appended
to the unreleased entry and the file is saved.

Examples:
  chlog suggest
  chlog suggest --apply
  chlog suggest --limit 50`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSuggest(cmd)
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)

	suggestCmd.Flags().BoolVar(&suggestApplyFlag, "apply", false, "Append the drafts to the unreleased entry")
	suggestCmd.Flags().IntVar(&suggestLimitFlag, "limit", 0, "Max commits to inspect (default from config)")
}

func runSuggest(cmd *cobra.Command) error {
	log, cfg, err := openLog(cmd)
	if err != nil {
		return err
	}

	if debugFlag {
		git.SetDebugLogger(func(format string, args ...any) {
			fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
		})
	}

	if !git.IsRepository() {
		errors.PrintError(errors.NotAGitRepository())
		return NewExitError(ExitFailure)
	}

	limit := suggestLimitFlag
	if limit <= 0 {
		limit = cfg.SuggestLimit
	}

	since, haveSince := lastReleaseTime(log, cfg.DateFormat)
	if haveSince {
		// With a reliable lower bound the limit is unnecessary.
		limit = 0
	}

	stop := startSpinner(cfg.Plain, " scanning commit history...")
	commits, err := git.CommitsSince("", since, limit)
	stop()
	if err != nil {
		return fmt.Errorf("reading commit history: %w", err)
	}

	drafts := filterKnownSubjects(log, commits)
	if len(drafts) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No new commits to suggest.")
		return nil
	}

	if !suggestApplyFlag {
		fmt.Fprintf(cmd.OutOrStdout(), "Drafted %d message(s):\n", len(drafts))
		for _, subject := range drafts {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s %s\n", changelog.Bullet, subject)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'chlog suggest --apply' to record them.")
		return nil
	}

	// Append oldest first so messages stay in chronological order.
	for i := len(drafts) - 1; i >= 0; i-- {
		if err := log.Add(drafts[i], true); err != nil {
			return fmt.Errorf("adding message: %w", err)
		}
	}
	if err := log.Save(); err != nil {
		return fmt.Errorf("saving %s: %w", cfg.File, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Recorded %d message(s) in %s\n", len(drafts), cfg.File)
	return nil
}

// lastReleaseTime parses the newest released entry's date with the
// configured layout. Dates are free-form in the format, so failure to
// parse is expected and reported as absent.
func lastReleaseTime(log *changelog.ChangeLog, layout string) (time.Time, bool) {
	for _, entry := range log.Entries {
		if entry.Version.IsZero() {
			continue
		}
		t, err := time.Parse(layout, entry.Date)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
	return time.Time{}, false
}

// filterKnownSubjects drops commits whose subject already appears as a
// message first line, or is empty. Order is preserved (newest first).
func filterKnownSubjects(log *changelog.ChangeLog, commits []git.Commit) []string {
	known := make(map[string]bool)
	for _, entry := range log.Entries {
		for _, msg := range entry.Messages {
			known[msg.Text()] = true
		}
	}

	var drafts []string
	for _, commit := range commits {
		subject := strings.TrimSpace(commit.Subject)
		if subject == "" || known[subject] {
			continue
		}
		known[subject] = true
		drafts = append(drafts, subject)
	}
	return drafts
}

// startSpinner shows a spinner on stderr while a slow operation runs.
// It is a no-op for plain output or when stderr is not a terminal.
func startSpinner(plain bool, suffix string) func() {
	if plain || !term.IsTerminal(int(os.Stderr.Fd())) {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = suffix
	s.Start()
	return s.Stop
}
