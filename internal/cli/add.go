package cli

import (
	stderrors "errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raveheart1/chlog/internal/changelog"
	"github.com/raveheart1/chlog/internal/errors"
)

var addCreateFlag bool

var addCmd = &cobra.Command{
	Use:   "add <message>",
	Short: "Record a change message on the unreleased entry",
	Long: `Record a change message on the current (unreleased) entry and save
the file. A missing file is created, and when the newest entry is
already a release, a fresh unreleased entry is opened on top.

Pass --create=false to refuse both and fail instead when there is no
unreleased entry to append to.

Examples:
  chlog add "fix crash when file is empty"
  chlog add --create=false "docs: clarify usage"`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAdd(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().BoolVar(&addCreateFlag, "create", true, "Open a new unreleased entry when needed")
}

func runAdd(cmd *cobra.Command, message string) error {
	log, cfg, err := openLog(cmd)
	if err != nil {
		return err
	}

	if !addCreateFlag {
		// Without create, the head entry must already be unreleased.
		head, err := log.GetEntry("", false)
		if err != nil || !head.Version.IsZero() {
			errors.PrintError(errors.NoCurrentEntry(cfg.File))
			return NewExitError(ExitInvalidArguments)
		}
	}

	if err := log.Add(message, addCreateFlag); err != nil {
		var noEntry *changelog.NoEntryError
		if stderrors.As(err, &noEntry) {
			errors.PrintError(errors.NoCurrentEntry(cfg.File))
			return NewExitError(ExitInvalidArguments)
		}
		return fmt.Errorf("adding message: %w", err)
	}

	if err := log.Save(); err != nil {
		return fmt.Errorf("saving %s: %w", cfg.File, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added to %s: %s\n", cfg.File, message)
	return nil
}
