package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/raveheart1/chlog/internal/changelog"
	"github.com/raveheart1/chlog/internal/errors"
)

var releaseDateFlag string

var releaseCmd = &cobra.Command{
	Use:   "release <version>",
	Short: "Stamp the unreleased entry with a version and date",
	Long: `Turn the current (unreleased) entry into a released one by assigning
it the given version and today's date, then save the file.

Examples:
  chlog release 0.2.0
  chlog release 0.2.0 --date 2024-06-01`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRelease(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(releaseCmd)

	releaseCmd.Flags().StringVar(&releaseDateFlag, "date", "", "Release date to stamp (default: today)")
}

func runRelease(cmd *cobra.Command, versionArg string) error {
	version, err := changelog.ParseVersion(versionArg)
	if err != nil {
		errors.PrintError(errors.MalformedVersion(versionArg))
		return NewExitError(ExitInvalidArguments)
	}

	log, cfg, err := openLog(cmd)
	if err != nil {
		return err
	}

	for _, entry := range log.Entries {
		if entry.Version.Equal(version) {
			errors.PrintError(errors.NewArgumentError(
				fmt.Sprintf("version %s is already released", version),
				"Pick the next version number",
				"Run 'chlog show' to list recorded versions"))
			return NewExitError(ExitInvalidArguments)
		}
	}

	head, err := log.GetEntry("", false)
	if err != nil || !head.Version.IsZero() {
		errors.PrintError(errors.NoCurrentEntry(cfg.File))
		return NewExitError(ExitInvalidArguments)
	}

	head.Version = version
	head.Date = releaseDateFlag
	if head.Date == "" {
		head.Date = time.Now().Format(cfg.DateFormat)
	}

	if err := log.Save(); err != nil {
		return fmt.Errorf("saving %s: %w", cfg.File, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Released %s as of %s in %s\n", version, head.Date, cfg.File)
	return nil
}
