package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raveheart1/chlog/internal/errors"
)

var fmtCheckFlag bool

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Rewrite the change log in canonical form",
	Long: `Rewrite the change log file in canonical form: title trimmed to a
single trailing blank line, entry headers normalized to
"<date>  --  <version>", messages indented with four spaces.

Continuation lines are preserved verbatim. Unclassified trailing text
is dropped, the same as any other save.

With --check, no file is written; the command exits with code 2 when
the file is not already canonical.

Examples:
  chlog fmt
  chlog fmt --check`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFmt(cmd)
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVar(&fmtCheckFlag, "check", false, "Report instead of rewriting; exit 2 when not canonical")
}

func runFmt(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	original, err := os.ReadFile(cfg.File)
	if err != nil {
		errors.PrintError(errors.ChangeLogNotFound(cfg.File))
		return NewExitError(ExitInvalidArguments)
	}

	log, _, err := openLog(cmd)
	if err != nil {
		return err
	}

	canonical := log.String()
	if canonical == string(original) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is canonical\n", cfg.File)
		return nil
	}

	if fmtCheckFlag {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s is not canonical (run 'chlog fmt' to rewrite)\n", cfg.File)
		return NewExitError(ExitNotCanonical)
	}

	if err := log.Save(); err != nil {
		return fmt.Errorf("saving %s: %w", cfg.File, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Rewrote %s\n", cfg.File)
	return nil
}
