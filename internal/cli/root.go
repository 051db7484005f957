// Package cli implements the chlog command line interface.
package cli

import (
	"context"
	"log/slog"
	"strings"

	"github.com/chainguard-dev/clog"
	"github.com/spf13/cobra"

	"github.com/raveheart1/chlog/internal/changelog"
	"github.com/raveheart1/chlog/internal/config"
	"github.com/raveheart1/chlog/internal/errors"
)

var (
	fileFlag   string
	configFlag string
	plainFlag  bool
	debugFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "chlog",
	Short: "Maintain upstream change log files",
	Long: `chlog reads and writes plain-text upstream change log files:
a title block, dated release entries ("<date> -- <version>"), an
optional current (unreleased) entry marked by a bare "--" line, and
bulleted messages with verbatim continuation lines.

Common usage:
  chlog add "fix crash when file is empty"   # record a change
  chlog show                                 # view recent changes
  chlog release 0.2.0                        # stamp the unreleased entry
  chlog fmt                                  # normalize the file`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&fileFlag, "file", "f", "", "Change log file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Project config file path")
	rootCmd.PersistentFlags().BoolVar(&plainFlag, "plain", false, "Plain text output (no colors)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
}

// Execute runs the root command. Errors are printed in their structured
// form before being returned, so main only has to pick the exit code.
func Execute() error {
	ctx := clog.WithLogger(context.Background(), clog.New(slog.Default().Handler()))

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printCommandError(err)
		return err
	}
	return nil
}

func printCommandError(err error) {
	var exitErr *ExitError
	if asExitError(err, &exitErr) {
		// The command already wrote its diagnostics.
		return
	}
	if cliErr := errors.AsCLIError(err); cliErr != nil {
		errors.PrintError(cliErr)
		return
	}
	errors.PrintSimpleError(err, errors.Runtime)
}

// loadConfig merges file/env/default config with the global flags.
func loadConfig() (*config.Configuration, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, errors.Wrap(err, errors.Configuration,
			"Check .chlog/config.yml for syntax errors",
			"Run 'chlog config init' to generate a valid template")
	}
	if fileFlag != "" {
		cfg.File = fileFlag
	}
	if plainFlag {
		cfg.Plain = true
	}
	return cfg, nil
}

// openLog loads the configured change log with a diagnostic reporter
// attached. A missing file yields an empty model, not an error.
func openLog(cmd *cobra.Command) (*changelog.ChangeLog, *config.Configuration, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	log := clog.FromContext(cmd.Context())
	reporter := changelog.ReporterFunc(func(line string) {
		log.Warnf("ignoring %q (unexpected format)", strings.TrimRight(line, "\n"))
	})

	c, err := changelog.Open(cfg.File, changelog.WithReporter(reporter))
	if err != nil {
		return nil, nil, errors.WrapWithMessage(err, errors.Format, "loading "+cfg.File,
			"Fix the malformed entry header and retry")
	}
	return c, cfg, nil
}
