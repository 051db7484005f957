package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/raveheart1/chlog/internal/config"
	"github.com/raveheart1/chlog/internal/errors"
)

var (
	configInitProject bool
	configInitForce   bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage chlog configuration",
	Long: `Manage chlog configuration settings.

Configuration is loaded with the following priority (highest to lowest):
  1. Environment variables (CHLOG_*)
  2. Project config (.chlog/config.yml)
  3. User config (~/.config/chlog/config.yml)
  4. Built-in defaults`,
	Example: `  # Show the effective configuration
  chlog config show

  # Create a user-level config file with defaults
  chlog config init`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file with commented defaults",
	Long: `Create a configuration file populated with the built-in defaults and
a comment explaining each option.

By default the user-level config is created, which applies to all your
projects. Use --project to create a project-specific config instead.

An existing config file is left unchanged unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigInit(cmd)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "file:          %s\n", cfg.File)
		fmt.Fprintf(out, "plain:         %t\n", cfg.Plain)
		fmt.Fprintf(out, "show_last:     %d\n", cfg.ShowLast)
		fmt.Fprintf(out, "date_format:   %s\n", cfg.DateFormat)
		fmt.Fprintf(out, "suggest_limit: %d\n", cfg.SuggestLimit)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().BoolVarP(&configInitProject, "project", "p", false, "Create project-level config (.chlog/config.yml)")
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")
}

func runConfigInit(cmd *cobra.Command) error {
	var path string
	if configInitProject {
		path = config.ProjectConfigPath()
	} else {
		userPath, err := config.UserConfigPath()
		if err != nil {
			return errors.Wrap(err, errors.Configuration,
				"Set HOME (or XDG_CONFIG_HOME) so the user config directory can be resolved",
				"Use --project to create a project-level config instead")
		}
		path = userPath
	}

	if _, err := os.Stat(path); err == nil && !configInitForce {
		fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s (use --force to overwrite)\n", path)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, errors.Runtime,
			"Check permissions on "+filepath.Dir(path))
	}
	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return errors.Wrap(err, errors.Runtime,
			"Check permissions on "+path)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}
