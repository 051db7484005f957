package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raveheart1/chlog/internal/changelog"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the parsed change log as YAML",
	Long: `Export the parsed change log model as YAML on stdout.

Unlike the textual format, the export includes the unclassified trailing
content the parser collected, so nothing that was read is hidden.

Example:
  chlog export > changelog.yaml`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command) error {
	log, _, err := openLog(cmd)
	if err != nil {
		return err
	}

	if err := changelog.ExportYAML(log, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("exporting change log: %w", err)
	}
	return nil
}
