// Package cli tests the chlog commands against real change log files in
// temporary directories.
package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/raveheart1/chlog/internal/changelog"
)

// newTestCmd returns a throwaway command with captured output streams
// and a background context, for calling run functions directly.
func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetContext(context.Background())
	return cmd, &stdout, &stderr
}

// useLogFile points the global --file flag at path for the duration of
// the test.
func useLogFile(t *testing.T, path string) {
	t.Helper()
	oldFile, oldPlain := fileFlag, plainFlag
	fileFlag = path
	plainFlag = true
	t.Cleanup(func() {
		fileFlag = oldFile
		plainFlag = oldPlain
	})
}

// writeLog builds a change log model, saves it to a fresh temp file, and
// points the CLI at it.
func writeLog(t *testing.T, build func(c *changelog.ChangeLog)) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ChangeLog")
	c := changelog.New(path)
	build(c)
	require.NoError(t, c.Save())
	useLogFile(t, path)
	return path
}

// sampleLog is a three-entry log: an unreleased head and two releases.
func sampleLog(t *testing.T) string {
	t.Helper()
	return writeLog(t, func(c *changelog.ChangeLog) {
		c.Title = "Change log for widget"
		head := &changelog.Entry{}
		head.AddMessage("pending tweak")
		c.AddEntry(head)
		rel2 := &changelog.Entry{Date: "2024-05-01", Version: changelog.NewVersion(0, 2, 0)}
		rel2.AddMessage("fix crash when file is empty")
		c.AddEntry(rel2)
		rel1 := &changelog.Entry{Date: "2024-04-01", Version: changelog.NewVersion(0, 1, 0)}
		rel1.AddMessage("initial release")
		c.AddEntry(rel1)
	})
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// findCommand locates a registered subcommand by its Use line.
func findCommand(use string) *cobra.Command {
	for _, cmd := range rootCmd.Commands() {
		if cmd.Use == use {
			return cmd
		}
	}
	return nil
}
