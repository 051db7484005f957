package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raveheart1/chlog/internal/changelog"
)

func TestShowCmd_Flags(t *testing.T) {
	t.Parallel()

	cmd := findCommand("show [version]")
	require.NotNil(t, cmd)

	f := cmd.Flags().Lookup("last")
	require.NotNil(t, f)
	assert.Equal(t, "0", f.DefValue)
	assert.Equal(t, "int", f.Value.Type())
}

func TestShowRecent(t *testing.T) {
	sampleLog(t)

	cmd, stdout, _ := newTestCmd()
	require.NoError(t, runShow(cmd, nil))

	out := stdout.String()
	assert.Contains(t, out, "## unreleased")
	assert.Contains(t, out, "  * pending tweak")
	assert.Contains(t, out, "## 0.2.0 (2024-05-01)")
	assert.Contains(t, out, "  * fix crash when file is empty")
	assert.Contains(t, out, "## 0.1.0 (2024-04-01)")
	assert.NotContains(t, out, "messages shown")
}

func TestShowRecentLimited(t *testing.T) {
	sampleLog(t)

	oldLast := showLastFlag
	showLastFlag = 1
	t.Cleanup(func() { showLastFlag = oldLast })

	cmd, stdout, _ := newTestCmd()
	require.NoError(t, runShow(cmd, nil))

	out := stdout.String()
	assert.Contains(t, out, "  * pending tweak")
	assert.NotContains(t, out, "  * initial release")
	assert.Contains(t, out, "(1 of 3 messages shown. Use --last 3 to see all)")
}

func TestShowVersion(t *testing.T) {
	sampleLog(t)

	cmd, stdout, _ := newTestCmd()
	require.NoError(t, runShow(cmd, []string{"0.2.0"}))

	out := stdout.String()
	assert.Contains(t, out, "## 0.2.0 (2024-05-01)")
	assert.Contains(t, out, "  * fix crash when file is empty")
	assert.NotContains(t, out, "pending tweak")
}

func TestShowUnreleased(t *testing.T) {
	sampleLog(t)

	cmd, stdout, _ := newTestCmd()
	require.NoError(t, runShow(cmd, []string{"unreleased"}))

	out := stdout.String()
	assert.Contains(t, out, "## unreleased")
	assert.Contains(t, out, "  * pending tweak")
	assert.NotContains(t, out, "fix crash")
}

func TestShowVersionNotFound(t *testing.T) {
	sampleLog(t)

	cmd, _, stderr := newTestCmd()
	err := runShow(cmd, []string{"9.9"})

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitInvalidArguments, exitErr.Code)

	out := stderr.String()
	assert.Contains(t, out, `Version "9.9" not found.`)
	assert.Contains(t, out, "Available versions:")
	assert.Contains(t, out, "unreleased")
	assert.Contains(t, out, "0.2.0")
	assert.Contains(t, out, "0.1.0")
}

func TestShowMalformedVersionArg(t *testing.T) {
	sampleLog(t)

	cmd, _, _ := newTestCmd()
	err := runShow(cmd, []string{"not.a.version"})

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitInvalidArguments, exitErr.Code)
}

func TestShowMissingFile(t *testing.T) {
	useLogFile(t, filepath.Join(t.TempDir(), "ChangeLog"))

	cmd, stdout, _ := newTestCmd()
	require.NoError(t, runShow(cmd, nil))
	assert.Contains(t, stdout.String(), "No change log entries found.")
}

func TestShowUnreleasedWhenHeadIsReleased(t *testing.T) {
	writeLog(t, func(c *changelog.ChangeLog) {
		c.Title = "Widget"
		rel := &changelog.Entry{Date: "2024-05-01", Version: changelog.NewVersion(0, 2, 0)}
		rel.AddMessage("fix crash")
		c.AddEntry(rel)
	})

	cmd, _, stderr := newTestCmd()
	err := runShow(cmd, []string{"unreleased"})

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitInvalidArguments, exitErr.Code)
	assert.Contains(t, stderr.String(), `Version "unreleased" not found.`)
}
