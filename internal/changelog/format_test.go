package changelog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatEntry_Plain(t *testing.T) {
	e := &Entry{Date: "2002-02-01", Version: NewVersion(0, 1, 1)}
	e.AddMessage("fix bug #435454")
	e.AddMessage("fix bug #434356")

	var b strings.Builder
	require.NoError(t, FormatEntry(e, &b, FormatOptions{Plain: true, MaxWidth: 80}))

	expected := "## 0.1.1 (2002-02-01)\n" +
		"  * fix bug #435454\n" +
		"  * fix bug #434356\n"
	assert.Equal(t, expected, b.String())
}

func TestFormatEntry_CurrentEntryLabeledUnreleased(t *testing.T) {
	e := &Entry{}
	e.AddMessage("add a new functionnality")

	var b strings.Builder
	require.NoError(t, FormatEntry(e, &b, FormatOptions{Plain: true, MaxWidth: 80}))

	assert.True(t, strings.HasPrefix(b.String(), "## unreleased\n"))
}

func TestFormatEntry_ContinuationLinesVerbatim(t *testing.T) {
	e := &Entry{Date: "2002-01-01", Version: NewVersion(0, 1)}
	e.AddMessage("initial release")
	e.CompleteLatestMessage("      with details\n")

	var b strings.Builder
	require.NoError(t, FormatEntry(e, &b, FormatOptions{Plain: true, MaxWidth: 80}))

	assert.Contains(t, b.String(), "      with details\n")
}

func TestFormatRecent_LimitsMessages(t *testing.T) {
	c := loadString(t, sampleLog)

	var b strings.Builder
	n, err := FormatRecent(c, 2, &b, FormatOptions{Plain: true, MaxWidth: 80})
	require.NoError(t, err)

	assert.Equal(t, 2, n)
	out := b.String()
	assert.Contains(t, out, "add a new functionnality")
	assert.Contains(t, out, "fix bug #435454")
	assert.NotContains(t, out, "initial release")
}

func TestFormatRecent_ZeroOrNegative(t *testing.T) {
	c := loadString(t, sampleLog)

	var b strings.Builder
	n, err := FormatRecent(c, 0, &b, FormatOptions{Plain: true})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, b.String())
}

func TestFormatRecent_MoreThanAvailable(t *testing.T) {
	c := loadString(t, sampleLog)

	var b strings.Builder
	n, err := FormatRecent(c, 100, &b, FormatOptions{Plain: true, MaxWidth: 80})
	require.NoError(t, err)

	assert.Equal(t, c.MessageCount(), n)
	assert.Contains(t, b.String(), "initial release")
}

func TestWrapText(t *testing.T) {
	tests := map[string]struct {
		text     string
		width    int
		expected string
	}{
		"fits":          {text: "short", width: 20, expected: "short"},
		"wraps on word": {text: "one two three four", width: 9, expected: "one two\n    three\n    four"},
		"zero width":    {text: "anything goes", width: 0, expected: "anything goes"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, wrapText(tc.text, tc.width, "    "))
		})
	}
}
