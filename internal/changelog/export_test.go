package changelog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExportYAML_SampleLog(t *testing.T) {
	c := loadString(t, sampleLog)

	var b strings.Builder
	require.NoError(t, ExportYAML(c, &b))

	var doc struct {
		Title   string `yaml:"title"`
		Entries []struct {
			Version  string `yaml:"version"`
			Date     string `yaml:"date"`
			Messages []struct {
				Text string `yaml:"text"`
			} `yaml:"messages"`
		} `yaml:"entries"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(b.String()), &doc))

	assert.Equal(t, "Change log for project Yoo\n==========================", doc.Title)
	require.Len(t, doc.Entries, 3)
	assert.Empty(t, doc.Entries[0].Version)
	assert.Equal(t, "0.1.1", doc.Entries[1].Version)
	assert.Equal(t, "2002-02-01", doc.Entries[1].Date)
	require.Len(t, doc.Entries[1].Messages, 2)
	assert.Equal(t, "fix bug #435454", doc.Entries[1].Messages[0].Text)
}

func TestExportYAML_IncludesAdditionalContent(t *testing.T) {
	// The save path drops additional content; export keeps it visible.
	c := loadString(t, "Title\n\n--\nstray content\n    * message\n")

	var b strings.Builder
	require.NoError(t, ExportYAML(c, &b))

	assert.Contains(t, b.String(), "additional_content: stray content")
}

func TestExportYAML_ContinuationLines(t *testing.T) {
	c := loadString(t, "--\n    * message\n      more detail\n")

	var b strings.Builder
	require.NoError(t, ExportYAML(c, &b))

	var doc struct {
		Entries []struct {
			Messages []struct {
				Text         string   `yaml:"text"`
				Continuation []string `yaml:"continuation"`
			} `yaml:"messages"`
		} `yaml:"entries"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(b.String()), &doc))

	require.Len(t, doc.Entries, 1)
	require.Len(t, doc.Entries[0].Messages, 1)
	assert.Equal(t, []string{"      more detail"}, doc.Entries[0].Messages[0].Continuation)
}
