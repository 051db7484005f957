package changelog

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// exportDocument is the YAML shape of an exported change log.
type exportDocument struct {
	Title             string        `yaml:"title"`
	Entries           []exportEntry `yaml:"entries"`
	AdditionalContent string        `yaml:"additional_content,omitempty"`
}

type exportEntry struct {
	Version  string          `yaml:"version,omitempty"`
	Date     string          `yaml:"date,omitempty"`
	Messages []exportMessage `yaml:"messages"`
}

type exportMessage struct {
	Text         string   `yaml:"text"`
	Continuation []string `yaml:"continuation,omitempty"`
}

// ExportYAML writes the model to w as YAML. Unlike Save, the export
// includes AdditionalContent, so everything the parser read is visible.
// Continuation lines are exported with their terminators stripped.
func ExportYAML(c *ChangeLog, w io.Writer) error {
	doc := exportDocument{
		Title:             strings.TrimSpace(c.Title),
		Entries:           make([]exportEntry, 0, len(c.Entries)),
		AdditionalContent: strings.TrimRight(c.AdditionalContent, "\n"),
	}

	for _, e := range c.Entries {
		ee := exportEntry{
			Version: e.Version.String(),
			Date:    e.Date,
		}
		for _, msg := range e.Messages {
			em := exportMessage{Text: msg.Text()}
			for _, cont := range msg.Continuation() {
				em.Continuation = append(em.Continuation, strings.TrimRight(cont, "\n"))
			}
			ee.Messages = append(ee.Messages, em)
		}
		doc.Entries = append(doc.Entries, ee)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding change log YAML: %w", err)
	}
	return enc.Close()
}
