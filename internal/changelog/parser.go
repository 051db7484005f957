package changelog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Open binds a ChangeLog to path and loads it. A file that does not
// exist or cannot be opened is not an error: it is the valid "new
// change log" state, and Open returns an empty model bound to the path.
func Open(path string, opts ...Option) (*ChangeLog, error) {
	c := New(path, opts...)

	f, err := os.Open(path)
	if err != nil {
		// Missing or unreadable source: start empty.
		return c, nil
	}
	defer f.Close()

	if err := c.Load(f); err != nil {
		return nil, err
	}
	return c, nil
}

// Load parses the change log text from r into the model in a single
// pass. Each physical line is classified as an entry marker, a title
// line, a bulleted message, a message continuation, or additional
// content. Malformed lines never abort the load; only a version string
// that fails to parse, or a read error, does.
func (c *ChangeLog) Load(r io.Reader) error {
	br := bufio.NewReader(r)
	var last *Entry
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if perr := c.consumeLine(line, &last); perr != nil {
				return perr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading change log: %w", err)
		}
	}
}

// consumeLine advances the line classification state machine. last
// points at the entry currently being populated, nil before the first
// marker.
func (c *ChangeLog) consumeLine(line string, last **Entry) error {
	sline := strings.TrimSpace(line)
	words := strings.Fields(sline)

	switch {
	case len(words) == 1 && words[0] == entryMarker:
		// Bare "--": open the current (unreleased) entry.
		entry := &Entry{}
		c.AddEntry(entry)
		*last = entry

	case len(words) == 3 && words[1] == entryMarker:
		// "<date> -- <version>": open a released entry.
		version, err := ParseVersion(words[2])
		if err != nil {
			return err
		}
		entry := &Entry{Date: words[0], Version: version}
		c.AddEntry(entry)
		*last = entry

	case *last == nil:
		// Before the first marker: non-blank lines accumulate verbatim
		// into the title, blank lines are skipped.
		if sline == "" {
			return nil
		}
		c.Title += line

	case strings.HasPrefix(sline, Bullet):
		(*last).AddMessage(strings.TrimSpace(sline[len(Bullet):]))

	case len((*last).Messages) > 0:
		(*last).CompleteLatestMessage(line)

	default:
		// A continuation-style line with no message to attach to.
		// Tolerated: keep it as additional content and let the
		// reporter surface it.
		c.AdditionalContent += line
		c.reporter.MalformedLine(line)
	}
	return nil
}
