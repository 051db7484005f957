package changelog

import (
	"fmt"
	"io"
	"strings"
)

const (
	// Bullet marks the first line of a message.
	Bullet = "*"
	// Indent precedes each bullet in serialized output.
	Indent = "    "

	entryMarker = "--"
)

// Message is one change message. Element 0 is the first line with the
// bullet and surrounding whitespace already stripped; any further
// elements are continuation lines kept verbatim, terminators included.
// A Message always has at least one element.
type Message []string

// Text returns the message's first line.
func (m Message) Text() string {
	return m[0]
}

// Continuation returns the verbatim continuation lines, if any.
func (m Message) Continuation() []string {
	return m[1:]
}

// Entry is one release's worth of changes: a free-form date, a version,
// and the ordered messages recorded for it. The zero Version marks the
// current (unreleased) entry.
type Entry struct {
	Date     string
	Version  Version
	Messages []Message
}

// AddMessage appends a new message group holding text as its first line.
func (e *Entry) AddMessage(text string) {
	e.Messages = append(e.Messages, Message{text})
}

// CompleteLatestMessage appends raw verbatim to the last message group.
// When the entry has no messages yet there is nothing to complete; the
// call is a tolerated no-op and returns false so the caller can report
// the stray line.
func (e *Entry) CompleteLatestMessage(raw string) bool {
	if len(e.Messages) == 0 {
		return false
	}
	last := len(e.Messages) - 1
	e.Messages[last] = append(e.Messages[last], raw)
	return true
}

// Write serializes the entry: a "<date>  --  <version>" header with
// absent fields rendered empty, then each message as an indented bullet
// line followed by its continuation lines unchanged.
func (e *Entry) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s  %s  %s\n", e.Date, entryMarker, e.Version); err != nil {
		return err
	}
	for _, msg := range e.Messages {
		if _, err := fmt.Fprintf(w, "%s%s %s\n", Indent, Bullet, msg.Text()); err != nil {
			return err
		}
		if _, err := io.WriteString(w, strings.Join(msg.Continuation(), "")); err != nil {
			return err
		}
	}
	return nil
}
