package changelog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// FormatOptions controls terminal output formatting.
type FormatOptions struct {
	Plain    bool // Disable colors and styling
	MaxWidth int  // Maximum line width (0 = auto-detect)
}

var (
	headerStyle  = color.New(color.Bold)
	dateStyle    = color.New(color.FgCyan)
	bulletStyle  = color.New(color.FgGreen)
	messageStyle = color.New(color.FgWhite)
)

// FormatEntry writes one entry to w with terminal styling: a version
// header, then each message as a bullet with its continuation lines.
func FormatEntry(e *Entry, w io.Writer, opts FormatOptions) error {
	width := resolveWidth(opts.MaxWidth)

	if err := writeEntryHeader(e, w, opts); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, msg := range e.Messages {
		if err := writeMessage(msg, w, opts, width); err != nil {
			return fmt.Errorf("writing message: %w", err)
		}
	}
	return nil
}

// FormatRecent writes up to n messages to w, newest entries first,
// grouped under their entry headers. n <= 0 writes nothing. Returns
// the number of messages written.
func FormatRecent(c *ChangeLog, n int, w io.Writer, opts FormatOptions) (int, error) {
	if n <= 0 {
		return 0, nil
	}
	width := resolveWidth(opts.MaxWidth)

	written := 0
	for i, e := range c.Entries {
		if written >= n || len(e.Messages) == 0 {
			continue
		}
		if i > 0 && written > 0 {
			fmt.Fprintln(w)
		}
		if err := writeEntryHeader(e, w, opts); err != nil {
			return written, fmt.Errorf("writing header: %w", err)
		}
		for _, msg := range e.Messages {
			if written >= n {
				break
			}
			if err := writeMessage(msg, w, opts, width); err != nil {
				return written, fmt.Errorf("writing message: %w", err)
			}
			written++
		}
	}
	return written, nil
}

// writeEntryHeader writes the "unreleased" or "vX.Y (date)" header line.
func writeEntryHeader(e *Entry, w io.Writer, opts FormatOptions) error {
	label := VersionLabel(e)

	if opts.Plain {
		if e.Date != "" {
			_, err := fmt.Fprintf(w, "## %s (%s)\n", label, e.Date)
			return err
		}
		_, err := fmt.Fprintf(w, "## %s\n", label)
		return err
	}

	bold := headerStyle.SprintFunc()
	if e.Date != "" {
		cyan := dateStyle.SprintFunc()
		_, err := fmt.Fprintf(w, "## %s %s\n", bold(label), cyan("("+e.Date+")"))
		return err
	}
	_, err := fmt.Fprintf(w, "## %s\n", bold(label))
	return err
}

// writeMessage writes one message group: the first line wrapped to the
// terminal width, continuation lines verbatim.
func writeMessage(msg Message, w io.Writer, opts FormatOptions, width int) error {
	prefix := "  " + Bullet + " "

	if opts.Plain {
		if _, err := fmt.Fprintf(w, "%s%s\n", prefix, msg.Text()); err != nil {
			return err
		}
	} else {
		wrapped := wrapText(msg.Text(), width-len(prefix), "    ")
		green := bulletStyle.SprintFunc()
		plain := messageStyle.SprintFunc()
		if _, err := fmt.Fprintf(w, "  %s %s\n", green(Bullet), plain(wrapped)); err != nil {
			return err
		}
	}

	for _, cont := range msg.Continuation() {
		if _, err := io.WriteString(w, cont); err != nil {
			return err
		}
	}
	return nil
}

// resolveWidth determines the terminal width to use.
func resolveWidth(maxWidth int) int {
	if maxWidth > 0 {
		return maxWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// wrapText wraps text to fit within maxWidth, using indent for
// continuation lines.
func wrapText(text string, maxWidth int, indent string) string {
	if maxWidth <= 0 || len(text) <= maxWidth {
		return text
	}

	var lines []string
	remaining := text

	for len(remaining) > maxWidth {
		breakPoint := maxWidth
		for i := maxWidth - 1; i > 0; i-- {
			if remaining[i] == ' ' {
				breakPoint = i
				break
			}
		}
		lines = append(lines, remaining[:breakPoint])
		remaining = strings.TrimLeft(remaining[breakPoint:], " ")
	}
	if len(remaining) > 0 {
		lines = append(lines, remaining)
	}

	return strings.Join(lines, "\n"+indent)
}
