package changelog

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// FormatTitle returns the title trimmed of surrounding whitespace with
// exactly one blank line after it.
func (c *ChangeLog) FormatTitle() string {
	return strings.TrimSpace(c.Title) + "\n\n"
}

// Write serializes the model to w: the formatted title, then each entry
// in order. AdditionalContent is not emitted (see ChangeLog).
func (c *ChangeLog) Write(w io.Writer) error {
	if _, err := io.WriteString(w, c.FormatTitle()); err != nil {
		return err
	}
	for _, entry := range c.Entries {
		if err := entry.Write(w); err != nil {
			return err
		}
	}
	return nil
}

// Save writes the model back to the bound file, truncating it. If the
// file exists without its owner write bit, the bit is added first so a
// read-only checkout can still be updated.
func (c *ChangeLog) Save() error {
	if c.Path == "" {
		return fmt.Errorf("change log has no backing file")
	}
	if err := ensureWritable(c.Path); err != nil {
		return fmt.Errorf("making %s writable: %w", c.Path, err)
	}
	f, err := os.Create(c.Path)
	if err != nil {
		return fmt.Errorf("opening %s for writing: %w", c.Path, err)
	}
	if err := c.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", c.Path, err)
	}
	return f.Close()
}

// String renders the serialized form, mainly for tests and display.
func (c *ChangeLog) String() string {
	var b strings.Builder
	// strings.Builder never returns a write error.
	_ = c.Write(&b)
	return b.String()
}

// ensureWritable adds the owner write bit to path's mode when missing.
// A path that does not exist yet is fine as-is.
func ensureWritable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	mode := info.Mode()
	if mode&0o200 != 0 {
		return nil
	}
	return os.Chmod(path, mode|0o200)
}
