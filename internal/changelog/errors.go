package changelog

import (
	"fmt"
	"strings"
)

// NoEntryError is returned by entry lookup when the change log holds no
// entries and none could be created.
type NoEntryError struct{}

func (e *NoEntryError) Error() string {
	return "change log has no entries"
}

// EntryNotFoundError is returned when a specific requested version
// matches no entry.
type EntryNotFoundError struct {
	Version   Version
	Available []string
}

func (e *EntryNotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("no entry for version %q", e.Version.String())
	}
	return fmt.Sprintf("no entry for version %q (available: %s)",
		e.Version.String(), strings.Join(e.Available, ", "))
}
