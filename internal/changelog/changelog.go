package changelog

// ChangeLog is the in-memory model of a whole change log file.
//
// Entries are kept in file order: the first entry is the most recent
// one, and the current (unreleased) entry, when present, is the head.
// At most one entry may have an absent version.
//
// Title holds the pre-entry text verbatim. AdditionalContent collects
// trailing text that could not be classified as a message continuation;
// it is parsed but intentionally not re-emitted by Save (a documented
// round-trip asymmetry inherited from the format's reference tooling).
type ChangeLog struct {
	// Path is the backing file, empty for purely in-memory logs.
	Path string

	Title             string
	AdditionalContent string
	Entries           []*Entry

	reporter Reporter
}

// Option configures a ChangeLog at construction time.
type Option func(*ChangeLog)

// WithReporter installs a diagnostic Reporter on the loader.
func WithReporter(r Reporter) Option {
	return func(c *ChangeLog) {
		if r != nil {
			c.reporter = r
		}
	}
}

// New returns an empty ChangeLog bound to path without loading it.
func New(path string, opts ...Option) *ChangeLog {
	c := &ChangeLog{
		Path:     path,
		reporter: nopReporter{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddEntry appends an entry to the end of the log. The loader and
// programmatic builders use this; it does not maintain the
// current-entry-first ordering, so callers opening a new current entry
// should go through GetEntry with create set instead.
func (c *ChangeLog) AddEntry(e *Entry) {
	c.Entries = append(c.Entries, e)
}

// GetEntry returns the entry for the given dotted version string, or
// the current entry when version is empty.
//
// With an empty log, a requested version or create=false yields a
// NoEntryError; create=true opens a fresh empty entry. With a non-empty
// log and no version, create=true inserts a new empty head when the
// current head already carries a version, so the unreleased slot is
// always first. A version that matches no entry yields an
// EntryNotFoundError.
func (c *ChangeLog) GetEntry(version string, create bool) (*Entry, error) {
	if len(c.Entries) == 0 {
		if version != "" || !create {
			return nil, &NoEntryError{}
		}
		c.AddEntry(&Entry{})
	}
	if version == "" {
		if !c.Entries[0].Version.IsZero() && create {
			c.Entries = append([]*Entry{{}}, c.Entries...)
		}
		return c.Entries[0], nil
	}
	want, err := ParseVersion(version)
	if err != nil {
		return nil, err
	}
	for _, e := range c.Entries {
		if e.Version.Equal(want) {
			return e, nil
		}
	}
	return nil, &EntryNotFoundError{Version: want, Available: c.Versions()}
}

// Add appends msg as a new message on the current entry, resolving it
// through GetEntry with the given create behavior.
func (c *ChangeLog) Add(msg string, create bool) error {
	entry, err := c.GetEntry("", create)
	if err != nil {
		return err
	}
	entry.AddMessage(msg)
	return nil
}

// Versions lists each entry's version label in file order. The current
// entry is labeled "unreleased".
func (c *ChangeLog) Versions() []string {
	labels := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		labels[i] = VersionLabel(e)
	}
	return labels
}

// VersionLabel returns the display label for an entry's version:
// its dotted form, or "unreleased" for the current entry.
func VersionLabel(e *Entry) string {
	if e.Version.IsZero() {
		return "unreleased"
	}
	return e.Version.String()
}

// MessageCount returns the total number of message groups across all
// entries.
func (c *ChangeLog) MessageCount() int {
	n := 0
	for _, e := range c.Entries {
		n += len(e.Messages)
	}
	return n
}
