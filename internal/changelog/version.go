package changelog

import (
	"fmt"
	"strconv"
	"strings"
)

// VersionFormatError is returned when a version string contains a
// segment that does not parse as an integer.
type VersionFormatError struct {
	Input   string
	Segment string
}

func (e *VersionFormatError) Error() string {
	return fmt.Sprintf("invalid version %q: segment %q is not a number", e.Input, e.Segment)
}

// Version is an immutable dotted version number ("0.1.1") held as an
// ordered sequence of integers. The zero Version has no components and
// represents the absent version of the current (unreleased) entry.
//
// Comparison is lexicographic over the components: a shorter version
// sorts before a longer one sharing its prefix, so "1.2" and "1.2.0"
// are NOT equal.
type Version struct {
	parts []int
}

// ParseVersion parses a dot-delimited version string such as "0.1.1".
// Returns a VersionFormatError if any segment is not an integer.
func ParseVersion(s string) (Version, error) {
	segments := strings.Split(s, ".")
	parts := make([]int, len(segments))
	for i, seg := range segments {
		n, err := strconv.Atoi(seg)
		if err != nil {
			return Version{}, &VersionFormatError{Input: s, Segment: seg}
		}
		parts[i] = n
	}
	return Version{parts: parts}, nil
}

// NewVersion builds a Version directly from integer components.
// No validation is applied to the components.
func NewVersion(parts ...int) Version {
	if len(parts) == 0 {
		return Version{}
	}
	p := make([]int, len(parts))
	copy(p, parts)
	return Version{parts: p}
}

// IsZero reports whether the version is absent (no components).
func (v Version) IsZero() bool {
	return len(v.parts) == 0
}

// Parts returns a copy of the version components.
func (v Version) Parts() []int {
	if v.parts == nil {
		return nil
	}
	p := make([]int, len(v.parts))
	copy(p, v.parts)
	return p
}

// String renders the version in its dotted form. The zero Version
// renders as the empty string.
func (v Version) String() string {
	if len(v.parts) == 0 {
		return ""
	}
	segs := make([]string, len(v.parts))
	for i, n := range v.parts {
		segs[i] = strconv.Itoa(n)
	}
	return strings.Join(segs, ".")
}

// Compare returns -1, 0 or 1 depending on whether v sorts before,
// equal to, or after other.
func (v Version) Compare(other Version) int {
	for i := 0; i < len(v.parts) && i < len(other.parts); i++ {
		switch {
		case v.parts[i] < other.parts[i]:
			return -1
		case v.parts[i] > other.parts[i]:
			return 1
		}
	}
	switch {
	case len(v.parts) < len(other.parts):
		return -1
	case len(v.parts) > len(other.parts):
		return 1
	}
	return 0
}

// Equal reports structural equality: same length, same components.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// Less reports whether v sorts strictly before other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}
