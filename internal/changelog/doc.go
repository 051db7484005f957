// Package changelog parses and serializes upstream change log files.
//
// The format is a plain-text, line-oriented one:
//
//	Change log for project Yoo
//	==========================
//
//	 --
//	    * add a new functionnality
//
//	2002-02-01 -- 0.1.1
//	    * fix bug #435454
//	    * fix bug #434356
//
//	2002-01-01 -- 0.1
//	    * initial release
//
// Non-blank lines before the first entry marker form the title. A bare
// "--" line opens the current (unreleased) entry; a "<date> -- <version>"
// line opens a released entry. Bulleted lines are messages, and any line
// between a message and the next bullet or marker is kept verbatim as a
// continuation of that message.
//
// This package implements:
//   - Loading a file (or any io.Reader) into a ChangeLog model
//   - Entry lookup by version or by the current/unreleased slot
//   - Serialization back to the same textual format
//   - Terminal-styled display and a YAML export of the model
package changelog
