package errors

import "fmt"

// Common error messages for the chlog CLI.
// These templates ensure consistent, actionable error messages.

// MissingMessageArgument creates an error for a missing change message argument.
func MissingMessageArgument() *CLIError {
	return NewArgumentErrorWithUsage(
		"change message is required",
		"chlog add \"<message>\"",
		"Provide the change message in quotes",
		"Example: chlog add \"fix crash when file is empty\"",
	)
}

// NoCurrentEntry creates an error for operations that need an unreleased entry.
func NoCurrentEntry(file string) *CLIError {
	return NewFormatError(
		fmt.Sprintf("%s has no current (unreleased) entry", file),
		"Add one with: chlog add --create \"<message>\"",
		"Or insert a bare '--' marker line at the top of the entries",
	)
}

// EntryNotFound creates an error for a version with no matching entry.
func EntryNotFound(version, file string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("no entry for version %s in %s", version, file),
		"Run 'chlog show' to list the recorded versions",
	)
}

// MalformedVersion creates an error for an unparseable version argument.
func MalformedVersion(version string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("malformed version %q", version),
		"chlog show <X.Y[.Z...]>",
		"Versions are dot-separated integers, e.g. 0.1.1",
	)
}

// ChangeLogNotFound creates an error for a missing change log file when
// one is required to exist.
func ChangeLogNotFound(file string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("change log file not found: %s", file),
		"Pass the path explicitly with --file",
		"Or set 'file' in .chlog/config.yml",
	)
}

// NotAGitRepository creates an error for git-backed commands outside a repository.
func NotAGitRepository() *CLIError {
	return NewRuntimeError(
		"not inside a git repository",
		"Run this command from a repository checkout",
		"Or add messages manually with 'chlog add'",
	)
}
