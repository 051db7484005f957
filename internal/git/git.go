// Package git provides the repository access chlog needs to draft
// change messages from commit history. It uses the go-git library, so
// no git CLI installation is required.
package git

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// debugLogger is a function that logs debug messages when debug mode is
// enabled. By default, it's a no-op. Set it via SetDebugLogger.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git operations.
// Pass nil to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// openRepo opens the git repository at path or the current working
// directory, traversing up the directory tree to find the repository
// root.
func openRepo(path string) (*gogit.Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	logDebug("[git] opening repository at %s", path)

	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}
	return repo, nil
}

// IsRepository checks if the current directory is within a git repository.
func IsRepository() bool {
	_, err := openRepo("")
	result := err == nil
	logDebug("[git] IsRepository: %v", result)
	return result
}

// Commit is the slice of commit metadata chlog cares about.
type Commit struct {
	Hash    string
	Subject string
	Author  string
	When    time.Time
}

// CommitsSince returns commits newer than since, newest first. A zero
// since returns up to limit commits from HEAD. Merge commits are
// skipped; their subjects describe the merge, not the change.
func CommitsSince(path string, since time.Time, limit int) ([]Commit, error) {
	repo, err := openRepo(path)
	if err != nil {
		return nil, err
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("getting HEAD reference: %w", err)
	}

	logOpts := &gogit.LogOptions{From: head.Hash()}
	if !since.IsZero() {
		logOpts.Since = &since
	}

	iter, err := repo.Log(logOpts)
	if err != nil {
		return nil, fmt.Errorf("reading commit log: %w", err)
	}
	defer iter.Close()

	var commits []Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if limit > 0 && len(commits) >= limit {
			return storer.ErrStop
		}
		if c.NumParents() > 1 {
			return nil
		}
		commits = append(commits, Commit{
			Hash:    c.Hash.String(),
			Subject: subjectOf(c.Message),
			Author:  c.Author.Name,
			When:    c.Author.When,
		})
		return nil
	})
	if err != nil && !errors.Is(err, storer.ErrStop) {
		return nil, fmt.Errorf("walking commit log: %w", err)
	}

	logDebug("[git] CommitsSince: %d commits", len(commits))
	return commits, nil
}

// subjectOf extracts the first line of a commit message.
func subjectOf(message string) string {
	subject, _, _ := strings.Cut(message, "\n")
	return strings.TrimSpace(subject)
}
