package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_DetectsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ChangeLog")
	require.NoError(t, os.WriteFile(path, []byte("initial\n"), 0o644))

	w, err := New(path, WithPollInterval(50*time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	changes, err := w.Changes(ctx)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("modified\n"), 0o644))

	select {
	case _, ok := <-changes:
		assert.True(t, ok)
	case <-ctx.Done():
		t.Fatal("no change event before timeout")
	}
}

func TestWatcher_DetectsCreation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ChangeLog")

	w, err := New(path, WithPollInterval(50*time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	changes, err := w.Changes(ctx)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("born\n"), 0o644))

	select {
	case _, ok := <-changes:
		assert.True(t, ok)
	case <-ctx.Done():
		t.Fatal("no creation event before timeout")
	}
}

func TestWatcher_ChannelClosesOnCancel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ChangeLog")

	w, err := New(path)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	changes, err := w.Changes(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-changes:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("channel did not close after cancel")
	}
}

func TestWatcher_CloseIsIdempotent(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "ChangeLog"))
	require.NoError(t, err)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}
