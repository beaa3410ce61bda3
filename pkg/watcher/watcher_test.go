package watcher

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/philipparndt/gotrack/pkg/trackfile"
	"github.com/stretchr/testify/require"
)

func TestWatchReloadsLayout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "loop.track")
	require.NoError(t, os.WriteFile(path, []byte("anchor 0 0\nanchor 10 0\n"), 0o644))

	w, err := New(20*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan *trackfile.Layout, 4)
	require.NoError(t, w.Watch(path, func(_ string, l *trackfile.Layout) {
		got <- l
	}))
	w.Start(ctx)

	require.NoError(t, os.WriteFile(path, []byte("anchor 0 0\nanchor 10 0\nanchor 5 5\n"), 0o644))

	select {
	case l := <-got:
		require.Equal(t, 3, l.AnchorCount())
	case <-time.After(5 * time.Second):
		t.Fatal("layout was not reloaded")
	}
}

func TestWatchSkipsInvalidLayout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.track")
	require.NoError(t, os.WriteFile(path, []byte("anchor 0 0\nanchor 10 0\n"), 0o644))

	w, err := New(20*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan *trackfile.Layout, 4)
	require.NoError(t, w.Watch(path, func(_ string, l *trackfile.Layout) {
		got <- l
	}))
	w.Start(ctx)

	require.NoError(t, os.WriteFile(path, []byte("anchor 0 0\n"), 0o644))

	select {
	case l := <-got:
		t.Fatalf("unexpected reload with %d anchors", l.AnchorCount())
	case <-time.After(300 * time.Millisecond):
	}
}

func TestUnwatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.track")

	w, err := New(0, nil)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Watch(path, func(string, *trackfile.Layout) {}))
	require.NoError(t, w.Unwatch(path))
	require.NoError(t, w.Unwatch(path))
	require.Empty(t, w.dirs)
}
