package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tliron/commonlog"
)

func TestWatcherBatchesChanges(t *testing.T) {
	dir := t.TempDir()

	batches := make(chan []string, 4)
	w, err := New(commonlog.GetLoggerf("protolens.watcher_test"), 100*time.Millisecond, func(paths []string) {
		batches <- paths
	})
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.AddRoot(dir))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.proto"), []byte("syntax = \"proto3\";\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.proto"), []byte("syntax = \"proto3\";\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("nope"), 0o644))

	select {
	case paths := <-batches:
		require.Contains(t, paths, filepath.Join(dir, "a.proto"))
		require.Contains(t, paths, filepath.Join(dir, "b.proto"))
		for _, p := range paths {
			require.NotEqual(t, filepath.Join(dir, "ignored.txt"), p)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no batch delivered")
	}
}

func TestWatcherPicksUpNewDirectories(t *testing.T) {
	dir := t.TempDir()

	batches := make(chan []string, 4)
	w, err := New(commonlog.GetLoggerf("protolens.watcher_test"), 100*time.Millisecond, func(paths []string) {
		batches <- paths
	})
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.AddRoot(dir))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))
	// Give the watcher a moment to register the new directory.
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(sub, "deep.proto"), []byte("syntax = \"proto3\";\n"), 0o644))

	select {
	case paths := <-batches:
		require.Contains(t, paths, filepath.Join(sub, "deep.proto"))
	case <-time.After(5 * time.Second):
		t.Fatal("no batch delivered")
	}
}
