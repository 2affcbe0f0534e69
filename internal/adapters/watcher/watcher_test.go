package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/piff/internal/adapters/fs"
	"go.trai.ch/piff/internal/adapters/watcher"
	"go.trai.ch/piff/internal/core/domain"
	"go.trai.ch/piff/internal/core/ports"
	"go.trai.ch/piff/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const eventTimeout = 5 * time.Second

func startWatcher(t *testing.T, roots []string) (*watcher.Watcher, <-chan ports.WatchEvent) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	w := watcher.NewWatcher(fs.NewWalker(), mockLogger)
	require.NoError(t, w.Start(ctx, roots, domain.DefaultIgnoredDirs()))
	t.Cleanup(func() {
		cancel()
		_ = w.Stop()
	})

	events := make(chan ports.WatchEvent, 100)
	go func() {
		defer close(events)
		for ev := range w.Events() {
			events <- ev
		}
	}()
	return w, events
}

// waitFor reads events until one matches path and op.
func waitFor(t *testing.T, events <-chan ports.WatchEvent, path string, op ports.WatchOp) {
	t.Helper()
	deadline := time.After(eventTimeout)
	for {
		select {
		case ev, ok := <-events:
			require.True(t, ok, "event stream closed while waiting for %s %s", op, path)
			if ev.Path == path && ev.Operation == op {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %s %s", op, path)
		}
	}
}

func TestWatcher_AddAndChange(t *testing.T) {
	root := t.TempDir()
	_, events := startWatcher(t, []string{root})

	path := filepath.Join(root, "index.piff")
	require.NoError(t, os.WriteFile(path, []byte("a"), domain.PrivateFilePerm))
	waitFor(t, events, path, ports.OpAdd)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	require.NoError(t, err)
	_, err = f.WriteString("b")
	require.NoError(t, err)
	require.NoError(t, f.Close())
	waitFor(t, events, path, ports.OpChange)
}

func TestWatcher_WatchesNewDirectories(t *testing.T) {
	root := t.TempDir()
	_, events := startWatcher(t, []string{root})

	dir := filepath.Join(root, "views")
	require.NoError(t, os.Mkdir(dir, domain.DirPerm))
	waitFor(t, events, dir, ports.OpAdd)

	// Give the watcher a moment to register the new directory.
	time.Sleep(50 * time.Millisecond)

	path := filepath.Join(dir, "home.piff")
	require.NoError(t, os.WriteFile(path, []byte("a"), domain.PrivateFilePerm))
	waitFor(t, events, path, ports.OpAdd)
}

func TestWatcher_MissingRootIsSkipped(t *testing.T) {
	root := t.TempDir()
	_, events := startWatcher(t, []string{filepath.Join(root, "missing"), root})

	path := filepath.Join(root, "a.piff")
	require.NoError(t, os.WriteFile(path, []byte("a"), domain.PrivateFilePerm))
	waitFor(t, events, path, ports.OpAdd)
}

func TestWatcher_StartTwice(t *testing.T) {
	w, _ := startWatcher(t, []string{t.TempDir()})

	err := w.Start(context.Background(), nil, nil)
	require.ErrorContains(t, err, domain.ErrWatcherStartFailed.Error())
}

func TestWatcher_StopEndsEvents(t *testing.T) {
	w, events := startWatcher(t, []string{t.TempDir()})
	require.NoError(t, w.Stop())

	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(eventTimeout):
		t.Fatal("event stream did not close after Stop")
	}
}

func TestWatcher_StopBeforeStart(t *testing.T) {
	w := watcher.NewWatcher(fs.NewWalker(), nil)
	assert.NoError(t, w.Stop())
}
