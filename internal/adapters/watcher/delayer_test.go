package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/piff/internal/adapters/watcher"
)

// recorder collects delivered paths.
type recorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *recorder) deliver(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

func (r *recorder) get() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

func TestDelayer_Schedule_WaitsForWindow(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDelayer(50*time.Millisecond, rec.deliver)

		d.Schedule("src/index.piff")

		time.Sleep(49 * time.Millisecond)
		synctest.Wait()
		assert.Empty(t, rec.get())
		assert.Equal(t, 1, d.Pending())

		time.Sleep(time.Millisecond)
		synctest.Wait()
		assert.Equal(t, []string{"src/index.piff"}, rec.get())
		assert.Zero(t, d.Pending())
	})
}

func TestDelayer_Schedule_DoesNotCoalesce(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDelayer(50*time.Millisecond, rec.deliver)

		d.Schedule("src/index.piff")
		time.Sleep(10 * time.Millisecond)
		d.Schedule("src/index.piff")

		// The first delivery is not pushed back by the second schedule.
		time.Sleep(40 * time.Millisecond)
		synctest.Wait()
		require.Equal(t, []string{"src/index.piff"}, rec.get())

		time.Sleep(10 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, []string{"src/index.piff", "src/index.piff"}, rec.get())
	})
}

func TestDelayer_Schedule_ZeroWindow(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDelayer(0, rec.deliver)

		d.Schedule("a.piff")
		time.Sleep(time.Millisecond)
		synctest.Wait()
		assert.Equal(t, []string{"a.piff"}, rec.get())
	})
}

func TestDelayer_Stop_DropsPending(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDelayer(50*time.Millisecond, rec.deliver)

		d.Schedule("a.piff")
		d.Schedule("b.piff")
		d.Stop()

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		assert.Empty(t, rec.get())
		assert.Zero(t, d.Pending())
	})
}

func TestDelayer_NilCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watcher.NewDelayer(time.Millisecond, nil)
		d.Schedule("a.piff")

		time.Sleep(2 * time.Millisecond)
		synctest.Wait()
		assert.Zero(t, d.Pending())
	})
}
