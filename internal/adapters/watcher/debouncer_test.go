package watcher_test

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/iconic/internal/adapters/watcher"
)

type recorder struct {
	mu      sync.Mutex
	batches [][]string
}

func (r *recorder) record(paths []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sort.Strings(paths)
	r.batches = append(r.batches, paths)
}

func (r *recorder) snapshot() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([][]string, len(r.batches))
	copy(out, r.batches)
	return out
}

func TestDebouncer_CoalescesEvents(t *testing.T) {
	rec := &recorder{}
	d := watcher.NewDebouncer(20*time.Millisecond, rec.record)

	d.Add("/usr/share/icons/hicolor/index.theme")
	d.Add("/usr/share/icons/hicolor/32x32/apps/bar.png")
	d.Add("/usr/share/icons/hicolor/index.theme")

	assert.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, time.Second, 5*time.Millisecond)

	batches := rec.snapshot()
	assert.Equal(t, []string{
		"/usr/share/icons/hicolor/32x32/apps/bar.png",
		"/usr/share/icons/hicolor/index.theme",
	}, batches[0])
}

func TestDebouncer_FlushIsSynchronous(t *testing.T) {
	rec := &recorder{}
	d := watcher.NewDebouncer(time.Hour, rec.record)

	d.Add("/usr/share/icons/loose.png")
	d.Flush()

	assert.Len(t, rec.snapshot(), 1)
}

func TestDebouncer_FlushWithoutPendingIsNoop(t *testing.T) {
	rec := &recorder{}
	d := watcher.NewDebouncer(time.Hour, rec.record)

	d.Flush()

	assert.Empty(t, rec.snapshot())
}
