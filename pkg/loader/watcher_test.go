package loader

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestFileWatcher_ShouldProcessEvent(t *testing.T) {
	fw, err := NewFileWatcher(&FileWatcherConfig{
		Path:       t.TempDir(),
		Extensions: []string{".dat", ".txt"},
		SkipHidden: true,
	}, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer fw.watcher.Close()

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"dat write", fsnotify.Event{Name: "data/frozen.dat", Op: fsnotify.Write}, true},
		{"txt create", fsnotify.Event{Name: "data/frozen.txt", Op: fsnotify.Create}, true},
		{"uppercase extension", fsnotify.Event{Name: "data/FROZEN.DAT", Op: fsnotify.Write}, true},
		{"chmod only", fsnotify.Event{Name: "data/frozen.dat", Op: fsnotify.Chmod}, false},
		{"wrong extension", fsnotify.Event{Name: "data/readme.md", Op: fsnotify.Write}, false},
		{"hidden file", fsnotify.Event{Name: "data/.frozen.dat", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fw.shouldProcessEvent(tt.event); got != tt.want {
				t.Errorf("shouldProcessEvent(%v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}

func TestDebouncer_CollapsesRapidTriggers(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)
	defer d.Stop()

	var calls atomic.Int32
	for i := 0; i < 10; i++ {
		d.Trigger("a.dat", func() { calls.Add(1) })
	}

	time.Sleep(150 * time.Millisecond)

	if got := calls.Load(); got != 1 {
		t.Errorf("callback ran %d times, want 1", got)
	}
}

func TestDebouncer_DistinctKeysFireIndependently(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)
	defer d.Stop()

	var mu sync.Mutex
	fired := make(map[string]int)
	record := func(key string) func() {
		return func() {
			mu.Lock()
			fired[key]++
			mu.Unlock()
		}
	}

	// Two different files change within one debounce window. Both
	// reloads must run; neither may displace the other.
	d.Trigger("a.dat", record("a.dat"))
	d.Trigger("b.dat", record("b.dat"))
	// Re-trigger one key; it still collapses to a single call.
	d.Trigger("b.dat", record("b.dat"))

	time.Sleep(200 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if fired["a.dat"] != 1 {
		t.Errorf("a.dat callback ran %d times, want 1 (fired: %v)", fired["a.dat"], fired)
	}
	if fired["b.dat"] != 1 {
		t.Errorf("b.dat callback ran %d times, want 1 (fired: %v)", fired["b.dat"], fired)
	}
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	var calls atomic.Int32
	d.Trigger("a.dat", func() { calls.Add(1) })
	d.Trigger("b.dat", func() { calls.Add(1) })
	d.Stop()

	time.Sleep(150 * time.Millisecond)

	if got := calls.Load(); got != 0 {
		t.Errorf("callbacks ran %d times after Stop, want 0", got)
	}
}

func TestDebouncer_TriggerAfterStopIsNoop(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	d.Stop()

	var calls atomic.Int32
	d.Trigger("a.dat", func() { calls.Add(1) })

	time.Sleep(50 * time.Millisecond)

	if got := calls.Load(); got != 0 {
		t.Errorf("callback ran %d times after Stop, want 0", got)
	}
}

func TestFileWatcher_StopWithoutWatch(t *testing.T) {
	fw, err := NewFileWatcher(nil, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	// Stop before Watch is a no-op.
	if err := fw.Stop(); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
}
