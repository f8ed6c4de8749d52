package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/studiowebux/oasview/internal/logging"
)

func newTestWatcher(t *testing.T) (*Watcher, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "api.yaml")
	if err := os.WriteFile(path, []byte("openapi: 3.0.3\n"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	w, err := NewWatcher(path, logging.Nop())
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	t.Cleanup(func() { w.Close() })
	return w, path
}

func TestWatcher_SignalsOnWrite(t *testing.T) {
	w, path := newTestWatcher(t)

	if err := os.WriteFile(path, []byte("openapi: 3.0.3\ninfo: {}\n"), 0644); err != nil {
		t.Fatalf("Failed to rewrite fixture: %v", err)
	}

	select {
	case _, ok := <-w.Changed():
		if !ok {
			t.Fatal("Expected a change signal, got a closed channel")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Expected a change signal within the debounce window")
	}
}

func TestWatcher_SignalsOnAtomicReplace(t *testing.T) {
	w, path := newTestWatcher(t)

	// Editors that save atomically write a sibling and rename it over
	// the original.
	temp := path + ".tmp"
	if err := os.WriteFile(temp, []byte("openapi: 3.1.0\n"), 0644); err != nil {
		t.Fatalf("Failed to write replacement: %v", err)
	}
	if err := os.Rename(temp, path); err != nil {
		t.Fatalf("Failed to rename replacement: %v", err)
	}

	select {
	case _, ok := <-w.Changed():
		if !ok {
			t.Fatal("Expected a change signal, got a closed channel")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Expected a change signal after an atomic replace")
	}
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	w, path := newTestWatcher(t)

	sibling := filepath.Join(filepath.Dir(path), "other.yaml")
	if err := os.WriteFile(sibling, []byte("unrelated\n"), 0644); err != nil {
		t.Fatalf("Failed to write sibling: %v", err)
	}

	select {
	case <-w.Changed():
		t.Fatal("Expected no signal for a sibling file")
	case <-time.After(600 * time.Millisecond):
	}
}

func TestWatcher_CollapsesEventBursts(t *testing.T) {
	w, path := newTestWatcher(t)

	// Several writes inside one debounce window produce one signal.
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte("openapi: 3.0.3\n"), 0644); err != nil {
			t.Fatalf("Failed to rewrite fixture: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-w.Changed():
	case <-time.After(2 * time.Second):
		t.Fatal("Expected a signal for the burst")
	}

	select {
	case _, ok := <-w.Changed():
		if ok {
			t.Fatal("Expected the burst to collapse into a single signal")
		}
	case <-time.After(600 * time.Millisecond):
	}
}

func TestWatcher_CloseIsIdempotent(t *testing.T) {
	w, _ := newTestWatcher(t)

	if err := w.Close(); err != nil {
		t.Fatalf("First close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Second close failed: %v", err)
	}

	select {
	case _, ok := <-w.Changed():
		if ok {
			t.Error("Expected no further signals after close")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Expected the change channel to close")
	}
}
