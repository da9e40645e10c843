package ui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestVisibleFiltersAllWords(t *testing.T) {
	m := model{
		entries: []string{
			"wifi      - 📶 HomeNet\tWPA2\t▂▄▆█",
			"wifi      - 📶 CoffeeShop\tWPA2\t▂▄__",
			"bluetooth -  Headphones - AA:BB:CC:DD:EE:FF",
		},
		filter: "wifi home",
	}
	visible := m.visible()
	if len(visible) != 1 {
		t.Fatalf("expected 1 match, got %d: %q", len(visible), visible)
	}
}

func TestVisibleEmptyFilterShowsAll(t *testing.T) {
	m := model{entries: []string{"a", "b"}}
	if len(m.visible()) != 2 {
		t.Fatal("empty filter should show every entry")
	}
}

func TestEnterSelectsUnderCursor(t *testing.T) {
	m := model{entries: []string{"first", "second"}}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.(model).Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := next.(model).choice; got != "second" {
		t.Fatalf("expected second, got %q", got)
	}
}

func TestEscLeavesNoChoice(t *testing.T) {
	m := model{entries: []string{"first"}}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if got := next.(model).choice; got != "" {
		t.Fatalf("expected empty choice, got %q", got)
	}
}

func TestReloadMsgRefreshesEntries(t *testing.T) {
	m := model{
		entries: []string{"old"},
		reload:  func() ([]string, error) { return []string{"new-a", "new-b"}, nil },
	}
	next, _ := m.Update(reloadMsg{})
	entries := next.(model).entries
	if len(entries) != 2 || entries[0] != "new-a" {
		t.Fatalf("entries not reloaded: %q", entries)
	}
}

func TestWatchFileSignalsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("a: 1\n"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}

	changes, stop, err := WatchFile(path)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer stop()

	if err := os.WriteFile(path, []byte("a: 2\n"), 0600); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	select {
	case <-changes:
	case <-time.After(3 * time.Second):
		t.Fatal("no change signal after write")
	}
}

func TestWatchFileStopDuringDebounce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("a: 1\n"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}

	changes, stop, err := WatchFile(path)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Start a debounce window, then shut down before it elapses. The
	// pending timer must not fire into the closed channel.
	if err := os.WriteFile(path, []byte("a: 2\n"), 0600); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	time.Sleep(debounce / 4)
	if err := stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}
	time.Sleep(2 * debounce)

	select {
	case <-changes:
		// Drained or closed, both are fine; the failure mode is a
		// panic from the expired timer, not a value here.
	case <-time.After(time.Second):
		t.Fatal("changes channel not closed after stop")
	}
}

func TestWatchFileIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("a: 1\n"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}

	changes, stop, err := WatchFile(path)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer stop()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("b: 1\n"), 0600); err != nil {
		t.Fatalf("write sibling: %v", err)
	}

	select {
	case <-changes:
		t.Fatal("sibling write should not signal")
	case <-time.After(500 * time.Millisecond):
	}
}
