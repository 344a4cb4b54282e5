package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func browserCircuits(n int) [][]string {
	circuits := make([][]string, n)
	for i := range circuits {
		circuits[i] = []string{"a", "b", "c"}
	}
	return circuits
}

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
}

func TestCircuitBrowserNavigation(t *testing.T) {
	m := NewCircuitBrowserModel(browserCircuits(3))

	next, _ := m.Update(keyMsg("down"))
	m = next.(CircuitBrowserModel)
	if m.Cursor != 1 {
		t.Errorf("Cursor = %d after down, want 1", m.Cursor)
	}

	next, _ = m.Update(keyMsg("j"))
	m = next.(CircuitBrowserModel)
	if m.Cursor != 2 {
		t.Errorf("Cursor = %d after j, want 2", m.Cursor)
	}

	// Already at the last entry, down must not move past the end.
	next, _ = m.Update(keyMsg("down"))
	m = next.(CircuitBrowserModel)
	if m.Cursor != 2 {
		t.Errorf("Cursor = %d after down at end, want 2", m.Cursor)
	}

	next, _ = m.Update(keyMsg("up"))
	m = next.(CircuitBrowserModel)
	if m.Cursor != 1 {
		t.Errorf("Cursor = %d after up, want 1", m.Cursor)
	}

	next, _ = m.Update(keyMsg("g"))
	m = next.(CircuitBrowserModel)
	if m.Cursor != 0 || m.Offset != 0 {
		t.Errorf("Cursor/Offset = %d/%d after g, want 0/0", m.Cursor, m.Offset)
	}

	next, _ = m.Update(keyMsg("G"))
	m = next.(CircuitBrowserModel)
	if m.Cursor != 2 {
		t.Errorf("Cursor = %d after G, want 2", m.Cursor)
	}
}

func TestCircuitBrowserScrolling(t *testing.T) {
	m := NewCircuitBrowserModel(browserCircuits(30))
	m.Height = 5

	for i := 0; i < 10; i++ {
		next, _ := m.Update(keyMsg("j"))
		m = next.(CircuitBrowserModel)
	}
	if m.Cursor != 10 {
		t.Fatalf("Cursor = %d, want 10", m.Cursor)
	}
	if m.Offset != m.Cursor-m.Height+1 {
		t.Errorf("Offset = %d, want %d to keep cursor visible", m.Offset, m.Cursor-m.Height+1)
	}
}

func TestCircuitBrowserQuit(t *testing.T) {
	m := NewCircuitBrowserModel(browserCircuits(1))

	for _, key := range []string{"q", "esc"} {
		_, cmd := m.Update(keyMsg(key))
		if cmd == nil {
			t.Errorf("key %q did not produce a quit command", key)
		}
	}
}

func TestCircuitBrowserWindowResize(t *testing.T) {
	m := NewCircuitBrowserModel(browserCircuits(3))

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(CircuitBrowserModel)
	if m.Height != 17 {
		t.Errorf("Height = %d after resize, want 17", m.Height)
	}

	// A tiny terminal still leaves room for a few rows.
	next, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 6})
	m = next.(CircuitBrowserModel)
	if m.Height != 5 {
		t.Errorf("Height = %d after small resize, want 5", m.Height)
	}
}

func TestCircuitBrowserView(t *testing.T) {
	m := NewCircuitBrowserModel(browserCircuits(2))
	view := m.View()

	if !strings.Contains(view, "Circuits") {
		t.Error("view missing title")
	}
	if !strings.Contains(view, "a → b → c → a") {
		t.Error("view missing formatted circuit")
	}
	if !strings.Contains(view, "[1/2]") {
		t.Error("view missing position indicator")
	}
}
