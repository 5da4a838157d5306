package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akarpov/notflappy/internal/core"
)

func TestCellGridWriteAndString(t *testing.T) {
	g := newCellGrid(4, 2)

	g.MoveCursor(1, 0)
	g.WriteRune('a')
	g.WriteRune('b') // cursor advanced
	g.MoveCursor(0, 1)
	g.WriteRune('c')

	want := " ab \nc   "
	if g.String() != want {
		t.Errorf("String() = %q, expected %q", g.String(), want)
	}
}

func TestCellGridClipsOutOfBounds(t *testing.T) {
	g := newCellGrid(3, 3)

	g.MoveCursor(2, 0)
	g.WriteRune('x')
	g.WriteRune('y') // past the right edge, clipped
	g.MoveCursor(0, -1)
	g.WriteRune('z') // above the grid, clipped

	if !strings.HasPrefix(g.String(), "  x") {
		t.Errorf("String() = %q, expected row 0 to end with x", g.String())
	}
	if strings.ContainsAny(g.String(), "yz") {
		t.Errorf("clipped writes leaked into the grid: %q", g.String())
	}
}

func TestCellGridClear(t *testing.T) {
	g := newCellGrid(3, 2)
	g.MoveCursor(0, 0)
	g.WriteRune('x')

	g.Clear()
	if strings.TrimSpace(strings.ReplaceAll(g.String(), "\n", "")) != "" {
		t.Errorf("Clear() left content: %q", g.String())
	}

	cols, rows := g.ViewportSize()
	if cols != 3 || rows != 2 {
		t.Errorf("ViewportSize() = %dx%d, expected 3x2", cols, rows)
	}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name  string
		msg   tea.KeyMsg
		key   core.Key
		bound bool
	}{
		{"space flaps", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.KeyFlap, true},
		{"w flaps", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.KeyFlap, true},
		{"up flaps", tea.KeyMsg{Type: tea.KeyUp}, core.KeyFlap, true},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft, true},
		{"a nudges left", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, core.KeyLeft, true},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight, true},
		{"d nudges right", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, core.KeyRight, true},
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.KeyQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.KeyQuit, true},
		{"unbound rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			key, ok := mapKey(tc.msg)
			if ok != tc.bound {
				t.Fatalf("mapKey() bound = %v, expected %v", ok, tc.bound)
			}
			if ok && key != tc.key {
				t.Errorf("mapKey() = %v, expected %v", key, tc.key)
			}
		})
	}
}

func TestKeyStateConsumesPress(t *testing.T) {
	ks := newKeyState()
	ks.press(core.KeyFlap)

	if !ks.KeyDown(core.KeyFlap) {
		t.Fatal("first poll should see the press")
	}
	if ks.KeyDown(core.KeyFlap) {
		t.Error("second poll should not see the same press again")
	}
	if ks.KeyDown(core.KeyQuit) {
		t.Error("unpressed key reported down")
	}
}
