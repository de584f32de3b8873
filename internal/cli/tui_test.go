package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/floorplan/pkg/floorplan"
)

func exampleViewModel(t *testing.T) ViewModel {
	t.Helper()
	root, err := floorplan.ParseLines(strings.Split(strings.TrimSpace(exampleInput), "\n"))
	if err != nil {
		t.Fatal(err)
	}
	size, err := floorplan.ComputeDimensions(root)
	if err != nil {
		t.Fatal(err)
	}
	placements, err := floorplan.ComputeCoordinates(root, floorplan.Point{})
	if err != nil {
		t.Fatal(err)
	}
	return NewViewModel(size, floorplan.Point{}, placements, nil)
}

func TestViewModelGrid(t *testing.T) {
	m := exampleViewModel(t)
	got := m.Grid(80, 24)
	want := [][]int{
		{0, 0, 1, 1, 1, 1},
		{0, 0, 2, 2, -1, -1},
		{0, 0, 2, 2, -1, -1},
	}
	if len(got) != len(want) {
		t.Fatalf("Grid() has %d rows, want %d", len(got), len(want))
	}
	for y := range want {
		for x := range want[y] {
			if got[y][x] != want[y][x] {
				t.Errorf("cell (%d,%d) = %d, want %d", x, y, got[y][x], want[y][x])
			}
		}
	}
}

func TestViewModelGridScaled(t *testing.T) {
	m := NewViewModel(floorplan.Size{Width: 100, Height: 10}, floorplan.Point{X: 5, Y: 5},
		[]floorplan.Placement{{Rect: floorplan.Rect{Label: 1, Width: 100, Height: 10}, X: 5, Y: 5}}, nil)
	grid := m.Grid(10, 10)
	if len(grid) != 10 || len(grid[0]) != 10 {
		t.Fatalf("Grid() = %dx%d, want 10x10", len(grid[0]), len(grid))
	}
	for _, row := range grid {
		for _, idx := range row {
			if idx != 0 {
				t.Fatalf("every cell should belong to leaf 0, got %d", idx)
			}
		}
	}
}

func TestViewModelUpdate(t *testing.T) {
	m := exampleViewModel(t)

	press := func(m ViewModel, msg tea.KeyMsg) ViewModel {
		next, _ := m.Update(msg)
		return next.(ViewModel)
	}
	down := tea.KeyMsg{Type: tea.KeyDown}
	up := tea.KeyMsg{Type: tea.KeyUp}
	j := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}

	m = press(m, up)
	if m.Cursor != 2 {
		t.Errorf("up from first leaf: cursor = %d, want 2", m.Cursor)
	}
	m = press(m, down)
	if m.Cursor != 0 {
		t.Errorf("down from last leaf: cursor = %d, want 0", m.Cursor)
	}
	m = press(m, j)
	if m.Cursor != 1 {
		t.Errorf("j: cursor = %d, want 1", m.Cursor)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	if vm := next.(ViewModel); vm.Width != 40 || vm.Height != 20 {
		t.Errorf("window size = %dx%d", vm.Width, vm.Height)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestViewModelView(t *testing.T) {
	m := exampleViewModel(t)
	m.Cursor = 1
	view := m.View()

	for _, want := range []string{"Floorplan", "(6,3)", "leaf", "(4,1)", "(2,2)", "[2/3]"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}
