package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	fperrors "github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/floorplan"
	"github.com/matzehuels/floorplan/pkg/render"
)

// Grid bounds used before the terminal reports its size.
const (
	defaultGridCols = 80
	defaultGridRows = 24
)

// Grid styles
var (
	gridEmptyStyle    = lipgloss.NewStyle().Foreground(colorDim)
	gridSelectedStyle = lipgloss.NewStyle().Background(colorYellow)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// viewCommand creates the view command for browsing a floorplan in the terminal.
func (c *CLI) viewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view <input>",
		Short: "Browse the placed floorplan in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runView(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runView(ctx context.Context, input string) error {
	result, origin, err := c.layout(ctx, input)
	if err != nil {
		return err
	}
	if result.Root == nil {
		return fperrors.New(fperrors.ErrCodeInvalidInput, "%s: nothing to view", input)
	}

	m := NewViewModel(result.Size, origin, result.Placements, c.Config.Render.Palette)
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}

// =============================================================================
// ViewModel - Interactive floorplan browser
// =============================================================================

// ViewModel is the bubbletea model drawing a floorplan as a character grid.
// One cell covers one or more floorplan units; the selected leaf is highlighted.
type ViewModel struct {
	Size       floorplan.Size
	Origin     floorplan.Point
	Placements []floorplan.Placement
	Palette    []string
	Cursor     int
	Width      int
	Height     int
}

// NewViewModel creates a new view model. An empty palette selects the default.
func NewViewModel(size floorplan.Size, origin floorplan.Point, placements []floorplan.Placement, palette []string) ViewModel {
	if len(palette) == 0 {
		palette = render.DefaultPalette
	}
	return ViewModel{
		Size:       size,
		Origin:     origin,
		Placements: placements,
		Palette:    palette,
		Width:      defaultGridCols,
		Height:     defaultGridRows + 6,
	}
}

func (m ViewModel) Init() tea.Cmd {
	return nil
}

func (m ViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k", "left", "h", "shift+tab":
			if len(m.Placements) > 0 {
				m.Cursor = (m.Cursor + len(m.Placements) - 1) % len(m.Placements)
			}
		case "down", "j", "right", "l", "tab":
			if len(m.Placements) > 0 {
				m.Cursor = (m.Cursor + 1) % len(m.Placements)
			}
		case "home", "g":
			m.Cursor = 0
		case "end", "G":
			if len(m.Placements) > 0 {
				m.Cursor = len(m.Placements) - 1
			}
		}
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
	}
	return m, nil
}

func (m ViewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Floorplan %s", m.Size)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ cycle leaves  q quit"))
	b.WriteString("\n\n")

	grid := m.Grid(max(m.Width, 1), max(m.Height-6, 1))
	for _, row := range grid {
		for _, idx := range row {
			b.WriteString(m.cell(idx))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if len(m.Placements) > 0 {
		p := m.Placements[m.Cursor]
		b.WriteString(fmt.Sprintf("leaf %s  size %s  at %s",
			StyleNumber.Render(fmt.Sprint(p.Rect.Label)),
			StyleValue.Render(p.Rect.Size().String()),
			StyleValue.Render(p.Origin().String())))
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Placements))))
	}

	return b.String()
}

func (m ViewModel) cell(idx int) string {
	switch {
	case idx < 0:
		return gridEmptyStyle.Render("·")
	case idx == m.Cursor:
		return gridSelectedStyle.Render(" ")
	default:
		label := m.Placements[idx].Rect.Label
		if label < 0 {
			label = -label
		}
		color := lipgloss.Color(m.Palette[label%len(m.Palette)])
		return lipgloss.NewStyle().Background(color).Render(" ")
	}
}

// Grid samples the floorplan into at most cols×rows cells, top row first.
// Each cell holds the index of the placement covering its lower-left unit,
// or -1 where no leaf lies.
func (m ViewModel) Grid(cols, rows int) [][]int {
	if m.Size.Width <= 0 || m.Size.Height <= 0 {
		return nil
	}
	sx := ceilDiv(m.Size.Width, cols)
	sy := ceilDiv(m.Size.Height, rows)
	gw := ceilDiv(m.Size.Width, sx)
	gh := ceilDiv(m.Size.Height, sy)

	grid := make([][]int, gh)
	for gy := range grid {
		grid[gy] = make([]int, gw)
		y := m.Origin.Y + m.Size.Height - 1 - gy*sy
		for gx := range grid[gy] {
			grid[gy][gx] = m.leafAt(m.Origin.X+gx*sx, y)
		}
	}
	return grid
}

func (m ViewModel) leafAt(x, y int) int {
	for i, p := range m.Placements {
		if x >= p.X && x < p.X+p.Rect.Width && y >= p.Y && y < p.Y+p.Rect.Height {
			return i
		}
	}
	return -1
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
