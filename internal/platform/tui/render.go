package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tancheke/internal/core"
)

// palette maps core.Color to ANSI 256 color codes.
var palette = map[core.Color]string{
	core.ColorRed:          "1",
	core.ColorGreen:        "2",
	core.ColorYellow:       "3",
	core.ColorBlue:         "4",
	core.ColorMagenta:      "5",
	core.ColorCyan:         "6",
	core.ColorWhite:        "7",
	core.ColorBrightRed:    "9",
	core.ColorBrightGreen:  "10",
	core.ColorBrightYellow: "11",
	core.ColorBrightCyan:   "14",
	core.ColorBrightWhite:  "15",
	core.ColorOrange:       "208",
	core.ColorGold:         "220",
	core.ColorGray:         "245",
	core.ColorBrown:        "130",
}

// CellRenderer turns a Screen into styled text for one output.
// SSH sessions get their own so each client keeps its color profile.
type CellRenderer struct {
	plain  lipgloss.Style
	styles map[core.Color]lipgloss.Style
}

// NewCellRenderer builds styles from r, or from the default renderer if nil.
func NewCellRenderer(r *lipgloss.Renderer) *CellRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	cr := &CellRenderer{
		plain:  r.NewStyle(),
		styles: make(map[core.Color]lipgloss.Style, len(palette)),
	}
	for c, code := range palette {
		cr.styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return cr
}

func (cr *CellRenderer) style(c core.Color) lipgloss.Style {
	if s, ok := cr.styles[c]; ok {
		return s
	}
	return cr.plain
}

// Render converts the screen to a string. Runs of cells sharing a color
// are styled together to keep escape sequences short.
func (cr *CellRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			if color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(cr.style(color).Render(run.String()))
		}
	}
	return sb.String()
}

var defaultCells = NewCellRenderer(nil)

// RenderScreen renders with the process-wide default renderer.
func RenderScreen(s *core.Screen) string {
	return defaultCells.Render(s)
}
