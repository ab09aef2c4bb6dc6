package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flapdragon/internal/core"
)

// ansiCodes maps core.Color to ANSI 256-color codes.
// ColorDefault is absent on purpose: it leaves the terminal's own color.
var ansiCodes = map[core.Color]string{
	core.ColorBlack:   "0",
	core.ColorRed:     "1",
	core.ColorGreen:   "2",
	core.ColorYellow:  "3",
	core.ColorBlue:    "4",
	core.ColorMagenta: "5",
	core.ColorCyan:    "6",
	core.ColorWhite:   "7",
	core.ColorNavy:    "17",
	core.ColorGray:    "245",
}

type colorPair struct {
	fg, bg core.Color
}

// Palette builds and caches lipgloss styles for foreground/background pairs.
// Each SSH session gets its own palette bound to the session's renderer.
type Palette struct {
	renderer *lipgloss.Renderer
	styles   map[colorPair]lipgloss.Style
}

// NewPalette creates a palette for the given renderer.
// A nil renderer uses the process-wide default.
func NewPalette(r *lipgloss.Renderer) *Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Palette{
		renderer: r,
		styles:   make(map[colorPair]lipgloss.Style),
	}
}

// Style returns the style for a color pair.
func (p *Palette) Style(fg, bg core.Color) lipgloss.Style {
	key := colorPair{fg, bg}
	if style, ok := p.styles[key]; ok {
		return style
	}

	style := p.renderer.NewStyle()
	if code, ok := ansiCodes[fg]; ok {
		style = style.Foreground(lipgloss.Color(code))
	}
	if code, ok := ansiCodes[bg]; ok {
		style = style.Background(lipgloss.Color(code))
	}
	p.styles[key] = style
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, p *Palette) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.Style(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
