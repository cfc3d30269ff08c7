package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/site-arcade/internal/core"
)

// ansiCodes maps core.Color to the terminal palette index it is drawn with.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

var colorStyles = buildColorStyles()

func buildColorStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(ansiCodes)+1)
	styles[core.ColorDefault] = lipgloss.NewStyle()
	for c, code := range ansiCodes {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}

// Status bar styles
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4")).Padding(0, 1)
	readoutStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	phaseStyles  = map[core.Phase]lipgloss.Style{
		core.PhaseIdle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		core.PhaseRunning: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		core.PhaseEnded:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of one color share a single styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			runColor := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != runColor {
					break
				}
				run.WriteRune(cell.Rune)
			}

			style, ok := colorStyles[runColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// renderStatus builds the one-line bar under the play area.
func renderStatus(title string, st core.GameState, width int) string {
	phase := st.Phase.String()
	if st.Paused {
		phase = "paused"
	}
	phaseStyle, ok := phaseStyles[st.Phase]
	if !ok {
		phaseStyle = lipgloss.NewStyle()
	}

	left := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render(title),
		" ",
		readoutStyle.Render(st.Readout),
	)
	right := phaseStyle.Render(phase)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
