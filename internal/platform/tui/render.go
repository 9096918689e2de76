package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// colorStyles maps core.Color to lipgloss styles (ANSI 256 palette).
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorBackground:  lipgloss.NewStyle().Background(lipgloss.Color("236")),
	core.ColorPlatform:    lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorPlatformTop: lipgloss.NewStyle().Foreground(lipgloss.Color("137")).Background(lipgloss.Color("94")),
	core.ColorPlayer:      lipgloss.NewStyle().Foreground(lipgloss.Color("71")),
	core.ColorPlayerFace:  lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Background(lipgloss.Color("71")),
	core.ColorEnemy:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	core.ColorEnemyEye:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("203")),
	core.ColorEnemyPupil:  lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("203")),
	core.ColorCoin:        lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Background(lipgloss.Color("236")),
	core.ColorPortal:      lipgloss.NewStyle().Foreground(lipgloss.Color("93")).Background(lipgloss.Color("54")),
	core.ColorPortalGlow:  lipgloss.NewStyle().Foreground(lipgloss.Color("54")).Background(lipgloss.Color("236")),
	core.ColorPortalSwirl: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("93")),
	core.ColorHUDBox:      lipgloss.NewStyle().Background(lipgloss.Color("234")),
	core.ColorHUDText:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("234")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
