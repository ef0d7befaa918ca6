package views

import (
	"strings"

	"foodcourt/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

const shimmerLineWidth = 36

var (
	shimmerBase  = lipgloss.NewStyle().Foreground(lipgloss.Color("#333"))
	shimmerGlint = lipgloss.NewStyle().Foreground(lipgloss.Color("#777"))
)

// shimmerLine draws a placeholder bar with a glint band whose position
// follows phase (0..1).
func shimmerLine(width int, phase float64) string {
	if phase < 0 {
		phase = 0
	}
	if phase > 1 {
		phase = 1
	}
	band := width / 5
	start := int(phase * float64(width-band))
	return shimmerBase.Render(strings.Repeat("░", start)) +
		shimmerGlint.Render(strings.Repeat("▒", band)) +
		shimmerBase.Render(strings.Repeat("░", width-start-band))
}

// RenderShimmer emits count placeholder cards for the loading state.
func RenderShimmer(count int, phase float64) string {
	cards := make([]string, 0, count)
	for i := 0; i < count; i++ {
		circle := shimmerBase.Render("◯")
		lines := lipgloss.JoinVertical(lipgloss.Left,
			shimmerLine(shimmerLineWidth/2, phase),
			shimmerLine(shimmerLineWidth, phase),
			shimmerLine(shimmerLineWidth*2/3, phase),
		)
		cards = append(cards, styles.CardStyle.
			BorderForeground(styles.BaseColor).
			Render(lipgloss.JoinHorizontal(lipgloss.Top, circle, "  ", lines)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}
