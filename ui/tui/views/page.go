package views

import (
	"fmt"
	"strings"

	"foodcourt/internal/menu"
	"foodcourt/internal/output"
	"foodcourt/ui/tui/state"
	"foodcourt/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

type MenuPageView struct{}

func (v MenuPageView) Render(s state.AppState, props ViewProps) string {
	// 1. Header + tabs
	header := renderTop(s, props)

	// 2. Footer
	footer := styles.FooterStyle.Render(footerText(s, props))

	// 3. Menu region, clipped to what is left of the screen
	region := RenderMenuRegion(s, props)
	if props.Height > 0 {
		avail := props.Height - lipgloss.Height(header) - lipgloss.Height(footer)
		region, _ = Clip(region, avail, props.ScrollY)
	}

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, header, region, footer))
}

func renderTop(s state.AppState, props ViewProps) string {
	top := []string{RenderHeader(s, props.Width)}
	if s.Phase == state.PhaseReady {
		top = append(top, RenderTabs(s.Restaurants, s.SelectedSlug))
	}
	top = append(top, RenderSearchBox(props.SearchBoxView, s.IsSearching, props.Width))
	return lipgloss.JoinVertical(lipgloss.Left, top...)
}

// MaxScroll is the largest useful scroll offset of the menu region for the
// given screen. Without a known height nothing scrolls.
func MaxScroll(s state.AppState, props ViewProps) int {
	if props.Height <= 0 {
		return 0
	}
	avail := props.Height - lipgloss.Height(renderTop(s, props)) -
		lipgloss.Height(styles.FooterStyle.Render(footerText(s, props)))
	if avail < 1 {
		avail = 1
	}
	extra := lipgloss.Height(RenderMenuRegion(s, props)) - avail
	if extra < 0 {
		return 0
	}
	return extra
}

// RenderMenuRegion picks what the menu region shows for the current state.
func RenderMenuRegion(s state.AppState, props ViewProps) string {
	switch s.Phase {
	case state.PhaseLoading:
		return RenderShimmer(props.ShimmerCount, props.ShimmerPhase)
	case state.PhaseFailed:
		return RenderError(s.ErrTitle, s.ErrMessage)
	}

	broken := output.BrokenImage(s.IsBroken)
	groups := s.DisplayedGroups()

	if s.IsSearching {
		query := strings.TrimSpace(s.Query)
		if query == "" {
			return RenderMenuItems(nil, props.Width)
		}
		view := output.BuildMenuView(groups, props.Format, broken)
		return RenderGroupedSearchResults(query, view.Sections, props.Width)
	}

	if s.ShowOverview && props.OverviewView != "" {
		return props.OverviewView
	}

	var items []menu.MenuItem
	if len(groups) > 0 {
		items = groups[0].Items
	}
	return RenderMenuItems(output.BuildCards(items, props.Format, broken), props.Width)
}

// Clip returns the window of avail lines starting at scrollY, with scrollY
// clamped to the content.
func Clip(content string, avail, scrollY int) (string, int) {
	if avail < 1 {
		avail = 1
	}
	lines := strings.Split(content, "\n")
	total := len(lines)

	if scrollY > total-avail {
		scrollY = total - avail
	}
	if scrollY < 0 {
		scrollY = 0
	}

	end := scrollY + avail
	if end > total {
		end = total
	}
	return strings.Join(lines[scrollY:end], "\n"), scrollY
}

func footerText(s state.AppState, props ViewProps) string {
	switch s.Phase {
	case state.PhaseLoading:
		return props.SpinnerView + " Loading menu... • [Q] Quit"
	case state.PhaseFailed:
		return "Restart to try again • [Q] Quit"
	}
	if s.IsSearching {
		return "[Esc] Close search • [↑/↓] Scroll • [Ctrl+C] Quit"
	}
	return fmt.Sprintf("%d restaurants • [←/→] Tabs • [/] Search • [O] Overview • [↑/↓] Scroll • [Q] Quit",
		len(s.Restaurants))
}
