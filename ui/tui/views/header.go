package views

import (
	"foodcourt/internal/menu"
	"foodcourt/ui/tui/state"
	"foodcourt/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// RenderHeader shows title and subtitle, or the banner once it has loaded.
func RenderHeader(s state.AppState, width int) string {
	style := styles.HeaderStyle
	if width > 0 {
		style = style.Width(width)
	}
	if s.BannerLoaded && s.Banner != "" {
		return style.Render(styles.TitleStyle.Render("▣ ") + styles.SubtitleStyle.Render(s.Banner))
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render(s.Title),
		styles.SubtitleStyle.Render(s.Subtitle),
	))
}

// TabZoneID is the bubblezone id of a restaurant tab.
func TabZoneID(slug string) string {
	return "tab_" + slug
}

// RenderTabs draws the restaurant strip; the selected tab gets the active style.
func RenderTabs(restaurants []menu.Restaurant, selected string) string {
	if len(restaurants) == 0 {
		return ""
	}
	tabs := make([]string, 0, len(restaurants))
	for _, r := range restaurants {
		style := styles.TabStyle
		if r.Slug == selected {
			style = styles.ActiveTabStyle
		}
		tabs = append(tabs, zone.Mark(TabZoneID(r.Slug), style.Render(r.DisplayName())))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// RenderSearchBox frames the text input; the frame lights up in search mode.
func RenderSearchBox(input string, searching bool, width int) string {
	style := styles.SearchBoxStyle
	if searching {
		style = styles.ActiveSearchBoxStyle
	}
	if width > 4 {
		style = style.Width(width - 4)
	}
	return style.Render("🔍 " + input)
}
