package views

import (
	"strings"

	"foodcourt/internal/output"
	"foodcourt/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

const (
	defaultCardWidth = 60
	minCardWidth     = 30
	imageBadgeWidth  = 10
)

// Copy for the empty and no-result views.
const (
	EmptyMenuTitle   = "No Items Found"
	EmptyMenuMessage = "This restaurant menu is currently empty."
	NoResultsTitle   = "No Results"
)

// NoResultsMessage names the query that matched nothing.
func NoResultsMessage(query string) string {
	return `No items found matching "` + query + `"`
}

func cardWidth(width int) int {
	if width <= 0 {
		return defaultCardWidth
	}
	w := width - 4
	if w < minCardWidth {
		w = minCardWidth
	}
	return w
}

// RenderCard draws one menu item: image badge, title, description, price.
func RenderCard(c output.Card, width int) string {
	w := cardWidth(width)

	badge := styles.ImageStyle.Width(imageBadgeWidth).Render("▣ photo")
	if c.Placeholder {
		badge = styles.PlaceholderImageStyle.Width(imageBadgeWidth).Render("▢ FOOD")
	}

	price := styles.PriceStyle.Render(c.Price)
	textWidth := w - imageBadgeWidth - lipgloss.Width(price) - 6
	if textWidth < 10 {
		textWidth = 10
	}

	details := []string{styles.ItemTitleStyle.Width(textWidth).Render(c.Title)}
	if c.Description != "" {
		details = append(details, styles.DescriptionStyle.Width(textWidth).Render(c.Description))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		badge,
		lipgloss.JoinVertical(lipgloss.Left, details...),
		lipgloss.NewStyle().PaddingLeft(1).Render(price),
	)
	return styles.CardStyle.Width(w).Render(row)
}

func renderCardList(cards []output.Card, width int) string {
	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		rendered = append(rendered, RenderCard(c, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

// RenderMenuItems replaces the menu region with one card per item, or the
// empty-state view when there are none.
func RenderMenuItems(cards []output.Card, width int) string {
	if len(cards) == 0 {
		return RenderNoData(EmptyMenuTitle, EmptyMenuMessage)
	}
	return renderCardList(cards, width)
}

// RenderGroupedSearchResults shows a heading per restaurant followed by its
// matching cards. No sections means the query matched nothing.
func RenderGroupedSearchResults(query string, sections []output.Section, width int) string {
	if len(sections) == 0 {
		return RenderNoData(NoResultsTitle, NoResultsMessage(query))
	}
	var b strings.Builder
	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.GroupTitleStyle.Render(sec.Title))
		b.WriteString("\n")
		b.WriteString(renderCardList(sec.Cards, width))
	}
	return b.String()
}
