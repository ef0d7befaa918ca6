package components

import (
	"fmt"

	"foodcourt/internal/menu"
	"foodcourt/ui/tui/styles"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxBarLabel = 8

// OverviewWidget charts how many dishes each restaurant offers.
type OverviewWidget struct {
	Chart       barchart.Model
	Restaurants []menu.Restaurant
	Width       int
	Height      int
}

func NewOverviewWidget(width, height int) *OverviewWidget {
	return &OverviewWidget{
		Chart:  barchart.New(width, height),
		Width:  width,
		Height: height,
	}
}

func (o *OverviewWidget) Init() tea.Cmd {
	return nil
}

// SetRestaurants replaces the charted data.
func (o *OverviewWidget) SetRestaurants(rs []menu.Restaurant) {
	o.Restaurants = rs
	o.redraw()
}

func (o *OverviewWidget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return o, nil
}

func (o *OverviewWidget) Resize(w, h int) {
	o.Width = w
	o.Height = h
	o.redraw()
}

func (o *OverviewWidget) redraw() {
	o.Chart = barchart.New(o.Width, o.Height)
	data := make([]barchart.BarData, 0, len(o.Restaurants))
	for i, r := range o.Restaurants {
		style := lipgloss.NewStyle().Foreground(styles.BrandColor)
		if i%2 == 1 {
			style = lipgloss.NewStyle().Foreground(styles.Highlight)
		}
		data = append(data, barchart.BarData{
			Label: shortLabel(r.DisplayName()),
			Values: []barchart.BarValue{
				{Name: r.Slug, Value: float64(len(r.Items)), Style: style},
			},
		})
	}
	o.Chart.PushAll(data)
	o.Chart.Draw()
}

func (o *OverviewWidget) View() string {
	var legend []string
	for _, r := range o.Restaurants {
		legend = append(legend, fmt.Sprintf("%-*s %3d items  %s", maxBarLabel, shortLabel(r.DisplayName()), len(r.Items), r.DisplayName()))
	}

	return styles.CardStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render("Dishes per Restaurant"),
			o.Chart.View(),
			lipgloss.NewStyle().Foreground(lipgloss.Color("#888")).Render(lipgloss.JoinVertical(lipgloss.Left, legend...)),
		),
	)
}

func shortLabel(s string) string {
	r := []rune(s)
	if len(r) <= maxBarLabel {
		return s
	}
	return string(r[:maxBarLabel-1]) + "…"
}
