package styles

import "github.com/charmbracelet/lipgloss"

var (
	Subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	Special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	BrandColor = lipgloss.Color("#f27b24")
	BaseColor  = lipgloss.Color("#444")
	ErrorColor = lipgloss.Color("196")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF"))

	SubtitleStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#FFF7DB"))

	HeaderStyle = lipgloss.NewStyle().
			Background(BrandColor).
			Padding(1, 2)

	TabStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BaseColor).
			Foreground(lipgloss.Color("#AAA")).
			Padding(0, 1).
			MarginRight(1)

	ActiveTabStyle = TabStyle.
			BorderForeground(BrandColor).
			Foreground(lipgloss.Color("#FFF")).
			Bold(true)

	SearchBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BaseColor).
			Padding(0, 1)

	ActiveSearchBoxStyle = SearchBoxStyle.
				BorderForeground(Highlight)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(0, 1).
			MarginLeft(1)

	ItemTitleStyle = lipgloss.NewStyle().Bold(true)

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#888")).
				Italic(true)

	PriceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(BrandColor)

	ImageStyle = lipgloss.NewStyle().
			Foreground(Special)

	PlaceholderImageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666"))

	GroupTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(BrandColor).
			PaddingLeft(1).
			MarginTop(1)

	MessageBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BaseColor).
			Padding(1, 4).
			Margin(1, 1).
			Align(lipgloss.Center)

	FooterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555")).
			PaddingLeft(2)
)
