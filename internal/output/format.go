package output

import (
	"foodcourt/internal/config"
	"foodcourt/internal/menu"
)

// Format holds the display rules shared by every card.
type Format struct {
	Currency         string
	Decimals         int
	PlaceholderImage string
}

// FormatFromConfig picks the display rules out of the app config.
func FormatFromConfig(cfg config.Config) Format {
	return Format{
		Currency:         cfg.CurrencySymbol,
		Decimals:         cfg.PriceDecimals,
		PlaceholderImage: cfg.PlaceholderImage,
	}
}

// UI/view-model types (no printing here)
type Card struct {
	Title       string
	Description string
	Price       string
	Image       string
	Placeholder bool // Image is the fallback
	Tags        []string
}

type Section struct {
	ID    string // restaurant slug
	Title string
	Cards []Card
}

type MenuView struct {
	Sections         []Section
	TotalRestaurants int
	TotalItems       int
}

// BrokenImage reports whether an image URL is known to have failed loading.
type BrokenImage func(url string) bool

// BuildCards converts menu items into UI-ready cards. Items without an
// image, or whose image is broken, get the placeholder.
func BuildCards(items []menu.MenuItem, f Format, broken BrokenImage) []Card {
	cards := make([]Card, 0, len(items))
	for _, it := range items {
		c := Card{
			Title:       it.Title,
			Description: menu.PlainText(it.Description),
			Price:       menu.FormatPrice(f.Currency, it.Price, f.Decimals),
			Image:       it.Image,
			Tags:        it.Tags,
		}
		if c.Image == "" || (broken != nil && broken(c.Image)) {
			c.Image = f.PlaceholderImage
			c.Placeholder = true
		}
		cards = append(cards, c)
	}
	return cards
}

// BuildMenuView converts restaurants (full menus or grouped search results)
// into sections, one per restaurant, in the given order.
func BuildMenuView(restaurants []menu.Restaurant, f Format, broken BrokenImage) MenuView {
	v := MenuView{TotalRestaurants: len(restaurants)}
	for _, r := range restaurants {
		v.Sections = append(v.Sections, Section{
			ID:    r.Slug,
			Title: r.DisplayName(),
			Cards: BuildCards(r.Items, f, broken),
		})
		v.TotalItems += len(r.Items)
	}
	return v
}

func (v MenuView) SectionByID(id string) *Section {
	for i := range v.Sections {
		if v.Sections[i].ID == id {
			return &v.Sections[i]
		}
	}
	return nil
}
