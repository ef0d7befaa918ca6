// Package menu holds the food court domain: menu items grouped into
// restaurants, and the pure transforms over them.
package menu

import "errors"

// UnknownSlug is the restaurant key used for records without a restaurant_slug.
const UnknownSlug = "unknown"

// ErrEmptyMenu reports a well-formed response that carried no menu records.
var ErrEmptyMenu = errors.New("menu: no menu records")

// RawItem is one flat menu record as delivered by the API.
type RawItem struct {
	RestaurantSlug string   `json:"restaurant_slug"`
	RestaurantName string   `json:"restaurant_name"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	Icon           string   `json:"icon"`
	Tags           []string `json:"tags"`
}

// MenuItem is a single dish shown on a card.
type MenuItem struct {
	Title       string
	Description string
	Price       float64
	Image       string
	Tags        []string
}

// Restaurant is a tab: a slug-keyed group of menu items in first-seen order.
type Restaurant struct {
	Slug  string
	Name  string
	Items []MenuItem
}

// Find returns the restaurant with the given slug.
func Find(restaurants []Restaurant, slug string) (Restaurant, bool) {
	for _, r := range restaurants {
		if r.Slug == slug {
			return r, true
		}
	}
	return Restaurant{}, false
}

// ItemCount sums the items across all restaurants.
func ItemCount(restaurants []Restaurant) int {
	n := 0
	for _, r := range restaurants {
		n += len(r.Items)
	}
	return n
}
