package menu

import (
	"math"
	"strings"
)

// Group folds the flat API records into restaurants keyed by slug.
// Restaurants and their items keep the order in which they first appear.
// Records without a slug land in the "unknown" restaurant; negative,
// non-finite or missing prices become 0 and missing tags an empty list.
func Group(raw []RawItem) []Restaurant {
	index := make(map[string]int)
	var restaurants []Restaurant

	for _, r := range raw {
		slug := strings.TrimSpace(r.RestaurantSlug)
		if slug == "" {
			slug = UnknownSlug
		}

		i, ok := index[slug]
		if !ok {
			i = len(restaurants)
			index[slug] = i
			restaurants = append(restaurants, Restaurant{Slug: slug})
		}
		if restaurants[i].Name == "" {
			restaurants[i].Name = strings.TrimSpace(r.RestaurantName)
		}

		restaurants[i].Items = append(restaurants[i].Items, toMenuItem(r))
	}

	return restaurants
}

func toMenuItem(r RawItem) MenuItem {
	price := r.Price
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		price = 0
	}
	tags := make([]string, 0, len(r.Tags))
	tags = append(tags, r.Tags...)

	return MenuItem{
		Title:       r.Name,
		Description: r.Description,
		Price:       price,
		Image:       strings.TrimSpace(r.Icon),
		Tags:        tags,
	}
}
