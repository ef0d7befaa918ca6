package menu

import "strings"

// NormalizeQuery trims and lower-cases a raw search box value.
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// Matches reports whether the item title or any of its tags contains the
// query, ignoring case. An empty query matches nothing.
func (it MenuItem) Matches(query string) bool {
	q := NormalizeQuery(query)
	if q == "" {
		return false
	}
	if strings.Contains(strings.ToLower(it.Title), q) {
		return true
	}
	for _, tag := range it.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Search filters every restaurant, not only the selected one, and returns
// the restaurants that still have matches, each holding only those matches.
// Order of restaurants and items is preserved. An empty query returns nil.
func Search(restaurants []Restaurant, query string) []Restaurant {
	q := NormalizeQuery(query)
	if q == "" {
		return nil
	}

	var groups []Restaurant
	for _, r := range restaurants {
		var matched []MenuItem
		for _, it := range r.Items {
			if it.Matches(q) {
				matched = append(matched, it)
			}
		}
		if len(matched) > 0 {
			groups = append(groups, Restaurant{Slug: r.Slug, Name: r.Name, Items: matched})
		}
	}
	return groups
}
