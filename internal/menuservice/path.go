package menuservice

import (
	"net/url"
	"regexp"
	"strings"
)

var foodCourtPath = regexp.MustCompile(`/food-courts/([^/?#]+)`)

// FoodCourtID extracts {id} from a path (or full URL) shaped like
// /food-courts/{id}. It returns "" when the pattern is absent.
func FoodCourtID(path string) string {
	m := foodCourtPath.FindStringSubmatch(path)
	if m == nil {
		return ""
	}
	id, err := url.PathUnescape(m[1])
	if err != nil {
		return m[1]
	}
	return id
}

// EndpointURL joins the base endpoint and an optional food-court id.
func EndpointURL(base, id string) string {
	if id == "" {
		return base
	}
	return strings.TrimRight(base, "/") + "/" + url.PathEscape(id)
}
