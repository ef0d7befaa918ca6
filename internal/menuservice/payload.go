package menuservice

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"foodcourt/internal/menu"

	"github.com/tidwall/gjson"
)

// ErrMalformedPayload reports a body that is not the expected JSON document.
var ErrMalformedPayload = errors.New("malformed menu payload")

// Payload is the decoded body of the menu endpoint.
type Payload struct {
	Banner string
	Menus  []menu.RawItem
}

// DecodePayload reads {"data":{"banner":..., "menus":[...]}}. The menus
// array is required; an empty array is the only empty menu. Missing item
// fields fall back to zero values; prices may be numbers or numeric strings.
func DecodePayload(body []byte) (*Payload, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrMalformedPayload
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return nil, ErrMalformedPayload
	}

	p := &Payload{Banner: strings.TrimSpace(doc.Get("data.banner").String())}

	menus := doc.Get("data.menus")
	if !menus.IsArray() {
		return nil, ErrMalformedPayload
	}

	menus.ForEach(func(_, v gjson.Result) bool {
		if !v.IsObject() {
			return true
		}
		p.Menus = append(p.Menus, menu.RawItem{
			RestaurantSlug: v.Get("restaurant_slug").String(),
			RestaurantName: v.Get("restaurant_name").String(),
			Name:           v.Get("name").String(),
			Description:    v.Get("description").String(),
			Price:          parsePrice(v.Get("price")),
			Icon:           v.Get("icon").String(),
			Tags:           parseTags(v.Get("tags")),
		})
		return true
	})

	return p, nil
}

func parsePrice(v gjson.Result) float64 {
	switch v.Type {
	case gjson.Number:
		return v.Float()
	case gjson.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	default:
		return 0
	}
}

func parseTags(v gjson.Result) []string {
	if !v.IsArray() {
		return nil
	}
	var tags []string
	for _, t := range v.Array() {
		if t.Type != gjson.String {
			continue
		}
		if s := strings.TrimSpace(t.Str); s != "" {
			tags = append(tags, s)
		}
	}
	return tags
}
