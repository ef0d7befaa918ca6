package menu

import (
	"math"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FormatPrice renders a price as "<symbol> <amount>" with the given number
// of decimals. Rounding is half away from zero, so 8.99 with zero
// decimals reads "9".
func FormatPrice(symbol string, price float64, decimals int) string {
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		price = 0
	}
	if decimals < 0 {
		decimals = 0
	}
	scale := math.Pow(10, float64(decimals))
	rounded := math.Round(price*scale) / scale
	amount := strconv.FormatFloat(rounded, 'f', decimals, 64)
	if symbol == "" {
		return amount
	}
	return symbol + " " + amount
}

// PlainText strips markup from a description so it can be shown in a
// terminal. Runs of whitespace collapse to a single space.
func PlainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.Join(strings.Fields(s), " ")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// DisplayName returns the tab label for a restaurant.
func (r Restaurant) DisplayName() string {
	if r.Name == "" {
		return "N/A"
	}
	return r.Name
}
