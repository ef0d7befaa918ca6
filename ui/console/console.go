package console

import (
	"fmt"
	"io"
	"strings"

	"foodcourt/internal/output"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

const (
	labelWidth = 28
	noteWidth  = 40
)

// Print renders the menu view to the writer in a compact listing, one
// section per restaurant.
func Print(w io.Writer, title string, view output.MenuView) {
	fmt.Fprintf(w, "%s■ %s%s\n", colorCyan, strings.ToUpper(title), colorReset)

	for _, sec := range view.Sections {
		// Section Header
		fmt.Fprintf(w, "%s─ %s%s\n", colorCyan, sec.Title, colorReset)

		for _, c := range sec.Cards {
			label := truncate(c.Title, labelWidth)

			// Dots leader
			dots := strings.Repeat("·", labelWidth+2-len([]rune(label)))

			fmt.Fprintf(w, "  %s%s%s%s %s%10s%s %s\n",
				label, colorCyan, dots, colorReset,
				colorGreen, c.Price, colorReset,
				imageMarker(c.Placeholder))

			if c.Description != "" {
				fmt.Fprintf(w, "    %s\n", truncate(c.Description, noteWidth))
			}
		}
	}

	// Single-line Summary
	fmt.Fprintf(w, "%s─ Summary%s: %d restaurants | %d items\n\n", colorCyan, colorReset, view.TotalRestaurants, view.TotalItems)
}

// PrintMessage renders the empty or error state.
func PrintMessage(w io.Writer, title, message string, isErr bool) {
	color := colorYellow
	marker := "!"
	if isErr {
		color = colorRed
		marker = "X"
	}
	fmt.Fprintf(w, "%s%s %s%s\n  %s\n\n", color, marker, title, colorReset, message)
}

func imageMarker(placeholder bool) string {
	if placeholder {
		return colorFor(true) + "▢" + colorReset
	}
	return colorFor(false) + "▣" + colorReset
}

func colorFor(placeholder bool) string {
	if placeholder {
		return colorYellow
	}
	return colorGreen
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
