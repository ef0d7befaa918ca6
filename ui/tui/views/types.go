package views

import (
	"foodcourt/internal/output"
	"foodcourt/ui/tui/state"
)

// ViewProps contains UI-specific properties provided by the Controller.
type ViewProps struct {
	Width, Height int

	Format       output.Format
	ShimmerCount int

	// Component States
	ShimmerPhase  float64
	SpinnerView   string
	SearchBoxView string
	OverviewView  string
	ScrollY       int
}

// View defines the contract for any renderable page in the TUI.
type View interface {
	Render(s state.AppState, props ViewProps) string
}
