package views

import (
	"foodcourt/ui/tui/state"
)

func RenderPage(s state.AppState, props ViewProps) string {
	v := MenuPageView{}
	return v.Render(s, props)
}
