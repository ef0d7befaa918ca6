package state

import (
	"foodcourt/internal/menu"
)

type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// AppState holds everything the controller knows about the session
type AppState struct {
	Phase        Phase
	Restaurants  []menu.Restaurant
	SelectedSlug string // "" only while there are no restaurants
	IsSearching  bool
	Query        string
	ShowOverview bool

	// Static text
	Title             string
	Subtitle          string
	SearchPlaceholder string

	Banner       string
	BannerLoaded bool
	BrokenImages map[string]bool

	Err        error
	ErrTitle   string
	ErrMessage string
}

// Selected returns the restaurant behind SelectedSlug.
func (s AppState) Selected() (menu.Restaurant, bool) {
	if s.SelectedSlug == "" {
		return menu.Restaurant{}, false
	}
	return menu.Find(s.Restaurants, s.SelectedSlug)
}

// SelectedIndex is the tab position of the selection, or -1.
func (s AppState) SelectedIndex() int {
	for i, r := range s.Restaurants {
		if r.Slug == s.SelectedSlug {
			return i
		}
	}
	return -1
}

// DisplayedGroups recomputes what the menu region lists right now. In
// search mode that is the matches grouped by restaurant (nil for a blank
// query); otherwise the selected restaurant alone.
func (s AppState) DisplayedGroups() []menu.Restaurant {
	if s.IsSearching {
		return menu.Search(s.Restaurants, s.Query)
	}
	r, ok := s.Selected()
	if !ok {
		return nil
	}
	return []menu.Restaurant{r}
}

// IsBroken reports whether an image failed its probe.
func (s AppState) IsBroken(url string) bool {
	return s.BrokenImages[url]
}
