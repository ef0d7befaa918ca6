package output

import (
	"context"
	"fmt"

	"foodcourt/internal/menu"
	"foodcourt/internal/menuservice"
)

// MenuData is the grouped result of one menu fetch.
type MenuData struct {
	Banner      string
	Restaurants []menu.Restaurant
}

// DataFetcher defines the interface for fetching the raw menu payload.
type DataFetcher interface {
	FetchMenuData(ctx context.Context) (*menuservice.Payload, error)
}

// LoadMenu executes the data pipeline: Fetch -> Check -> Group.
// A well-formed payload without records yields menu.ErrEmptyMenu; fetch
// failures keep menuservice.ErrServiceUnavailable in their chain.
func LoadMenu(ctx context.Context, f DataFetcher) (*MenuData, error) {
	// 1. Fetch
	p, err := f.FetchMenuData(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch menu: %w", err)
	}

	// 2. Check
	if len(p.Menus) == 0 {
		return &MenuData{Banner: p.Banner}, menu.ErrEmptyMenu
	}

	// 3. Group
	return &MenuData{
		Banner:      p.Banner,
		Restaurants: menu.Group(p.Menus),
	}, nil
}
