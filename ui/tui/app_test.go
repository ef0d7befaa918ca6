package tui

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"foodcourt/internal/analytics"
	"foodcourt/internal/config"
	"foodcourt/internal/menu"
	"foodcourt/internal/menuservice"
	"foodcourt/ui/tui/state"
	"foodcourt/ui/tui/views"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

// MockFetcher for testing
type MockFetcher struct {
	Payload *menuservice.Payload
	Err     error
	Broken  map[string]bool
}

func (f MockFetcher) FetchMenuData(ctx context.Context) (*menuservice.Payload, error) {
	return f.Payload, f.Err
}

func (f MockFetcher) ProbeImage(ctx context.Context, url string) error {
	if f.Broken[url] {
		return menuservice.ErrNotAnImage
	}
	return nil
}

func sunsetPayload() *menuservice.Payload {
	return &menuservice.Payload{Menus: []menu.RawItem{
		{RestaurantSlug: "sunset", RestaurantName: "Sunset Diner", Name: "Burger", Price: 8.99},
	}}
}

func twoRestaurantPayload() *menuservice.Payload {
	return &menuservice.Payload{
		Banner: "https://img.test/banner.png",
		Menus: []menu.RawItem{
			{RestaurantSlug: "alley", RestaurantName: "Wing Alley", Name: "Buffalo Wings", Price: 250, Tags: []string{"spicy"}, Icon: "https://img.test/wings.png"},
			{RestaurantSlug: "bistro", RestaurantName: "Bistro", Name: "Tomato Soup", Price: 180, Icon: "https://img.test/soup.png"},
			{RestaurantSlug: "alley", RestaurantName: "Wing Alley", Name: "Coleslaw", Price: 90},
		},
	}
}

// loadedModel runs Init and delivers the fetch result, as the program loop would.
func loadedModel(t *testing.T, f MockFetcher) (*MainModel, *analytics.Recorder) {
	t.Helper()
	rec := &analytics.Recorder{}
	model := InitialModel(f, config.DefaultConfig(), rec, nil)
	m := &model
	m.Init()

	msg := fetchMenuCmd(context.Background(), f)()
	updated, _ := m.Update(msg)
	return updated.(*MainModel), rec
}

func region(m *MainModel) string {
	return views.RenderMenuRegion(m.State(), views.ViewProps{
		Width:        80,
		Format:       m.format,
		ShimmerCount: m.shimmer.Count,
	})
}

func typeText(m *MainModel, text string) *MainModel {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return updated.(*MainModel)
}

func press(m *MainModel, k tea.KeyType) *MainModel {
	updated, _ := m.Update(tea.KeyMsg{Type: k})
	return updated.(*MainModel)
}

func TestStartupShowsShimmer(t *testing.T) {
	model := InitialModel(MockFetcher{Payload: sunsetPayload()}, config.DefaultConfig(), &analytics.Recorder{}, nil)
	m := &model

	if cmd := m.Init(); cmd == nil {
		t.Fatal("Expected Init to return the startup commands")
	}

	s := m.State()
	if s.Phase != state.PhaseLoading {
		t.Errorf("Expected PhaseLoading before the fetch resolves, got %v", s.Phase)
	}
	if s.Title != "Digital Food Court" || s.Subtitle != "Taste the Variety" {
		t.Errorf("Expected static text to be set, got %q / %q", s.Title, s.Subtitle)
	}
	if m.search.Placeholder != "Search menu items..." {
		t.Errorf("Expected search placeholder, got %q", m.search.Placeholder)
	}

	out := m.View()
	if !strings.Contains(out, "Digital Food Court") {
		t.Error("Expected title in the loading view")
	}
	if !strings.Contains(out, "░") {
		t.Error("Expected shimmer placeholders in the loading view")
	}
}

func TestSingleRestaurantScenario(t *testing.T) {
	m, rec := loadedModel(t, MockFetcher{Payload: sunsetPayload()})

	s := m.State()
	if s.Phase != state.PhaseReady {
		t.Fatalf("Expected PhaseReady, got %v", s.Phase)
	}
	if s.SelectedSlug != "sunset" {
		t.Errorf("Expected sunset selected, got %q", s.SelectedSlug)
	}
	if len(s.Restaurants) != 1 {
		t.Fatalf("Expected one restaurant, got %d", len(s.Restaurants))
	}

	tabs := views.RenderTabs(s.Restaurants, s.SelectedSlug)
	if !strings.Contains(tabs, "Sunset Diner") {
		t.Error("Expected a tab labeled Sunset Diner")
	}

	out := region(m)
	if strings.Count(out, "Burger") != 1 {
		t.Errorf("Expected exactly one Burger card, got:\n%s", out)
	}
	if !strings.Contains(out, "৳ 9") {
		t.Errorf("Expected price rendered as ৳ 9, got:\n%s", out)
	}

	if got := rec.Names(); len(got) != 1 || got[0] != analytics.EventMenuLoaded {
		t.Errorf("Expected a single menu_loaded event, got %v", got)
	}
}

func TestEmptyPayloadFails(t *testing.T) {
	cfg := config.DefaultConfig()
	m, rec := loadedModel(t, MockFetcher{Payload: &menuservice.Payload{}})

	s := m.State()
	if s.Phase != state.PhaseFailed {
		t.Fatalf("Expected PhaseFailed, got %v", s.Phase)
	}
	if s.ErrMessage != cfg.EmptyDataErrorMessage {
		t.Errorf("Expected empty-data copy, got %q", s.ErrMessage)
	}
	if !errors.Is(s.Err, menu.ErrEmptyMenu) {
		t.Errorf("Expected ErrEmptyMenu, got %v", s.Err)
	}
	if s.SelectedSlug != "" || len(s.Restaurants) != 0 {
		t.Error("Expected no selection and no restaurants")
	}
	if !strings.Contains(m.View(), cfg.ErrorTitle) {
		t.Error("Expected error title in the view")
	}
	if got := rec.Names(); len(got) != 1 || got[0] != analytics.EventMenuFailed {
		t.Errorf("Expected a single menu_failed event, got %v", got)
	}
}

func TestFetchFailureShowsUnavailable(t *testing.T) {
	cfg := config.DefaultConfig()
	err := errors.Join(menuservice.ErrServiceUnavailable, errors.New("connection refused"))
	m, _ := loadedModel(t, MockFetcher{Err: err})

	s := m.State()
	if s.Phase != state.PhaseFailed {
		t.Fatalf("Expected PhaseFailed, got %v", s.Phase)
	}
	if s.ErrMessage != cfg.APIErrorMessage {
		t.Errorf("Expected service unavailable copy, got %q", s.ErrMessage)
	}

	// Terminal: keys do nothing useful anymore
	m = typeText(m, "/")
	if m.State().IsSearching {
		t.Error("Expected search to stay closed after a failed load")
	}
}

func TestTabNavigation(t *testing.T) {
	m, rec := loadedModel(t, MockFetcher{Payload: twoRestaurantPayload()})

	if m.State().SelectedSlug != "alley" {
		t.Fatalf("Expected first-seen restaurant selected, got %q", m.State().SelectedSlug)
	}

	m = press(m, tea.KeyRight)
	if m.State().SelectedSlug != "bistro" {
		t.Errorf("Expected bistro after Right, got %q", m.State().SelectedSlug)
	}
	out := region(m)
	if !strings.Contains(out, "Tomato Soup") || strings.Contains(out, "Buffalo Wings") {
		t.Errorf("Expected only bistro items, got:\n%s", out)
	}

	// Wraps around
	m = press(m, tea.KeyRight)
	if m.State().SelectedSlug != "alley" {
		t.Errorf("Expected wrap to alley, got %q", m.State().SelectedSlug)
	}

	m = typeText(m, "2")
	if m.State().SelectedSlug != "bistro" {
		t.Errorf("Expected digit 2 to pick bistro, got %q", m.State().SelectedSlug)
	}

	// Same tab is a no-op
	before := len(rec.Events())
	m.selectRestaurant("bistro")
	if len(rec.Events()) != before {
		t.Error("Expected clicking the active tab to do nothing")
	}

	// Unknown slug is ignored
	m.selectRestaurant("nope")
	if m.State().SelectedSlug != "bistro" {
		t.Errorf("Expected selection to stay on bistro, got %q", m.State().SelectedSlug)
	}
}

func TestSearchFlow(t *testing.T) {
	m, _ := loadedModel(t, MockFetcher{Payload: twoRestaurantPayload()})

	// Enter search mode: empty list until something is typed
	m = typeText(m, "/")
	if !m.State().IsSearching {
		t.Fatal("Expected search mode after '/'")
	}
	if out := region(m); !strings.Contains(out, views.EmptyMenuTitle) {
		t.Errorf("Expected empty view for an empty query, got:\n%s", out)
	}

	// Matches only in restaurant A
	m = typeText(m, "WING")
	if m.State().Query != "WING" {
		t.Errorf("Expected query mirrored into state, got %q", m.State().Query)
	}
	groups := m.State().DisplayedGroups()
	if len(groups) != 1 || groups[0].Slug != "alley" || len(groups[0].Items) != 1 || groups[0].Items[0].Title != "Buffalo Wings" {
		t.Errorf("Expected only Buffalo Wings under Wing Alley, got %v", groups)
	}
	out := region(m)
	if !strings.Contains(out, "Wing Alley") || !strings.Contains(out, "Buffalo Wings") {
		t.Errorf("Expected Wing Alley group with Buffalo Wings, got:\n%s", out)
	}
	if strings.Contains(out, "Bistro") || strings.Contains(out, "Coleslaw") {
		t.Errorf("Expected non-matching restaurant and items to be absent, got:\n%s", out)
	}

	// Nothing anywhere
	m = press(m, tea.KeyBackspace)
	m = press(m, tea.KeyBackspace)
	m = press(m, tea.KeyBackspace)
	m = press(m, tea.KeyBackspace)
	m = typeText(m, "sushi")
	if out := region(m); !strings.Contains(out, views.NoResultsMessage("sushi")) {
		t.Errorf("Expected no-results view naming the query, got:\n%s", out)
	}

	// Exit restores the selected restaurant
	m = press(m, tea.KeyEsc)
	s := m.State()
	if s.IsSearching || s.Query != "" || m.search.Value() != "" {
		t.Error("Expected search cleared and closed after Esc")
	}
	if m.search.Focused() {
		t.Error("Expected search box to lose focus after Esc")
	}
	out = region(m)
	if !strings.Contains(out, "Buffalo Wings") || !strings.Contains(out, "Coleslaw") {
		t.Errorf("Expected alley's full menu restored, got:\n%s", out)
	}
}

func TestSearchInputIgnoredOutsideSearchMode(t *testing.T) {
	m, _ := loadedModel(t, MockFetcher{Payload: twoRestaurantPayload()})

	m.search.SetValue("wing")
	m.onSearchInput()

	if m.State().Query != "" {
		t.Errorf("Expected query ignored outside search mode, got %q", m.State().Query)
	}
}

func TestTabSwitchResetsSearch(t *testing.T) {
	m, _ := loadedModel(t, MockFetcher{Payload: twoRestaurantPayload()})

	m = typeText(m, "/")
	m = typeText(m, "soup")
	m.selectRestaurant("bistro")

	s := m.State()
	if s.IsSearching || s.Query != "" || m.search.Value() != "" {
		t.Error("Expected tab switch to clear and close search")
	}
	out := region(m)
	if !strings.Contains(out, "Tomato Soup") {
		t.Errorf("Expected bistro's full menu, got:\n%s", out)
	}
	if groups := s.DisplayedGroups(); len(groups) != 1 || groups[0].Slug != "bistro" || len(groups[0].Items) != 1 {
		t.Errorf("Expected exactly bistro's full menu displayed, got %v", groups)
	}
}

func TestSearchAnalytics(t *testing.T) {
	m, rec := loadedModel(t, MockFetcher{Payload: twoRestaurantPayload()})

	m = typeText(m, "/")
	m = typeText(m, "w")
	m = typeText(m, " ")
	m = press(m, tea.KeyEsc)

	want := []string{
		analytics.EventMenuLoaded,
		analytics.EventSearchOpen,
		analytics.EventSearchQuery,
		analytics.EventSearchClose,
	}
	got := rec.Names()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Expected events %v, got %v", want, got)
	}
}

func TestImageAndBannerProbes(t *testing.T) {
	f := MockFetcher{
		Payload: twoRestaurantPayload(),
		Broken:  map[string]bool{"https://img.test/wings.png": true},
	}
	m, _ := loadedModel(t, f)

	updated, _ := m.Update(ImageProbedMsg{URL: "https://img.test/wings.png", Err: menuservice.ErrNotAnImage})
	m = updated.(*MainModel)
	updated, _ = m.Update(BannerProbedMsg{URL: "https://img.test/banner.png"})
	m = updated.(*MainModel)

	s := m.State()
	if !s.IsBroken("https://img.test/wings.png") {
		t.Error("Expected wings image marked broken")
	}
	if s.Phase != state.PhaseReady {
		t.Error("Expected image failures to leave the page usable")
	}
	if !s.BannerLoaded {
		t.Error("Expected banner to be marked loaded")
	}

	header := views.RenderHeader(s, 80)
	if strings.Contains(header, "Digital Food Court") {
		t.Error("Expected title hidden once the banner loads")
	}
}

func TestBannerFailureKeepsTitle(t *testing.T) {
	m, _ := loadedModel(t, MockFetcher{Payload: twoRestaurantPayload()})

	updated, _ := m.Update(BannerProbedMsg{URL: "https://img.test/banner.png", Err: menuservice.ErrNotAnImage})
	m = updated.(*MainModel)

	if m.State().BannerLoaded {
		t.Error("Expected banner to stay hidden after a failed probe")
	}
	if !strings.Contains(views.RenderHeader(m.State(), 80), "Digital Food Court") {
		t.Error("Expected title to remain visible")
	}
}

func TestOverviewToggle(t *testing.T) {
	m, _ := loadedModel(t, MockFetcher{Payload: twoRestaurantPayload()})

	m = typeText(m, "o")
	if !m.State().ShowOverview {
		t.Fatal("Expected overview after 'o'")
	}
	if !strings.Contains(m.View(), "Dishes per Restaurant") {
		t.Error("Expected overview chart in the view")
	}

	m = typeText(m, "/")
	if m.State().ShowOverview {
		t.Error("Expected search to hide the overview")
	}
}

func TestQuit(t *testing.T) {
	m, _ := loadedModel(t, MockFetcher{Payload: sunsetPayload()})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(*MainModel)
	if cmd == nil || !m.quitting {
		t.Error("Expected q to quit")
	}
	if m.View() != "Bye!\n" {
		t.Errorf("Expected goodbye view, got %q", m.View())
	}
	if m.ctx.Err() == nil {
		t.Error("Expected pending work to be cancelled on quit")
	}
}

func TestScrollStaysWithinContent(t *testing.T) {
	m, _ := loadedModel(t, MockFetcher{Payload: twoRestaurantPayload()})

	// No window size yet: nothing to scroll
	m = press(m, tea.KeyDown)
	if m.scrollY != 0 {
		t.Errorf("Expected no scrolling before the first resize, got %d", m.scrollY)
	}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	m = updated.(*MainModel)

	limit := views.MaxScroll(m.State(), m.viewProps())
	if limit == 0 {
		t.Fatal("Expected the menu to overflow a 12-line screen")
	}
	for i := 0; i < limit+50; i++ {
		m = press(m, tea.KeyDown)
	}
	if m.scrollY != limit {
		t.Errorf("Expected scroll to stop at %d, got %d", limit, m.scrollY)
	}

	m = press(m, tea.KeyUp)
	if m.scrollY != limit-1 {
		t.Errorf("Expected one step up to take effect immediately, got %d", m.scrollY)
	}

	// A taller screen pulls the offset back
	updated, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 500})
	m = updated.(*MainModel)
	if m.scrollY != 0 {
		t.Errorf("Expected offset reset when everything fits, got %d", m.scrollY)
	}
}
