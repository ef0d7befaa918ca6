package tui

import (
	"context"
	"errors"
	"strconv"

	"foodcourt/internal/analytics"
	"foodcourt/internal/config"
	"foodcourt/internal/menu"
	"foodcourt/internal/menuservice"
	"foodcourt/internal/output"
	"foodcourt/ui/tui/components"
	"foodcourt/ui/tui/state"
	"foodcourt/ui/tui/views"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"
)

const (
	overviewHeight = 12
	scrollStep     = 3
)

// MainModel is the Bubble Tea Model acting as the Controller
type MainModel struct {
	ctx      context.Context
	cancel   context.CancelFunc
	fetcher  menuservice.Fetcher
	prober   *menuservice.ImageProber
	tracker  analytics.Tracker
	log      *zap.Logger
	config   config.Config
	format   output.Format
	state    state.AppState
	search   textinput.Model
	spinner  spinner.Model
	shimmer  *components.Shimmer
	overview *components.OverviewWidget

	lastQuery string
	scrollY   int
	quitting  bool
	width     int
	height    int
}

// Messages
type MenuLoadedMsg struct {
	Data *output.MenuData
	Err  error
}

type BannerProbedMsg struct {
	URL string
	Err error
}

type ImageProbedMsg struct {
	URL string
	Err error
}

func InitialModel(fetcher menuservice.Fetcher, cfg config.Config, tracker analytics.Tracker, log *zap.Logger) MainModel {
	if log == nil {
		log = zap.NewNop()
	}
	if tracker == nil {
		tracker = analytics.NewLogTracker(log)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	ti := textinput.New()
	ti.CharLimit = 80
	ti.Width = 40
	ti.Prompt = ""

	ctx, cancel := context.WithCancel(context.Background())

	return MainModel{
		ctx:      ctx,
		cancel:   cancel,
		fetcher:  fetcher,
		prober:   menuservice.NewImageProber(fetcher, cfg.ImageProbeConcurrency),
		tracker:  tracker,
		log:      log,
		config:   cfg,
		format:   output.FormatFromConfig(cfg),
		search:   ti,
		spinner:  s,
		shimmer:  components.NewShimmer(cfg.ShimmerCount),
		overview: components.NewOverviewWidget(40, overviewHeight),
		state: state.AppState{
			Phase:        state.PhaseLoading,
			BrokenImages: make(map[string]bool),
		},
	}
}

// Init runs the startup sequence: static text, shimmer, then the fetch.
func (m *MainModel) Init() tea.Cmd {
	m.setStaticUI()
	return tea.Batch(
		m.spinner.Tick,
		m.shimmer.Init(),
		fetchMenuCmd(m.ctx, m.fetcher),
	)
}

func (m *MainModel) setStaticUI() {
	m.state.Title = m.config.AppTitle
	m.state.Subtitle = m.config.AppSubtitle
	m.state.SearchPlaceholder = m.config.SearchPlaceholder
	m.search.Placeholder = m.config.SearchPlaceholder
}

// Commands
func fetchMenuCmd(ctx context.Context, f output.DataFetcher) tea.Cmd {
	return func() tea.Msg {
		data, err := output.LoadMenu(ctx, f)
		return MenuLoadedMsg{Data: data, Err: err}
	}
}

func probeBannerCmd(ctx context.Context, f menuservice.Fetcher, url string) tea.Cmd {
	return func() tea.Msg {
		return BannerProbedMsg{URL: url, Err: f.ProbeImage(ctx, url)}
	}
}

func probeImageCmd(ctx context.Context, p *menuservice.ImageProber, url string) tea.Cmd {
	return func() tea.Msg {
		return ImageProbedMsg{URL: url, Err: p.Probe(ctx, url)}
	}
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case MenuLoadedMsg:
		return m.handleMenuLoadedMsg(msg)

	case BannerProbedMsg:
		return m.handleBannerProbedMsg(msg)

	case ImageProbedMsg:
		return m.handleImageProbedMsg(msg)

	case components.ShimmerFrameMsg:
		if m.state.Phase != state.PhaseLoading {
			return m, nil
		}
		_, cmd := m.shimmer.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		if m.state.Phase != state.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	// Cursor blink and other input internals
	if m.state.IsSearching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, m.quit()
	}

	if m.state.IsSearching {
		switch key {
		case "esc":
			m.exitSearch()
			return m, nil
		case "up", "down", "pgup", "pgdown":
			m.scroll(key)
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.onSearchInput()
		return m, cmd
	}

	switch key {
	case "q":
		return m, m.quit()
	case "up", "k", "down", "j", "pgup", "pgdown":
		m.scroll(key)
		return m, nil
	}

	if m.state.Phase != state.PhaseReady {
		return m, nil
	}

	switch key {
	case "/":
		return m, m.enterSearch()
	case "right", "l", "tab":
		m.shiftTab(1)
	case "left", "h", "shift+tab":
		m.shiftTab(-1)
	case "o":
		m.state.ShowOverview = !m.state.ShowOverview
		m.scrollY = 0
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.state.Restaurants) {
			m.selectRestaurant(m.state.Restaurants[n-1].Slug)
		}
	}
	return m, nil
}

func (m *MainModel) quit() tea.Cmd {
	m.quitting = true
	m.cancel()
	return tea.Quit
}

// scroll moves the menu region and keeps the offset within its content.
func (m *MainModel) scroll(key string) {
	switch key {
	case "up", "k":
		m.scrollY--
	case "down", "j":
		m.scrollY++
	case "pgup":
		m.scrollY -= scrollStep * 3
	case "pgdown":
		m.scrollY += scrollStep * 3
	}
	if limit := views.MaxScroll(m.state, m.viewProps()); m.scrollY > limit {
		m.scrollY = limit
	}
	if m.scrollY < 0 {
		m.scrollY = 0
	}
}

func (m *MainModel) shiftTab(delta int) {
	n := len(m.state.Restaurants)
	if n == 0 {
		return
	}
	i := m.state.SelectedIndex()
	if i < 0 {
		i = 0
	}
	next := ((i+delta)%n + n) % n
	m.selectRestaurant(m.state.Restaurants[next].Slug)
}

// selectRestaurant is the tab click: a different slug switches the menu
// and drops any search; the current slug is a no-op.
func (m *MainModel) selectRestaurant(slug string) {
	if m.state.Phase != state.PhaseReady || slug == m.state.SelectedSlug {
		return
	}
	r, ok := menu.Find(m.state.Restaurants, slug)
	if !ok {
		return
	}

	m.state.SelectedSlug = slug
	m.state.IsSearching = false
	m.state.ShowOverview = false
	m.clearSearchBox()
	m.search.Blur()
	m.scrollY = 0

	m.tracker.LogEvent(analytics.EventTabClick, analytics.Params{
		"restaurant_slug": r.Slug,
		"restaurant_name": r.Name,
	})
}

func (m *MainModel) enterSearch() tea.Cmd {
	m.state.IsSearching = true
	m.state.ShowOverview = false
	m.clearSearchBox()
	m.scrollY = 0
	m.tracker.LogEvent(analytics.EventSearchOpen, nil)
	return m.search.Focus()
}

func (m *MainModel) exitSearch() {
	m.state.IsSearching = false
	m.clearSearchBox()
	m.search.Blur()
	m.scrollY = 0
	m.tracker.LogEvent(analytics.EventSearchClose, nil)
}

func (m *MainModel) clearSearchBox() {
	m.search.SetValue("")
	m.state.Query = ""
	m.lastQuery = ""
}

// onSearchInput mirrors the box into state; it is ignored outside search mode.
func (m *MainModel) onSearchInput() {
	if !m.state.IsSearching {
		return
	}
	value := m.search.Value()
	if value == m.state.Query {
		return
	}
	m.state.Query = value
	m.scrollY = 0

	q := menu.NormalizeQuery(value)
	if q == "" || q == m.lastQuery {
		return
	}
	m.lastQuery = q
	groups := menu.Search(m.state.Restaurants, q)
	m.tracker.LogEvent(analytics.EventSearchQuery, analytics.Params{
		"query":       q,
		"restaurants": len(groups),
		"items":       menu.ItemCount(groups),
	})
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	if w := msg.Width - 12; w > 10 {
		m.search.Width = w
	}
	if w := msg.Width - 8; w > 20 {
		m.overview.Resize(w, overviewHeight)
	}
	m.scroll("")
	return m, nil
}

func (m *MainModel) handleMenuLoadedMsg(msg MenuLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.state.Phase = state.PhaseFailed
		m.state.Err = msg.Err
		m.state.ErrTitle = m.config.ErrorTitle
		reason := "unavailable"
		if errors.Is(msg.Err, menu.ErrEmptyMenu) {
			m.state.ErrMessage = m.config.EmptyDataErrorMessage
			reason = "empty"
		} else {
			m.state.ErrMessage = m.config.APIErrorMessage
		}
		m.log.Warn("menu unavailable", zap.String("reason", reason), zap.Error(msg.Err))
		m.tracker.LogEvent(analytics.EventMenuFailed, analytics.Params{"reason": reason})
		return m, nil
	}

	data := msg.Data
	m.state.Restaurants = data.Restaurants
	m.state.SelectedSlug = data.Restaurants[0].Slug
	m.state.Banner = data.Banner
	m.state.Phase = state.PhaseReady
	m.overview.SetRestaurants(data.Restaurants)

	m.tracker.LogEvent(analytics.EventMenuLoaded, analytics.Params{
		"restaurants": len(data.Restaurants),
		"items":       menu.ItemCount(data.Restaurants),
	})

	var cmds []tea.Cmd
	if data.Banner != "" {
		cmds = append(cmds, probeBannerCmd(m.ctx, m.fetcher, data.Banner))
	}
	if m.config.ProbeImages {
		for _, url := range menuservice.ImageURLs(data.Restaurants) {
			cmds = append(cmds, probeImageCmd(m.ctx, m.prober, url))
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *MainModel) handleBannerProbedMsg(msg BannerProbedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.log.Debug("banner unavailable", zap.String("url", msg.URL), zap.Error(msg.Err))
		return m, nil
	}
	if msg.URL == m.state.Banner {
		m.state.BannerLoaded = true
	}
	return m, nil
}

func (m *MainModel) handleImageProbedMsg(msg ImageProbedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.log.Debug("image unavailable, using placeholder", zap.String("url", msg.URL), zap.Error(msg.Err))
		m.state.BrokenImages[msg.URL] = true
	}
	return m, nil
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scroll("up")
		case tea.MouseButtonWheelDown:
			m.scroll("down")
		}
		return m, nil
	}
	if m.state.Phase != state.PhaseReady {
		return m, nil
	}
	for _, r := range m.state.Restaurants {
		if zone.Get(views.TabZoneID(r.Slug)).InBounds(msg) {
			m.selectRestaurant(r.Slug)
			return m, nil
		}
	}
	return m, nil
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	return views.RenderPage(m.state, m.viewProps())
}

func (m *MainModel) viewProps() views.ViewProps {
	props := views.ViewProps{
		Width:         m.width,
		Height:        m.height,
		Format:        m.format,
		ShimmerCount:  m.shimmer.Count,
		ShimmerPhase:  m.shimmer.Phase(),
		SpinnerView:   m.spinner.View(),
		SearchBoxView: m.search.View(),
		ScrollY:       m.scrollY,
	}
	if m.state.ShowOverview {
		props.OverviewView = m.overview.View()
	}
	return props
}

// State exposes a copy of the session state.
func (m *MainModel) State() state.AppState {
	return m.state
}

func Start(fetcher menuservice.Fetcher, cfg config.Config, tracker analytics.Tracker, log *zap.Logger) error {
	zone.NewGlobal()

	m := InitialModel(fetcher, cfg, tracker, log)
	defer m.cancel()

	p := tea.NewProgram(
		&m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
