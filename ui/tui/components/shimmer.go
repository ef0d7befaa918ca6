package components

import (
	"time"

	"foodcourt/ui/tui/views"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

// ShimmerFPS is the frame rate of the loading animation.
const ShimmerFPS = 20

// ShimmerFrameMsg advances the loading animation by one frame.
type ShimmerFrameMsg time.Time

// Shimmer sweeps a glint across the placeholder cards, driven by a spring
// bouncing between 0 and 1.
type Shimmer struct {
	Count    int
	phase    float64
	velocity float64
	target   float64
	spring   harmonica.Spring
}

func NewShimmer(count int) *Shimmer {
	return &Shimmer{
		Count:  count,
		target: 1,
		spring: harmonica.NewSpring(harmonica.FPS(ShimmerFPS), 4.0, 0.8),
	}
}

func (s *Shimmer) Init() tea.Cmd {
	return s.frameCmd()
}

func (s *Shimmer) frameCmd() tea.Cmd {
	return tea.Tick(time.Second/ShimmerFPS, func(t time.Time) tea.Msg {
		return ShimmerFrameMsg(t)
	})
}

// Step moves the glint one frame and flips direction near either end.
func (s *Shimmer) Step() {
	s.phase, s.velocity = s.spring.Update(s.phase, s.velocity, s.target)
	if s.target == 1 && s.phase > 0.95 {
		s.target = 0
	} else if s.target == 0 && s.phase < 0.05 {
		s.target = 1
	}
}

// Update steps on every frame message and schedules the next one.
func (s *Shimmer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(ShimmerFrameMsg); ok {
		s.Step()
		return s, s.frameCmd()
	}
	return s, nil
}

func (s *Shimmer) Phase() float64 { return s.phase }

func (s *Shimmer) View() string {
	return views.RenderShimmer(s.Count, s.phase)
}
