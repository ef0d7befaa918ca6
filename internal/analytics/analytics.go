// Package analytics records user interaction events for local diagnostics.
// Nothing here leaves the machine.
package analytics

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Event names.
const (
	EventMenuLoaded  = "menu_loaded"
	EventMenuFailed  = "menu_failed"
	EventTabClick    = "tab_click"
	EventSearchOpen  = "search_open"
	EventSearchClose = "search_close"
	EventSearchQuery = "search_query"
)

// Params carries event attributes.
type Params map[string]any

// Tracker receives interaction events.
type Tracker interface {
	LogEvent(name string, params Params)
}

// LogTracker writes events to a zap logger, tagged with a per-run session id.
type LogTracker struct {
	log     *zap.Logger
	session string
}

// NewLogTracker starts a new session on the given logger.
func NewLogTracker(log *zap.Logger) *LogTracker {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogTracker{log: log.Named("analytics"), session: uuid.NewString()}
}

// Session returns the id stamped on every event.
func (t *LogTracker) Session() string { return t.session }

func (t *LogTracker) LogEvent(name string, params Params) {
	fields := make([]zap.Field, 0, len(params)+2)
	fields = append(fields, zap.String("event", name), zap.String("session", t.session))

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fields = append(fields, zap.Any(k, params[k]))
	}
	t.log.Info("event", fields...)
}

// Event is a recorded call to LogEvent.
type Event struct {
	Name   string
	Params Params
}

// Recorder keeps events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) LogEvent(name string, params Params) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Name: name, Params: params})
}

// Events returns a copy of what has been recorded.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Names lists recorded event names in order.
func (r *Recorder) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.events))
	for _, e := range r.events {
		names = append(names, e.Name)
	}
	return names
}
