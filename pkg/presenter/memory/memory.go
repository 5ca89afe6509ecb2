// Package memory provides a Presenter that records feedback in memory. It
// backs headless callers and tests.
package memory

import (
	"sync"

	"github.com/goliatone/go-formctl/pkg/controller"
	"github.com/goliatone/go-formctl/pkg/model"
)

// EventKind names a presenter call.
type EventKind string

const (
	EventSetError   EventKind = "set_error"
	EventClearError EventKind = "clear_error"
	EventShowBanner EventKind = "show_banner"
	EventHideBanner EventKind = "hide_banner"
	EventLoading    EventKind = "loading"
	EventReset      EventKind = "reset"
)

// Event is one recorded presenter call.
type Event struct {
	Kind    EventKind
	Field   string
	Message string
	Loading bool
	Banner  controller.Banner
}

// Presenter records field errors, the visible banner and the loading state.
// It is safe for concurrent use.
type Presenter struct {
	mu      sync.Mutex
	errors  map[string]string
	reset   []model.Field
	banner  *controller.Banner
	loading bool
	events  []Event
}

var (
	_ controller.Presenter    = (*Presenter)(nil)
	_ controller.FormResetter = (*Presenter)(nil)
)

// New returns an empty Presenter.
func New() *Presenter {
	return &Presenter{
		errors: make(map[string]string),
	}
}

func (p *Presenter) SetFieldError(field model.Field, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errors[field.Name] = message
	p.record(Event{Kind: EventSetError, Field: field.Name, Message: message})
}

func (p *Presenter) ClearFieldError(field model.Field) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.errors, field.Name)
	p.record(Event{Kind: EventClearError, Field: field.Name})
}

func (p *Presenter) ShowBanner(banner controller.Banner) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.banner = &banner
	p.record(Event{Kind: EventShowBanner, Banner: banner, Message: banner.Message})
}

func (p *Presenter) HideBanner() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.banner = nil
	p.record(Event{Kind: EventHideBanner})
}

func (p *Presenter) SetLoading(loading bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = loading
	p.record(Event{Kind: EventLoading, Loading: loading})
}

// ResetForm stores the post-reset field values.
func (p *Presenter) ResetForm(fields []model.Field) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset = append([]model.Field(nil), fields...)
	p.record(Event{Kind: EventReset})
}

func (p *Presenter) record(event Event) {
	p.events = append(p.events, event)
}

// ErrorFor returns the visible error of a field or radio group.
func (p *Presenter) ErrorFor(name string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	msg, ok := p.errors[name]
	return msg, ok
}

// Errors returns a copy of the visible field errors.
func (p *Presenter) Errors() map[string]string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[string]string, len(p.errors))
	for name, msg := range p.errors {
		out[name] = msg
	}
	return out
}

// Banner returns the visible banner, if any.
func (p *Presenter) Banner() (controller.Banner, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.banner == nil {
		return controller.Banner{}, false
	}
	return *p.banner, true
}

// Loading reports whether the loading indicator is shown.
func (p *Presenter) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

// LastReset returns the fields passed to the most recent ResetForm.
func (p *Presenter) LastReset() []model.Field {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]model.Field(nil), p.reset...)
}

// Events returns a copy of the recorded calls in order.
func (p *Presenter) Events() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Event(nil), p.events...)
}

// Count reports how many events of kind were recorded.
func (p *Presenter) Count(kind EventKind) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, event := range p.events {
		if event.Kind == kind {
			n++
		}
	}
	return n
}

// Reset forgets every recorded event and visible state.
func (p *Presenter) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errors = make(map[string]string)
	p.reset = nil
	p.banner = nil
	p.loading = false
	p.events = nil
}
