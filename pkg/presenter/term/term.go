// Package term renders controller feedback as styled lines on a terminal.
package term

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-formctl/pkg/controller"
	"github.com/goliatone/go-formctl/pkg/model"
)

// Line marks.
const (
	MarkInvalid = "✗"
	MarkLoading = "…"
)

// LoadingMessage is printed when a submission starts.
const LoadingMessage = "Submitting"

// Styles holds the lipgloss styles used for each kind of line.
type Styles struct {
	Label   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
	Loading lipgloss.Style
}

// DefaultStyles builds the default palette against renderer r.
func DefaultStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Label:   r.NewStyle().Bold(true),
		Error:   r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		Success: r.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		Failure: r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Loading: r.NewStyle().Foreground(lipgloss.Color("#7D56F4")),
	}
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithStyles replaces the default palette.
func WithStyles(styles Styles) Option {
	return func(p *Presenter) {
		p.styles = styles
	}
}

// Presenter writes a line when a field starts failing (or its message
// changes), when a banner appears and when loading starts. Clearing errors and
// hiding the banner only update state; a terminal cannot retract lines.
type Presenter struct {
	mu      sync.Mutex
	out     io.Writer
	styles  Styles
	failing map[string]string
	banner  *controller.Banner
	loading bool
}

var _ controller.Presenter = (*Presenter)(nil)

// New returns a Presenter printing to w.
func New(w io.Writer, options ...Option) *Presenter {
	target := w
	if target == nil {
		target = io.Discard
	}
	p := &Presenter{
		out:     w,
		styles:  DefaultStyles(lipgloss.NewRenderer(target)),
		failing: make(map[string]string),
	}
	for _, opt := range options {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

func (p *Presenter) SetFieldError(field model.Field, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if current, ok := p.failing[field.Name]; ok && current == message {
		return
	}
	p.failing[field.Name] = message
	p.printf("%s %s %s\n",
		p.styles.Error.Render(MarkInvalid),
		p.styles.Label.Render(label(field)+":"),
		p.styles.Error.Render(message),
	)
}

func (p *Presenter) ClearFieldError(field model.Field) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.failing, field.Name)
}

func (p *Presenter) ShowBanner(banner controller.Banner) {
	p.mu.Lock()
	defer p.mu.Unlock()
	b := banner
	p.banner = &b
	style := p.styles.Failure
	if banner.Kind == controller.BannerSuccess {
		style = p.styles.Success
	}
	p.printf("%s\n", style.Render(banner.Message))
}

func (p *Presenter) HideBanner() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.banner = nil
}

func (p *Presenter) SetLoading(loading bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if loading && !p.loading {
		p.printf("%s\n", p.styles.Loading.Render(LoadingMessage+MarkLoading))
	}
	p.loading = loading
}

// Banner returns the banner currently shown, if any.
func (p *Presenter) Banner() (controller.Banner, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.banner == nil {
		return controller.Banner{}, false
	}
	return *p.banner, true
}

// Failing reports the error currently shown for field name.
func (p *Presenter) Failing(name string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	message, ok := p.failing[name]
	return message, ok
}

func (p *Presenter) printf(format string, args ...any) {
	if p.out == nil {
		return
	}
	fmt.Fprintf(p.out, format, args...)
}

// label names radio groups by their shared name; member labels describe a
// single option.
func label(field model.Field) string {
	if field.Type == model.FieldTypeRadio {
		return field.Name
	}
	return field.DisplayLabel()
}
