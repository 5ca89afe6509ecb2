package dom

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"

	"github.com/goliatone/go-formctl/pkg/controller"
	"github.com/goliatone/go-formctl/pkg/htmlform"
	"github.com/goliatone/go-formctl/pkg/model"
)

// Banner positions applied through the inline `top` property.
const (
	BannerShownTop  = "20px"
	BannerHiddenTop = "-100px"
)

// Classes names the elements and states of the DOM contract.
type Classes struct {
	FormGroup       string
	InputWrapper    string
	ErrorMessage    string
	ConsentCheckbox string
	Error           string
	Visible         string
	Feedback        string
	FeedbackSuccess string
	FeedbackError   string
	Spinner         string
}

// DefaultClasses returns the class names of the reference markup.
func DefaultClasses() Classes {
	return Classes{
		FormGroup:       "form-group",
		InputWrapper:    "input-wrapper",
		ErrorMessage:    "error-message",
		ConsentCheckbox: "consent-checkbox",
		Error:           "error",
		Visible:         "visible",
		Feedback:        "feedback-message",
		FeedbackSuccess: "feedback-success",
		FeedbackError:   "feedback-error",
		Spinner:         "loading-spinner",
	}
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithClasses overrides the contract's class names.
func WithClasses(classes Classes) Option {
	return func(p *Presenter) {
		p.classes = classes
	}
}

// Presenter writes controller feedback into a goquery document. It is safe
// for concurrent use.
type Presenter struct {
	mu      sync.Mutex
	doc     *goquery.Document
	form    *goquery.Selection
	classes Classes
}

var (
	_ controller.Presenter    = (*Presenter)(nil)
	_ controller.FormResetter = (*Presenter)(nil)
)

// New wraps doc and locates form formID.
func New(doc *goquery.Document, formID string, options ...Option) (*Presenter, error) {
	if doc == nil {
		return nil, fmt.Errorf("dom: document is required")
	}
	if strings.TrimSpace(formID) == "" {
		formID = htmlform.DefaultFormID
	}
	form := htmlform.FindForm(doc, formID)
	if form.Length() == 0 {
		return nil, fmt.Errorf("%w: #%s", htmlform.ErrFormNotFound, formID)
	}
	p := &Presenter{
		doc:     doc,
		form:    form,
		classes: DefaultClasses(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(p)
		}
	}
	return p, nil
}

// Parse reads a page from r and wraps it.
func Parse(r io.Reader, formID string, options ...Option) (*Presenter, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse document: %w", err)
	}
	return New(doc, formID, options...)
}

// Document exposes the wrapped document.
func (p *Presenter) Document() *goquery.Document {
	return p.doc
}

// EnsureChrome appends the loading spinner and feedback banner to the body
// when the page does not carry them.
func (p *Presenter) EnsureChrome() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.doc.Find(class(p.classes.Spinner)).Length() > 0 {
		return nil
	}
	markup, err := chromeMarkup(p.classes.Spinner, p.classes.Feedback)
	if err != nil {
		return err
	}
	body := p.doc.Find("body").First()
	if body.Length() == 0 {
		return fmt.Errorf("dom: document has no body")
	}
	body.AppendHtml(markup)
	return nil
}

func (p *Presenter) SetFieldError(field model.Field, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch field.Type {
	case model.FieldTypeRadio:
		errorDiv := p.groupOf(field).Find(class(p.classes.ErrorMessage)).First()
		errorDiv.SetText(message)
		setStyle(errorDiv, "display", "block")
	case model.FieldTypeCheckbox:
		consent := p.input(field).Closest(class(p.classes.ConsentCheckbox))
		errorDiv := consent.Find(class(p.classes.ErrorMessage)).First()
		errorDiv.SetText(message)
		setStyle(errorDiv, "display", "block")
		consent.AddClass(p.classes.Error)
	default:
		input := p.input(field)
		input.Closest(class(p.classes.InputWrapper)).AddClass(p.classes.Error)
		errorDiv := input.Closest(class(p.classes.FormGroup)).Find(class(p.classes.ErrorMessage)).First()
		errorDiv.SetText(message)
		errorDiv.AddClass(p.classes.Visible)
	}
}

func (p *Presenter) ClearFieldError(field model.Field) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch field.Type {
	case model.FieldTypeRadio:
		errorDiv := p.groupOf(field).Find(class(p.classes.ErrorMessage)).First()
		setStyle(errorDiv, "display", "none")
	case model.FieldTypeCheckbox:
		consent := p.input(field).Closest(class(p.classes.ConsentCheckbox))
		setStyle(consent.Find(class(p.classes.ErrorMessage)).First(), "display", "none")
		consent.RemoveClass(p.classes.Error)
	default:
		input := p.input(field)
		input.Closest(class(p.classes.InputWrapper)).RemoveClass(p.classes.Error)
		errorDiv := input.Closest(class(p.classes.FormGroup)).Find(class(p.classes.ErrorMessage)).First()
		errorDiv.RemoveClass(p.classes.Visible)
		errorDiv.SetText("")
	}
}

func (p *Presenter) ShowBanner(banner controller.Banner) {
	p.mu.Lock()
	defer p.mu.Unlock()

	kind := p.classes.FeedbackError
	if banner.Kind == controller.BannerSuccess {
		kind = p.classes.FeedbackSuccess
	}
	feedback := p.doc.Find(class(p.classes.Feedback)).First()
	feedback.SetText(banner.Message)
	feedback.SetAttr("class", p.classes.Feedback+" "+kind)
	setStyle(feedback, "top", BannerShownTop)
}

func (p *Presenter) HideBanner() {
	p.mu.Lock()
	defer p.mu.Unlock()
	setStyle(p.doc.Find(class(p.classes.Feedback)).First(), "top", BannerHiddenTop)
}

func (p *Presenter) SetLoading(loading bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	display := "none"
	if loading {
		display = "flex"
	}
	setStyle(p.doc.Find(class(p.classes.Spinner)).First(), "display", display)
}

// ResetForm writes field values back into the markup: text values become the
// value attribute (or textarea content) and checkable inputs gain or lose the
// checked attribute.
func (p *Presenter) ResetForm(fields []model.Field) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, field := range fields {
		input := p.input(field)
		switch {
		case field.Type.Checkable():
			if field.Checked {
				input.SetAttr("checked", "")
			} else {
				input.RemoveAttr("checked")
			}
		case goquery.NodeName(input) == "textarea":
			input.SetText(field.Value)
		case goquery.NodeName(input) == "select":
			input.Find("option").RemoveAttr("selected")
		default:
			input.SetAttr("value", field.Value)
		}
	}
}

// HTML renders the whole document.
func (p *Presenter) HTML() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.doc.Html()
}

// WriteTo writes the rendered document to w.
func (p *Presenter) WriteTo(w io.Writer) (int64, error) {
	out, err := p.HTML()
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, out)
	return int64(n), err
}

// BannerState reports the banner's text, kind class and visibility.
func (p *Presenter) BannerState() (text string, classes string, visible bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	feedback := p.doc.Find(class(p.classes.Feedback)).First()
	return feedback.Text(), feedback.AttrOr("class", ""), styleOf(feedback, "top") == BannerShownTop
}

// Loading reports whether the spinner is displayed.
func (p *Presenter) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return styleOf(p.doc.Find(class(p.classes.Spinner)), "display") == "flex"
}

// input finds the control for field. Radio and checkbox members are matched
// on value as well so the right option is addressed.
func (p *Presenter) input(field model.Field) *goquery.Selection {
	return p.form.Find(htmlform.Controls).FilterFunction(func(_ int, s *goquery.Selection) bool {
		if s.AttrOr("name", "") != field.Name {
			return false
		}
		if field.Type == model.FieldTypeRadio {
			return s.AttrOr("value", "") == field.Value
		}
		return true
	}).First()
}

// groupOf returns the form group of the first radio sharing field's name.
func (p *Presenter) groupOf(field model.Field) *goquery.Selection {
	first := p.form.Find("input").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.AttrOr("name", "") == field.Name
	}).First()
	return first.Closest(class(p.classes.FormGroup))
}

func class(name string) string {
	return "." + name
}
