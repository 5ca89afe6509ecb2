package controller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/goliatone/go-formctl/internal/logger"
	"github.com/goliatone/go-formctl/pkg/model"
	"github.com/goliatone/go-formctl/pkg/submit"
	"github.com/goliatone/go-formctl/pkg/validation"
)

// Phase is the controller's current activity.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseValidating Phase = "validating"
	PhaseSubmitting Phase = "submitting"
)

// Result is the terminal state of one submission.
type Result string

const (
	ResultInvalid   Result = "invalid"
	ResultSucceeded Result = "succeeded"
	ResultFailed    Result = "failed"
)

// Outcome describes one call to Submit. Err carries the transport error or
// the remote rejection when Result is ResultFailed.
type Outcome struct {
	Result   Result
	Report   validation.Report
	Payload  model.Payload
	Response submit.Response
	Err      error
}

// Submitter delivers a payload to the remote endpoint.
type Submitter interface {
	Submit(ctx context.Context, payload model.Payload) (submit.Response, error)
}

// Controller coordinates validation, feedback and submission for one form.
type Controller struct {
	mu sync.Mutex

	form           *model.Form
	submitter      Submitter
	validator      *validation.Validator
	presenter      Presenter
	clock          clock.Clock
	logger         logger.Logger
	bannerDuration time.Duration
	guard          bool

	onPhase     func(Phase)
	phase       Phase
	inflight    int
	bannerTimer *clock.Timer
	bannerSeq   uint64
}

// New constructs a Controller over form. The form is owned by the controller
// afterwards; read it through Snapshot and Payload.
func New(form *model.Form, submitter Submitter, options ...Option) (*Controller, error) {
	if form == nil {
		return nil, errFormRequired
	}
	if submitter == nil {
		return nil, errSubmitterRequired
	}

	c := &Controller{
		form:           form,
		submitter:      submitter,
		presenter:      nopPresenter{},
		clock:          clock.New(),
		logger:         logger.Nop(),
		bannerDuration: DefaultBannerDuration,
		phase:          PhaseIdle,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.validator == nil {
		v, err := validation.New()
		if err != nil {
			return nil, err
		}
		c.validator = v
	}
	return c, nil
}

// Phase reports what the controller is doing right now.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Snapshot returns copies of the current fields.
func (c *Controller) Snapshot() []model.Field {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form.Snapshot()
}

// Payload returns the mapping a submission would send right now.
func (c *Controller) Payload() model.Payload {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form.Payload()
}

// Input records an edit to a text-like field and clears its error without
// re-validating.
func (c *Controller) Input(name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	field, err := c.textField(name)
	if err != nil {
		return err
	}
	field.Value = value
	c.presenter.ClearFieldError(*field)
	return nil
}

// Blur validates a text-like field after it loses focus.
func (c *Controller) Blur(name string) (validation.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	field, err := c.textField(name)
	if err != nil {
		return validation.Result{}, err
	}
	return c.validateField(field), nil
}

// Choose checks one member of a radio group and re-validates the group.
func (c *Controller) Choose(name, value string) (validation.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	chosen, err := c.form.Choose(name, value)
	if err != nil {
		return validation.Result{}, err
	}
	return c.validateField(chosen), nil
}

// Check sets a checkbox. The box is validated on the next submit, not here.
func (c *Controller) Check(name string, checked bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	field, err := c.form.Field(name)
	if err != nil {
		return err
	}
	if field.Type != model.FieldTypeCheckbox {
		return fmt.Errorf("%w: %q is a %s field", model.ErrFieldType, name, field.Type)
	}
	field.Checked = checked
	return nil
}

// ValidateField validates the named field, or the radio group of that name,
// and updates its feedback.
func (c *Controller) ValidateField(name string) (validation.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if members := c.form.Group(name); len(members) > 0 {
		return c.validateField(members[0]), nil
	}
	field, err := c.form.Field(name)
	if err != nil {
		return validation.Result{}, err
	}
	return c.validateField(field), nil
}

// ValidateAll validates every field and updates feedback for each of them.
func (c *Controller) ValidateAll() validation.Report {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.validateAll()
}

// Submit validates the form and, when valid, posts it exactly once. Invalid
// forms and failed submissions are reported through the Outcome; the error
// is reserved for a nil or finished context and the submit guard.
func (c *Controller) Submit(ctx context.Context) (Outcome, error) {
	if ctx == nil {
		return Outcome{}, errContextRequired
	}
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	c.mu.Lock()
	if c.guard && c.inflight > 0 {
		c.mu.Unlock()
		return Outcome{}, ErrSubmitInFlight
	}

	c.setPhase(PhaseValidating)
	report := c.validateAll()
	if !report.Valid {
		c.settle()
		c.mu.Unlock()
		c.logger.Debug("form invalid", "form", c.form.ID, "issues", len(report.Issues))
		return Outcome{Result: ResultInvalid, Report: report}, nil
	}

	payload := c.form.Payload()
	c.inflight++
	c.setPhase(PhaseSubmitting)
	c.presenter.SetLoading(true)
	c.mu.Unlock()

	resp, err := c.submitter.Submit(ctx, payload)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--

	outcome := Outcome{
		Report:   report,
		Payload:  payload,
		Response: resp,
	}
	if err == nil {
		err = resp.Err()
	}
	if err != nil {
		outcome.Result = ResultFailed
		outcome.Err = err
		c.logger.Error("submission error", "form", c.form.ID, "err", err)
		c.showBanner(Banner{Kind: BannerFailure, Message: MessageSubmitFailed})
	} else {
		outcome.Result = ResultSucceeded
		c.showBanner(Banner{Kind: BannerSuccess, Message: MessageSubmitted})
		c.form.Reset()
		if resetter, ok := c.presenter.(FormResetter); ok {
			resetter.ResetForm(c.form.Snapshot())
		}
		c.logger.Info("form submitted", "form", c.form.ID)
	}
	c.presenter.SetLoading(false)
	c.settle()
	return outcome, nil
}

func (c *Controller) setPhase(phase Phase) {
	if c.phase == phase {
		return
	}
	c.phase = phase
	if c.onPhase != nil {
		c.onPhase(phase)
	}
}

// settle returns to Submitting while other submissions are in flight and to
// Idle otherwise.
func (c *Controller) settle() {
	if c.inflight > 0 {
		c.setPhase(PhaseSubmitting)
		return
	}
	c.setPhase(PhaseIdle)
}

func (c *Controller) textField(name string) (*model.Field, error) {
	field, err := c.form.Field(name)
	if err != nil {
		return nil, err
	}
	if !field.Type.TextLike() {
		return nil, fmt.Errorf("%w: %q is a %s field", model.ErrFieldType, name, field.Type)
	}
	return field, nil
}

func (c *Controller) validateAll() validation.Report {
	report := validation.NewReport()
	for _, field := range c.form.Fields() {
		report.Add(*field, c.validateField(field))
	}
	return report
}

// validateField evaluates field and mirrors the result to the presenter.
// Text-like fields are cleared before re-evaluation.
func (c *Controller) validateField(field *model.Field) validation.Result {
	if field.Type.TextLike() {
		c.presenter.ClearFieldError(*field)
	}
	result := c.validator.Field(c.form, *field)
	switch {
	case !result.Valid:
		c.presenter.SetFieldError(*field, result.Message)
	case field.Type.Checkable():
		c.presenter.ClearFieldError(*field)
	}
	return result
}

// showBanner reveals banner and schedules its hide. A newer banner supersedes
// the pending hide of an older one.
func (c *Controller) showBanner(banner Banner) {
	if c.bannerTimer != nil {
		c.bannerTimer.Stop()
	}
	c.bannerSeq++
	seq := c.bannerSeq
	c.presenter.ShowBanner(banner)
	c.bannerTimer = c.clock.AfterFunc(c.bannerDuration, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if seq != c.bannerSeq {
			return
		}
		c.bannerTimer = nil
		c.presenter.HideBanner()
	})
}
