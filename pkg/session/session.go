// Package session walks a user through a form in the terminal. Each answer is
// fed to a controller.Controller the way browser events would be: typing
// clears a field's error, leaving it validates, and picking a radio option
// revalidates its group.
package session

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/goliatone/go-formctl/internal/logger"
	"github.com/goliatone/go-formctl/pkg/controller"
	"github.com/goliatone/go-formctl/pkg/model"
	"github.com/goliatone/go-formctl/pkg/validation"
)

// Messages printed between prompts.
const (
	MessageFixFields = "Please correct the highlighted fields."
	MessageSubmit    = "Submit the form?"
	MessageRetry     = "Try submitting again?"
)

// Session prompts for every field of a controller's form and submits it.
type Session struct {
	ctrl          *controller.Controller
	driver        PromptDriver
	logger        logger.Logger
	confirmSubmit bool
	retryPrompt   bool
}

// New builds a Session over ctrl. Without WithPromptDriver it prompts through
// survey on stdout.
func New(ctrl *controller.Controller, options ...Option) (*Session, error) {
	if ctrl == nil {
		return nil, errControllerRequired
	}
	s := &Session{
		ctrl:   ctrl,
		logger: logger.Nop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(nil)
	}
	return s, nil
}

// Run prompts for each field in document order, then submits. An invalid
// submission re-prompts only the failing fields. A failed submission is
// retried only when WithRetryPrompt is set and the user agrees.
func (s *Session) Run(ctx context.Context) (controller.Outcome, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	names := lo.Uniq(lo.Map(s.ctrl.Snapshot(), func(f model.Field, _ int) string {
		return f.Name
	}))

	for {
		if err := s.ask(ctx, names); err != nil {
			return controller.Outcome{}, err
		}
		if s.confirmSubmit {
			ok, err := s.driver.Confirm(ctx, ConfirmConfig{Message: MessageSubmit, Default: true})
			if err != nil {
				return controller.Outcome{}, err
			}
			if !ok {
				return controller.Outcome{}, ErrDeclined
			}
		}

		outcome, err := s.submit(ctx)
		if err != nil {
			return outcome, err
		}
		switch outcome.Result {
		case controller.ResultInvalid:
			if err := s.driver.Info(ctx, MessageFixFields); err != nil {
				return outcome, err
			}
			names = lo.Map(outcome.Report.Issues, func(issue validation.Issue, _ int) string {
				return issue.Field
			})
		default:
			return outcome, nil
		}
	}
}

// submit posts the form, offering a retry on failure when enabled.
func (s *Session) submit(ctx context.Context) (controller.Outcome, error) {
	for {
		outcome, err := s.ctrl.Submit(ctx)
		if err != nil || outcome.Result != controller.ResultFailed || !s.retryPrompt {
			return outcome, err
		}
		s.logger.Warn("submission failed", "error", outcome.Err)
		again, err := s.driver.Confirm(ctx, ConfirmConfig{Message: MessageRetry, Default: true})
		if err != nil {
			return outcome, err
		}
		if !again {
			return outcome, nil
		}
	}
}

func (s *Session) ask(ctx context.Context, names []string) error {
	for _, name := range names {
		fields := lo.Filter(s.ctrl.Snapshot(), func(f model.Field, _ int) bool {
			return f.Name == name
		})
		if len(fields) == 0 {
			return fmt.Errorf("session: %w: %s", model.ErrUnknownField, name)
		}
		var err error
		switch fields[0].Type {
		case model.FieldTypeRadio:
			err = s.askChoice(ctx, name, fields)
		case model.FieldTypeCheckbox:
			err = s.askCheck(ctx, fields[0])
		case model.FieldTypeSelect:
			err = s.askSelect(ctx, fields[0])
		default:
			err = s.askText(ctx, fields[0])
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// askText re-prompts until the value passes the field's rules. Textarea
// fields get a multi-line editor.
func (s *Session) askText(ctx context.Context, field model.Field) error {
	value := field.Value
	for {
		var answer string
		var err error
		if field.Type == model.FieldTypeTextarea {
			answer, err = s.driver.TextArea(ctx, TextAreaConfig{
				Message: field.DisplayLabel(),
				Default: value,
			})
		} else {
			answer, err = s.driver.Input(ctx, InputConfig{
				Message: field.DisplayLabel(),
				Default: value,
			})
		}
		if err != nil {
			return err
		}
		valid, err := s.commit(field.Name, answer)
		if err != nil || valid {
			return err
		}
		value = answer
	}
}

// askSelect offers the select's options and re-prompts until the pick passes
// the field's rules. A select without options falls back to free text.
func (s *Session) askSelect(ctx context.Context, field model.Field) error {
	if len(field.Options) == 0 {
		return s.askText(ctx, field)
	}
	current := lo.IndexOf(field.Options, field.Value)
	for {
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      field.DisplayLabel(),
			Options:      field.Options,
			DefaultIndex: current,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(field.Options) {
			return fmt.Errorf("%w: %s", ErrNoSelection, field.Name)
		}
		valid, err := s.commit(field.Name, field.Options[idx])
		if err != nil || valid {
			return err
		}
		current = idx
	}
}

// commit types value into the field and leaves it, reporting whether it
// passed.
func (s *Session) commit(name, value string) (bool, error) {
	if err := s.ctrl.Input(name, value); err != nil {
		return false, err
	}
	result, err := s.ctrl.Blur(name)
	if err != nil {
		return false, err
	}
	if !result.Valid {
		s.logger.Debug("field rejected", "field", name, "message", result.Message)
	}
	return result.Valid, nil
}

// askChoice re-prompts until the group has a checked member.
func (s *Session) askChoice(ctx context.Context, name string, members []model.Field) error {
	options := lo.Map(members, func(f model.Field, _ int) string {
		return f.DisplayLabel()
	})
	_, current, _ := lo.FindIndexOf(members, func(f model.Field) bool {
		return f.Checked
	})
	for {
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      name,
			Options:      options,
			DefaultIndex: current,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(members) {
			return fmt.Errorf("%w: %s", ErrNoSelection, name)
		}
		result, err := s.ctrl.Choose(name, members[idx].Value)
		if err != nil {
			return err
		}
		if result.Valid {
			return nil
		}
		current = idx
	}
}

func (s *Session) askCheck(ctx context.Context, field model.Field) error {
	checked, err := s.driver.Confirm(ctx, ConfirmConfig{
		Message: field.DisplayLabel(),
		Default: field.Checked,
	})
	if err != nil {
		return err
	}
	return s.ctrl.Check(field.Name, checked)
}
