package main

import (
	"context"
	"errors"

	"github.com/goliatone/go-formctl/pkg/controller"
	"github.com/goliatone/go-formctl/pkg/model"
	"github.com/goliatone/go-formctl/pkg/submit"
)

var errOffline = errors.New("formctl: submission disabled for this command")

// offlineSubmitter backs controllers that only validate.
type offlineSubmitter struct{}

func (offlineSubmitter) Submit(context.Context, model.Payload) (submit.Response, error) {
	return submit.Response{}, errOffline
}

func (a *app) submitClient(endpoint string) (*submit.Client, error) {
	opts := []submit.Option{
		submit.WithContentType(a.cfg.ContentType),
		submit.WithLogger(a.log),
	}
	if a.cfg.UserAgent != "" {
		opts = append(opts, submit.WithUserAgent(a.cfg.UserAgent))
	}
	return submit.New(endpoint, opts...)
}

func (a *app) controller(form *model.Form, submitter controller.Submitter, presenter controller.Presenter) (*controller.Controller, error) {
	opts := []controller.Option{
		controller.WithPresenter(presenter),
		controller.WithBannerDuration(a.cfg.BannerDuration),
		controller.WithLogger(a.log),
		controller.WithPhaseObserver(func(phase controller.Phase) {
			a.log.Debug("phase changed", "form", form.ID, "phase", phase)
		}),
	}
	if a.cfg.SubmitGuard {
		opts = append(opts, controller.WithSubmitGuard())
	}
	return controller.New(form, submitter, opts...)
}
