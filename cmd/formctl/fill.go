package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formctl/pkg/controller"
	"github.com/goliatone/go-formctl/pkg/presenter/term"
	"github.com/goliatone/go-formctl/pkg/session"
)

func newFillCommand(a *app) *cobra.Command {
	var (
		src     formSource
		confirm bool
		retry   bool
	)
	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Fill a form interactively and submit it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			form, declared, err := a.loadForm(ctx, src)
			if err != nil {
				return err
			}
			endpoint, err := a.endpoint(declared)
			if err != nil {
				return err
			}
			client, err := a.submitClient(endpoint)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			ctrl, err := a.controller(form, client, term.New(out))
			if err != nil {
				return err
			}
			opts := []session.Option{
				session.WithPromptDriver(session.NewSurveyDriver(out)),
				session.WithLogger(a.log),
			}
			if confirm {
				opts = append(opts, session.WithConfirmSubmit())
			}
			if retry {
				opts = append(opts, session.WithRetryPrompt())
			}
			s, err := session.New(ctrl, opts...)
			if err != nil {
				return err
			}

			outcome, err := s.Run(ctx)
			switch {
			case errors.Is(err, session.ErrAborted), errors.Is(err, session.ErrDeclined):
				a.log.Info("form not submitted", "reason", err)
				return nil
			case err != nil:
				return err
			case outcome.Result != controller.ResultSucceeded:
				return errReported
			}
			return nil
		},
	}
	src.register(cmd)
	cmd.Flags().BoolVar(&confirm, "confirm", true, "ask before submitting")
	cmd.Flags().BoolVar(&retry, "retry", true, "offer to resubmit after a failure")
	return cmd
}
