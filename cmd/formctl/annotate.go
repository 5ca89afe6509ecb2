package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formctl/pkg/controller"
	"github.com/goliatone/go-formctl/pkg/definition"
	"github.com/goliatone/go-formctl/pkg/htmlform"
	"github.com/goliatone/go-formctl/pkg/presenter/dom"
)

func newAnnotateCommand(a *app) *cobra.Command {
	var (
		page     string
		values   string
		output   string
		doSubmit bool
	)
	cmd := &cobra.Command{
		Use:   "annotate",
		Short: "Run values through a page's form and print the page with feedback applied",
		Long: `Load an HTML page, apply values to its form, validate (or submit with
--submit) and print the page with error messages, banner and spinner state
written into the markup.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			source, err := definition.ParseSource(page)
			if err != nil {
				return err
			}
			raw, err := definition.NewFetcher().Fetch(ctx, source)
			if err != nil {
				return err
			}
			presenter, err := dom.Parse(bytes.NewReader(raw), a.cfg.FormID)
			if err != nil {
				return err
			}
			if err := presenter.EnsureChrome(); err != nil {
				return err
			}
			form, err := htmlform.FromDocument(presenter.Document(), a.cfg.FormID)
			if err != nil {
				return err
			}
			input, err := readValues(values)
			if err != nil {
				return err
			}

			var submitter controller.Submitter = offlineSubmitter{}
			if doSubmit {
				endpoint, err := a.endpoint("")
				if err != nil {
					return err
				}
				if submitter, err = a.submitClient(endpoint); err != nil {
					return err
				}
			}
			ctrl, err := a.controller(form, submitter, presenter)
			if err != nil {
				return err
			}
			if err := applyValues(ctrl, input); err != nil {
				return err
			}
			// Mirror the applied values into the markup before feedback lands.
			presenter.ResetForm(ctrl.Snapshot())

			if doSubmit {
				outcome, err := ctrl.Submit(ctx)
				if err != nil {
					return err
				}
				a.log.Info("submission finished", "result", outcome.Result)
			} else if report := ctrl.ValidateAll(); !report.Valid {
				a.log.Info("form invalid", "issues", len(report.Issues))
			}

			return writePage(presenter, output, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&page, "page", "", "HTML page (file or URL) holding the form")
	cmd.Flags().StringVar(&values, "values", "", "JSON file with field values")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&doSubmit, "submit", false, "submit to the endpoint instead of only validating")
	_ = cmd.MarkFlagRequired("page")
	return cmd
}

func writePage(p *dom.Presenter, path string, stdout io.Writer) error {
	if path == "" {
		_, err := p.WriteTo(stdout)
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("formctl: create %s: %w", path, err)
	}
	if _, err := p.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
