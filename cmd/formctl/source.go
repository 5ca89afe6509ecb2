package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formctl/pkg/definition"
	"github.com/goliatone/go-formctl/pkg/htmlform"
	"github.com/goliatone/go-formctl/pkg/model"
)

// formSource selects where the field collection comes from.
type formSource struct {
	page       string
	definition string
	openapi    string
	operation  string
}

func (s *formSource) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&s.page, "page", "", "HTML page (file or URL) holding the form")
	flags.StringVar(&s.definition, "definition", "", "YAML form definition (file or URL)")
	flags.StringVar(&s.openapi, "openapi", "", "OpenAPI document (file or URL)")
	flags.StringVar(&s.operation, "operation", "", "operation id whose request body describes the form")
	cmd.MarkFlagsMutuallyExclusive("page", "definition", "openapi")
	cmd.MarkFlagsOneRequired("page", "definition", "openapi")
}

// loadForm returns the form and the endpoint declared by its source, if any.
func (a *app) loadForm(ctx context.Context, src formSource) (*model.Form, string, error) {
	location := src.page
	if location == "" {
		location = src.definition
	}
	if location == "" {
		location = src.openapi
	}
	source, err := definition.ParseSource(location)
	if err != nil {
		return nil, "", err
	}
	raw, err := definition.NewFetcher().Fetch(ctx, source)
	if err != nil {
		return nil, "", err
	}

	switch {
	case src.page != "":
		form, err := htmlform.Parse(bytes.NewReader(raw), a.cfg.FormID)
		return form, "", err
	case src.definition != "":
		doc, err := definition.Parse(raw)
		if err != nil {
			return nil, "", err
		}
		form, err := doc.Form()
		return form, doc.Endpoint, err
	case src.openapi != "":
		doc, err := definition.FromOpenAPI(ctx, raw, src.operation)
		if err != nil {
			return nil, "", err
		}
		form, err := doc.Form()
		return form, doc.Endpoint, err
	}
	return nil, "", errors.New("formctl: one of --page, --definition or --openapi is required")
}

// endpoint prefers the configured endpoint over one declared by the source.
func (a *app) endpoint(declared string) (string, error) {
	if a.cfg.Endpoint != "" {
		return a.cfg.Endpoint, nil
	}
	cfg := *a.cfg
	cfg.Endpoint = declared
	if err := cfg.RequireEndpoint(); err != nil {
		return "", fmt.Errorf("%w (set --endpoint or FORMCTL_ENDPOINT)", err)
	}
	return declared, nil
}
