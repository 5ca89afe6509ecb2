package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formctl/pkg/presenter/term"
)

func newCheckCommand(a *app) *cobra.Command {
	var (
		src    formSource
		values string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate field values against the form's rules",
		Long: `Apply values from a JSON object to the form and validate every field.
Exits non-zero when any field is invalid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form, _, err := a.loadForm(cmd.Context(), src)
			if err != nil {
				return err
			}
			input, err := readValues(values)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			presenter := term.New(out)
			if asJSON {
				presenter = term.New(nil)
			}
			ctrl, err := a.controller(form, offlineSubmitter{}, presenter)
			if err != nil {
				return err
			}
			if err := applyValues(ctrl, input); err != nil {
				return err
			}

			report := ctrl.ValidateAll()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else if report.Valid {
				fmt.Fprintln(out, "all fields valid")
			} else {
				fmt.Fprintf(out, "%d invalid field(s)\n", len(report.Issues))
			}
			if !report.Valid {
				return errReported
			}
			return nil
		},
	}
	src.register(cmd)
	cmd.Flags().StringVar(&values, "values", "", "JSON file with field values")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}
