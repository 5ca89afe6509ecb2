package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newFieldsCommand(a *app) *cobra.Command {
	var (
		src    formSource
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "fields",
		Short: "List the fields discovered in a form source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form, _, err := a.loadForm(cmd.Context(), src)
			if err != nil {
				return err
			}
			fields := form.Snapshot()
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(fields)
			}
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTYPE\tREQUIRED\tLABEL\tVALUE")
			for _, field := range fields {
				fmt.Fprintf(w, "%s\t%s\t%t\t%s\t%s\n", field.Name, field.Type, field.Required, field.DisplayLabel(), field.Value)
			}
			return w.Flush()
		},
	}
	src.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print fields as JSON")
	return cmd
}
