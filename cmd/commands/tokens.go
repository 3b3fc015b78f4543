package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/adaptergen/internal/cli"
	"github.com/pluqqy/adaptergen/pkg/substitute"
)

// TokenReport describes one placeholder found in the template
type TokenReport struct {
	Token    string `json:"token" yaml:"token"`
	Field    string `json:"field" yaml:"field"`
	Kind     string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Resolved bool   `json:"resolved" yaml:"resolved"`
}

// NewTokensCommand creates the tokens command
func NewTokensCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "List the placeholders of the template",
		Long: `List every +#Field#+ placeholder of the active template and whether the
schema declares a field for it. Unresolved placeholders are left unchanged
in rendered output.

Examples:
  adaptergen tokens
  adaptergen tokens --template MyAdapter.cls --schema my-schema.yaml -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := outputFormat(cmd)
			if err := cli.ValidateOutputFormat(format); err != nil {
				return err
			}

			ctx, err := newCommandContext(cmd)
			if err != nil {
				return err
			}

			var reports []TokenReport
			for _, name := range substitute.Tokens(ctx.Template) {
				r := TokenReport{Token: substitute.Token(name), Field: name}
				if kind, ok := ctx.Schema.Kind(name); ok {
					r.Kind = string(kind)
					r.Resolved = true
				}
				reports = append(reports, r)
			}

			if format != string(cli.FormatText) {
				return cli.OutputResults(cmd.OutOrStdout(), format, reports)
			}

			table := cli.NewTableFormatter(cmd.OutOrStdout(),
				cli.Column{Title: "TOKEN"},
				cli.Column{Title: "KIND"},
				cli.Column{Title: "STATUS"},
			)
			table.Header()
			unresolved := 0
			for _, r := range reports {
				status := "ok"
				if !r.Resolved {
					status = "unresolved"
					unresolved++
				}
				table.Row(r.Token, r.Kind, status)
			}
			table.Flush()

			fmt.Fprintf(cmd.OutOrStdout(), "\n%d placeholder(s), %d unresolved\n", len(reports), unresolved)
			if unused := substitute.Unused(ctx.Schema, ctx.Template); len(unused) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Fields without a placeholder: %v\n", unused)
			}
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}
