package commands

import (
	"github.com/spf13/cobra"

	"github.com/pluqqy/adaptergen/internal/cli"
)

// NewFieldsCommand creates the fields command
func NewFieldsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fields",
		Short: "List the fields of the template schema",
		Long: `List every field of the active schema in substitution order, with its
kind and default value.

Examples:
  adaptergen fields
  adaptergen fields -o yaml > schema.yaml`,
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

			if format != string(cli.FormatText) {
				return cli.OutputResults(cmd.OutOrStdout(), format, ctx.Schema.Fields())
			}

			table := cli.NewTableFormatter(cmd.OutOrStdout(),
				cli.Column{Title: "FIELD"},
				cli.Column{Title: "KIND"},
				cli.Column{Title: "DEFAULT", MaxWidth: 24},
				cli.Column{Title: "LABEL", MaxWidth: 30},
			)
			table.Header()
			for _, f := range ctx.Schema.Fields() {
				table.Row(f.Name, string(f.Kind), f.Default, f.DisplayLabel())
			}
			table.Flush()
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}
