package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/adaptergen/internal/cli"
	"github.com/pluqqy/adaptergen/pkg/files"
)

// NewRenderCommand creates the render command
func NewRenderCommand() *cobra.Command {
	var (
		values    valueFlags
		toFile    string
		clipboard bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the template with the given field values",
		Long: `Render the class template by replacing every +#Field#+ placeholder
with the value of the matching field.

Values come from the field defaults, then the --values file, then --set
assignments. Booleans render as 1/0, numbers as integers, strings verbatim.

Examples:
  # Render with defaults to stdout
  adaptergen render

  # Render from a values file and override one field
  adaptergen render --values .adaptergen/values.yaml --set GatewayHost=sapgw01

  # Write the result to a file
  adaptergen render -f values.yaml --file InboundAdapter.cls

  # Fail instead of rendering NaN for non-integer numbers
  adaptergen render --set ConnectionCount=two --strict`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, out, err := renderValues(cmd, &values)
			if err != nil {
				// strict mode still shows what was rendered on stdout
				if ctx != nil && toFile == "" && !clipboard {
					fmt.Fprint(cmd.OutOrStdout(), out)
				}
				return err
			}

			switch {
			case toFile != "":
				if err := files.WriteFile(toFile, out); err != nil {
					return err
				}
				cli.PrintSuccess("Rendered %s (%d bytes)", toFile, len(out))
			case clipboard:
				if err := ctx.Clipboard().CopyToClipboard(ctx.Engine().Artifact()); err != nil {
					return err
				}
				cli.PrintSuccess("Rendered class copied to clipboard")
			default:
				fmt.Fprint(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}

	values.register(cmd)
	cmd.Flags().StringVar(&toFile, "file", "", "Write to file instead of stdout")
	cmd.Flags().BoolVar(&clipboard, "clipboard", false, "Copy to the clipboard instead of stdout")
	cmd.Flags().Bool("strict", false, "Fail when a number field is not an integer")

	return cmd
}
