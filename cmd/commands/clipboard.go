package commands

import (
	"github.com/spf13/cobra"

	"github.com/pluqqy/adaptergen/internal/cli"
)

// NewClipboardCommand creates the clipboard command
func NewClipboardCommand() *cobra.Command {
	var values valueFlags

	cmd := &cobra.Command{
		Use:   "clipboard",
		Short: "Render the template and copy it to the clipboard",
		Long: `Render the class template and copy the result to the system clipboard,
ready to be pasted into Studio or VS Code.

Examples:
  # Copy the class rendered from a values file
  adaptergen clipboard --values .adaptergen/values.yaml

  # Copy with a single override
  adaptergen copy --set UseJSON=true`,
		Args:    cobra.NoArgs,
		Aliases: []string{"clip", "copy"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, out, err := renderValues(cmd, &values)
			if err != nil {
				return err
			}

			if err := ctx.Clipboard().CopyToClipboard(ctx.Engine().Artifact()); err != nil {
				return err
			}

			cli.PrintSuccess("Class copied to clipboard (%d bytes)", len(out))
			cli.PrintInfo("Preview: %s", cli.Preview(out))
			return nil
		},
	}

	values.register(cmd)
	cmd.Flags().Bool("strict", false, "Fail when a number field is not an integer")

	return cmd
}
