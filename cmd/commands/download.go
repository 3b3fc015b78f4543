package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/adaptergen/internal/cli"
	"github.com/pluqqy/adaptergen/pkg/sink"
)

// NewDownloadCommand creates the download command
func NewDownloadCommand() *cobra.Command {
	var (
		values  valueFlags
		dataURI bool
	)

	cmd := &cobra.Command{
		Use:   "download [filename]",
		Short: "Render the template and save it as a file",
		Long: `Render the class template and save it into the export path from the
settings (default: current directory). The filename defaults to the
configured default_filename, InboundAdapter.cls.

Examples:
  # Save InboundAdapter.cls
  adaptergen download --values .adaptergen/values.yaml

  # Save under another name
  adaptergen download MyAdapter.cls

  # Print a data URI instead of writing a file
  adaptergen download --data-uri`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, out, err := renderValues(cmd, &values)
			if err != nil {
				return err
			}

			if dataURI {
				fmt.Fprintln(cmd.OutOrStdout(), sink.DataURI(out))
				return nil
			}

			filename := ctx.Settings.Output.DefaultFilename
			if len(args) == 1 {
				filename = args[0]
			}
			if err := cli.ValidateFilename(filename); err != nil {
				return err
			}

			download := ctx.Download()
			if ok, err := confirmOverwrite(download.Path(filename)); err != nil || !ok {
				return err
			}

			path, err := download.DownloadArtifact(filename, ctx.Engine().Artifact())
			if err != nil {
				return err
			}

			cli.PrintSuccess("Class saved to %s (%d bytes)", path, len(out))
			return nil
		},
	}

	values.register(cmd)
	cmd.Flags().BoolVar(&dataURI, "data-uri", false, "Print a text/plain data URI instead of writing a file")
	cmd.Flags().Bool("strict", false, "Fail when a number field is not an integer")

	return cmd
}
