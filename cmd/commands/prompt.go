package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/adaptergen/internal/cli"
	"github.com/pluqqy/adaptergen/pkg/prompt"
)

// NewPromptCommand creates the prompt command
func NewPromptCommand() *cobra.Command {
	return newPromptCommand(prompt.NewSurveyDriver())
}

func newPromptCommand(driver prompt.Driver) *cobra.Command {
	var values valueFlags

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Answer one question per field, then copy or save the class",
		Long: `Ask for every field of the schema in order, render the class and then
offer to copy it to the clipboard, save it as a file or print it.

Values from --values and --set prefill the answers.

Examples:
  adaptergen prompt
  adaptergen prompt --values .adaptergen/values.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newCommandContext(cmd)
			if err != nil {
				return err
			}

			defaults, err := ctx.LoadValues(values.file, values.assignments)
			if err != nil {
				return err
			}

			answers, err := prompt.Collect(cmd.Context(), driver, ctx.Schema, defaults)
			if errors.Is(err, prompt.ErrAborted) {
				cli.PrintInfo("Aborted")
				return nil
			}
			if err != nil {
				return err
			}

			out, err := ctx.Submit(answers)
			if err != nil {
				return err
			}

			action, err := prompt.ChooseAction(cmd.Context(), driver)
			if errors.Is(err, prompt.ErrAborted) {
				return nil
			}
			if err != nil {
				return err
			}

			switch action {
			case prompt.ActionCopy:
				if err := ctx.Clipboard().CopyToClipboard(ctx.Engine().Artifact()); err != nil {
					return err
				}
				cli.PrintSuccess("Class copied to clipboard")
				cli.PrintInfo("Paste it into a new class in your IRIS namespace and compile it.")
			case prompt.ActionDownload:
				download := ctx.Download()
				filename := ctx.Settings.Output.DefaultFilename
				if ok, err := confirmOverwrite(download.Path(filename)); err != nil || !ok {
					return err
				}
				path, err := download.DownloadArtifact(filename, ctx.Engine().Artifact())
				if err != nil {
					return err
				}
				cli.PrintSuccess("Class saved to %s", path)
				cli.PrintInfo("Import the file into your IRIS namespace and compile it.")
			case prompt.ActionPrint:
				fmt.Fprint(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}

	values.register(cmd)

	return cmd
}
