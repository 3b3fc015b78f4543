package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pluqqy/adaptergen/internal/cli"
)

// valueFlags are the form-value inputs shared by the rendering commands
type valueFlags struct {
	file        string
	assignments []string
}

func (v *valueFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&v.file, "values", "f", "", "YAML file with field values")
	cmd.Flags().StringArrayVarP(&v.assignments, "set", "s", nil, "Set a field value (Name=value, repeatable)")
}

// newCommandContext builds the command context from the root persistent
// flags. Commands run on their own in tests, so missing flags read as empty.
func newCommandContext(cmd *cobra.Command) (*cli.CommandContext, error) {
	templatePath, _ := cmd.Flags().GetString("template")
	schemaPath, _ := cmd.Flags().GetString("schema")
	logLevel, _ := cmd.Flags().GetString("log-level")

	return cli.NewCommandContext(cli.ContextOptions{
		TemplatePath: templatePath,
		SchemaPath:   schemaPath,
		LogLevel:     logLevel,
	})
}

// renderValues loads the form values and submits them to the engine. A
// strict-mode error comes back together with the rendered output.
func renderValues(cmd *cobra.Command, v *valueFlags) (*cli.CommandContext, string, error) {
	ctx, err := newCommandContext(cmd)
	if err != nil {
		return nil, "", err
	}

	if strict, _ := cmd.Flags().GetBool("strict"); strict {
		ctx.Settings.Render.Strict = true
	}

	values, err := ctx.LoadValues(v.file, v.assignments)
	if err != nil {
		return nil, "", err
	}

	out, err := ctx.Submit(values)
	return ctx, out, err
}

// confirmOverwrite asks before a download replaces an existing file
func confirmOverwrite(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		return true, nil
	}
	ok, err := cli.Confirm(fmt.Sprintf("%s already exists. Overwrite?", path), false)
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !ok {
		cli.PrintInfo("Download cancelled")
	}
	return ok, nil
}

func outputFormat(cmd *cobra.Command) string {
	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		return string(cli.FormatText)
	}
	return format
}
