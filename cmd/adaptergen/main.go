package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pluqqy/adaptergen/cmd/commands"
	"github.com/pluqqy/adaptergen/internal/cli"
	"github.com/pluqqy/adaptergen/internal/logger"
	"github.com/pluqqy/adaptergen/pkg/files"
	"github.com/pluqqy/adaptergen/pkg/substitute"
	"github.com/pluqqy/adaptergen/pkg/templates"
	"github.com/pluqqy/adaptergen/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	quiet      bool
	noColor    bool
	yes        bool
	valuesFile string
)

var rootCmd = &cobra.Command{
	Use:   "adaptergen",
	Short: "Generate a configured SAP InboundAdapter class",
	Long: `adaptergen fills in the configurable properties of the InterSystems SAP
InboundAdapter class template and exports the generated class to the
clipboard or a file.

Run without arguments for the interactive form, or use the render,
clipboard, download and prompt commands from scripts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(quiet, noColor, yes)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := files.ReadSettingsOrDefault()

		templatePath, _ := cmd.Flags().GetString("template")
		schemaPath, _ := cmd.Flags().GetString("schema")
		logLevel, _ := cmd.Flags().GetString("log-level")

		ctx, err := cli.NewCommandContext(cli.ContextOptions{
			TemplatePath: templatePath,
			SchemaPath:   schemaPath,
			LogLevel:     logLevel,
			LogOutput:    settings.Log.File,
		})
		if err != nil {
			return err
		}
		// stderr would draw over the alternate screen
		if settings.Log.File == "" {
			ctx.Logger = logger.Nop()
		}
		defer ctx.Logger.Sync()

		path := valuesFile
		if path == "" {
			if _, err := os.Stat(files.ValuesPath()); err == nil {
				path = files.ValuesPath()
			}
		}
		defaults, err := ctx.LoadValues(path, nil)
		if err != nil {
			return err
		}

		app := tui.NewApp(tui.FormConfig{
			Engine:      ctx.Engine(),
			Defaults:    defaults,
			Clipboard:   ctx.Clipboard(),
			Download:    ctx.Download(),
			Filename:    ctx.Settings.Output.DefaultFilename,
			ShowPreview: ctx.Settings.UI.ShowPreview,
			Logger:      ctx.Logger,
		})
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to start the terminal user interface: %w", err)
		}
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize an adaptergen project",
	Long:  `Creates the .adaptergen folder with default settings and a values file pre-filled with the field defaults`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine current directory: %w", err)
		}

		cli.PrintInfo("Initializing adaptergen project in %s...", cwd)

		if err := files.InitProjectStructure(templates.InboundAdapterSchema()); err != nil {
			return fmt.Errorf("failed to initialize project structure: %w", err)
		}

		cli.PrintSuccess("Created %s with %s and %s", files.ProjectDir, files.SettingsFile, files.ValuesFile)
		cli.PrintInfo("Edit %s, then run 'adaptergen render' or 'adaptergen' for the form.", files.ValuesPath())
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of adaptergen",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "adaptergen version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress status output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable symbols and colour in status output")
	rootCmd.PersistentFlags().BoolVarP(&yes, "yes", "y", false, "Answer yes to confirmations")
	rootCmd.PersistentFlags().String("template", "", "Template file (default: built-in InboundAdapter class)")
	rootCmd.PersistentFlags().String("schema", "", "Field schema YAML (default: built-in InboundAdapter fields)")
	rootCmd.PersistentFlags().String("log-level", "", "Diagnostic log level (debug, info, warn, error)")
	rootCmd.Flags().StringVarP(&valuesFile, "values", "f", "", "YAML file with initial field values")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewRenderCommand())
	rootCmd.AddCommand(commands.NewClipboardCommand())
	rootCmd.AddCommand(commands.NewDownloadCommand())
	rootCmd.AddCommand(commands.NewFieldsCommand())
	rootCmd.AddCommand(commands.NewTokensCommand())
	rootCmd.AddCommand(commands.NewPromptCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("%v", err)
		var fieldErr *substitute.InvalidFieldValueError
		if errors.As(err, &fieldErr) {
			cli.PrintInfo("Fix the value or drop --strict to render it as %s.", substitute.NotANumber)
		}
		os.Exit(1)
	}
}
