package cli

import (
	"fmt"

	"github.com/pluqqy/adaptergen/internal/logger"
	"github.com/pluqqy/adaptergen/pkg/files"
	"github.com/pluqqy/adaptergen/pkg/models"
	"github.com/pluqqy/adaptergen/pkg/sink"
	"github.com/pluqqy/adaptergen/pkg/substitute"
	"github.com/pluqqy/adaptergen/pkg/templates"
)

// ContextOptions carries the global flags that select template and schema
type ContextOptions struct {
	TemplatePath string
	SchemaPath   string
	LogLevel     string
	LogOutput    string
}

// CommandContext holds everything a command needs to render and export
type CommandContext struct {
	Settings *models.Settings
	Schema   *models.FieldSchema
	Template string
	Logger   *logger.Logger

	engine *substitute.Engine
}

// NewCommandContext loads settings, the template asset and its schema. Flag
// paths win over settings; with neither, the built-in InboundAdapter
// template and schema are used.
func NewCommandContext(opts ContextOptions) (*CommandContext, error) {
	settings := files.ReadSettingsOrDefault()

	level := settings.Log.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	log, err := logger.New(logger.Options{Mode: settings.Log.Mode, Level: level, Output: opts.LogOutput})
	if err != nil {
		return nil, err
	}

	templatePath := firstNonEmpty(opts.TemplatePath, settings.Template.Path)
	template, err := templates.Resolve(templatePath).Load()
	if err != nil {
		return nil, err
	}

	schema := templates.InboundAdapterSchema()
	if schemaPath := firstNonEmpty(opts.SchemaPath, settings.Template.SchemaPath); schemaPath != "" {
		schema, err = files.ReadSchema(schemaPath)
		if err != nil {
			return nil, err
		}
	}

	log.Debug("command context ready", "template", templatePath, "fields", schema.Len())

	return &CommandContext{
		Settings: settings,
		Schema:   schema,
		Template: template,
		Logger:   log,
	}, nil
}

// Engine returns the substitution engine bound to this context
func (c *CommandContext) Engine() *substitute.Engine {
	if c.engine == nil {
		c.engine = substitute.NewEngine(c.Schema, c.Template, substitute.WithLogger(c.Logger))
	}
	return c.engine
}

func (c *CommandContext) Clipboard() *sink.Clipboard {
	return sink.NewClipboard(c.Logger)
}

func (c *CommandContext) Download() *sink.Download {
	return sink.NewDownload(c.Settings.Output.ExportPath, c.Logger)
}

// LoadValues builds form values from schema defaults, then an optional
// values file, then Name=value assignments, later sources winning
func (c *CommandContext) LoadValues(valuesPath string, assignments []string) (models.Values, error) {
	values := c.Schema.Defaults()

	if valuesPath != "" {
		fileValues, err := files.ReadValues(valuesPath)
		if err != nil {
			return nil, err
		}
		for name := range fileValues {
			if _, ok := c.Schema.Lookup(name); !ok {
				PrintWarning("values file sets undeclared field %s; ignored", name)
			}
		}
		values.Merge(fileValues)
	}

	set, err := ParseAssignments(c.Schema, assignments)
	if err != nil {
		return nil, err
	}
	values.Merge(set)

	c.Logger.Debug("form values loaded", "values", map[string]string(values))
	return values, nil
}

// Submit renders values and reports diagnostics. With strict rendering,
// invalid numeric input is returned as an error after the artifact has
// been produced.
func (c *CommandContext) Submit(values models.Values) (string, error) {
	out := c.Engine().Submit(values)

	if c.Settings.Render.WarnUnresolved {
		for _, name := range substitute.Unresolved(c.Schema, out) {
			PrintWarning("placeholder %s has no matching field and was left unchanged", substitute.Token(name))
		}
	}

	if err := substitute.Validate(c.Schema, values); err != nil {
		for _, fe := range substitute.InvalidFields(err) {
			rendered, _ := substitute.ParseInteger(fe.Value)
			PrintWarning("%s: %q is not an integer; rendered as %s", fe.Field, fe.Value, rendered)
		}
		if c.Settings.Render.Strict {
			return out, fmt.Errorf("invalid field values: %w", err)
		}
	}

	return out, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
