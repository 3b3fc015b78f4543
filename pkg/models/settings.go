package models

// Settings represents the application configuration
type Settings struct {
	Output   OutputSettings   `yaml:"output"`
	Template TemplateSettings `yaml:"template"`
	Render   RenderSettings   `yaml:"render"`
	UI       UISettings       `yaml:"ui"`
	Log      LogSettings      `yaml:"log"`
}

// OutputSettings controls where downloaded artifacts go
type OutputSettings struct {
	DefaultFilename string `yaml:"default_filename"`
	ExportPath      string `yaml:"export_path"`
}

// TemplateSettings selects the template asset and its schema. Empty paths
// mean the embedded InboundAdapter template.
type TemplateSettings struct {
	Path       string `yaml:"path"`
	SchemaPath string `yaml:"schema_path"`
}

// RenderSettings controls substitution diagnostics
type RenderSettings struct {
	Strict         bool `yaml:"strict"`           // fail on non-integer numeric input
	WarnUnresolved bool `yaml:"warn_unresolved"`
}

// UISettings controls UI preferences
type UISettings struct {
	ShowPreview bool `yaml:"show_preview"`
}

// LogSettings controls diagnostic logging
type LogSettings struct {
	Mode  string `yaml:"mode"` // "development" or "production"
	Level string `yaml:"level"`
	File  string `yaml:"file"` // TUI log destination; empty discards
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Output: OutputSettings{
			DefaultFilename: "InboundAdapter.cls",
			ExportPath:      "./",
		},
		Template: TemplateSettings{},
		Render: RenderSettings{
			Strict:         false,
			WarnUnresolved: true,
		},
		UI: UISettings{
			ShowPreview: true,
		},
		Log: LogSettings{
			Mode:  "development",
			Level: "warn",
		},
	}
}
