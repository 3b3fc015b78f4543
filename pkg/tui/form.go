package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/pluqqy/adaptergen/internal/logger"
	"github.com/pluqqy/adaptergen/pkg/models"
	"github.com/pluqqy/adaptergen/pkg/sink"
	"github.com/pluqqy/adaptergen/pkg/substitute"
	"github.com/pluqqy/adaptergen/pkg/templates"
)

// FormConfig wires the form to the engine and the output sinks
type FormConfig struct {
	Engine      *substitute.Engine
	Defaults    models.Values // prefill, usually schema defaults merged with values.yaml
	Clipboard   *sink.Clipboard
	Download    *sink.Download
	Filename    string
	ShowPreview bool
	Logger      *logger.Logger
}

// formField is one form row: a text input for numbers and strings, a
// checkbox for booleans
type formField struct {
	desc    models.FieldDescriptor
	input   textinput.Model
	checked bool
}

func (f *formField) isCheckbox() bool {
	return f.desc.Kind == models.KindBoolean
}

// FormModel is the interactive form. It is the engine's FieldValueSource:
// submitting reads the current state of every control.
type FormModel struct {
	engine    *substitute.Engine
	clipboard *sink.Clipboard
	download  *sink.Download
	filename  string
	log       *logger.Logger

	fields     []formField
	index      map[string]int
	focusIndex int
	submitted  bool

	formViewport    viewport.Model
	previewViewport viewport.Model
	showPreview     bool
	confirm         *ConfirmationModel

	width  int
	height int
}

func NewFormModel(cfg FormConfig) *FormModel {
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}
	if cfg.Clipboard == nil {
		cfg.Clipboard = sink.NewClipboard(cfg.Logger)
	}
	if cfg.Download == nil {
		cfg.Download = sink.NewDownload(".", cfg.Logger)
	}
	if cfg.Filename == "" {
		cfg.Filename = templates.InboundAdapterFilename
	}

	m := &FormModel{
		engine:          cfg.Engine,
		clipboard:       cfg.Clipboard,
		download:        cfg.Download,
		filename:        cfg.Filename,
		log:             cfg.Logger,
		index:           make(map[string]int),
		formViewport:    viewport.New(60, 20),
		previewViewport: viewport.New(60, 20),
		showPreview:     cfg.ShowPreview,
		confirm:         NewConfirmation(),
	}

	for _, desc := range cfg.Engine.Schema().Fields() {
		value, ok := cfg.Defaults[desc.Name]
		if !ok {
			value = desc.Default
		}

		field := formField{desc: desc}
		if desc.Kind == models.KindBoolean {
			field.checked = models.Values{desc.Name: value}.Boolean(desc.Name)
		} else {
			field.input = textinput.New()
			field.input.CharLimit = 0 // unlimited
			field.input.Width = 40
			field.input.Prompt = ""
			field.input.Placeholder = desc.Default
			if desc.Kind == models.KindNumber && desc.Default == "" {
				field.input.Placeholder = "integer"
			}
			if desc.Secret() {
				field.input.EchoMode = textinput.EchoPassword
				field.input.EchoCharacter = '•'
			}
			field.input.SetValue(value)
		}

		m.index[desc.Name] = len(m.fields)
		m.fields = append(m.fields, field)
	}

	m.updateFocus()
	m.updatePreviewContent()
	return m
}

func (m *FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Boolean returns the checked state of a checkbox field
func (m *FormModel) Boolean(name string) bool {
	i, ok := m.index[name]
	if !ok {
		return false
	}
	f := &m.fields[i]
	if f.isCheckbox() {
		return f.checked
	}
	return models.Values{name: f.input.Value()}.Boolean(name)
}

// Text returns the raw text of an input field
func (m *FormModel) Text(name string) string {
	i, ok := m.index[name]
	if !ok {
		return ""
	}
	f := &m.fields[i]
	if f.isCheckbox() {
		if f.checked {
			return "true"
		}
		return "false"
	}
	return f.input.Value()
}

// Values snapshots the form state
func (m *FormModel) Values() models.Values {
	values := make(models.Values, len(m.fields))
	for _, f := range m.fields {
		values[f.desc.Name] = m.Text(f.desc.Name)
	}
	return values
}

// Submitted reports whether the form has been rendered at least once
func (m *FormModel) Submitted() bool {
	return m.submitted
}

// Focused returns the name of the focused field
func (m *FormModel) Focused() string {
	if len(m.fields) == 0 {
		return ""
	}
	return m.fields[m.focusIndex].desc.Name
}

func (m *FormModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	formWidth, previewWidth := m.paneWidths()
	paneHeight := height - 9 // help box, status bar, borders and heading
	if paneHeight < 5 {
		paneHeight = 5
	}

	m.formViewport.Width = formWidth - 4
	m.formViewport.Height = paneHeight
	m.previewViewport.Width = previewWidth - 4
	m.previewViewport.Height = paneHeight

	m.updatePreviewContent()
	m.updateFormContent()
}

func (m *FormModel) paneWidths() (int, int) {
	if !m.showPreview {
		return m.width - 2, 0
	}
	formWidth := m.width / 2
	return formWidth, m.width - formWidth - 2
}

func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.confirm.Active() {
			return m, m.confirm.Update(msg)
		}

		switch msg.String() {
		case "esc":
			return m, tea.Quit

		case "ctrl+s", "enter":
			return m, m.submit()

		case "ctrl+y":
			if !m.submitted {
				return m, statusCmd("Generate the class first (^s)")
			}
			return m, m.copyArtifact()

		case "ctrl+d":
			if !m.submitted {
				return m, statusCmd("Generate the class first (^s)")
			}
			return m, m.downloadArtifact()

		case "tab", "down":
			m.focusIndex++
			if m.focusIndex >= len(m.fields) {
				m.focusIndex = 0
			}
			return m, m.updateFocus()

		case "shift+tab", "up":
			m.focusIndex--
			if m.focusIndex < 0 {
				m.focusIndex = len(m.fields) - 1
			}
			return m, m.updateFocus()

		case " ", "space":
			if f := m.focusedField(); f != nil && f.isCheckbox() {
				f.checked = !f.checked
				m.updateFormContent()
				return m, nil
			}

		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.previewViewport, cmd = m.previewViewport.Update(msg)
			return m, cmd
		}
	}

	if f := m.focusedField(); f != nil && !f.isCheckbox() {
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		cmds = append(cmds, cmd)
		m.updateFormContent()
	}

	return m, tea.Batch(cmds...)
}

func (m *FormModel) focusedField() *formField {
	if len(m.fields) == 0 {
		return nil
	}
	return &m.fields[m.focusIndex]
}

func (m *FormModel) updateFocus() tea.Cmd {
	var cmd tea.Cmd
	for i := range m.fields {
		f := &m.fields[i]
		if f.isCheckbox() {
			continue
		}
		if i == m.focusIndex {
			cmd = f.input.Focus()
		} else {
			f.input.Blur()
		}
	}
	m.updateFormContent()
	return cmd
}

// submit renders the form into the artifact. Non-integer numbers still
// render (as NaN) but are reported in the status bar.
func (m *FormModel) submit() tea.Cmd {
	m.engine.Submit(m)
	m.submitted = true
	m.updatePreviewContent()
	m.previewViewport.GotoTop()

	if err := substitute.Validate(m.engine.Schema(), m); err != nil {
		var names []string
		for _, fe := range substitute.InvalidFields(err) {
			names = append(names, fe.Field)
		}
		return statusCmd(fmt.Sprintf("⚠ Class generated; not an integer: %s", strings.Join(names, ", ")))
	}
	return statusCmd("✓ Class generated. ^y copy, ^d download")
}

func (m *FormModel) copyArtifact() tea.Cmd {
	clip := m.clipboard
	artifact := m.engine.Artifact()
	return func() tea.Msg {
		if err := clip.CopyToClipboard(artifact); err != nil {
			return StatusMsg("✗ " + err.Error())
		}
		return StatusMsg("✓ Copied. Paste it into a new class in your IRIS namespace and compile it.")
	}
}

// downloadArtifact asks before replacing an existing file
func (m *FormModel) downloadArtifact() tea.Cmd {
	path := m.download.Path(m.filename)
	if _, err := os.Stat(path); err == nil {
		m.confirm.Show(
			fmt.Sprintf("%s exists. Overwrite?", path),
			true,
			m.writeArtifact,
			func() tea.Cmd { return statusCmd("Download cancelled") },
		)
		return nil
	}
	return m.writeArtifact()
}

func (m *FormModel) writeArtifact() tea.Cmd {
	dl := m.download
	filename := m.filename
	artifact := m.engine.Artifact()
	return func() tea.Msg {
		path, err := dl.DownloadArtifact(filename, artifact)
		if err != nil {
			return StatusMsg("✗ " + err.Error())
		}
		return StatusMsg(fmt.Sprintf("✓ Saved %s. Import it into your IRIS namespace and compile it.", path))
	}
}

func (m *FormModel) updatePreviewContent() {
	text := m.engine.Artifact().String()
	if m.previewViewport.Width > 0 {
		text = wordwrap.String(text, m.previewViewport.Width)
	}
	m.previewViewport.SetContent(text)
}

func statusCmd(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg(msg)
	}
}
