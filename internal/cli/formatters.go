package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// Column is a table column. Cells longer than MaxWidth are truncated; zero
// means no limit.
type Column struct {
	Title    string
	MaxWidth int
}

// TableFormatter writes aligned columns with an underlined header
type TableFormatter struct {
	writer  *tabwriter.Writer
	columns []Column
}

func NewTableFormatter(w io.Writer, columns ...Column) *TableFormatter {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	return &TableFormatter{writer: tw, columns: columns}
}

// Header writes the column titles, each underlined to its own width
func (t *TableFormatter) Header() {
	titles := make([]string, len(t.columns))
	rules := make([]string, len(t.columns))
	for i, c := range t.columns {
		titles[i] = c.Title
		rules[i] = strings.Repeat("-", utf8.RuneCountInString(c.Title))
	}
	fmt.Fprintln(t.writer, strings.Join(titles, "\t"))
	fmt.Fprintln(t.writer, strings.Join(rules, "\t"))
}

// Row writes one row. Tabs and newlines inside a cell would break the
// alignment and are flattened to spaces.
func (t *TableFormatter) Row(values ...string) {
	cells := make([]string, len(values))
	for i, v := range values {
		v = strings.NewReplacer("\t", " ", "\n", " ").Replace(v)
		if i < len(t.columns) && t.columns[i].MaxWidth > 0 {
			v = TruncateString(v, t.columns[i].MaxWidth)
		}
		cells[i] = v
	}
	fmt.Fprintln(t.writer, strings.Join(cells, "\t"))
}

func (t *TableFormatter) Flush() {
	t.writer.Flush()
}

// OutputResults writes data as JSON or YAML. Text output is laid out by each
// command, so FormatText is only accepted for values that print themselves.
func OutputResults(w io.Writer, format string, data interface{}) error {
	switch OutputFormat(format) {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)

	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(data); err != nil {
			return err
		}
		return encoder.Close()

	case FormatText:
		s, ok := data.(fmt.Stringer)
		if !ok {
			return fmt.Errorf("no text layout for %T", data)
		}
		_, err := fmt.Fprintln(w, s.String())
		return err

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// TruncateString shortens s to at most maxLen characters, marking the cut
// with "..."
func TruncateString(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// Preview returns the first non-blank line of content for a status message,
// with " ..." when more follows
func Preview(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if i < len(lines)-1 && strings.TrimSpace(strings.Join(lines[i+1:], "")) != "" {
			line += " ..."
		}
		return TruncateString(line, 80)
	}
	return ""
}
