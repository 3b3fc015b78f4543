package files

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pluqqy/adaptergen/pkg/models"
	"gopkg.in/yaml.v3"
)

// ReadValues reads a YAML mapping of field name to scalar. Scalars keep
// their literal text, so 007 stays "007" and yes stays "yes".
func ReadValues(path string) (models.Values, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read values %s: %w", path, err)
	}
	return ParseValues(content)
}

func ParseValues(content []byte) (models.Values, error) {
	raw := map[string]yaml.Node{}
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse values YAML: %w", err)
	}

	values := make(models.Values, len(raw))
	for name, node := range raw {
		switch {
		case node.Kind == yaml.ScalarNode && node.Tag == "!!null":
			values[name] = ""
		case node.Kind == yaml.ScalarNode:
			values[name] = node.Value
		default:
			return nil, fmt.Errorf("value for %s must be a scalar (line %d)", name, node.Line)
		}
	}

	return values, nil
}

// WriteValuesTemplate writes a values file listing every field of schema in
// declaration order with its default, using the help text as a comment
func WriteValuesTemplate(path string, schema *models.FieldSchema) error {
	doc := &yaml.Node{Kind: yaml.MappingNode}

	for _, f := range schema.Fields() {
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: f.Name, HeadComment: f.Help}
		val := &yaml.Node{Kind: yaml.ScalarNode, Value: f.Default}
		switch f.Kind {
		case models.KindBoolean:
			val.Tag = "!!bool"
			if val.Value == "" {
				val.Value = "false"
			}
		case models.KindNumber:
			val.Tag = "!!int"
			if val.Value == "" {
				val.Tag = "!!str"
			}
		default:
			val.Tag = "!!str"
		}
		val.LineComment = string(f.Kind)
		doc.Content = append(doc.Content, key, val)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode values: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode values: %w", err)
	}

	return WriteFile(path, buf.String())
}

type schemaFile struct {
	Fields []schemaEntry `yaml:"fields"`
}

type schemaEntry struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`
	Label   string `yaml:"label"`
	Help    string `yaml:"help"`
	Default string `yaml:"default"`
}

// ReadSchema reads a field schema from YAML, either a top-level list of
// fields or a mapping with a fields key
func ReadSchema(path string) (*models.FieldSchema, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema %s: %w", path, err)
	}
	return ParseSchema(content)
}

func ParseSchema(content []byte) (*models.FieldSchema, error) {
	var entries []schemaEntry

	var list []schemaEntry
	if err := yaml.Unmarshal(content, &list); err == nil {
		entries = list
	} else {
		var doc schemaFile
		if err := yaml.Unmarshal(content, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
		}
		entries = doc.Fields
	}

	fields := make([]models.FieldDescriptor, 0, len(entries))
	for _, e := range entries {
		kind, err := models.ParseFieldKind(e.Kind)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", e.Name, err)
		}
		fields = append(fields, models.FieldDescriptor{
			Name:    e.Name,
			Kind:    kind,
			Label:   e.Label,
			Help:    e.Help,
			Default: e.Default,
		})
	}

	return models.NewFieldSchema(fields...)
}
