package models

import (
	"fmt"
	"strings"
)

// FieldKind is the declared primitive type of a form field
type FieldKind string

const (
	KindBoolean FieldKind = "boolean"
	KindNumber  FieldKind = "number"
	KindString  FieldKind = "string"
)

// ParseFieldKind accepts the canonical kind names plus the short forms
// used by older schema files (bool, num, int, text)
func ParseFieldKind(s string) (FieldKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "boolean", "bool":
		return KindBoolean, nil
	case "number", "num", "int", "integer":
		return KindNumber, nil
	case "string", "text", "str":
		return KindString, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}

// Valid reports whether k is one of the known kinds
func (k FieldKind) Valid() bool {
	switch k {
	case KindBoolean, KindNumber, KindString:
		return true
	}
	return false
}

// FieldDescriptor names a field and its kind. Label, Help and Default are
// form metadata and never take part in substitution.
type FieldDescriptor struct {
	Name    string    `yaml:"name" json:"name"`
	Kind    FieldKind `yaml:"kind" json:"kind"`
	Label   string    `yaml:"label,omitempty" json:"label,omitempty"`
	Help    string    `yaml:"help,omitempty" json:"help,omitempty"`
	Default string    `yaml:"default,omitempty" json:"default,omitempty"`
}

// DisplayLabel returns the label, falling back to the field name
func (d FieldDescriptor) DisplayLabel() string {
	if d.Label != "" {
		return d.Label
	}
	return d.Name
}

// Secret reports whether the field holds a credential reference that should
// be masked when prompted or logged
func (d FieldDescriptor) Secret() bool {
	name := strings.ToLower(d.Name)
	return strings.Contains(name, "credential") || strings.Contains(name, "password")
}

// Values is raw form state keyed by field name: checked-state text for
// booleans, raw text for numbers and strings
type Values map[string]string

// Boolean interprets the raw value of name as a checked-state
func (v Values) Boolean(name string) bool {
	switch strings.ToLower(strings.TrimSpace(v[name])) {
	case "1", "true", "yes", "y", "on", "checked":
		return true
	}
	return false
}

// Text returns the raw value of name, or "" when absent
func (v Values) Text(name string) string {
	return v[name]
}

// Merge copies every entry of other into v, overwriting existing keys
func (v Values) Merge(other Values) {
	for k, val := range other {
		v[k] = val
	}
}
