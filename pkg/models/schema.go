package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDuplicateField = errors.New("duplicate field name")
	ErrInvalidKind    = errors.New("invalid field kind")
	ErrInvalidName    = errors.New("invalid field name")
)

// FieldSchema is an ordered, read-only set of field descriptors. Declaration
// order is also the substitution order.
type FieldSchema struct {
	fields []FieldDescriptor
	index  map[string]int
}

// NewFieldSchema builds a schema, rejecting duplicate or malformed entries
func NewFieldSchema(fields ...FieldDescriptor) (*FieldSchema, error) {
	s := &FieldSchema{
		fields: make([]FieldDescriptor, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}

	for _, f := range fields {
		if err := validateName(f.Name); err != nil {
			return nil, err
		}
		if !f.Kind.Valid() {
			return nil, fmt.Errorf("field %s: %w: %q", f.Name, ErrInvalidKind, f.Kind)
		}
		if _, exists := s.index[f.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateField, f.Name)
		}
		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}

	return s, nil
}

// MustFieldSchema is NewFieldSchema for static configuration
func MustFieldSchema(fields ...FieldDescriptor) *FieldSchema {
	s, err := NewFieldSchema(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidName)
	}
	if strings.Contains(name, "+#") || strings.Contains(name, "#+") {
		return fmt.Errorf("%w: %q contains a token delimiter", ErrInvalidName, name)
	}
	return nil
}

// Kind returns the declared kind of name
func (s *FieldSchema) Kind(name string) (FieldKind, bool) {
	d, ok := s.Lookup(name)
	return d.Kind, ok
}

// Lookup returns the descriptor declared for name
func (s *FieldSchema) Lookup(name string) (FieldDescriptor, bool) {
	if s == nil {
		return FieldDescriptor{}, false
	}
	i, ok := s.index[name]
	if !ok {
		return FieldDescriptor{}, false
	}
	return s.fields[i], true
}

// Fields returns a copy of the descriptors in declaration order
func (s *FieldSchema) Fields() []FieldDescriptor {
	if s == nil {
		return nil
	}
	out := make([]FieldDescriptor, len(s.fields))
	copy(out, s.fields)
	return out
}

// Names returns the field names in declaration order
func (s *FieldSchema) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// Len returns the number of declared fields
func (s *FieldSchema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.fields)
}

// Defaults returns the declared default of every field that has one
func (s *FieldSchema) Defaults() Values {
	values := make(Values, s.Len())
	for _, f := range s.Fields() {
		if f.Default != "" {
			values[f.Name] = f.Default
		}
	}
	return values
}
