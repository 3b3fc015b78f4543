package substitute

import (
	"errors"
	"fmt"

	"github.com/pluqqy/adaptergen/pkg/models"
)

// InvalidFieldValueError reports raw input that does not convert cleanly to
// its declared kind. Rendering still proceeds; the error is advisory.
type InvalidFieldValueError struct {
	Field string
	Kind  models.FieldKind
	Value string
}

func (e *InvalidFieldValueError) Error() string {
	return fmt.Sprintf("field %s: %q is not a valid %s", e.Field, e.Value, e.Kind)
}

// Validate checks every numeric field of schema against source and returns
// the joined InvalidFieldValueErrors, or nil
func Validate(schema *models.FieldSchema, source FieldValueSource) error {
	var errs []error
	for _, f := range schema.Fields() {
		if f.Kind != models.KindNumber {
			continue
		}
		raw := source.Text(f.Name)
		if !IsInteger(raw) {
			errs = append(errs, &InvalidFieldValueError{Field: f.Name, Kind: f.Kind, Value: raw})
		}
	}
	return errors.Join(errs...)
}

// InvalidFields unwraps the field errors from an error returned by Validate
func InvalidFields(err error) []*InvalidFieldValueError {
	if err == nil {
		return nil
	}
	var out []*InvalidFieldValueError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			var fe *InvalidFieldValueError
			if errors.As(e, &fe) {
				out = append(out, fe)
			}
		}
		return out
	}
	var fe *InvalidFieldValueError
	if errors.As(err, &fe) {
		out = append(out, fe)
	}
	return out
}
