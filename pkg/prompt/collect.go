package prompt

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pluqqy/adaptergen/pkg/models"
	"github.com/pluqqy/adaptergen/pkg/substitute"
)

// Collect asks for every field of schema in declaration order and returns
// the answers as raw form values. Entries in defaults prefill the prompts.
func Collect(ctx context.Context, d Driver, schema *models.FieldSchema, defaults models.Values) (models.Values, error) {
	values := make(models.Values, schema.Len())

	for _, f := range schema.Fields() {
		def, ok := defaults[f.Name]
		if !ok {
			def = f.Default
		}

		switch f.Kind {
		case models.KindBoolean:
			checked, err := d.Confirm(ctx, ConfirmConfig{
				Message: f.DisplayLabel(),
				Help:    f.Help,
				Default: models.Values{f.Name: def}.Boolean(f.Name),
			})
			if err != nil {
				return nil, err
			}
			values[f.Name] = strconv.FormatBool(checked)

		case models.KindNumber:
			text, err := d.Input(ctx, InputConfig{
				Message:   f.DisplayLabel(),
				Help:      f.Help,
				Default:   def,
				Validator: ValidateInteger,
			})
			if err != nil {
				return nil, err
			}
			values[f.Name] = text

		default:
			cfg := InputConfig{Message: f.DisplayLabel(), Help: f.Help, Default: def}
			ask := d.Input
			if f.Secret() {
				ask = d.Password
			}
			text, err := ask(ctx, cfg)
			if err != nil {
				return nil, err
			}
			values[f.Name] = text
		}
	}

	return values, nil
}

// ValidateInteger accepts only text that is entirely an integer, so the
// answer renders without a warning
func ValidateInteger(s string) error {
	if !substitute.IsInteger(s) {
		return fmt.Errorf("%q is not an integer", s)
	}
	return nil
}

// Output actions offered after rendering
const (
	ActionCopy     = "Copy to clipboard"
	ActionDownload = "Download file"
	ActionPrint    = "Print to terminal"
	ActionNone     = "Done"
)

// ChooseAction asks what to do with the rendered artifact
func ChooseAction(ctx context.Context, d Driver) (string, error) {
	return d.Select(ctx, SelectConfig{
		Message: "What do you want to do with the generated class?",
		Options: []string{ActionCopy, ActionDownload, ActionPrint, ActionNone},
		Default: ActionDownload,
	})
}
