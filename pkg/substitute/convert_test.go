package substitute

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pluqqy/adaptergen/pkg/models"
)

func TestParseInteger(t *testing.T) {
	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{"42", "42", true},
		{"0", "0", true},
		{"-0", "0", true},
		{"007", "7", true},
		{"+15", "15", true},
		{"-15", "-15", true},
		{"  8", "8", true},
		{"\t\n9 ", "9", true},
		{"\ufeff42", "42", true},
		{"\u00a0\u20285", "5", true},
		{"\u00856", NotANumber, false},
		{"42abc", "42", true},
		{"3.9", "3", true},
		{"1e5", "1", true},
		{"123456789012345678901234567890", "123456789012345678901234567890", true},
		{"abc", NotANumber, false},
		{"", NotANumber, false},
		{"-", NotANumber, false},
		{"+-1", NotANumber, false},
		{".5", NotANumber, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseInteger(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestConvert(t *testing.T) {
	values := models.Values{
		"On":    "checked",
		"Off":   "false",
		"Num":   "0012",
		"Text":  "  spaced  ",
		"Empty": "",
	}

	tests := []struct {
		desc models.FieldDescriptor
		want string
	}{
		{models.FieldDescriptor{Name: "On", Kind: models.KindBoolean}, "1"},
		{models.FieldDescriptor{Name: "Off", Kind: models.KindBoolean}, "0"},
		{models.FieldDescriptor{Name: "Missing", Kind: models.KindBoolean}, "0"},
		{models.FieldDescriptor{Name: "Num", Kind: models.KindNumber}, "12"},
		{models.FieldDescriptor{Name: "Missing", Kind: models.KindNumber}, NotANumber},
		{models.FieldDescriptor{Name: "Text", Kind: models.KindString}, "  spaced  "},
		{models.FieldDescriptor{Name: "Empty", Kind: models.KindString}, ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.desc.Kind)+"/"+tt.desc.Name, func(t *testing.T) {
			assert.Equal(t, tt.want, Convert(tt.desc, values))
		})
	}
}

func TestIsInteger(t *testing.T) {
	assert.True(t, IsInteger("12"))
	assert.True(t, IsInteger(" -3 "))
	assert.False(t, IsInteger("12a"))
	assert.False(t, IsInteger(""))
	assert.False(t, IsInteger("+"))
	assert.True(t, IsInteger("\ufeff12\u00a0"))
	assert.False(t, IsInteger("3.9"))
}
