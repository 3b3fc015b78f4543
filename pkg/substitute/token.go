package substitute

import (
	"strings"

	"github.com/pluqqy/adaptergen/pkg/models"
)

const (
	TokenOpen  = "+#"
	TokenClose = "#+"
)

// Token returns the placeholder for name
func Token(name string) string {
	return TokenOpen + name + TokenClose
}

// Tokens returns the distinct placeholder names in text, in order of first
// appearance
func Tokens(text string) []string {
	var names []string
	seen := make(map[string]bool)

	rest := text
	for {
		start := strings.Index(rest, TokenOpen)
		if start < 0 {
			break
		}
		rest = rest[start+len(TokenOpen):]
		end := strings.Index(rest, TokenClose)
		if end < 0 {
			break
		}
		name := rest[:end]
		// "+#a +#b#+" is one token named b, not "a +#b"
		if i := strings.LastIndex(name, TokenOpen); i >= 0 {
			name = name[i+len(TokenOpen):]
		}
		if name != "" && !strings.ContainsAny(name, " \t\r\n") && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		rest = rest[end+len(TokenClose):]
	}

	return names
}

// Unresolved returns the placeholder names in text that the schema does not
// declare. Such tokens survive rendering verbatim.
func Unresolved(schema *models.FieldSchema, text string) []string {
	var missing []string
	for _, name := range Tokens(text) {
		if _, ok := schema.Lookup(name); !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// Unused returns the declared fields whose token never appears in template
func Unused(schema *models.FieldSchema, template string) []string {
	var unused []string
	for _, name := range schema.Names() {
		if !strings.Contains(template, Token(name)) {
			unused = append(unused, name)
		}
	}
	return unused
}
