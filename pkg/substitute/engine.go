package substitute

import (
	"strings"

	"github.com/pluqqy/adaptergen/internal/logger"
	"github.com/pluqqy/adaptergen/pkg/models"
)

// Render substitutes every declared field of schema into template using the
// values currently held by source
func Render(schema *models.FieldSchema, template string, source FieldValueSource) string {
	result := template
	for _, f := range schema.Fields() {
		result = strings.ReplaceAll(result, Token(f.Name), Convert(f, source))
	}
	return result
}

// Engine binds a schema and template to the artifact slot that output
// actions read from
type Engine struct {
	schema   *models.FieldSchema
	template string
	artifact *Artifact
	log      *logger.Logger
}

type Option func(*Engine)

// WithLogger sets the diagnostic logger
func WithLogger(l *logger.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

func NewEngine(schema *models.FieldSchema, template string, opts ...Option) *Engine {
	e := &Engine{
		schema:   schema,
		template: template,
		artifact: NewArtifact(template),
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Submit renders the current values of source and replaces the artifact
func (e *Engine) Submit(source FieldValueSource) string {
	out := Render(e.schema, e.template, source)
	e.artifact.Set(out)

	e.log.Debug("template rendered", "fields", e.schema.Len(), "bytes", len(out))
	if missing := Unresolved(e.schema, out); len(missing) > 0 {
		e.log.Info("unresolved placeholders left in output", "tokens", missing)
	}
	return out
}

func (e *Engine) Artifact() *Artifact {
	return e.artifact
}

func (e *Engine) Schema() *models.FieldSchema {
	return e.schema
}

func (e *Engine) Template() string {
	return e.template
}
