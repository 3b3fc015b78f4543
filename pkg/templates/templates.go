package templates

import (
	"fmt"
	"os"
)

// Source yields a template asset. The engine only ever sees the loaded
// string, so embedded and on-disk templates are interchangeable.
type Source interface {
	Load() (string, error)
}

// Embedded is a template compiled into the binary
type Embedded struct {
	Name string
	Text string
}

func (e Embedded) Load() (string, error) {
	return e.Text, nil
}

// File is a template read from disk on every Load
type File struct {
	Path string
}

func (f File) Load() (string, error) {
	content, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read template %s: %w", f.Path, err)
	}
	return string(content), nil
}

// Resolve returns a file source for path, or the built-in InboundAdapter
// template when path is empty
func Resolve(path string) Source {
	if path == "" {
		return InboundAdapter()
	}
	return File{Path: path}
}
