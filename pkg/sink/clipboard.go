package sink

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/pluqqy/adaptergen/internal/logger"
	"github.com/pluqqy/adaptergen/pkg/substitute"
)

// Clipboard copies the current artifact to the system clipboard
type Clipboard struct {
	write func(string) error
	log   *logger.Logger
}

func NewClipboard(log *logger.Logger) *Clipboard {
	if log == nil {
		log = logger.Nop()
	}
	return &Clipboard{write: clipboard.WriteAll, log: log}
}

// WithWriter replaces the system clipboard, mainly for tests and headless
// environments
func (c *Clipboard) WithWriter(write func(string) error) *Clipboard {
	c.write = write
	return c
}

// Available reports whether a clipboard utility was found on this host
func Available() bool {
	return !clipboard.Unsupported
}

// CopyToClipboard writes the artifact text. There is no retry; a host that
// denies access is reported once and left alone.
func (c *Clipboard) CopyToClipboard(artifact *substitute.Artifact) error {
	text := artifact.String()
	if err := c.write(text); err != nil {
		c.log.Warn("clipboard write failed", "error", err)
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	c.log.Debug("artifact copied to clipboard", "bytes", len(text))
	return nil
}
