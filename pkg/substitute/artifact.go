package substitute

import "sync"

// Artifact holds the current rendered text. It is only ever replaced whole.
type Artifact struct {
	mu       sync.RWMutex
	text     string
	rendered bool
}

// NewArtifact returns a slot holding initial, typically the bare template
func NewArtifact(initial string) *Artifact {
	return &Artifact{text: initial}
}

// Set replaces the held text
func (a *Artifact) Set(text string) {
	a.mu.Lock()
	a.text = text
	a.rendered = true
	a.mu.Unlock()
}

func (a *Artifact) String() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.text
}

// Rendered reports whether Set has been called at least once
func (a *Artifact) Rendered() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.rendered
}
