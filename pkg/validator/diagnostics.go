package validator

import (
	"sync"

	"github.com/jsonata-tools/jsonata-lint/pkg/parser"
)

// Severity classifies a diagnostic for the consumer.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "information"
)

// Diagnostic is a consumer-facing validation finding: a clamped location in
// the identified document plus the message and optional machine code and
// human-readable suggestion.
type Diagnostic struct {
	Path       string
	Location   parser.ResolvedLocation
	Message    string
	Severity   Severity
	Code       string
	Suggestion string
}

// Sink accepts diagnostics per document identity. Set fully replaces the
// previous diagnostics for that identity so stale entries never persist.
type Sink interface {
	Set(path string, diags []Diagnostic)
	Clear(path string)
}

// Collection is the standard in-memory Sink. It is an explicit handle passed
// to callers rather than ambient state, and is safe for concurrent use.
type Collection struct {
	mu     sync.RWMutex
	byPath map[string][]Diagnostic
}

// NewCollection returns an empty diagnostic collection.
func NewCollection() *Collection {
	return &Collection{byPath: make(map[string][]Diagnostic)}
}

// Set replaces all diagnostics recorded for path.
func (c *Collection) Set(path string, diags []Diagnostic) {
	copied := make([]Diagnostic, len(diags))
	copy(copied, diags)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.byPath[path] = copied
}

// Clear removes all diagnostics recorded for path.
func (c *Collection) Clear(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.byPath, path)
}

// Get returns the diagnostics currently recorded for path.
func (c *Collection) Get(path string) []Diagnostic {
	c.mu.RLock()
	defer c.mu.RUnlock()

	diags := c.byPath[path]
	copied := make([]Diagnostic, len(diags))
	copy(copied, diags)
	return copied
}

// Paths returns the document identities that currently have diagnostics.
func (c *Collection) Paths() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	paths := make([]string, 0, len(c.byPath))
	for path := range c.byPath {
		paths = append(paths, path)
	}
	return paths
}

// Dispose drops all recorded diagnostics.
func (c *Collection) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byPath = make(map[string][]Diagnostic)
}
