// Package console provides the engine's debug console output surface.
package console

import (
	"io"
	"sync"
)

// Console receives text output from the engine and from scripts.
type Console interface {
	// Write appends text to the current console line.
	Write(text string)

	// WriteNewline terminates the current console line.
	WriteNewline()
}

// Writer is a Console that appends to an io.Writer. It is used for
// plain-stdout mode and for capturing output in tests.
//
// Writer is safe for concurrent use.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriter creates a Console writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Ensure Writer implements Console.
var _ Console = (*Writer)(nil)

// Write appends text to the current line.
func (c *Writer) Write(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = c.w.Write([]byte(text))
}

// WriteNewline terminates the current line.
func (c *Writer) WriteNewline() {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = c.w.Write([]byte("\n"))
}
