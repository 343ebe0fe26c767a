package console

import (
	"bytes"
	"testing"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	c := NewWriter(&buf)

	c.Write("hello")
	c.Write("\t")
	c.Write("world")
	c.WriteNewline()

	if got := buf.String(); got != "hello\tworld\n" {
		t.Errorf("output = %q, want %q", got, "hello\tworld\n")
	}
}

func TestWriterEmpty(t *testing.T) {
	var buf bytes.Buffer
	c := NewWriter(&buf)

	c.WriteNewline()

	if got := buf.String(); got != "\n" {
		t.Errorf("output = %q, want %q", got, "\n")
	}
}
