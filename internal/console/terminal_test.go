package console

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func newTestTerminal(t *testing.T) *Terminal {
	t.Helper()

	term := newTerminal(tcell.NewSimulationScreen("UTF-8"))
	if err := term.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(term.Fini)
	return term
}

func keyEnter() *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
}

func TestTerminalSubmitLine(t *testing.T) {
	term := newTestTerminal(t)

	for _, r := range "print(1)" {
		term.handleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
	term.handleKey(keyEnter())

	select {
	case got := <-term.Lines():
		if got != "print(1)" {
			t.Errorf("submitted line = %q, want %q", got, "print(1)")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for submitted line")
	}
}

func TestTerminalBackspace(t *testing.T) {
	term := newTestTerminal(t)

	for _, r := range "abc" {
		term.handleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
	term.handleKey(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))
	term.handleKey(keyEnter())

	select {
	case got := <-term.Lines():
		if got != "ab" {
			t.Errorf("submitted line = %q, want %q", got, "ab")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for submitted line")
	}
}

func TestTerminalQuitKeys(t *testing.T) {
	term := newTestTerminal(t)

	if !term.handleKey(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)) {
		t.Error("Ctrl+C did not quit")
	}
	if !term.handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Escape did not quit")
	}
}

// The consumer of Lines reacts to submitted input by writing output
// back to the terminal. Write must therefore stay callable while a
// submit is blocked on a full channel, or the two sides deadlock.
func TestTerminalWriteWhileSubmitPending(t *testing.T) {
	term := newTestTerminal(t)

	for i := 0; i < cap(term.submitted); i++ {
		term.handleKey(keyEnter())
	}

	pending := make(chan struct{})
	go func() {
		term.handleKey(keyEnter())
		close(pending)
	}()

	wrote := make(chan struct{})
	go func() {
		term.Write("output while input is queued")
		term.WriteNewline()
		close(wrote)
	}()

	select {
	case <-wrote:
	case <-time.After(2 * time.Second):
		t.Fatal("Write blocked while a submitted line was pending")
	}

	<-term.Lines()
	select {
	case <-pending:
	case <-time.After(2 * time.Second):
		t.Fatal("pending submit never completed after a drain")
	}
}
