package console

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Terminal is an interactive full-screen console backed by tcell:
// a scrolling output pane above a single input line. Submitted input
// lines are delivered on the Lines channel so the owner can evaluate
// them on its own goroutine.
type Terminal struct {
	mu sync.Mutex

	screen tcell.Screen

	lines []string // completed output lines
	cur   string   // line under construction
	max   int      // retained output lines

	input     []rune
	submitted chan string
	done      chan struct{}

	closeOnce sync.Once
}

// NewTerminal creates a terminal console. Call Init before use and
// Fini when done.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newTerminal(screen), nil
}

func newTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen:    screen,
		max:       500,
		submitted: make(chan string, 8),
		done:      make(chan struct{}),
	}
}

// Ensure Terminal implements Console.
var _ Console = (*Terminal)(nil)

// Init initializes the underlying screen.
func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.redraw()
	return nil
}

// Fini restores the terminal. Safe to call more than once.
func (t *Terminal) Fini() {
	t.closeOnce.Do(func() {
		close(t.done)
		t.screen.Fini()
	})
}

// Lines returns the channel of submitted input lines. The channel is
// never closed; the owner should stop reading after Fini.
func (t *Terminal) Lines() <-chan string {
	return t.submitted
}

// Write appends text to the current output line.
func (t *Terminal) Write(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			t.cur += text
			break
		}
		t.pushLine(t.cur + text[:i])
		t.cur = ""
		text = text[i+1:]
	}
	t.redraw()
}

// WriteNewline terminates the current output line.
func (t *Terminal) WriteNewline() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.pushLine(t.cur)
	t.cur = ""
	t.redraw()
}

func (t *Terminal) pushLine(line string) {
	t.lines = append(t.lines, line)
	if len(t.lines) > t.max {
		t.lines = t.lines[len(t.lines)-t.max:]
	}
}

// Run processes keyboard input until the user quits (Ctrl+C or Esc)
// or Fini is called. It should run on its own goroutine; submitted
// lines arrive on Lines.
func (t *Terminal) Run() {
	for {
		select {
		case <-t.done:
			return
		default:
		}

		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			t.mu.Lock()
			t.screen.Sync()
			t.redraw()
			t.mu.Unlock()
		case *tcell.EventKey:
			if t.handleKey(ev) {
				return
			}
		case nil:
			// Screen finalized.
			return
		}
	}
}

// handleKey processes one key event. Returns true when the user quits.
func (t *Terminal) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyEnter:
		t.mu.Lock()
		line := string(t.input)
		t.input = t.input[:0]
		t.pushLine("> " + line)
		t.redraw()
		t.mu.Unlock()

		// The send must not hold the mutex: the consumer reacts to
		// submitted lines by calling Write, which needs it.
		select {
		case t.submitted <- line:
		case <-t.done:
			return true
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		t.mu.Lock()
		if len(t.input) > 0 {
			t.input = t.input[:len(t.input)-1]
		}
		t.redraw()
		t.mu.Unlock()
	case tcell.KeyRune:
		t.mu.Lock()
		t.input = append(t.input, ev.Rune())
		t.redraw()
		t.mu.Unlock()
	}
	return false
}

// redraw repaints the output pane and input line.
// Caller must hold t.mu.
func (t *Terminal) redraw() {
	width, height := t.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}
	t.screen.Clear()

	// Output pane: last height-1 lines, including the in-progress line.
	visible := make([]string, 0, len(t.lines)+1)
	visible = append(visible, t.lines...)
	if t.cur != "" {
		visible = append(visible, t.cur)
	}
	rows := height - 1
	if len(visible) > rows {
		visible = visible[len(visible)-rows:]
	}
	for y, line := range visible {
		t.drawText(0, y, line, width, tcell.StyleDefault)
	}

	// Input line.
	prompt := "> " + string(t.input)
	t.drawText(0, height-1, prompt, width, tcell.StyleDefault.Bold(true))
	t.screen.ShowCursor(len([]rune(prompt)), height-1)

	t.screen.Show()
}

func (t *Terminal) drawText(x, y int, text string, width int, style tcell.Style) {
	col := x
	for _, r := range text {
		if col >= width {
			break
		}
		t.screen.SetContent(col, y, r, nil, style)
		col++
	}
}
