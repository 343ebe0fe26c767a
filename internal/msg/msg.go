// Package msg holds the in-game message board: short colored messages
// posted by the host or by scripts, shown in the player-facing UI.
package msg

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Color identifies the display color of a message.
type Color int

// Message colors.
const (
	ColorWhite Color = iota
	ColorRed
	ColorBlue
	ColorGold
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "white"
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorGold:
		return "gold"
	default:
		return "white"
	}
}

// Message is a single posted message.
type Message struct {
	ID    string
	Text  string
	Color Color
	Time  time.Time
}

// Board is a bounded, in-order list of messages.
//
// Board is safe for concurrent use.
type Board struct {
	mu     sync.Mutex
	msgs   []Message
	max    int
	notify func(Message)
}

// BoardOption configures a Board.
type BoardOption func(*Board)

// WithNotify registers a callback invoked for every posted message.
// The callback runs synchronously on the posting goroutine.
func WithNotify(fn func(Message)) BoardOption {
	return func(b *Board) {
		b.notify = fn
	}
}

// NewBoard creates a board retaining at most max messages.
func NewBoard(max int, opts ...BoardOption) *Board {
	if max <= 0 {
		max = 64
	}
	b := &Board{max: max}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Post appends a message and returns it.
func (b *Board) Post(text string, color Color) Message {
	m := Message{
		ID:    uuid.New().String(),
		Text:  text,
		Color: color,
		Time:  time.Now(),
	}

	b.mu.Lock()
	b.msgs = append(b.msgs, m)
	if len(b.msgs) > b.max {
		b.msgs = b.msgs[len(b.msgs)-b.max:]
	}
	notify := b.notify
	b.mu.Unlock()

	if notify != nil {
		notify(m)
	}
	return m
}

// Messages returns a copy of the retained messages, oldest first.
func (b *Board) Messages() []Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Message, len(b.msgs))
	copy(out, b.msgs)
	return out
}

// Len returns the number of retained messages.
func (b *Board) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.msgs)
}
