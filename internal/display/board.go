// Package display holds the named text slots the clock widget writes into.
// A slot is the terminal stand-in for one labeled region of the original
// wallpaper surface: writers overwrite slot contents wholesale, there is no
// diffing and no history.
package display

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNoSlot is returned by Set and Get for names that were never registered.
var ErrNoSlot = errors.New("display: no such slot")

// Board is a registry of named text slots. It is safe for concurrent use:
// the render loop writes from its own goroutine while the UI reads.
type Board struct {
	mu    sync.Mutex
	slots map[string]string
	watch chan struct{}
}

// NewBoard creates a board with the given slots registered empty.
func NewBoard(names ...string) *Board {
	b := &Board{
		slots: make(map[string]string, len(names)),
		watch: make(chan struct{}, 1),
	}
	for _, name := range names {
		b.slots[name] = ""
	}
	return b
}

// Register adds an empty slot. Registering an existing slot keeps its
// current text.
func (b *Board) Register(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.slots[name]; !ok {
		b.slots[name] = ""
	}
}

// Set overwrites the text of a registered slot and signals watchers.
// Unknown names return ErrNoSlot so the caller can decide whether a missing
// target is fatal.
func (b *Board) Set(name, text string) error {
	b.mu.Lock()
	if _, ok := b.slots[name]; !ok {
		b.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrNoSlot, name)
	}
	b.slots[name] = text
	b.mu.Unlock()

	b.notify()
	return nil
}

// Get returns the current text of a slot.
func (b *Board) Get(name string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	text, ok := b.slots[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNoSlot, name)
	}
	return text, nil
}

// Snapshot returns a copy of all slot contents.
func (b *Board) Snapshot() map[string]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[string]string, len(b.slots))
	for name, text := range b.slots {
		out[name] = text
	}
	return out
}

// Watch returns a channel that receives a signal after writes. The channel
// has a one-slot buffer, so bursts of writes coalesce into a single signal;
// watchers repaint from Snapshot rather than from the signal itself.
func (b *Board) Watch() <-chan struct{} {
	return b.watch
}

func (b *Board) notify() {
	select {
	case b.watch <- struct{}{}:
	default:
	}
}
