// Package memory holds the bounded conversation window supplied to the
// model as chat history.
package memory

import "github.com/metalagman/stackadvisor/internal/advisor"

// DefaultWindowSize is the number of turns remembered per session.
const DefaultWindowSize = 5

// Window is a fixed-capacity FIFO of conversation turns. Invariant:
// length never exceeds the capacity; order is chronological, oldest
// first, and is exactly the order exposed to the model.
type Window struct {
	capacity int
	turns    []advisor.Turn
}

// NewWindow creates a window with the given capacity. Non-positive
// capacities fall back to DefaultWindowSize.
func NewWindow(capacity int) *Window {
	if capacity <= 0 {
		capacity = DefaultWindowSize
	}
	return &Window{
		capacity: capacity,
		turns:    make([]advisor.Turn, 0, capacity),
	}
}

// Append records a turn, evicting the oldest when over capacity.
func (w *Window) Append(turn advisor.Turn) {
	if len(w.turns) == w.capacity {
		copy(w.turns, w.turns[1:])
		w.turns = w.turns[:w.capacity-1]
	}
	w.turns = append(w.turns, turn)
}

// Turns returns a copy of the window, oldest first.
func (w *Window) Turns() []advisor.Turn {
	out := make([]advisor.Turn, len(w.turns))
	copy(out, w.turns)
	return out
}

// Len reports the number of remembered turns.
func (w *Window) Len() int {
	return len(w.turns)
}

// Capacity reports the configured window size.
func (w *Window) Capacity() int {
	return w.capacity
}

// Clear empties the window. Project details are untouched; they are not
// owned here.
func (w *Window) Clear() {
	w.turns = w.turns[:0]
}
