// internal/game/tile.go
//
// Tile: one cell of the board, holding an ordered stack of numbers.
// The stack is stored bottom-to-top; only the top value is ever read or
// mutated directly. A tile is never destroyed, only emptied; a fully
// emptied tile is "wild" and triggers terminal evaluation when selected.

package game

import "errors"

// ErrEmptyStack reports a pop or replace on an already-empty tile. Callers
// that respect Top/IsEmpty never see it; reaching it is a contract violation.
var ErrEmptyStack = errors.New("tile stack is empty")

// Tile is one cell of the board. The board keys tiles by position; the tile
// itself holds only its stack.
type Tile struct {
	stack []int // bottom-to-top; the last element is the next value in play
}

// Top returns the top value and true, or zero and false for an empty tile.
func (t *Tile) Top() (int, bool) {
	if len(t.stack) == 0 {
		return 0, false
	}
	return t.stack[len(t.stack)-1], true
}

// Depth returns how many numbers remain on the tile.
func (t *Tile) Depth() int { return len(t.stack) }

// IsEmpty reports whether the tile has been fully cleared.
func (t *Tile) IsEmpty() bool { return len(t.stack) == 0 }

// Push appends a new top value: wrong-guess penalties land here.
func (t *Tile) Push(v int) {
	t.stack = append(t.stack, v)
}

// PopTop removes the top value after a successful evaluation.
func (t *Tile) PopTop() error {
	if len(t.stack) == 0 {
		return ErrEmptyStack
	}
	t.stack = t.stack[:len(t.stack)-1]
	return nil
}

// ReplaceTop swaps the top value for v without changing the depth. This is
// the wild re-roll: it replaces rather than appends.
func (t *Tile) ReplaceTop(v int) error {
	if len(t.stack) == 0 {
		return ErrEmptyStack
	}
	t.stack[len(t.stack)-1] = v
	return nil
}
