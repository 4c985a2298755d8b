// internal/game/events.go
//
// Announcement events emitted by the engine.
//
// Lucky Thirteen is audio-first: the engine never formats speech or plays
// sounds itself. Instead it emits structured events into an Announcer, and
// external collaborators (speech synthesis, the terminal transcript, the
// session stats recorder, the event log) decide what to do with them.
// Announcements are fire-and-forget; the engine never blocks on a sink.

package game

import "time"

// Event is an announcement emitted by the engine. Concrete event types carry
// the structured payload a sink needs to render a cue.
type Event interface {
	event()
}

// Announcer consumes engine announcements. Implementations must not block:
// the engine calls Announce synchronously from its command loop.
type Announcer interface {
	Announce(Event)
}

// AnnouncerFunc adapts a plain function to the Announcer interface.
type AnnouncerFunc func(Event)

// Announce calls f(e).
func (f AnnouncerFunc) Announce(e Event) { f(e) }

// NopAnnouncer discards all events. Used when no sink is configured.
type NopAnnouncer struct{}

// Announce does nothing.
func (NopAnnouncer) Announce(Event) {}

// Tee fans each announcement out to every given sink, in order. Nil sinks
// are skipped.
func Tee(sinks ...Announcer) Announcer {
	kept := make([]Announcer, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			kept = append(kept, s)
		}
	}
	return tee(kept)
}

type tee []Announcer

func (t tee) Announce(e Event) {
	for _, s := range t {
		s.Announce(e)
	}
}

// RoundStarted announces a fresh board: at program start and after each win.
type RoundStarted struct {
	RoundID string
	Size    int  // board side length
	Depth   int  // initial stack depth of every tile
	Daily   bool // true when the board was seeded from today's date
}

// CursorMoved announces the tile the cursor landed on, so the narrator can
// speak its top value ("nine"), "wild" for an empty tile, or note that it is
// already part of the selection.
type CursorMoved struct {
	Position Position
	Top      int // valid only when Empty is false
	Empty    bool
	Selected bool
}

// BoundaryHit announces a cursor move that ran into the edge of the board.
// The cursor did not move; this is feedback, not an error.
type BoundaryHit struct {
	Direction Direction
}

// SelectionSumAnnounced reports the running selection after a toggle: the
// tile that changed, whether it was added or removed, and the new sum.
type SelectionSumAnnounced struct {
	Position Position
	Added    bool // false when the toggle removed an already-selected tile
	Sum      int
	Count    int
}

// SelectionCleared announces a deselect-all. Count is how many tiles were
// dropped; zero means there was nothing to deselect.
type SelectionCleared struct {
	Count int
}

// TileTopValueChanged announces that the tile under the cursor has a new top
// value (or became empty) as a result of an evaluation it contributed to.
type TileTopValueChanged struct {
	Position Position
	Top      int // valid only when Empty is false
	Empty    bool
}

// DepthAnnounced answers the "how many numbers remain" query for a tile.
type DepthAnnounced struct {
	Position Position
	Depth    int
}

// GameWon announces that every tile on the board is empty. Emitted exactly
// once per round, immediately before the controller enters the Won state.
type GameWon struct {
	RoundID      string
	Duration     time.Duration // from round start to the clearing evaluation
	TilesCleared int           // total tiles on the board
}

func (RoundStarted) event()          {}
func (CursorMoved) event()           {}
func (BoundaryHit) event()           {}
func (SelectionSumAnnounced) event() {}
func (SelectionCleared) event()      {}
func (TileTopValueChanged) event()   {}
func (DepthAnnounced) event()        {}
func (GameWon) event()               {}

// EvaluationResult doubles as the announcement of an evaluation outcome.
func (EvaluationResult) event() {}
