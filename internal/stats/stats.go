// internal/stats/stats.go
//
// In-memory session statistics, fed by the engine's announcement stream.
// The recorder is just another announcement sink; the engine never knows
// it is being scored.
//
// Characteristics:
//   - Tallies rounds, outcomes, cleared tiles, and the fastest win.
//   - Concurrency-safe via RWMutex (the UI reads while the engine writes).
//   - State is lost when the process exits.

package stats

import (
	"sync"
	"time"

	"github.com/chrisnorman7/lucky-thirteen/internal/game"
)

// Snapshot is a point-in-time copy of the session counters.
type Snapshot struct {
	RoundsStarted int
	RoundsWon     int
	ExactMatches  int           // selections that hit the target on the nose
	Dumps         int           // under-target selections discarded on a wild tile
	Randomized    int           // single-tile re-rolls
	Failures      int           // wrong guesses
	TilesCleared  int           // stacks emptied across the session
	BestClear     time.Duration // fastest won round; zero until the first win
}

// Recorder tallies gameplay statistics from announcements.
type Recorder struct {
	mu sync.RWMutex // guards s
	s  Snapshot
}

// NewRecorder constructs an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Announce updates the counters for e. Implements game.Announcer.
func (r *Recorder) Announce(e game.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch ev := e.(type) {
	case game.RoundStarted:
		r.s.RoundsStarted++
	case game.EvaluationResult:
		switch ev.Kind {
		case game.EvaluationSuccess:
			if ev.Exact {
				r.s.ExactMatches++
			} else {
				r.s.Dumps++
			}
			r.s.TilesCleared += ev.TilesCleared
		case game.EvaluationRandomized:
			r.s.Randomized++
		case game.EvaluationFailure:
			r.s.Failures++
		}
	case game.GameWon:
		r.s.RoundsWon++
		if r.s.BestClear == 0 || ev.Duration < r.s.BestClear {
			r.s.BestClear = ev.Duration
		}
	}
}

// Snapshot returns a copy of the current counters.
func (r *Recorder) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.s
}
