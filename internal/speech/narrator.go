// internal/speech/narrator.go
//
// Turns engine announcements into short spoken phrases. The game is meant
// to be played by ear, so phrases lead with the number and stay terse; a
// screen reader user hears "9" on a tile, not a sentence about it.

package speech

import (
	"fmt"
	"time"

	"github.com/chrisnorman7/lucky-thirteen/internal/game"
)

// Phrase renders e as a spoken phrase, or "" for events that have no voice
// line.
func Phrase(e game.Event) string {
	switch ev := e.(type) {
	case game.RoundStarted:
		if ev.Daily {
			return fmt.Sprintf("Daily board. %d by %d, %d deep.", ev.Size, ev.Size, ev.Depth)
		}
		return fmt.Sprintf("New board. %d by %d, %d deep.", ev.Size, ev.Size, ev.Depth)

	case game.CursorMoved:
		if ev.Empty {
			return "Wild."
		}
		if ev.Selected {
			return fmt.Sprintf("%d, selected.", ev.Top)
		}
		return fmt.Sprintf("%d.", ev.Top)

	case game.BoundaryHit:
		return "Edge."

	case game.SelectionSumAnnounced:
		if ev.Added {
			return fmt.Sprintf("Total %d.", ev.Sum)
		}
		if ev.Count == 0 {
			return "Removed. Selection empty."
		}
		return fmt.Sprintf("Removed. Total %d.", ev.Sum)

	case game.SelectionCleared:
		if ev.Count == 0 {
			return "Nothing selected."
		}
		return "Selection cleared."

	case game.TileTopValueChanged:
		if ev.Empty {
			return "Wild."
		}
		return fmt.Sprintf("Now %d.", ev.Top)

	case game.DepthAnnounced:
		switch ev.Depth {
		case 0:
			return "Wild."
		case 1:
			return "1 number left."
		default:
			return fmt.Sprintf("%d numbers left.", ev.Depth)
		}

	case game.EvaluationResult:
		switch ev.Kind {
		case game.EvaluationSuccess:
			if ev.Exact {
				return fmt.Sprintf("Exactly %d!", ev.Sum)
			}
			return "Dumped."
		case game.EvaluationRandomized:
			return "Rerolled."
		case game.EvaluationFailure:
			return fmt.Sprintf("No. That makes %d.", ev.Sum)
		default:
			return "Nothing selected."
		}

	case game.GameWon:
		return fmt.Sprintf("You win! Board cleared in %s.", ev.Duration.Round(time.Second))

	default:
		return ""
	}
}
