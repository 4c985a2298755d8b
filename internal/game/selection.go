// internal/game/selection.go
//
// Selection: the insertion-ordered set of tile coordinates the player has
// picked but not yet resolved, and the evaluation that resolves them.
//
// Evaluation classifies in a fixed priority order: (a) whether a wild
// (empty) tile triggered it, (b) how many non-empty tiles contributed,
// (c) the resulting sum. The four outcomes:
//   - exactly the target with two or more contributors: pop every contributor;
//   - under the target, dumped onto a wild tile: pop and discard;
//   - a single tile paired with a wild tile: re-roll its top value in place;
//   - anything else: a wrong guess, penalty pushed onto every contributor.

package game

// Selection tracks the ordered set of currently selected tile coordinates.
// Order matters: the dump and re-roll rules depend on what was picked before
// the wild tile. A list plus a membership set keeps Toggle O(1) while
// preserving insertion order.
type Selection struct {
	order   []Position
	members map[Position]struct{}
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{members: make(map[Position]struct{})}
}

// Len returns how many positions are selected.
func (s *Selection) Len() int { return len(s.order) }

// Contains reports whether p is currently selected.
func (s *Selection) Contains(p Position) bool {
	_, ok := s.members[p]
	return ok
}

// Positions returns the selected coordinates in insertion order.
func (s *Selection) Positions() []Position {
	out := make([]Position, len(s.order))
	copy(out, s.order)
	return out
}

// Toggle adds p to the selection, or removes it when already present, and
// reports whether it was added. Callers route empty tiles to Evaluate
// instead of toggling them: selecting a wild tile is a commit, not a pick.
func (s *Selection) Toggle(p Position) bool {
	if s.Contains(p) {
		delete(s.members, p)
		for i, q := range s.order {
			if q == p {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return false
	}
	s.members[p] = struct{}{}
	s.order = append(s.order, p)
	return true
}

// Clear empties the selection and returns how many positions were dropped.
func (s *Selection) Clear() int {
	n := len(s.order)
	s.order = s.order[:0]
	clear(s.members)
	return n
}

// Sum totals the top values of the selected non-empty tiles on b and
// returns the total and the contributor count. Non-mutating.
func (s *Selection) Sum(b *Board) (sum, contributors int) {
	for _, p := range s.order {
		if v, ok := b.TileAt(p).Top(); ok {
			sum += v
			contributors++
		}
	}
	return sum, contributors
}

// contributors returns the selected positions whose tiles are non-empty, in
// insertion order. Under normal play every selected tile is non-empty, but
// evaluation only ever trusts the state of the board at this moment.
func (s *Selection) contributors(b *Board) []Position {
	var out []Position
	for _, p := range s.order {
		if t := b.TileAt(p); t != nil && !t.IsEmpty() {
			out = append(out, p)
		}
	}
	return out
}

// Evaluate resolves the current selection against b, drawing penalty and
// re-roll values from src. emptyTriggered marks an evaluation committed by
// selecting a wild tile, which enables the dump and re-roll outcomes.
// Every outcome except Invalid clears the selection.
func (s *Selection) Evaluate(b *Board, src NumberSource, target int, emptyTriggered bool) EvaluationResult {
	contrib := s.contributors(b)
	sum := 0
	for _, p := range contrib {
		v, _ := b.TileAt(p).Top()
		sum += v
	}

	res := EvaluationResult{Sum: sum, Contributors: contrib}
	switch {
	case len(contrib) == 0:
		// Selecting a wild tile with nothing picked yet (or committing an
		// empty selection) resolves nothing.
		res.Kind = EvaluationInvalid
		return res

	case emptyTriggered && len(contrib) == 1:
		// The re-roll: replace the lone tile's top, depth unchanged.
		_ = b.TileAt(contrib[0]).ReplaceTop(src.PenaltyValue())
		res.Kind = EvaluationRandomized

	case sum == target && len(contrib) >= 2:
		res.Kind = EvaluationSuccess
		res.Exact = true
		res.TilesCleared = popContributors(b, contrib)

	case emptyTriggered && sum < target && len(contrib) >= 2:
		// Dump: the leftover numbers are discarded into the wild tile.
		res.Kind = EvaluationSuccess
		res.TilesCleared = popContributors(b, contrib)

	default:
		// Wrong guess, including a lone tile that happens to carry the
		// target under a widened value range.
		for _, p := range contrib {
			b.TileAt(p).Push(src.PenaltyValue())
		}
		res.Kind = EvaluationFailure
	}

	s.Clear()
	return res
}

// popContributors pops the top of every contributor and returns how many
// tiles became empty.
func popContributors(b *Board, contrib []Position) int {
	cleared := 0
	for _, p := range contrib {
		t := b.TileAt(p)
		if err := t.PopTop(); err != nil {
			continue
		}
		if t.IsEmpty() {
			cleared++
		}
	}
	return cleared
}
