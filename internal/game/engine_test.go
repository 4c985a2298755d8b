package game

import "testing"

// recorder collects announcements so tests can assert on exactly what the
// engine said.
type recorder struct {
	events []Event
}

func (r *recorder) Announce(e Event) { r.events = append(r.events, e) }

func (r *recorder) starts() []RoundStarted {
	var out []RoundStarted
	for _, e := range r.events {
		if v, ok := e.(RoundStarted); ok {
			out = append(out, v)
		}
	}
	return out
}

func (r *recorder) results() []EvaluationResult {
	var out []EvaluationResult
	for _, e := range r.events {
		if v, ok := e.(EvaluationResult); ok {
			out = append(out, v)
		}
	}
	return out
}

func (r *recorder) sums() []SelectionSumAnnounced {
	var out []SelectionSumAnnounced
	for _, e := range r.events {
		if v, ok := e.(SelectionSumAnnounced); ok {
			out = append(out, v)
		}
	}
	return out
}

func (r *recorder) moves() []CursorMoved {
	var out []CursorMoved
	for _, e := range r.events {
		if v, ok := e.(CursorMoved); ok {
			out = append(out, v)
		}
	}
	return out
}

func (r *recorder) boundaries() []BoundaryHit {
	var out []BoundaryHit
	for _, e := range r.events {
		if v, ok := e.(BoundaryHit); ok {
			out = append(out, v)
		}
	}
	return out
}

func (r *recorder) topChanges() []TileTopValueChanged {
	var out []TileTopValueChanged
	for _, e := range r.events {
		if v, ok := e.(TileTopValueChanged); ok {
			out = append(out, v)
		}
	}
	return out
}

func (r *recorder) wins() []GameWon {
	var out []GameWon
	for _, e := range r.events {
		if v, ok := e.(GameWon); ok {
			out = append(out, v)
		}
	}
	return out
}

func newTestEngine(t *testing.T, size int, src NumberSource) (*Engine, *recorder) {
	t.Helper()
	rec := &recorder{}
	e := NewEngine(Config{BoardSize: size}, src, rec)
	return e, rec
}

func TestEngineDealsRound(t *testing.T) {
	e, rec := newTestEngine(t, 3, &stubSource{initial: []int{1}})

	starts := rec.starts()
	if len(starts) != 1 {
		t.Fatalf("RoundStarted announced %d times, want 1", len(starts))
	}
	if starts[0].Size != 3 || starts[0].Depth != 13 {
		t.Fatalf("RoundStarted = %+v, want size 3 with depth 13", starts[0])
	}
	if starts[0].RoundID == "" {
		t.Fatal("round ID should not be empty")
	}
	if e.State() != Playing {
		t.Fatalf("state = %v, want playing", e.State())
	}
	b := e.Round().Board()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if got := b.DepthAt(Position{Row: row, Col: col}); got != 13 {
				t.Fatalf("initial depth at (%d,%d) = %d, want 13", row, col, got)
			}
		}
	}
}

func TestEngineAutoCommitAtTarget(t *testing.T) {
	e, rec := newTestEngine(t, 3, &stubSource{initial: []int{1}, penalty: []int{5}})
	b := e.Round().Board()
	setTop(t, b, Position{Row: 0, Col: 0}, 9)
	setTop(t, b, Position{Row: 0, Col: 1}, 4)

	e.Handle(CmdSelect)
	e.Handle(CmdMoveRight)
	e.Handle(CmdSelect) // 9+4 reaches the target: commits on its own

	results := rec.results()
	if len(results) != 1 {
		t.Fatalf("got %d evaluation results, want 1", len(results))
	}
	res := results[0]
	if res.Kind != EvaluationSuccess || !res.Exact || res.Sum != 13 {
		t.Fatalf("result = %+v, want exact success with sum 13", res)
	}
	if got := b.DepthAt(Position{Row: 0, Col: 0}); got != 12 {
		t.Fatalf("depth at (0,0) = %d, want 12", got)
	}
	if got := b.DepthAt(Position{Row: 0, Col: 1}); got != 12 {
		t.Fatalf("depth at (0,1) = %d, want 12", got)
	}
	if got := e.Round().Selection().Len(); got != 0 {
		t.Fatalf("selection length after success = %d, want 0", got)
	}

	// The cursor tile contributed, so its new face is re-announced.
	changes := rec.topChanges()
	if len(changes) != 1 {
		t.Fatalf("got %d top-change announcements, want 1", len(changes))
	}
	if changes[0].Position != (Position{Row: 0, Col: 1}) || changes[0].Top != 1 || changes[0].Empty {
		t.Fatalf("top change = %+v, want the uncovered 1 at (0,1)", changes[0])
	}
}

func TestEngineAnnouncesRunningSum(t *testing.T) {
	e, rec := newTestEngine(t, 3, &stubSource{initial: []int{1}})
	setTop(t, e.Round().Board(), Position{Row: 0, Col: 0}, 9)

	e.Handle(CmdSelect)

	sums := rec.sums()
	if len(sums) != 1 {
		t.Fatalf("got %d sum announcements, want 1", len(sums))
	}
	want := SelectionSumAnnounced{Position: Position{}, Added: true, Sum: 9, Count: 1}
	if sums[0] != want {
		t.Fatalf("sum announcement = %+v, want %+v", sums[0], want)
	}
	if len(rec.results()) != 0 {
		t.Fatal("a below-target pick must not trigger an evaluation")
	}

	// Selecting the same tile again un-picks it.
	e.Handle(CmdSelect)
	sums = rec.sums()
	if len(sums) != 2 {
		t.Fatalf("got %d sum announcements, want 2", len(sums))
	}
	if sums[1].Added || sums[1].Sum != 0 || sums[1].Count != 0 {
		t.Fatalf("toggle-off announcement = %+v, want removal down to an empty selection", sums[1])
	}
	if got := e.Round().Selection().Len(); got != 0 {
		t.Fatalf("selection length = %d, want 0", got)
	}
}

func TestEngineExplicitEvaluateUnderTarget(t *testing.T) {
	e, _ := newTestEngine(t, 3, &stubSource{initial: []int{1}, penalty: []int{5, 6}})
	b := e.Round().Board()
	setTop(t, b, Position{Row: 0, Col: 0}, 7)
	setTop(t, b, Position{Row: 0, Col: 1}, 2)

	e.Handle(CmdSelect)
	e.Handle(CmdMoveRight)
	e.Handle(CmdSelect) // sum 9, still the player's to commit

	res := e.Evaluate()
	if res.Kind != EvaluationFailure || res.Sum != 9 {
		t.Fatalf("result = %+v, want failure with sum 9", res)
	}
	if got := b.DepthAt(Position{Row: 0, Col: 0}); got != 14 {
		t.Fatalf("depth at (0,0) = %d, want 14 after one penalty", got)
	}
	if got := b.DepthAt(Position{Row: 0, Col: 1}); got != 14 {
		t.Fatalf("depth at (0,1) = %d, want 14 after one penalty", got)
	}
	if v, _ := b.TileAt(Position{Row: 0, Col: 0}).Top(); v != 5 {
		t.Fatalf("penalty at (0,0) = %d, want 5", v)
	}
	if v, _ := b.TileAt(Position{Row: 0, Col: 1}).Top(); v != 6 {
		t.Fatalf("penalty at (0,1) = %d, want 6", v)
	}
}

func TestEngineWildRandomize(t *testing.T) {
	e, rec := newTestEngine(t, 3, &stubSource{initial: []int{1}, penalty: []int{7}})
	b := e.Round().Board()
	drain(t, b, Position{Row: 1, Col: 1})
	setTop(t, b, Position{Row: 0, Col: 0}, 9)

	e.Handle(CmdSelect) // pick (0,0)
	e.Handle(CmdMoveDown)
	e.Handle(CmdMoveRight) // onto the wild tile

	moves := rec.moves()
	if len(moves) != 2 || !moves[1].Empty {
		t.Fatalf("cursor moves = %+v, want the second landing on a wild tile", moves)
	}

	e.Handle(CmdSelect) // wild commit with one tile picked

	results := rec.results()
	if len(results) != 1 || results[0].Kind != EvaluationRandomized {
		t.Fatalf("results = %+v, want one randomized outcome", results)
	}
	if got := b.DepthAt(Position{Row: 0, Col: 0}); got != 13 {
		t.Fatalf("depth at (0,0) = %d, want 13 (re-roll keeps depth)", got)
	}
	if v, _ := b.TileAt(Position{Row: 0, Col: 0}).Top(); v != 7 {
		t.Fatalf("top at (0,0) = %d, want the re-rolled 7", v)
	}
	if got := e.Round().Selection().Len(); got != 0 {
		t.Fatalf("selection length = %d, want 0", got)
	}
}

func TestEngineWildDump(t *testing.T) {
	e, rec := newTestEngine(t, 3, &stubSource{initial: []int{1}, penalty: []int{5}})
	b := e.Round().Board()
	drain(t, b, Position{Row: 2, Col: 2})
	setTop(t, b, Position{Row: 0, Col: 0}, 2)
	setTop(t, b, Position{Row: 0, Col: 1}, 3)

	e.Handle(CmdSelect)
	e.Handle(CmdMoveRight)
	e.Handle(CmdSelect) // sum 5
	e.Handle(CmdMoveDown)
	e.Handle(CmdMoveDown)
	e.Handle(CmdMoveRight) // onto the wild tile
	e.Handle(CmdSelect)

	results := rec.results()
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	res := results[0]
	if res.Kind != EvaluationSuccess || res.Exact {
		t.Fatalf("result = %+v, want a non-exact (dump) success", res)
	}
	if res.Sum != 5 || res.TilesCleared != 0 {
		t.Fatalf("result = %+v, want sum 5 clearing no tiles", res)
	}
	if got := b.DepthAt(Position{Row: 0, Col: 0}); got != 12 {
		t.Fatalf("depth at (0,0) = %d, want 12", got)
	}
	if got := b.DepthAt(Position{Row: 0, Col: 1}); got != 12 {
		t.Fatalf("depth at (0,1) = %d, want 12", got)
	}
}

func TestEngineWildWithNothingSelected(t *testing.T) {
	e, rec := newTestEngine(t, 3, &stubSource{initial: []int{1}})
	drain(t, e.Round().Board(), Position{Row: 0, Col: 0})

	e.Handle(CmdSelect) // wild tile under the cursor, nothing picked

	// Announced as invalid so the player hears why nothing happened, but no
	// state changes: the board, selection, and lifecycle are untouched.
	results := rec.results()
	if len(results) != 1 || results[0].Kind != EvaluationInvalid {
		t.Fatalf("results = %+v, want a single invalid outcome", results)
	}
	if e.State() != Playing {
		t.Fatalf("state = %v, want playing", e.State())
	}
	if got := e.Round().Selection().Len(); got != 0 {
		t.Fatalf("selection length = %d, want 0", got)
	}
	if !e.Round().Board().TileAt(Position{Row: 0, Col: 0}).IsEmpty() {
		t.Fatal("the wild tile must stay empty")
	}
}

func TestEngineWinThenReset(t *testing.T) {
	e, rec := newTestEngine(t, 3, &stubSource{initial: []int{1}, penalty: []int{5}})
	b := e.Round().Board()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			drain(t, b, Position{Row: row, Col: col})
		}
	}
	setStack(t, b, Position{Row: 0, Col: 0}, 6)
	setStack(t, b, Position{Row: 0, Col: 1}, 7)

	e.Handle(CmdSelect)
	e.Handle(CmdMoveRight)
	e.Handle(CmdSelect) // 6+7 clears the last two tiles

	wins := rec.wins()
	if len(wins) != 1 {
		t.Fatalf("GameWon announced %d times, want exactly once", len(wins))
	}
	if wins[0].TilesCleared != 9 {
		t.Fatalf("GameWon.TilesCleared = %d, want the full board of 9", wins[0].TilesCleared)
	}
	if e.State() != Won {
		t.Fatalf("state = %v, want won", e.State())
	}
	results := rec.results()
	if len(results) != 1 || results[0].TilesCleared != 2 {
		t.Fatalf("results = %+v, want one success clearing 2 tiles", results)
	}

	// A won board is inert to everything but select.
	before := len(rec.events)
	e.Handle(CmdMoveDown)
	e.Handle(CmdQueryDepth)
	e.Handle(CmdDeselectAll)
	if len(rec.events) != before {
		t.Fatal("commands after a win must be ignored")
	}
	if e.State() != Won {
		t.Fatalf("state = %v, want won", e.State())
	}

	oldID := e.Round().ID()
	e.Handle(CmdSelect) // deals the next round

	if e.State() != Playing {
		t.Fatalf("state after reset = %v, want playing", e.State())
	}
	starts := rec.starts()
	if len(starts) != 2 {
		t.Fatalf("RoundStarted announced %d times, want 2", len(starts))
	}
	if e.Round().ID() == oldID {
		t.Fatal("reset should deal a round with a fresh ID")
	}
	nb := e.Round().Board()
	if got := nb.Cursor(); got != (Position{}) {
		t.Fatalf("cursor after reset = %v, want top-left", got)
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if got := nb.DepthAt(Position{Row: row, Col: col}); got != 13 {
				t.Fatalf("depth at (%d,%d) after reset = %d, want 13", row, col, got)
			}
		}
	}
}

func TestEnginePenaltyGrowthIsLinear(t *testing.T) {
	e, _ := newTestEngine(t, 3, &stubSource{initial: []int{1}, penalty: []int{5}})
	b := e.Round().Board()

	const failures = 4
	for i := 0; i < failures; i++ {
		e.Handle(CmdSelect) // lone tile, sum below target
		res := e.Evaluate()
		if res.Kind != EvaluationFailure || len(res.Contributors) != 1 {
			t.Fatalf("failure %d: result = %+v, want a one-tile failure", i, res)
		}
	}

	// Each wrong guess deepens each contributor by exactly one value.
	if got := b.DepthAt(Position{}); got != 13+failures {
		t.Fatalf("depth after %d failures = %d, want %d", failures, got, 13+failures)
	}
}

func TestEngineBoundary(t *testing.T) {
	e, rec := newTestEngine(t, 3, &stubSource{initial: []int{1}})

	e.Handle(CmdMoveUp)
	e.Handle(CmdMoveLeft)

	hits := rec.boundaries()
	if len(hits) != 2 || hits[0].Direction != Up || hits[1].Direction != Left {
		t.Fatalf("boundary hits = %+v, want up then left", hits)
	}
	if len(rec.moves()) != 0 {
		t.Fatal("a blocked move must not announce a cursor move")
	}
	if got := e.Round().Board().Cursor(); got != (Position{}) {
		t.Fatalf("cursor = %v, want unchanged at top-left", got)
	}
}

func TestEngineDepthQueryLeavesSelectionAlone(t *testing.T) {
	e, rec := newTestEngine(t, 3, &stubSource{initial: []int{1}})
	setTop(t, e.Round().Board(), Position{}, 9)

	e.Handle(CmdSelect)
	e.Handle(CmdQueryDepth)

	var depths []DepthAnnounced
	for _, ev := range rec.events {
		if d, ok := ev.(DepthAnnounced); ok {
			depths = append(depths, d)
		}
	}
	if len(depths) != 1 || depths[0].Depth != 13 {
		t.Fatalf("depth announcements = %+v, want one report of 13", depths)
	}
	if !e.Round().Selection().Contains(Position{}) {
		t.Fatal("depth query must not disturb the selection")
	}
}

func TestEngineCursorMoveReportsSelected(t *testing.T) {
	e, rec := newTestEngine(t, 3, &stubSource{initial: []int{1}})
	setTop(t, e.Round().Board(), Position{}, 9)

	e.Handle(CmdSelect)
	e.Handle(CmdMoveRight)
	e.Handle(CmdMoveLeft) // back onto the selected tile

	moves := rec.moves()
	if len(moves) != 2 {
		t.Fatalf("got %d cursor moves, want 2", len(moves))
	}
	if moves[0].Selected {
		t.Fatalf("move onto (0,1) = %+v, want unselected", moves[0])
	}
	if !moves[1].Selected || moves[1].Top != 9 {
		t.Fatalf("move back onto (0,0) = %+v, want selected with top 9", moves[1])
	}
}

func TestEngineDeselectAll(t *testing.T) {
	e, rec := newTestEngine(t, 3, &stubSource{initial: []int{1}})
	b := e.Round().Board()
	setTop(t, b, Position{Row: 0, Col: 0}, 2)
	setTop(t, b, Position{Row: 0, Col: 1}, 3)

	e.Handle(CmdSelect)
	e.Handle(CmdMoveRight)
	e.Handle(CmdSelect)
	e.Handle(CmdDeselectAll)

	var cleared []SelectionCleared
	for _, ev := range rec.events {
		if c, ok := ev.(SelectionCleared); ok {
			cleared = append(cleared, c)
		}
	}
	if len(cleared) != 1 || cleared[0].Count != 2 {
		t.Fatalf("clear announcements = %+v, want one clearing 2 tiles", cleared)
	}
	if got := e.Round().Selection().Len(); got != 0 {
		t.Fatalf("selection length = %d, want 0", got)
	}
}
