// internal/game/engine.go
//
// Core game engine for a single Lucky Thirteen session.
// Responsibilities:
//   - Deal rounds and track the playing → won lifecycle.
//   - Dispatch commands: cursor movement, select, depth query, deselect-all.
//   - Auto-commit a selection the moment its sum reaches the target.
//   - Publish an announcement for every observable change.
//
// Notes:
//   - The engine is not safe for concurrent use; front-ends drive it from a
//     single input loop.
//   - Announcements are synchronous. Sinks must return quickly.
package game

// Engine drives the game: it owns the current round, routes commands to the
// board and selection, and announces what happened.
type Engine struct {
	cfg      Config
	src      NumberSource
	announce Announcer
	daily    bool
	round    *Round
	state    State
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithDailyBoard marks rounds as dealt from today's shared seed. The flag
// only affects the RoundStarted announcement.
func WithDailyBoard() Option {
	return func(e *Engine) { e.daily = true }
}

// NewEngine constructs an engine and deals the first round. A nil announcer
// is replaced with a no-op sink.
func NewEngine(cfg Config, src NumberSource, announcer Announcer, opts ...Option) *Engine {
	if announcer == nil {
		announcer = NopAnnouncer{}
	}
	e := &Engine{
		cfg:      cfg.normalized(),
		src:      src,
		announce: announcer,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.startRound()
	return e
}

// State returns the controller's lifecycle state.
func (e *Engine) State() State { return e.state }

// DailyBoard reports whether rounds are dealt from today's shared seed.
func (e *Engine) DailyBoard() bool { return e.daily }

// Round returns the round in progress.
func (e *Engine) Round() *Round { return e.round }

// Handle dispatches a single command. After a win the board is inert:
// every command is ignored except select, which deals the next round.
func (e *Engine) Handle(cmd Command) {
	if e.state == Won {
		if cmd == CmdSelect {
			e.Reset()
		}
		return
	}

	switch cmd {
	case CmdMoveUp:
		e.move(Up)
	case CmdMoveDown:
		e.move(Down)
	case CmdMoveLeft:
		e.move(Left)
	case CmdMoveRight:
		e.move(Right)
	case CmdSelect:
		e.selectCursor()
	case CmdQueryDepth:
		pos := e.round.Board().Cursor()
		e.announce.Announce(DepthAnnounced{Position: pos, Depth: e.round.Board().DepthAt(pos)})
	case CmdDeselectAll:
		n := e.round.Selection().Clear()
		e.announce.Announce(SelectionCleared{Count: n})
	}
}

// Evaluate commits the current selection without a wild tile, as if the
// player had asked "check what I have". The engine also commits on its own
// whenever a toggle brings the sum up to the target.
func (e *Engine) Evaluate() EvaluationResult {
	if e.state != Playing {
		return EvaluationResult{Kind: EvaluationInvalid}
	}
	res := e.round.Evaluate(false)
	e.finish(res)
	return res
}

// Reset abandons the current round and deals a fresh one.
func (e *Engine) Reset() {
	e.startRound()
}

func (e *Engine) startRound() {
	e.round = NewRound(e.cfg, e.src)
	e.state = Playing
	cfg := e.round.Config()
	e.announce.Announce(RoundStarted{
		RoundID: e.round.ID(),
		Size:    cfg.BoardSize,
		Depth:   cfg.TargetSum,
		Daily:   e.daily,
	})
}

func (e *Engine) move(d Direction) {
	b := e.round.Board()
	pos, moved := b.MoveCursor(d)
	if !moved {
		e.announce.Announce(BoundaryHit{Direction: d})
		return
	}
	top, ok := b.TileAt(pos).Top()
	e.announce.Announce(CursorMoved{
		Position: pos,
		Top:      top,
		Empty:    !ok,
		Selected: e.round.Selection().Contains(pos),
	})
}

// selectCursor implements the select command during play. Selecting a wild
// (empty) tile commits the selection with the wild rules in force. Selecting
// a picked tile un-picks it. Otherwise the tile joins the selection, and the
// selection commits itself as soon as the sum reaches the target; below the
// target the running sum is announced and play continues.
func (e *Engine) selectCursor() {
	b := e.round.Board()
	sel := e.round.Selection()
	pos := b.Cursor()

	if b.TileAt(pos).IsEmpty() {
		e.finish(e.round.Evaluate(true))
		return
	}

	if sel.Contains(pos) {
		sel.Toggle(pos)
		sum, count := sel.Sum(b)
		e.announce.Announce(SelectionSumAnnounced{Position: pos, Added: false, Sum: sum, Count: count})
		return
	}

	sel.Toggle(pos)
	sum, count := sel.Sum(b)
	if sum >= e.cfg.TargetSum {
		e.finish(e.round.Evaluate(false))
		return
	}
	e.announce.Announce(SelectionSumAnnounced{Position: pos, Added: true, Sum: sum, Count: count})
}

// finish publishes the outcome of an evaluation and advances the lifecycle.
// An invalid evaluation changed nothing: it is announced so the player hears
// why nothing happened, then dropped.
func (e *Engine) finish(res EvaluationResult) {
	e.announce.Announce(res)
	if res.Kind == EvaluationInvalid {
		return
	}

	// If the cursor's own tile contributed, its face changed out from under
	// the player; re-announce it so the narrator stays truthful.
	b := e.round.Board()
	cur := b.Cursor()
	for _, p := range res.Contributors {
		if p != cur {
			continue
		}
		top, ok := b.TileAt(cur).Top()
		e.announce.Announce(TileTopValueChanged{Position: cur, Top: top, Empty: !ok})
		break
	}

	if e.state == Playing && b.IsFullyCleared() {
		e.announce.Announce(GameWon{
			RoundID:      e.round.ID(),
			Duration:     e.round.Age(),
			TilesCleared: b.clearedTiles(),
		})
		e.state = Won
	}
}
