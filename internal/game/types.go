// internal/game/types.go
//
// Core type definitions for the Lucky Thirteen engine.
// Defines:
//   - Position: a tile coordinate on the board (row, col).
//   - Direction: one-step cursor movement.
//   - Command: discrete input actions dispatched to the engine.
//   - State: controller lifecycle (playing/won).
//   - EvaluationKind / EvaluationResult: outcome of evaluating a selection.
//   - Config: the tunable rules of a round.

package game

// Position identifies a tile by row and column, zero-indexed from the
// top-left corner of the board.
type Position struct {
	Row int
	Col int
}

// Direction is a one-cell cursor movement on the board.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// delta returns the row/col offset of one step in this direction.
// Up decreases the row; the board is addressed in screen order.
func (d Direction) delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// Command is a discrete input action. The front-end maps key presses to
// commands one-to-one; the engine never sees raw key events.
type Command int

const (
	CmdMoveUp Command = iota
	CmdMoveDown
	CmdMoveLeft
	CmdMoveRight
	CmdSelect
	CmdQueryDepth
	CmdDeselectAll
)

// State reports the controller's lifecycle state. There is no lose state:
// every round ends in a win or keeps going.
type State int

const (
	Playing State = iota
	Won
)

// String returns a coarse string representation of the state.
func (s State) String() string {
	if s == Won {
		return "won"
	}
	return "playing"
}

// EvaluationKind classifies the outcome of evaluating a selection.
// Possible values:
//   - EvaluationInvalid: no non-empty tile was selected; nothing changed.
//   - EvaluationSuccess: the contributors were popped, either because their
//     tops summed to the target exactly or because an under-target selection
//     was dumped onto a wild (empty) tile.
//   - EvaluationRandomized: a lone selected tile had its top value replaced
//     with a fresh draw by pairing it with a wild tile.
//   - EvaluationFailure: a wrong guess; a penalty value was pushed onto every
//     contributor.
type EvaluationKind int

const (
	EvaluationInvalid EvaluationKind = iota
	EvaluationSuccess
	EvaluationRandomized
	EvaluationFailure
)

// String returns the lowercase name of the evaluation kind.
func (k EvaluationKind) String() string {
	switch k {
	case EvaluationSuccess:
		return "success"
	case EvaluationRandomized:
		return "randomized"
	case EvaluationFailure:
		return "failure"
	default:
		return "invalid"
	}
}

// EvaluationResult reports what a single evaluation did. It is also emitted
// as an announcement event, so audio front-ends can cue the outcome directly.
type EvaluationResult struct {
	Kind         EvaluationKind
	Sum          int        // sum of contributing top values at evaluation time
	Contributors []Position // selected positions with non-empty stacks, in selection order
	Exact        bool       // Success with Sum equal to the target (false for a dump)
	TilesCleared int        // tiles whose stacks became empty in this evaluation
}

// Config holds the tunable rules of a round. The zero value is usable:
// NewRound fills in the classic defaults (5x5 board, target 13, values 1-12).
type Config struct {
	// BoardSize is the length of each side of the square board.
	BoardSize int
	// TargetSum is the total a selection must reach. Each tile starts with
	// TargetSum numbers on its stack.
	TargetSum int
	// MaxValue bounds the initial stack values to [1, MaxValue]. Kept below
	// TargetSum so the target itself can never appear on a tile.
	MaxValue int
	// PenaltyMax bounds wrong-guess penalties and wild re-rolls to
	// [1, PenaltyMax].
	PenaltyMax int
}

// DefaultConfig returns the classic rules: a 5x5 board, target sum 13,
// values 1-12 for both initial stacks and penalties.
func DefaultConfig() Config {
	return Config{
		BoardSize:  5,
		TargetSum:  13,
		MaxValue:   12,
		PenaltyMax: 12,
	}
}

// normalized fills zero fields with their defaults so library callers can
// pass a partially specified Config.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.BoardSize <= 0 {
		c.BoardSize = def.BoardSize
	}
	if c.TargetSum <= 0 {
		c.TargetSum = def.TargetSum
	}
	if c.MaxValue <= 0 {
		c.MaxValue = def.MaxValue
	}
	if c.PenaltyMax <= 0 {
		c.PenaltyMax = c.MaxValue
	}
	return c
}
