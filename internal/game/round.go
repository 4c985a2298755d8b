// internal/game/round.go
//
// Round: one complete deal of the board, from a fresh grid of full stacks
// to the moment the last tile empties. The engine creates a new Round on
// every reset; nothing from the previous round survives.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Round bundles the board, the live selection, and the number source for
// a single playthrough.
type Round struct {
	id        string
	cfg       Config
	board     *Board
	selection *Selection
	src       NumberSource
	startedAt time.Time
}

// NewRound deals a fresh round from cfg, drawing every starting value from
// src. Each tile begins with a stack as tall as the target sum.
func NewRound(cfg Config, src NumberSource) *Round {
	cfg = cfg.normalized()
	return &Round{
		id:        newRoundID(),
		cfg:       cfg,
		board:     NewBoard(cfg.BoardSize, cfg.TargetSum, src),
		selection: NewSelection(),
		src:       src,
		startedAt: time.Now(),
	}
}

// ID returns the round's opaque identifier.
func (r *Round) ID() string { return r.id }

// Config returns the settings the round was dealt with.
func (r *Round) Config() Config { return r.cfg }

// Board returns the round's board.
func (r *Round) Board() *Board { return r.board }

// Selection returns the round's live selection.
func (r *Round) Selection() *Selection { return r.selection }

// Age returns how long the round has been running.
func (r *Round) Age() time.Duration { return time.Since(r.startedAt) }

// Evaluate resolves the current selection, drawing any penalty or re-roll
// values from the round's number source.
func (r *Round) Evaluate(emptyTriggered bool) EvaluationResult {
	return r.selection.Evaluate(r.board, r.src, r.cfg.TargetSum, emptyTriggered)
}

func newRoundID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "unknown"
	}
	return hex.EncodeToString(b)
}
