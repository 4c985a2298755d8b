// internal/tui/model.go
//
// Bubble Tea model for the terminal front-end.
// Responsibilities:
//   - Translate key presses into engine commands.
//   - Keep a scrolling transcript of everything the game announces, so the
//     speech output and the screen always tell the same story.
//   - Handle UI-only concerns (help toggle, resize, quit) locally.
//
// The model never inspects tiles behind the engine's back: everything it
// renders comes from the engine's public accessors and the announcement
// stream.

package tui

import (
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chrisnorman7/lucky-thirteen/internal/game"
	"github.com/chrisnorman7/lucky-thirteen/internal/speech"
	"github.com/chrisnorman7/lucky-thirteen/internal/stats"
)

// Transcript collects announcement phrases for the on-screen log. It is an
// announcement sink, shared by reference between the engine's fan-out and
// the model, so value copies of the model keep seeing new lines.
type Transcript struct {
	mu    sync.Mutex // guards lines
	limit int
	lines []string
}

// NewTranscript returns a transcript that keeps the last limit lines.
func NewTranscript(limit int) *Transcript {
	if limit < 1 {
		limit = 1
	}
	return &Transcript{limit: limit}
}

// Announce records the phrase for e, if it has one. Implements game.Announcer.
func (t *Transcript) Announce(e game.Event) {
	line := speech.Phrase(e)
	if line == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = append(t.lines, line)
	if len(t.lines) > t.limit {
		t.lines = t.lines[len(t.lines)-t.limit:]
	}
}

// Tail returns the most recent n lines, oldest first.
func (t *Transcript) Tail(n int) []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n > len(t.lines) {
		n = len(t.lines)
	}
	out := make([]string, n)
	copy(out, t.lines[len(t.lines)-n:])
	return out
}

// Model is the Bubble Tea model wrapping one engine.
type Model struct {
	engine     *game.Engine
	transcript *Transcript
	recorder   *stats.Recorder
	keys       KeyMap
	help       help.Model

	width  int
	height int
}

// New constructs the front-end model. transcript and recorder may be nil;
// the corresponding panels are simply left out.
func New(engine *game.Engine, transcript *Transcript, recorder *stats.Recorder) Model {
	return Model{
		engine:     engine,
		transcript: transcript,
		recorder:   recorder,
		keys:       DefaultKeyMap(),
		help:       help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Up):
			m.engine.Handle(game.CmdMoveUp)
		case key.Matches(msg, m.keys.Down):
			m.engine.Handle(game.CmdMoveDown)
		case key.Matches(msg, m.keys.Left):
			m.engine.Handle(game.CmdMoveLeft)
		case key.Matches(msg, m.keys.Right):
			m.engine.Handle(game.CmdMoveRight)
		case key.Matches(msg, m.keys.Select):
			m.engine.Handle(game.CmdSelect)
		case key.Matches(msg, m.keys.Check):
			m.engine.Evaluate()
		case key.Matches(msg, m.keys.Depth):
			m.engine.Handle(game.CmdQueryDepth)
		case key.Matches(msg, m.keys.Deselect):
			m.engine.Handle(game.CmdDeselectAll)
		}
		return m, nil
	}

	return m, nil
}
