// internal/speech/speaker.go
//
// Drives an external speech synthesizer ("say" on macOS, "espeak" or
// "spd-say" on Linux) from the announcement stream.
// Responsibilities:
//   - Render each event to a phrase and hand it to the synthesizer.
//   - Interrupt speech still in flight: a fast player must hear the tile
//     under the cursor now, not the three tiles behind it.
//   - Never block the engine; synthesis runs in its own process.

package speech

import (
	"context"
	"os/exec"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/chrisnorman7/lucky-thirteen/internal/game"
)

// Speaker speaks announcements through an external synthesizer command.
// The zero value is inert; use New.
type Speaker struct {
	command string
	voice   string

	mu     sync.Mutex // guards cancel
	cancel context.CancelFunc
}

// New constructs a Speaker that runs command for each phrase. voice, when
// non-empty, is passed as "-v voice", which both say and espeak accept.
// An empty command yields a Speaker that stays silent.
func New(command, voice string) *Speaker {
	return &Speaker{command: command, voice: voice}
}

// Announce speaks the phrase for e, if it has one. Implements game.Announcer.
func (s *Speaker) Announce(e game.Event) {
	phrase := Phrase(e)
	if phrase == "" || s.command == "" {
		return
	}
	s.Say(phrase)
}

// Say speaks phrase, cutting off any phrase still playing.
func (s *Speaker) Say(phrase string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	args := make([]string, 0, 3)
	if s.voice != "" {
		args = append(args, "-v", s.voice)
	}
	args = append(args, phrase)

	cmd := exec.CommandContext(ctx, s.command, args...)
	if err := cmd.Start(); err != nil {
		cancel()
		log.Debug().Err(err).Str("command", s.command).Msg("speech synthesis failed")
		return
	}
	s.cancel = cancel

	// Reap the process; cancel releases the context once it exits on its own.
	go func() {
		_ = cmd.Wait()
		cancel()
	}()
}

// Close cuts off any phrase still playing.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
