package main

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/chrisnorman7/lucky-thirteen/internal/config"
	"github.com/chrisnorman7/lucky-thirteen/internal/daily"
	"github.com/chrisnorman7/lucky-thirteen/internal/game"
	"github.com/chrisnorman7/lucky-thirteen/internal/speech"
	"github.com/chrisnorman7/lucky-thirteen/internal/stats"
	"github.com/chrisnorman7/lucky-thirteen/internal/tui"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	var sinks []game.Announcer
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.LogFile).Msg("failed to open log file")
		}
		defer f.Close()
		log.Logger = log.Output(f)
		sinks = append(sinks, game.AnnouncerFunc(func(e game.Event) {
			log.Debug().Type("event", e).Interface("data", e).Msg("announce")
		}))
	} else {
		// The UI owns the terminal, so without a log file logging is off.
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}

	seed := cfg.Seed
	dailyBoard := false
	switch {
	case seed != 0:
		// A pinned seed replays one exact deal.
	case cfg.Daily:
		seed = daily.Seed(time.Now(), cfg.DailySalt)
		dailyBoard = true
	default:
		s, err := game.NewSeed()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to draw a seed")
		}
		seed = s
	}

	recorder := stats.NewRecorder()
	speaker := speech.New(cfg.SpeechCmd, cfg.SpeechVoice)
	defer speaker.Close()
	transcript := tui.NewTranscript(64)
	sinks = append(sinks, recorder, speaker, transcript)

	var opts []game.Option
	if dailyBoard {
		opts = append(opts, game.WithDailyBoard())
	}
	src := game.NewSource(seed, cfg.MaxValue, cfg.PenaltyMax)
	engine := game.NewEngine(cfg.Game(), src, game.Tee(sinks...), opts...)

	log.Info().
		Int64("seed", seed).
		Bool("daily", dailyBoard).
		Int("size", cfg.BoardSize).
		Msg("starting lucky-thirteen")

	p := tea.NewProgram(tui.New(engine, transcript, recorder), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal().Err(err).Msg("ui exited")
	}
}
