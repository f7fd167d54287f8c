package speech

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/text/language"

	"github.com/medscan/medscan-api/internal/utils"
)

// ErrBusy is returned when Speak is called while an utterance is in flight.
var ErrBusy = errors.New("speech already in progress")

// Engine is the platform text-to-speech boundary. The core never consumes a
// return value beyond the error.
type Engine interface {
	Speak(ctx context.Context, utterance string, tag language.Tag, rate float64) error
}

type State int

const (
	StateIdle State = iota
	StateSpeaking
	StateErrored
)

// Speaker is a small state machine (Idle → Speaking → Idle | Errored) over an
// Engine, so callers await completion instead of threading speaking flags
// through callbacks. One utterance at a time; a second Speak returns ErrBusy.
type Speaker struct {
	engine Engine
	logger *utils.Logger

	mu    sync.Mutex
	state State
}

func NewSpeaker(engine Engine, logger *utils.Logger) *Speaker {
	return &Speaker{engine: engine, logger: logger}
}

func (s *Speaker) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Speak renders the summary through the engine and blocks until it finishes.
func (s *Speaker) Speak(ctx context.Context, summary Summary, rate float64) error {
	s.mu.Lock()
	if s.state == StateSpeaking {
		s.mu.Unlock()
		return ErrBusy
	}
	s.state = StateSpeaking
	s.mu.Unlock()

	err := s.engine.Speak(ctx, summary.Utterance(), summary.Language, rate)

	s.mu.Lock()
	if err != nil {
		s.state = StateErrored
		s.logger.Error("speech engine failed", "error", err)
	} else {
		s.state = StateIdle
	}
	s.mu.Unlock()

	return err
}

// LogEngine is the server-side stand-in for an on-device speech engine: it
// just records that an utterance would have been spoken.
type LogEngine struct {
	Logger *utils.Logger
}

func (e *LogEngine) Speak(_ context.Context, utterance string, tag language.Tag, rate float64) error {
	e.Logger.Info("speaking summary", "language", tag.String(), "rate", rate, "chars", len(utterance))
	return nil
}
