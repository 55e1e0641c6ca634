package service

import (
	"context"
	"fmt"
	"sync"

	"slides/internal/playback"
)

// ─────────────────────────────────────────────────────────────
// Playback Service — presenting the open deck
// ─────────────────────────────────────────────────────────────

// EventPlaybackState carries the engine state after every change,
// including timer-driven auto-advances.
const EventPlaybackState = "playback:state"

// PlaybackService owns the presentation engine for the currently open
// deck. Only one show runs at a time; starting a new one stops the
// previous engine.
type PlaybackService struct {
	decks   *DeckService
	emitter EventEmitter

	mu     sync.Mutex
	engine *playback.Engine
}

// NewPlaybackService creates a PlaybackService.
func NewPlaybackService(decks *DeckService, emitter EventEmitter) *PlaybackService {
	return &PlaybackService{decks: decks, emitter: emitter}
}

// StartShow builds an engine over the open deck's slides, positioned at
// the editor's current slide.
func (s *PlaybackService) StartShow(ctx context.Context) (playback.State, error) {
	ds, ok := s.decks.DeckState()
	if !ok {
		return playback.State{}, fmt.Errorf("no presentation open")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine != nil {
		s.engine.Stop()
	}
	s.engine = playback.New(ds.Presentation.Slides, func(st playback.State) {
		s.emitter.Emit(ctx, EventPlaybackState, st)
	})
	if ds.SlideIndex > 0 {
		s.engine.JumpTo(ds.SlideIndex)
	}
	return s.engine.State(), nil
}

// EndShow stops and discards the engine.
func (s *PlaybackService) EndShow() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine != nil {
		s.engine.Stop()
		s.engine = nil
	}
}

func (s *PlaybackService) Next() error {
	return s.withEngine(func(e *playback.Engine) { e.Next() })
}

func (s *PlaybackService) Previous() error {
	return s.withEngine(func(e *playback.Engine) { e.Previous() })
}

func (s *PlaybackService) Play() error {
	return s.withEngine(func(e *playback.Engine) { e.Play() })
}

func (s *PlaybackService) Pause() error {
	return s.withEngine(func(e *playback.Engine) { e.Pause() })
}

func (s *PlaybackService) JumpTo(index int) error {
	return s.withEngine(func(e *playback.Engine) { e.JumpTo(index) })
}

func (s *PlaybackService) SetFullscreen(on bool) error {
	return s.withEngine(func(e *playback.Engine) { e.SetFullscreen(on) })
}

// State reports the engine state, or the zero state when no show runs.
func (s *PlaybackService) State() playback.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine == nil {
		return playback.State{}
	}
	return s.engine.State()
}

func (s *PlaybackService) withEngine(fn func(*playback.Engine)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine == nil {
		return fmt.Errorf("no show running")
	}
	fn(s.engine)
	return nil
}
