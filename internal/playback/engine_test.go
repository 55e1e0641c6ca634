package playback_test

import (
	"sync"
	"testing"
	"time"

	"slides/internal/domain"
	"slides/internal/playback"
)

func slides(n int) []domain.Slide {
	out := make([]domain.Slide, n)
	for i := range out {
		out[i] = domain.NewSlide()
	}
	return out
}

func TestNextPrevious_Clamp(t *testing.T) {
	e := playback.New(slides(3), nil)

	e.Previous()
	if e.State().SlideIndex != 0 {
		t.Error("Previous at start must clamp to 0")
	}

	e.Next()
	e.Next()
	e.Next() // past the end
	if got := e.State().SlideIndex; got != 2 {
		t.Errorf("Next must clamp to last slide, got %d", got)
	}
}

func TestJumpTo_Clamps(t *testing.T) {
	e := playback.New(slides(4), nil)

	e.JumpTo(2)
	if got := e.State().SlideIndex; got != 2 {
		t.Errorf("JumpTo(2) landed on %d", got)
	}
	e.JumpTo(99)
	if got := e.State().SlideIndex; got != 3 {
		t.Errorf("JumpTo past the end must clamp to last slide, got %d", got)
	}
	e.JumpTo(-5)
	if got := e.State().SlideIndex; got != 0 {
		t.Errorf("JumpTo below zero must clamp to 0, got %d", got)
	}
}

func TestAutoAdvance_StopsAtEnd(t *testing.T) {
	e := playback.New(slides(3), nil)
	e.SetInterval(10 * time.Millisecond)

	e.Play()
	if !e.State().Playing {
		t.Fatal("Play should start playback")
	}

	deadline := time.After(1 * time.Second)
	for e.State().Playing {
		select {
		case <-deadline:
			t.Fatal("auto-advance never reached the end")
		case <-time.After(5 * time.Millisecond):
		}
	}

	st := e.State()
	if st.SlideIndex != 2 {
		t.Errorf("expected to stop on the last slide, got %d", st.SlideIndex)
	}
	if st.Playing {
		t.Error("playback must stop at the end, not loop")
	}

	// A later tick must not move the index.
	time.Sleep(30 * time.Millisecond)
	if e.State().SlideIndex != 2 {
		t.Error("stale timer advanced a stopped engine")
	}
}

func TestPause_CancelsPendingTimer(t *testing.T) {
	e := playback.New(slides(5), nil)
	e.SetInterval(15 * time.Millisecond)

	e.Play()
	e.Pause()
	idx := e.State().SlideIndex

	time.Sleep(50 * time.Millisecond)
	if e.State().SlideIndex != idx {
		t.Error("pending timer fired after Pause")
	}
}

func TestStop_ResetsAndCancels(t *testing.T) {
	e := playback.New(slides(4), nil)
	e.SetInterval(15 * time.Millisecond)

	e.Next()
	e.SetFullscreen(true)
	e.Play()
	e.Stop()

	st := e.State()
	if st.SlideIndex != 0 || st.Playing || st.Fullscreen {
		t.Errorf("Stop should reset state, got %+v", st)
	}
	time.Sleep(50 * time.Millisecond)
	if e.State().SlideIndex != 0 {
		t.Error("stale timer mutated a stopped engine")
	}
}

func TestPlay_OnLastSlideIsNoop(t *testing.T) {
	e := playback.New(slides(2), nil)
	e.Next()
	e.Play()
	if e.State().Playing {
		t.Error("Play on the last slide should not start")
	}
}

func TestOnChange_Notifies(t *testing.T) {
	var mu sync.Mutex
	var states []playback.State
	e := playback.New(slides(3), func(s playback.State) {
		mu.Lock()
		states = append(states, s)
		mu.Unlock()
	})

	e.Next()
	e.SetFullscreen(true)

	mu.Lock()
	defer mu.Unlock()
	if len(states) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(states))
	}
	if states[0].SlideIndex != 1 || !states[1].Fullscreen {
		t.Errorf("unexpected notifications: %+v", states)
	}
}

func TestActiveTransition_IsTargetSlides(t *testing.T) {
	s := slides(2)
	s[1].Transition = domain.Transition{Type: domain.TransitionZoom, DurationMs: 400}
	e := playback.New(s, nil)

	e.Next()
	tr := e.ActiveTransition()
	if tr.Type != domain.TransitionZoom || tr.DurationMs != 400 {
		t.Errorf("expected the target slide's transition, got %+v", tr)
	}
}

func TestVisibleElements_RespectDelays(t *testing.T) {
	s := slides(1)
	immediate := domain.NewElement(domain.Element{Type: domain.ElementText, Text: &domain.TextPayload{Text: "now"}})
	delayed := domain.NewElement(domain.Element{
		Type:      domain.ElementText,
		Text:      &domain.TextPayload{Text: "later"},
		Animation: &domain.Animation{Type: domain.AnimationFadeIn, DurationMs: 300, DelayMs: 500},
	})
	s[0].Elements = []domain.Element{immediate, delayed}
	e := playback.New(s, nil)

	vis := e.VisibleElements(100 * time.Millisecond)
	if len(vis) != 1 || vis[0].ID != immediate.ID {
		t.Errorf("only the undelayed element should be visible at 100ms, got %d", len(vis))
	}

	vis = e.VisibleElements(600 * time.Millisecond)
	if len(vis) != 2 {
		t.Errorf("both elements should be visible at 600ms, got %d", len(vis))
	}
}

func TestRevealDelay(t *testing.T) {
	if playback.RevealDelay(domain.Element{}) != 0 {
		t.Error("no animation means no delay")
	}
	el := domain.Element{Animation: &domain.Animation{DelayMs: 250}}
	if playback.RevealDelay(el) != 250*time.Millisecond {
		t.Error("delay should convert from milliseconds")
	}
}
