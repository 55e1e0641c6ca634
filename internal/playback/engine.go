package playback

import (
	"sync"
	"time"

	"slides/internal/domain"
)

// AutoAdvanceInterval is the delay between slides while auto-play runs.
const AutoAdvanceInterval = 5 * time.Second

// State is the playback position, pushed to the frontend on every change.
type State struct {
	SlideIndex int  `json:"slideIndex"`
	Playing    bool `json:"playing"`
	Fullscreen bool `json:"fullscreen"`
}

// Engine drives full-screen sequential playback over a snapshot of a
// presentation's slides. Navigation clamps to [0, len-1] with no
// wraparound; auto-advance stops at the last slide instead of looping.
// The engine never mutates the deck: transitions and element entrance
// animations are display contracts read from slide data.
type Engine struct {
	mu       sync.Mutex
	slides   []domain.Slide
	index    int
	playing  bool
	fullscr  bool
	timer    *time.Timer
	interval time.Duration
	onChange func(State)
}

// New creates an engine over the given slides. onChange may be nil.
func New(slides []domain.Slide, onChange func(State)) *Engine {
	return &Engine{
		slides:   slides,
		interval: AutoAdvanceInterval,
		onChange: onChange,
	}
}

// SetInterval overrides the auto-advance interval. Used by tests.
func (e *Engine) SetInterval(d time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.interval = d
}

// State returns the current playback state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateLocked()
}

func (e *Engine) stateLocked() State {
	return State{SlideIndex: e.index, Playing: e.playing, Fullscreen: e.fullscr}
}

// notifyLocked pushes the current state. Must be called with the lock held.
func (e *Engine) notifyLocked() {
	if e.onChange != nil {
		e.onChange(e.stateLocked())
	}
}

// Next moves forward one slide, clamped to the last.
func (e *Engine) Next() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nextLocked()
	if e.playing {
		e.scheduleLocked()
	}
	e.notifyLocked()
}

func (e *Engine) nextLocked() {
	if e.index < len(e.slides)-1 {
		e.index++
	}
}

// JumpTo moves directly to the given slide, clamped to the deck.
func (e *Engine) JumpTo(index int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if index > len(e.slides)-1 {
		index = len(e.slides) - 1
	}
	if index < 0 {
		index = 0
	}
	e.index = index
	if e.playing {
		e.scheduleLocked()
	}
	e.notifyLocked()
}

// Previous moves back one slide, clamped to the first.
func (e *Engine) Previous() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.index > 0 {
		e.index--
	}
	if e.playing {
		e.scheduleLocked()
	}
	e.notifyLocked()
}

// Play starts auto-advance. A pending timer is replaced, never doubled.
func (e *Engine) Play() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.slides) == 0 || e.index >= len(e.slides)-1 {
		return
	}
	e.playing = true
	e.scheduleLocked()
	e.notifyLocked()
}

// Pause stops auto-advance, cancelling any pending timer.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.playing = false
	e.cancelLocked()
	e.notifyLocked()
}

// SetFullscreen records the fullscreen flag.
func (e *Engine) SetFullscreen(on bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.fullscr = on
	e.notifyLocked()
}

// Stop tears the engine down: playback halts, the pending timer is
// cancelled, and the position resets. Must be called when navigating
// away so a stale timer cannot fire into a torn-down presentation.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.playing = false
	e.fullscr = false
	e.index = 0
	e.cancelLocked()
}

// scheduleLocked (re)arms the auto-advance timer.
// Must be called with the lock held.
func (e *Engine) scheduleLocked() {
	e.cancelLocked()
	e.timer = time.AfterFunc(e.interval, e.autoAdvance)
}

func (e *Engine) cancelLocked() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

func (e *Engine) autoAdvance() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.playing {
		return
	}
	e.nextLocked()
	if e.index >= len(e.slides)-1 {
		// Reached the end: stop, do not loop.
		e.playing = false
		e.cancelLocked()
	} else {
		e.scheduleLocked()
	}
	e.notifyLocked()
}

// ── Display contracts ──────────────────────────────────────

// ActiveTransition returns the transition of the current (target) slide,
// applied by the display layer when the slide becomes active.
func (e *Engine) ActiveTransition() domain.Transition {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.index < 0 || e.index >= len(e.slides) {
		return domain.Transition{Type: domain.TransitionNone}
	}
	return e.slides[e.index].Transition
}

// RevealDelay returns how long after slide activation an element becomes
// visible. Elements without an animation show immediately; each element's
// delay is independent of the others on the slide.
func RevealDelay(el domain.Element) time.Duration {
	if el.Animation == nil {
		return 0
	}
	return time.Duration(el.Animation.DelayMs) * time.Millisecond
}

// VisibleElements returns the current slide's elements whose reveal delay
// has elapsed since slide activation.
func (e *Engine) VisibleElements(sinceActivation time.Duration) []domain.Element {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.index < 0 || e.index >= len(e.slides) {
		return nil
	}
	var out []domain.Element
	for _, el := range e.slides[e.index].Elements {
		if RevealDelay(el) <= sinceActivation {
			out = append(out, el)
		}
	}
	return out
}
