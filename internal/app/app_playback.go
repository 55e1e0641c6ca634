package app

import "slides/internal/playback"

// ============================================================
// Playback
// ============================================================

func (a *App) StartShow() (playback.State, error) {
	return a.playback.StartShow(a.ctx)
}

func (a *App) EndShow() {
	a.playback.EndShow()
}

func (a *App) PlaybackNext() error {
	return a.playback.Next()
}

func (a *App) PlaybackPrevious() error {
	return a.playback.Previous()
}

func (a *App) PlaybackJumpTo(index int) error {
	return a.playback.JumpTo(index)
}

func (a *App) PlaybackPlay() error {
	return a.playback.Play()
}

func (a *App) PlaybackPause() error {
	return a.playback.Pause()
}

func (a *App) PlaybackSetFullscreen(on bool) error {
	return a.playback.SetFullscreen(on)
}

func (a *App) PlaybackState() playback.State {
	return a.playback.State()
}
