package service

import "context"

// ─────────────────────────────────────────────────────────────
// Frontend event plumbing
// ─────────────────────────────────────────────────────────────

// EventEmitter pushes events to the frontend. The App struct satisfies
// it via wailsRuntime.EventsEmit; services depend on the interface so
// they can be exercised in tests without a Wails context.
type EventEmitter interface {
	Emit(ctx context.Context, event string, data any)
}

// MockEmitter records every emission for test assertions.
type MockEmitter struct {
	Events []EmittedEvent
}

// EmittedEvent is one recorded emission.
type EmittedEvent struct {
	Event string
	Data  any
}

func (m *MockEmitter) Emit(_ context.Context, event string, data any) {
	m.Events = append(m.Events, EmittedEvent{Event: event, Data: data})
}
