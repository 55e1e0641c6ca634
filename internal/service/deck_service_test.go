package service_test

import (
	"context"
	"testing"
	"time"

	"slides/internal/domain"
	"slides/internal/service"
	"slides/internal/store"
)

func newDeckService() (*service.DeckService, *service.MockEmitter) {
	emitter := &service.MockEmitter{}
	return service.NewDeckService(store.New(nil), emitter), emitter
}

func eventNames(m *service.MockEmitter) []string {
	names := make([]string, len(m.Events))
	for i, e := range m.Events {
		names[i] = e.Event
	}
	return names
}

func hasEvent(m *service.MockEmitter, name string) bool {
	for _, e := range m.Events {
		if e.Event == name {
			return true
		}
	}
	return false
}

// ─────────────────────────────────────────────────────────────
// DeckService tests
// ─────────────────────────────────────────────────────────────

func TestDeckService_CreateBlankPresentation(t *testing.T) {
	svc, emitter := newDeckService()
	ctx := context.Background()

	p, err := svc.CreatePresentation(ctx, "Q3 review", "", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(p.Slides) != 1 {
		t.Fatalf("expected 1 seeded slide, got %d", len(p.Slides))
	}
	if !hasEvent(emitter, service.EventDeckListChanged) {
		t.Errorf("expected %s, got %v", service.EventDeckListChanged, eventNames(emitter))
	}
	if !hasEvent(emitter, service.EventDeckChanged) {
		t.Errorf("expected %s, got %v", service.EventDeckChanged, eventNames(emitter))
	}
}

func TestDeckService_CreateFromTemplate(t *testing.T) {
	svc, _ := newDeckService()
	ctx := context.Background()

	p, err := svc.CreatePresentation(ctx, "Pitch", "", "business-pitch")
	if err != nil {
		t.Fatalf("create from template: %v", err)
	}
	if len(p.Slides) < 2 {
		t.Fatalf("expected template slides, got %d", len(p.Slides))
	}
}

func TestDeckService_CreateUnknownTemplate(t *testing.T) {
	svc, emitter := newDeckService()

	_, err := svc.CreatePresentation(context.Background(), "Pitch", "", "no-such-template")
	if err == nil {
		t.Fatal("expected error for unknown template")
	}
	if len(emitter.Events) != 0 {
		t.Errorf("no events expected on failure, got %v", eventNames(emitter))
	}
}

func TestDeckService_TrashRestoreCycle(t *testing.T) {
	svc, _ := newDeckService()
	ctx := context.Background()

	p, _ := svc.CreatePresentation(ctx, "doomed", "", "")

	if !svc.MoveToTrash(ctx, p.ID) {
		t.Fatal("trash failed")
	}
	if len(svc.ListPresentations()) != 0 {
		t.Error("trashed deck still listed as active")
	}
	if len(svc.ListTrash()) != 1 {
		t.Error("trashed deck missing from trash")
	}

	if !svc.RestoreFromTrash(ctx, p.ID) {
		t.Fatal("restore failed")
	}
	if len(svc.ListPresentations()) != 1 {
		t.Error("restored deck not active")
	}
}

func TestDeckService_MutationsEmitDeckChanged(t *testing.T) {
	svc, emitter := newDeckService()
	ctx := context.Background()

	svc.CreatePresentation(ctx, "deck", "", "")
	emitter.Events = nil

	svc.AddSlide(ctx)
	el, ok := svc.AddElement(ctx, domain.Element{Type: domain.ElementText, Text: &domain.TextPayload{Text: "hi"}})
	if !ok {
		t.Fatal("add element failed")
	}
	svc.UpdateElement(ctx, el.ID, store.ElementPatch{Style: domain.Style{"color": "#333"}})
	svc.DeleteElement(ctx, el.ID)

	for _, name := range eventNames(emitter) {
		if name != service.EventDeckChanged {
			t.Fatalf("unexpected event %s", name)
		}
	}
	if len(emitter.Events) != 4 {
		t.Errorf("expected 4 deck:changed events, got %d", len(emitter.Events))
	}
}

func TestDeckService_FailedMutationEmitsNothing(t *testing.T) {
	svc, emitter := newDeckService()
	ctx := context.Background()

	svc.CreatePresentation(ctx, "deck", "", "")
	emitter.Events = nil

	if svc.DeleteElement(ctx, "ghost") {
		t.Fatal("expected delete of unknown element to be a no-op")
	}
	if len(emitter.Events) != 0 {
		t.Errorf("no events expected, got %v", eventNames(emitter))
	}
}

func TestDeckService_DragElement(t *testing.T) {
	svc, _ := newDeckService()
	ctx := context.Background()

	svc.CreatePresentation(ctx, "deck", "", "")
	el, _ := svc.AddElement(ctx, domain.Element{Type: domain.ElementShape, Shape: &domain.ShapePayload{Shape: "rect"}})

	// 192 pixels on a 1920-wide surface is 96 logical units.
	if !svc.DragElement(ctx, el.ID, 192, 0, 1920, 1080, 1.0) {
		t.Fatal("drag failed")
	}
	ds, _ := svc.DeckState()
	moved, _ := ds.Presentation.FindElement(el.ID)
	if moved.Position.X != el.Position.X+96 {
		t.Errorf("x = %v, want %v", moved.Position.X, el.Position.X+96)
	}
}

func TestDeckService_SharePresentationIsAdditive(t *testing.T) {
	svc, _ := newDeckService()
	ctx := context.Background()

	p, _ := svc.CreatePresentation(ctx, "shared", "", "")
	svc.SharePresentation(ctx, p.ID, "amy@example.com", domain.RoleViewer)
	svc.SharePresentation(ctx, p.ID, "amy@example.com", domain.RoleEditor)

	got, _ := svc.GetPresentation(p.ID)
	if len(got.Permissions) != 2 {
		t.Fatalf("expected 2 grants, got %d", len(got.Permissions))
	}
}

// ─────────────────────────────────────────────────────────────
// MaintenanceService tests
// ─────────────────────────────────────────────────────────────

func TestMaintenance_PurgesOnlyExpiredTrash(t *testing.T) {
	svc, emitter := newDeckService()
	ctx := context.Background()

	old, _ := svc.CreatePresentation(ctx, "old", "", "")
	fresh, _ := svc.CreatePresentation(ctx, "fresh", "", "")

	ancient := time.Now().Add(-45 * 24 * time.Hour)
	svc.UpdatePresentation(ctx, old.ID, store.PresentationPatch{DeletedAt: &ancient})
	svc.MoveToTrash(ctx, fresh.ID)
	emitter.Events = nil

	maint := service.NewMaintenanceService(svc, emitter)
	if purged := maint.PurgeTrash(ctx); purged != 1 {
		t.Fatalf("purged = %d, want 1", purged)
	}
	if _, ok := svc.GetPresentation(old.ID); ok {
		t.Error("expired deck still present")
	}
	if _, ok := svc.GetPresentation(fresh.ID); !ok {
		t.Error("fresh trash was purged")
	}
	if !hasEvent(emitter, service.EventDeckTrashPurged) {
		t.Errorf("expected %s, got %v", service.EventDeckTrashPurged, eventNames(emitter))
	}
}

func TestMaintenance_NoEventsWhenNothingPurged(t *testing.T) {
	svc, emitter := newDeckService()
	ctx := context.Background()

	maint := service.NewMaintenanceService(svc, emitter)
	if purged := maint.PurgeTrash(ctx); purged != 0 {
		t.Fatalf("purged = %d, want 0", purged)
	}
	if len(emitter.Events) != 0 {
		t.Errorf("no events expected, got %v", eventNames(emitter))
	}
}

// ─────────────────────────────────────────────────────────────
// PlaybackService tests
// ─────────────────────────────────────────────────────────────

func TestPlayback_StartsAtCurrentSlide(t *testing.T) {
	svc, emitter := newDeckService()
	ctx := context.Background()

	svc.CreatePresentation(ctx, "show", "", "")
	svc.AddSlide(ctx)
	svc.AddSlide(ctx)
	svc.SelectSlide(ctx, 1)

	pb := service.NewPlaybackService(svc, emitter)
	st, err := pb.StartShow(ctx)
	if err != nil {
		t.Fatalf("start show: %v", err)
	}
	defer pb.EndShow()

	if st.SlideIndex != 1 {
		t.Errorf("slide index = %d, want 1", st.SlideIndex)
	}
}

func TestPlayback_NoShowRunning(t *testing.T) {
	svc, emitter := newDeckService()
	pb := service.NewPlaybackService(svc, emitter)

	if err := pb.Next(); err == nil {
		t.Fatal("expected error when no show is running")
	}
	if st := pb.State(); st.Playing {
		t.Error("zero state should not be playing")
	}
}

func TestPlayback_StateEvents(t *testing.T) {
	svc, emitter := newDeckService()
	ctx := context.Background()

	svc.CreatePresentation(ctx, "show", "", "")
	svc.AddSlide(ctx)
	svc.SelectSlide(ctx, 0)

	pb := service.NewPlaybackService(svc, emitter)
	if _, err := pb.StartShow(ctx); err != nil {
		t.Fatalf("start show: %v", err)
	}
	defer pb.EndShow()
	emitter.Events = nil

	if err := pb.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	if !hasEvent(emitter, service.EventPlaybackState) {
		t.Errorf("expected %s, got %v", service.EventPlaybackState, eventNames(emitter))
	}
}
