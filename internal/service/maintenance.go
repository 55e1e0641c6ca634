package service

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// ─────────────────────────────────────────────────────────────
// Maintenance — scheduled trash purge
// ─────────────────────────────────────────────────────────────

// trashRetention is how long a trashed presentation stays recoverable.
const trashRetention = 30 * 24 * time.Hour

// MaintenanceService runs periodic housekeeping over the deck collection.
// Currently that is only the trash purge: presentations trashed more than
// trashRetention ago are permanently removed.
type MaintenanceService struct {
	decks   *DeckService
	emitter EventEmitter
	sched   *cron.Cron
}

// NewMaintenanceService creates a MaintenanceService.
func NewMaintenanceService(decks *DeckService, emitter EventEmitter) *MaintenanceService {
	return &MaintenanceService{decks: decks, emitter: emitter}
}

// Start schedules the purge to run hourly. It also runs one purge
// immediately so stale trash does not survive short sessions.
func (s *MaintenanceService) Start(ctx context.Context) {
	s.PurgeTrash(ctx)

	c := cron.New()
	if _, err := c.AddFunc("@hourly", func() { s.PurgeTrash(ctx) }); err != nil {
		log.Printf("maintenance: failed to schedule trash purge: %v", err)
		return
	}
	c.Start()
	s.sched = c
}

// Stop halts the scheduler. Safe to call when Start was never called.
func (s *MaintenanceService) Stop() {
	if s.sched != nil {
		s.sched.Stop()
		s.sched = nil
	}
}

// PurgeTrash permanently deletes presentations whose trash timestamp is
// older than the retention window. Returns how many were removed.
func (s *MaintenanceService) PurgeTrash(ctx context.Context) int {
	cutoff := time.Now().Add(-trashRetention)
	purged := 0
	for _, p := range s.decks.Store().ListTrashed() {
		if p.DeletedAt != nil && p.DeletedAt.Before(cutoff) {
			if s.decks.Store().PermanentlyDeletePresentation(p.ID) {
				purged++
			}
		}
	}
	if purged > 0 {
		log.Printf("maintenance: purged %d trashed presentation(s)", purged)
		s.emitter.Emit(ctx, EventDeckTrashPurged, purged)
		s.emitter.Emit(ctx, EventDeckListChanged, nil)
	}
	return purged
}
