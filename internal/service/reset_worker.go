package service

import (
	"context"
	"log"
	"time"

	"github.com/6ackpacks/who-is-bot/internal/repository"
)

// ResetWorker zeroes every voter's weekly counters at the Monday 00:00
// UTC boundary. The reset is one bulk UPDATE, so a judgment committing
// around the boundary lands entirely before or entirely after it; no
// partial-reset state is ever visible.
type ResetWorker struct {
	repo   *repository.VoterRepo
	cache  *CacheService
	stopCh chan struct{}

	// now is swappable for tests.
	now func() time.Time
}

// NewResetWorker creates the weekly stats reset worker.
func NewResetWorker(repo *repository.VoterRepo, cache *CacheService) *ResetWorker {
	return &ResetWorker{
		repo:   repo,
		cache:  cache,
		stopCh: make(chan struct{}),
		now:    time.Now,
	}
}

// Start sleeps until each upcoming weekly boundary and runs the reset.
func (w *ResetWorker) Start(ctx context.Context) {
	log.Println("reset-worker: starting")

	for {
		next := NextWeeklyReset(w.now())
		wait := next.Sub(w.now())
		log.Printf("reset-worker: next weekly reset at %s (in %s)", next.Format(time.RFC3339), wait.Round(time.Second))

		select {
		case <-time.After(wait):
			w.runReset(ctx)
		case <-ctx.Done():
			log.Println("reset-worker: stopping (context cancelled)")
			return
		case <-w.stopCh:
			log.Println("reset-worker: stopping (stop signal)")
			return
		}
	}
}

// Stop signals the worker to stop.
func (w *ResetWorker) Stop() {
	close(w.stopCh)
}

func (w *ResetWorker) runReset(ctx context.Context) {
	start := w.now()
	affected, err := w.repo.ResetWeeklyStats(ctx)
	if err != nil {
		log.Printf("reset-worker: weekly reset failed: %v", err)
		return
	}
	log.Printf("reset-worker: weekly reset done, %d voters in %s", affected, time.Since(start).Round(time.Millisecond))

	if w.cache != nil {
		if err := w.cache.InvalidateLeaderboard(ctx); err != nil {
			log.Printf("reset-worker: invalidate leaderboard error: %v", err)
		}
	}
}

// NextWeeklyReset returns the next Monday 00:00 UTC strictly after now.
func NextWeeklyReset(now time.Time) time.Time {
	now = now.UTC()
	daysUntilMonday := (int(time.Monday) - int(now.Weekday()) + 7) % 7
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, daysUntilMonday)
	if !next.After(now) {
		next = next.AddDate(0, 0, 7)
	}
	return next
}
