package service

import (
	"context"
	"time"
)

// duplicateMaxAgeMultiplier: tracker entries survive a few windows so a
// near-boundary repeat is still caught, then get garbage-collected.
const duplicateMaxAgeMultiplier = 3

// StartSweeper runs the periodic purge of stale duplicate-tracker and
// not-admin cache entries. It runs concurrently with message processing;
// both stores do their own locking.
func (s *ModerationService) StartSweeper(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.SweepInterval)

	sweep := func() {
		now := time.Now()
		dup := s.duplicateRepo.Sweep(now, duplicateMaxAgeMultiplier*s.cfg.DuplicateWindow)
		cache := s.adminCacheRepo.Sweep(now)
		if dup+cache > 0 {
			s.logger.Debug("Swept stale entries", "duplicates", dup, "admin_cache", cache)
		}
	}

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sweep()
			}
		}
	}()
}
