package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Calf7117/whatsapp-antilink-bot/internal/metrics"
	"github.com/Calf7117/whatsapp-antilink-bot/internal/transport"
	"github.com/Calf7117/whatsapp-antilink-bot/internal/wa"
)

// Terminal outcomes of one enforcement cycle.
const (
	outcomeSkipped      = "skipped"
	outcomeDeleted      = "deleted"
	outcomeDeleteFailed = "delete_failed"
	outcomeRemoved      = "removed"
	outcomeRemoveFailed = "remove_failed"
)

// enforce drives one delete-then-maybe-remove cycle for a recorded strike.
// Every failure is handled here; nothing propagates to the event loop and
// the strike is never rolled back.
func (s *ModerationService) enforce(ctx context.Context, msg *wa.Message, strikes int) {
	ctx, span := s.tracer.Start(ctx, "Enforce")
	defer span.End()

	start := time.Now()
	log := s.logger.With(
		"cycle_id", uuid.NewString(),
		"group", msg.GroupJID,
		"sender", msg.SenderJID,
		"strikes", strikes,
	)

	if s.adminCacheRepo.IsNotAdmin(msg.GroupJID, time.Now()) {
		log.Debug("Skipping enforcement, bot recently lacked delete rights in group")
		metrics.ObserveEnforcement(outcomeSkipped, time.Since(start).Seconds())
		return
	}

	deleted, forbidden := s.deleteWithRetry(ctx, msg, log)
	outcome := outcomeDeleteFailed
	if deleted {
		outcome = outcomeDeleted
		metrics.IncDeletedMessages("violation")
	}

	// Removal runs only after the delete loop has finished. A forbidden
	// delete means the bot is not a group admin, so asking it to evict the
	// sender would fail the same way.
	if strikes >= s.cfg.RemovalThreshold && !forbidden {
		outcome = s.removeParticipant(ctx, msg, log)
	}

	metrics.ObserveEnforcement(outcome, time.Since(start).Seconds())
}

// deleteWithRetry attempts delete-for-everyone up to the configured cap.
// Rate limits back off and retry, a permission failure poisons the per-group
// not-admin cache and stops, anything else stops without caching.
func (s *ModerationService) deleteWithRetry(ctx context.Context, msg *wa.Message, log *slog.Logger) (deleted, forbidden bool) {
	for attempt := 1; attempt <= s.cfg.DeleteAttempts; attempt++ {
		err := s.transport.DeleteMessage(ctx, msg.GroupJID, msg.Key)
		if err == nil {
			log.Info("Deleted message", "message_id", msg.Key.ID, "attempt", attempt)
			return true, false
		}

		switch transport.CodeOf(err) {
		case transport.CodeRateLimited:
			if attempt == s.cfg.DeleteAttempts {
				log.Warn("Delete abandoned after rate limits", "attempts", attempt, "error", err)
				return false, false
			}
			delay := time.Duration(attempt) * s.cfg.DeleteBackoff
			log.Warn("Delete rate limited, backing off", "attempt", attempt, "delay", delay)
			time.Sleep(delay)
		case transport.CodeForbidden:
			log.Warn("Delete forbidden, caching not-admin for group", "error", err)
			s.adminCacheRepo.MarkNotAdmin(msg.GroupJID, time.Now())
			return false, true
		default:
			log.Error("Delete failed", "attempt", attempt, "error", err)
			return false, false
		}
	}
	return false, false
}

func (s *ModerationService) removeParticipant(ctx context.Context, msg *wa.Message, log *slog.Logger) string {
	// Give the revoke a moment to propagate before the second group call.
	time.Sleep(s.cfg.RemovalDelay)

	if err := s.transport.RemoveParticipant(ctx, msg.GroupJID, msg.SenderJID); err != nil {
		// Ledger entry stays so the next violation retries the removal.
		log.Error("Failed to remove participant", "error", err)
		metrics.IncRemoval(outcomeRemoveFailed)
		return outcomeRemoveFailed
	}

	s.strikeRepo.Clear(msg.GroupJID, msg.SenderJID)
	metrics.IncRemoval(outcomeRemoved)
	log.Info("Removed participant after repeated violations")
	return outcomeRemoved
}
