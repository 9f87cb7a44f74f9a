package filters

import (
	"context"
	"strings"
	"time"

	"github.com/Calf7117/whatsapp-antilink-bot/internal/messages"
	"github.com/Calf7117/whatsapp-antilink-bot/internal/pipeline"
	"github.com/Calf7117/whatsapp-antilink-bot/internal/repository"
)

// minDuplicateLen keeps trivial texts ("ok", "?") from ever counting as spam.
const minDuplicateLen = 5

type DuplicateFilter struct {
	repo      repository.DuplicateRepository
	threshold int
}

func NewDuplicateFilter(repo repository.DuplicateRepository, threshold int) *DuplicateFilter {
	return &DuplicateFilter{
		repo:      repo,
		threshold: threshold,
	}
}

func (f *DuplicateFilter) Name() string {
	return "duplicate_filter"
}

func (f *DuplicateFilter) Process(_ context.Context, payload pipeline.Payload) (*pipeline.Result, error) {
	norm := normalizeText(payload.Text)
	if len([]rune(norm)) < minDuplicateLen {
		return &pipeline.Result{}, nil
	}
	count := f.repo.Observe(payload.Msg.GroupJID, payload.Msg.SenderJID, norm, time.Now())
	if count < f.threshold {
		return &pipeline.Result{}, nil
	}
	return &pipeline.Result{
		Fired:      true,
		FilterName: f.Name(),
		Reason:     messages.MsgReasonDuplicate,
	}, nil
}

func normalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
