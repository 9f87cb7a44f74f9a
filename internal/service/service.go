package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/Calf7117/whatsapp-antilink-bot/internal/config"
	"github.com/Calf7117/whatsapp-antilink-bot/internal/extract"
	"github.com/Calf7117/whatsapp-antilink-bot/internal/identity"
	"github.com/Calf7117/whatsapp-antilink-bot/internal/messages"
	"github.com/Calf7117/whatsapp-antilink-bot/internal/metrics"
	"github.com/Calf7117/whatsapp-antilink-bot/internal/pipeline"
	"github.com/Calf7117/whatsapp-antilink-bot/internal/pipeline/filters"
	"github.com/Calf7117/whatsapp-antilink-bot/internal/repository"
	"github.com/Calf7117/whatsapp-antilink-bot/internal/transport"
	"github.com/Calf7117/whatsapp-antilink-bot/internal/wa"
)

type Service interface {
	ModerateMessage(ctx context.Context, msg *wa.Message) (*pipeline.Verdict, error)
	HandleViolation(ctx context.Context, msg *wa.Message, verdict *pipeline.Verdict) error
	StatusReply(ctx context.Context, groupJID, senderJID string) string
	IsOwner(senderJID string) bool
	IsGroupAdmin(ctx context.Context, groupJID, senderJID string) (bool, error)
	StartSweeper(ctx context.Context)
	StartMetricsUpdater(ctx context.Context)
}

type ModerationService struct {
	logger         *slog.Logger
	cfg            *config.Config
	resolver       *identity.Resolver
	strikeRepo     repository.StrikeRepository
	duplicateRepo  repository.DuplicateRepository
	adminCacheRepo repository.AdminCacheRepository
	pipeline       *pipeline.Manager
	transport      transport.Client
	tracer         trace.Tracer
	locks          *keyedMutex
}

func NewModerationService(
	logger *slog.Logger,
	cfg *config.Config,
	transportClient transport.Client,
	strikeRepo repository.StrikeRepository,
	duplicateRepo repository.DuplicateRepository,
	adminCacheRepo repository.AdminCacheRepository,
) Service {

	var bank []pipeline.Filter
	if cfg.EnableLinkFilter {
		bank = append(bank, filters.NewLinkFilter())
	}
	if cfg.EnablePhoneFilter {
		bank = append(bank, filters.NewPhoneFilter())
	}
	if cfg.EnableAPKFilter {
		bank = append(bank, filters.NewAPKFilter())
	}
	if cfg.EnableArchiveFilter {
		bank = append(bank, filters.NewArchiveFilter())
	}
	if cfg.EnableAudioFilter {
		bank = append(bank, filters.NewAudioFilter())
	}
	if cfg.EnableBusinessFilter {
		bank = append(bank, filters.NewBusinessFilter())
	}
	if cfg.EnableKeywordFilter {
		bank = append(bank, filters.NewKeywordFilter())
	}
	if cfg.EnableButtonsFilter {
		bank = append(bank, filters.NewButtonsFilter())
	}
	if cfg.EnableContactFilter {
		bank = append(bank, filters.NewContactFilter())
	}
	if cfg.EnableDuplicateFilter {
		bank = append(bank, filters.NewDuplicateFilter(duplicateRepo, cfg.DuplicateThreshold))
	}

	return &ModerationService{
		logger:         logger,
		cfg:            cfg,
		resolver:       identity.NewResolver(cfg.OwnerNumber),
		strikeRepo:     strikeRepo,
		duplicateRepo:  duplicateRepo,
		adminCacheRepo: adminCacheRepo,
		pipeline:       pipeline.NewManager(bank...),
		transport:      transportClient,
		tracer:         otel.Tracer("service"),
		locks:          newKeyedMutex(),
	}
}

func (s *ModerationService) ModerateMessage(ctx context.Context, msg *wa.Message) (*pipeline.Verdict, error) {
	ctx, span := s.tracer.Start(ctx, "ModerateMessage")
	defer span.End()

	payload := pipeline.Payload{
		Msg:  msg,
		Text: extract.VisibleText(msg),
	}
	s.logger.Debug("Moderating message", "group", msg.GroupJID, "sender", msg.SenderJID, "kind", msg.Kind.String())
	return s.pipeline.Process(ctx, payload), nil
}

// HandleViolation records the strike and runs one enforcement cycle. Strike
// increment and enforcement are serialized per (group, sender) so concurrent
// violations from one user cannot race past the removal threshold.
func (s *ModerationService) HandleViolation(ctx context.Context, msg *wa.Message, verdict *pipeline.Verdict) error {
	ctx, span := s.tracer.Start(ctx, "HandleViolation")
	defer span.End()

	key := msg.GroupJID + "|" + msg.SenderJID
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	count := s.strikeRepo.Increment(msg.GroupJID, msg.SenderJID)
	for _, rule := range verdict.Reasons {
		metrics.IncViolation(rule)
	}
	s.logger.Info("Violation recorded",
		"group", msg.GroupJID,
		"sender", msg.SenderJID,
		"rules", verdict.Reasons,
		"strikes", count,
	)

	s.enforce(ctx, msg, count)
	return nil
}

func (s *ModerationService) IsOwner(senderJID string) bool {
	return s.resolver.IsOwner(senderJID)
}

func (s *ModerationService) IsGroupAdmin(ctx context.Context, groupJID, senderJID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "IsGroupAdmin")
	defer span.End()

	admins, err := s.transport.GetGroupAdmins(ctx, groupJID)
	if err != nil {
		return false, fmt.Errorf("failed to get group admins: %w", err)
	}
	sender := identity.NormalizeJID(senderJID)
	for _, admin := range admins {
		if identity.NormalizeJID(admin) == sender {
			return true, nil
		}
	}
	return false, nil
}

// StatusReply builds the !bot response. The wording discloses whether the
// asking sender is exempt; an admin-lookup failure degrades to the member
// wording rather than blocking the reply.
func (s *ModerationService) StatusReply(ctx context.Context, groupJID, senderJID string) string {
	ctx, span := s.tracer.Start(ctx, "StatusReply")
	defer span.End()

	if s.resolver.IsOwner(senderJID) {
		return fmt.Sprintf(messages.MsgStatusOwner, s.cfg.OwnerNumber)
	}
	isAdmin, err := s.IsGroupAdmin(ctx, groupJID, senderJID)
	if err != nil {
		s.logger.Warn("Failed to check admin status for status reply", "error", err)
	}
	if isAdmin {
		return fmt.Sprintf(messages.MsgStatusAdmin, s.cfg.OwnerNumber)
	}
	return fmt.Sprintf(messages.MsgStatusMember, s.cfg.OwnerNumber)
}

func (s *ModerationService) StartMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Minute)

	update := func() {
		metrics.SetActiveStrikes(float64(s.strikeRepo.ActiveCount()))
	}

	go update()

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				update()
			}
		}
	}()
}
