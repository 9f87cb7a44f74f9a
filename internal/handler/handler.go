package handler

import (
	"context"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Calf7117/whatsapp-antilink-bot/internal/messages"
	"github.com/Calf7117/whatsapp-antilink-bot/internal/service"
	"github.com/Calf7117/whatsapp-antilink-bot/internal/transport"
	"github.com/Calf7117/whatsapp-antilink-bot/internal/wa"
)

type Handler struct {
	logger    *slog.Logger
	svc       service.Service
	transport transport.Client
	tracer    trace.Tracer
}

func NewHandler(logger *slog.Logger, svc service.Service, transportClient transport.Client) *Handler {
	return &Handler{
		logger:    logger,
		svc:       svc,
		transport: transportClient,
		tracer:    otel.Tracer("handler"),
	}
}

// HandleEvents processes one inbound batch in arrival order.
func (h *Handler) HandleEvents(ctx context.Context, msgs []*wa.Message) {
	for _, msg := range msgs {
		h.handleMessage(ctx, msg)
	}
}

func (h *Handler) handleMessage(ctx context.Context, msg *wa.Message) {
	ctx, span := h.tracer.Start(ctx, "HandleMessage")
	defer span.End()

	if !msg.IsGroup() {
		return
	}
	span.SetAttributes(attribute.String("group", msg.GroupJID))

	// The status command is answered for everyone, including the bot's own
	// account and the owner, and is never treated as a violation.
	if strings.EqualFold(strings.TrimSpace(msg.Text), messages.CmdStatus) {
		reply := h.svc.StatusReply(ctx, msg.GroupJID, msg.SenderJID)
		if err := h.transport.SendText(ctx, msg.GroupJID, reply); err != nil {
			h.logger.Error("Failed to send status reply", "group", msg.GroupJID, "error", err)
		}
		return
	}

	if msg.Key.FromMe {
		return
	}
	if h.svc.IsOwner(msg.SenderJID) {
		h.logger.Debug("Owner message, moderation skipped", "sender", msg.SenderJID)
		return
	}

	verdict, err := h.svc.ModerateMessage(ctx, msg)
	if err != nil {
		h.logger.Error("Failed to classify message", "error", err)
		return
	}
	if !verdict.Violation {
		h.logger.Debug("Message allowed", "group", msg.GroupJID, "sender", msg.SenderJID)
		return
	}

	h.logger.Info("Message flagged",
		"group", msg.GroupJID,
		"sender", msg.SenderJID,
		"rules", verdict.Reasons,
	)
	if err := h.svc.HandleViolation(ctx, msg, verdict); err != nil {
		h.logger.Error("Failed to handle violation", "error", err)
	}
}
