package wameow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	waLog "go.mau.fi/whatsmeow/util/log"
	"google.golang.org/protobuf/proto"

	"github.com/Calf7117/whatsapp-antilink-bot/internal/transport"
	"github.com/Calf7117/whatsapp-antilink-bot/internal/wa"

	_ "modernc.org/sqlite"
)

// Client adapts whatsmeow to the transport capability surface. Session
// credentials live in whatsmeow's own sqlite store.
type Client struct {
	logger *slog.Logger
	wm     *whatsmeow.Client
}

func NewClient(ctx context.Context, logger *slog.Logger, dbPath string) (*Client, error) {
	container, err := sqlstore.New(ctx, "sqlite", "file:"+dbPath+"?_pragma=foreign_keys(1)", waLog.Noop)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}
	device, err := container.GetFirstDevice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load device: %w", err)
	}
	return &Client{
		logger: logger,
		wm:     whatsmeow.NewClient(device, waLog.Noop),
	}, nil
}

// Connect establishes the socket, driving QR pairing on a first run. The
// pairing code is logged; whatsmeow handles reconnects after that.
func (c *Client) Connect(ctx context.Context) error {
	if c.wm.Store.ID == nil {
		qrChan, err := c.wm.GetQRChannel(ctx)
		if err != nil {
			return fmt.Errorf("failed to open QR channel: %w", err)
		}
		if err := c.wm.Connect(); err != nil {
			return fmt.Errorf("failed to connect: %w", err)
		}
		for evt := range qrChan {
			if evt.Event == "code" {
				c.logger.Info("Scan QR code to pair", "code", evt.Code)
			} else {
				c.logger.Info("Pairing event", "event", evt.Event)
			}
		}
		return nil
	}
	if err := c.wm.Connect(); err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	return nil
}

func (c *Client) Disconnect() {
	c.wm.Disconnect()
}

func (c *Client) SelfJID() string {
	if c.wm.Store.ID == nil {
		return ""
	}
	return c.wm.Store.ID.String()
}

func (c *Client) SendText(ctx context.Context, groupJID, text string) error {
	jid, err := types.ParseJID(groupJID)
	if err != nil {
		return wrap("send_text", err)
	}
	_, err = c.wm.SendMessage(ctx, jid, &waE2E.Message{Conversation: proto.String(text)})
	return wrap("send_text", err)
}

func (c *Client) DeleteMessage(ctx context.Context, groupJID string, key wa.MessageKey) error {
	chat, err := types.ParseJID(groupJID)
	if err != nil {
		return wrap("delete_message", err)
	}
	sender, err := types.ParseJID(key.Participant)
	if err != nil {
		return wrap("delete_message", err)
	}
	_, err = c.wm.SendMessage(ctx, chat, c.wm.BuildRevoke(chat, sender, key.ID))
	return wrap("delete_message", err)
}

func (c *Client) RemoveParticipant(ctx context.Context, groupJID, participantJID string) error {
	jid, err := types.ParseJID(groupJID)
	if err != nil {
		return wrap("remove_participant", err)
	}
	participant, err := types.ParseJID(participantJID)
	if err != nil {
		return wrap("remove_participant", err)
	}
	_, err = c.wm.UpdateGroupParticipants(ctx, jid, []types.JID{participant}, whatsmeow.ParticipantChangeRemove)
	return wrap("remove_participant", err)
}

func (c *Client) GetGroupAdmins(ctx context.Context, groupJID string) ([]string, error) {
	jid, err := types.ParseJID(groupJID)
	if err != nil {
		return nil, wrap("get_group_admins", err)
	}
	info, err := c.wm.GetGroupInfo(ctx, jid)
	if err != nil {
		return nil, wrap("get_group_admins", err)
	}
	var admins []string
	for _, p := range info.Participants {
		if p.IsAdmin || p.IsSuperAdmin {
			admins = append(admins, p.JID.String())
		}
	}
	return admins, nil
}

// wrap maps whatsmeow failures onto the structured transport codes the
// enforcement loop switches on.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	code := transport.CodeUnknown
	switch {
	case errors.Is(err, whatsmeow.ErrIQRateOverLimit):
		code = transport.CodeRateLimited
	case errors.Is(err, whatsmeow.ErrIQNotAuthorized),
		errors.Is(err, whatsmeow.ErrIQForbidden),
		errors.Is(err, whatsmeow.ErrIQNotAllowed):
		code = transport.CodeForbidden
	}
	return &transport.Error{Op: op, Code: code, Err: err}
}
