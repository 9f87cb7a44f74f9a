package transport

import (
	"context"
	"errors"
	"fmt"

	"github.com/Calf7117/whatsapp-antilink-bot/internal/wa"
)

// Code classifies a transport failure so callers never have to match on
// backend error text.
type Code int

const (
	CodeUnknown Code = iota
	CodeRateLimited
	CodeForbidden
)

func (c Code) String() string {
	switch c {
	case CodeRateLimited:
		return "rate_limited"
	case CodeForbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

type Error struct {
	Op   string
	Code Code
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("transport %s (%s): %v", e.Op, e.Code, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// CodeOf extracts the failure class from any error chain.
func CodeOf(err error) Code {
	var te *Error
	if errors.As(err, &te) {
		return te.Code
	}
	return CodeUnknown
}

// Client is the capability surface the engine needs from the chat backend.
// Connecting, pairing and credential storage belong to the adapter behind it.
type Client interface {
	SendText(ctx context.Context, groupJID, text string) error
	DeleteMessage(ctx context.Context, groupJID string, key wa.MessageKey) error
	RemoveParticipant(ctx context.Context, groupJID, participantJID string) error
	GetGroupAdmins(ctx context.Context, groupJID string) ([]string, error)
}
