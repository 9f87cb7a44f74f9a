package service

import (
	"context"
	"sync"

	"github.com/Calf7117/whatsapp-antilink-bot/internal/wa"
)

type MockTransport struct {
	mu sync.Mutex

	SendTextFunc          func(ctx context.Context, groupJID, text string) error
	DeleteMessageFunc     func(ctx context.Context, groupJID string, key wa.MessageKey) error
	RemoveParticipantFunc func(ctx context.Context, groupJID, participantJID string) error
	GetGroupAdminsFunc    func(ctx context.Context, groupJID string) ([]string, error)

	SendCalls   int
	DeleteCalls int
	RemoveCalls int
	AdminCalls  int

	SentTexts []string
}

func (m *MockTransport) SendText(ctx context.Context, groupJID, text string) error {
	m.mu.Lock()
	m.SendCalls++
	m.SentTexts = append(m.SentTexts, text)
	m.mu.Unlock()
	if m.SendTextFunc != nil {
		return m.SendTextFunc(ctx, groupJID, text)
	}
	return nil
}

func (m *MockTransport) DeleteMessage(ctx context.Context, groupJID string, key wa.MessageKey) error {
	m.mu.Lock()
	m.DeleteCalls++
	m.mu.Unlock()
	if m.DeleteMessageFunc != nil {
		return m.DeleteMessageFunc(ctx, groupJID, key)
	}
	return nil
}

func (m *MockTransport) RemoveParticipant(ctx context.Context, groupJID, participantJID string) error {
	m.mu.Lock()
	m.RemoveCalls++
	m.mu.Unlock()
	if m.RemoveParticipantFunc != nil {
		return m.RemoveParticipantFunc(ctx, groupJID, participantJID)
	}
	return nil
}

func (m *MockTransport) GetGroupAdmins(ctx context.Context, groupJID string) ([]string, error) {
	m.mu.Lock()
	m.AdminCalls++
	m.mu.Unlock()
	if m.GetGroupAdminsFunc != nil {
		return m.GetGroupAdminsFunc(ctx, groupJID)
	}
	return nil, nil
}
