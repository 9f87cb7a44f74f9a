package filters

import (
	"context"

	"github.com/Calf7117/whatsapp-antilink-bot/internal/messages"
	"github.com/Calf7117/whatsapp-antilink-bot/internal/pipeline"
	"github.com/Calf7117/whatsapp-antilink-bot/internal/wa"
)

type ContactFilter struct{}

func NewContactFilter() *ContactFilter {
	return &ContactFilter{}
}

func (f *ContactFilter) Name() string {
	return "contact_filter"
}

func (f *ContactFilter) Process(_ context.Context, payload pipeline.Payload) (*pipeline.Result, error) {
	msg := payload.Msg
	if isContact(msg) || isContact(msg.Quoted) || isContact(msg.ViewOnce) {
		return &pipeline.Result{
			Fired:      true,
			FilterName: f.Name(),
			Reason:     messages.MsgReasonContact,
		}, nil
	}
	return &pipeline.Result{}, nil
}

func isContact(m *wa.Message) bool {
	return m != nil && (m.Kind == wa.KindContact || m.Kind == wa.KindContactsArray)
}
