package filters

import (
	"context"
	"regexp"

	"github.com/Calf7117/whatsapp-antilink-bot/internal/messages"
	"github.com/Calf7117/whatsapp-antilink-bot/internal/pipeline"
)

type PhoneFilter struct{}

func NewPhoneFilter() *PhoneFilter {
	return &PhoneFilter{}
}

func (f *PhoneFilter) Name() string {
	return "phone_filter"
}

// Nine consecutive digits is the shortest run that reads as a phone number
// rather than a price or a date.
var digitRunRegex = regexp.MustCompile(`[0-9]{9,}`)

func (f *PhoneFilter) Process(_ context.Context, payload pipeline.Payload) (*pipeline.Result, error) {
	if !digitRunRegex.MatchString(payload.Text) {
		return &pipeline.Result{}, nil
	}
	return &pipeline.Result{
		Fired:      true,
		FilterName: f.Name(),
		Reason:     messages.MsgReasonPhone,
	}, nil
}
