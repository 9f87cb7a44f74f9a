package filters

import (
	"context"

	"github.com/Calf7117/whatsapp-antilink-bot/internal/messages"
	"github.com/Calf7117/whatsapp-antilink-bot/internal/pipeline"
	"github.com/Calf7117/whatsapp-antilink-bot/internal/wa"
)

// ButtonsFilter is a structural check: regular accounts do not send
// button/template/list payloads, broadcast tooling does.
type ButtonsFilter struct{}

func NewButtonsFilter() *ButtonsFilter {
	return &ButtonsFilter{}
}

func (f *ButtonsFilter) Name() string {
	return "buttons_filter"
}

func (f *ButtonsFilter) Process(_ context.Context, payload pipeline.Payload) (*pipeline.Result, error) {
	switch payload.Msg.Kind {
	case wa.KindButtons, wa.KindTemplate, wa.KindList, wa.KindInteractive:
		return &pipeline.Result{
			Fired:      true,
			FilterName: f.Name(),
			Reason:     messages.MsgReasonButtons,
		}, nil
	}
	return &pipeline.Result{}, nil
}
