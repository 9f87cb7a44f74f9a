package filters

import (
	"context"
	"regexp"

	"github.com/Calf7117/whatsapp-antilink-bot/internal/messages"
	"github.com/Calf7117/whatsapp-antilink-bot/internal/pipeline"
)

// catalogURLRegex spots ad-reply previews pointing at catalog pages or the
// short-link hosts commerce spam leans on.
var catalogURLRegex = regexp.MustCompile(`(?i)(?:wa\.me/c/|/catalog|catalog\.|bit\.ly|tinyurl\.com|cutt\.ly)`)

type BusinessFilter struct{}

func NewBusinessFilter() *BusinessFilter {
	return &BusinessFilter{}
}

func (f *BusinessFilter) Name() string {
	return "business_filter"
}

func (f *BusinessFilter) Process(_ context.Context, payload pipeline.Payload) (*pipeline.Result, error) {
	msg := payload.Msg
	fired := !msg.Product.Empty()
	if !fired && msg.AdReply != nil {
		fired = catalogURLRegex.MatchString(msg.AdReply.SourceURL)
	}
	if !fired {
		return &pipeline.Result{}, nil
	}
	return &pipeline.Result{
		Fired:      true,
		FilterName: f.Name(),
		Reason:     messages.MsgReasonBusiness,
	}, nil
}
