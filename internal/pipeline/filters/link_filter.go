package filters

import (
	"context"
	"regexp"

	"github.com/Calf7117/whatsapp-antilink-bot/internal/messages"
	"github.com/Calf7117/whatsapp-antilink-bot/internal/pipeline"
)

type LinkFilter struct{}

func NewLinkFilter() *LinkFilter {
	return &LinkFilter{}
}

func (f *LinkFilter) Name() string {
	return "link_filter"
}

// urlRegex matches explicit scheme URLs, www. tokens, known short-link hosts
// and bare domain.tld tokens limited to a common-TLD allow-list so ordinary
// sentences with periods do not fire. The whole alternation is bounded on
// both sides; without the trailing boundary a token merely containing a
// hostname prefix (config.ini, t.meredith) would count as a link.
var urlRegex = regexp.MustCompile(`(?i)\b(?:` +
	`https?://[^\s]+` +
	`|www\.[^\s]+` +
	`|(?:bit\.ly|tinyurl\.com|t\.co|goo\.gl|cutt\.ly|rb\.gy|is\.gd|wa\.me|chat\.whatsapp\.com|t\.me)(?:/[^\s]*)?` +
	`|[a-z0-9][a-z0-9-]*\.(?:com|net|org|co|io|me|xyz|info|biz|in|us|uk)(?:/[^\s]*)?` +
	`)\b`)

func (f *LinkFilter) Process(_ context.Context, payload pipeline.Payload) (*pipeline.Result, error) {
	if !urlRegex.MatchString(payload.Text) {
		return &pipeline.Result{}, nil
	}
	return &pipeline.Result{
		Fired:      true,
		FilterName: f.Name(),
		Reason:     messages.MsgReasonLink,
	}, nil
}
