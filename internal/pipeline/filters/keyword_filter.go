package filters

import (
	"context"
	"regexp"
	"strings"

	"github.com/Calf7117/whatsapp-antilink-bot/internal/messages"
	"github.com/Calf7117/whatsapp-antilink-bot/internal/pipeline"
)

// denylist covers the solicitation, commerce and adult terms the bot blocks
// in every group. Matched as whole words, case-insensitively.
var denylist = []string{
	"for sale",
	"buy now",
	"promo",
	"discount",
	"invest",
	"investment",
	"forex",
	"bitcoin",
	"crypto",
	"loan",
	"casino",
	"lottery",
	"jackpot",
	"mpesa",
	"till number",
	"paybill",
	"dm me",
	"inbox me",
	"earn money",
	"quick cash",
	"porn",
	"xxx",
}

var keywordRegex = buildKeywordRegex(denylist)

func buildKeywordRegex(words []string) *regexp.Regexp {
	escaped := make([]string, 0, len(words))
	for _, w := range words {
		escaped = append(escaped, regexp.QuoteMeta(w))
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(escaped, "|") + `)\b`)
}

type KeywordFilter struct{}

func NewKeywordFilter() *KeywordFilter {
	return &KeywordFilter{}
}

func (f *KeywordFilter) Name() string {
	return "keyword_filter"
}

func (f *KeywordFilter) Process(_ context.Context, payload pipeline.Payload) (*pipeline.Result, error) {
	if !keywordRegex.MatchString(payload.Text) {
		return &pipeline.Result{}, nil
	}
	return &pipeline.Result{
		Fired:      true,
		FilterName: f.Name(),
		Reason:     messages.MsgReasonKeyword,
	}, nil
}
