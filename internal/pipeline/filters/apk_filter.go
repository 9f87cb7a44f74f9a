package filters

import (
	"context"
	"strings"

	"github.com/Calf7117/whatsapp-antilink-bot/internal/messages"
	"github.com/Calf7117/whatsapp-antilink-bot/internal/pipeline"
)

const apkMimeType = "application/vnd.android.package-archive"

type APKFilter struct{}

func NewAPKFilter() *APKFilter {
	return &APKFilter{}
}

func (f *APKFilter) Name() string {
	return "apk_filter"
}

func (f *APKFilter) Process(_ context.Context, payload pipeline.Payload) (*pipeline.Result, error) {
	doc := payload.Msg.Document
	if doc == nil {
		return &pipeline.Result{}, nil
	}
	if doc.MimeType == apkMimeType || strings.HasSuffix(strings.ToLower(doc.FileName), ".apk") {
		return &pipeline.Result{
			Fired:      true,
			FilterName: f.Name(),
			Reason:     messages.MsgReasonAPK,
		}, nil
	}
	return &pipeline.Result{}, nil
}
