package filters

import (
	"context"
	"strings"

	"github.com/Calf7117/whatsapp-antilink-bot/internal/messages"
	"github.com/Calf7117/whatsapp-antilink-bot/internal/pipeline"
)

var zipMimeTypes = map[string]bool{
	"application/zip":              true,
	"application/x-zip-compressed": true,
	"application/zip-compressed":   true,
}

type ArchiveFilter struct{}

func NewArchiveFilter() *ArchiveFilter {
	return &ArchiveFilter{}
}

func (f *ArchiveFilter) Name() string {
	return "archive_filter"
}

func (f *ArchiveFilter) Process(_ context.Context, payload pipeline.Payload) (*pipeline.Result, error) {
	doc := payload.Msg.Document
	if doc == nil {
		return &pipeline.Result{}, nil
	}
	name := strings.ToLower(doc.FileName)
	title := strings.ToLower(doc.Title)
	if zipMimeTypes[doc.MimeType] || strings.HasSuffix(name, ".zip") || strings.HasSuffix(title, ".zip") {
		return &pipeline.Result{
			Fired:      true,
			FilterName: f.Name(),
			Reason:     messages.MsgReasonArchive,
		}, nil
	}
	return &pipeline.Result{}, nil
}
