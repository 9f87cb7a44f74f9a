package filters

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/Calf7117/whatsapp-antilink-bot/internal/messages"
	"github.com/Calf7117/whatsapp-antilink-bot/internal/pipeline"
	"github.com/Calf7117/whatsapp-antilink-bot/internal/wa"
)

var audioExtensions = map[string]bool{
	".mp3":  true,
	".m4a":  true,
	".aac":  true,
	".ogg":  true,
	".opus": true,
	".wav":  true,
	".flac": true,
	".amr":  true,
	".wma":  true,
}

type AudioFilter struct{}

func NewAudioFilter() *AudioFilter {
	return &AudioFilter{}
}

func (f *AudioFilter) Name() string {
	return "audio_filter"
}

func (f *AudioFilter) Process(_ context.Context, payload pipeline.Payload) (*pipeline.Result, error) {
	if isAudio(payload.Msg) {
		return &pipeline.Result{
			Fired:      true,
			FilterName: f.Name(),
			Reason:     messages.MsgReasonAudio,
		}, nil
	}
	return &pipeline.Result{}, nil
}

func isAudio(m *wa.Message) bool {
	if m == nil {
		return false
	}
	if m.Kind == wa.KindAudio || m.Kind == wa.KindVoice {
		return true
	}
	// View-once wrapped voice notes still count.
	if isAudio(m.ViewOnce) {
		return true
	}
	if doc := m.Document; doc != nil {
		if strings.HasPrefix(doc.MimeType, "audio/") {
			return true
		}
		if audioExtensions[strings.ToLower(filepath.Ext(doc.FileName))] {
			return true
		}
	}
	return false
}
