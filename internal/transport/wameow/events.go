package wameow

import (
	"context"

	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/types/events"

	"github.com/Calf7117/whatsapp-antilink-bot/internal/wa"
)

// OnMessages routes inbound message events to the handler as one-element
// batches. Connection lifecycle events are logged only; whatsmeow owns
// reconnection.
func (c *Client) OnMessages(handler func(ctx context.Context, msgs []*wa.Message)) {
	c.wm.AddEventHandler(func(evt interface{}) {
		switch v := evt.(type) {
		case *events.Message:
			if msg := ProjectMessage(v); msg != nil {
				handler(context.Background(), []*wa.Message{msg})
			}
		case *events.Connected:
			c.logger.Info("Connected to WhatsApp", "jid", c.SelfJID())
		case *events.Disconnected:
			c.logger.Warn("Disconnected from WhatsApp")
		case *events.LoggedOut:
			c.logger.Error("Logged out, delete the session store and re-pair")
		}
	})
}

// ProjectMessage converts a raw event into the engine's message view. The
// generated proto accessors are nil-safe, so a partial or undecryptable
// payload degrades to KindUnknown with empty fields instead of panicking.
func ProjectMessage(evt *events.Message) *wa.Message {
	if evt == nil {
		return nil
	}
	info := evt.Info
	m := projectPayload(evt.Message)
	if m == nil {
		m = &wa.Message{Kind: wa.KindUnknown}
	}
	m.Key = wa.MessageKey{
		RemoteJID:   info.Chat.String(),
		ID:          info.ID,
		Participant: info.Sender.String(),
		FromMe:      info.IsFromMe,
	}
	m.GroupJID = info.Chat.String()
	m.SenderJID = info.Sender.String()
	m.PushName = info.PushName
	m.Timestamp = info.Timestamp
	return m
}

// projectPayload maps exactly one payload variant per message. Wrappers
// (ephemeral, view-once) recurse into their inner payload.
func projectPayload(msg *waE2E.Message) *wa.Message {
	if msg == nil {
		return nil
	}

	// Ephemeral wrapping is transparent: moderate what the user sees.
	if eph := msg.GetEphemeralMessage(); eph != nil {
		return projectPayload(eph.GetMessage())
	}

	m := &wa.Message{Kind: wa.KindUnknown}

	switch {
	case msg.GetConversation() != "":
		m.Kind = wa.KindText
		m.Text = msg.GetConversation()

	case msg.GetExtendedTextMessage() != nil:
		ext := msg.GetExtendedTextMessage()
		m.Kind = wa.KindText
		m.Text = ext.GetText()
		applyContext(m, ext.GetContextInfo())

	case msg.GetImageMessage() != nil:
		img := msg.GetImageMessage()
		m.Kind = wa.KindImage
		m.Caption = img.GetCaption()
		applyContext(m, img.GetContextInfo())

	case msg.GetVideoMessage() != nil:
		vid := msg.GetVideoMessage()
		m.Kind = wa.KindVideo
		m.Caption = vid.GetCaption()
		applyContext(m, vid.GetContextInfo())

	case msg.GetDocumentMessage() != nil:
		doc := msg.GetDocumentMessage()
		m.Kind = wa.KindDocument
		m.Document = &wa.Document{
			MimeType: doc.GetMimetype(),
			FileName: doc.GetFileName(),
			Title:    doc.GetTitle(),
			Caption:  doc.GetCaption(),
		}
		applyContext(m, doc.GetContextInfo())

	case msg.GetAudioMessage() != nil:
		if msg.GetAudioMessage().GetPTT() {
			m.Kind = wa.KindVoice
		} else {
			m.Kind = wa.KindAudio
		}

	case msg.GetButtonsMessage() != nil:
		btn := msg.GetButtonsMessage()
		m.Kind = wa.KindButtons
		iv := &wa.Interactive{
			Body:   btn.GetContentText(),
			Footer: btn.GetFooterText(),
		}
		for _, b := range btn.GetButtons() {
			iv.ButtonLabels = append(iv.ButtonLabels, b.GetButtonText().GetDisplayText())
		}
		m.Interactive = iv
		applyContext(m, btn.GetContextInfo())

	case msg.GetTemplateMessage() != nil:
		tpl := msg.GetTemplateMessage().GetHydratedTemplate()
		m.Kind = wa.KindTemplate
		iv := &wa.Interactive{
			Body:   tpl.GetHydratedContentText(),
			Footer: tpl.GetHydratedFooterText(),
		}
		for _, b := range tpl.GetHydratedButtons() {
			switch {
			case b.GetQuickReplyButton() != nil:
				iv.ButtonLabels = append(iv.ButtonLabels, b.GetQuickReplyButton().GetDisplayText())
			case b.GetUrlButton() != nil:
				iv.ButtonLabels = append(iv.ButtonLabels, b.GetUrlButton().GetDisplayText())
			case b.GetCallButton() != nil:
				iv.ButtonLabels = append(iv.ButtonLabels, b.GetCallButton().GetDisplayText())
			}
		}
		m.Interactive = iv

	case msg.GetListMessage() != nil:
		list := msg.GetListMessage()
		m.Kind = wa.KindList
		iv := &wa.Interactive{
			Header: list.GetTitle(),
			Body:   list.GetDescription(),
			Footer: list.GetFooterText(),
		}
		for _, section := range list.GetSections() {
			if t := section.GetTitle(); t != "" {
				iv.ListRows = append(iv.ListRows, t)
			}
			for _, row := range section.GetRows() {
				iv.ListRows = append(iv.ListRows, row.GetTitle(), row.GetDescription())
			}
		}
		m.Interactive = iv

	case msg.GetInteractiveMessage() != nil:
		ia := msg.GetInteractiveMessage()
		m.Kind = wa.KindInteractive
		m.Interactive = &wa.Interactive{
			Header: ia.GetHeader().GetTitle(),
			Body:   ia.GetBody().GetText(),
			Footer: ia.GetFooter().GetText(),
		}

	case msg.GetContactMessage() != nil:
		m.Kind = wa.KindContact
		applyContext(m, msg.GetContactMessage().GetContextInfo())

	case msg.GetContactsArrayMessage() != nil:
		m.Kind = wa.KindContactsArray
		applyContext(m, msg.GetContactsArrayMessage().GetContextInfo())

	case msg.GetProductMessage() != nil:
		pm := msg.GetProductMessage()
		if cat := pm.GetCatalog(); pm.GetProduct() == nil && cat != nil {
			m.Kind = wa.KindCatalog
			m.Product = &wa.Product{
				Title:       cat.GetTitle(),
				Description: cat.GetDescription(),
				HasImage:    cat.GetCatalogImage() != nil,
			}
		} else {
			prod := pm.GetProduct()
			m.Kind = wa.KindProduct
			m.Product = &wa.Product{
				Title:        prod.GetTitle(),
				Description:  prod.GetDescription(),
				CurrencyCode: prod.GetCurrencyCode(),
				PriceAmount:  prod.GetPriceAmount1000(),
				HasImage:     prod.GetProductImage() != nil,
			}
		}
		applyContext(m, pm.GetContextInfo())

	case msg.GetViewOnceMessage() != nil:
		m.ViewOnce = projectPayload(msg.GetViewOnceMessage().GetMessage())

	case msg.GetViewOnceMessageV2() != nil:
		m.ViewOnce = projectPayload(msg.GetViewOnceMessageV2().GetMessage())

	case msg.GetViewOnceMessageV2Extension() != nil:
		m.ViewOnce = projectPayload(msg.GetViewOnceMessageV2Extension().GetMessage())
	}

	return m
}

// applyContext pulls the quoted message (one level) and any external ad
// reply preview out of a payload's context info.
func applyContext(m *wa.Message, ci *waE2E.ContextInfo) {
	if ci == nil {
		return
	}
	if quoted := ci.GetQuotedMessage(); quoted != nil && m.Quoted == nil {
		m.Quoted = projectPayload(quoted)
	}
	if ad := ci.GetExternalAdReply(); ad != nil && m.AdReply == nil {
		m.AdReply = &wa.AdReply{
			SourceURL: ad.GetSourceURL(),
			Title:     ad.GetTitle(),
		}
	}
}
