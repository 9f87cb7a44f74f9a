package wa

import (
	"strings"
	"time"
)

// Kind is the payload variant of an inbound message. The transport adapter
// assigns exactly one kind per message; everything the rule bank needs to
// know about the payload shape hangs off it.
type Kind int

const (
	KindUnknown Kind = iota
	KindText
	KindImage
	KindVideo
	KindDocument
	KindAudio
	KindVoice
	KindButtons
	KindTemplate
	KindList
	KindInteractive
	KindContact
	KindContactsArray
	KindProduct
	KindCatalog
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindImage:
		return "image"
	case KindVideo:
		return "video"
	case KindDocument:
		return "document"
	case KindAudio:
		return "audio"
	case KindVoice:
		return "voice"
	case KindButtons:
		return "buttons"
	case KindTemplate:
		return "template"
	case KindList:
		return "list"
	case KindInteractive:
		return "interactive"
	case KindContact:
		return "contact"
	case KindContactsArray:
		return "contacts_array"
	case KindProduct:
		return "product"
	case KindCatalog:
		return "catalog"
	default:
		return "unknown"
	}
}

// MessageKey addresses a message for delete-for-everyone.
type MessageKey struct {
	RemoteJID   string
	ID          string
	Participant string
	FromMe      bool
}

type Document struct {
	MimeType string
	FileName string
	Title    string
	Caption  string
}

type Product struct {
	Title        string
	Description  string
	CurrencyCode string
	PriceAmount  int64
	HasImage     bool
}

// Empty reports whether the payload carries none of the fields that make a
// product post real. Placeholder payloads do not count as business posts.
func (p *Product) Empty() bool {
	if p == nil {
		return true
	}
	return p.Title == "" && p.Description == "" && p.CurrencyCode == "" && p.PriceAmount == 0 && !p.HasImage
}

type AdReply struct {
	SourceURL string
	Title     string
}

type Interactive struct {
	Body         string
	Footer       string
	Header       string
	ButtonLabels []string
	ListRows     []string
}

// Message is the engine's projection of an inbound chat message. Nested
// payloads (quoted context, view-once wrappers) are projected recursively by
// the transport adapter so the engine never touches raw protocol structures.
type Message struct {
	Key       MessageKey
	GroupJID  string
	SenderJID string
	PushName  string
	Timestamp time.Time

	Kind        Kind
	Text        string
	Caption     string
	Document    *Document
	Product     *Product
	AdReply     *AdReply
	Interactive *Interactive

	Quoted   *Message
	ViewOnce *Message
}

const groupSuffix = "@g.us"

func (m *Message) IsGroup() bool {
	return m != nil && strings.HasSuffix(m.GroupJID, groupSuffix)
}
