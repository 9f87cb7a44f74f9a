package pipeline

import (
	"fmt"

	"github.com/Calf7117/whatsapp-antilink-bot/internal/wa"
)

// Payload carries the message view plus its pre-flattened visible text so
// every text filter works on the same input.
type Payload struct {
	Msg  *wa.Message
	Text string
}

func (p Payload) SenderKey() string {
	return fmt.Sprintf("%s:%s", p.Msg.GroupJID, p.Msg.SenderJID)
}
