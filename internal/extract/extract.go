package extract

import (
	"strings"

	"github.com/Calf7117/whatsapp-antilink-bot/internal/wa"
)

// maxDepth bounds recursion through view-once wrappers and quoted context so
// a malformed message can never loop the traversal.
const maxDepth = 4

// VisibleText flattens every human-readable fragment of a message into a
// single space-joined, whitespace-normalized string. A missing branch
// contributes nothing; the function never fails.
func VisibleText(m *wa.Message) string {
	var frags []string
	collect(m, maxDepth, false, &frags)
	return strings.Join(strings.Fields(strings.Join(frags, " ")), " ")
}

func collect(m *wa.Message, depth int, inQuote bool, frags *[]string) {
	if m == nil || depth == 0 {
		return
	}

	add(frags, m.Text)
	add(frags, m.Caption)

	if d := m.Document; d != nil {
		add(frags, d.Caption)
		add(frags, d.Title)
	}

	if iv := m.Interactive; iv != nil {
		add(frags, iv.Header)
		add(frags, iv.Body)
		add(frags, iv.Footer)
		for _, label := range iv.ButtonLabels {
			add(frags, label)
		}
		for _, row := range iv.ListRows {
			add(frags, row)
		}
	}

	if m.AdReply != nil {
		add(frags, m.AdReply.Title)
	}

	collect(m.ViewOnce, depth-1, inQuote, frags)

	// Quoted content recurses one level only.
	if !inQuote {
		collect(m.Quoted, depth-1, true, frags)
	}
}

func add(frags *[]string, s string) {
	if s = strings.TrimSpace(s); s != "" {
		*frags = append(*frags, s)
	}
}
