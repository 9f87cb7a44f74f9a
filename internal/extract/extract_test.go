package extract

import (
	"testing"

	"github.com/Calf7117/whatsapp-antilink-bot/internal/wa"
)

func TestVisibleText(t *testing.T) {
	tests := []struct {
		name string
		msg  *wa.Message
		want string
	}{
		{
			name: "Nil message",
			msg:  nil,
			want: "",
		},
		{
			name: "Plain text",
			msg:  &wa.Message{Kind: wa.KindText, Text: "hello world"},
			want: "hello world",
		},
		{
			name: "Text with surrounding whitespace",
			msg:  &wa.Message{Kind: wa.KindText, Text: "  hello   world  "},
			want: "hello world",
		},
		{
			name: "Image caption",
			msg:  &wa.Message{Kind: wa.KindImage, Caption: "look at this"},
			want: "look at this",
		},
		{
			name: "Document caption and title",
			msg: &wa.Message{
				Kind: wa.KindDocument,
				Document: &wa.Document{
					Caption: "the file",
					Title:   "report.pdf",
				},
			},
			want: "the file report.pdf",
		},
		{
			name: "Buttons body, footer and labels",
			msg: &wa.Message{
				Kind: wa.KindButtons,
				Interactive: &wa.Interactive{
					Header:       "offer",
					Body:         "click below",
					Footer:       "hurry",
					ButtonLabels: []string{"Buy", "Later"},
				},
			},
			want: "offer click below hurry Buy Later",
		},
		{
			name: "List rows",
			msg: &wa.Message{
				Kind: wa.KindList,
				Interactive: &wa.Interactive{
					Body:     "choose one",
					ListRows: []string{"row a", "row b"},
				},
			},
			want: "choose one row a row b",
		},
		{
			name: "View-once wrapped caption",
			msg: &wa.Message{
				Kind: wa.KindUnknown,
				ViewOnce: &wa.Message{
					Kind:    wa.KindImage,
					Caption: "secret pic",
				},
			},
			want: "secret pic",
		},
		{
			name: "Double view-once wrapping",
			msg: &wa.Message{
				ViewOnce: &wa.Message{
					ViewOnce: &wa.Message{
						Kind:    wa.KindVideo,
						Caption: "deep",
					},
				},
			},
			want: "deep",
		},
		{
			name: "Quoted message one level",
			msg: &wa.Message{
				Kind: wa.KindText,
				Text: "replying",
				Quoted: &wa.Message{
					Kind: wa.KindText,
					Text: "original",
				},
			},
			want: "replying original",
		},
		{
			name: "Quoted recursion stops after one level",
			msg: &wa.Message{
				Kind: wa.KindText,
				Text: "a",
				Quoted: &wa.Message{
					Kind: wa.KindText,
					Text: "b",
					Quoted: &wa.Message{
						Kind: wa.KindText,
						Text: "c",
					},
				},
			},
			want: "a b",
		},
		{
			name: "Empty branches contribute nothing",
			msg: &wa.Message{
				Kind:        wa.KindDocument,
				Document:    &wa.Document{},
				Interactive: &wa.Interactive{ButtonLabels: []string{"", "  "}},
			},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VisibleText(tt.msg); got != tt.want {
				t.Errorf("VisibleText() = %q, want %q", got, tt.want)
			}
		})
	}
}
