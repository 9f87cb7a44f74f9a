package service

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestModerateMessage_MultipleRulesCollected(t *testing.T) {
	env := newTestEnv(testConfig(), &MockTransport{})

	msg := groupMsg("invest now at www.example.com call 254700112233")
	verdict, err := env.svc.ModerateMessage(context.Background(), msg)
	if err != nil {
		t.Fatalf("ModerateMessage() error = %v", err)
	}
	if !verdict.Violation {
		t.Fatal("expected violation")
	}
	want := []string{"link_filter", "phone_filter", "keyword_filter"}
	if len(verdict.Reasons) != len(want) {
		t.Fatalf("reasons = %v, want %v", verdict.Reasons, want)
	}
	for i := range want {
		if verdict.Reasons[i] != want[i] {
			t.Errorf("reasons[%d] = %v, want %v", i, verdict.Reasons[i], want[i])
		}
	}
}

func TestModerateMessage_DisabledFilterDoesNotRun(t *testing.T) {
	cfg := testConfig()
	cfg.EnableLinkFilter = false
	env := newTestEnv(cfg, &MockTransport{})

	verdict, err := env.svc.ModerateMessage(context.Background(), groupMsg("www.example.com"))
	if err != nil {
		t.Fatalf("ModerateMessage() error = %v", err)
	}
	if verdict.Violation {
		t.Errorf("disabled link filter should not fire, got reasons %v", verdict.Reasons)
	}
}

func TestModerateMessage_BenignMessage(t *testing.T) {
	env := newTestEnv(testConfig(), &MockTransport{})

	verdict, err := env.svc.ModerateMessage(context.Background(), groupMsg("good morning everyone"))
	if err != nil {
		t.Fatalf("ModerateMessage() error = %v", err)
	}
	if verdict.Violation {
		t.Errorf("expected benign verdict, got reasons %v", verdict.Reasons)
	}
}

func TestIsGroupAdmin(t *testing.T) {
	tests := []struct {
		name      string
		admins    []string
		adminsErr error
		sender    string
		want      bool
		wantErr   bool
	}{
		{
			name:   "Sender is admin",
			admins: []string{"254700000001@s.whatsapp.net", "254700000002@s.whatsapp.net"},
			sender: "254700000001:7@s.whatsapp.net",
			want:   true,
		},
		{
			name:   "Sender is not admin",
			admins: []string{"254700000002@s.whatsapp.net"},
			sender: "254700000001@s.whatsapp.net",
			want:   false,
		},
		{
			name:      "Metadata fetch failure fails closed",
			adminsErr: errors.New("metadata unavailable"),
			sender:    "254700000001@s.whatsapp.net",
			want:      false,
			wantErr:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &MockTransport{
				GetGroupAdminsFunc: func(_ context.Context, _ string) ([]string, error) {
					return tt.admins, tt.adminsErr
				},
			}
			env := newTestEnv(testConfig(), tr)

			got, err := env.svc.IsGroupAdmin(context.Background(), "group-1@g.us", tt.sender)
			if (err != nil) != tt.wantErr {
				t.Fatalf("IsGroupAdmin() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("IsGroupAdmin() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusReply(t *testing.T) {
	tests := []struct {
		name     string
		sender   string
		admins   []string
		adminErr error
		contains string
	}{
		{
			name:     "Owner wording",
			sender:   "254106090661@s.whatsapp.net",
			contains: "exempt",
		},
		{
			name:     "Admin wording",
			sender:   "254700000001@s.whatsapp.net",
			admins:   []string{"254700000001@s.whatsapp.net"},
			contains: "group admin",
		},
		{
			name:     "Member wording",
			sender:   "254700000001@s.whatsapp.net",
			admins:   []string{"254700000002@s.whatsapp.net"},
			contains: "monitoring",
		},
		{
			name:     "Admin lookup failure degrades to member wording",
			sender:   "254700000001@s.whatsapp.net",
			adminErr: errors.New("metadata unavailable"),
			contains: "monitoring",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &MockTransport{
				GetGroupAdminsFunc: func(_ context.Context, _ string) ([]string, error) {
					return tt.admins, tt.adminErr
				},
			}
			env := newTestEnv(testConfig(), tr)

			reply := env.svc.StatusReply(context.Background(), "group-1@g.us", tt.sender)
			if !strings.Contains(reply, tt.contains) {
				t.Errorf("StatusReply() = %q, want it to contain %q", reply, tt.contains)
			}
			if !strings.Contains(reply, "254106090661") {
				t.Errorf("StatusReply() = %q, want it to mention the owner number", reply)
			}
		})
	}
}

func TestIsOwnerForms(t *testing.T) {
	env := newTestEnv(testConfig(), &MockTransport{})

	for _, sender := range []string{
		"254106090661@s.whatsapp.net",
		"254106090661:3@s.whatsapp.net",
		"00254106090661@s.whatsapp.net",
	} {
		if !env.svc.IsOwner(sender) {
			t.Errorf("IsOwner(%q) = false, want true", sender)
		}
	}
	if env.svc.IsOwner("254700000001@s.whatsapp.net") {
		t.Error("IsOwner() matched an unrelated number")
	}
}

func TestHandleViolation_SerializesPerSender(t *testing.T) {
	// Concurrent violations from one sender must not race past the removal
	// threshold: exactly one removal for three concurrent strikes.
	tr := &MockTransport{}
	env := newTestEnv(testConfig(), tr)
	verdict := pipelineVerdictPtr("link_filter")

	done := make(chan struct{})
	for i := 0; i < 3; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			_ = env.svc.HandleViolation(context.Background(), groupMsg("www.example.com"), verdict)
		}()
	}
	for i := 0; i < 3; i++ {
		<-done
	}

	if tr.RemoveCalls != 1 {
		t.Errorf("remove calls = %d, want exactly 1", tr.RemoveCalls)
	}
	if got := env.strikeRepo.Count("group-1@g.us", "254700000001@s.whatsapp.net"); got != 0 {
		t.Errorf("strike count after removal = %d, want 0", got)
	}
}
