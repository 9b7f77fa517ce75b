package msgfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mailcraft/mailcraft/config"
	"github.com/mailcraft/mailcraft/email"
)

const sampleMessage = `
from:
  name: Alice
  address: alice@example.com
reply_to:
  address: reply@example.com
to:
  name: Team
  address: "bob@example.com; Carol <carol@example.com>"
cc:
  address: audit@example.com
subject: Quarterly numbers
text: plain body
html: "<p>rich body</p>"
headers:
  X-Priority: "2"
return_receipt: true
`

func writeMessage(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "message.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing message file: %v", err)
	}
	return path
}

func TestLoadAndBuild(t *testing.T) {
	t.Parallel()

	msg, err := Load(writeMessage(t, sampleMessage))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e, err := msg.Build(config.New())
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}

	if from := e.From(); from == nil || from.Name != "Alice" || from.Address != "alice@example.com" {
		t.Errorf("From: got %+v", from)
	}
	if replyTo := e.ReplyTo(); replyTo == nil || replyTo.Address != "reply@example.com" {
		t.Errorf("ReplyTo: got %+v", replyTo)
	}
	if got := e.Subject(); got != "Quarterly numbers" {
		t.Errorf("Subject: got %q", got)
	}
	if got := e.Text(); got != "plain body" {
		t.Errorf("Text: got %q", got)
	}
	if got := e.HTMLText(); got != "<p>rich body</p>" {
		t.Errorf("HTMLText: got %q", got)
	}

	recipients := e.Recipients()
	want := []email.Recipient{
		{Name: "Team", Address: "bob@example.com", Role: email.RoleTo},
		{Name: "Carol", Address: "carol@example.com", Role: email.RoleTo},
		{Address: "audit@example.com", Role: email.RoleCc},
	}
	if len(recipients) != len(want) {
		t.Fatalf("recipients: got %d, want %d: %v", len(recipients), len(want), recipients)
	}
	for i, w := range want {
		if !recipients[i].Equal(w) {
			t.Errorf("recipient %d: got %+v, want %+v", i, recipients[i], w)
		}
	}

	if got := e.Headers()["X-Priority"]; got != "2" {
		t.Errorf("header X-Priority: got %q", got)
	}
	if !e.UseReturnReceipt() {
		t.Error("UseReturnReceipt: got false, want true")
	}
	if receipt := e.ReturnReceiptTo(); receipt == nil || receipt.Address != "reply@example.com" {
		t.Errorf("ReturnReceiptTo: got %+v, want reply-to default", receipt)
	}
}

func TestBuild_ExplicitReceiptAddress(t *testing.T) {
	t.Parallel()

	msg := &Message{
		From:                 Party{Address: "alice@example.com"},
		To:                   Party{Address: "bob@example.com"},
		Subject:              "Hello",
		ReturnReceipt:        true,
		ReturnReceiptAddress: "audit@example.com",
	}

	e, err := msg.Build(config.New())
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	if receipt := e.ReturnReceiptTo(); receipt == nil || receipt.Address != "audit@example.com" {
		t.Errorf("ReturnReceiptTo: got %+v, want explicit address", receipt)
	}
}

func TestBuild_ConfigDefaultsApply(t *testing.T) {
	t.Setenv(string(config.DefaultFromAddress), "default@example.com")
	t.Setenv(string(config.DefaultSubject), "Default subject")

	props := config.New()
	if err := props.Load(false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := &Message{
		To:      Party{Address: "bob@example.com"},
		Subject: "Explicit subject",
	}

	e, err := msg.Build(props)
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	if from := e.From(); from == nil || from.Address != "default@example.com" {
		t.Errorf("From: got %+v, want configured default", from)
	}
	if got := e.Subject(); got != "Explicit subject" {
		t.Errorf("Subject: got %q, want the message file to win", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	if _, err := Load(writeMessage(t, "from: [unclosed")); err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}
