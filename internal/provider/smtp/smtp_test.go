package smtp

import (
	"strings"
	"testing"
	"time"

	gomail "github.com/wneessen/go-mail"

	"github.com/mailcraft/mailcraft/config"
	"github.com/mailcraft/mailcraft/email"
)

func buildEmail(t *testing.T, b *email.Builder) *email.Email {
	t.Helper()
	e, err := b.Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	return e
}

func TestConfigFromProperties(t *testing.T) {
	t.Setenv(string(config.SMTPHost), "relay.example.com")
	t.Setenv(string(config.SMTPPort), "587")
	t.Setenv(string(config.SMTPUsername), "sender")
	t.Setenv(string(config.SMTPPassword), "secret")
	t.Setenv(string(config.DefaultSessionTimeout), "15000")

	props := config.New()
	if err := props.Load(false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := ConfigFromProperties(props)
	if cfg.Host != "relay.example.com" {
		t.Errorf("Host: got %q", cfg.Host)
	}
	if cfg.Port != 587 {
		t.Errorf("Port: got %d, want 587", cfg.Port)
	}
	if cfg.Username != "sender" || cfg.Password != "secret" {
		t.Errorf("credentials: got %q/%q", cfg.Username, cfg.Password)
	}
	if cfg.SessionTimeout != 15*time.Second {
		t.Errorf("SessionTimeout: got %v, want 15s", cfg.SessionTimeout)
	}
}

func TestConfigFromProperties_Defaults(t *testing.T) {
	t.Parallel()

	cfg := ConfigFromProperties(config.New())
	if cfg.SessionTimeout != defaultSessionTimeout {
		t.Errorf("SessionTimeout: got %v, want %v", cfg.SessionTimeout, defaultSessionTimeout)
	}
	if cfg.Port != 0 {
		t.Errorf("Port: got %d, want 0", cfg.Port)
	}
}

func TestNew_RequiresHost(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{}); err == nil {
		t.Error("expected error for missing host, got nil")
	}
}

func TestNew_RejectsProxy(t *testing.T) {
	t.Parallel()

	_, err := New(Config{Host: "relay.example.com", ProxyHost: "proxy.example.com"})
	if err == nil {
		t.Fatal("expected error for configured proxy, got nil")
	}
	if !strings.Contains(err.Error(), "proxy.example.com") {
		t.Errorf("error should name the proxy host: %v", err)
	}
}

func TestBuildMessage_Mapping(t *testing.T) {
	t.Parallel()

	msg := buildEmail(t, email.NewBuilder().
		ID("msg-42@example.com").
		From("Alice", "alice@example.com").
		ReplyTo("", "reply@example.com").
		To("bob@example.com").
		NamedCc("Audit", "audit@example.com").
		Bcc("archive@example.com").
		Subject("Quarterly numbers").
		Text("plain").
		HTMLText("<p>rich</p>").
		AddHeader("X-Priority", 2))

	m, err := BuildMessage(msg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := m.GetFromString(); len(got) != 1 || !strings.Contains(got[0], "alice@example.com") {
		t.Errorf("from: got %v", got)
	}
	if got := m.GetToString(); len(got) != 1 || !strings.Contains(got[0], "bob@example.com") {
		t.Errorf("to: got %v", got)
	}
	if got := m.GetCcString(); len(got) != 1 || !strings.Contains(got[0], "audit@example.com") {
		t.Errorf("cc: got %v", got)
	}
	if got := m.GetBccString(); len(got) != 1 || !strings.Contains(got[0], "archive@example.com") {
		t.Errorf("bcc: got %v", got)
	}
	if got := m.GetGenHeader(gomail.HeaderSubject); len(got) != 1 || got[0] != "Quarterly numbers" {
		t.Errorf("subject: got %v", got)
	}
	if got := m.GetGenHeader(gomail.Header("X-Priority")); len(got) != 1 || got[0] != "2" {
		t.Errorf("X-Priority: got %v", got)
	}
}

func TestBuildMessage_ReturnReceiptHeader(t *testing.T) {
	t.Parallel()

	msg := buildEmail(t, email.NewBuilder().
		From("", "alice@example.com").
		To("bob@example.com").
		Subject("Hello").
		Text("body").
		WithReturnReceipt())

	m, err := BuildMessage(msg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := m.GetGenHeader(gomail.HeaderDispositionNotificationTo)
	if len(got) != 1 || got[0] != "alice@example.com" {
		t.Errorf("Disposition-Notification-To: got %v, want the from address", got)
	}
}

func TestBuildMessage_NoFrom(t *testing.T) {
	t.Parallel()

	msg := buildEmail(t, email.NewBuilder().To("bob@example.com").Subject("s"))
	if _, err := BuildMessage(msg); err == nil {
		t.Error("expected error for missing from address, got nil")
	}
}
