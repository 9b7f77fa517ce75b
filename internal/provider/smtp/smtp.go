// Package smtp implements a Provider that relays messages to an SMTP
// server using the go-mail client.
package smtp

import (
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"

	"github.com/mailcraft/mailcraft/config"
	"github.com/mailcraft/mailcraft/email"
)

// defaultSessionTimeout applies when no session timeout property resolved.
const defaultSessionTimeout = 60 * time.Second

// Config holds the SMTP relay settings.
type Config struct {
	Host           string
	Port           int
	Username       string
	Password       string
	SessionTimeout time.Duration
	ProxyHost      string
}

// ConfigFromProperties assembles relay settings from resolved properties.
func ConfigFromProperties(props *config.Properties) Config {
	cfg := Config{
		Host:           props.GetString(config.SMTPHost),
		Username:       props.GetString(config.SMTPUsername),
		Password:       props.GetString(config.SMTPPassword),
		ProxyHost:      props.GetString(config.ProxyHost),
		SessionTimeout: defaultSessionTimeout,
	}
	if port, ok := props.GetInt(config.SMTPPort); ok {
		cfg.Port = port
	}
	if millis, ok := props.GetInt(config.DefaultSessionTimeout); ok {
		cfg.SessionTimeout = time.Duration(millis) * time.Millisecond
	}
	return cfg
}

// Provider relays messages through an SMTP server.
type Provider struct {
	client *gomail.Client
}

// New creates a Provider from the given settings. A configured proxy host
// is rejected: the go-mail client speaks to the relay directly.
func New(cfg Config) (*Provider, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp host is not configured")
	}
	if cfg.ProxyHost != "" {
		return nil, fmt.Errorf("smtp proxying is not supported, proxy host %q configured", cfg.ProxyHost)
	}

	opts := []gomail.Option{
		gomail.WithTimeout(cfg.SessionTimeout),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Port > 0 {
		opts = append(opts, gomail.WithPort(cfg.Port))
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating smtp client: %w", err)
	}
	return &Provider{client: client}, nil
}

// Send maps the message onto a go-mail Msg and relays it.
func (p *Provider) Send(ctx context.Context, msg *email.Email) error {
	m, err := BuildMessage(msg)
	if err != nil {
		return err
	}
	if err := p.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("sending via smtp: %w", err)
	}
	return nil
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "smtp"
}

// BuildMessage maps a built Email onto a go-mail Msg. A requested return
// receipt becomes a Disposition-Notification-To header.
func BuildMessage(msg *email.Email) (*gomail.Msg, error) {
	m := gomail.NewMsg()

	from := msg.From()
	if from == nil {
		return nil, fmt.Errorf("message has no from address")
	}
	if err := setAddress(m.From, m.FromFormat, *from); err != nil {
		return nil, fmt.Errorf("setting from: %w", err)
	}
	if replyTo := msg.ReplyTo(); replyTo != nil {
		if err := setAddress(m.ReplyTo, m.ReplyToFormat, *replyTo); err != nil {
			return nil, fmt.Errorf("setting reply-to: %w", err)
		}
	}

	for _, r := range msg.Recipients() {
		var err error
		switch r.Role {
		case email.RoleTo:
			err = setAddress(m.AddTo, m.AddToFormat, r)
		case email.RoleCc:
			err = setAddress(m.AddCc, m.AddCcFormat, r)
		case email.RoleBcc:
			err = setAddress(m.AddBcc, m.AddBccFormat, r)
		}
		if err != nil {
			return nil, fmt.Errorf("adding %s recipient %q: %w", r.Role, r.Address, err)
		}
	}

	if msg.ID() != "" {
		m.SetMessageIDWithValue(msg.ID())
	}
	m.Subject(msg.Subject())

	text, html := msg.Text(), msg.HTMLText()
	switch {
	case text != "" && html != "":
		m.SetBodyString(gomail.TypeTextPlain, text)
		m.AddAlternativeString(gomail.TypeTextHTML, html)
	case html != "":
		m.SetBodyString(gomail.TypeTextHTML, html)
	default:
		m.SetBodyString(gomail.TypeTextPlain, text)
	}

	for name, value := range msg.Headers() {
		m.SetGenHeader(gomail.Header(name), value)
	}

	if msg.UseReturnReceipt() {
		if receipt := msg.ReturnReceiptTo(); receipt != nil {
			m.SetGenHeader(gomail.HeaderDispositionNotificationTo, receipt.String())
		}
	}

	return m, nil
}

// setAddress applies a recipient through the bare or the name-formatted
// go-mail setter, depending on whether a display name is present.
func setAddress(bare func(string) error, formatted func(string, string) error, r email.Recipient) error {
	if r.Name != "" {
		return formatted(r.Name, r.Address)
	}
	return bare(r.Address)
}
