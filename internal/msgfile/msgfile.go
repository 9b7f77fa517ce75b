// Package msgfile loads a YAML description of one email message and
// applies it to a builder.
package msgfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mailcraft/mailcraft/config"
	"github.com/mailcraft/mailcraft/email"
)

// Message describes one email message in YAML form. Address lists may mix
// comma and semicolon separators and "Name <addr>" forms, exactly like the
// builder's named setters.
type Message struct {
	ID      string `yaml:"id"`
	From    Party  `yaml:"from"`
	ReplyTo Party  `yaml:"reply_to"`
	To      Party  `yaml:"to"`
	Cc      Party  `yaml:"cc"`
	Bcc     Party  `yaml:"bcc"`
	Subject string `yaml:"subject"`
	Text    string `yaml:"text"`
	HTML    string `yaml:"html"`

	Headers map[string]string `yaml:"headers"`

	ReturnReceipt        bool   `yaml:"return_receipt"`
	ReturnReceiptName    string `yaml:"return_receipt_name"`
	ReturnReceiptAddress string `yaml:"return_receipt_address"`
}

// Party is one side of the message: an optional display name and, for the
// to/cc/bcc entries, a separator-delimited address list.
type Party struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
}

// Load reads a YAML message file.
func Load(path string) (*Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading message file %s: %w", path, err)
	}
	var m Message
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing message file %s: %w", path, err)
	}
	return &m, nil
}

// Build seeds a builder from the resolved default properties, applies the
// message description on top and returns the built email.
func (m *Message) Build(props *config.Properties) (*email.Email, error) {
	b := email.NewBuilderFromConfig(props)

	if m.ID != "" {
		b.ID(m.ID)
	}
	if m.From.Address != "" {
		b.From(m.From.Name, m.From.Address)
	}
	if m.ReplyTo.Address != "" {
		b.ReplyTo(m.ReplyTo.Name, m.ReplyTo.Address)
	}
	if m.To.Address != "" {
		b.NamedTo(m.To.Name, m.To.Address)
	}
	if m.Cc.Address != "" {
		b.NamedCc(m.Cc.Name, m.Cc.Address)
	}
	if m.Bcc.Address != "" {
		b.NamedBcc(m.Bcc.Name, m.Bcc.Address)
	}
	if m.Subject != "" {
		b.Subject(m.Subject)
	}
	if m.Text != "" {
		b.Text(m.Text)
	}
	if m.HTML != "" {
		b.HTMLText(m.HTML)
	}
	for name, value := range m.Headers {
		b.AddHeader(name, value)
	}
	if m.ReturnReceipt {
		if m.ReturnReceiptAddress != "" {
			b.WithReturnReceiptTo(m.ReturnReceiptName, m.ReturnReceiptAddress)
		} else {
			b.WithReturnReceipt()
		}
	}

	return b.Build()
}
