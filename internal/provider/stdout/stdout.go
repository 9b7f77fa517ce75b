// Package stdout implements a Provider that prints messages to standard
// output. It backs the logging-only transport mode: nothing leaves the
// process.
package stdout

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mailcraft/mailcraft/email"
)

// Provider prints email messages to stdout in a human-readable format.
type Provider struct {
	// writer is the output destination, defaulting to os.Stdout.
	writer io.Writer
}

// New creates a new stdout Provider that writes to os.Stdout.
func New() *Provider {
	return &Provider{writer: os.Stdout}
}

// NewWithWriter creates a new stdout Provider that writes to the given writer.
// This is useful for testing.
func NewWithWriter(w io.Writer) *Provider {
	return &Provider{writer: w}
}

// Send prints the message in a readable format. It always returns nil,
// even when the write fails: nothing leaves the process, so there is
// nothing to retry.
func (p *Provider) Send(_ context.Context, msg *email.Email) error {
	var b strings.Builder

	b.WriteString("========================================\n")
	if from := msg.From(); from != nil {
		fmt.Fprintf(&b, "From: %s\n", from)
	}
	if replyTo := msg.ReplyTo(); replyTo != nil {
		fmt.Fprintf(&b, "Reply-To: %s\n", replyTo)
	}

	for _, role := range []email.Role{email.RoleTo, email.RoleCc, email.RoleBcc} {
		if line := joinByRole(msg.Recipients(), role); line != "" {
			fmt.Fprintf(&b, "%s: %s\n", headerName(role), line)
		}
	}

	fmt.Fprintf(&b, "Subject: %s\n", msg.Subject())

	headers := msg.Headers()
	if len(headers) > 0 {
		for name, value := range headers {
			fmt.Fprintf(&b, "%s: %s\n", name, value)
		}
	}

	if msg.UseReturnReceipt() {
		receipt := "(unresolved)"
		if r := msg.ReturnReceiptTo(); r != nil {
			receipt = r.String()
		}
		fmt.Fprintf(&b, "Disposition-Notification-To: %s\n", receipt)
	}

	b.WriteString("Body:\n")
	body := msg.Text()
	if body == "" {
		body = msg.HTMLText()
	}
	b.WriteString(body + "\n")
	b.WriteString("========================================\n")

	if _, err := fmt.Fprint(p.writer, b.String()); err != nil {
		// The stdout provider always succeeds; a failed write is only
		// worth a log line.
		slog.Warn("failed to write message to output", "error", err)
	}
	return nil
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "stdout"
}

func joinByRole(recipients []email.Recipient, role email.Role) string {
	var parts []string
	for _, r := range recipients {
		if r.Role == role {
			parts = append(parts, r.String())
		}
	}
	return strings.Join(parts, ", ")
}

func headerName(role email.Role) string {
	switch role {
	case email.RoleCc:
		return "Cc"
	case email.RoleBcc:
		return "Bcc"
	default:
		return "To"
	}
}
