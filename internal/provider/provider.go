// Package provider defines the interface for email delivery backends.
package provider

import (
	"context"

	"github.com/mailcraft/mailcraft/email"
)

// Provider is the interface that email delivery backends must implement.
// Each provider takes a built message and hands it to the target service
// (stdout, AWS SES, an SMTP relay, ...).
type Provider interface {
	// Send delivers an email message through this provider.
	// It returns an error if the delivery fails.
	Send(ctx context.Context, msg *email.Email) error

	// Name returns the human-readable name of this provider.
	Name() string
}
