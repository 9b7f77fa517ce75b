// Package email provides the mailcraft message model: an immutable Email
// value, a fluent Builder that accumulates message fields, and the address
// handling used by both.
package email

import (
	"fmt"
	"net/mail"
)

// Role classifies how a recipient participates in a message. The zero value
// means the role is contextual (from, reply-to and return-receipt recipients
// carry no role of their own).
type Role string

const (
	RoleNone          Role = ""
	RoleFrom          Role = "FROM"
	RoleReplyTo       Role = "REPLY_TO"
	RoleTo            Role = "TO"
	RoleCc            Role = "CC"
	RoleBcc           Role = "BCC"
	RoleReturnReceipt Role = "RETURN_RECEIPT"
)

// Recipient is one participant of a message: an optional display name, a
// mandatory address and an optional role. Recipients are plain values and
// never modified after construction.
type Recipient struct {
	Name    string
	Address string
	Role    Role
}

// NewRecipient constructs a Recipient, requiring a non-empty address.
func NewRecipient(name, address string, role Role) (Recipient, error) {
	if address == "" {
		return Recipient{}, &ValidationError{Label: "address"}
	}
	return Recipient{Name: name, Address: address, Role: role}, nil
}

// Equal reports structural equality of name, address and role.
func (r Recipient) Equal(other Recipient) bool {
	return r == other
}

func (r Recipient) String() string {
	if r.Name != "" {
		return fmt.Sprintf("%s <%s>", r.Name, r.Address)
	}
	return r.Address
}

// InterpretRecipient turns one address token into a Recipient. The token may
// be a bare address or an RFC 5322 "Name <address>" form; an embedded
// display name overrides defaultName. A token that fails to parse is kept
// verbatim as the address, so malformed input degrades instead of erroring.
func InterpretRecipient(defaultName, token string, role Role) Recipient {
	parsed, err := mail.ParseAddress(token)
	if err != nil {
		return Recipient{Name: defaultName, Address: token, Role: role}
	}
	name := defaultName
	if parsed.Name != "" {
		name = parsed.Name
	}
	return Recipient{Name: name, Address: parsed.Address, Role: role}
}
