package email

import (
	"fmt"

	"github.com/mailcraft/mailcraft/config"
)

// Builder is a mutable fluent accumulator for one Email. Every setter
// returns the builder so calls chain; the first invalid argument is
// recorded and reported by Build. A builder is meant for a single Build and
// is not safe for concurrent use.
type Builder struct {
	id               string
	from             *Recipient
	replyTo          *Recipient
	text             string
	htmlText         string
	subject          string
	recipients       []Recipient
	headers          map[string]string
	useReturnReceipt bool
	returnReceiptTo  *Recipient
	err              error
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{headers: make(map[string]string)}
}

// NewBuilderFromConfig creates a builder seeded from the resolved default
// properties: from, reply-to, to, cc, bcc (paired name+address keys when
// both are present, else the address list alone) and subject, each applied
// only when the corresponding address or subject key resolved non-empty.
func NewBuilderFromConfig(props *config.Properties) *Builder {
	b := NewBuilder()
	if props == nil {
		return b
	}
	if props.Has(config.DefaultFromAddress) {
		b.From(props.GetString(config.DefaultFromName), props.GetString(config.DefaultFromAddress))
	}
	if props.Has(config.DefaultReplyToAddress) {
		b.ReplyTo(props.GetString(config.DefaultReplyToName), props.GetString(config.DefaultReplyToAddress))
	}
	seedList(b, props, config.DefaultToName, config.DefaultToAddress, RoleTo)
	seedList(b, props, config.DefaultCcName, config.DefaultCcAddress, RoleCc)
	seedList(b, props, config.DefaultBccName, config.DefaultBccAddress, RoleBcc)
	if props.Has(config.DefaultSubject) {
		b.Subject(props.GetString(config.DefaultSubject))
	}
	return b
}

func seedList(b *Builder, props *config.Properties, nameKey, addressKey config.Key, role Role) {
	if !props.Has(addressKey) {
		return
	}
	name := ""
	if props.Has(nameKey) {
		name = props.GetString(nameKey)
	}
	b.addAddressList(name, props.GetString(addressKey), role)
}

// fail records the first error; later setters become no-ops for the failed
// argument but the chain itself keeps flowing.
func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// ID sets the optional message id.
func (b *Builder) ID(id string) *Builder {
	b.id = id
	return b
}

// From sets the sender. The address is mandatory, the name optional.
func (b *Builder) From(name, address string) *Builder {
	if _, err := Require("fromAddress", address); err != nil {
		return b.fail(err)
	}
	b.from = &Recipient{Name: name, Address: address}
	return b
}

// FromRecipient sets the sender from a preconfigured recipient. The role is
// dropped: it is contextual for the from field.
func (b *Builder) FromRecipient(r Recipient) *Builder {
	return b.From(r.Name, r.Address)
}

// ReplyTo sets the reply-to recipient. The address is mandatory.
func (b *Builder) ReplyTo(name, address string) *Builder {
	if _, err := Require("replyToAddress", address); err != nil {
		return b.fail(err)
	}
	b.replyTo = &Recipient{Name: name, Address: address}
	return b
}

// ReplyToRecipient sets the reply-to from a preconfigured recipient,
// dropping its role.
func (b *Builder) ReplyToRecipient(r Recipient) *Builder {
	return b.ReplyTo(r.Name, r.Address)
}

// Subject sets the mandatory, non-empty subject.
func (b *Builder) Subject(subject string) *Builder {
	s, err := Require("subject", subject)
	if err != nil {
		return b.fail(err)
	}
	b.subject = s
	return b
}

// Text sets the plain-text body.
func (b *Builder) Text(text string) *Builder {
	b.text = text
	return b
}

// HTMLText sets the HTML body.
func (b *Builder) HTMLText(htmlText string) *Builder {
	b.htmlText = htmlText
	return b
}

// To adds one recipient per address with the TO role and no display name.
func (b *Builder) To(addresses ...string) *Builder {
	return b.addBare(RoleTo, addresses)
}

// Cc adds one recipient per address with the CC role and no display name.
func (b *Builder) Cc(addresses ...string) *Builder {
	return b.addBare(RoleCc, addresses)
}

// Bcc adds one recipient per address with the BCC role and no display name.
func (b *Builder) Bcc(addresses ...string) *Builder {
	return b.addBare(RoleBcc, addresses)
}

// NamedTo splits a comma or semicolon separated address list and adds a TO
// recipient per token, using name as the default display name. A token in
// "Name <addr>" form keeps its own embedded name instead.
func (b *Builder) NamedTo(name, addressList string) *Builder {
	return b.addAddressList(name, addressList, RoleTo)
}

// NamedCc is NamedTo for the CC role.
func (b *Builder) NamedCc(name, addressList string) *Builder {
	return b.addAddressList(name, addressList, RoleCc)
}

// NamedBcc is NamedTo for the BCC role.
func (b *Builder) NamedBcc(name, addressList string) *Builder {
	return b.addAddressList(name, addressList, RoleBcc)
}

// ToRecipients copies the given recipients into the list, re-stamping each
// role to TO regardless of what the input carried.
func (b *Builder) ToRecipients(recipients ...Recipient) *Builder {
	return b.addCopies(RoleTo, recipients)
}

// CcRecipients is ToRecipients for the CC role.
func (b *Builder) CcRecipients(recipients ...Recipient) *Builder {
	return b.addCopies(RoleCc, recipients)
}

// BccRecipients is ToRecipients for the BCC role.
func (b *Builder) BccRecipients(recipients ...Recipient) *Builder {
	return b.addCopies(RoleBcc, recipients)
}

func (b *Builder) addBare(role Role, addresses []string) *Builder {
	if len(addresses) == 0 {
		return b.fail(&ValidationError{Label: "emailAddresses"})
	}
	for _, address := range addresses {
		if _, err := Require("address", address); err != nil {
			return b.fail(err)
		}
		b.recipients = append(b.recipients, Recipient{Address: address, Role: role})
	}
	return b
}

func (b *Builder) addAddressList(defaultName, addressList string, role Role) *Builder {
	tokens, err := SplitAddressList(addressList)
	if err != nil {
		return b.fail(err)
	}
	for _, token := range tokens {
		b.recipients = append(b.recipients, InterpretRecipient(defaultName, token, role))
	}
	return b
}

func (b *Builder) addCopies(role Role, recipients []Recipient) *Builder {
	if len(recipients) == 0 {
		return b.fail(&ValidationError{Label: "recipients"})
	}
	for _, r := range recipients {
		if _, err := Require("recipient.address", r.Address); err != nil {
			return b.fail(err)
		}
		b.recipients = append(b.recipients, Recipient{Name: r.Name, Address: r.Address, Role: role})
	}
	return b
}

// AddHeader stores a header value under the given name, both mandatory.
// The value is stored as its string form; setting the same name again
// replaces the previous value.
func (b *Builder) AddHeader(name string, value any) *Builder {
	if _, err := Require("header name", name); err != nil {
		return b.fail(err)
	}
	if IsEmpty(value) {
		return b.fail(&ValidationError{Label: "header value"})
	}
	if b.headers == nil {
		b.headers = make(map[string]string)
	}
	b.headers[name] = fmt.Sprint(value)
	return b
}

// WithReturnReceipt requests a read receipt. Any previously set explicit
// receipt address is cleared so Build resolves the default (reply-to first,
// else from).
func (b *Builder) WithReturnReceipt() *Builder {
	b.useReturnReceipt = true
	b.returnReceiptTo = nil
	return b
}

// WithReturnReceiptAddress requests a read receipt to the given address.
func (b *Builder) WithReturnReceiptAddress(address string) *Builder {
	return b.WithReturnReceiptTo("", address)
}

// WithReturnReceiptTo requests a read receipt to the given optional name
// and mandatory address.
func (b *Builder) WithReturnReceiptTo(name, address string) *Builder {
	if _, err := Require("returnReceiptToAddress", address); err != nil {
		return b.fail(err)
	}
	b.useReturnReceipt = true
	b.returnReceiptTo = &Recipient{Name: name, Address: address}
	return b
}

// WithReturnReceiptRecipient requests a read receipt to a preconfigured
// recipient, dropping its role.
func (b *Builder) WithReturnReceiptRecipient(r Recipient) *Builder {
	return b.WithReturnReceiptTo(r.Name, r.Address)
}

// Build snapshots the accumulated fields into an immutable Email. When a
// receipt was requested without an explicit address, the receipt recipient
// resolves to the reply-to if set, else the from; neither being set leaves
// it nil, which is accepted. The first validation error recorded by any
// setter is returned instead.
func (b *Builder) Build() (*Email, error) {
	if b.err != nil {
		return nil, b.err
	}
	e := &Email{
		id:               b.id,
		from:             copyRecipient(b.from),
		replyTo:          copyRecipient(b.replyTo),
		text:             b.text,
		htmlText:         b.htmlText,
		subject:          b.subject,
		recipients:       make([]Recipient, len(b.recipients)),
		headers:          make(map[string]string, len(b.headers)),
		useReturnReceipt: b.useReturnReceipt,
		returnReceiptTo:  copyRecipient(b.returnReceiptTo),
	}
	copy(e.recipients, b.recipients)
	for k, v := range b.headers {
		e.headers[k] = v
	}
	if b.useReturnReceipt && b.returnReceiptTo == nil {
		switch {
		case b.replyTo != nil:
			e.returnReceiptTo = copyRecipient(b.replyTo)
		case b.from != nil:
			e.returnReceiptTo = copyRecipient(b.from)
		}
	}
	return e, nil
}
