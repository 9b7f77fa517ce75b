package email

import (
	"fmt"
	"strings"
)

// Email is an immutable message snapshot produced by Builder.Build. The
// from, reply-to and return-receipt recipients are nil when unset; the
// recipient list keeps insertion order and may contain duplicates.
type Email struct {
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
}

// ID returns the optional message id.
func (e *Email) ID() string { return e.id }

// From returns the sender, or nil when unset.
func (e *Email) From() *Recipient { return copyRecipient(e.from) }

// ReplyTo returns the reply-to recipient, or nil when unset.
func (e *Email) ReplyTo() *Recipient { return copyRecipient(e.replyTo) }

// Text returns the plain-text body.
func (e *Email) Text() string { return e.text }

// HTMLText returns the HTML body.
func (e *Email) HTMLText() string { return e.htmlText }

// Subject returns the subject.
func (e *Email) Subject() string { return e.subject }

// Recipients returns a copy of the TO/CC/BCC recipients in insertion order.
func (e *Email) Recipients() []Recipient {
	out := make([]Recipient, len(e.recipients))
	copy(out, e.recipients)
	return out
}

// Headers returns a copy of the header map.
func (e *Email) Headers() map[string]string {
	out := make(map[string]string, len(e.headers))
	for k, v := range e.headers {
		out[k] = v
	}
	return out
}

// UseReturnReceipt reports whether a read receipt was requested.
func (e *Email) UseReturnReceipt() bool { return e.useReturnReceipt }

// ReturnReceiptTo returns the resolved receipt recipient, or nil.
func (e *Email) ReturnReceiptTo() *Recipient { return copyRecipient(e.returnReceiptTo) }

// Equal reports whether two messages carry the same content. Recipients are
// compared as a bag: same count, every recipient of one present in the
// other by full structural equality, regardless of insertion order. The id
// does not participate.
func (e *Email) Equal(other *Email) bool {
	if e == other {
		return true
	}
	if e == nil || other == nil {
		return false
	}
	return recipientPtrEqual(e.from, other.from) &&
		recipientPtrEqual(e.replyTo, other.replyTo) &&
		e.text == other.text &&
		e.htmlText == other.htmlText &&
		e.subject == other.subject &&
		recipientBagEqual(e.recipients, other.recipients) &&
		headersEqual(e.headers, other.headers) &&
		e.useReturnReceipt == other.useReturnReceipt &&
		recipientPtrEqual(e.returnReceiptTo, other.returnReceiptTo)
}

func (e *Email) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Email{\n\tid=%s", e.id)
	fmt.Fprintf(&b, "\n\tfrom=%s", formatRecipient(e.from))
	fmt.Fprintf(&b, ",\n\treplyTo=%s", formatRecipient(e.replyTo))
	fmt.Fprintf(&b, ",\n\ttext='%s'", e.text)
	fmt.Fprintf(&b, ",\n\thtmlText='%s'", e.htmlText)
	fmt.Fprintf(&b, ",\n\tsubject='%s'", e.subject)
	fmt.Fprintf(&b, ",\n\trecipients=%v", e.recipients)
	if e.useReturnReceipt {
		fmt.Fprintf(&b, ",\n\tuseReturnReceipt=true,\n\t\treturnReceiptTo=%s", formatRecipient(e.returnReceiptTo))
	}
	if len(e.headers) > 0 {
		fmt.Fprintf(&b, ",\n\theaders=%v", e.headers)
	}
	b.WriteString("\n}")
	return b.String()
}

func copyRecipient(r *Recipient) *Recipient {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}

func formatRecipient(r *Recipient) string {
	if r == nil {
		return "<nil>"
	}
	return r.String()
}

func recipientPtrEqual(a, b *Recipient) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func recipientBagEqual(a, b []Recipient) bool {
	if len(a) != len(b) {
		return false
	}
	for _, want := range b {
		found := false
		for _, got := range a {
			if got.Equal(want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func headersEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if other, ok := b[k]; !ok || other != v {
			return false
		}
	}
	return true
}
