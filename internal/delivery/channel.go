// Package delivery abstracts the outbound message channel. The production
// binding is a stub that always succeeds; real WhatsApp sending happens out
// of band via wa.me links generated for the operator.
package delivery

import (
	"context"
	"net/url"
	"strings"
)

// Channel delivers a rendered message text to a phone number. Send returns
// synchronously; there is no queueing or retry behind this interface.
type Channel interface {
	Send(ctx context.Context, phone, text string) error
}

// StubChannel reports success for every send.
type StubChannel struct{}

func (StubChannel) Send(ctx context.Context, phone, text string) error {
	return nil
}

// WhatsAppLink builds a https://wa.me click-to-chat link for a phone number
// and prefilled message.
func WhatsAppLink(phone, message string) string {
	clean := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	clean = strings.TrimPrefix(clean, "+")
	return "https://wa.me/" + clean + "?text=" + url.QueryEscape(message)
}
