// Package mail composes and delivers the invitation notification email.
// Delivery failure must surface synchronously so issuance can compensate,
// which is why Send is a single blocking call rather than a queue.
package mail

import "context"

// Message is a composed email ready for delivery.
type Message struct {
	To      string
	ToName  string
	Subject string
	HTML    string
}

// Result reports delivery metadata. PreviewURL is only set by delivery
// modes that don't actually send (dev/staging), so the operator can open
// the composed email in a browser.
type Result struct {
	PreviewURL string
}

// Mailer delivers a composed message. Implementations must return an error
// when delivery fails; callers rely on that to roll back issuance.
type Mailer interface {
	Send(ctx context.Context, msg Message) (Result, error)
}
