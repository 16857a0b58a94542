package email

// Message is a single outbound mail.
type Message struct {
	To      []string
	Subject string
	Body    string
}

// Provider sends transactional mail. Sends are best-effort: callers log
// failures but never fail the request over them.
type Provider interface {
	Send(msg *Message) error
}
