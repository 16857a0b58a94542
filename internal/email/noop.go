package email

import (
	"fitpath_backend/internal/logger"
)

// NoopProvider logs instead of sending. Used when mail is disabled in config
// and in tests.
type NoopProvider struct{}

func (p *NoopProvider) Send(msg *Message) error {
	logger.Debug("email send skipped (mail disabled)",
		"to", msg.To,
		"subject", msg.Subject,
	)
	return nil
}
