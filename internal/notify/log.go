package notify

import (
	"context"

	"github.com/dtroode/authgate-server/internal/logger"
	"github.com/dtroode/authgate-server/internal/model"
)

// LogSender writes mails to the log instead of delivering them. Meant for
// local development.
type LogSender struct {
	logger *logger.Logger
}

func NewLogSender(logger *logger.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, mail model.Mail) error {
	s.logger.Info("Mail: message",
		"kind", mail.Kind,
		"to", mail.To,
		"subject", mail.Subject,
		"body", mail.Body)
	return nil
}
