package mailer

import (
	"context"

	"github.com/rafabene/yamdb-backend/internal/domain/ports"
)

// LogMailer escreve o email no log em vez de enviá-lo (desenvolvimento)
type LogMailer struct {
	from       string
	translator Translator
	logger     ports.Logger
}

// NewLogMailer cria um LogMailer
func NewLogMailer(from string, translator Translator, logger ports.Logger) *LogMailer {
	return &LogMailer{from: from, translator: translator, logger: logger}
}

func (m *LogMailer) SendConfirmationCode(_ context.Context, email, code string) error {
	msg := confirmationMessage(m.translator, m.from, email, code)
	m.logger.Info("confirmation mail",
		"from", msg.From,
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.Body,
	)
	return nil
}
