package mailer

import (
	"fmt"

	"github.com/rafabene/yamdb-backend/internal/domain/ports"
	"github.com/rafabene/yamdb-backend/internal/infrastructure/config"
)

// New escolhe a implementação de entrega conforme MAILER_DRIVER
func New(cfg *config.Config, translator Translator, logger ports.Logger) (ports.Mailer, error) {
	switch cfg.Mailer.Driver {
	case "log", "":
		return NewLogMailer(cfg.Mailer.From, translator, logger), nil
	case "smtp":
		return NewSMTPMailer(cfg.SMTP, cfg.Mailer.From, translator), nil
	case "amqp":
		return NewQueueMailer(cfg.Mailer.AMQPURL, cfg.Mailer.Queue), nil
	default:
		return nil, fmt.Errorf("unknown mailer driver %q", cfg.Mailer.Driver)
	}
}
