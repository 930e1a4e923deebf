package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rafabene/yamdb-backend/internal/infrastructure/config"
	"github.com/rafabene/yamdb-backend/internal/infrastructure/logging"
	"github.com/rafabene/yamdb-backend/internal/infrastructure/mailer"
)

var mailerCmd = &cobra.Command{
	Use:   "mailer",
	Short: "Consome a fila de códigos de confirmação e entrega por SMTP",
	RunE:  runMailer,
}

func init() {
	rootCmd.AddCommand(mailerCmd)
}

func runMailer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.NewSlogLogger(cfg.Logging.Level)

	translations, err := loadTranslations(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	delivery := mailer.NewSMTPMailer(cfg.SMTP, cfg.Mailer.From, translations)
	consumer := mailer.NewConsumer(cfg.Mailer.AMQPURL, cfg.Mailer.Queue, delivery, logger)

	logger.Info("mail consumer starting", "queue", cfg.Mailer.Queue, "smtp", cfg.SMTP.Addr())
	return consumer.Run(ctx)
}
