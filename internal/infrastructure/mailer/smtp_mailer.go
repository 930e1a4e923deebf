package mailer

import (
	"context"
	"fmt"
	"mime"
	"net/smtp"
	"strings"

	"github.com/rafabene/yamdb-backend/internal/infrastructure/config"
)

// SendFunc tem a assinatura de smtp.SendMail
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer entrega o email por SMTP
type SMTPMailer struct {
	cfg        config.SMTPConfig
	from       string
	translator Translator
	send       SendFunc
}

// NewSMTPMailer cria um SMTPMailer usando smtp.SendMail
func NewSMTPMailer(cfg config.SMTPConfig, from string, translator Translator) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, from: from, translator: translator, send: smtp.SendMail}
}

func (m *SMTPMailer) SendConfirmationCode(ctx context.Context, email, code string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := confirmationMessage(m.translator, m.from, email, code)

	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}

	if err := m.send(m.cfg.Addr(), auth, msg.From, []string{msg.To}, encode(msg)); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", msg.To, err)
	}
	return nil
}

// encode serializa a mensagem em RFC 5322 com assunto codificado em UTF-8
func encode(msg Message) []byte {
	var b strings.Builder
	b.WriteString("From: " + msg.From + "\r\n")
	b.WriteString("To: " + msg.To + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", msg.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body + "\r\n")
	return []byte(b.String())
}
