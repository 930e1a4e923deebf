package mailer

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/rafabene/yamdb-backend/internal/infrastructure/config"
	"github.com/rafabene/yamdb-backend/internal/infrastructure/i18n"
	"github.com/rafabene/yamdb-backend/internal/infrastructure/logging"
)

type recordingMailer struct {
	email, code string
	err         error
}

func (m *recordingMailer) SendConfirmationCode(_ context.Context, email, code string) error {
	m.email, m.code = email, code
	return m.err
}

func newTranslator(t *testing.T) Translator {
	t.Helper()
	svc, err := i18n.NewEmbeddedService("ru")
	if err != nil {
		t.Fatalf("NewEmbeddedService() error = %v", err)
	}
	return svc
}

func TestConfirmationMessage(t *testing.T) {
	msg := confirmationMessage(newTranslator(t), "noreply@yamdb.local", "alice@example.com", "abc123")

	if msg.Subject != "Подтверждение регистрации" {
		t.Errorf("Subject = %q", msg.Subject)
	}
	if msg.Body != "Код подтверждения:abc123" {
		t.Errorf("Body = %q", msg.Body)
	}
	if msg.To != "alice@example.com" {
		t.Errorf("To = %q", msg.To)
	}
}

func TestSMTPMailer(t *testing.T) {
	cfg := config.SMTPConfig{Host: "smtp.local", Port: 2525, User: "u", Password: "p"}

	t.Run("Deve enviar mensagem codificada", func(t *testing.T) {
		var gotAddr, gotFrom string
		var gotTo []string
		var gotMsg []byte

		m := NewSMTPMailer(cfg, "noreply@yamdb.local", newTranslator(t))
		m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
			if a == nil {
				t.Error("auth deveria ser configurada quando há usuário")
			}
			return nil
		}

		if err := m.SendConfirmationCode(context.Background(), "alice@example.com", "abc123"); err != nil {
			t.Fatalf("SendConfirmationCode() error = %v", err)
		}
		if gotAddr != "smtp.local:2525" {
			t.Errorf("addr = %q", gotAddr)
		}
		if gotFrom != "noreply@yamdb.local" || len(gotTo) != 1 || gotTo[0] != "alice@example.com" {
			t.Errorf("from/to = %q/%v", gotFrom, gotTo)
		}
		body := string(gotMsg)
		if !strings.Contains(body, "Subject: =?utf-8?q?") {
			t.Errorf("assunto não codificado: %q", body)
		}
		if !strings.HasSuffix(body, "Код подтверждения:abc123\r\n") {
			t.Errorf("corpo inesperado: %q", body)
		}
	})

	t.Run("Deve propagar falha de envio", func(t *testing.T) {
		m := NewSMTPMailer(cfg, "noreply@yamdb.local", newTranslator(t))
		m.send = func(string, smtp.Auth, string, []string, []byte) error {
			return errors.New("connection refused")
		}

		if err := m.SendConfirmationCode(context.Background(), "alice@example.com", "abc"); err == nil {
			t.Error("esperava erro")
		}
	})
}

func TestConsumerHandle(t *testing.T) {
	delivery := &recordingMailer{}
	c := NewConsumer("amqp://unused", "mail.confirmation", delivery, logging.NewNopLogger())

	t.Run("Deve entregar evento válido", func(t *testing.T) {
		err := c.handle(context.Background(), []byte(`{"email":"alice@example.com","code":"abc"}`))
		if err != nil {
			t.Fatalf("handle() error = %v", err)
		}
		if delivery.email != "alice@example.com" || delivery.code != "abc" {
			t.Errorf("entregue %q/%q", delivery.email, delivery.code)
		}
	})

	t.Run("Deve rejeitar payload inválido", func(t *testing.T) {
		if err := c.handle(context.Background(), []byte(`not json`)); err == nil {
			t.Error("esperava erro de unmarshal")
		}
		if err := c.handle(context.Background(), []byte(`{"email":"a@b.com"}`)); err == nil {
			t.Error("esperava erro de evento incompleto")
		}
	})
}

func TestNew(t *testing.T) {
	tr := newTranslator(t)
	log := logging.NewNopLogger()

	tests := []struct {
		driver  string
		wantErr bool
	}{
		{"log", false},
		{"smtp", false},
		{"amqp", false},
		{"pigeon", true},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			cfg := &config.Config{Mailer: config.MailerConfig{Driver: tt.driver}}
			m, err := New(cfg, tr, log)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && m == nil {
				t.Error("New() retornou mailer nil")
			}
		})
	}
}
