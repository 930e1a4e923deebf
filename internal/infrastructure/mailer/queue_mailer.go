package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ConfirmationEvent é o payload publicado na fila de emails
type ConfirmationEvent struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// QueueMailer publica o código em uma fila AMQP; o worker de email faz a entrega
type QueueMailer struct {
	url   string
	queue string
}

// NewQueueMailer cria um QueueMailer para a fila informada
func NewQueueMailer(url, queue string) *QueueMailer {
	return &QueueMailer{url: url, queue: queue}
}

func (m *QueueMailer) SendConfirmationCode(ctx context.Context, email, code string) error {
	conn, err := amqp.Dial(m.url)
	if err != nil {
		return fmt.Errorf("amqp dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("amqp channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := declareQueue(ch, m.queue); err != nil {
		return err
	}

	body, err := json.Marshal(ConfirmationEvent{Email: email, Code: code})
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = ch.PublishWithContext(ctx, "", m.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("amqp publish: %w", err)
	}
	return nil
}

// declareQueue garante a fila durável usada por publisher e consumer
func declareQueue(ch *amqp.Channel, name string) error {
	if _, err := ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	return nil
}
