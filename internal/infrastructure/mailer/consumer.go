package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/rafabene/yamdb-backend/internal/domain/ports"
)

const maxBackoff = 30 * time.Second

// Consumer lê eventos da fila de emails e os entrega com o mailer de destino
type Consumer struct {
	url      string
	queue    string
	delivery ports.Mailer
	logger   ports.Logger
}

// NewConsumer cria um Consumer
func NewConsumer(url, queue string, delivery ports.Mailer, logger ports.Logger) *Consumer {
	return &Consumer{url: url, queue: queue, delivery: delivery, logger: logger}
}

// Run consome até o contexto ser cancelado, reconectando com backoff exponencial
func (c *Consumer) Run(ctx context.Context) error {
	backoff := time.Second

	for {
		conn, err := amqp.Dial(c.url)
		if err == nil {
			backoff = time.Second
			err = c.consume(ctx, conn)
			_ = conn.Close()
		}
		if ctx.Err() != nil {
			return nil
		}

		c.logger.Warn("mail consumer disconnected", "error", err, "retry_in", backoff.String())
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(backoff):
		}
		if backoff < maxBackoff {
			backoff *= 2
		}
	}
}

func (c *Consumer) consume(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(10, 0, false); err != nil {
		c.logger.Warn("mail consumer qos failed", "error", err)
	}
	if err := declareQueue(ch, c.queue); err != nil {
		return err
	}

	deliveries, err := ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	c.logger.Info("mail consumer started", "queue", c.queue)
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			if err := c.handle(ctx, d.Body); err != nil {
				c.logger.Error("mail delivery failed", "error", err)
				// sem requeue para não entrar em loop com mensagens inválidas
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, body []byte) error {
	var event ConfirmationEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if event.Email == "" || event.Code == "" {
		return errors.New("incomplete confirmation event")
	}
	return c.delivery.SendConfirmationCode(ctx, event.Email, event.Code)
}
