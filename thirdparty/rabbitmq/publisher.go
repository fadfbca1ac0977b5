package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/afribrok/marketplace-bff/constant"
	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
)

// EventPublisher is what the application layer depends on, so tests can pass nil or a mock.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
}

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

// Event is the envelope of every message on the marketplace events exchange.
type Event struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

type InquirySubmittedMessage struct {
	ListingID string `json:"listing_id"`
	InquiryID string `json:"inquiry_id,omitempty"`
	Email     string `json:"email"`
	TenantID  string `json:"tenant_id,omitempty"`
}

type ListingModeratedMessage struct {
	ListingID string `json:"listing_id"`
	Action    string `json:"action"`
	Role      string `json:"role,omitempty"`
	TenantID  string `json:"tenant_id,omitempty"`
}

type SettingsUpdatedMessage struct {
	Version int  `json:"version"`
	Reset   bool `json:"reset"`
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	err = channel.ExchangeDeclare(
		constant.EventsExchange, // name
		"topic",                 // type
		true,                    // durable
		false,                   // auto-delete
		false,                   // internal
		false,                   // no-wait
		nil,                     // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, channel: channel}, nil
}

func (p *Publisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	event, err := json.Marshal(Event{
		ID:         uuid.NewString(),
		Type:       routingKey,
		OccurredAt: time.Now().UTC(),
		Payload:    body,
	})
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(
		ctx,
		constant.EventsExchange, // exchange
		routingKey,              // routing key
		false,                   // mandatory
		false,                   // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Body:         event,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
