package amqp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/budget_tracker/internal/core/domain"
	portsmsg "github.com/SscSPs/budget_tracker/internal/core/ports/messaging"
	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// channel is the subset of *amqp091.Channel the publisher uses.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// Publisher sends transaction lifecycle events to a durable topic exchange.
type Publisher struct {
	conn         *amqp091.Connection
	channel      channel
	exchangeName string
	routingKey   string
	now          func() time.Time
}

var _ portsmsg.TransactionEventPublisher = (*Publisher)(nil)

// NewPublisher dials url and declares the exchange.
func NewPublisher(url, exchangeName, routingKey string) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	p, err := newPublisherWithChannel(ch, exchangeName, routingKey)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

func newPublisherWithChannel(ch channel, exchangeName, routingKey string) (*Publisher, error) {
	err := ch.ExchangeDeclare(
		exchangeName, // name
		"topic",      // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &Publisher{
		channel:      ch,
		exchangeName: exchangeName,
		routingKey:   routingKey,
		now:          time.Now,
	}, nil
}

// eventRoutingKey appends the event type, e.g. "transactions.transaction.created".
func (p *Publisher) eventRoutingKey(eventType domain.TransactionEventType) string {
	return p.routingKey + "." + string(eventType)
}

// buildMessage encodes event as a persistent JSON publishing.
func (p *Publisher) buildMessage(event domain.TransactionEvent) (amqp091.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp091.Publishing{}, fmt.Errorf("marshal event: %w", err)
	}
	return amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    event.Transaction.TransactionID,
		Type:         string(event.Type),
		Timestamp:    p.now(),
		Body:         body,
	}, nil
}

// PublishTransactionEvent publishes one event, bounded by publishTimeout.
func (p *Publisher) PublishTransactionEvent(ctx context.Context, event domain.TransactionEvent) error {
	msg, err := p.buildMessage(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	key := p.eventRoutingKey(event.Type)
	err = p.channel.PublishWithContext(
		ctx,
		p.exchangeName, // exchange
		key,            // routing key
		false,          // mandatory
		false,          // immediate
		msg,
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	slog.DebugContext(ctx, "Published transaction event",
		"type", event.Type,
		"transaction_id", event.Transaction.TransactionID,
		"exchange", p.exchangeName,
		"routing_key", key)

	return nil
}

// Close releases the channel and the connection.
func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NoopPublisher discards every event. Used when no broker is configured.
type NoopPublisher struct{}

var _ portsmsg.TransactionEventPublisher = NoopPublisher{}

// PublishTransactionEvent implements portsmsg.TransactionEventPublisher.
func (NoopPublisher) PublishTransactionEvent(context.Context, domain.TransactionEvent) error {
	return nil
}
