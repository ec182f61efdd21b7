package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

const defaultPublishTimeout = 5 * time.Second

// amqpChannel is the part of *amqp.Channel the publisher uses
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

// AMQPPublisher forwards events to a RabbitMQ topic exchange.
// The routing key is the event type, e.g. item.created. A channel the broker
// has closed is reopened on the next publish, redialing if the connection
// went with it.
type AMQPPublisher struct {
	conn     *amqp.Connection
	channel  amqpChannel
	open     func() (amqpChannel, error)
	exchange string
	timeout  time.Duration
	logger   *zap.Logger
	mu       sync.Mutex
}

// NewAMQPPublisher dials the broker and declares a durable topic exchange
func NewAMQPPublisher(cfg config.EventConfig, logger *zap.Logger) (*AMQPPublisher, error) {
	p := newAMQPPublisher(nil, cfg.Exchange, cfg.PublishTimeout, logger)
	p.open = func() (amqpChannel, error) { return p.connect(cfg) }

	ch, err := p.open()
	if err != nil {
		if p.conn != nil {
			_ = p.conn.Close()
		}
		return nil, err
	}
	p.channel = ch
	return p, nil
}

// connect opens a channel on the current connection, dialing a new one when
// there is none or the broker closed it
func (p *AMQPPublisher) connect(cfg config.EventConfig) (amqpChannel, error) {
	if p.conn == nil || p.conn.IsClosed() {
		conn, err := amqp.Dial(cfg.AMQPURL)
		if err != nil {
			return nil, fmt.Errorf("dial AMQP: %w", err)
		}
		p.conn = conn
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(
		cfg.Exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", cfg.Exchange, err)
	}
	return ch, nil
}

// ensureChannel must be called with p.mu held
func (p *AMQPPublisher) ensureChannel() error {
	if p.channel != nil && !p.channel.IsClosed() {
		return nil
	}
	if p.open == nil {
		return amqp.ErrClosed
	}
	if p.channel != nil {
		_ = p.channel.Close()
		p.channel = nil
	}
	ch, err := p.open()
	if err != nil {
		return fmt.Errorf("reopen AMQP channel: %w", err)
	}
	p.channel = ch
	p.logger.Warn("AMQP channel reopened", zap.String("exchange", p.exchange))
	return nil
}

func newAMQPPublisher(ch amqpChannel, exchange string, timeout time.Duration, logger *zap.Logger) *AMQPPublisher {
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}
	return &AMQPPublisher{
		channel:  ch,
		exchange: exchange,
		timeout:  timeout,
		logger:   logger.Named("amqp"),
	}
}

// Handle implements shared.EventHandler by publishing event as a persistent message
func (p *AMQPPublisher) Handle(ctx context.Context, event shared.DomainEvent) error {
	body, err := Marshal(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	p.mu.Lock()
	if err := p.ensureChannel(); err != nil {
		p.mu.Unlock()
		return fmt.Errorf("publish %s: %w", event.EventType(), err)
	}
	err = p.channel.PublishWithContext(ctx, p.exchange, event.EventType(), false, false, amqp.Publishing{
		ContentType:  ContentType,
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID().String(),
		Timestamp:    event.OccurredAt(),
		Type:         event.EventType(),
		Body:         body,
	})
	p.mu.Unlock()
	if err != nil {
		return fmt.Errorf("publish %s: %w", event.EventType(), err)
	}

	p.logger.Debug("event published",
		zap.String("exchange", p.exchange),
		zap.String("routing_key", event.EventType()),
		zap.String("event_id", event.EventID().String()),
	)
	return nil
}

// EventTypes implements shared.EventHandler; empty means every event
func (p *AMQPPublisher) EventTypes() []string {
	return nil
}

// Close closes the channel and the connection
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
