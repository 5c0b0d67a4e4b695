// Package events публикует доменные события расписания в RabbitMQ
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher публикует события в durable topic-exchange.
// Ошибки публикации логируются и возвращаются, вызывающая сторона решает, игнорировать ли их.
type Publisher struct {
	mu       sync.Mutex
	conn     io.Closer
	channel  Channel
	exchange string
	timeout  time.Duration
	log      Logger
	closed   bool
}

// Dial подключается к брокеру, открывает канал и объявляет exchange
func Dial(url, exchange string, timeout time.Duration, log Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}

	p, err := NewPublisher(ch, exchange, timeout, log)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn

	return p, nil
}

// NewPublisher создает publisher поверх открытого канала и объявляет exchange
func NewPublisher(ch Channel, exchange string, timeout time.Duration, log Logger) (*Publisher, error) {
	if err := ch.ExchangeDeclare(
		exchange, // name
		amqp.ExchangeTopic,
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	); err != nil {
		return nil, fmt.Errorf("%w: declare exchange %s: %v", ErrConnect, exchange, err)
	}

	return &Publisher{
		channel:  ch,
		exchange: exchange,
		timeout:  timeout,
		log:      log,
	}, nil
}

// ReservationCreated публикует событие создания брони
func (p *Publisher) ReservationCreated(ctx context.Context, event ReservationCreated) error {
	return p.publish(ctx, RoutingReservationCreated, event)
}

// ShiftsExpanded публикует событие разворачивания смены
func (p *Publisher) ShiftsExpanded(ctx context.Context, event ShiftsExpanded) error {
	return p.publish(ctx, RoutingShiftsExpanded, event)
}

// EntitiesArchived публикует событие архивации
func (p *Publisher) EntitiesArchived(ctx context.Context, event EntitiesArchived) error {
	return p.publish(ctx, RoutingEntitiesArchived, event)
}

// Close закрывает канал и соединение
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	err := p.channel.Close()
	if p.conn != nil {
		if connErr := p.conn.Close(); err == nil {
			err = connErr
		}
	}
	return err
}

func (p *Publisher) publish(ctx context.Context, key string, event interface{}) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMarshal, err)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	// amqp.Channel не безопасен для параллельной публикации
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	err = p.channel.PublishWithContext(ctx,
		p.exchange,
		key,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		p.log.Error("Publish: failed to publish %s: %v", key, err)
		return fmt.Errorf("%w: %s: %v", ErrPublish, key, err)
	}

	p.log.Info("Publish: %s sent to exchange %s", key, p.exchange)
	return nil
}

// Noop publisher для запуска без брокера
type Noop struct{}

// ReservationCreated ничего не делает
func (Noop) ReservationCreated(context.Context, ReservationCreated) error { return nil }

// ShiftsExpanded ничего не делает
func (Noop) ShiftsExpanded(context.Context, ShiftsExpanded) error { return nil }

// EntitiesArchived ничего не делает
func (Noop) EntitiesArchived(context.Context, EntitiesArchived) error { return nil }

// Close ничего не делает
func (Noop) Close() error { return nil }
