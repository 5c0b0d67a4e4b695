package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShiftService/pkg/logger"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	declared   []string
	published  []published
	publishErr error
	closed     bool
}

func (c *fakeChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	c.declared = append(c.declared, name+":"+kind)
	return nil
}

func (c *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	if c.publishErr != nil {
		return c.publishErr
	}
	c.published = append(c.published, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

func TestPublisher_ReservationCreated(t *testing.T) {
	ch := &fakeChannel{}
	p, err := NewPublisher(ch, "scheduling", time.Second, logger.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"scheduling:topic"}, ch.declared)

	err = p.ReservationCreated(context.Background(), ReservationCreated{ReservationID: 1, ShiftID: 2, Code: "abcDEF123"})
	require.NoError(t, err)

	require.Len(t, ch.published, 1)
	got := ch.published[0]
	assert.Equal(t, "scheduling", got.exchange)
	assert.Equal(t, RoutingReservationCreated, got.key)
	assert.Equal(t, amqp.Persistent, got.msg.DeliveryMode)

	var event ReservationCreated
	require.NoError(t, json.Unmarshal(got.msg.Body, &event))
	assert.Equal(t, "abcDEF123", event.Code)
}

func TestPublisher_PublishError(t *testing.T) {
	ch := &fakeChannel{publishErr: errors.New("channel closed")}
	p, err := NewPublisher(ch, "scheduling", 0, logger.NewNop())
	require.NoError(t, err)

	err = p.EntitiesArchived(context.Background(), EntitiesArchived{EntityType: "shift", IDs: []int64{1}})
	assert.ErrorIs(t, err, ErrPublish)
}

func TestPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	p, err := NewPublisher(ch, "scheduling", 0, logger.NewNop())
	require.NoError(t, err)

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	assert.True(t, ch.closed)

	err = p.ShiftsExpanded(context.Background(), ShiftsExpanded{RootShiftID: 1})
	assert.ErrorIs(t, err, ErrClosed)
}
