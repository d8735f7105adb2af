package rabbitmq

import (
	"context"
	"errors"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type binding struct {
	queue    string
	key      string
	exchange string
}

type fakeChannel struct {
	mu         sync.Mutex
	exchanges  map[string]string
	queues     map[string]amqp.Table
	bindings   []binding
	published  []published
	publishErr error
	deliveries chan amqp.Delivery
	closeCh    chan *amqp.Error
	closed     bool
}

func newFakeChannel() *fakeChannel {
	return &fakeChannel{
		exchanges:  map[string]string{},
		queues:     map[string]amqp.Table{},
		deliveries: make(chan amqp.Delivery, 8),
		closeCh:    make(chan *amqp.Error, 1),
	}
}

func (ch *fakeChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.exchanges[name] = kind
	return nil
}

func (ch *fakeChannel) QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (Queue, error) {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.queues[name] = args
	return Queue{Name: name}, nil
}

func (ch *fakeChannel) QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.bindings = append(ch.bindings, binding{queue: name, key: key, exchange: exchange})
	return nil
}

func (ch *fakeChannel) Publish(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	if ch.publishErr != nil {
		return ch.publishErr
	}
	ch.published = append(ch.published, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (ch *fakeChannel) Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error) {
	return ch.deliveries, nil
}

func (ch *fakeChannel) Qos(prefetchCount, prefetchSize int, global bool) error { return nil }

func (ch *fakeChannel) Close() error {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.closed = true
	return nil
}

func (ch *fakeChannel) NotifyClose() <-chan *amqp.Error { return ch.closeCh }

type fakeConnection struct {
	mu         sync.Mutex
	channels   []*fakeChannel
	next       int
	closed     bool
	reconnects int
}

func (c *fakeConnection) Channel() (Channel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.next >= len(c.channels) {
		return nil, errors.New("no channel available")
	}
	ch := c.channels[c.next]
	c.next++
	return ch, nil
}

func (c *fakeConnection) Close() error { return nil }

func (c *fakeConnection) IsClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *fakeConnection) Reconnect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reconnects++
	c.closed = false
	return nil
}

// ackRecorder records acknowledgements by delivery tag
type ackRecorder struct {
	mu     sync.Mutex
	acked  []uint64
	nacked map[uint64]bool
	done   chan struct{}
}

func newAckRecorder() *ackRecorder {
	return &ackRecorder{nacked: map[uint64]bool{}, done: make(chan struct{}, 16)}
}

func (a *ackRecorder) Ack(tag uint64, multiple bool) error {
	a.mu.Lock()
	a.acked = append(a.acked, tag)
	a.mu.Unlock()
	a.done <- struct{}{}
	return nil
}

func (a *ackRecorder) Nack(tag uint64, multiple, requeue bool) error {
	a.mu.Lock()
	a.nacked[tag] = requeue
	a.mu.Unlock()
	a.done <- struct{}{}
	return nil
}

func (a *ackRecorder) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}

// fakeBroker stands in for a dialled *amqp.Connection
type fakeBroker struct {
	closed bool
}

func (b *fakeBroker) Channel() (*amqp.Channel, error) { return nil, errors.New("not connected") }
func (b *fakeBroker) IsClosed() bool                  { return b.closed }

func (b *fakeBroker) Close() error {
	b.closed = true
	return nil
}
