package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/YelzhanWeb/foodorder/internal/adapter/logger"
	"github.com/YelzhanWeb/foodorder/internal/interfaces"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	NotificationsQueue = "order_notifications"
	dlqExchange        = "orders_dlq"
	dlqQueue           = "order_notifications_dlq"
)

// ErrRetryLater asks the consumer to requeue a message instead of dead-lettering it
var ErrRetryLater = errors.New("retry later")

type consumer struct {
	conn           Connection
	prefetch       int
	logger         logger.Logger
	reconnectDelay time.Duration
}

func NewConsumer(conn Connection, prefetch int, logger logger.Logger) interfaces.MessageConsumer {
	return &consumer{conn: conn, prefetch: prefetch, logger: logger, reconnectDelay: 5 * time.Second}
}

func (c *consumer) ConsumeOrders(ctx context.Context, handler interfaces.OrderMessageHandler) error {
	for {
		err := c.consumeOrdersWithReconnect(ctx, handler)

		// Если контекст отменен - выходим
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err == nil {
			return nil
		}

		c.logger.Error("consumer_disconnected",
			fmt.Sprintf("Orders consumer disconnected, reconnecting in %s", c.reconnectDelay), "", nil, err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.reconnectDelay):
		}

		if c.conn.IsClosed() {
			if err := c.conn.Reconnect(ctx); err != nil {
				c.logger.Error("reconnect_failed", "Failed to reconnect to RabbitMQ", "", nil, err)
			}
		}
	}
}

func (c *consumer) consumeOrdersWithReconnect(ctx context.Context, handler interfaces.OrderMessageHandler) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	// Отслеживаем закрытие канала
	closeChan := ch.NotifyClose()

	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		return fmt.Errorf("failed to set QoS: %w", err)
	}

	if err := setupNotificationsInfrastructure(ch); err != nil {
		return err
	}

	msgs, err := ch.Consume(NotificationsQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err := <-closeChan:
			if err != nil {
				return fmt.Errorf("channel closed: %w", err)
			}
			return fmt.Errorf("channel closed gracefully")

		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("messages channel closed")
			}
			c.dispatch(ctx, msg, handler)
		}
	}
}

func (c *consumer) dispatch(ctx context.Context, msg amqp.Delivery, handler interfaces.OrderMessageHandler) {
	err := handler(ctx, msg.Body)
	switch {
	case err == nil:
		msg.Ack(false)
	case errors.Is(err, ErrRetryLater):
		msg.Nack(false, true)
	default:
		// Отправляем в DLQ (requeue=false)
		c.logger.Error("message_rejected", "Message sent to dead letter queue", msg.MessageId, nil, err)
		msg.Nack(false, false)
	}
}

func setupNotificationsInfrastructure(ch Channel) error {
	if err := ch.ExchangeDeclare(OrdersExchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare orders exchange: %w", err)
	}

	if err := ch.ExchangeDeclare(dlqExchange, "fanout", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare DLQ exchange: %w", err)
	}

	if _, err := ch.QueueDeclare(dlqQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare DLQ: %w", err)
	}

	if err := ch.QueueBind(dlqQueue, "", dlqExchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind DLQ: %w", err)
	}

	args := amqp.Table{
		"x-dead-letter-exchange": dlqExchange,
	}

	q, err := ch.QueueDeclare(NotificationsQueue, true, false, false, false, args)
	if err != nil {
		return fmt.Errorf("failed to declare notifications queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, "order.#", OrdersExchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind notifications queue: %w", err)
	}

	return nil
}
