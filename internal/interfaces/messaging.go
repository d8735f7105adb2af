package interfaces

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Сообщения RabbitMQ
type OrderPlacedMessage struct {
	OrderID     int64           `json:"order_id"`
	ProductID   int             `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	ExtraCount  int             `json:"extra_count"`
	Total       decimal.Decimal `json:"total"`
	PlacedAt    time.Time       `json:"placed_at"`
}

// Интерфейсы Messaging (Adapter/RabbitMQ)
type MessagePublisher interface {
	PublishOrderPlaced(ctx context.Context, msg OrderPlacedMessage) error
}

type MessageConsumer interface {
	ConsumeOrders(ctx context.Context, handler OrderMessageHandler) error
}

type OrderMessageHandler func(ctx context.Context, body []byte) error
