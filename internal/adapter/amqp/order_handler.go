package amqp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/YelzhanWeb/foodorder/internal/adapter/logger"
	"github.com/YelzhanWeb/foodorder/internal/interfaces"
)

var ErrMalformedMessage = errors.New("malformed order message")

// OrderPlacedHandler prints every placed order to the kitchen display
type OrderPlacedHandler struct {
	out      io.Writer
	currency interfaces.CurrencyFormatter
	logger   logger.Logger
}

func NewOrderPlacedHandler(out io.Writer, currency interfaces.CurrencyFormatter, logger logger.Logger) *OrderPlacedHandler {
	return &OrderPlacedHandler{
		out:      out,
		currency: currency,
		logger:   logger,
	}
}

func (h *OrderPlacedHandler) HandleOrderPlaced(ctx context.Context, body []byte) error {
	var msg interfaces.OrderPlacedMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		h.logger.Error("message_parse_failed", "Failed to parse order message", "", nil, err)
		return fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	if msg.OrderID <= 0 || msg.Quantity < 1 {
		return fmt.Errorf("%w: order %d quantity %d", ErrMalformedMessage, msg.OrderID, msg.Quantity)
	}

	requestID := fmt.Sprintf("%d", msg.OrderID)
	h.logger.Info("order_placed_received", fmt.Sprintf("Order %d placed", msg.OrderID), requestID,
		map[string]interface{}{
			"product_id":  msg.ProductID,
			"quantity":    msg.Quantity,
			"extra_count": msg.ExtraCount,
			"total":       msg.Total.String(),
		})

	_, err := fmt.Fprintf(h.out, "Novo pedido #%d: %dx %s (+%d adicionais)  %s\n",
		msg.OrderID, msg.Quantity, msg.ProductName, msg.ExtraCount, h.currency.Format(msg.Total))
	return err
}
