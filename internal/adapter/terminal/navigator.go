package terminal

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/YelzhanWeb/foodorder/internal/adapter/logger"
	"github.com/YelzhanWeb/foodorder/internal/app/fooddetails"
	"github.com/YelzhanWeb/foodorder/internal/interfaces"
)

// Navigator keeps the header control of the current screen and renders the
// screen it is sent to.
type Navigator struct {
	out      io.Writer
	orders   interfaces.OrderLister
	currency interfaces.CurrencyFormatter
	logger   logger.Logger

	mu      sync.Mutex
	header  interfaces.HeaderAction
	current string
}

func NewNavigator(out io.Writer, orders interfaces.OrderLister, currency interfaces.CurrencyFormatter, logger logger.Logger) *Navigator {
	return &Navigator{
		out:      out,
		orders:   orders,
		currency: currency,
		logger:   logger,
	}
}

func (n *Navigator) SetHeaderAction(action interfaces.HeaderAction) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.header = action
}

func (n *Navigator) HeaderAction() interfaces.HeaderAction {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.header
}

func (n *Navigator) NavigateTo(screen string) {
	n.mu.Lock()
	n.current = screen
	n.header = interfaces.HeaderAction{}
	n.mu.Unlock()

	n.logger.Debug("navigate", fmt.Sprintf("Navigating to %s", screen), "", nil)

	if screen != fooddetails.OrdersScreen {
		return
	}

	orders, err := n.orders.ListOrders(context.Background())
	if err != nil {
		n.logger.Error("orders_load_failed", "Failed to load orders", "", nil, err)
		fmt.Fprintf(n.out, "Não foi possível carregar os pedidos: %v\n", err)
		return
	}
	RenderOrders(n.out, n.currency, orders)
}

// Current returns the screen the navigator was last sent to
func (n *Navigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}
