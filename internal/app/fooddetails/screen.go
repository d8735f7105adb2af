package fooddetails

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/YelzhanWeb/foodorder/internal/adapter/logger"
	"github.com/YelzhanWeb/foodorder/internal/domain"
	"github.com/YelzhanWeb/foodorder/internal/interfaces"
	"github.com/shopspring/decimal"
)

// OrdersScreen is where the navigator goes after a successful submission
const OrdersScreen = "Orders"

var (
	ErrStale     = errors.New("screen no longer shows this food")
	ErrNotLoaded = errors.New("food not loaded")
)

// View is the render state of the screen
type View struct {
	Food           domain.Item
	FormattedPrice string
	Extras         []domain.Extra
	Quantity       int
	Total          decimal.Decimal
	FormattedTotal string
	Favorite       bool
	FavoriteIcon   string
	FavoriteSync   domain.FavoriteSync
}

// Screen is the controller of one food details visit. User actions are
// applied one at a time; network results are applied only while the screen
// still shows the food they were requested for.
type Screen struct {
	foodID   int
	api      interfaces.FoodAPI
	nav      interfaces.Navigator
	currency interfaces.CurrencyFormatter
	logger   logger.Logger
	now      func() time.Time

	mu          sync.Mutex
	generation  uint64
	closed      bool
	composer    *domain.Composer
	favoriteSeq uint64
}

func NewScreen(
	foodID int,
	api interfaces.FoodAPI,
	nav interfaces.Navigator,
	currency interfaces.CurrencyFormatter,
	logger logger.Logger,
) *Screen {
	return &Screen{
		foodID:   foodID,
		api:      api,
		nav:      nav,
		currency: currency,
		logger:   logger,
		now:      time.Now,
	}
}

// Load fetches the food and then its favorite status. A failed favorite
// lookup counts as "not favorite".
func (s *Screen) Load(ctx context.Context) (View, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return View{}, ErrStale
	}
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	item, err := s.api.GetFood(ctx, s.foodID)
	if err != nil {
		s.logger.Error("food_load_failed", "Failed to load food", "", map[string]interface{}{"food_id": s.foodID}, err)
		return View{}, fmt.Errorf("failed to load food %d: %w", s.foodID, err)
	}

	favorite := s.lookupFavorite(ctx)

	s.mu.Lock()
	if s.closed || gen != s.generation {
		s.mu.Unlock()
		s.logger.Debug("stale_response_dropped", "Dropped food response for an outdated load", "", map[string]interface{}{
			"food_id": s.foodID,
		})
		return View{}, ErrStale
	}

	s.composer = domain.NewComposer(*item)
	s.composer.SetFavorite(favorite)
	view := s.viewLocked()
	s.mountHeaderLocked(view.FavoriteIcon)
	s.mu.Unlock()

	s.logger.Debug("food_loaded", "Food loaded", "", map[string]interface{}{
		"food_id":  s.foodID,
		"extras":   len(view.Extras),
		"favorite": favorite,
	})

	return view, nil
}

func (s *Screen) lookupFavorite(ctx context.Context) bool {
	favorite, err := s.api.GetFavorite(ctx, s.foodID)
	if err != nil {
		s.logger.Debug("favorite_lookup_failed", "Favorite lookup failed, treating as not favorite", "", map[string]interface{}{
			"food_id": s.foodID,
			"error":   err.Error(),
		})
		return false
	}
	return favorite.ID == s.foodID
}

// Close tears the screen down. Responses that arrive afterwards are dropped.
func (s *Screen) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.generation++
}

func (s *Screen) View() (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.composer == nil {
		return View{}, ErrNotLoaded
	}
	return s.viewLocked(), nil
}

func (s *Screen) IncrementExtra(id int) (View, error) {
	return s.update(func(c *domain.Composer) { c.IncrementExtra(id) })
}

func (s *Screen) DecrementExtra(id int) (View, error) {
	return s.update(func(c *domain.Composer) { c.DecrementExtra(id) })
}

func (s *Screen) IncrementQuantity() (View, error) {
	return s.update(func(c *domain.Composer) { c.IncrementQuantity() })
}

func (s *Screen) DecrementQuantity() (View, error) {
	return s.update(func(c *domain.Composer) { c.DecrementQuantity() })
}

func (s *Screen) update(mutate func(c *domain.Composer)) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.composer == nil {
		return View{}, ErrNotLoaded
	}
	mutate(s.composer)
	return s.viewLocked(), nil
}

// ToggleFavorite flips the favorite flag right away and then writes it to
// the favorites collection. A failed write leaves the flag flipped and marks
// the sync state as failed.
func (s *Screen) ToggleFavorite(ctx context.Context) (View, error) {
	s.mu.Lock()
	if s.composer == nil {
		s.mu.Unlock()
		return View{}, ErrNotLoaded
	}
	composer := s.composer
	favorite := composer.ToggleFavorite()
	s.favoriteSeq++
	seq := s.favoriteSeq
	record := composer.Item().Favorite()
	s.mountHeaderLocked(domain.FavoriteIcon(favorite))
	s.mu.Unlock()

	var err error
	if favorite {
		err = s.api.AddFavorite(ctx, record)
	} else {
		err = s.api.RemoveFavorite(ctx, record.ID)
	}

	s.mu.Lock()
	if s.composer == composer && s.favoriteSeq == seq {
		if err != nil {
			composer.MarkFavoriteSync(domain.FavoriteSyncFailed)
		} else {
			composer.MarkFavoriteSync(domain.FavoriteSyncCommitted)
		}
	}
	view := s.viewLocked()
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("favorite_sync_failed", "Failed to update favorites", "", map[string]interface{}{
			"food_id":  record.ID,
			"favorite": favorite,
		}, err)
		return view, fmt.Errorf("failed to update favorite %d: %w", record.ID, err)
	}

	return view, nil
}

// SubmitOrder sends the current draft to the order collection and leaves
// the screen once the API accepted it.
func (s *Screen) SubmitOrder(ctx context.Context) (domain.Order, error) {
	s.mu.Lock()
	if s.composer == nil {
		s.mu.Unlock()
		return domain.Order{}, ErrNotLoaded
	}
	order := s.composer.Order(s.newOrderID(s.composer.Item().ID))
	s.mu.Unlock()

	if _, err := s.api.CreateOrder(ctx, order); err != nil {
		s.logger.Error("order_submit_failed", "Failed to submit order", "", map[string]interface{}{
			"order_id": order.ID,
			"food_id":  order.ProductID,
		}, err)
		return order, fmt.Errorf("failed to submit order: %w", err)
	}

	s.logger.Info("order_submitted", "Order submitted", "", map[string]interface{}{
		"order_id": order.ID,
		"food_id":  order.ProductID,
		"quantity": order.Quantity,
		"extras":   len(order.Extras),
		"total":    order.Total.String(),
	})

	s.nav.NavigateTo(OrdersScreen)
	return order, nil
}

// newOrderID derives the order id from the submission time in milliseconds
func (s *Screen) newOrderID(foodID int) int64 {
	id := s.now().UnixMilli()
	if id == int64(foodID) {
		id++
	}
	return id
}

// mountHeaderLocked publishes the header control. Holding s.mu keeps the
// mounted icon in step with the favorite flag.
func (s *Screen) mountHeaderLocked(icon string) {
	if s.closed {
		return
	}
	s.nav.SetHeaderAction(interfaces.HeaderAction{
		Icon: icon,
		OnPress: func(ctx context.Context) error {
			_, err := s.ToggleFavorite(ctx)
			return err
		},
	})
}

func (s *Screen) viewLocked() View {
	c := s.composer
	total := c.Total()
	item := c.Item()

	return View{
		Food:           item,
		FormattedPrice: s.currency.Format(item.Price),
		Extras:         c.Extras(),
		Quantity:       c.Quantity(),
		Total:          total,
		FormattedTotal: c.FormattedTotal(s.currency),
		Favorite:       c.IsFavorite(),
		FavoriteIcon:   domain.FavoriteIcon(c.IsFavorite()),
		FavoriteSync:   c.FavoriteSync(),
	}
}
