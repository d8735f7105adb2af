package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/YelzhanWeb/foodorder/internal/adapter/logger"
	"github.com/YelzhanWeb/foodorder/internal/domain"
	"github.com/YelzhanWeb/foodorder/internal/interfaces"
)

type Service struct {
	foods     interfaces.FoodRepository
	favorites interfaces.FavoriteRepository
	orders    interfaces.OrderRepository
	publisher interfaces.MessagePublisher
	logger    logger.Logger
	now       func() time.Time
}

func NewService(
	foods interfaces.FoodRepository,
	favorites interfaces.FavoriteRepository,
	orders interfaces.OrderRepository,
	publisher interfaces.MessagePublisher,
	logger logger.Logger,
) *Service {
	return &Service{
		foods:     foods,
		favorites: favorites,
		orders:    orders,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *Service) GetFood(ctx context.Context, id int) (*domain.Item, error) {
	return s.foods.FindByID(ctx, id)
}

func (s *Service) GetFavorite(ctx context.Context, id int) (*domain.Favorite, error) {
	return s.favorites.FindByID(ctx, id)
}

// AddFavorite stores the favorites record. Adding an existing favorite
// overwrites it.
func (s *Service) AddFavorite(ctx context.Context, favorite domain.Favorite) (*domain.Favorite, error) {
	if err := favorite.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidFavorite, err)
	}

	if _, err := s.foods.FindByID(ctx, favorite.ID); err != nil {
		return nil, err
	}

	if err := s.favorites.Upsert(ctx, &favorite); err != nil {
		s.logger.Error("db_query_failed", "Failed to store favorite", "", map[string]interface{}{"food_id": favorite.ID}, err)
		return nil, err
	}

	s.logger.Debug("favorite_added", "Favorite added", "", map[string]interface{}{"food_id": favorite.ID})
	return &favorite, nil
}

// RemoveFavorite deletes the favorites record; removing a missing one is
// not an error.
func (s *Service) RemoveFavorite(ctx context.Context, id int) error {
	if err := s.favorites.Delete(ctx, id); err != nil {
		s.logger.Error("db_query_failed", "Failed to delete favorite", "", map[string]interface{}{"food_id": id}, err)
		return err
	}

	s.logger.Debug("favorite_removed", "Favorite removed", "", map[string]interface{}{"food_id": id})
	return nil
}

func (s *Service) PlaceOrder(ctx context.Context, order domain.Order) (*domain.Order, error) {
	// 1. Валидация и пересчет суммы
	if err := order.Accept(s.now()); err != nil {
		s.logger.Error("validation_failed", "Order validation failed", "", nil, err)
		return nil, err
	}

	// 2. Сохранение в БД
	if err := s.orders.Create(ctx, &order); err != nil {
		s.logger.Error("db_transaction_failed", "Failed to create order", "", map[string]interface{}{"order_id": order.ID}, err)
		return nil, err
	}
	s.logger.Debug("order_received", "Order stored", "", map[string]interface{}{"order_id": order.ID})

	// 3. Публикация сообщения в RabbitMQ
	msg := interfaces.OrderPlacedMessage{
		OrderID:     order.ID,
		ProductID:   order.ProductID,
		ProductName: order.Name,
		Quantity:    order.Quantity,
		ExtraCount:  len(order.Extras),
		Total:       order.Total,
		PlacedAt:    *order.CreatedAt,
	}

	if err := s.publisher.PublishOrderPlaced(ctx, msg); err != nil {
		// Заказ уже сохранен, уведомление не блокирует ответ
		s.logger.Error("rabbitmq_publish_failed", "Failed to publish order", "", map[string]interface{}{"order_id": order.ID}, err)
	} else {
		s.logger.Debug("order_published", "Order published to RabbitMQ", "", map[string]interface{}{"order_id": order.ID})
	}

	return &order, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}
