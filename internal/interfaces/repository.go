package interfaces

import (
	"context"

	"github.com/YelzhanWeb/foodorder/internal/domain"
)

// Интерфейсы Репозиториев (Adapter/Postgres)
type FoodRepository interface {
	FindByID(ctx context.Context, id int) (*domain.Item, error)
	Create(ctx context.Context, item *domain.Item) error
}

type FavoriteRepository interface {
	FindByID(ctx context.Context, id int) (*domain.Favorite, error)
	Upsert(ctx context.Context, favorite *domain.Favorite) error
	Delete(ctx context.Context, id int) error
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	List(ctx context.Context) ([]domain.Order, error)
}
