package interfaces

import (
	"context"

	"github.com/YelzhanWeb/foodorder/internal/domain"
)

// CatalogService backs the food API served to the food details screen
type CatalogService interface {
	GetFood(ctx context.Context, id int) (*domain.Item, error)
	GetFavorite(ctx context.Context, id int) (*domain.Favorite, error)
	AddFavorite(ctx context.Context, favorite domain.Favorite) (*domain.Favorite, error)
	RemoveFavorite(ctx context.Context, id int) error
	PlaceOrder(ctx context.Context, order domain.Order) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
}
