package interfaces

import (
	"context"

	"github.com/YelzhanWeb/foodorder/internal/domain"
)

// Коллабораторы экрана (Adapter/APIClient, Adapter/Terminal)

// FoodAPI is the remote food API as seen by the food details screen
type FoodAPI interface {
	GetFood(ctx context.Context, id int) (*domain.Item, error)
	GetFavorite(ctx context.Context, id int) (*domain.Favorite, error)
	AddFavorite(ctx context.Context, favorite domain.Favorite) error
	RemoveFavorite(ctx context.Context, id int) error
	CreateOrder(ctx context.Context, order domain.Order) (*domain.Order, error)
}

type OrderLister interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
}

// HeaderAction is the control a screen mounts in the navigation header
type HeaderAction struct {
	Icon    string
	OnPress func(ctx context.Context) error
}

type Navigator interface {
	NavigateTo(screen string)
	SetHeaderAction(action HeaderAction)
}

type CurrencyFormatter = domain.Formatter
