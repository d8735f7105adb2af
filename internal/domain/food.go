package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

func init() {
	// The food API exchanges prices as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Item represents a food item as served by the food API
type Item struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	Extras      []Extra         `json:"extras,omitempty"`
}

// Extra is an optional add-on of an Item. Quantity is the only field that
// changes while a food is on screen.
type Extra struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Value    decimal.Decimal `json:"value"`
	Quantity int             `json:"quantity"`
}

// Favorite is the record stored in the favorites collection: the item
// without its extras.
type Favorite struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
}

// Favorite returns the favorites record for the item
func (i Item) Favorite() Favorite {
	return Favorite{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
		ImageURL:    i.ImageURL,
	}
}

// Validate applies the catalog rules for a food item
func (i Item) Validate() error {
	if i.ID <= 0 {
		return errors.New("food id must be positive")
	}
	if i.Name == "" {
		return errors.New("food name is required")
	}
	if i.Price.IsNegative() {
		return errors.New("food price must not be negative")
	}

	seen := make(map[int]bool, len(i.Extras))
	for _, extra := range i.Extras {
		if seen[extra.ID] {
			return errors.New("extra ids must be unique within a food")
		}
		seen[extra.ID] = true
		if extra.Value.IsNegative() {
			return errors.New("extra value must not be negative")
		}
	}

	return nil
}

// Validate checks the favorites record before it is stored
func (f Favorite) Validate() error {
	if f.ID <= 0 {
		return errors.New("favorite id must be positive")
	}
	if f.Price.IsNegative() {
		return errors.New("favorite price must not be negative")
	}
	return nil
}

var (
	ErrFoodNotFound     = errors.New("food not found")
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrOrderExists      = errors.New("order already exists")
	ErrInvalidOrder     = errors.New("invalid order")
	ErrInvalidFavorite  = errors.New("invalid favorite")
)
