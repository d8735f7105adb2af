package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Order represents a submitted food order: the item fields, the base
// quantity and the extras that were actually selected.
type Order struct {
	ID          int64           `json:"id"`
	ProductID   int             `json:"product_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	Quantity    int             `json:"quantity"`
	Extras      []Extra         `json:"extras"`
	Total       decimal.Decimal `json:"total"`
	CreatedAt   *time.Time      `json:"created_at,omitempty"`
}

// Validate applies business validation rules
func (o *Order) Validate() error {
	if o.ID <= 0 {
		return errors.New("order id must be positive")
	}

	if o.ProductID <= 0 {
		return errors.New("product id must be positive")
	}

	if o.Name == "" {
		return errors.New("product name is required")
	}

	if o.Quantity < 1 {
		return errors.New("quantity must be at least 1")
	}

	if o.Price.IsNegative() {
		return errors.New("price must not be negative")
	}

	seen := make(map[int]bool, len(o.Extras))
	for _, extra := range o.Extras {
		if seen[extra.ID] {
			return fmt.Errorf("extra %d listed twice", extra.ID)
		}
		seen[extra.ID] = true

		if extra.Quantity < 1 {
			return fmt.Errorf("extra %d quantity must be at least 1", extra.ID)
		}
		if extra.Value.IsNegative() {
			return fmt.Errorf("extra %d value must not be negative", extra.ID)
		}
	}

	return nil
}

// CalculateTotal recalculates the total amount of the order
func (o *Order) CalculateTotal() {
	total := o.Price.Mul(decimal.NewFromInt(int64(o.Quantity)))
	for _, extra := range o.Extras {
		total = total.Add(extra.Value.Mul(decimal.NewFromInt(int64(extra.Quantity))))
	}
	o.Total = total
}

// Accept prepares a submitted order for storage
func (o *Order) Accept(now time.Time) error {
	if err := o.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOrder, err)
	}

	if o.Extras == nil {
		o.Extras = []Extra{}
	}
	o.CalculateTotal()
	createdAt := now.UTC()
	o.CreatedAt = &createdAt

	return nil
}
