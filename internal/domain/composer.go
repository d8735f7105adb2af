package domain

import (
	"github.com/shopspring/decimal"
)

// Composer holds the order draft of one food details visit: the loaded item,
// the extras with their selected quantities, the base quantity and the
// cached favorite flag.
//
// Extra quantities never drop below 0 and the base quantity never drops
// below 1; decrements past those floors are ignored.
type Composer struct {
	item         Item
	extras       []Extra
	quantity     int
	favorite     bool
	favoriteSync FavoriteSync
}

// NewComposer starts a draft for item with every extra at quantity 0 and a
// base quantity of 1.
func NewComposer(item Item) *Composer {
	extras := make([]Extra, len(item.Extras))
	for i, extra := range item.Extras {
		extra.Quantity = 0
		extras[i] = extra
	}
	item.Extras = nil

	return &Composer{
		item:         item,
		extras:       extras,
		quantity:     1,
		favoriteSync: FavoriteSyncCommitted,
	}
}

// Item returns the loaded item without its extras
func (c *Composer) Item() Item {
	return c.item
}

// Extras returns a copy of the extras in load order
func (c *Composer) Extras() []Extra {
	extras := make([]Extra, len(c.extras))
	copy(extras, c.extras)
	return extras
}

// Quantity returns the base quantity
func (c *Composer) Quantity() int {
	return c.quantity
}

func (c *Composer) IncrementExtra(id int) {
	for i := range c.extras {
		if c.extras[i].ID == id {
			c.extras[i].Quantity++
		}
	}
}

func (c *Composer) DecrementExtra(id int) {
	for i := range c.extras {
		if c.extras[i].ID == id && c.extras[i].Quantity > 0 {
			c.extras[i].Quantity--
		}
	}
}

func (c *Composer) IncrementQuantity() {
	c.quantity++
}

func (c *Composer) DecrementQuantity() {
	if c.quantity > 1 {
		c.quantity--
	}
}

// Total returns quantity × price plus the sum of quantity × value over all
// extras.
func (c *Composer) Total() decimal.Decimal {
	total := c.item.Price.Mul(decimal.NewFromInt(int64(c.quantity)))
	for _, extra := range c.extras {
		total = total.Add(extra.Value.Mul(decimal.NewFromInt(int64(extra.Quantity))))
	}
	return total
}

// FormattedTotal is Total rendered for display
func (c *Composer) FormattedTotal(f Formatter) string {
	return f.Format(c.Total())
}

func (c *Composer) IsFavorite() bool {
	return c.favorite
}

func (c *Composer) FavoriteSync() FavoriteSync {
	return c.favoriteSync
}

// SetFavorite stores the favorite status read from the favorites collection
func (c *Composer) SetFavorite(favorite bool) {
	c.favorite = favorite
	c.favoriteSync = FavoriteSyncCommitted
}

// ToggleFavorite flips the local flag ahead of the remote write and returns
// the new value. The flag is never rolled back; MarkFavoriteSync records how
// the remote write ended.
func (c *Composer) ToggleFavorite() bool {
	c.favorite = !c.favorite
	c.favoriteSync = FavoriteSyncPending
	return c.favorite
}

func (c *Composer) MarkFavoriteSync(sync FavoriteSync) {
	c.favoriteSync = sync
}

// Order builds the order record for submission. Only extras with a positive
// quantity are included.
func (c *Composer) Order(id int64) Order {
	extras := []Extra{}
	for _, extra := range c.extras {
		if extra.Quantity > 0 {
			extras = append(extras, extra)
		}
	}

	return Order{
		ID:          id,
		ProductID:   c.item.ID,
		Name:        c.item.Name,
		Description: c.item.Description,
		Price:       c.item.Price,
		ImageURL:    c.item.ImageURL,
		Quantity:    c.quantity,
		Extras:      extras,
		Total:       c.Total(),
	}
}
