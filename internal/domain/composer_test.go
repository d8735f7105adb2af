package domain

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testItem() Item {
	return Item{
		ID:          7,
		Name:        "Ao molho",
		Description: "Macarrão ao molho branco, fughi e cheiro verde das montanhas.",
		Price:       dec("19.90"),
		ImageURL:    "https://example.com/ao_molho.png",
		Extras: []Extra{
			{ID: 1, Name: "Bacon", Value: dec("1.50"), Quantity: 3},
			{ID: 2, Name: "Frango", Value: dec("2.00")},
		},
	}
}

func TestNewComposer_ResetsExtraQuantities(t *testing.T) {
	c := NewComposer(testItem())

	assert.Equal(t, 1, c.Quantity())
	for _, extra := range c.Extras() {
		assert.Zero(t, extra.Quantity, "extra %d", extra.ID)
	}
	assert.Nil(t, c.Item().Extras)
	assert.False(t, c.IsFavorite())
}

func TestComposer_TotalScenario(t *testing.T) {
	c := NewComposer(Item{
		ID:     1,
		Name:   "Veggie",
		Price:  dec("10.00"),
		Extras: []Extra{{ID: 5, Name: "Queijo", Value: dec("2.00")}},
	})

	assert.True(t, c.Total().Equal(dec("10.00")), "got %s", c.Total())

	c.IncrementExtra(5)
	assert.True(t, c.Total().Equal(dec("12.00")), "got %s", c.Total())

	c.IncrementQuantity()
	assert.True(t, c.Total().Equal(dec("22.00")), "got %s", c.Total())
}

func TestComposer_IncrementExtraUnknownID(t *testing.T) {
	c := NewComposer(testItem())
	before := c.Extras()

	c.IncrementExtra(99)

	assert.Equal(t, before, c.Extras())
}

func TestComposer_DecrementExtraAtZero(t *testing.T) {
	c := NewComposer(testItem())
	c.IncrementExtra(2)
	before := c.Extras()

	c.DecrementExtra(1)

	assert.Equal(t, before, c.Extras())
	assert.Equal(t, 1, c.Quantity())
}

func TestComposer_DecrementQuantityAtOne(t *testing.T) {
	c := NewComposer(testItem())

	c.DecrementQuantity()
	assert.Equal(t, 1, c.Quantity())

	c.IncrementQuantity()
	c.IncrementQuantity()
	c.DecrementQuantity()
	assert.Equal(t, 2, c.Quantity())
}

func TestComposer_RandomSequencesKeepFloors(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	item := testItem()

	for run := 0; run < 200; run++ {
		c := NewComposer(item)

		for step := 0; step < 50; step++ {
			id := rng.Intn(4)
			switch rng.Intn(4) {
			case 0:
				c.IncrementExtra(id)
			case 1:
				c.DecrementExtra(id)
			case 2:
				c.IncrementQuantity()
			case 3:
				c.DecrementQuantity()
			}

			require.GreaterOrEqual(t, c.Quantity(), 1)

			expected := item.Price.Mul(decimal.NewFromInt(int64(c.Quantity())))
			for _, extra := range c.Extras() {
				require.GreaterOrEqual(t, extra.Quantity, 0)
				expected = expected.Add(extra.Value.Mul(decimal.NewFromInt(int64(extra.Quantity))))
			}
			require.True(t, expected.Equal(c.Total()), "expected %s, got %s", expected, c.Total())
		}
	}
}

func TestComposer_ToggleFavorite(t *testing.T) {
	c := NewComposer(testItem())
	c.SetFavorite(false)

	assert.True(t, c.ToggleFavorite())
	assert.True(t, c.IsFavorite())
	assert.Equal(t, FavoriteSyncPending, c.FavoriteSync())

	c.MarkFavoriteSync(FavoriteSyncFailed)
	assert.True(t, c.IsFavorite(), "flag stays flipped after a failed write")
	assert.Equal(t, FavoriteSyncFailed, c.FavoriteSync())

	assert.False(t, c.ToggleFavorite())
}

func TestComposer_OrderKeepsSelectedExtrasOnly(t *testing.T) {
	c := NewComposer(testItem())
	c.IncrementQuantity()
	c.IncrementExtra(2)

	order := c.Order(1700000000000)

	assert.Equal(t, int64(1700000000000), order.ID)
	assert.Equal(t, 7, order.ProductID)
	assert.Equal(t, 2, order.Quantity)
	require.Len(t, order.Extras, 1)
	assert.Equal(t, 2, order.Extras[0].ID)
	assert.Equal(t, 1, order.Extras[0].Quantity)
	assert.True(t, order.Total.Equal(dec("41.80")), "got %s", order.Total)
}

func TestComposer_ExtrasReturnsCopy(t *testing.T) {
	c := NewComposer(testItem())

	extras := c.Extras()
	extras[0].Quantity = 10

	assert.Zero(t, c.Extras()[0].Quantity)
}

func TestFavoriteIcon(t *testing.T) {
	assert.Equal(t, "favorite", FavoriteIcon(true))
	assert.Equal(t, "favorite-border", FavoriteIcon(false))
}

func TestComposer_OrderWithoutExtrasSendsEmptyList(t *testing.T) {
	c := NewComposer(Item{ID: 1, Name: "Ao molho", Price: dec("10"), Extras: []Extra{{ID: 1, Name: "Bacon", Value: dec("2")}}})

	order := c.Order(99)
	require.NotNil(t, order.Extras)

	body, err := json.Marshal(order)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"extras":[]`)
}

func TestComposer_FormattedTotal(t *testing.T) {
	c := NewComposer(testItem())
	assert.Equal(t, "R$ 19,90", c.FormattedTotal(BRL))

	c.IncrementExtra(1)
	c.IncrementQuantity()
	assert.Equal(t, "R$ 41,30", c.FormattedTotal(BRL))
}
