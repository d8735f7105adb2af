package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrder() Order {
	return Order{
		ID:        1700000000000,
		ProductID: 3,
		Name:      "Veggie",
		Price:     dec("21.90"),
		Quantity:  2,
		Extras: []Extra{
			{ID: 1, Name: "Bacon", Value: dec("1.50"), Quantity: 2},
		},
	}
}

func TestOrder_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(o *Order)
		wantErr bool
	}{
		{name: "valid", mutate: func(o *Order) {}},
		{name: "no extras", mutate: func(o *Order) { o.Extras = nil }},
		{name: "zero id", mutate: func(o *Order) { o.ID = 0 }, wantErr: true},
		{name: "missing product", mutate: func(o *Order) { o.ProductID = 0 }, wantErr: true},
		{name: "missing name", mutate: func(o *Order) { o.Name = "" }, wantErr: true},
		{name: "zero quantity", mutate: func(o *Order) { o.Quantity = 0 }, wantErr: true},
		{name: "negative price", mutate: func(o *Order) { o.Price = dec("-1") }, wantErr: true},
		{name: "unselected extra", mutate: func(o *Order) { o.Extras[0].Quantity = 0 }, wantErr: true},
		{name: "duplicate extra", mutate: func(o *Order) { o.Extras = append(o.Extras, o.Extras[0]) }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := validOrder()
			tt.mutate(&order)

			err := order.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOrder_AcceptRecalculatesTotal(t *testing.T) {
	order := validOrder()
	order.Total = dec("1.00")
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	require.NoError(t, order.Accept(now))

	assert.True(t, order.Total.Equal(dec("46.80")), "got %s", order.Total)
	require.NotNil(t, order.CreatedAt)
	assert.Equal(t, now, *order.CreatedAt)
}

func TestOrder_AcceptWrapsValidationError(t *testing.T) {
	order := validOrder()
	order.Quantity = 0

	err := order.Accept(time.Now())

	assert.True(t, errors.Is(err, ErrInvalidOrder))
}

func TestOrder_JSONUsesPlainNumbers(t *testing.T) {
	order := validOrder()
	order.CalculateTotal()

	body, err := json.Marshal(order)
	require.NoError(t, err)

	assert.Contains(t, string(body), `"price":21.9`)
	assert.Contains(t, string(body), `"product_id":3`)
	assert.NotContains(t, string(body), "created_at")
}

func TestItem_Validate(t *testing.T) {
	item := testItem()
	assert.NoError(t, item.Validate())

	item.Extras = append(item.Extras, Extra{ID: 1, Name: "Bacon again"})
	assert.Error(t, item.Validate())

	assert.Error(t, Item{ID: 1, Name: "x", Price: dec("-0.01")}.Validate())
	assert.Error(t, Item{Name: "x"}.Validate())
}

func TestItem_FavoriteDropsExtras(t *testing.T) {
	fav := testItem().Favorite()

	assert.Equal(t, 7, fav.ID)
	assert.Equal(t, "Ao molho", fav.Name)

	body, err := json.Marshal(fav)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "extras")
}

func TestOrder_AcceptFillsMissingExtras(t *testing.T) {
	order := Order{ID: 1, ProductID: 1, Name: "Ao molho", Price: dec("10"), Quantity: 1}

	require.NoError(t, order.Accept(time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)))

	body, err := json.Marshal(order)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"extras":[]`)
}
