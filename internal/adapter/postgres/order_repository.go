package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/YelzhanWeb/foodorder/internal/domain"
	"github.com/YelzhanWeb/foodorder/internal/interfaces"
	"github.com/shopspring/decimal"
)

type orderRepository struct {
	db DB
}

func NewOrderRepository(db DB) interfaces.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	createdAt := time.Now().UTC()
	if order.CreatedAt != nil {
		createdAt = *order.CreatedAt
	}

	query := `
		INSERT INTO orders (id, product_id, name, description, price, image_url,
		                    quantity, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = tx.Exec(ctx, query,
		order.ID, order.ProductID, order.Name, order.Description, order.Price.String(),
		order.ImageURL, order.Quantity, order.Total.String(), createdAt,
	)
	if isUniqueViolation(err) {
		return domain.ErrOrderExists
	}
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for _, extra := range order.Extras {
		extraQuery := `
			INSERT INTO order_extras (order_id, extra_id, name, value, quantity)
			VALUES ($1, $2, $3, $4, $5)
		`
		_, err = tx.Exec(ctx, extraQuery, order.ID, extra.ID, extra.Name, extra.Value.String(), extra.Quantity)
		if err != nil {
			return fmt.Errorf("failed to insert order extra: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// List returns every stored order, newest first
func (r *orderRepository) List(ctx context.Context) ([]domain.Order, error) {
	query := `
		SELECT id, product_id, name, description, price::text, image_url,
		       quantity, total::text, created_at
		FROM orders
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := []domain.Order{}
	index := make(map[int64]int)
	ids := []int64{}
	for rows.Next() {
		var order domain.Order
		var price, total string
		var createdAt time.Time
		if err := rows.Scan(
			&order.ID, &order.ProductID, &order.Name, &order.Description, &price,
			&order.ImageURL, &order.Quantity, &total, &createdAt,
		); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		if order.Price, err = decimal.NewFromString(price); err != nil {
			rows.Close()
			return nil, fmt.Errorf("invalid price for order %d: %w", order.ID, err)
		}
		if order.Total, err = decimal.NewFromString(total); err != nil {
			rows.Close()
			return nil, fmt.Errorf("invalid total for order %d: %w", order.ID, err)
		}
		createdAt = createdAt.UTC()
		order.CreatedAt = &createdAt
		order.Extras = []domain.Extra{}

		index[order.ID] = len(orders)
		ids = append(ids, order.ID)
		orders = append(orders, order)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read orders: %w", err)
	}
	if len(ids) == 0 {
		return orders, nil
	}

	extrasQuery := `
		SELECT order_id, extra_id, name, value::text, quantity
		FROM order_extras
		WHERE order_id = ANY($1)
		ORDER BY order_id, extra_id
	`
	extraRows, err := r.db.Query(ctx, extrasQuery, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load order extras: %w", err)
	}
	defer extraRows.Close()

	for extraRows.Next() {
		var orderID int64
		var extra domain.Extra
		var value string
		if err := extraRows.Scan(&orderID, &extra.ID, &extra.Name, &value, &extra.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan order extra: %w", err)
		}
		if extra.Value, err = decimal.NewFromString(value); err != nil {
			return nil, fmt.Errorf("invalid value for order extra %d: %w", extra.ID, err)
		}
		if i, ok := index[orderID]; ok {
			orders[i].Extras = append(orders[i].Extras, extra)
		}
	}
	if err := extraRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read order extras: %w", err)
	}

	return orders, nil
}
