package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/YelzhanWeb/foodorder/internal/domain"
	"github.com/YelzhanWeb/foodorder/internal/interfaces"
	"github.com/shopspring/decimal"
)

type foodRepository struct {
	db DB
}

func NewFoodRepository(db DB) interfaces.FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) FindByID(ctx context.Context, id int) (*domain.Item, error) {
	query := `
		SELECT id, name, description, price::text, image_url
		FROM foods
		WHERE id = $1
	`

	var item domain.Item
	var price string
	err := r.db.QueryRow(ctx, query, id).Scan(&item.ID, &item.Name, &item.Description, &price, &item.ImageURL)
	if errors.Is(err, ErrNoRows) {
		return nil, domain.ErrFoodNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load food: %w", err)
	}
	if item.Price, err = decimal.NewFromString(price); err != nil {
		return nil, fmt.Errorf("invalid price for food %d: %w", id, err)
	}

	extrasQuery := `SELECT id, name, value::text FROM food_extras WHERE food_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, extrasQuery, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load food extras: %w", err)
	}
	defer rows.Close()

	item.Extras = []domain.Extra{}
	for rows.Next() {
		var extra domain.Extra
		var value string
		if err := rows.Scan(&extra.ID, &extra.Name, &value); err != nil {
			return nil, fmt.Errorf("failed to scan food extra: %w", err)
		}
		if extra.Value, err = decimal.NewFromString(value); err != nil {
			return nil, fmt.Errorf("invalid value for extra %d: %w", extra.ID, err)
		}
		item.Extras = append(item.Extras, extra)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read food extras: %w", err)
	}

	return &item, nil
}

// Create inserts a catalog item with its extras; existing items are kept
func (r *foodRepository) Create(ctx context.Context, item *domain.Item) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("invalid food: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO foods (id, name, description, price, image_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
	`
	tag, err := tx.Exec(ctx, query, item.ID, item.Name, item.Description, item.Price.String(), item.ImageURL)
	if err != nil {
		return fmt.Errorf("failed to insert food: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return tx.Commit(ctx)
	}

	for _, extra := range item.Extras {
		extraQuery := `
			INSERT INTO food_extras (food_id, id, name, value)
			VALUES ($1, $2, $3, $4)
		`
		if _, err := tx.Exec(ctx, extraQuery, item.ID, extra.ID, extra.Name, extra.Value.String()); err != nil {
			return fmt.Errorf("failed to insert food extra: %w", err)
		}
	}

	return tx.Commit(ctx)
}
