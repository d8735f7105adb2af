package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/YelzhanWeb/foodorder/internal/domain"
	"github.com/YelzhanWeb/foodorder/internal/interfaces"
	"github.com/shopspring/decimal"
)

type favoriteRepository struct {
	db DB
}

func NewFavoriteRepository(db DB) interfaces.FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) FindByID(ctx context.Context, id int) (*domain.Favorite, error) {
	query := `
		SELECT id, name, description, price::text, image_url
		FROM favorites
		WHERE id = $1
	`

	var fav domain.Favorite
	var price string
	err := r.db.QueryRow(ctx, query, id).Scan(&fav.ID, &fav.Name, &fav.Description, &price, &fav.ImageURL)
	if errors.Is(err, ErrNoRows) {
		return nil, domain.ErrFavoriteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load favorite: %w", err)
	}
	if fav.Price, err = decimal.NewFromString(price); err != nil {
		return nil, fmt.Errorf("invalid price for favorite %d: %w", id, err)
	}

	return &fav, nil
}

func (r *favoriteRepository) Upsert(ctx context.Context, fav *domain.Favorite) error {
	query := `
		INSERT INTO favorites (id, name, description, price, image_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, description = EXCLUDED.description,
		    price = EXCLUDED.price, image_url = EXCLUDED.image_url
	`
	_, err := r.db.Exec(ctx, query, fav.ID, fav.Name, fav.Description, fav.Price.String(), fav.ImageURL)
	if err != nil {
		return fmt.Errorf("failed to upsert favorite: %w", err)
	}
	return nil
}

func (r *favoriteRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM favorites WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	return nil
}
