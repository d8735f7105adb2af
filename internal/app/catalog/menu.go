package catalog

import (
	"context"
	"fmt"

	"github.com/YelzhanWeb/foodorder/internal/domain"
	"github.com/shopspring/decimal"
)

// SampleMenu is the catalog loaded by `--seed` on a fresh database
func SampleMenu() []domain.Item {
	d := decimal.RequireFromString
	return []domain.Item{
		{
			ID:          1,
			Name:        "Ao molho",
			Description: "Macarrão ao molho branco, fughi e cheiro verde das montanhas.",
			Price:       d("19.90"),
			ImageURL:    "https://storage.googleapis.com/golden-wind/bootcamp-gostack/desafio-gorestaurant-mobile/ao_molho.png",
			Extras: []domain.Extra{
				{ID: 1, Name: "Bacon", Value: d("1.50")},
				{ID: 2, Name: "Frango", Value: d("2.00")},
			},
		},
		{
			ID:          2,
			Name:        "Veggie",
			Description: "Macarrão com pimentão, ervilha e ervas finas colhidas no himalaia.",
			Price:       d("21.90"),
			ImageURL:    "https://storage.googleapis.com/golden-wind/bootcamp-gostack/desafio-gorestaurant-mobile/veggie.png",
			Extras: []domain.Extra{
				{ID: 3, Name: "Tofu", Value: d("3.00")},
			},
		},
		{
			ID:          3,
			Name:        "A la Camarón",
			Description: "Macarrão com vegetais de primeira linha e camarão dos 7 mares.",
			Price:       d("25.90"),
			ImageURL:    "https://storage.googleapis.com/golden-wind/bootcamp-gostack/desafio-gorestaurant-mobile/a_la_camaron.png",
			Extras: []domain.Extra{
				{ID: 4, Name: "Camarão extra", Value: d("5.00")},
				{ID: 5, Name: "Queijo", Value: d("2.50")},
			},
		},
	}
}

// SeedMenu inserts items that are not in the catalog yet
func (s *Service) SeedMenu(ctx context.Context, items []domain.Item) error {
	for i := range items {
		if err := s.foods.Create(ctx, &items[i]); err != nil {
			return fmt.Errorf("failed to seed food %d: %w", items[i].ID, err)
		}
	}

	s.logger.Info("menu_seeded", fmt.Sprintf("Seeded %d foods", len(items)), "startup", nil)
	return nil
}
