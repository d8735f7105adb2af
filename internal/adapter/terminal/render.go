package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/YelzhanWeb/foodorder/internal/app/fooddetails"
	"github.com/YelzhanWeb/foodorder/internal/domain"
	"github.com/YelzhanWeb/foodorder/internal/interfaces"
)

var favoriteGlyphs = map[string]string{
	domain.IconFavorite:       "♥",
	domain.IconFavoriteBorder: "♡",
}

// RenderFood draws the food details screen
func RenderFood(w io.Writer, header interfaces.HeaderAction, view fooddetails.View) {
	glyph := favoriteGlyphs[header.Icon]
	if glyph == "" {
		glyph = favoriteGlyphs[view.FavoriteIcon]
	}

	title := view.Food.Name
	if view.FavoriteSync == domain.FavoriteSyncFailed {
		title += " (favorito não salvo)"
	}

	fmt.Fprintf(w, "%s  %s\n", title, glyph)
	fmt.Fprintln(w, strings.Repeat("─", 40))
	if view.Food.Description != "" {
		fmt.Fprintln(w, view.Food.Description)
	}
	fmt.Fprintln(w, view.FormattedPrice)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Adicionais")
	for _, extra := range view.Extras {
		fmt.Fprintf(w, "  [%d] %-20s - %d +\n", extra.ID, extra.Name, extra.Quantity)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Total do pedido")
	fmt.Fprintf(w, "  %-20s - %d +\n", view.FormattedTotal, view.Quantity)
	fmt.Fprintln(w, "  [Confirmar pedido]")
}

// RenderOrders draws the order list shown after a submission
func RenderOrders(w io.Writer, currency interfaces.CurrencyFormatter, orders []domain.Order) {
	fmt.Fprintln(w, "Pedidos")
	fmt.Fprintln(w, strings.Repeat("─", 40))

	if len(orders) == 0 {
		fmt.Fprintln(w, "Nenhum pedido")
		return
	}

	for _, order := range orders {
		fmt.Fprintf(w, "#%d  %dx %s  %s\n", order.ID, order.Quantity, order.Name, currency.Format(order.Total))
		for _, extra := range order.Extras {
			fmt.Fprintf(w, "      + %dx %s\n", extra.Quantity, extra.Name)
		}
	}
}
