// Package projection maps read-only state snapshots to renderable view
// models. Every function here is pure and idempotent: the same snapshot
// always yields an identical projection and inputs are never mutated. The
// shell (HTTP layer) turns these values into actual responses.
package projection

import (
	"strconv"
	"strings"

	"github.com/minimarket/storefront-system/internal/core/domain"
)

// ProductCardView is one tile in the product grid.
type ProductCardView struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	FormattedPrice string `json:"formatted_price"`
	Img            string `json:"img"`
}

// ProductGridView is the catalog page. Empty is the explicit "no products
// yet" marker; an empty catalog is a valid state, not an error.
type ProductGridView struct {
	Cards []ProductCardView `json:"cards"`
	Empty bool              `json:"empty"`
}

// DetailView is the full single-product page.
type DetailView struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	FormattedPrice string `json:"formatted_price"`
	Img            string `json:"img"`
	Description    string `json:"description"`
}

// CartLineView is one row of the cart page.
type CartLineView struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Img               string `json:"img"`
	FormattedPrice    string `json:"formatted_price"`
	Quantity          int    `json:"quantity"`
	FormattedSubtotal string `json:"formatted_subtotal"`
}

// CartView is the cart page. Empty marks the "your cart is empty" state.
type CartView struct {
	Lines          []CartLineView `json:"lines"`
	FormattedTotal string         `json:"formatted_total"`
	ItemCount      int            `json:"item_count"`
	Empty          bool           `json:"empty"`
}

// AdminRowView is one row of the admin management table.
type AdminRowView struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	FormattedPrice string `json:"formatted_price"`
}

// AdminListView is the admin page. Empty marks a catalog with nothing to
// manage.
type AdminListView struct {
	Rows  []AdminRowView `json:"rows"`
	Empty bool           `json:"empty"`
}

// FormatPrice renders a price with two decimals and a comma as the decimal
// separator (display convention carried over from the storefront UI).
func FormatPrice(price float64) string {
	return strings.Replace(strconv.FormatFloat(price, 'f', 2, 64), ".", ",", 1)
}

// ProjectProductGrid builds the catalog page from a products snapshot.
func ProjectProductGrid(products []domain.Product) ProductGridView {
	if len(products) == 0 {
		return ProductGridView{Empty: true}
	}
	cards := make([]ProductCardView, 0, len(products))
	for _, p := range products {
		cards = append(cards, ProductCardView{
			ID:             p.ID,
			Name:           p.Name,
			FormattedPrice: FormatPrice(p.Price),
			Img:            p.Img,
		})
	}
	return ProductGridView{Cards: cards}
}

// ProjectProductDetail builds the detail page for an already-resolved
// product. Existence checks belong to the caller.
func ProjectProductDetail(product domain.Product) DetailView {
	return DetailView{
		ID:             product.ID,
		Name:           product.Name,
		FormattedPrice: FormatPrice(product.Price),
		Img:            product.Img,
		Description:    product.Description,
	}
}

// ProjectCart builds the cart page from a cart snapshot. Totals use each
// line's snapshot price.
func ProjectCart(cart []domain.CartLine) CartView {
	if len(cart) == 0 {
		return CartView{Empty: true, FormattedTotal: FormatPrice(0)}
	}

	totals := domain.ComputeCartTotals(cart)
	lines := make([]CartLineView, 0, len(cart))
	for i, line := range cart {
		lines = append(lines, CartLineView{
			ID:                line.ID,
			Name:              line.Name,
			Img:               line.Img,
			FormattedPrice:    FormatPrice(line.Price),
			Quantity:          line.Quantity,
			FormattedSubtotal: FormatPrice(totals.LineSubtotals[i]),
		})
	}
	return CartView{
		Lines:          lines,
		FormattedTotal: FormatPrice(totals.GrandTotal),
		ItemCount:      totals.ItemCount,
	}
}

// ProjectAdminList builds the admin management table from a products
// snapshot.
func ProjectAdminList(products []domain.Product) AdminListView {
	if len(products) == 0 {
		return AdminListView{Empty: true}
	}
	rows := make([]AdminRowView, 0, len(products))
	for _, p := range products {
		rows = append(rows, AdminRowView{
			ID:             p.ID,
			Name:           p.Name,
			FormattedPrice: FormatPrice(p.Price),
		})
	}
	return AdminListView{Rows: rows}
}
