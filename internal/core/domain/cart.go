package domain

import "errors"

var ErrCartLineNotFound = errors.New("cart line not found")

// CartLine is a denormalized snapshot of a product's display fields taken
// the first time it was added to the cart, plus a running quantity. The cart
// holds at most one line per product ID; repeated adds increment Quantity.
//
// Lines keep their snapshot data even if the product is later deleted from
// the catalog. Stale lines are a documented property of the cart, not a bug.
type CartLine struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Img      string  `json:"img"`
	Quantity int     `json:"quantity"`
}

// CartTotals aggregates a cart snapshot.
type CartTotals struct {
	LineSubtotals []float64
	GrandTotal    float64
	ItemCount     int
}

// ComputeCartTotals sums the cart using each line's snapshot price, never the
// current catalog price. Pure: the input slice is not modified.
func ComputeCartTotals(cart []CartLine) CartTotals {
	totals := CartTotals{LineSubtotals: make([]float64, 0, len(cart))}
	for _, line := range cart {
		subtotal := line.Price * float64(line.Quantity)
		totals.LineSubtotals = append(totals.LineSubtotals, subtotal)
		totals.GrandTotal += subtotal
		totals.ItemCount += line.Quantity
	}
	return totals
}
