package domain

import (
	"math"
	"testing"
)

func TestComputeCartTotals_Scenario(t *testing.T) {
	cart := []CartLine{
		{ID: "1", Price: 10, Quantity: 2},
		{ID: "2", Price: 5, Quantity: 1},
	}

	totals := ComputeCartTotals(cart)

	if totals.GrandTotal != 25 {
		t.Errorf("expected grand total 25, got %v", totals.GrandTotal)
	}
	if totals.ItemCount != 3 {
		t.Errorf("expected item count 3, got %d", totals.ItemCount)
	}
	if len(totals.LineSubtotals) != 2 || totals.LineSubtotals[0] != 20 || totals.LineSubtotals[1] != 5 {
		t.Errorf("unexpected subtotals: %v", totals.LineSubtotals)
	}
}

func TestComputeCartTotals_InvariantUnderReordering(t *testing.T) {
	a := []CartLine{
		{ID: "1", Price: 19.99, Quantity: 3},
		{ID: "2", Price: 0.1, Quantity: 7},
		{ID: "3", Price: 129.9, Quantity: 1},
	}
	b := []CartLine{a[2], a[0], a[1]}

	ta := ComputeCartTotals(a)
	tb := ComputeCartTotals(b)

	if math.Abs(ta.GrandTotal-tb.GrandTotal) > 1e-9 {
		t.Errorf("grand total changed under reordering: %v vs %v", ta.GrandTotal, tb.GrandTotal)
	}
	if ta.ItemCount != tb.ItemCount {
		t.Errorf("item count changed under reordering: %d vs %d", ta.ItemCount, tb.ItemCount)
	}
}

func TestComputeCartTotals_Empty(t *testing.T) {
	totals := ComputeCartTotals(nil)
	if totals.GrandTotal != 0 || totals.ItemCount != 0 || len(totals.LineSubtotals) != 0 {
		t.Errorf("empty cart must produce zero totals, got %+v", totals)
	}
}

func TestComputeCartTotals_DoesNotMutateInput(t *testing.T) {
	cart := []CartLine{{ID: "1", Price: 10, Quantity: 2}}
	ComputeCartTotals(cart)
	if cart[0].Quantity != 2 || cart[0].Price != 10 {
		t.Errorf("input mutated: %+v", cart[0])
	}
}
