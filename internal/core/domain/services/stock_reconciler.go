package services

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/lineitem"
)

// StockReconciler compares what an order asks for against stock on hand.
//
// Quantities of the same product are summed across line items. The stock snapshot
// of a product is taken from the first line item that carries one; all lines of a
// product are expected to report the same snapshot. Missing quantity or stock
// count as zero.
type StockReconciler struct{}

func NewStockReconciler() StockReconciler {
	return StockReconciler{}
}

type productStock struct {
	requested int
	stock     int
	hasStock  bool
}

// IsOversold reports whether any product's summed quantity exceeds its stock.
// An empty set is never oversold.
func (StockReconciler) IsOversold(items []*lineitem.LineItem) bool {
	products := make(map[kernel.UUID]*productStock, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		p, ok := products[item.ProductID()]
		if !ok {
			p = &productStock{}
			products[item.ProductID()] = p
		}
		if qty, ok := item.Quantity(); ok {
			p.requested += qty
		}
		if stock, ok := item.StockOnHand(); ok && !p.hasStock {
			p.stock, p.hasStock = stock, true
		}
	}

	for _, p := range products {
		if p.requested > p.stock {
			return true
		}
	}
	return false
}
