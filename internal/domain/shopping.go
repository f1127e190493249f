package domain

// ShoppingListEntry is a derived suggestion for one low-stock item. Entries
// are never persisted; the projection is recomputed from ledger state on
// every call so it can never go stale.
type ShoppingListEntry struct {
	StockItemID   string  `json:"stockItemId"`
	Name          string  `json:"name"`
	Unit          string  `json:"unit"`
	QuantityToBuy float64 `json:"quantityToBuy"`
	Subtotal      float64 `json:"subtotal"`
}

// ShoppingList is the full projection with its estimated total.
type ShoppingList struct {
	Entries []ShoppingListEntry `json:"entries"`
	Total   float64             `json:"total"`
}

// ShoppingListProjector derives reorder suggestions from the stock ledger.
type ShoppingListProjector struct {
	ledger *StockLedger
}

// NewShoppingListProjector returns a projector over the given ledger.
func NewShoppingListProjector(ledger *StockLedger) *ShoppingListProjector {
	return &ShoppingListProjector{ledger: ledger}
}

// Project scans the ledger for items at or below threshold and suggests
// restocking to twice the threshold, never less than one unit. Items with an
// unknown price contribute a zero subtotal.
func (p *ShoppingListProjector) Project() *ShoppingList {
	low := p.ledger.ListBelowThreshold()

	list := &ShoppingList{Entries: make([]ShoppingListEntry, 0, len(low))}
	for _, item := range low {
		toBuy := 2*item.LowStockThreshold - item.Quantity
		if toBuy < 1 {
			toBuy = 1
		}
		subtotal := item.UnitPrice * toBuy
		list.Entries = append(list.Entries, ShoppingListEntry{
			StockItemID:   item.ID,
			Name:          item.Name,
			Unit:          item.Unit,
			QuantityToBuy: toBuy,
			Subtotal:      subtotal,
		})
		list.Total += subtotal
	}
	return list
}
