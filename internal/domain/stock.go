package domain

import (
	"sync"
	"time"
)

// StockItem is a tracked inventory entity. Quantity is always expressed in
// the item's own unit and never drops below zero; the ledger enforces that
// invariant at its boundary, not the callers.
type StockItem struct {
	ID                string     `bson:"_id" json:"itemId"`
	Name              string     `bson:"name" json:"name"`
	Quantity          float64    `bson:"quantity" json:"quantity"`
	Unit              string     `bson:"unit" json:"unit"`
	LowStockThreshold float64    `bson:"lowStockThreshold" json:"lowStockThreshold"`
	UnitPrice         float64    `bson:"unitPrice,omitempty" json:"unitPrice,omitempty"`
	CategoryID        string     `bson:"categoryId,omitempty" json:"categoryId,omitempty"`
	ExpiryDate        *time.Time `bson:"expiryDate,omitempty" json:"expiryDate,omitempty"`
	CreatedAt         time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// IsLowStock reports whether the item is at or below its threshold.
func (i *StockItem) IsLowStock() bool {
	return i.Quantity <= i.LowStockThreshold
}

// InventoryCategory groups stock items for presentation (Kitchen,
// Toiletries, ...). It carries no reconciliation semantics.
type InventoryCategory struct {
	ID   string `bson:"_id" json:"categoryId"`
	Name string `bson:"name" json:"name"`
}

// StockDelta is a staged quantity change, expressed in the target item's
// native unit. Negative deltas deduct.
type StockDelta struct {
	StockItemID string
	Delta       float64
}

// StockLedger is the in-memory view of the household inventory. It owns all
// StockItem mutation: the reconciler stages deltas but the ledger applies and
// validates them. Items keep their insertion order, so listings are stable
// rather than sorted by severity.
type StockLedger struct {
	mu    sync.RWMutex
	items []*StockItem
	index map[string]*StockItem
}

// NewStockLedger builds a ledger over a snapshot of items. The ledger takes
// ownership of the slice; callers should not mutate the items afterwards.
func NewStockLedger(items []*StockItem) *StockLedger {
	index := make(map[string]*StockItem, len(items))
	for _, item := range items {
		index[item.ID] = item
	}
	return &StockLedger{items: items, index: index}
}

// Get returns the item with the given id or ErrStockItemNotFound.
func (l *StockLedger) Get(stockItemID string) (*StockItem, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	item, ok := l.index[stockItemID]
	if !ok {
		return nil, ErrStockItemNotFound
	}
	return item, nil
}

// ApplyDelta adjusts one item's quantity by delta (in the item's native
// unit). The change is all-or-nothing: a delta that would push the quantity
// below zero is rejected with ErrNegativeStock and nothing is applied.
func (l *StockLedger) ApplyDelta(stockItemID string, delta float64) (*StockItem, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.applyDeltaLocked(stockItemID, delta)
}

// ApplyAll applies a staged set of deltas atomically: every delta is
// validated against the current quantities before any is applied, so a
// failing set leaves the ledger untouched. The reconciler's commit phase
// relies on this.
func (l *StockLedger) ApplyAll(deltas []StockDelta) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, d := range deltas {
		item, ok := l.index[d.StockItemID]
		if !ok {
			return ErrStockItemNotFound
		}
		if item.Quantity+d.Delta < 0 {
			return ErrNegativeStock
		}
	}
	for _, d := range deltas {
		if _, err := l.applyDeltaLocked(d.StockItemID, d.Delta); err != nil {
			// Unreachable after validation above; kept as the ledger-level
			// guard the deduction invariant demands.
			return err
		}
	}
	return nil
}

func (l *StockLedger) applyDeltaLocked(stockItemID string, delta float64) (*StockItem, error) {
	item, ok := l.index[stockItemID]
	if !ok {
		return nil, ErrStockItemNotFound
	}
	if item.Quantity+delta < 0 {
		return nil, ErrNegativeStock
	}
	item.Quantity += delta
	item.UpdatedAt = time.Now().UTC()
	return item, nil
}

// ListBelowThreshold returns items where quantity <= lowStockThreshold, in
// insertion order.
func (l *StockLedger) ListBelowThreshold() []*StockItem {
	l.mu.RLock()
	defer l.mu.RUnlock()

	low := make([]*StockItem, 0)
	for _, item := range l.items {
		if item.IsLowStock() {
			low = append(low, item)
		}
	}
	return low
}

// Items returns the ledger's items in insertion order.
func (l *StockLedger) Items() []*StockItem {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*StockItem, len(l.items))
	copy(out, l.items)
	return out
}
