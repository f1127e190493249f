package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShoppingListProjector_Project(t *testing.T) {
	ledger := NewStockLedger([]*StockItem{
		{ID: "i1", Name: "Apples", Quantity: 1, Unit: "pcs", LowStockThreshold: 2, UnitPrice: 65},
		{ID: "i5", Name: "Rice", Quantity: 10, Unit: UnitKilogram, LowStockThreshold: 2, UnitPrice: 1300},
		{ID: "i4", Name: "Chicken Breast", Quantity: 0, Unit: UnitKilogram, LowStockThreshold: 1, UnitPrice: 1040},
	})

	list := NewShoppingListProjector(ledger).Project()

	require.Len(t, list.Entries, 2)
	assert.Equal(t, "i1", list.Entries[0].StockItemID)
	assert.Equal(t, 3.0, list.Entries[0].QuantityToBuy) // 2*2 - 1
	assert.Equal(t, 195.0, list.Entries[0].Subtotal)

	assert.Equal(t, "i4", list.Entries[1].StockItemID)
	assert.Equal(t, 2.0, list.Entries[1].QuantityToBuy) // 2*1 - 0
	assert.Equal(t, 2080.0, list.Entries[1].Subtotal)

	assert.Equal(t, 2275.0, list.Total)
}

func TestShoppingListProjector_FloorOfOne(t *testing.T) {
	// Threshold 0 with quantity 0 would suggest buying nothing; the floor
	// guarantees at least one unit for any flagged item.
	ledger := NewStockLedger([]*StockItem{
		{ID: "i6", Name: "Toothpaste", Quantity: 0, Unit: "tubes", LowStockThreshold: 0, UnitPrice: 390},
	})

	list := NewShoppingListProjector(ledger).Project()
	require.Len(t, list.Entries, 1)
	assert.Equal(t, 1.0, list.Entries[0].QuantityToBuy)
}

func TestShoppingListProjector_UnknownPrice(t *testing.T) {
	ledger := NewStockLedger([]*StockItem{
		{ID: "i7", Name: "Shampoo", Quantity: 0, Unit: "bottle", LowStockThreshold: 1},
	})

	list := NewShoppingListProjector(ledger).Project()
	require.Len(t, list.Entries, 1)
	assert.Equal(t, 2.0, list.Entries[0].QuantityToBuy)
	assert.Equal(t, 0.0, list.Entries[0].Subtotal)
	assert.Equal(t, 0.0, list.Total)
}

func TestShoppingListProjector_ReflectsCurrentLedgerState(t *testing.T) {
	ledger := NewStockLedger([]*StockItem{
		{ID: "i1", Name: "Apples", Quantity: 5, Unit: "pcs", LowStockThreshold: 2, UnitPrice: 65},
	})
	projector := NewShoppingListProjector(ledger)

	assert.Empty(t, projector.Project().Entries)

	_, err := ledger.ApplyDelta("i1", -4)
	require.NoError(t, err)

	// Recomputed fresh, never cached.
	list := projector.Project()
	require.Len(t, list.Entries, 1)
	assert.Equal(t, 3.0, list.Entries[0].QuantityToBuy)
}
