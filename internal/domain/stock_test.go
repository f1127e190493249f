package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLedger() *StockLedger {
	return NewStockLedger([]*StockItem{
		{ID: "i1", Name: "Spaghetti", Quantity: 500, Unit: UnitGram, LowStockThreshold: 200},
		{ID: "i2", Name: "Milk", Quantity: 1, Unit: UnitLiter, LowStockThreshold: 1},
		{ID: "i3", Name: "Eggs", Quantity: 6, Unit: "pcs", LowStockThreshold: 4},
	})
}

func TestStockLedger_Get(t *testing.T) {
	ledger := testLedger()

	item, err := ledger.Get("i1")
	require.NoError(t, err)
	assert.Equal(t, "Spaghetti", item.Name)

	_, err = ledger.Get("missing")
	assert.ErrorIs(t, err, ErrStockItemNotFound)
}

func TestStockLedger_ApplyDelta(t *testing.T) {
	ledger := testLedger()

	item, err := ledger.ApplyDelta("i1", -200)
	require.NoError(t, err)
	assert.Equal(t, 300.0, item.Quantity)

	_, err = ledger.ApplyDelta("missing", -1)
	assert.ErrorIs(t, err, ErrStockItemNotFound)
}

func TestStockLedger_ApplyDelta_NonNegativeInvariant(t *testing.T) {
	ledger := testLedger()

	_, err := ledger.ApplyDelta("i3", -7)
	assert.ErrorIs(t, err, ErrNegativeStock)

	// The rejected delta must not have been partially applied.
	item, err := ledger.Get("i3")
	require.NoError(t, err)
	assert.Equal(t, 6.0, item.Quantity)

	// Draining to exactly zero is allowed.
	item, err = ledger.ApplyDelta("i3", -6)
	require.NoError(t, err)
	assert.Equal(t, 0.0, item.Quantity)
}

func TestStockLedger_ApplyAll_AtomicCommit(t *testing.T) {
	ledger := testLedger()

	err := ledger.ApplyAll([]StockDelta{
		{StockItemID: "i1", Delta: -100},
		{StockItemID: "i3", Delta: -10}, // would go negative
	})
	assert.ErrorIs(t, err, ErrNegativeStock)

	// The valid first delta must not have leaked through.
	item, err := ledger.Get("i1")
	require.NoError(t, err)
	assert.Equal(t, 500.0, item.Quantity)

	require.NoError(t, ledger.ApplyAll([]StockDelta{
		{StockItemID: "i1", Delta: -100},
		{StockItemID: "i3", Delta: -2},
	}))
	item, _ = ledger.Get("i1")
	assert.Equal(t, 400.0, item.Quantity)
	item, _ = ledger.Get("i3")
	assert.Equal(t, 4.0, item.Quantity)
}

func TestStockLedger_ListBelowThreshold(t *testing.T) {
	ledger := testLedger()

	low := ledger.ListBelowThreshold()
	require.Len(t, low, 1)
	assert.Equal(t, "i2", low[0].ID)

	_, err := ledger.ApplyDelta("i1", -300)
	require.NoError(t, err)

	// Insertion order, not severity order.
	low = ledger.ListBelowThreshold()
	require.Len(t, low, 2)
	assert.Equal(t, "i1", low[0].ID)
	assert.Equal(t, "i2", low[1].ID)
}

func TestStockItem_IsLowStock(t *testing.T) {
	item := &StockItem{Quantity: 2, LowStockThreshold: 2}
	assert.True(t, item.IsLowStock())

	item.Quantity = 2.1
	assert.False(t, item.IsLowStock())
}
