package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/household-platform/household-service/internal/domain"
)

func TestShoppingServiceProject(t *testing.T) {
	stock := &fakeStockRepo{items: []*domain.StockItem{
		{ID: "i1", Name: "Milk", Quantity: 0.5, Unit: "L", LowStockThreshold: 1, UnitPrice: 1.5},
		{ID: "i2", Name: "Rice", Quantity: 5, Unit: "kg", LowStockThreshold: 1, UnitPrice: 2},
		{ID: "i3", Name: "Salt", Quantity: 0.9, Unit: "kg", LowStockThreshold: 0.2, UnitPrice: 0.8},
	}}
	svc := NewShoppingService(stock, nil, testLogger())

	list, err := svc.Project(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Entries, 1)

	entry := list.Entries[0]
	assert.Equal(t, "Milk", entry.Name)
	assert.InDelta(t, 1.5, entry.QuantityToBuy, 1e-9)
	assert.InDelta(t, 2.25, entry.Subtotal, 1e-9)
	assert.InDelta(t, 2.25, list.Total, 1e-9)
}

func TestShoppingServiceLowStockDigest(t *testing.T) {
	stock := &fakeStockRepo{items: []*domain.StockItem{
		{ID: "i1", Name: "Milk", Quantity: 0.5, Unit: "L", LowStockThreshold: 1, UnitPrice: 1.5},
		{ID: "i2", Name: "Flour", Quantity: 0, Unit: "kg", LowStockThreshold: 2, UnitPrice: 1},
	}}
	svc := NewShoppingService(stock, nil, testLogger())

	digest, err := svc.LowStockDigest(context.Background())
	require.NoError(t, err)
	assert.Len(t, digest.Items, 2)
	// Milk: 2*1-0.5=1.5 at 1.5 each; Flour: 2*2-0=4 at 1 each.
	assert.InDelta(t, 6.25, digest.EstimatedTotal, 1e-9)
}
