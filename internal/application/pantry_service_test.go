package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/household-platform/household-service/internal/domain"
)

func TestPantryServiceCreateItem(t *testing.T) {
	stock := &fakeStockRepo{}
	svc := NewPantryService(stock, nil, testLogger())

	item, err := svc.CreateItem(context.Background(), CreateStockItemCommand{
		Name:              "Rice",
		Quantity:          5,
		Unit:              "kg",
		LowStockThreshold: 1,
		UnitPrice:         2.5,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.False(t, item.CreatedAt.IsZero())

	stored, err := stock.FindByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rice", stored.Name)
}

func TestPantryServiceAdjustQuantity(t *testing.T) {
	t.Run("applies positive and negative deltas", func(t *testing.T) {
		stock := &fakeStockRepo{items: []*domain.StockItem{
			{ID: "i1", Name: "Milk", Quantity: 2, Unit: "L", LowStockThreshold: 1},
		}}
		svc := NewPantryService(stock, nil, testLogger())

		item, err := svc.AdjustQuantity(context.Background(), "i1", AdjustStockCommand{Delta: -0.5})
		require.NoError(t, err)
		assert.InDelta(t, 1.5, item.Quantity, 1e-9)

		item, err = svc.AdjustQuantity(context.Background(), "i1", AdjustStockCommand{Delta: 3})
		require.NoError(t, err)
		assert.InDelta(t, 4.5, item.Quantity, 1e-9)
	})

	t.Run("rejects overdraws whole", func(t *testing.T) {
		stock := &fakeStockRepo{items: []*domain.StockItem{
			{ID: "i1", Name: "Milk", Quantity: 2, Unit: "L", LowStockThreshold: 1},
		}}
		svc := NewPantryService(stock, nil, testLogger())

		_, err := svc.AdjustQuantity(context.Background(), "i1", AdjustStockCommand{Delta: -5})
		assert.ErrorIs(t, err, domain.ErrNegativeStock)

		item, err := stock.FindByID(context.Background(), "i1")
		require.NoError(t, err)
		assert.InDelta(t, 2, item.Quantity, 1e-9)
	})

	t.Run("unknown item", func(t *testing.T) {
		svc := NewPantryService(&fakeStockRepo{}, nil, testLogger())

		_, err := svc.AdjustQuantity(context.Background(), "nope", AdjustStockCommand{Delta: 1})
		assert.ErrorIs(t, err, domain.ErrStockItemNotFound)
	})
}

func TestPantryServiceLowStockItems(t *testing.T) {
	stock := &fakeStockRepo{items: []*domain.StockItem{
		{ID: "i1", Name: "Milk", Quantity: 0.5, Unit: "L", LowStockThreshold: 1},
		{ID: "i2", Name: "Rice", Quantity: 5, Unit: "kg", LowStockThreshold: 1},
		{ID: "i3", Name: "Salt", Quantity: 1, Unit: "kg", LowStockThreshold: 1},
	}}
	svc := NewPantryService(stock, nil, testLogger())

	low, err := svc.LowStockItems(context.Background())
	require.NoError(t, err)
	require.Len(t, low, 2)
	assert.Equal(t, "Milk", low[0].Name)
	assert.Equal(t, "Salt", low[1].Name)
}

func TestPantryServiceUpdateItem(t *testing.T) {
	stock := &fakeStockRepo{items: []*domain.StockItem{
		{ID: "i1", Name: "Milk", Quantity: 2, Unit: "L", LowStockThreshold: 1},
	}}
	svc := NewPantryService(stock, nil, testLogger())

	item, err := svc.UpdateItem(context.Background(), "i1", UpdateStockItemCommand{
		Name:              "Whole Milk",
		Quantity:          3,
		Unit:              "L",
		LowStockThreshold: 2,
		UnitPrice:         1.2,
	})
	require.NoError(t, err)
	assert.Equal(t, "Whole Milk", item.Name)
	assert.InDelta(t, 3, item.Quantity, 1e-9)
}

func TestPantryServiceDeleteItem(t *testing.T) {
	stock := &fakeStockRepo{items: []*domain.StockItem{
		{ID: "i1", Name: "Milk", Quantity: 2, Unit: "L"},
	}}
	svc := NewPantryService(stock, nil, testLogger())

	require.NoError(t, svc.DeleteItem(context.Background(), "i1"))
	assert.ErrorIs(t, svc.DeleteItem(context.Background(), "i1"), domain.ErrStockItemNotFound)
}
