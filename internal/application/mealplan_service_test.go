package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/household-platform/household-service/internal/domain"
)

func newMealPlanFixture() (*MealPlanService, *fakeStockRepo, *fakeMealPlanRepo) {
	stock := &fakeStockRepo{items: []*domain.StockItem{
		{ID: "i-pasta", Name: "Spaghetti", Quantity: 1, Unit: "kg", LowStockThreshold: 0.5},
		{ID: "i-eggs", Name: "Eggs", Quantity: 6, Unit: "pcs", LowStockThreshold: 4},
	}}
	recipes := &fakeRecipeRepo{recipes: []*domain.Recipe{{
		ID:       "r-carbonara",
		Name:     "Carbonara",
		Category: domain.MealDinner,
		Ingredients: []domain.Ingredient{
			{StockItemID: "i-pasta", Name: "Spaghetti", Quantity: 400, Unit: "g"},
			{StockItemID: "i-eggs", Name: "Eggs", Quantity: 3, Unit: "pcs"},
		},
	}}}

	plan := domain.NewDayPlan("2025-03-10")
	plan.Slot(domain.MealDinner).RecipeID = "r-carbonara"
	plans := &fakeMealPlanRepo{plans: []*domain.DayPlan{plan}}

	svc := NewMealPlanService(plans, recipes, stock, nil, nil, testLogger())
	return svc, stock, plans
}

func TestMealPlanServicePrepare(t *testing.T) {
	t.Run("deducts stock and marks the slot prepared", func(t *testing.T) {
		svc, stock, plans := newMealPlanFixture()

		result, err := svc.Prepare(context.Background(), "2025-03-10", domain.MealDinner)
		require.NoError(t, err)
		assert.False(t, result.AlreadyPrepared)
		assert.Equal(t, "Carbonara", result.RecipeName)
		assert.Len(t, result.Deductions, 2)

		pasta, err := stock.FindByID(context.Background(), "i-pasta")
		require.NoError(t, err)
		assert.InDelta(t, 0.6, pasta.Quantity, 1e-9)

		eggs, err := stock.FindByID(context.Background(), "i-eggs")
		require.NoError(t, err)
		assert.InDelta(t, 3, eggs.Quantity, 1e-9)

		plan, err := plans.FindByDate(context.Background(), "2025-03-10")
		require.NoError(t, err)
		assert.True(t, plan.Slot(domain.MealDinner).Prepared)
	})

	t.Run("second prepare is an idempotent no-op", func(t *testing.T) {
		svc, stock, _ := newMealPlanFixture()

		_, err := svc.Prepare(context.Background(), "2025-03-10", domain.MealDinner)
		require.NoError(t, err)

		result, err := svc.Prepare(context.Background(), "2025-03-10", domain.MealDinner)
		require.NoError(t, err)
		assert.True(t, result.AlreadyPrepared)
		assert.Empty(t, result.Deductions)

		pasta, err := stock.FindByID(context.Background(), "i-pasta")
		require.NoError(t, err)
		assert.InDelta(t, 0.6, pasta.Quantity, 1e-9)
	})

	t.Run("shortages leave stock and plan untouched", func(t *testing.T) {
		svc, stock, plans := newMealPlanFixture()
		pasta, err := stock.FindByID(context.Background(), "i-pasta")
		require.NoError(t, err)
		pasta.Quantity = 0.1

		_, err = svc.Prepare(context.Background(), "2025-03-10", domain.MealDinner)
		insErr, ok := domain.AsInsufficientStock(err)
		require.True(t, ok)
		assert.Equal(t, []string{"Spaghetti (need 400 g, have 100 g)"}, insErr.Shortages)

		eggs, err := stock.FindByID(context.Background(), "i-eggs")
		require.NoError(t, err)
		assert.InDelta(t, 6, eggs.Quantity, 1e-9)

		plan, err := plans.FindByDate(context.Background(), "2025-03-10")
		require.NoError(t, err)
		assert.False(t, plan.Slot(domain.MealDinner).Prepared)
		assert.Zero(t, plans.saveSeen)
	})

	t.Run("empty slot is rejected", func(t *testing.T) {
		svc, _, _ := newMealPlanFixture()

		_, err := svc.Prepare(context.Background(), "2025-03-10", domain.MealLunch)
		assert.ErrorIs(t, err, domain.ErrSlotEmpty)
	})

	t.Run("unknown date is rejected", func(t *testing.T) {
		svc, _, _ := newMealPlanFixture()

		_, err := svc.Prepare(context.Background(), "2025-03-11", domain.MealDinner)
		assert.ErrorIs(t, err, domain.ErrDayPlanNotFound)
	})
}

func TestMealPlanServiceAssignRecipe(t *testing.T) {
	t.Run("assignment resets the prepared flag", func(t *testing.T) {
		svc, _, plans := newMealPlanFixture()

		_, err := svc.Prepare(context.Background(), "2025-03-10", domain.MealDinner)
		require.NoError(t, err)

		_, err = svc.AssignRecipe(context.Background(), "2025-03-10", domain.MealDinner, AssignRecipeCommand{RecipeID: "r-carbonara"})
		require.NoError(t, err)

		plan, err := plans.FindByDate(context.Background(), "2025-03-10")
		require.NoError(t, err)
		assert.False(t, plan.Slot(domain.MealDinner).Prepared)
	})

	t.Run("unknown recipe is rejected", func(t *testing.T) {
		svc, _, _ := newMealPlanFixture()

		_, err := svc.AssignRecipe(context.Background(), "2025-03-10", domain.MealDinner, AssignRecipeCommand{RecipeID: "r-nope"})
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})
}

func TestMealPlanServiceAppendNextDay(t *testing.T) {
	t.Run("appends one calendar day after the last plan", func(t *testing.T) {
		svc, _, plans := newMealPlanFixture()

		plan, err := svc.AppendNextDay(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "2025-03-11", plan.Date)

		all, err := plans.FindAll(context.Background())
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("empty planner anchors to the current UTC date", func(t *testing.T) {
		plans := &fakeMealPlanRepo{}
		svc := NewMealPlanService(plans, &fakeRecipeRepo{}, &fakeStockRepo{}, nil, nil, testLogger())

		plan, err := svc.AppendNextDay(context.Background())
		require.NoError(t, err)
		assert.Equal(t, time.Now().UTC().Format("2006-01-02"), plan.Date)
	})
}
