package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMealPlanStore_GetSlot(t *testing.T) {
	store := NewMealPlanStore([]*DayPlan{NewDayPlan("2024-07-29")})

	slot, err := store.GetSlot("2024-07-29", MealDinner)
	require.NoError(t, err)
	assert.True(t, slot.Empty())

	_, err = store.GetSlot("2024-07-30", MealDinner)
	assert.ErrorIs(t, err, ErrDayPlanNotFound)
}

func TestMealPlanStore_AssignRecipe(t *testing.T) {
	store := NewMealPlanStore([]*DayPlan{NewDayPlan("2024-07-29")})

	require.NoError(t, store.AssignRecipe("2024-07-29", MealDinner, "r1"))
	slot, err := store.GetSlot("2024-07-29", MealDinner)
	require.NoError(t, err)
	assert.Equal(t, "r1", slot.RecipeID)
	assert.False(t, slot.Prepared)

	assert.ErrorIs(t, store.AssignRecipe("2024-08-01", MealDinner, "r1"), ErrDayPlanNotFound)
}

func TestMealPlanStore_AssignRecipe_ResetsPrepared(t *testing.T) {
	store := NewMealPlanStore([]*DayPlan{NewDayPlan("2024-07-29")})
	require.NoError(t, store.AssignRecipe("2024-07-29", MealLunch, "r1"))
	require.NoError(t, store.MarkPrepared("2024-07-29", MealLunch))

	// A changed assignment invalidates the prior preparation record.
	require.NoError(t, store.AssignRecipe("2024-07-29", MealLunch, "r2"))
	slot, err := store.GetSlot("2024-07-29", MealLunch)
	require.NoError(t, err)
	assert.Equal(t, "r2", slot.RecipeID)
	assert.False(t, slot.Prepared)
}

func TestMealPlanStore_MarkPrepared(t *testing.T) {
	store := NewMealPlanStore([]*DayPlan{NewDayPlan("2024-07-29")})

	assert.ErrorIs(t, store.MarkPrepared("2024-07-29", MealSnack), ErrSlotEmpty)

	require.NoError(t, store.AssignRecipe("2024-07-29", MealSnack, "r4"))
	require.NoError(t, store.MarkPrepared("2024-07-29", MealSnack))

	// Marking again is a no-op success, not an error.
	require.NoError(t, store.MarkPrepared("2024-07-29", MealSnack))
	slot, err := store.GetSlot("2024-07-29", MealSnack)
	require.NoError(t, err)
	assert.True(t, slot.Prepared)
}

func TestMealPlanStore_AppendNextDay(t *testing.T) {
	store := NewMealPlanStore([]*DayPlan{NewDayPlan("2024-07-30")})

	plan, err := store.AppendNextDay()
	require.NoError(t, err)
	assert.Equal(t, "2024-07-31", plan.Date)
	require.Len(t, plan.Slots, 4)
	for _, mealType := range MealTypes {
		assert.True(t, plan.Slots[mealType].Empty())
	}
}

func TestMealPlanStore_AppendNextDay_MonthRollover(t *testing.T) {
	store := NewMealPlanStore([]*DayPlan{NewDayPlan("2024-07-31")})

	plan, err := store.AppendNextDay()
	require.NoError(t, err)
	assert.Equal(t, "2024-08-01", plan.Date)
}

func TestMealPlanStore_AppendNextDay_YearRollover(t *testing.T) {
	store := NewMealPlanStore([]*DayPlan{NewDayPlan("2024-12-31")})

	plan, err := store.AppendNextDay()
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", plan.Date)
}

func TestMealPlanStore_AppendNextDay_LeapDay(t *testing.T) {
	store := NewMealPlanStore([]*DayPlan{NewDayPlan("2024-02-28")})

	plan, err := store.AppendNextDay()
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", plan.Date)
}

func TestMealPlanStore_AppendNextDay_EmptyStoreAnchorsToToday(t *testing.T) {
	store := NewMealPlanStore(nil)

	plan, err := store.AppendNextDay()
	require.NoError(t, err)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), plan.Date)
	assert.Len(t, store.Plans(), 1)
}

func TestMealPlanStore_AppendNextDay_InvalidLastDate(t *testing.T) {
	store := NewMealPlanStore([]*DayPlan{{Date: "not-a-date"}})

	_, err := store.AppendNextDay()
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestMealType_IsValid(t *testing.T) {
	for _, mealType := range MealTypes {
		assert.True(t, mealType.IsValid())
	}
	assert.False(t, MealType("brunch").IsValid())
}
