package domain

import (
	"fmt"
	"strconv"
	"time"
)

// Deduction records one applied (or about-to-be-applied) inventory
// deduction, expressed in the stock item's native unit.
type Deduction struct {
	StockItemID string  `json:"stockItemId"`
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Unit        string  `json:"unit"`
}

// PreparationResult is what a successful Prepare returns: the recipe that
// was cooked and the deductions the ledger absorbed. AlreadyPrepared marks
// the idempotent no-op case, where Deductions is empty.
type PreparationResult struct {
	Date            string        `json:"date"`
	MealType        MealType      `json:"mealType"`
	RecipeName      string        `json:"recipeName"`
	Deductions      []Deduction   `json:"deductions"`
	AlreadyPrepared bool          `json:"alreadyPrepared"`
	Events          []DomainEvent `json:"-"`
}

// PreparationReconciler links the meal plan, the recipe catalog and the
// stock ledger. Prepare is the core algorithm of the whole service: it
// either fully deducts a recipe's ingredients and marks the slot prepared,
// or leaves both stores entirely untouched.
type PreparationReconciler struct {
	ledger  *StockLedger
	catalog *RecipeCatalog
	plans   *MealPlanStore
}

// NewPreparationReconciler wires a reconciler over in-memory snapshots. The
// caller owns fetching the snapshots before and persisting them after.
func NewPreparationReconciler(ledger *StockLedger, catalog *RecipeCatalog, plans *MealPlanStore) *PreparationReconciler {
	return &PreparationReconciler{ledger: ledger, catalog: catalog, plans: plans}
}

// Prepare validates ingredient availability for the slot's recipe and, only
// if every ingredient can be satisfied, commits all deductions and marks the
// slot prepared. Shortages are aggregated so the caller sees the complete
// list in one pass, and a failed validation applies zero deductions.
func (r *PreparationReconciler) Prepare(date string, mealType MealType) (*PreparationResult, error) {
	slot, err := r.plans.GetSlot(date, mealType)
	if err != nil {
		return nil, err
	}
	if slot.Empty() {
		return nil, ErrSlotEmpty
	}

	recipe, err := r.catalog.Get(slot.RecipeID)
	if err != nil {
		return nil, err
	}

	if slot.Prepared {
		// Repeated prepare calls must not deduct twice.
		return &PreparationResult{
			Date:            date,
			MealType:        mealType,
			RecipeName:      recipe.Name,
			Deductions:      []Deduction{},
			AlreadyPrepared: true,
		}, nil
	}

	// Phase one: validate every ingredient, staging deductions and
	// collecting shortages. Nothing is applied yet.
	var shortages []string
	staged := make([]StockDelta, 0, len(recipe.Ingredients))
	deductions := make([]Deduction, 0, len(recipe.Ingredients))

	for _, ing := range recipe.Ingredients {
		item, err := r.ledger.Get(ing.StockItemID)
		if err != nil {
			shortages = append(shortages, fmt.Sprintf("%s (not in inventory)", ing.Name))
			continue
		}

		// Compare in the ingredient's unit so the shortage message reads in
		// the same scale the recipe uses.
		available, err := Convert(item.Quantity, item.Unit, ing.Unit)
		if err != nil {
			shortages = append(shortages, fmt.Sprintf("%s (unit mismatch: need %s, have %s)", ing.Name, ing.Unit, item.Unit))
			continue
		}

		if available < ing.Quantity {
			shortages = append(shortages, fmt.Sprintf("%s (need %s %s, have %s %s)",
				ing.Name, formatQuantity(ing.Quantity), ing.Unit, formatQuantity(available), ing.Unit))
			continue
		}

		// Deduct in the stock item's native unit. The pair converted once
		// already, so this cannot fail.
		amount, _ := Convert(ing.Quantity, ing.Unit, item.Unit)
		staged = append(staged, StockDelta{StockItemID: item.ID, Delta: -amount})
		deductions = append(deductions, Deduction{
			StockItemID: item.ID,
			Name:        item.Name,
			Amount:      amount,
			Unit:        item.Unit,
		})
	}

	if len(shortages) > 0 {
		return nil, &InsufficientStockError{Shortages: shortages}
	}

	// Phase two: commit everything. ApplyAll re-validates under the ledger
	// lock, so even here a failure leaves quantities untouched.
	if err := r.ledger.ApplyAll(staged); err != nil {
		return nil, err
	}
	if err := r.plans.MarkPrepared(date, mealType); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	events := []DomainEvent{&MealPreparedEvent{
		Date:       date,
		MealType:   mealType,
		RecipeID:   recipe.ID,
		RecipeName: recipe.Name,
		Deductions: deductions,
		PreparedAt: now,
	}}
	for _, d := range deductions {
		item, err := r.ledger.Get(d.StockItemID)
		if err == nil && item.IsLowStock() {
			events = append(events, &LowStockAlertEvent{
				StockItemID: item.ID,
				Name:        item.Name,
				Quantity:    item.Quantity,
				Unit:        item.Unit,
				Threshold:   item.LowStockThreshold,
				AlertedAt:   now,
			})
		}
	}

	return &PreparationResult{
		Date:       date,
		MealType:   mealType,
		RecipeName: recipe.Name,
		Deductions: deductions,
		Events:     events,
	}, nil
}

// formatQuantity renders a quantity without trailing zeros (2, 0.5, 1000).
func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
