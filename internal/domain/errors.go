package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared across the domain. All of these are recoverable
// conditions surfaced to the caller, never process-fatal.
var (
	ErrStockItemNotFound = errors.New("stock item not found")
	ErrRecipeNotFound    = errors.New("recipe not found")
	ErrDayPlanNotFound   = errors.New("day plan not found")
	ErrSlotEmpty         = errors.New("no recipe assigned to meal slot")
	ErrIncompatibleUnits = errors.New("incompatible units")
	ErrNegativeStock     = errors.New("stock quantity would go negative")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInvalidDate       = errors.New("invalid calendar date")
	ErrGoalNotFound      = errors.New("savings goal not found")
	ErrBillNotFound      = errors.New("bill not found")
	ErrUserNotFound      = errors.New("user not found")
)

// InsufficientStockError aggregates every shortage found while validating a
// recipe against the ledger. The reconciler never fails fast on the first
// missing ingredient; the caller gets the complete list in one pass.
type InsufficientStockError struct {
	Shortages []string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: %s", strings.Join(e.Shortages, "; "))
}

// AsInsufficientStock unwraps err into an InsufficientStockError if possible.
func AsInsufficientStock(err error) (*InsufficientStockError, bool) {
	var insErr *InsufficientStockError
	if errors.As(err, &insErr) {
		return insErr, true
	}
	return nil, false
}
