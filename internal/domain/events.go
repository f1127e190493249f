package domain

import "time"

// DomainEvent is implemented by everything the domain layer emits for
// downstream consumers (event publisher, metrics, digests).
type DomainEvent interface {
	EventType() string
	OccurredAt() time.Time
}

// MealPreparedEvent is emitted when a reconciliation commits: the slot was
// marked prepared and every staged deduction was applied.
type MealPreparedEvent struct {
	Date       string      `json:"date"`
	MealType   MealType    `json:"mealType"`
	RecipeID   string      `json:"recipeId"`
	RecipeName string      `json:"recipeName"`
	Deductions []Deduction `json:"deductions"`
	PreparedAt time.Time   `json:"preparedAt"`
}

func (e *MealPreparedEvent) EventType() string     { return "household.meal.prepared" }
func (e *MealPreparedEvent) OccurredAt() time.Time { return e.PreparedAt }

// LowStockAlertEvent is emitted when a deduction leaves an item at or below
// its threshold.
type LowStockAlertEvent struct {
	StockItemID string    `json:"stockItemId"`
	Name        string    `json:"name"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `json:"unit"`
	Threshold   float64   `json:"threshold"`
	AlertedAt   time.Time `json:"alertedAt"`
}

func (e *LowStockAlertEvent) EventType() string     { return "household.inventory.low_stock" }
func (e *LowStockAlertEvent) OccurredAt() time.Time { return e.AlertedAt }

// AnnouncementPostedEvent is emitted when a household member posts to the
// announcement board.
type AnnouncementPostedEvent struct {
	AnnouncementID string    `json:"announcementId"`
	AuthorID       string    `json:"authorId"`
	PostedAt       time.Time `json:"postedAt"`
}

func (e *AnnouncementPostedEvent) EventType() string     { return "household.announcement.posted" }
func (e *AnnouncementPostedEvent) OccurredAt() time.Time { return e.PostedAt }
