package domain

import "context"

// StockRepository persists the inventory collection. The reconciliation core
// operates on in-memory snapshots; callers fetch before and persist after.
type StockRepository interface {
	FindByID(ctx context.Context, id string) (*StockItem, error)
	FindAll(ctx context.Context) ([]*StockItem, error)
	Save(ctx context.Context, item *StockItem) error
	SaveAll(ctx context.Context, items []*StockItem) error
	Delete(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]*InventoryCategory, error)
	SaveCategory(ctx context.Context, category *InventoryCategory) error
}

// RecipeRepository is the catalog's backing store, read-mostly.
type RecipeRepository interface {
	FindByID(ctx context.Context, id string) (*Recipe, error)
	FindAll(ctx context.Context) ([]*Recipe, error)
	Save(ctx context.Context, recipe *Recipe) error
}

// MealPlanRepository persists day-plans in date order.
type MealPlanRepository interface {
	FindAll(ctx context.Context) ([]*DayPlan, error)
	FindByDate(ctx context.Context, date string) (*DayPlan, error)
	Save(ctx context.Context, plan *DayPlan) error
}

// TransactionRepository persists finance entries.
type TransactionRepository interface {
	FindAll(ctx context.Context) ([]*Transaction, error)
	Save(ctx context.Context, tx *Transaction) error
	ListCategories(ctx context.Context) ([]*FinanceCategory, error)
	SaveCategory(ctx context.Context, category *FinanceCategory) error
}

// SavingsRepository persists savings goals.
type SavingsRepository interface {
	FindByID(ctx context.Context, id string) (*SavingsGoal, error)
	FindAll(ctx context.Context) ([]*SavingsGoal, error)
	Save(ctx context.Context, goal *SavingsGoal) error
}

// BillRepository persists recurring bills and their payment history.
type BillRepository interface {
	FindByID(ctx context.Context, id string) (*Bill, error)
	FindAll(ctx context.Context) ([]*Bill, error)
	Save(ctx context.Context, bill *Bill) error
	Delete(ctx context.Context, id string) error
}

// UserRepository persists household members.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*User, error)
	FindAll(ctx context.Context) ([]*User, error)
	Save(ctx context.Context, user *User) error
	Delete(ctx context.Context, id string) error
}

// AnnouncementRepository persists board posts.
type AnnouncementRepository interface {
	FindAll(ctx context.Context) ([]*Announcement, error)
	Save(ctx context.Context, a *Announcement) error
}
