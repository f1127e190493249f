package application

import (
	"context"
	"io"
	"sort"

	"github.com/household-platform/household-service/internal/domain"
	"github.com/household-platform/household-service/internal/platform/logging"
)

func testLogger() *logging.Logger {
	cfg := logging.DefaultConfig("household-service-test")
	cfg.Output = io.Discard
	return logging.New(cfg)
}

// fakeStockRepo is an in-memory StockRepository preserving insertion order.
type fakeStockRepo struct {
	items      []*domain.StockItem
	categories []*domain.InventoryCategory
	saveAllErr error
}

func (r *fakeStockRepo) FindByID(_ context.Context, id string) (*domain.StockItem, error) {
	for _, item := range r.items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, domain.ErrStockItemNotFound
}

func (r *fakeStockRepo) FindAll(_ context.Context) ([]*domain.StockItem, error) {
	out := make([]*domain.StockItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *fakeStockRepo) Save(_ context.Context, item *domain.StockItem) error {
	for i, existing := range r.items {
		if existing.ID == item.ID {
			r.items[i] = item
			return nil
		}
	}
	r.items = append(r.items, item)
	return nil
}

func (r *fakeStockRepo) SaveAll(ctx context.Context, items []*domain.StockItem) error {
	if r.saveAllErr != nil {
		return r.saveAllErr
	}
	for _, item := range items {
		if err := r.Save(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeStockRepo) Delete(_ context.Context, id string) error {
	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrStockItemNotFound
}

func (r *fakeStockRepo) ListCategories(_ context.Context) ([]*domain.InventoryCategory, error) {
	out := make([]*domain.InventoryCategory, len(r.categories))
	copy(out, r.categories)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeStockRepo) SaveCategory(_ context.Context, category *domain.InventoryCategory) error {
	r.categories = append(r.categories, category)
	return nil
}

// fakeRecipeRepo is an in-memory RecipeRepository.
type fakeRecipeRepo struct {
	recipes []*domain.Recipe
}

func (r *fakeRecipeRepo) FindByID(_ context.Context, id string) (*domain.Recipe, error) {
	for _, recipe := range r.recipes {
		if recipe.ID == id {
			return recipe, nil
		}
	}
	return nil, domain.ErrRecipeNotFound
}

func (r *fakeRecipeRepo) FindAll(_ context.Context) ([]*domain.Recipe, error) {
	out := make([]*domain.Recipe, len(r.recipes))
	copy(out, r.recipes)
	return out, nil
}

func (r *fakeRecipeRepo) Save(_ context.Context, recipe *domain.Recipe) error {
	for i, existing := range r.recipes {
		if existing.ID == recipe.ID {
			r.recipes[i] = recipe
			return nil
		}
	}
	r.recipes = append(r.recipes, recipe)
	return nil
}

// fakeMealPlanRepo is an in-memory MealPlanRepository in append order.
type fakeMealPlanRepo struct {
	plans    []*domain.DayPlan
	saveErr  error
	saveSeen int
}

func (r *fakeMealPlanRepo) FindAll(_ context.Context) ([]*domain.DayPlan, error) {
	out := make([]*domain.DayPlan, len(r.plans))
	copy(out, r.plans)
	return out, nil
}

func (r *fakeMealPlanRepo) FindByDate(_ context.Context, date string) (*domain.DayPlan, error) {
	for _, plan := range r.plans {
		if plan.Date == date {
			return plan, nil
		}
	}
	return nil, domain.ErrDayPlanNotFound
}

func (r *fakeMealPlanRepo) Save(_ context.Context, plan *domain.DayPlan) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saveSeen++
	for i, existing := range r.plans {
		if existing.Date == plan.Date {
			r.plans[i] = plan
			return nil
		}
	}
	r.plans = append(r.plans, plan)
	return nil
}

// fakeTransactionRepo is an in-memory TransactionRepository.
type fakeTransactionRepo struct {
	transactions []*domain.Transaction
	categories   []*domain.FinanceCategory
}

func (r *fakeTransactionRepo) FindAll(_ context.Context) ([]*domain.Transaction, error) {
	out := make([]*domain.Transaction, len(r.transactions))
	copy(out, r.transactions)
	return out, nil
}

func (r *fakeTransactionRepo) Save(_ context.Context, tx *domain.Transaction) error {
	r.transactions = append(r.transactions, tx)
	return nil
}

func (r *fakeTransactionRepo) ListCategories(_ context.Context) ([]*domain.FinanceCategory, error) {
	return r.categories, nil
}

func (r *fakeTransactionRepo) SaveCategory(_ context.Context, category *domain.FinanceCategory) error {
	r.categories = append(r.categories, category)
	return nil
}

// fakeSavingsRepo is an in-memory SavingsRepository.
type fakeSavingsRepo struct {
	goals []*domain.SavingsGoal
}

func (r *fakeSavingsRepo) FindByID(_ context.Context, id string) (*domain.SavingsGoal, error) {
	for _, goal := range r.goals {
		if goal.ID == id {
			return goal, nil
		}
	}
	return nil, domain.ErrGoalNotFound
}

func (r *fakeSavingsRepo) FindAll(_ context.Context) ([]*domain.SavingsGoal, error) {
	return r.goals, nil
}

func (r *fakeSavingsRepo) Save(_ context.Context, goal *domain.SavingsGoal) error {
	for i, existing := range r.goals {
		if existing.ID == goal.ID {
			r.goals[i] = goal
			return nil
		}
	}
	r.goals = append(r.goals, goal)
	return nil
}

// fakeBillRepo is an in-memory BillRepository.
type fakeBillRepo struct {
	bills []*domain.Bill
}

func (r *fakeBillRepo) FindByID(_ context.Context, id string) (*domain.Bill, error) {
	for _, bill := range r.bills {
		if bill.ID == id {
			return bill, nil
		}
	}
	return nil, domain.ErrBillNotFound
}

func (r *fakeBillRepo) FindAll(_ context.Context) ([]*domain.Bill, error) {
	return r.bills, nil
}

func (r *fakeBillRepo) Save(_ context.Context, bill *domain.Bill) error {
	for i, existing := range r.bills {
		if existing.ID == bill.ID {
			r.bills[i] = bill
			return nil
		}
	}
	r.bills = append(r.bills, bill)
	return nil
}

func (r *fakeBillRepo) Delete(_ context.Context, id string) error {
	for i, bill := range r.bills {
		if bill.ID == id {
			r.bills = append(r.bills[:i], r.bills[i+1:]...)
			return nil
		}
	}
	return domain.ErrBillNotFound
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users []*domain.User
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	return r.users, nil
}

func (r *fakeUserRepo) Save(_ context.Context, user *domain.User) error {
	for i, existing := range r.users {
		if existing.ID == user.ID {
			r.users[i] = user
			return nil
		}
	}
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	for i, user := range r.users {
		if user.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

// fakeAnnouncementRepo is an in-memory AnnouncementRepository.
type fakeAnnouncementRepo struct {
	announcements []*domain.Announcement
}

func (r *fakeAnnouncementRepo) FindAll(_ context.Context) ([]*domain.Announcement, error) {
	return r.announcements, nil
}

func (r *fakeAnnouncementRepo) Save(_ context.Context, a *domain.Announcement) error {
	r.announcements = append(r.announcements, a)
	return nil
}

// fakeScanner returns a canned parsed receipt.
type fakeScanner struct {
	receipt *domain.ParsedReceipt
	err     error
}

func (s *fakeScanner) Scan(_ context.Context, _, _ string) (*domain.ParsedReceipt, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.receipt, nil
}
