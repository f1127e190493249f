package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/household-platform/household-service/internal/domain"
	platformmongo "github.com/household-platform/household-service/internal/platform/mongodb"
)

// MealPlanRepository persists day plans keyed by their ISO date, which keeps
// the natural sort order equal to the calendar order.
type MealPlanRepository struct {
	plans *platformmongo.Collection
}

// NewMealPlanRepository creates a MealPlanRepository
func NewMealPlanRepository(client *platformmongo.CircuitBreakerClient) *MealPlanRepository {
	return &MealPlanRepository{plans: client.Collection("meal_plans")}
}

func (r *MealPlanRepository) FindAll(ctx context.Context) ([]*domain.DayPlan, error) {
	var plans []*domain.DayPlan
	opts := options.Find().SetSort(platformmongo.SortAscending("_id"))
	if err := r.plans.Find(ctx, bson.M{}, &plans, opts); err != nil {
		return nil, fmt.Errorf("failed to list day plans: %w", err)
	}
	return plans, nil
}

func (r *MealPlanRepository) FindByDate(ctx context.Context, date string) (*domain.DayPlan, error) {
	var plan domain.DayPlan
	if err := r.plans.FindOne(ctx, platformmongo.ByID(date), &plan); err != nil {
		if platformmongo.IsNotFound(err) {
			return nil, domain.ErrDayPlanNotFound
		}
		return nil, fmt.Errorf("failed to find day plan: %w", err)
	}
	return &plan, nil
}

func (r *MealPlanRepository) Save(ctx context.Context, plan *domain.DayPlan) error {
	if _, err := r.plans.ReplaceOne(ctx, platformmongo.ByID(plan.Date), plan, platformmongo.Upsert()); err != nil {
		return fmt.Errorf("failed to save day plan: %w", err)
	}
	return nil
}
