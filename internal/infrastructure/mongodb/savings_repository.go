package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/household-platform/household-service/internal/domain"
	platformmongo "github.com/household-platform/household-service/internal/platform/mongodb"
)

// SavingsRepository persists savings goals.
type SavingsRepository struct {
	goals *platformmongo.Collection
}

// NewSavingsRepository creates a SavingsRepository
func NewSavingsRepository(client *platformmongo.CircuitBreakerClient) *SavingsRepository {
	return &SavingsRepository{goals: client.Collection("savings_goals")}
}

func (r *SavingsRepository) FindByID(ctx context.Context, id string) (*domain.SavingsGoal, error) {
	var goal domain.SavingsGoal
	if err := r.goals.FindOne(ctx, platformmongo.ByID(id), &goal); err != nil {
		if platformmongo.IsNotFound(err) {
			return nil, domain.ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to find savings goal: %w", err)
	}
	return &goal, nil
}

func (r *SavingsRepository) FindAll(ctx context.Context) ([]*domain.SavingsGoal, error) {
	var goals []*domain.SavingsGoal
	opts := options.Find().SetSort(platformmongo.SortAscending("deadline"))
	if err := r.goals.Find(ctx, bson.M{}, &goals, opts); err != nil {
		return nil, fmt.Errorf("failed to list savings goals: %w", err)
	}
	return goals, nil
}

func (r *SavingsRepository) Save(ctx context.Context, goal *domain.SavingsGoal) error {
	if _, err := r.goals.ReplaceOne(ctx, platformmongo.ByID(goal.ID), goal, platformmongo.Upsert()); err != nil {
		return fmt.Errorf("failed to save savings goal: %w", err)
	}
	return nil
}
