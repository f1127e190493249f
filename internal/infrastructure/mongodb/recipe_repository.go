package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/household-platform/household-service/internal/domain"
	platformmongo "github.com/household-platform/household-service/internal/platform/mongodb"
)

// RecipeRepository is the read-mostly backing store for the recipe catalog.
type RecipeRepository struct {
	recipes *platformmongo.Collection
}

// NewRecipeRepository creates a RecipeRepository
func NewRecipeRepository(client *platformmongo.CircuitBreakerClient) *RecipeRepository {
	repo := &RecipeRepository{recipes: client.Collection("recipes")}
	repo.ensureIndexes(context.Background())
	return repo
}

func (r *RecipeRepository) ensureIndexes(ctx context.Context) {
	_ = r.recipes.CreateIndexes(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	})
}

func (r *RecipeRepository) FindByID(ctx context.Context, id string) (*domain.Recipe, error) {
	var recipe domain.Recipe
	if err := r.recipes.FindOne(ctx, platformmongo.ByID(id), &recipe); err != nil {
		if platformmongo.IsNotFound(err) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to find recipe: %w", err)
	}
	return &recipe, nil
}

func (r *RecipeRepository) FindAll(ctx context.Context) ([]*domain.Recipe, error) {
	var recipes []*domain.Recipe
	opts := options.Find().SetSort(platformmongo.SortAscending("name"))
	if err := r.recipes.Find(ctx, bson.M{}, &recipes, opts); err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

func (r *RecipeRepository) Save(ctx context.Context, recipe *domain.Recipe) error {
	if _, err := r.recipes.ReplaceOne(ctx, platformmongo.ByID(recipe.ID), recipe, platformmongo.Upsert()); err != nil {
		return fmt.Errorf("failed to save recipe: %w", err)
	}
	return nil
}
