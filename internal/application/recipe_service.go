package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/household-platform/household-service/internal/domain"
	"github.com/household-platform/household-service/internal/platform/logging"
)

// RecipeService handles recipe authoring. Recipes are reference data for the
// reconciler, so the service validates that ingredient stock references point
// at real pantry items before accepting a recipe.
type RecipeService struct {
	recipes domain.RecipeRepository
	stock   domain.StockRepository
	logger  *logging.Logger
}

// NewRecipeService creates a RecipeService
func NewRecipeService(recipes domain.RecipeRepository, stock domain.StockRepository, logger *logging.Logger) *RecipeService {
	return &RecipeService{
		recipes: recipes,
		stock:   stock,
		logger:  logger.WithComponent("recipe-service"),
	}
}

// ListRecipes returns every recipe sorted by name.
func (s *RecipeService) ListRecipes(ctx context.Context) ([]*domain.Recipe, error) {
	return s.recipes.FindAll(ctx)
}

// GetRecipe returns one recipe by id.
func (s *RecipeService) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	return s.recipes.FindByID(ctx, id)
}

// CreateRecipe adds a new recipe.
func (s *RecipeService) CreateRecipe(ctx context.Context, cmd CreateRecipeCommand) (*domain.Recipe, error) {
	recipe := &domain.Recipe{
		ID:            uuid.New().String(),
		Name:          cmd.Name,
		Category:      domain.MealType(cmd.Category),
		Ingredients:   toIngredients(cmd.Ingredients),
		Instructions:  cmd.Instructions,
		ImageURL:      cmd.ImageURL,
		EstimatedCost: cmd.EstimatedCost,
	}

	if err := s.checkIngredientRefs(ctx, recipe.Ingredients); err != nil {
		return nil, err
	}
	if err := s.recipes.Save(ctx, recipe); err != nil {
		return nil, err
	}

	s.logger.WithContext(ctx).Info("Recipe created",
		"recipeId", recipe.ID,
		"name", recipe.Name,
		"ingredients", len(recipe.Ingredients),
	)
	return recipe, nil
}

// UpdateRecipe replaces an existing recipe's fields.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id string, cmd CreateRecipeCommand) (*domain.Recipe, error) {
	recipe, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	recipe.Name = cmd.Name
	recipe.Category = domain.MealType(cmd.Category)
	recipe.Ingredients = toIngredients(cmd.Ingredients)
	recipe.Instructions = cmd.Instructions
	recipe.ImageURL = cmd.ImageURL
	recipe.EstimatedCost = cmd.EstimatedCost

	if err := s.checkIngredientRefs(ctx, recipe.Ingredients); err != nil {
		return nil, err
	}
	if err := s.recipes.Save(ctx, recipe); err != nil {
		return nil, err
	}

	s.logger.WithContext(ctx).Info("Recipe updated", "recipeId", recipe.ID, "name", recipe.Name)
	return recipe, nil
}

// checkIngredientRefs rejects recipes whose ingredients point at unknown
// stock items. Missing references would otherwise surface only at prepare
// time as shortages.
func (s *RecipeService) checkIngredientRefs(ctx context.Context, ingredients []domain.Ingredient) error {
	for _, ing := range ingredients {
		if _, err := s.stock.FindByID(ctx, ing.StockItemID); err != nil {
			return err
		}
	}
	return nil
}

func toIngredients(payloads []IngredientPayload) []domain.Ingredient {
	out := make([]domain.Ingredient, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, domain.Ingredient{
			StockItemID: p.StockItemID,
			Name:        p.Name,
			Quantity:    p.Quantity,
			Unit:        p.Unit,
		})
	}
	return out
}
