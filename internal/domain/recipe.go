package domain

// Ingredient is one recipe line referencing a stock item by id. The quantity
// and unit are the recipe's own; they may differ in scale from the stock
// item's unit (a recipe wants 200 g while stock tracks kg), which the
// reconciler resolves through Convert.
type Ingredient struct {
	StockItemID string  `bson:"stockItemId" json:"stockItemId"`
	Name        string  `bson:"name" json:"name"`
	Quantity    float64 `bson:"quantity" json:"quantity"`
	Unit        string  `bson:"unit" json:"unit"`
}

// Recipe is immutable reference data for the reconciliation core. Authoring
// happens through plain CRUD outside the reconciler's scope.
type Recipe struct {
	ID            string       `bson:"_id" json:"recipeId"`
	Name          string       `bson:"name" json:"name"`
	Category      MealType     `bson:"category" json:"category"`
	Ingredients   []Ingredient `bson:"ingredients" json:"ingredients"`
	Instructions  []string     `bson:"instructions,omitempty" json:"instructions,omitempty"`
	ImageURL      string       `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	EstimatedCost float64      `bson:"estimatedCost,omitempty" json:"estimatedCost,omitempty"`
}

// RecipeCatalog is a read-only collection of recipes, assumed static for the
// duration of a reconciliation call.
type RecipeCatalog struct {
	index map[string]*Recipe
}

// NewRecipeCatalog builds a catalog over a snapshot of recipes.
func NewRecipeCatalog(recipes []*Recipe) *RecipeCatalog {
	index := make(map[string]*Recipe, len(recipes))
	for _, r := range recipes {
		index[r.ID] = r
	}
	return &RecipeCatalog{index: index}
}

// Get returns the recipe with the given id or ErrRecipeNotFound.
func (c *RecipeCatalog) Get(recipeID string) (*Recipe, error) {
	r, ok := c.index[recipeID]
	if !ok {
		return nil, ErrRecipeNotFound
	}
	return r, nil
}
