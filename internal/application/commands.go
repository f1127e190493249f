package application

import "time"

// CreateStockItemCommand creates a pantry item
type CreateStockItemCommand struct {
	Name              string     `json:"name" binding:"required"`
	Quantity          float64    `json:"quantity" binding:"gte=0"`
	Unit              string     `json:"unit" binding:"required,measureunit"`
	LowStockThreshold float64    `json:"lowStockThreshold" binding:"gte=0"`
	UnitPrice         float64    `json:"unitPrice" binding:"omitempty,gte=0"`
	CategoryID        string     `json:"categoryId"`
	ExpiryDate        *time.Time `json:"expiryDate"`
}

// UpdateStockItemCommand updates a pantry item
type UpdateStockItemCommand struct {
	Name              string     `json:"name" binding:"required"`
	Quantity          float64    `json:"quantity" binding:"gte=0"`
	Unit              string     `json:"unit" binding:"required,measureunit"`
	LowStockThreshold float64    `json:"lowStockThreshold" binding:"gte=0"`
	UnitPrice         float64    `json:"unitPrice" binding:"omitempty,gte=0"`
	CategoryID        string     `json:"categoryId"`
	ExpiryDate        *time.Time `json:"expiryDate"`
}

// AdjustStockCommand applies a signed quantity delta to a pantry item
type AdjustStockCommand struct {
	Delta float64 `json:"delta" binding:"required"`
}

// CreateInventoryCategoryCommand creates a pantry category
type CreateInventoryCategoryCommand struct {
	Name string `json:"name" binding:"required"`
}

// IngredientPayload is one recipe ingredient in a request body
type IngredientPayload struct {
	StockItemID string  `json:"stockItemId" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"gt=0"`
	Unit        string  `json:"unit" binding:"required,measureunit"`
}

// CreateRecipeCommand creates a recipe
type CreateRecipeCommand struct {
	Name          string              `json:"name" binding:"required"`
	Category      string              `json:"category" binding:"required,mealtype"`
	Ingredients   []IngredientPayload `json:"ingredients" binding:"required,min=1,dive"`
	Instructions  []string            `json:"instructions"`
	ImageURL      string              `json:"imageUrl" binding:"omitempty,url"`
	EstimatedCost float64             `json:"estimatedCost" binding:"omitempty,gte=0"`
}

// AssignRecipeCommand assigns a recipe to a meal slot
type AssignRecipeCommand struct {
	RecipeID string `json:"recipeId" binding:"required"`
}

// CreateTransactionCommand records a finance ledger entry
type CreateTransactionCommand struct {
	CategoryID  string  `json:"categoryId" binding:"required"`
	Amount      float64 `json:"amount" binding:"gt=0"`
	Type        string  `json:"type" binding:"required,txntype"`
	Description string  `json:"description"`
	Date        string  `json:"date" binding:"required,isodate"`
}

// CreateFinanceCategoryCommand creates a finance category
type CreateFinanceCategoryCommand struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required,txntype"`
}

// CreateSavingsGoalCommand creates a savings goal
type CreateSavingsGoalCommand struct {
	Name         string  `json:"name" binding:"required"`
	TargetAmount float64 `json:"targetAmount" binding:"gt=0"`
	Deadline     string  `json:"deadline" binding:"required,isodate"`
}

// AddFundsCommand moves money into a savings goal
type AddFundsCommand struct {
	Amount float64 `json:"amount" binding:"gt=0"`
}

// CreateBillCommand creates a recurring bill
type CreateBillCommand struct {
	Name       string  `json:"name" binding:"required"`
	Amount     float64 `json:"amount" binding:"gt=0"`
	DueDate    int     `json:"dueDate" binding:"required,min=1,max=31"`
	CategoryID string  `json:"categoryId"`
}

// PayBillCommand records a bill payment for one month
type PayBillCommand struct {
	Period string  `json:"period" binding:"required,billperiod"`
	Amount float64 `json:"amount" binding:"gt=0"`
}

// PostAnnouncementCommand posts to the household board
type PostAnnouncementCommand struct {
	AuthorID  string `json:"authorId" binding:"required"`
	Content   string `json:"content" binding:"required"`
	MediaURL  string `json:"mediaUrl" binding:"omitempty,url"`
	MediaType string `json:"mediaType" binding:"omitempty,oneof=image video"`
}

// CreateUserCommand adds a household member
type CreateUserCommand struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Role      string `json:"role" binding:"required,userrole"`
	AvatarURL string `json:"avatarUrl" binding:"omitempty,url"`
}

// UpdateUserRoleCommand changes a member's role
type UpdateUserRoleCommand struct {
	Role string `json:"role" binding:"required,userrole"`
}

// ScanReceiptCommand submits a receipt photo for parsing
type ScanReceiptCommand struct {
	ImageBase64 string `json:"imageBase64" binding:"required"`
	MediaType   string `json:"mediaType" binding:"required,oneof=image/jpeg image/png image/webp"`
}

// ImportReceiptCommand records a parsed receipt as an expense
type ImportReceiptCommand struct {
	CategoryID  string  `json:"categoryId" binding:"required"`
	VendorName  string  `json:"vendorName" binding:"required"`
	TotalAmount float64 `json:"totalAmount" binding:"gt=0"`
	Date        string  `json:"date" binding:"required,isodate"`
}
