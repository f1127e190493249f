package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/household-platform/household-service/internal/application"
	"github.com/household-platform/household-service/internal/domain"
	"github.com/household-platform/household-service/internal/platform/logging"
	"github.com/household-platform/household-service/internal/platform/middleware"
)

// handlers bundles the application services the route table needs.
type handlers struct {
	pantry        *application.PantryService
	recipes       *application.RecipeService
	mealPlans     *application.MealPlanService
	shopping      *application.ShoppingService
	finance       *application.FinanceService
	savings       *application.SavingsService
	bills         *application.BillService
	users         *application.UserService
	announcements *application.AnnouncementService
	receipts      *application.ReceiptService
	logger        *logging.Logger
}

func registerRoutes(api *gin.RouterGroup, h *handlers) {
	editor := middleware.RequireEditor()
	admin := middleware.RequireAdmin()

	// Pantry inventory. Static routes before the :itemId wildcard.
	api.GET("/inventory", listInventoryHandler(h.pantry, h.logger))
	api.POST("/inventory", editor, createItemHandler(h.pantry, h.logger))
	api.GET("/inventory/low-stock", lowStockHandler(h.pantry, h.logger))
	api.GET("/inventory/shopping-list", shoppingListHandler(h.shopping, h.logger))
	api.GET("/inventory/categories", listInventoryCategoriesHandler(h.pantry, h.logger))
	api.POST("/inventory/categories", editor, createInventoryCategoryHandler(h.pantry, h.logger))
	api.GET("/inventory/:itemId", getItemHandler(h.pantry, h.logger))
	api.PUT("/inventory/:itemId", editor, updateItemHandler(h.pantry, h.logger))
	api.POST("/inventory/:itemId/adjust", editor, adjustQuantityHandler(h.pantry, h.logger))
	api.DELETE("/inventory/:itemId", admin, deleteItemHandler(h.pantry, h.logger))

	// Recipes
	api.GET("/recipes", listRecipesHandler(h.recipes, h.logger))
	api.POST("/recipes", editor, createRecipeHandler(h.recipes, h.logger))
	api.GET("/recipes/:recipeId", getRecipeHandler(h.recipes, h.logger))
	api.PUT("/recipes/:recipeId", editor, updateRecipeHandler(h.recipes, h.logger))

	// Meal planner
	api.GET("/meal-plans", listMealPlansHandler(h.mealPlans, h.logger))
	api.POST("/meal-plans/next-day", editor, appendDayHandler(h.mealPlans, h.logger))
	api.GET("/meal-plans/:date", getDayPlanHandler(h.mealPlans, h.logger))
	api.PUT("/meal-plans/:date/:mealType", editor, assignRecipeHandler(h.mealPlans, h.logger))
	api.POST("/meal-plans/:date/:mealType/prepare", editor, prepareMealHandler(h.mealPlans, h.logger))

	// Finance
	api.GET("/transactions", listTransactionsHandler(h.finance, h.logger))
	api.POST("/transactions", editor, createTransactionHandler(h.finance, h.logger))
	api.GET("/finance/summary", financeSummaryHandler(h.finance, h.logger))
	api.GET("/finance/categories", listFinanceCategoriesHandler(h.finance, h.logger))
	api.POST("/finance/categories", editor, createFinanceCategoryHandler(h.finance, h.logger))

	// Savings goals
	api.GET("/savings", listGoalsHandler(h.savings, h.logger))
	api.POST("/savings", editor, createGoalHandler(h.savings, h.logger))
	api.POST("/savings/:goalId/funds", editor, addFundsHandler(h.savings, h.logger))

	// Bills
	api.GET("/bills", listBillsHandler(h.bills, h.logger))
	api.POST("/bills", editor, createBillHandler(h.bills, h.logger))
	api.PUT("/bills/:billId", editor, updateBillHandler(h.bills, h.logger))
	api.POST("/bills/:billId/payments", editor, payBillHandler(h.bills, h.logger))
	api.DELETE("/bills/:billId", admin, deleteBillHandler(h.bills, h.logger))

	// Announcement board
	api.GET("/announcements", listAnnouncementsHandler(h.announcements, h.logger))
	api.POST("/announcements", editor, postAnnouncementHandler(h.announcements, h.logger))

	// Household members
	api.GET("/users", listUsersHandler(h.users, h.logger))
	api.POST("/users", admin, createUserHandler(h.users, h.logger))
	api.GET("/users/me", currentUserHandler(h.users, h.logger))
	api.GET("/users/:userId", getUserHandler(h.users, h.logger))
	api.PATCH("/users/:userId/role", admin, updateUserRoleHandler(h.users, h.logger))
	api.DELETE("/users/:userId", admin, deleteUserHandler(h.users, h.logger))

	// Receipt ingestion
	api.POST("/receipts/scan", editor, scanReceiptHandler(h.receipts, h.logger))
	api.POST("/receipts/import", editor, importReceiptHandler(h.receipts, h.logger))
}

func parseMealType(c *gin.Context, responder *middleware.ErrorResponder) (domain.MealType, bool) {
	mealType := domain.MealType(c.Param("mealType"))
	if !mealType.IsValid() {
		responder.RespondBadRequest("unknown meal type: " + c.Param("mealType"))
		return "", false
	}
	return mealType, true
}

func parseDate(c *gin.Context, responder *middleware.ErrorResponder) (string, bool) {
	date := c.Param("date")
	if !domain.ValidISODate(date) {
		responder.RespondBadRequest("invalid date, expected YYYY-MM-DD: " + date)
		return "", false
	}
	return date, true
}

func listInventoryHandler(service *application.PantryService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		items, err := service.ListItems(c.Request.Context())
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func createItemHandler(service *application.PantryService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		var cmd application.CreateStockItemCommand
		if appErr := middleware.BindAndValidate(c, &cmd); appErr != nil {
			responder.RespondWithAppError(appErr)
			return
		}

		item, err := service.CreateItem(c.Request.Context(), cmd)
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

func getItemHandler(service *application.PantryService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		item, err := service.GetItem(c.Request.Context(), c.Param("itemId"))
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func updateItemHandler(service *application.PantryService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		var cmd application.UpdateStockItemCommand
		if appErr := middleware.BindAndValidate(c, &cmd); appErr != nil {
			responder.RespondWithAppError(appErr)
			return
		}

		item, err := service.UpdateItem(c.Request.Context(), c.Param("itemId"), cmd)
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func adjustQuantityHandler(service *application.PantryService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		var cmd application.AdjustStockCommand
		if appErr := middleware.BindAndValidate(c, &cmd); appErr != nil {
			responder.RespondWithAppError(appErr)
			return
		}

		item, err := service.AdjustQuantity(c.Request.Context(), c.Param("itemId"), cmd)
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func deleteItemHandler(service *application.PantryService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		if err := service.DeleteItem(c.Request.Context(), c.Param("itemId")); err != nil {
			responder.RespondWithError(err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func lowStockHandler(service *application.PantryService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		items, err := service.LowStockItems(c.Request.Context())
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func listInventoryCategoriesHandler(service *application.PantryService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		categories, err := service.ListCategories(c.Request.Context())
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

func createInventoryCategoryHandler(service *application.PantryService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		var cmd application.CreateInventoryCategoryCommand
		if appErr := middleware.BindAndValidate(c, &cmd); appErr != nil {
			responder.RespondWithAppError(appErr)
			return
		}

		category, err := service.CreateCategory(c.Request.Context(), cmd)
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

func listRecipesHandler(service *application.RecipeService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		recipes, err := service.ListRecipes(c.Request.Context())
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusOK, recipes)
	}
}

func createRecipeHandler(service *application.RecipeService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		var cmd application.CreateRecipeCommand
		if appErr := middleware.BindAndValidate(c, &cmd); appErr != nil {
			responder.RespondWithAppError(appErr)
			return
		}

		recipe, err := service.CreateRecipe(c.Request.Context(), cmd)
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusCreated, recipe)
	}
}

func getRecipeHandler(service *application.RecipeService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		recipe, err := service.GetRecipe(c.Request.Context(), c.Param("recipeId"))
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusOK, recipe)
	}
}

func updateRecipeHandler(service *application.RecipeService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		var cmd application.CreateRecipeCommand
		if appErr := middleware.BindAndValidate(c, &cmd); appErr != nil {
			responder.RespondWithAppError(appErr)
			return
		}

		recipe, err := service.UpdateRecipe(c.Request.Context(), c.Param("recipeId"), cmd)
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusOK, recipe)
	}
}

func listMealPlansHandler(service *application.MealPlanService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		plans, err := service.ListPlans(c.Request.Context())
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusOK, plans)
	}
}

func appendDayHandler(service *application.MealPlanService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		plan, err := service.AppendNextDay(c.Request.Context())
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusCreated, plan)
	}
}

func getDayPlanHandler(service *application.MealPlanService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		date, ok := parseDate(c, responder)
		if !ok {
			return
		}

		plan, err := service.GetDay(c.Request.Context(), date)
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusOK, plan)
	}
}

func assignRecipeHandler(service *application.MealPlanService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		date, ok := parseDate(c, responder)
		if !ok {
			return
		}
		mealType, ok := parseMealType(c, responder)
		if !ok {
			return
		}

		var cmd application.AssignRecipeCommand
		if appErr := middleware.BindAndValidate(c, &cmd); appErr != nil {
			responder.RespondWithAppError(appErr)
			return
		}

		plan, err := service.AssignRecipe(c.Request.Context(), date, mealType, cmd)
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusOK, plan)
	}
}

func prepareMealHandler(service *application.MealPlanService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		date, ok := parseDate(c, responder)
		if !ok {
			return
		}
		mealType, ok := parseMealType(c, responder)
		if !ok {
			return
		}

		result, err := service.Prepare(c.Request.Context(), date, mealType)
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func shoppingListHandler(service *application.ShoppingService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		list, err := service.Project(c.Request.Context())
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func listTransactionsHandler(service *application.FinanceService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		transactions, err := service.ListTransactions(c.Request.Context())
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusOK, transactions)
	}
}

func createTransactionHandler(service *application.FinanceService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		var cmd application.CreateTransactionCommand
		if appErr := middleware.BindAndValidate(c, &cmd); appErr != nil {
			responder.RespondWithAppError(appErr)
			return
		}

		tx, err := service.AddTransaction(c.Request.Context(), cmd)
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusCreated, tx)
	}
}

func financeSummaryHandler(service *application.FinanceService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		summary, err := service.Summary(c.Request.Context())
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

func listFinanceCategoriesHandler(service *application.FinanceService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		categories, err := service.ListCategories(c.Request.Context())
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

func createFinanceCategoryHandler(service *application.FinanceService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		var cmd application.CreateFinanceCategoryCommand
		if appErr := middleware.BindAndValidate(c, &cmd); appErr != nil {
			responder.RespondWithAppError(appErr)
			return
		}

		category, err := service.CreateCategory(c.Request.Context(), cmd)
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

func listGoalsHandler(service *application.SavingsService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		goals, err := service.ListGoals(c.Request.Context())
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusOK, goals)
	}
}

func createGoalHandler(service *application.SavingsService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		var cmd application.CreateSavingsGoalCommand
		if appErr := middleware.BindAndValidate(c, &cmd); appErr != nil {
			responder.RespondWithAppError(appErr)
			return
		}

		goal, err := service.CreateGoal(c.Request.Context(), cmd)
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusCreated, goal)
	}
}

func addFundsHandler(service *application.SavingsService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		var cmd application.AddFundsCommand
		if appErr := middleware.BindAndValidate(c, &cmd); appErr != nil {
			responder.RespondWithAppError(appErr)
			return
		}

		goal, err := service.AddFunds(c.Request.Context(), c.Param("goalId"), cmd)
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusOK, goal)
	}
}

func listBillsHandler(service *application.BillService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		bills, err := service.ListBills(c.Request.Context())
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusOK, bills)
	}
}

func createBillHandler(service *application.BillService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		var cmd application.CreateBillCommand
		if appErr := middleware.BindAndValidate(c, &cmd); appErr != nil {
			responder.RespondWithAppError(appErr)
			return
		}

		bill, err := service.CreateBill(c.Request.Context(), cmd)
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusCreated, bill)
	}
}

func updateBillHandler(service *application.BillService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		var cmd application.CreateBillCommand
		if appErr := middleware.BindAndValidate(c, &cmd); appErr != nil {
			responder.RespondWithAppError(appErr)
			return
		}

		bill, err := service.UpdateBill(c.Request.Context(), c.Param("billId"), cmd)
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusOK, bill)
	}
}

func payBillHandler(service *application.BillService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		var cmd application.PayBillCommand
		if appErr := middleware.BindAndValidate(c, &cmd); appErr != nil {
			responder.RespondWithAppError(appErr)
			return
		}

		bill, err := service.PayBill(c.Request.Context(), c.Param("billId"), cmd)
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusOK, bill)
	}
}

func deleteBillHandler(service *application.BillService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		if err := service.DeleteBill(c.Request.Context(), c.Param("billId")); err != nil {
			responder.RespondWithError(err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func listAnnouncementsHandler(service *application.AnnouncementService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		announcements, err := service.ListAnnouncements(c.Request.Context())
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusOK, announcements)
	}
}

func postAnnouncementHandler(service *application.AnnouncementService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		var cmd application.PostAnnouncementCommand
		if appErr := middleware.BindAndValidate(c, &cmd); appErr != nil {
			responder.RespondWithAppError(appErr)
			return
		}

		announcement, err := service.PostAnnouncement(c.Request.Context(), cmd)
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusCreated, announcement)
	}
}

func listUsersHandler(service *application.UserService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		users, err := service.ListUsers(c.Request.Context())
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

func createUserHandler(service *application.UserService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		var cmd application.CreateUserCommand
		if appErr := middleware.BindAndValidate(c, &cmd); appErr != nil {
			responder.RespondWithAppError(appErr)
			return
		}

		user, err := service.CreateUser(c.Request.Context(), cmd)
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}

func currentUserHandler(service *application.UserService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			responder.RespondBadRequest("X-User-ID header required")
			return
		}

		user, err := service.GetUser(c.Request.Context(), userID)
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func getUserHandler(service *application.UserService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		user, err := service.GetUser(c.Request.Context(), c.Param("userId"))
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func updateUserRoleHandler(service *application.UserService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		var cmd application.UpdateUserRoleCommand
		if appErr := middleware.BindAndValidate(c, &cmd); appErr != nil {
			responder.RespondWithAppError(appErr)
			return
		}

		user, err := service.UpdateUserRole(c.Request.Context(), c.Param("userId"), cmd)
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func deleteUserHandler(service *application.UserService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		if err := service.DeleteUser(c.Request.Context(), c.Param("userId")); err != nil {
			responder.RespondWithError(err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func scanReceiptHandler(service *application.ReceiptService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		var cmd application.ScanReceiptCommand
		if appErr := middleware.BindAndValidate(c, &cmd); appErr != nil {
			responder.RespondWithAppError(appErr)
			return
		}

		receipt, err := service.ScanReceipt(c.Request.Context(), cmd)
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusOK, receipt)
	}
}

func importReceiptHandler(service *application.ReceiptService, logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		responder := middleware.NewErrorResponder(c, logger.Logger)

		var cmd application.ImportReceiptCommand
		if appErr := middleware.BindAndValidate(c, &cmd); appErr != nil {
			responder.RespondWithAppError(appErr)
			return
		}

		tx, err := service.ImportReceipt(c.Request.Context(), cmd)
		if err != nil {
			responder.RespondWithError(err)
			return
		}
		c.JSON(http.StatusCreated, tx)
	}
}
