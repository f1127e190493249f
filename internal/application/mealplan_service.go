package application

import (
	"context"
	"sync"

	"github.com/household-platform/household-service/internal/domain"
	"github.com/household-platform/household-service/internal/platform/kafka"
	"github.com/household-platform/household-service/internal/platform/logging"
	"github.com/household-platform/household-service/internal/platform/metrics"
)

// eventSource identifies this service in published event envelopes.
const eventSource = "household-service"

// MealPlanService owns the meal planner and the preparation workflow. Prepare
// is the one operation that spans stock and plans, so the service serializes
// it: concurrent prepares against the same snapshot could otherwise both pass
// validation and overdraw the pantry.
type MealPlanService struct {
	plans    domain.MealPlanRepository
	recipes  domain.RecipeRepository
	stock    domain.StockRepository
	producer *kafka.Producer
	metrics  *metrics.Metrics
	logger   *logging.Logger

	prepareMu sync.Mutex
}

// NewMealPlanService creates a MealPlanService
func NewMealPlanService(
	plans domain.MealPlanRepository,
	recipes domain.RecipeRepository,
	stock domain.StockRepository,
	producer *kafka.Producer,
	m *metrics.Metrics,
	logger *logging.Logger,
) *MealPlanService {
	return &MealPlanService{
		plans:    plans,
		recipes:  recipes,
		stock:    stock,
		producer: producer,
		metrics:  m,
		logger:   logger.WithComponent("mealplan-service"),
	}
}

// ListPlans returns every day-plan in calendar order.
func (s *MealPlanService) ListPlans(ctx context.Context) ([]*domain.DayPlan, error) {
	return s.plans.FindAll(ctx)
}

// GetDay returns the day-plan for one date.
func (s *MealPlanService) GetDay(ctx context.Context, date string) (*domain.DayPlan, error) {
	return s.plans.FindByDate(ctx, date)
}

// AssignRecipe places a recipe into a meal slot, resetting its prepared flag.
// The recipe must exist; dangling assignments would poison later prepares.
func (s *MealPlanService) AssignRecipe(ctx context.Context, date string, mealType domain.MealType, cmd AssignRecipeCommand) (*domain.DayPlan, error) {
	if _, err := s.recipes.FindByID(ctx, cmd.RecipeID); err != nil {
		return nil, err
	}

	plan, err := s.plans.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	store := domain.NewMealPlanStore([]*domain.DayPlan{plan})
	if err := store.AssignRecipe(date, mealType, cmd.RecipeID); err != nil {
		return nil, err
	}
	if err := s.plans.Save(ctx, plan); err != nil {
		return nil, err
	}

	s.logger.WithContext(ctx).Info("Recipe assigned",
		"date", date,
		"mealType", mealType,
		"recipeId", cmd.RecipeID,
	)
	return plan, nil
}

// AppendNextDay extends the planner by one calendar day past the last plan.
func (s *MealPlanService) AppendNextDay(ctx context.Context) (*domain.DayPlan, error) {
	existing, err := s.plans.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	store := domain.NewMealPlanStore(existing)
	plan, err := store.AppendNextDay()
	if err != nil {
		return nil, err
	}
	if err := s.plans.Save(ctx, plan); err != nil {
		return nil, err
	}

	s.logger.WithContext(ctx).Info("Day plan appended", "date", plan.Date)
	return plan, nil
}

// Prepare runs the reconciliation workflow for one meal slot: load snapshots,
// validate and deduct through the domain reconciler, persist both sides, then
// publish the events the run produced. Failures before persistence leave the
// stored state untouched.
func (s *MealPlanService) Prepare(ctx context.Context, date string, mealType domain.MealType) (*domain.PreparationResult, error) {
	s.prepareMu.Lock()
	defer s.prepareMu.Unlock()

	plan, err := s.plans.FindByDate(ctx, date)
	if err != nil {
		s.recordFailure("plan_not_found")
		return nil, err
	}
	items, err := s.stock.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	recipes, err := s.recipes.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	ledger := domain.NewStockLedger(items)
	reconciler := domain.NewPreparationReconciler(
		ledger,
		domain.NewRecipeCatalog(recipes),
		domain.NewMealPlanStore([]*domain.DayPlan{plan}),
	)

	result, err := reconciler.Prepare(date, mealType)
	if err != nil {
		if _, ok := domain.AsInsufficientStock(err); ok {
			s.recordFailure("insufficient_stock")
		} else {
			s.recordFailure("invalid_request")
		}
		return nil, err
	}

	if result.AlreadyPrepared {
		s.logger.WithContext(ctx).Info("Meal already prepared, no deductions",
			"date", date,
			"mealType", mealType,
		)
		return result, nil
	}

	// Persist the deducted items and the prepared flag. The deduction set is
	// written in one bulk upsert so a partial write cannot split a commit.
	touched := make([]*domain.StockItem, 0, len(result.Deductions))
	for _, d := range result.Deductions {
		item, err := ledger.Get(d.StockItemID)
		if err != nil {
			return nil, err
		}
		touched = append(touched, item)
	}
	if err := s.stock.SaveAll(ctx, touched); err != nil {
		return nil, err
	}
	if err := s.plans.Save(ctx, plan); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, result.Events)

	if s.metrics != nil {
		s.metrics.RecordMealPrepared(string(mealType))
		s.metrics.SetLowStockItems(len(ledger.ListBelowThreshold()))
	}
	s.logger.WithContext(ctx).Info("Meal prepared",
		"date", date,
		"mealType", mealType,
		"recipe", result.RecipeName,
		"deductions", len(result.Deductions),
	)
	return result, nil
}

// publishEvents routes domain events to their topics. Publishing is best
// effort: the preparation already committed, so a broker outage must not fail
// the request.
func (s *MealPlanService) publishEvents(ctx context.Context, events []domain.DomainEvent) {
	if s.producer == nil {
		return
	}
	for _, event := range events {
		topic := kafka.Topics.MealEvents
		subject := ""
		switch e := event.(type) {
		case *domain.MealPreparedEvent:
			subject = e.Date
		case *domain.LowStockAlertEvent:
			topic = kafka.Topics.InventoryEvents
			subject = e.StockItemID
		}

		envelope := kafka.NewEnvelope(event.EventType(), eventSource, subject, event)
		if err := s.producer.Publish(ctx, topic, envelope); err != nil {
			s.logger.WithContext(ctx).WithError(err).Warn("Failed to publish event",
				"eventType", event.EventType(),
				"topic", topic,
			)
		}
	}
}

func (s *MealPlanService) recordFailure(reason string) {
	if s.metrics != nil {
		s.metrics.RecordPreparationFailure(reason)
	}
}
