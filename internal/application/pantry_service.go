package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/household-platform/household-service/internal/domain"
	"github.com/household-platform/household-service/internal/platform/logging"
	"github.com/household-platform/household-service/internal/platform/metrics"
)

// PantryService handles pantry item CRUD and manual quantity adjustments.
// Recipe-driven deductions never go through here; those belong to the
// MealPlanService's reconciliation path.
type PantryService struct {
	stock   domain.StockRepository
	metrics *metrics.Metrics
	logger  *logging.Logger
}

// NewPantryService creates a PantryService
func NewPantryService(stock domain.StockRepository, m *metrics.Metrics, logger *logging.Logger) *PantryService {
	return &PantryService{
		stock:   stock,
		metrics: m,
		logger:  logger.WithComponent("pantry-service"),
	}
}

// ListItems returns every pantry item in insertion order.
func (s *PantryService) ListItems(ctx context.Context) ([]*domain.StockItem, error) {
	return s.stock.FindAll(ctx)
}

// GetItem returns one pantry item by id.
func (s *PantryService) GetItem(ctx context.Context, id string) (*domain.StockItem, error) {
	return s.stock.FindByID(ctx, id)
}

// CreateItem adds a new pantry item.
func (s *PantryService) CreateItem(ctx context.Context, cmd CreateStockItemCommand) (*domain.StockItem, error) {
	now := time.Now().UTC()
	item := &domain.StockItem{
		ID:                uuid.New().String(),
		Name:              cmd.Name,
		Quantity:          cmd.Quantity,
		Unit:              cmd.Unit,
		LowStockThreshold: cmd.LowStockThreshold,
		UnitPrice:         cmd.UnitPrice,
		CategoryID:        cmd.CategoryID,
		ExpiryDate:        cmd.ExpiryDate,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.stock.Save(ctx, item); err != nil {
		return nil, err
	}

	s.logger.WithContext(ctx).Info("Pantry item created",
		"itemId", item.ID,
		"name", item.Name,
		"quantity", item.Quantity,
		"unit", item.Unit,
	)
	s.refreshLowStockGauge(ctx)
	return item, nil
}

// UpdateItem replaces a pantry item's mutable fields.
func (s *PantryService) UpdateItem(ctx context.Context, id string, cmd UpdateStockItemCommand) (*domain.StockItem, error) {
	item, err := s.stock.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Name = cmd.Name
	item.Quantity = cmd.Quantity
	item.Unit = cmd.Unit
	item.LowStockThreshold = cmd.LowStockThreshold
	item.UnitPrice = cmd.UnitPrice
	item.CategoryID = cmd.CategoryID
	item.ExpiryDate = cmd.ExpiryDate

	if err := s.stock.Save(ctx, item); err != nil {
		return nil, err
	}

	s.logger.WithContext(ctx).Info("Pantry item updated", "itemId", item.ID, "name", item.Name)
	s.refreshLowStockGauge(ctx)
	return item, nil
}

// AdjustQuantity applies a signed delta to one item. The ledger enforces the
// non-negative invariant, so a delta that would overdraw fails whole.
func (s *PantryService) AdjustQuantity(ctx context.Context, id string, cmd AdjustStockCommand) (*domain.StockItem, error) {
	item, err := s.stock.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ledger := domain.NewStockLedger([]*domain.StockItem{item})
	adjusted, err := ledger.ApplyDelta(id, cmd.Delta)
	if err != nil {
		return nil, err
	}

	if err := s.stock.Save(ctx, adjusted); err != nil {
		return nil, err
	}

	s.logger.WithContext(ctx).Info("Pantry quantity adjusted",
		"itemId", adjusted.ID,
		"delta", cmd.Delta,
		"quantity", adjusted.Quantity,
	)
	s.refreshLowStockGauge(ctx)
	return adjusted, nil
}

// DeleteItem removes a pantry item.
func (s *PantryService) DeleteItem(ctx context.Context, id string) error {
	if err := s.stock.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.WithContext(ctx).Info("Pantry item deleted", "itemId", id)
	s.refreshLowStockGauge(ctx)
	return nil
}

// LowStockItems returns items at or below their threshold, in insertion order.
func (s *PantryService) LowStockItems(ctx context.Context) ([]*domain.StockItem, error) {
	items, err := s.stock.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	low := domain.NewStockLedger(items).ListBelowThreshold()
	if s.metrics != nil {
		s.metrics.SetLowStockItems(len(low))
	}
	return low, nil
}

// ListCategories returns the pantry categories sorted by name.
func (s *PantryService) ListCategories(ctx context.Context) ([]*domain.InventoryCategory, error) {
	return s.stock.ListCategories(ctx)
}

// CreateCategory adds a pantry category.
func (s *PantryService) CreateCategory(ctx context.Context, cmd CreateInventoryCategoryCommand) (*domain.InventoryCategory, error) {
	category := &domain.InventoryCategory{
		ID:   uuid.New().String(),
		Name: cmd.Name,
	}
	if err := s.stock.SaveCategory(ctx, category); err != nil {
		return nil, err
	}
	s.logger.WithContext(ctx).Info("Pantry category created", "categoryId", category.ID, "name", category.Name)
	return category, nil
}

// refreshLowStockGauge recomputes the low-stock gauge after a mutation. Gauge
// staleness is tolerable, so a failed read is logged and swallowed.
func (s *PantryService) refreshLowStockGauge(ctx context.Context) {
	if s.metrics == nil {
		return
	}
	items, err := s.stock.FindAll(ctx)
	if err != nil {
		s.logger.WithContext(ctx).WithError(err).Warn("Failed to refresh low-stock gauge")
		return
	}
	s.metrics.SetLowStockItems(len(domain.NewStockLedger(items).ListBelowThreshold()))
}
