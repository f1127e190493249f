package application

import (
	"context"

	"github.com/household-platform/household-service/internal/domain"
	"github.com/household-platform/household-service/internal/platform/logging"
	"github.com/household-platform/household-service/internal/platform/metrics"
)

// ShoppingService projects the shopping list from current pantry state. The
// list is derived on every call and never stored.
type ShoppingService struct {
	stock   domain.StockRepository
	metrics *metrics.Metrics
	logger  *logging.Logger
}

// NewShoppingService creates a ShoppingService
func NewShoppingService(stock domain.StockRepository, m *metrics.Metrics, logger *logging.Logger) *ShoppingService {
	return &ShoppingService{
		stock:   stock,
		metrics: m,
		logger:  logger.WithComponent("shopping-service"),
	}
}

// Project builds the current shopping list from items at or below threshold.
func (s *ShoppingService) Project(ctx context.Context) (*domain.ShoppingList, error) {
	items, err := s.stock.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	list := domain.NewShoppingListProjector(domain.NewStockLedger(items)).Project()

	if s.metrics != nil {
		s.metrics.SetShoppingListTotal(list.Total)
	}
	s.logger.WithContext(ctx).Debug("Shopping list projected",
		"entries", len(list.Entries),
		"total", list.Total,
	)
	return list, nil
}

// LowStockDigest pairs the low-stock items with the projected restocking
// cost. The daily digest job publishes this summary.
func (s *ShoppingService) LowStockDigest(ctx context.Context) (*LowStockDigestDTO, error) {
	items, err := s.stock.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	ledger := domain.NewStockLedger(items)
	low := ledger.ListBelowThreshold()
	list := domain.NewShoppingListProjector(ledger).Project()

	if s.metrics != nil {
		s.metrics.SetLowStockItems(len(low))
		s.metrics.SetShoppingListTotal(list.Total)
	}
	return &LowStockDigestDTO{Items: low, EstimatedTotal: list.Total}, nil
}
