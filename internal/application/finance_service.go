package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/household-platform/household-service/internal/domain"
	"github.com/household-platform/household-service/internal/platform/kafka"
	"github.com/household-platform/household-service/internal/platform/logging"
)

// FinanceService handles the transaction ledger and its categories.
type FinanceService struct {
	transactions domain.TransactionRepository
	producer     *kafka.Producer
	logger       *logging.Logger
}

// NewFinanceService creates a FinanceService
func NewFinanceService(transactions domain.TransactionRepository, producer *kafka.Producer, logger *logging.Logger) *FinanceService {
	return &FinanceService{
		transactions: transactions,
		producer:     producer,
		logger:       logger.WithComponent("finance-service"),
	}
}

// ListTransactions returns every ledger entry, newest first.
func (s *FinanceService) ListTransactions(ctx context.Context) ([]*domain.Transaction, error) {
	return s.transactions.FindAll(ctx)
}

// AddTransaction records a new income or expense entry.
func (s *FinanceService) AddTransaction(ctx context.Context, cmd CreateTransactionCommand) (*domain.Transaction, error) {
	tx := &domain.Transaction{
		ID:          uuid.New().String(),
		CategoryID:  cmd.CategoryID,
		Amount:      cmd.Amount,
		Type:        domain.TransactionType(cmd.Type),
		Description: cmd.Description,
		Date:        cmd.Date,
	}

	if err := s.transactions.Save(ctx, tx); err != nil {
		return nil, err
	}

	s.logger.WithContext(ctx).Info("Transaction recorded",
		"transactionId", tx.ID,
		"type", tx.Type,
		"amount", tx.Amount,
	)
	s.publishFinanceEvent(ctx, "household.finance.transaction_recorded", tx.ID, tx)
	return tx, nil
}

// Summary aggregates the ledger into income, expense and balance totals.
func (s *FinanceService) Summary(ctx context.Context) (*FinanceSummaryDTO, error) {
	txs, err := s.transactions.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := &FinanceSummaryDTO{}
	for _, tx := range txs {
		switch tx.Type {
		case domain.TransactionIncome:
			summary.TotalIncome += tx.Amount
		case domain.TransactionExpense:
			summary.TotalExpenses += tx.Amount
		}
	}
	summary.Balance = summary.TotalIncome - summary.TotalExpenses
	return summary, nil
}

// ListCategories returns the finance categories sorted by name.
func (s *FinanceService) ListCategories(ctx context.Context) ([]*domain.FinanceCategory, error) {
	return s.transactions.ListCategories(ctx)
}

// CreateCategory adds a finance category.
func (s *FinanceService) CreateCategory(ctx context.Context, cmd CreateFinanceCategoryCommand) (*domain.FinanceCategory, error) {
	category := &domain.FinanceCategory{
		ID:   uuid.New().String(),
		Name: cmd.Name,
		Type: domain.TransactionType(cmd.Type),
	}
	if err := s.transactions.SaveCategory(ctx, category); err != nil {
		return nil, err
	}
	s.logger.WithContext(ctx).Info("Finance category created", "categoryId", category.ID, "name", category.Name)
	return category, nil
}

func (s *FinanceService) publishFinanceEvent(ctx context.Context, eventType, subject string, data interface{}) {
	if s.producer == nil {
		return
	}
	envelope := kafka.NewEnvelope(eventType, eventSource, subject, data)
	if err := s.producer.Publish(ctx, kafka.Topics.FinanceEvents, envelope); err != nil {
		s.logger.WithContext(ctx).WithError(err).Warn("Failed to publish finance event", "eventType", eventType)
	}
}
