package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/household-platform/household-service/internal/domain"
)

func TestFinanceServiceAddTransaction(t *testing.T) {
	repo := &fakeTransactionRepo{}
	svc := NewFinanceService(repo, nil, testLogger())

	tx, err := svc.AddTransaction(context.Background(), CreateTransactionCommand{
		CategoryID:  "c-groceries",
		Amount:      42.5,
		Type:        "expense",
		Description: "weekly shop",
		Date:        "2025-03-10",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tx.ID)
	assert.Equal(t, domain.TransactionExpense, tx.Type)

	all, err := svc.ListTransactions(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestFinanceServiceSummary(t *testing.T) {
	repo := &fakeTransactionRepo{transactions: []*domain.Transaction{
		{ID: "t1", Amount: 3000, Type: domain.TransactionIncome, Date: "2025-03-01"},
		{ID: "t2", Amount: 120, Type: domain.TransactionExpense, Date: "2025-03-02"},
		{ID: "t3", Amount: 80, Type: domain.TransactionExpense, Date: "2025-03-03"},
	}}
	svc := NewFinanceService(repo, nil, testLogger())

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 3000, summary.TotalIncome, 1e-9)
	assert.InDelta(t, 200, summary.TotalExpenses, 1e-9)
	assert.InDelta(t, 2800, summary.Balance, 1e-9)
}

func TestFinanceServiceCategories(t *testing.T) {
	repo := &fakeTransactionRepo{}
	svc := NewFinanceService(repo, nil, testLogger())

	category, err := svc.CreateCategory(context.Background(), CreateFinanceCategoryCommand{
		Name: "Groceries",
		Type: "expense",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, category.ID)

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 1)
}
