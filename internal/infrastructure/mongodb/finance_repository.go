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

// TransactionRepository persists finance ledger entries and their categories.
type TransactionRepository struct {
	transactions *platformmongo.Collection
	categories   *platformmongo.Collection
}

// NewTransactionRepository creates a TransactionRepository
func NewTransactionRepository(client *platformmongo.CircuitBreakerClient) *TransactionRepository {
	repo := &TransactionRepository{
		transactions: client.Collection("transactions"),
		categories:   client.Collection("finance_categories"),
	}
	repo.ensureIndexes(context.Background())
	return repo
}

func (r *TransactionRepository) ensureIndexes(ctx context.Context) {
	_ = r.transactions.CreateIndexes(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "categoryId", Value: 1}}},
		{Keys: bson.D{{Key: "type", Value: 1}}},
	})
}

// FindAll returns transactions newest first.
func (r *TransactionRepository) FindAll(ctx context.Context) ([]*domain.Transaction, error) {
	var transactions []*domain.Transaction
	opts := options.Find().SetSort(platformmongo.SortDescending("date"))
	if err := r.transactions.Find(ctx, bson.M{}, &transactions, opts); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

func (r *TransactionRepository) Save(ctx context.Context, tx *domain.Transaction) error {
	if _, err := r.transactions.ReplaceOne(ctx, platformmongo.ByID(tx.ID), tx, platformmongo.Upsert()); err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepository) ListCategories(ctx context.Context) ([]*domain.FinanceCategory, error) {
	var categories []*domain.FinanceCategory
	opts := options.Find().SetSort(platformmongo.SortAscending("name"))
	if err := r.categories.Find(ctx, bson.M{}, &categories, opts); err != nil {
		return nil, fmt.Errorf("failed to list finance categories: %w", err)
	}
	return categories, nil
}

func (r *TransactionRepository) SaveCategory(ctx context.Context, category *domain.FinanceCategory) error {
	if _, err := r.categories.ReplaceOne(ctx, platformmongo.ByID(category.ID), category, platformmongo.Upsert()); err != nil {
		return fmt.Errorf("failed to save finance category: %w", err)
	}
	return nil
}
