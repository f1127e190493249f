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

// StockRepository persists inventory items and their categories.
type StockRepository struct {
	items      *platformmongo.Collection
	categories *platformmongo.Collection
}

// NewStockRepository creates a StockRepository
func NewStockRepository(client *platformmongo.CircuitBreakerClient) *StockRepository {
	repo := &StockRepository{
		items:      client.Collection("stock_items"),
		categories: client.Collection("inventory_categories"),
	}
	repo.ensureIndexes(context.Background())
	return repo
}

func (r *StockRepository) ensureIndexes(ctx context.Context) {
	_ = r.items.CreateIndexes(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "categoryId", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: 1}}},
	})
}

func (r *StockRepository) FindByID(ctx context.Context, id string) (*domain.StockItem, error) {
	var item domain.StockItem
	if err := r.items.FindOne(ctx, platformmongo.ByID(id), &item); err != nil {
		if platformmongo.IsNotFound(err) {
			return nil, domain.ErrStockItemNotFound
		}
		return nil, fmt.Errorf("failed to find stock item: %w", err)
	}
	return &item, nil
}

// FindAll returns stock items in insertion order.
func (r *StockRepository) FindAll(ctx context.Context) ([]*domain.StockItem, error) {
	var items []*domain.StockItem
	opts := options.Find().SetSort(platformmongo.SortAscending("createdAt"))
	if err := r.items.Find(ctx, bson.M{}, &items, opts); err != nil {
		return nil, fmt.Errorf("failed to list stock items: %w", err)
	}
	return items, nil
}

func (r *StockRepository) Save(ctx context.Context, item *domain.StockItem) error {
	item.UpdatedAt = platformmongo.Now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = item.UpdatedAt
	}

	if _, err := r.items.ReplaceOne(ctx, platformmongo.ByID(item.ID), item, platformmongo.Upsert()); err != nil {
		return fmt.Errorf("failed to save stock item: %w", err)
	}
	return nil
}

// SaveAll persists a batch of items in one bulk write. It is the persistence
// half of an atomic reconciliation commit.
func (r *StockRepository) SaveAll(ctx context.Context, items []*domain.StockItem) error {
	if len(items) == 0 {
		return nil
	}

	now := platformmongo.Now()
	models := make([]mongo.WriteModel, 0, len(items))
	for _, item := range items {
		item.UpdatedAt = now
		if item.CreatedAt.IsZero() {
			item.CreatedAt = now
		}
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(platformmongo.ByID(item.ID)).
			SetReplacement(item).
			SetUpsert(true))
	}

	if _, err := r.items.BulkWrite(ctx, models); err != nil {
		return fmt.Errorf("failed to save stock items: %w", err)
	}
	return nil
}

func (r *StockRepository) Delete(ctx context.Context, id string) error {
	result, err := r.items.DeleteOne(ctx, platformmongo.ByID(id))
	if err != nil {
		return fmt.Errorf("failed to delete stock item: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrStockItemNotFound
	}
	return nil
}

func (r *StockRepository) ListCategories(ctx context.Context) ([]*domain.InventoryCategory, error) {
	var categories []*domain.InventoryCategory
	opts := options.Find().SetSort(platformmongo.SortAscending("name"))
	if err := r.categories.Find(ctx, bson.M{}, &categories, opts); err != nil {
		return nil, fmt.Errorf("failed to list inventory categories: %w", err)
	}
	return categories, nil
}

func (r *StockRepository) SaveCategory(ctx context.Context, category *domain.InventoryCategory) error {
	if _, err := r.categories.ReplaceOne(ctx, platformmongo.ByID(category.ID), category, platformmongo.Upsert()); err != nil {
		return fmt.Errorf("failed to save inventory category: %w", err)
	}
	return nil
}
