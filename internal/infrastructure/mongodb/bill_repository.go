package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/household-platform/household-service/internal/domain"
	platformmongo "github.com/household-platform/household-service/internal/platform/mongodb"
)

// BillRepository persists recurring bills with their embedded payment history.
type BillRepository struct {
	bills *platformmongo.Collection
}

// NewBillRepository creates a BillRepository
func NewBillRepository(client *platformmongo.CircuitBreakerClient) *BillRepository {
	return &BillRepository{bills: client.Collection("bills")}
}

func (r *BillRepository) FindByID(ctx context.Context, id string) (*domain.Bill, error) {
	var bill domain.Bill
	if err := r.bills.FindOne(ctx, platformmongo.ByID(id), &bill); err != nil {
		if platformmongo.IsNotFound(err) {
			return nil, domain.ErrBillNotFound
		}
		return nil, fmt.Errorf("failed to find bill: %w", err)
	}
	return &bill, nil
}

// FindAll returns bills ordered by day of month due.
func (r *BillRepository) FindAll(ctx context.Context) ([]*domain.Bill, error) {
	var bills []*domain.Bill
	opts := options.Find().SetSort(platformmongo.SortAscending("dueDate"))
	if err := r.bills.Find(ctx, bson.M{}, &bills, opts); err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	return bills, nil
}

func (r *BillRepository) Save(ctx context.Context, bill *domain.Bill) error {
	if _, err := r.bills.ReplaceOne(ctx, platformmongo.ByID(bill.ID), bill, platformmongo.Upsert()); err != nil {
		return fmt.Errorf("failed to save bill: %w", err)
	}
	return nil
}

func (r *BillRepository) Delete(ctx context.Context, id string) error {
	result, err := r.bills.DeleteOne(ctx, platformmongo.ByID(id))
	if err != nil {
		return fmt.Errorf("failed to delete bill: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrBillNotFound
	}
	return nil
}
