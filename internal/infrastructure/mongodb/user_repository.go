package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/household-platform/household-service/internal/domain"
	platformmongo "github.com/household-platform/household-service/internal/platform/mongodb"
)

// UserRepository persists household members.
type UserRepository struct {
	users *platformmongo.Collection
}

// NewUserRepository creates a UserRepository
func NewUserRepository(client *platformmongo.CircuitBreakerClient) *UserRepository {
	return &UserRepository{users: client.Collection("users")}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := r.users.FindOne(ctx, platformmongo.ByID(id), &user); err != nil {
		if platformmongo.IsNotFound(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	var users []*domain.User
	opts := options.Find().SetSort(platformmongo.SortAscending("name"))
	if err := r.users.Find(ctx, bson.M{}, &users, opts); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	if _, err := r.users.ReplaceOne(ctx, platformmongo.ByID(user.ID), user, platformmongo.Upsert()); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	result, err := r.users.DeleteOne(ctx, platformmongo.ByID(id))
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
