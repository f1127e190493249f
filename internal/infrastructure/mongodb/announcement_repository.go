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

// AnnouncementRepository persists household board posts.
type AnnouncementRepository struct {
	announcements *platformmongo.Collection
}

// NewAnnouncementRepository creates an AnnouncementRepository
func NewAnnouncementRepository(client *platformmongo.CircuitBreakerClient) *AnnouncementRepository {
	repo := &AnnouncementRepository{announcements: client.Collection("announcements")}
	repo.ensureIndexes(context.Background())
	return repo
}

func (r *AnnouncementRepository) ensureIndexes(ctx context.Context) {
	_ = r.announcements.CreateIndexes(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
	})
}

// FindAll returns board posts newest first.
func (r *AnnouncementRepository) FindAll(ctx context.Context) ([]*domain.Announcement, error) {
	var announcements []*domain.Announcement
	opts := options.Find().SetSort(platformmongo.SortDescending("timestamp"))
	if err := r.announcements.Find(ctx, bson.M{}, &announcements, opts); err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	return announcements, nil
}

func (r *AnnouncementRepository) Save(ctx context.Context, a *domain.Announcement) error {
	if _, err := r.announcements.ReplaceOne(ctx, platformmongo.ByID(a.ID), a, platformmongo.Upsert()); err != nil {
		return fmt.Errorf("failed to save announcement: %w", err)
	}
	return nil
}
