package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/household-platform/household-service/internal/domain"
	"github.com/household-platform/household-service/internal/platform/kafka"
	"github.com/household-platform/household-service/internal/platform/logging"
)

// AnnouncementService handles the household announcement board.
type AnnouncementService struct {
	announcements domain.AnnouncementRepository
	users         domain.UserRepository
	producer      *kafka.Producer
	logger        *logging.Logger
}

// NewAnnouncementService creates an AnnouncementService
func NewAnnouncementService(
	announcements domain.AnnouncementRepository,
	users domain.UserRepository,
	producer *kafka.Producer,
	logger *logging.Logger,
) *AnnouncementService {
	return &AnnouncementService{
		announcements: announcements,
		users:         users,
		producer:      producer,
		logger:        logger.WithComponent("announcement-service"),
	}
}

// ListAnnouncements returns board posts, newest first.
func (s *AnnouncementService) ListAnnouncements(ctx context.Context) ([]*domain.Announcement, error) {
	return s.announcements.FindAll(ctx)
}

// PostAnnouncement adds a post to the board. The author must be a known
// household member.
func (s *AnnouncementService) PostAnnouncement(ctx context.Context, cmd PostAnnouncementCommand) (*domain.Announcement, error) {
	if _, err := s.users.FindByID(ctx, cmd.AuthorID); err != nil {
		return nil, err
	}

	announcement := &domain.Announcement{
		ID:        uuid.New().String(),
		AuthorID:  cmd.AuthorID,
		Content:   cmd.Content,
		MediaURL:  cmd.MediaURL,
		MediaType: cmd.MediaType,
		Timestamp: time.Now().UTC(),
	}
	if err := s.announcements.Save(ctx, announcement); err != nil {
		return nil, err
	}

	s.logger.WithContext(ctx).Info("Announcement posted",
		"announcementId", announcement.ID,
		"authorId", announcement.AuthorID,
	)

	if s.producer != nil {
		event := &domain.AnnouncementPostedEvent{
			AnnouncementID: announcement.ID,
			AuthorID:       announcement.AuthorID,
			PostedAt:       announcement.Timestamp,
		}
		envelope := kafka.NewEnvelope(event.EventType(), eventSource, announcement.ID, event)
		if err := s.producer.Publish(ctx, kafka.Topics.AnnouncementEvents, envelope); err != nil {
			s.logger.WithContext(ctx).WithError(err).Warn("Failed to publish announcement event")
		}
	}
	return announcement, nil
}
