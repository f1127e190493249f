package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/household-platform/household-service/internal/domain"
	"github.com/household-platform/household-service/internal/platform/logging"
)

// UserService handles household membership.
type UserService struct {
	users  domain.UserRepository
	logger *logging.Logger
}

// NewUserService creates a UserService
func NewUserService(users domain.UserRepository, logger *logging.Logger) *UserService {
	return &UserService{
		users:  users,
		logger: logger.WithComponent("user-service"),
	}
}

// ListUsers returns every household member sorted by name.
func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.FindAll(ctx)
}

// GetUser returns one member by id.
func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// CreateUser adds a household member.
func (s *UserService) CreateUser(ctx context.Context, cmd CreateUserCommand) (*domain.User, error) {
	user := &domain.User{
		ID:        uuid.New().String(),
		Name:      cmd.Name,
		Email:     cmd.Email,
		Role:      domain.Role(cmd.Role),
		AvatarURL: cmd.AvatarURL,
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.WithContext(ctx).Info("User created",
		"userId", user.ID,
		"name", user.Name,
		"role", user.Role,
	)
	return user, nil
}

// UpdateUserRole changes a member's role.
func (s *UserService) UpdateUserRole(ctx context.Context, id string, cmd UpdateUserRoleCommand) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Role = domain.Role(cmd.Role)
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.WithContext(ctx).Info("User role updated", "userId", user.ID, "role", user.Role)
	return user, nil
}

// DeleteUser removes a household member.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.WithContext(ctx).Info("User deleted", "userId", id)
	return nil
}
