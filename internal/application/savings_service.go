package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/household-platform/household-service/internal/domain"
	"github.com/household-platform/household-service/internal/platform/logging"
)

// SavingsService handles savings goals and contributions.
type SavingsService struct {
	savings domain.SavingsRepository
	logger  *logging.Logger
}

// NewSavingsService creates a SavingsService
func NewSavingsService(savings domain.SavingsRepository, logger *logging.Logger) *SavingsService {
	return &SavingsService{
		savings: savings,
		logger:  logger.WithComponent("savings-service"),
	}
}

// ListGoals returns every savings goal sorted by deadline.
func (s *SavingsService) ListGoals(ctx context.Context) ([]*domain.SavingsGoal, error) {
	return s.savings.FindAll(ctx)
}

// CreateGoal adds a new savings goal starting at zero.
func (s *SavingsService) CreateGoal(ctx context.Context, cmd CreateSavingsGoalCommand) (*domain.SavingsGoal, error) {
	goal := &domain.SavingsGoal{
		ID:           uuid.New().String(),
		Name:         cmd.Name,
		TargetAmount: cmd.TargetAmount,
		Deadline:     cmd.Deadline,
	}
	if err := s.savings.Save(ctx, goal); err != nil {
		return nil, err
	}

	s.logger.WithContext(ctx).Info("Savings goal created",
		"goalId", goal.ID,
		"name", goal.Name,
		"targetAmount", goal.TargetAmount,
	)
	return goal, nil
}

// AddFunds moves money into a goal.
func (s *SavingsService) AddFunds(ctx context.Context, id string, cmd AddFundsCommand) (*domain.SavingsGoal, error) {
	goal, err := s.savings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := goal.AddFunds(cmd.Amount); err != nil {
		return nil, err
	}
	if err := s.savings.Save(ctx, goal); err != nil {
		return nil, err
	}

	s.logger.WithContext(ctx).Info("Funds added to savings goal",
		"goalId", goal.ID,
		"amount", cmd.Amount,
		"currentAmount", goal.CurrentAmount,
	)
	return goal, nil
}
