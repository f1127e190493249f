package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/household-platform/household-service/internal/domain"
)

func TestUserServiceLifecycle(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo, testLogger())

	user, err := svc.CreateUser(context.Background(), CreateUserCommand{
		Name:  "Amina",
		Email: "amina@example.com",
		Role:  "editor",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleEditor, user.Role)

	user, err = svc.UpdateUserRole(context.Background(), user.ID, UpdateUserRoleCommand{Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)

	require.NoError(t, svc.DeleteUser(context.Background(), user.ID))
	_, err = svc.GetUser(context.Background(), user.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestSavingsServiceAddFunds(t *testing.T) {
	repo := &fakeSavingsRepo{goals: []*domain.SavingsGoal{
		{ID: "g1", Name: "Vacation", TargetAmount: 2000, CurrentAmount: 300, Deadline: "2025-12-31"},
	}}
	svc := NewSavingsService(repo, testLogger())

	goal, err := svc.AddFunds(context.Background(), "g1", AddFundsCommand{Amount: 150})
	require.NoError(t, err)
	assert.InDelta(t, 450, goal.CurrentAmount, 1e-9)

	_, err = svc.AddFunds(context.Background(), "g1", AddFundsCommand{Amount: -5})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = svc.AddFunds(context.Background(), "nope", AddFundsCommand{Amount: 10})
	assert.ErrorIs(t, err, domain.ErrGoalNotFound)
}

func TestAnnouncementServicePost(t *testing.T) {
	users := &fakeUserRepo{users: []*domain.User{
		{ID: "u1", Name: "Amina", Role: domain.RoleAdmin},
	}}
	board := &fakeAnnouncementRepo{}
	svc := NewAnnouncementService(board, users, nil, testLogger())

	announcement, err := svc.PostAnnouncement(context.Background(), PostAnnouncementCommand{
		AuthorID: "u1",
		Content:  "Water shutoff on Saturday morning",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, announcement.ID)
	assert.False(t, announcement.Timestamp.IsZero())

	_, err = svc.PostAnnouncement(context.Background(), PostAnnouncementCommand{
		AuthorID: "u-ghost",
		Content:  "hello",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
