package usecases

import (
	"testing"

	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/entities"
	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFinanceFixture(t *testing.T) (*FinanceUseCase, uint) {
	t.Helper()
	store := repositories.NewMemStorage()
	user, err := store.CreateUser(&entities.User{Username: "alice", Email: "a@x.com", PasswordHash: "h"})
	require.NoError(t, err)
	return NewFinanceUseCase(store), user.ID
}

func TestCreateProfileRequiresExistingUser(t *testing.T) {
	uc, userID := newFinanceFixture(t)

	_, err := uc.CreateProfile(&entities.FinancialProfile{UserID: 999, MonthlyIncome: 100})
	assert.EqualError(t, err, "user not found")

	profile, err := uc.CreateProfile(&entities.FinancialProfile{UserID: userID, MonthlyIncome: 4200})
	require.NoError(t, err)
	assert.NotZero(t, profile.ID)
}

func TestCreateProfileRejectsNegativeIncome(t *testing.T) {
	uc, userID := newFinanceFixture(t)

	_, err := uc.CreateProfile(&entities.FinancialProfile{UserID: userID, MonthlyIncome: -1})
	assert.Error(t, err)
}

func TestUpdateProfileMissingIsNil(t *testing.T) {
	uc, userID := newFinanceFixture(t)

	profile, err := uc.UpdateProfile(userID, entities.FinancialProfileUpdate{})
	require.NoError(t, err)
	assert.Nil(t, profile, "no profile created yet")
}

func TestGoalValidation(t *testing.T) {
	uc, userID := newFinanceFixture(t)

	_, err := uc.CreateGoal(&entities.FinancialGoal{UserID: userID})
	assert.EqualError(t, err, "goal title is required")

	_, err = uc.CreateGoal(&entities.FinancialGoal{UserID: userID, Title: "Fund", TargetAmount: -5})
	assert.Error(t, err)

	_, err = uc.CreateGoal(&entities.FinancialGoal{UserID: 999, Title: "Fund"})
	assert.EqualError(t, err, "user not found")

	negative := -1.0
	_, err = uc.UpdateGoal(1, entities.FinancialGoalUpdate{CurrentAmount: &negative})
	assert.Error(t, err)
}

func TestGoalRoundTrip(t *testing.T) {
	uc, userID := newFinanceFixture(t)

	goal, err := uc.CreateGoal(&entities.FinancialGoal{
		UserID:       userID,
		Title:        "Emergency Fund",
		TargetAmount: 1000,
		Category:     "savings",
	})
	require.NoError(t, err)

	current := 500.0
	updated, err := uc.UpdateGoal(goal.ID, entities.FinancialGoalUpdate{CurrentAmount: &current})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 500.0, updated.CurrentAmount)
	assert.Equal(t, 1000.0, updated.TargetAmount)

	deleted, err := uc.DeleteGoal(goal.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err := uc.GetGoal(goal.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
