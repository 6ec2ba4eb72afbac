package usecases

import (
	"errors"

	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/entities"
	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/repositories"
)

// FinanceUseCase covers financial profiles and goals.
type FinanceUseCase struct {
	store repositories.Storage
}

func NewFinanceUseCase(store repositories.Storage) *FinanceUseCase {
	return &FinanceUseCase{store: store}
}

// ============= Financial profiles =============

func (uc *FinanceUseCase) GetProfile(userID uint) (*entities.FinancialProfile, error) {
	if userID == 0 {
		return nil, errors.New("user id is required")
	}
	return uc.store.GetFinancialProfile(userID)
}

// CreateProfile verifies the owning user exists, then creates the profile.
// Creation is unconditional beyond that: a user who already has a profile
// simply gets a second one, and lookups return the first.
func (uc *FinanceUseCase) CreateProfile(profile *entities.FinancialProfile) (*entities.FinancialProfile, error) {
	if profile.UserID == 0 {
		return nil, errors.New("user id is required")
	}
	if profile.MonthlyIncome < 0 {
		return nil, errors.New("monthly income cannot be negative")
	}

	user, err := uc.store.GetUser(profile.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	return uc.store.CreateFinancialProfile(profile)
}

// UpdateProfile merges the partial update; nil means no profile exists.
func (uc *FinanceUseCase) UpdateProfile(userID uint, update entities.FinancialProfileUpdate) (*entities.FinancialProfile, error) {
	if userID == 0 {
		return nil, errors.New("user id is required")
	}
	if update.MonthlyIncome != nil && *update.MonthlyIncome < 0 {
		return nil, errors.New("monthly income cannot be negative")
	}
	return uc.store.UpdateFinancialProfile(userID, update)
}

// ============= Financial goals =============

func (uc *FinanceUseCase) GetGoals(userID uint) ([]entities.FinancialGoal, error) {
	if userID == 0 {
		return nil, errors.New("user id is required")
	}
	return uc.store.GetFinancialGoals(userID)
}

func (uc *FinanceUseCase) GetGoal(id uint) (*entities.FinancialGoal, error) {
	if id == 0 {
		return nil, errors.New("goal id is required")
	}
	return uc.store.GetFinancialGoal(id)
}

func (uc *FinanceUseCase) CreateGoal(goal *entities.FinancialGoal) (*entities.FinancialGoal, error) {
	if goal.UserID == 0 {
		return nil, errors.New("user id is required")
	}
	if goal.Title == "" {
		return nil, errors.New("goal title is required")
	}
	if goal.TargetAmount < 0 || goal.CurrentAmount < 0 {
		return nil, errors.New("goal amounts cannot be negative")
	}

	user, err := uc.store.GetUser(goal.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	return uc.store.CreateFinancialGoal(goal)
}

func (uc *FinanceUseCase) UpdateGoal(id uint, update entities.FinancialGoalUpdate) (*entities.FinancialGoal, error) {
	if id == 0 {
		return nil, errors.New("goal id is required")
	}
	if update.TargetAmount != nil && *update.TargetAmount < 0 {
		return nil, errors.New("goal amounts cannot be negative")
	}
	if update.CurrentAmount != nil && *update.CurrentAmount < 0 {
		return nil, errors.New("goal amounts cannot be negative")
	}
	return uc.store.UpdateFinancialGoal(id, update)
}

func (uc *FinanceUseCase) DeleteGoal(id uint) (bool, error) {
	if id == 0 {
		return false, errors.New("goal id is required")
	}
	return uc.store.DeleteFinancialGoal(id)
}
