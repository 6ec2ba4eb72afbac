package repositories

import (
	"errors"

	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/entities"
	"gorm.io/gorm"
)

// GetFinancialGoals sorts by creation timestamp in application code, same
// NULL-earliest rule as chat messages.
func (r *pgStorage) GetFinancialGoals(userID uint) ([]entities.FinancialGoal, error) {
	var goals []entities.FinancialGoal
	err := r.db.GetDB().Where("user_id = ?", userID).Order("id").Find(&goals).Error
	if err != nil {
		return nil, fail("GetFinancialGoals", err)
	}
	sortFinancialGoals(goals)
	return goals, nil
}

func (r *pgStorage) GetFinancialGoal(id uint) (*entities.FinancialGoal, error) {
	var goal entities.FinancialGoal
	err := r.db.GetDB().Where("id = ?", id).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fail("GetFinancialGoal", err)
	}
	return &goal, nil
}

func (r *pgStorage) CreateFinancialGoal(goal *entities.FinancialGoal) (*entities.FinancialGoal, error) {
	if err := r.db.GetDB().Create(goal).Error; err != nil {
		return nil, fail("CreateFinancialGoal", err)
	}
	return goal, nil
}

// UpdateFinancialGoal is read-merge-save, same non-transactional shape as
// UpdateFinancialProfile.
func (r *pgStorage) UpdateFinancialGoal(id uint, update entities.FinancialGoalUpdate) (*entities.FinancialGoal, error) {
	goal, err := r.GetFinancialGoal(id)
	if err != nil || goal == nil {
		return nil, err
	}
	update.Apply(goal)
	if err := r.db.GetDB().Save(goal).Error; err != nil {
		return nil, fail("UpdateFinancialGoal", err)
	}
	return goal, nil
}

func (r *pgStorage) DeleteFinancialGoal(id uint) (bool, error) {
	res := r.db.GetDB().Where("id = ?", id).Delete(&entities.FinancialGoal{})
	if res.Error != nil {
		return false, fail("DeleteFinancialGoal", res.Error)
	}
	return res.RowsAffected > 0, nil
}
