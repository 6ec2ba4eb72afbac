package repositories

import (
	"errors"

	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/entities"
	"gorm.io/gorm"
)

func (r *pgStorage) GetFinancialProfile(userID uint) (*entities.FinancialProfile, error) {
	var profile entities.FinancialProfile
	err := r.db.GetDB().Where("user_id = ?", userID).Order("id").First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fail("GetFinancialProfile", err)
	}
	return &profile, nil
}

func (r *pgStorage) CreateFinancialProfile(profile *entities.FinancialProfile) (*entities.FinancialProfile, error) {
	if err := r.db.GetDB().Create(profile).Error; err != nil {
		return nil, fail("CreateFinancialProfile", err)
	}
	return profile, nil
}

// UpdateFinancialProfile reads the profile, merges in application code and
// saves it back. The two round trips are not wrapped in a transaction; a
// concurrent update between them is last-writer-wins.
func (r *pgStorage) UpdateFinancialProfile(userID uint, update entities.FinancialProfileUpdate) (*entities.FinancialProfile, error) {
	profile, err := r.GetFinancialProfile(userID)
	if err != nil || profile == nil {
		return nil, err
	}
	update.Apply(profile)
	if err := r.db.GetDB().Save(profile).Error; err != nil {
		return nil, fail("UpdateFinancialProfile", err)
	}
	return profile, nil
}
