package repositories

import (
	"errors"

	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/entities"
	"gorm.io/gorm"
)

func (r *pgStorage) GetUser(id uint) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fail("GetUser", err)
	}
	return &user, nil
}

func (r *pgStorage) GetUserByUsername(username string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fail("GetUserByUsername", err)
	}
	return &user, nil
}

func (r *pgStorage) GetUserByEmail(email string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fail("GetUserByEmail", err)
	}
	return &user, nil
}

func (r *pgStorage) CreateUser(user *entities.User) (*entities.User, error) {
	err := r.db.GetDB().Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, r.userConflict(user)
	}
	if err != nil {
		return nil, fail("CreateUser", err)
	}
	return user, nil
}

// userConflict decides which unique column the database rejected. The driver
// reports the constraint name inconsistently across Postgres versions, so a
// follow-up lookup by username settles it.
func (r *pgStorage) userConflict(user *entities.User) error {
	var existing entities.User
	err := r.db.GetDB().Where("username = ?", user.Username).First(&existing).Error
	if err == nil {
		return &ConflictError{Field: "username", Value: user.Username}
	}
	return &ConflictError{Field: "email", Value: user.Email}
}
