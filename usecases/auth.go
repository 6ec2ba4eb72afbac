package usecases

import (
	"errors"

	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/entities"
	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/repositories"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for both a missing user and a wrong
// password so login responses don't leak which one it was.
var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthUseCase struct {
	store repositories.Storage
}

func NewAuthUseCase(store repositories.Storage) *AuthUseCase {
	return &AuthUseCase{store: store}
}

// Register creates a user with a bcrypt-hashed password. A taken username or
// email comes back as *repositories.ConflictError.
func (uc *AuthUseCase) Register(username, email, password string) (*entities.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, errors.New("username, email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return uc.store.CreateUser(&entities.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
}

// Login verifies the password and returns the user.
func (uc *AuthUseCase) Login(username, password string) (*entities.User, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := uc.store.GetUserByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetUser retrieves a user by id; nil means no such user.
func (uc *AuthUseCase) GetUser(id uint) (*entities.User, error) {
	if id == 0 {
		return nil, errors.New("user id is required")
	}
	return uc.store.GetUser(id)
}
