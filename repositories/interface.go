package repositories

import (
	"fmt"

	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/entities"
)

// Storage is the single contract both backends implement. Lookups report
// absence as a nil record with a nil error, never as an error value; callers
// can rely on that regardless of which backend is active.
//
// Uniqueness of username and email on CreateUser is a contract guarantee:
// both backends return *ConflictError for a duplicate, the in-memory one via
// a pre-check and the Postgres one via the database's unique constraints.
type Storage interface {
	// Users
	GetUser(id uint) (*entities.User, error)
	GetUserByUsername(username string) (*entities.User, error)
	GetUserByEmail(email string) (*entities.User, error)
	CreateUser(user *entities.User) (*entities.User, error)

	// Financial profiles
	GetFinancialProfile(userID uint) (*entities.FinancialProfile, error)
	CreateFinancialProfile(profile *entities.FinancialProfile) (*entities.FinancialProfile, error)
	UpdateFinancialProfile(userID uint, update entities.FinancialProfileUpdate) (*entities.FinancialProfile, error)

	// Chat messages. Listing is ordered by timestamp ascending with nil
	// timestamps first; a positive limit keeps only the most recent
	// messages while preserving ascending order.
	GetChatMessages(userID uint, limit int) ([]entities.ChatMessage, error)
	CreateChatMessage(message *entities.ChatMessage) (*entities.ChatMessage, error)

	// Financial goals
	GetFinancialGoals(userID uint) ([]entities.FinancialGoal, error)
	GetFinancialGoal(id uint) (*entities.FinancialGoal, error)
	CreateFinancialGoal(goal *entities.FinancialGoal) (*entities.FinancialGoal, error)
	UpdateFinancialGoal(id uint, update entities.FinancialGoalUpdate) (*entities.FinancialGoal, error)
	// DeleteFinancialGoal reports true if a goal existed and was removed,
	// false (with nil error) if no such goal exists.
	DeleteFinancialGoal(id uint) (bool, error)
}

// ConflictError reports a uniqueness violation on create.
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q is already taken", e.Field, e.Value)
}
