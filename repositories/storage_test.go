package repositories

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/db"
	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// StorageSuite exercises the contract both backends must honor identically.
// It runs against the in-memory backend unconditionally and against Postgres
// when TEST_DATABASE_URL points at a scratch database.
type StorageSuite struct {
	suite.Suite
	newStore func(t *testing.T) Storage
	store    Storage
}

func (s *StorageSuite) SetupTest() {
	s.store = s.newStore(s.T())
}

func (s *StorageSuite) mustCreateUser(username, email string) *entities.User {
	user, err := s.store.CreateUser(&entities.User{
		Username:     username,
		Email:        email,
		PasswordHash: "h1",
	})
	require.NoError(s.T(), err)
	require.NotNil(s.T(), user)
	return user
}

// ============= Users =============

func (s *StorageSuite) TestCreateUserAssignsIDAndTimestamp() {
	user := s.mustCreateUser("alice", "a@x.com")

	assert.NotZero(s.T(), user.ID)
	assert.False(s.T(), user.CreatedAt.IsZero())

	got, err := s.store.GetUser(user.ID)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), got)
	assert.Equal(s.T(), "alice", got.Username)
	assert.Equal(s.T(), "a@x.com", got.Email)
	assert.Equal(s.T(), "h1", got.PasswordHash)
	assert.Equal(s.T(), user.ID, got.ID)
}

func (s *StorageSuite) TestMissingUserIsNilNotError() {
	got, err := s.store.GetUser(999)
	require.NoError(s.T(), err)
	assert.Nil(s.T(), got)

	got, err = s.store.GetUserByUsername("nobody")
	require.NoError(s.T(), err)
	assert.Nil(s.T(), got)

	got, err = s.store.GetUserByEmail("nobody@x.com")
	require.NoError(s.T(), err)
	assert.Nil(s.T(), got)
}

func (s *StorageSuite) TestLookupByUsernameAndEmail() {
	created := s.mustCreateUser("bob", "b@x.com")

	byName, err := s.store.GetUserByUsername("bob")
	require.NoError(s.T(), err)
	require.NotNil(s.T(), byName)
	assert.Equal(s.T(), created.ID, byName.ID)

	byEmail, err := s.store.GetUserByEmail("b@x.com")
	require.NoError(s.T(), err)
	require.NotNil(s.T(), byEmail)
	assert.Equal(s.T(), created.ID, byEmail.ID)
}

func (s *StorageSuite) TestDuplicateUsernameConflicts() {
	s.mustCreateUser("carol", "c@x.com")

	_, err := s.store.CreateUser(&entities.User{
		Username:     "carol",
		Email:        "other@x.com",
		PasswordHash: "h2",
	})
	var conflict *ConflictError
	require.ErrorAs(s.T(), err, &conflict)
	assert.Equal(s.T(), "username", conflict.Field)
}

func (s *StorageSuite) TestDuplicateEmailConflicts() {
	s.mustCreateUser("dave", "d@x.com")

	_, err := s.store.CreateUser(&entities.User{
		Username:     "other",
		Email:        "d@x.com",
		PasswordHash: "h2",
	})
	var conflict *ConflictError
	require.ErrorAs(s.T(), err, &conflict)
	assert.Equal(s.T(), "email", conflict.Field)
}

// ============= Financial profiles =============

func (s *StorageSuite) TestProfileCreateAndGet() {
	user := s.mustCreateUser("erin", "e@x.com")

	created, err := s.store.CreateFinancialProfile(&entities.FinancialProfile{
		UserID:        user.ID,
		MonthlyIncome: 5000,
		FoodExpense:   400,
		RiskTolerance: "moderate",
	})
	require.NoError(s.T(), err)
	assert.NotZero(s.T(), created.ID)
	assert.False(s.T(), created.UpdatedAt.IsZero())

	got, err := s.store.GetFinancialProfile(user.ID)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), got)
	assert.Equal(s.T(), 5000.0, got.MonthlyIncome)
	assert.Equal(s.T(), "moderate", got.RiskTolerance)
}

func (s *StorageSuite) TestProfileMissingIsNil() {
	got, err := s.store.GetFinancialProfile(999)
	require.NoError(s.T(), err)
	assert.Nil(s.T(), got)

	updated, err := s.store.UpdateFinancialProfile(999, entities.FinancialProfileUpdate{})
	require.NoError(s.T(), err)
	assert.Nil(s.T(), updated)
}

func (s *StorageSuite) TestProfilePartialUpdate() {
	user := s.mustCreateUser("frank", "f@x.com")

	created, err := s.store.CreateFinancialProfile(&entities.FinancialProfile{
		UserID:         user.ID,
		MonthlyIncome:  5000,
		HousingExpense: 1500,
		RiskTolerance:  "low",
	})
	require.NoError(s.T(), err)
	before := created.UpdatedAt

	income := 6000.0
	updated, err := s.store.UpdateFinancialProfile(user.ID, entities.FinancialProfileUpdate{
		MonthlyIncome: &income,
	})
	require.NoError(s.T(), err)
	require.NotNil(s.T(), updated)

	assert.Equal(s.T(), 6000.0, updated.MonthlyIncome)
	assert.Equal(s.T(), 1500.0, updated.HousingExpense, "untouched field keeps its value")
	assert.Equal(s.T(), "low", updated.RiskTolerance)
	assert.False(s.T(), updated.UpdatedAt.Before(before), "update refreshes the timestamp")

	// Explicit zero overwrites, unlike a merge keyed on zero values.
	zero := 0.0
	updated, err = s.store.UpdateFinancialProfile(user.ID, entities.FinancialProfileUpdate{
		HousingExpense: &zero,
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 0.0, updated.HousingExpense)
	assert.Equal(s.T(), 6000.0, updated.MonthlyIncome)
}

// ============= Chat messages =============

func (s *StorageSuite) TestChatMessageOrderingAndTies() {
	user := s.mustCreateUser("gina", "g@x.com")
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	// Created out of chronological order; two share a timestamp.
	for _, m := range []entities.ChatMessage{
		{UserID: user.ID, Message: "third", IsUserMessage: true, Timestamp: ts(base.Add(2 * time.Minute))},
		{UserID: user.ID, Message: "first", IsUserMessage: true, Timestamp: ts(base)},
		{UserID: user.ID, Message: "tie-a", IsUserMessage: false, Timestamp: ts(base.Add(time.Minute))},
		{UserID: user.ID, Message: "tie-b", IsUserMessage: true, Timestamp: ts(base.Add(time.Minute))},
	} {
		msg := m
		_, err := s.store.CreateChatMessage(&msg)
		require.NoError(s.T(), err)
	}

	messages, err := s.store.GetChatMessages(user.ID, 0)
	require.NoError(s.T(), err)
	require.Len(s.T(), messages, 4)

	got := make([]string, len(messages))
	for i, m := range messages {
		got[i] = m.Message
	}
	assert.Equal(s.T(), []string{"first", "tie-a", "tie-b", "third"}, got)
}

func (s *StorageSuite) TestChatMessageLimitKeepsSuffix() {
	user := s.mustCreateUser("hank", "h@x.com")
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		_, err := s.store.CreateChatMessage(&entities.ChatMessage{
			UserID:    user.ID,
			Message:   string(rune('a' + i)),
			Timestamp: ts(base.Add(time.Duration(i) * time.Minute)),
		})
		require.NoError(s.T(), err)
	}

	all, err := s.store.GetChatMessages(user.ID, 0)
	require.NoError(s.T(), err)
	require.Len(s.T(), all, 5)

	limited, err := s.store.GetChatMessages(user.ID, 2)
	require.NoError(s.T(), err)
	require.Len(s.T(), limited, 2)
	assert.Equal(s.T(), all[3].Message, limited[0].Message, "limit keeps the most recent suffix, still ascending")
	assert.Equal(s.T(), all[4].Message, limited[1].Message)

	oversized, err := s.store.GetChatMessages(user.ID, 50)
	require.NoError(s.T(), err)
	assert.Len(s.T(), oversized, 5)
}

func (s *StorageSuite) TestChatMessagesScopedToUser() {
	alice := s.mustCreateUser("alice2", "a2@x.com")
	bob := s.mustCreateUser("bob2", "b2@x.com")

	_, err := s.store.CreateChatMessage(&entities.ChatMessage{UserID: alice.ID, Message: "mine", IsUserMessage: true})
	require.NoError(s.T(), err)
	_, err = s.store.CreateChatMessage(&entities.ChatMessage{UserID: bob.ID, Message: "his", IsUserMessage: true})
	require.NoError(s.T(), err)

	messages, err := s.store.GetChatMessages(alice.ID, 0)
	require.NoError(s.T(), err)
	require.Len(s.T(), messages, 1)
	assert.Equal(s.T(), "mine", messages[0].Message)
}

// ============= Financial goals =============

func (s *StorageSuite) TestGoalLifecycle() {
	user := s.mustCreateUser("ivy", "i@x.com")

	goal, err := s.store.CreateFinancialGoal(&entities.FinancialGoal{
		UserID:       user.ID,
		Title:        "Emergency Fund",
		TargetAmount: 1000,
		Category:     "savings",
	})
	require.NoError(s.T(), err)
	assert.NotZero(s.T(), goal.ID)
	require.NotNil(s.T(), goal.CreatedAt)

	// Idempotent read.
	first, err := s.store.GetFinancialGoal(goal.ID)
	require.NoError(s.T(), err)
	second, err := s.store.GetFinancialGoal(goal.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), first, second)

	// Partial merge touches only the given field.
	current := 500.0
	updated, err := s.store.UpdateFinancialGoal(goal.ID, entities.FinancialGoalUpdate{
		CurrentAmount: &current,
	})
	require.NoError(s.T(), err)
	require.NotNil(s.T(), updated)
	assert.Equal(s.T(), 500.0, updated.CurrentAmount)
	assert.Equal(s.T(), 1000.0, updated.TargetAmount)
	assert.Equal(s.T(), "Emergency Fund", updated.Title)
	assert.Equal(s.T(), "savings", updated.Category)

	// Delete is true exactly once, then false, and lookups see absence.
	deleted, err := s.store.DeleteFinancialGoal(goal.ID)
	require.NoError(s.T(), err)
	assert.True(s.T(), deleted)

	deleted, err = s.store.DeleteFinancialGoal(goal.ID)
	require.NoError(s.T(), err)
	assert.False(s.T(), deleted)

	got, err := s.store.GetFinancialGoal(goal.ID)
	require.NoError(s.T(), err)
	assert.Nil(s.T(), got)
}

func (s *StorageSuite) TestGoalPartialMergeTitleOnly() {
	user := s.mustCreateUser("jack", "j@x.com")

	deadline := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	goal, err := s.store.CreateFinancialGoal(&entities.FinancialGoal{
		UserID:        user.ID,
		Title:         "Car",
		TargetAmount:  20000,
		CurrentAmount: 3000,
		Deadline:      &deadline,
		Category:      "purchase",
	})
	require.NoError(s.T(), err)

	title := "X"
	updated, err := s.store.UpdateFinancialGoal(goal.ID, entities.FinancialGoalUpdate{Title: &title})
	require.NoError(s.T(), err)
	require.NotNil(s.T(), updated)

	assert.Equal(s.T(), "X", updated.Title)
	assert.Equal(s.T(), 20000.0, updated.TargetAmount)
	assert.Equal(s.T(), 3000.0, updated.CurrentAmount)
	assert.Equal(s.T(), "purchase", updated.Category)
	require.NotNil(s.T(), updated.Deadline)
	assert.True(s.T(), updated.Deadline.Equal(deadline))
}

func (s *StorageSuite) TestUpdateMissingGoalIsNil() {
	title := "X"
	updated, err := s.store.UpdateFinancialGoal(999, entities.FinancialGoalUpdate{Title: &title})
	require.NoError(s.T(), err)
	assert.Nil(s.T(), updated)
}

func (s *StorageSuite) TestGoalsOrderedByCreation() {
	user := s.mustCreateUser("kate", "k@x.com")
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	for _, g := range []entities.FinancialGoal{
		{UserID: user.ID, Title: "second", CreatedAt: ts(base.Add(time.Hour))},
		{UserID: user.ID, Title: "first", CreatedAt: ts(base)},
	} {
		goal := g
		_, err := s.store.CreateFinancialGoal(&goal)
		require.NoError(s.T(), err)
	}

	goals, err := s.store.GetFinancialGoals(user.ID)
	require.NoError(s.T(), err)
	require.Len(s.T(), goals, 2)
	assert.Equal(s.T(), "first", goals[0].Title)
	assert.Equal(s.T(), "second", goals[1].Title)
}

func (s *StorageSuite) TestGoalIDsNeverReused() {
	user := s.mustCreateUser("liam", "l@x.com")

	first, err := s.store.CreateFinancialGoal(&entities.FinancialGoal{UserID: user.ID, Title: "one"})
	require.NoError(s.T(), err)

	_, err = s.store.DeleteFinancialGoal(first.ID)
	require.NoError(s.T(), err)

	second, err := s.store.CreateFinancialGoal(&entities.FinancialGoal{UserID: user.ID, Title: "two"})
	require.NoError(s.T(), err)
	assert.Greater(s.T(), second.ID, first.ID)
}

// ============= Suite runners =============

func TestMemStorageSuite(t *testing.T) {
	suite.Run(t, &StorageSuite{
		newStore: func(t *testing.T) Storage { return NewMemStorage() },
	})
}

func TestPgStorageSuite(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping Postgres contract suite")
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&entities.User{},
		&entities.FinancialProfile{},
		&entities.ChatMessage{},
		&entities.FinancialGoal{},
	))

	suite.Run(t, &StorageSuite{
		newStore: func(t *testing.T) Storage {
			err := gdb.Exec(
				"TRUNCATE users, financial_profiles, chat_messages, financial_goals RESTART IDENTITY CASCADE",
			).Error
			require.NoError(t, err)
			return NewPgStorage(&db.GormDatabase{DB: gdb})
		},
	})
}

// memStorage-specific behavior not reachable through the contract alone.

func TestMemStorageReturnsCopies(t *testing.T) {
	store := NewMemStorage()

	user, err := store.CreateUser(&entities.User{Username: "mia", Email: "m@x.com", PasswordHash: "h"})
	require.NoError(t, err)

	user.Username = "changed"

	got, err := store.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "mia", got.Username, "mutating a returned record must not touch the store")
}

func TestMemStorageConcurrentCreates(t *testing.T) {
	store := NewMemStorage()
	user, err := store.CreateUser(&entities.User{Username: "nan", Email: "n@x.com", PasswordHash: "h"})
	require.NoError(t, err)

	done := make(chan error, 20)
	for i := 0; i < 20; i++ {
		go func() {
			_, err := store.CreateChatMessage(&entities.ChatMessage{UserID: user.ID, Message: "hi", IsUserMessage: true})
			done <- err
		}()
	}
	for i := 0; i < 20; i++ {
		require.NoError(t, <-done)
	}

	messages, err := store.GetChatMessages(user.ID, 0)
	require.NoError(t, err)
	assert.Len(t, messages, 20)

	seen := make(map[uint]bool)
	for _, m := range messages {
		assert.False(t, seen[m.ID], "ids must be unique under concurrent creates")
		seen[m.ID] = true
	}
}

func TestConflictErrorMessage(t *testing.T) {
	err := error(&ConflictError{Field: "username", Value: "alice"})
	assert.Equal(t, `username "alice" is already taken`, err.Error())

	var conflict *ConflictError
	assert.True(t, errors.As(err, &conflict))
}
