package repositories

import (
	"sort"
	"sync"
	"time"

	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/entities"
)

// memStorage is the in-memory backend: one map and one monotonic id counter
// per entity type, all guarded by a single RWMutex. Ids start at 1 and are
// never reused, even after deletion. It is used for tests and as a fallback
// when no database is configured, and it never returns a backend error.
type memStorage struct {
	mu sync.RWMutex

	users    map[uint]*entities.User
	profiles map[uint]*entities.FinancialProfile
	messages map[uint]*entities.ChatMessage
	goals    map[uint]*entities.FinancialGoal

	userID    uint
	profileID uint
	messageID uint
	goalID    uint
}

// NewMemStorage returns an empty in-memory Storage.
func NewMemStorage() Storage {
	return &memStorage{
		users:    make(map[uint]*entities.User),
		profiles: make(map[uint]*entities.FinancialProfile),
		messages: make(map[uint]*entities.ChatMessage),
		goals:    make(map[uint]*entities.FinancialGoal),
	}
}

// sortedKeys returns map keys ascending. Ids are assigned monotonically, so
// ascending id order is insertion order; scans below rely on that for the
// "first match" and tie-break rules.
func sortedKeys[T any](m map[uint]*T) []uint {
	keys := make([]uint, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// ============= Users =============

func (s *memStorage) GetUser(id uint) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (s *memStorage) GetUserByUsername(username string) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range sortedKeys(s.users) {
		if s.users[id].Username == username {
			copied := *s.users[id]
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *memStorage) GetUserByEmail(email string) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range sortedKeys(s.users) {
		if s.users[id].Email == email {
			copied := *s.users[id]
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *memStorage) CreateUser(user *entities.User) (*entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Username == user.Username {
			return nil, &ConflictError{Field: "username", Value: user.Username}
		}
		if existing.Email == user.Email {
			return nil, &ConflictError{Field: "email", Value: user.Email}
		}
	}
	s.userID++
	stored := *user
	stored.ID = s.userID
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	s.users[stored.ID] = &stored
	copied := stored
	return &copied, nil
}

// ============= Financial profiles =============

func (s *memStorage) GetFinancialProfile(userID uint) (*entities.FinancialProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range sortedKeys(s.profiles) {
		if s.profiles[id].UserID == userID {
			copied := *s.profiles[id]
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *memStorage) CreateFinancialProfile(profile *entities.FinancialProfile) (*entities.FinancialProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profileID++
	stored := *profile
	stored.ID = s.profileID
	stored.UpdatedAt = time.Now().UTC()
	s.profiles[stored.ID] = &stored
	copied := stored
	return &copied, nil
}

func (s *memStorage) UpdateFinancialProfile(userID uint, update entities.FinancialProfileUpdate) (*entities.FinancialProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range sortedKeys(s.profiles) {
		if s.profiles[id].UserID == userID {
			update.Apply(s.profiles[id])
			copied := *s.profiles[id]
			return &copied, nil
		}
	}
	return nil, nil
}

// ============= Chat messages =============

func (s *memStorage) GetChatMessages(userID uint, limit int) ([]entities.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var messages []entities.ChatMessage
	for _, id := range sortedKeys(s.messages) {
		if s.messages[id].UserID == userID {
			messages = append(messages, *s.messages[id])
		}
	}
	sortChatMessages(messages)
	return tailMessages(messages, limit), nil
}

func (s *memStorage) CreateChatMessage(message *entities.ChatMessage) (*entities.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messageID++
	stored := *message
	stored.ID = s.messageID
	if stored.Timestamp == nil {
		now := time.Now().UTC()
		stored.Timestamp = &now
	}
	s.messages[stored.ID] = &stored
	copied := stored
	return &copied, nil
}

// ============= Financial goals =============

func (s *memStorage) GetFinancialGoals(userID uint) ([]entities.FinancialGoal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var goals []entities.FinancialGoal
	for _, id := range sortedKeys(s.goals) {
		if s.goals[id].UserID == userID {
			goals = append(goals, *s.goals[id])
		}
	}
	sortFinancialGoals(goals)
	return goals, nil
}

func (s *memStorage) GetFinancialGoal(id uint) (*entities.FinancialGoal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	goal, ok := s.goals[id]
	if !ok {
		return nil, nil
	}
	copied := *goal
	return &copied, nil
}

func (s *memStorage) CreateFinancialGoal(goal *entities.FinancialGoal) (*entities.FinancialGoal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goalID++
	stored := *goal
	stored.ID = s.goalID
	if stored.CreatedAt == nil {
		now := time.Now().UTC()
		stored.CreatedAt = &now
	}
	s.goals[stored.ID] = &stored
	copied := stored
	return &copied, nil
}

func (s *memStorage) UpdateFinancialGoal(id uint, update entities.FinancialGoalUpdate) (*entities.FinancialGoal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	goal, ok := s.goals[id]
	if !ok {
		return nil, nil
	}
	update.Apply(goal)
	copied := *goal
	return &copied, nil
}

func (s *memStorage) DeleteFinancialGoal(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.goals[id]; !ok {
		return false, nil
	}
	delete(s.goals, id)
	return true, nil
}
