package ws

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type session struct {
	userID uint
	conn   *websocket.Conn
}

// Manager keeps track of active chat websocket sessions. A user may hold
// several sessions at once (multiple tabs); each gets its own session id.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*session // sessionID -> session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*session)}
}

// Register adds a session for the user and returns its id.
func (m *Manager) Register(userID uint, conn *websocket.Conn) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.New().String()
	m.sessions[id] = &session{userID: userID, conn: conn}
	return id
}

// Unregister removes a session and closes its connection.
func (m *Manager) Unregister(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[sessionID]; ok {
		_ = s.conn.Close()
		delete(m.sessions, sessionID)
	}
}

// SendToUser sends a text message to every open session of a user.
func (m *Manager) SendToUser(userID uint, payload []byte) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sent := false
	for _, s := range m.sessions {
		if s.userID != userID {
			continue
		}
		if err := s.conn.WriteMessage(websocket.TextMessage, payload); err == nil {
			sent = true
		}
	}
	if !sent {
		return errors.New("user not connected")
	}
	return nil
}

// IsConnected reports whether a user has at least one open session.
func (m *Manager) IsConnected(userID uint) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.sessions {
		if s.userID == userID {
			return true
		}
	}
	return false
}

// ConnectedUsers returns the ids of users with at least one open session.
func (m *Manager) ConnectedUsers() []uint {
	m.mu.RLock()
	defer m.mu.RUnlock()
	seen := make(map[uint]bool)
	var ids []uint
	for _, s := range m.sessions {
		if !seen[s.userID] {
			seen[s.userID] = true
			ids = append(ids, s.userID)
		}
	}
	return ids
}
