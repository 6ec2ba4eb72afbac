package entities

import (
	"time"

	"gorm.io/gorm"
)

// ChatMessage is one turn of a conversation. Messages are immutable once
// created. Timestamp is nullable so rows migrated from older exports sort
// as the earliest possible moment instead of breaking comparisons.
type ChatMessage struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        uint       `gorm:"column:user_id;index" json:"user_id"`
	Message       string     `gorm:"column:message;type:text" json:"message"`
	IsUserMessage bool       `gorm:"column:is_user_message" json:"is_user_message"`
	Timestamp     *time.Time `gorm:"column:timestamp" json:"timestamp"`
}

func (m *ChatMessage) BeforeCreate(tx *gorm.DB) (err error) {
	if m.Timestamp == nil {
		now := time.Now().UTC()
		m.Timestamp = &now
	}
	return nil
}
