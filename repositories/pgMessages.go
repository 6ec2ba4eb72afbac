package repositories

import (
	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/entities"
)

// GetChatMessages fetches in id (insertion) order and sorts by timestamp in
// application code rather than ORDER BY timestamp, so rows with a NULL
// timestamp get a defined earliest position instead of whatever NULL
// placement the database picks.
func (r *pgStorage) GetChatMessages(userID uint, limit int) ([]entities.ChatMessage, error) {
	var messages []entities.ChatMessage
	err := r.db.GetDB().Where("user_id = ?", userID).Order("id").Find(&messages).Error
	if err != nil {
		return nil, fail("GetChatMessages", err)
	}
	sortChatMessages(messages)
	return tailMessages(messages, limit), nil
}

func (r *pgStorage) CreateChatMessage(message *entities.ChatMessage) (*entities.ChatMessage, error) {
	if err := r.db.GetDB().Create(message).Error; err != nil {
		return nil, fail("CreateChatMessage", err)
	}
	return message, nil
}
