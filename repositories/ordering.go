package repositories

import (
	"sort"
	"time"

	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/entities"
)

// timeLess orders nullable timestamps: a nil timestamp sorts as the earliest
// possible moment, and two nil timestamps compare equal so a stable sort
// keeps their insertion order. This is a comparison rule for legacy rows, not
// a default-value substitution, so real timestamps keep true chronology.
func timeLess(a, b *time.Time) bool {
	if a == nil {
		return b != nil
	}
	if b == nil {
		return false
	}
	return a.Before(*b)
}

// sortChatMessages stable-sorts messages by timestamp ascending. Input must
// already be in insertion order so ties resolve to creation order.
func sortChatMessages(messages []entities.ChatMessage) {
	sort.SliceStable(messages, func(i, j int) bool {
		return timeLess(messages[i].Timestamp, messages[j].Timestamp)
	})
}

// sortFinancialGoals stable-sorts goals by creation timestamp ascending.
func sortFinancialGoals(goals []entities.FinancialGoal) {
	sort.SliceStable(goals, func(i, j int) bool {
		return timeLess(goals[i].CreatedAt, goals[j].CreatedAt)
	})
}

// tailMessages returns the last limit elements of an already-ordered slice,
// or the whole slice when limit is zero, negative, or larger than the slice.
func tailMessages(messages []entities.ChatMessage, limit int) []entities.ChatMessage {
	if limit > 0 && len(messages) > limit {
		return messages[len(messages)-limit:]
	}
	return messages
}
