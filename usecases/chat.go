package usecases

import (
	"context"
	"errors"

	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/ai"
	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/entities"
	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/repositories"
)

// historyLimit caps how many prior turns are sent to the advisor per request.
const historyLimit = 20

// ChatUseCase runs the full chat round trip: persist the user's turn, ask the
// advisor with recent history, persist and return the assistant's turn.
type ChatUseCase struct {
	store   repositories.Storage
	advisor ai.Advisor
}

func NewChatUseCase(store repositories.Storage, advisor ai.Advisor) *ChatUseCase {
	return &ChatUseCase{store: store, advisor: advisor}
}

// SendMessage stores the user message, generates advice and stores the reply.
// The advisor never fails; transport problems come back as an apologetic
// assistant message, which is stored and returned like any other.
func (uc *ChatUseCase) SendMessage(ctx context.Context, userID uint, text, model string) (*entities.ChatMessage, error) {
	if userID == 0 {
		return nil, errors.New("user id is required")
	}
	if text == "" {
		return nil, errors.New("message is required")
	}

	user, err := uc.store.GetUser(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	// History is read before the new turn is stored; Advise appends the new
	// message itself, so reading after would send it twice.
	history, err := uc.store.GetChatMessages(userID, historyLimit)
	if err != nil {
		return nil, err
	}

	if _, err := uc.store.CreateChatMessage(&entities.ChatMessage{
		UserID:        userID,
		Message:       text,
		IsUserMessage: true,
	}); err != nil {
		return nil, err
	}

	reply := uc.advisor.Advise(ctx, text, history, model)

	return uc.store.CreateChatMessage(&entities.ChatMessage{
		UserID:        userID,
		Message:       reply,
		IsUserMessage: false,
	})
}

// History lists a user's messages, oldest first. A positive limit returns
// only the most recent turns.
func (uc *ChatUseCase) History(userID uint, limit int) ([]entities.ChatMessage, error) {
	if userID == 0 {
		return nil, errors.New("user id is required")
	}
	return uc.store.GetChatMessages(userID, limit)
}
