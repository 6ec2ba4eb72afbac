package httpHandler

import (
	"net/http"
	"strconv"

	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/usecases"
	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	useCase *usecases.ChatUseCase
}

func NewChatHandler(useCase *usecases.ChatUseCase) *ChatHandler {
	return &ChatHandler{useCase: useCase}
}

type chatRequest struct {
	UserID  uint   `json:"user_id" binding:"required"`
	Message string `json:"message" binding:"required"`
	Model   string `json:"model"`
}

// SendMessage handles POST /api/v1/chat — the full advisor round trip.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	reply, err := h.useCase.SendMessage(c.Request.Context(), req.UserID, req.Message, req.Model)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": reply})
}

// GetMessages handles GET /api/v1/users/:id/messages?limit=N
func (h *ChatHandler) GetMessages(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	messages, err := h.useCase.History(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  messages,
		"count": len(messages),
	})
}
