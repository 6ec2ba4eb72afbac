package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/usecases"
	"github.com/MUTHUKUMARAN-K-01/FinanceTracker/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WebSocket message envelopes
type incomingMessage struct {
	Type string `json:"type"` // chat_message | heartbeat
}

type chatPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Model   string `json:"model"`
}

type replyPayload struct {
	Type          string `json:"type"`
	ID            uint   `json:"id"`
	Message       string `json:"message"`
	IsUserMessage bool   `json:"is_user_message"`
}

// WSHandler groups dependencies for the live chat flow.
type WSHandler struct {
	mgr     *ws.Manager
	useCase *usecases.ChatUseCase
}

func NewWSHandler(mgr *ws.Manager, uc *usecases.ChatUseCase) *WSHandler {
	return &WSHandler{mgr: mgr, useCase: uc}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleChatWS upgrades to websocket and runs the chat loop for one session.
// GET /ws/chat?user_id=<id>
func (h *WSHandler) HandleChatWS(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Query("user_id"), 10, 32)
	if err != nil || userID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid user_id"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	sessionID := h.mgr.Register(uint(userID), conn)
	log.Printf("chat session opened: user=%d session=%s", userID, sessionID)

	defer func() {
		h.mgr.Unregister(sessionID)
		log.Printf("chat session closed: user=%d session=%s", userID, sessionID)
	}()

	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("user %d closed connection", userID)
			} else {
				log.Printf("read error from user %d: %v", userID, err)
			}
			return
		}
		if mt != websocket.TextMessage {
			continue
		}

		var base incomingMessage
		if err := json.Unmarshal(message, &base); err != nil {
			log.Printf("invalid json from user %d: %v", userID, err)
			continue
		}

		switch base.Type {
		case "chat_message":
			var payload chatPayload
			if err := json.Unmarshal(message, &payload); err != nil {
				log.Printf("invalid chat_message payload from user %d: %v", userID, err)
				continue
			}

			reply, err := h.useCase.SendMessage(c.Request.Context(), uint(userID), payload.Message, payload.Model)
			if err != nil {
				log.Printf("chat round trip failed for user %d: %v", userID, err)
				continue
			}

			b, _ := json.Marshal(replyPayload{
				Type:          "chat_reply",
				ID:            reply.ID,
				Message:       reply.Message,
				IsUserMessage: reply.IsUserMessage,
			})
			if err := h.mgr.SendToUser(uint(userID), b); err != nil {
				log.Printf("failed to push reply to user %d: %v", userID, err)
			}
		case "heartbeat":
			// No-op, keeps the connection alive through proxies.
		default:
			log.Printf("unknown message type from user %d: %s", userID, base.Type)
		}
	}
}

// GetConnectedUsers GET /api/v1/chat/connected
func (h *WSHandler) GetConnectedUsers(c *gin.Context) {
	users := h.mgr.ConnectedUsers()
	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}
