package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"pqrchat/backend/internal/intake"
	"pqrchat/backend/internal/models"
)

const maxMessageSize = 4096

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allows connections from any origin. Tighten for production.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket upgrades the connection for the chat-widget front end and
// runs the conversation loop: one inbound message, one synchronous engine
// turn, one reply.
func (h *Handler) ServeWebSocket(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token missing"})
		return
	}

	sessionID, err := h.validateAndGetSessionID(authHeader[7:])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or expired"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)

	// Greet before the first user message, as the chat widget shows the
	// welcome prompt in the transcript.
	greeting := models.ChatReply{
		SessionID: sessionID,
		Reply:     intake.PromptWelcome,
		Step:      string(intake.StepWelcome),
	}
	if err := conn.WriteJSON(greeting); err != nil {
		return
	}

	ctx := c.Request.Context()
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("ERROR: Reading message for session %s: %v", sessionID, err)
			}
			return
		}

		var msg models.ChatMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			log.Printf("WARNING: Dropping malformed frame from session %s: %v", sessionID, err)
			continue
		}

		st, err := h.Sessions.Get(ctx, sessionID)
		if err != nil {
			log.Printf("ERROR: Failed to load session %s: %v", sessionID, err)
			return
		}

		reply := h.Engine.Handle(ctx, sessionID, msg.Text, st)

		if err := h.Sessions.Put(ctx, sessionID, st); err != nil {
			log.Printf("ERROR: Failed to save session %s: %v", sessionID, err)
		}

		out := models.ChatReply{SessionID: sessionID, Reply: reply, Step: string(st.Step)}
		if err := conn.WriteJSON(out); err != nil {
			return
		}
	}
}
