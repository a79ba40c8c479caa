package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pqrchat/backend/internal/intake"
	"pqrchat/backend/internal/models"
)

// PostMessage is the button/textbox front end: each request carries one user
// message and the session ID from the previous response. Omitting the session
// ID starts a new conversation; a new conversation with a blank message just
// returns the welcome prompt.
func (h *Handler) PostMessage(c *gin.Context) {
	var req models.ChatMessage
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	sessionID := req.SessionID
	fresh := sessionID == ""
	if fresh {
		sessionID = uuid.New().String()
	}

	ctx := c.Request.Context()
	st, err := h.Sessions.Get(ctx, sessionID)
	if err != nil {
		log.Printf("ERROR: Failed to load session %s: %v", sessionID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
		return
	}

	if fresh && strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusOK, models.ChatReply{
			SessionID: sessionID,
			Reply:     intake.PromptWelcome,
			Step:      string(st.Step),
		})
		return
	}

	reply := h.Engine.Handle(ctx, sessionID, req.Text, st)

	if err := h.Sessions.Put(ctx, sessionID, st); err != nil {
		log.Printf("ERROR: Failed to save session %s: %v", sessionID, err)
	}

	c.JSON(http.StatusOK, models.ChatReply{
		SessionID: sessionID,
		Reply:     reply,
		Step:      string(st.Step),
	})
}
