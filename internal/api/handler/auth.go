package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	jwt "github.com/golang-jwt/jwt/v5"

	"pqrchat/backend/internal/config"
)

// generateJWT signs a token carrying the anonymous session ID.
func (h *Handler) generateJWT(sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"exp":        time.Now().Add(config.TokenTTL).Unix(),
		"iss":        config.JWTIssuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.jwtSecret)
}

// validateAndGetSessionID parses the token and returns the session ID claim.
func (h *Handler) validateAndGetSessionID(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return h.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}
	sessionID, ok := claims["session_id"].(string)
	if !ok || sessionID == "" {
		return "", errors.New("missing session_id claim")
	}
	return sessionID, nil
}

// GetSessionToken mints an anonymous session ID and returns it with a JWT the
// chat widget presents when upgrading to WebSocket.
func (h *Handler) GetSessionToken(c *gin.Context) {
	sessionUUID, _ := uuid.NewRandom()
	sessionID := sessionUUID.String()

	token, err := h.generateJWT(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "session_id": sessionID})
}
