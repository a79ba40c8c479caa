// Package handler binds the intake engine to its HTTP-facing front ends: the
// WebSocket chat widget and the REST form host. Both are thin adapters over
// the same engine; neither duplicates any conversational logic.
package handler

import (
	"os"

	"pqrchat/backend/internal/intake"
	"pqrchat/backend/internal/session"
)

// Handler carries the engine and the session store shared by all routes.
type Handler struct {
	Engine    *intake.Engine
	Sessions  session.Store
	jwtSecret []byte
}

// NewHandler creates the HTTP handler set. The JWT signing secret comes from
// the JWT_SECRET environment variable.
func NewHandler(engine *intake.Engine, sessions session.Store) *Handler {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "pqrchat-dev-secret"
	}
	return &Handler{
		Engine:    engine,
		Sessions:  sessions,
		jwtSecret: []byte(secret),
	}
}
