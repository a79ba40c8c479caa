// Package session provides the ephemeral per-conversation state storage used
// by the host front ends. Sessions live only for the duration of a
// conversation: every backend expires entries after config.SessionTTL, and a
// missing entry always yields a fresh blank session.
package session

import (
	"context"

	"pqrchat/backend/internal/intake"
)

// Store keeps one intake.Session per conversation identifier. The intake
// engine never touches the store; hosts load a session before each turn and
// save it after.
type Store interface {
	// Get returns the session for id, or a fresh blank session when none
	// exists (first interaction or expired conversation).
	Get(ctx context.Context, id string) (*intake.Session, error)
	// Put saves the session for id, refreshing its TTL.
	Put(ctx context.Context, id string, s *intake.Session) error
	// Delete removes the session for id. Deleting a missing id is not an
	// error.
	Delete(ctx context.Context, id string) error
}
