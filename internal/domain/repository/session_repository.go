package repository

import (
	"context"
	"time"

	"github.com/yourusername/customs-ai-bot/internal/domain/entity"
)

// SessionRepository keeps per-session conversation state. Ownership of a
// state is exclusive to its session key; the caller's request/response cycle
// guarantees at most one in-flight turn per session.
type SessionRepository interface {
	// Get returns the state for a session key, or nil if none exists.
	Get(ctx context.Context, sessionID string) (*entity.ConversationState, error)

	// Save stores (or replaces) the state under its session key.
	Save(ctx context.Context, state *entity.ConversationState) error

	// Clear removes a session's state.
	Clear(ctx context.Context, sessionID string) error

	// EvictIdle drops sessions idle longer than ttl and returns how many
	// were removed.
	EvictIdle(ctx context.Context, ttl time.Duration) int
}
