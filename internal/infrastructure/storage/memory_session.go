package storage

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/yourusername/customs-ai-bot/internal/domain/entity"
	"github.com/yourusername/customs-ai-bot/internal/domain/repository"
)

type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*entity.ConversationState
}

// NewMemorySessionRepository creates an in-memory conversation-state table.
func NewMemorySessionRepository() repository.SessionRepository {
	return &memorySessionRepository{
		sessions: make(map[string]*entity.ConversationState),
	}
}

func (m *memorySessionRepository) Get(ctx context.Context, sessionID string) (*entity.ConversationState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, ok := m.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	// Defensive copy so a turn mutates its own state and publishes it back
	// through Save.
	cp := *state
	return &cp, nil
}

func (m *memorySessionRepository) Save(ctx context.Context, state *entity.ConversationState) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *state
	m.sessions[state.SessionID] = &cp
	return nil
}

func (m *memorySessionRepository) Clear(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sessionID)
	return nil
}

func (m *memorySessionRepository) EvictIdle(ctx context.Context, ttl time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	evicted := 0
	for id, state := range m.sessions {
		if now.Sub(state.LastActivity) > ttl {
			delete(m.sessions, id)
			evicted++
		}
	}
	return evicted
}

// RunSessionCleanup sweeps idle sessions until ctx is cancelled. An evicted
// dialogue is silently discarded; the next message under that key starts
// fresh.
func RunSessionCleanup(ctx context.Context, repo repository.SessionRepository, ttl, interval time.Duration, log *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := repo.EvictIdle(ctx, ttl); n > 0 {
				log.Info("evicted idle sessions", zap.Int("count", n))
			}
		}
	}
}
