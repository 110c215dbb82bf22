package storage

import (
	"context"
	"sync"
	"time"

	"github.com/yourusername/customs-ai-bot/internal/domain/repository"
)

type memorySynonymRepository struct {
	mu        sync.RWMutex
	learned   map[string]string
	unmatched map[string]time.Time
}

// NewMemorySynonymRepository creates the default in-process learned-synonym
// store.
func NewMemorySynonymRepository() repository.SynonymRepository {
	return &memorySynonymRepository{
		learned:   make(map[string]string),
		unmatched: make(map[string]time.Time),
	}
}

func (m *memorySynonymRepository) Lookup(ctx context.Context, query string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	canonical, ok := m.learned[query]
	return canonical, ok, nil
}

func (m *memorySynonymRepository) Learn(ctx context.Context, query, canonical string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// First mapping wins; repeated writes are no-ops.
	if _, exists := m.learned[query]; exists {
		return nil
	}
	m.learned[query] = canonical
	return nil
}

func (m *memorySynonymRepository) LogUnmatched(ctx context.Context, query string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.unmatched[query] = time.Now()
	return nil
}
