package repository

import (
	"context"

	"github.com/yourusername/customs-ai-bot/internal/domain/entity"
)

// CatalogRepository is the fuzzy price-catalog index. Replace publishes a new
// immutable snapshot atomically; a search started against the old snapshot
// finishes against the old snapshot.
type CatalogRepository interface {
	// Replace swaps in a new catalog snapshot.
	Replace(ctx context.Context, entries []entity.CatalogEntry) error

	// Search returns candidates ranked by score, lower (closer) first.
	// Acceptance thresholds are the caller's concern.
	Search(ctx context.Context, query string) ([]entity.ScoredEntry, error)

	// Suggest returns up to n nearest entry names for a failed lookup.
	Suggest(ctx context.Context, query string, n int) ([]string, error)

	// Count returns the number of entries in the current snapshot.
	Count(ctx context.Context) int
}
