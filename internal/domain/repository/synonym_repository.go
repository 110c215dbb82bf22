package repository

import "context"

// SynonymRepository is the optional store for runtime-learned synonyms and
// the unmatched-query log. Implementations must make Learn idempotent and
// must never overwrite a query that already has a mapping.
type SynonymRepository interface {
	// Lookup returns the learned canonical term for a normalized query.
	Lookup(ctx context.Context, query string) (string, bool, error)

	// Learn records query → canonical. Writing the same mapping twice is a
	// no-op; an existing mapping for query is left untouched.
	Learn(ctx context.Context, query, canonical string) error

	// LogUnmatched records a query that resolved to nothing.
	LogUnmatched(ctx context.Context, query string) error
}
