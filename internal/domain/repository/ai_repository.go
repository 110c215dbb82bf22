package repository

import "context"

// AIRepository is the optional LLM fallback consulted when the catalog has
// no answer. A nil implementation simply disables the fallback.
type AIRepository interface {
	// GenerateFallback produces a short advisory reply for a question the
	// catalog could not answer.
	GenerateFallback(ctx context.Context, question string) (string, error)
}
