package usecase

import (
	"context"
	"strings"

	"github.com/yourusername/customs-ai-bot/internal/domain/constants"
	"github.com/yourusername/customs-ai-bot/internal/domain/repository"
	"github.com/yourusername/customs-ai-bot/pkg/artext"
)

// defaultSynonyms maps a normalized token to the canonical catalog terms it
// should also be searched as. Keys and values are in normalized form (so ة
// appears as ه).
var defaultSynonyms = map[string][]string{
	"ثياب":       {"ملابس"},
	"هدوم":       {"ملابس"},
	"شاشه":       {"شاشات"},
	"تلفزيون":    {"شاشات"},
	"تلفزيونات":  {"شاشات"},
	"تلفاز":      {"شاشات"},
	"راوتر":      {"مودمات"},
	"راوترات":    {"مودمات"},
	"مودم":       {"مودمات"},
	"بطاريه":     {"بطاريات"},
	"بطاري":      {"بطاريات"},
	"رول":        {"رولات"},
	"جوال":       {"تلفونات"},
	"جوالات":     {"تلفونات"},
	"موبايل":     {"تلفونات"},
}

// synonymExpander turns one normalized query into a bounded set of search
// variants. Lookup never mutates either dictionary; learning happens through
// the repository, explicitly, elsewhere.
type synonymExpander struct {
	static map[string][]string
	repo   repository.SynonymRepository // optional learned store
}

func newSynonymExpander(static map[string][]string, repo repository.SynonymRepository) *synonymExpander {
	if static == nil {
		static = defaultSynonyms
	}
	return &synonymExpander{static: static, repo: repo}
}

// Expand returns search variants for a normalized query, the query itself
// first. A learned mapping for the exact query string takes priority over
// token-wise expansion.
func (e *synonymExpander) Expand(ctx context.Context, normQuery string) []string {
	variants := []string{normQuery}

	if e.repo != nil {
		if canonical, ok, err := e.repo.Lookup(ctx, normQuery); err == nil && ok {
			variants = append([]string{canonical}, variants...)
		}
	}

	tokens := strings.Fields(normQuery)
	if len(tokens) == 0 {
		return variants
	}

	// Per-token candidate sets: the token, its dictionary terms, its
	// morphological variants.
	candidates := make([][]string, len(tokens))
	for i, tok := range tokens {
		set := []string{tok}
		if syns, ok := e.static[tok]; ok {
			set = append(set, syns...)
		}
		for _, v := range artext.Variants(tok) {
			if syns, ok := e.static[v]; ok {
				set = appendUnique(set, syns...)
			}
		}
		set = appendUnique(set, artext.Variants(tok)...)
		candidates[i] = set
	}

	// Combine token candidates into full queries, capped so search cost
	// stays bounded.
	combos := []string{""}
	for _, set := range candidates {
		next := make([]string, 0, len(combos))
		for _, prefix := range combos {
			for _, cand := range set {
				if len(next) >= constants.MaxQueryExpansions {
					break
				}
				if prefix == "" {
					next = append(next, cand)
				} else {
					next = append(next, prefix+" "+cand)
				}
			}
		}
		combos = next
	}
	for _, c := range combos {
		variants = appendUnique(variants, c)
	}
	if len(variants) > constants.MaxQueryExpansions {
		variants = variants[:constants.MaxQueryExpansions]
	}
	return variants
}

func appendUnique(dst []string, vals ...string) []string {
	for _, v := range vals {
		found := false
		for _, existing := range dst {
			if existing == v {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, v)
		}
	}
	return dst
}
