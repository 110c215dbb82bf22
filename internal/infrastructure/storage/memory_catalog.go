package storage

import (
	"context"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/yourusername/customs-ai-bot/internal/domain/entity"
	"github.com/yourusername/customs-ai-bot/internal/domain/repository"
	"github.com/yourusername/customs-ai-bot/pkg/artext"
)

// queryStopwords are question framing words carrying no item information.
var queryStopwords = map[string]struct{}{
	"كم":     {},
	"جمارك":  {},
	"جمرك":   {},
	"الجمارك": {},
	"رسوم":   {},
	"الرسوم": {},
	"سعر":    {},
	"السعر":  {},
	"تكلفه":  {},
	"كلفه":   {},
	"حق":     {},
	"علي":    {},
	"في":     {},
	"عن":     {},
	"لو":     {},
	"اريد":   {},
	"ابغي":   {},
	"ابي":    {},
}

// catalogDoc is one entry with its search text precomputed at snapshot build
// time so queries do no per-entry normalization work.
type catalogDoc struct {
	entry       entity.CatalogEntry
	nameNorm    string
	nameCompact string
	nameTokens  []string
	nameStems   map[string]struct{}
	allTokens   []string
	allStems    map[string]struct{}
}

// catalogSnapshot is an immutable build of the whole catalog. Searches hold a
// pointer to one snapshot for their full duration, so a concurrent Replace
// can never hand them a half-built or mixed view.
type catalogSnapshot struct {
	docs []catalogDoc
}

type memoryCatalogRepository struct {
	snap atomic.Pointer[catalogSnapshot]
}

// NewMemoryCatalogRepository creates an empty in-memory catalog index.
func NewMemoryCatalogRepository() repository.CatalogRepository {
	r := &memoryCatalogRepository{}
	r.snap.Store(&catalogSnapshot{})
	return r
}

func buildDoc(e entity.CatalogEntry) catalogDoc {
	nameNorm := artext.Normalize(e.Name)
	nameTokens := strings.Fields(nameNorm)
	allNorm := artext.Normalize(e.Name + " " + e.Notes + " " + e.Unit)
	allTokens := strings.Fields(allNorm)

	stems := func(tokens []string) map[string]struct{} {
		set := make(map[string]struct{}, len(tokens)*2)
		for _, t := range tokens {
			for _, v := range artext.Variants(t) {
				set[v] = struct{}{}
			}
		}
		return set
	}

	return catalogDoc{
		entry:       e,
		nameNorm:    nameNorm,
		nameCompact: strings.ReplaceAll(nameNorm, " ", ""),
		nameTokens:  nameTokens,
		nameStems:   stems(nameTokens),
		allTokens:   allTokens,
		allStems:    stems(allTokens),
	}
}

// Replace builds a fresh snapshot and publishes it with a single pointer
// swap.
func (m *memoryCatalogRepository) Replace(ctx context.Context, entries []entity.CatalogEntry) error {
	docs := make([]catalogDoc, 0, len(entries))
	for _, e := range entries {
		docs = append(docs, buildDoc(e))
	}
	m.snap.Store(&catalogSnapshot{docs: docs})
	return nil
}

func (m *memoryCatalogRepository) Count(ctx context.Context) int {
	return len(m.snap.Load().docs)
}

// queryTokens drops framing stopwords and bare numbers from a normalized
// query.
func queryTokens(norm string) []string {
	fields := strings.Fields(norm)
	out := make([]string, 0, len(fields))
	for _, t := range fields {
		if len([]rune(t)) < 2 || artext.IsNumeric(t) {
			continue
		}
		if _, ok := queryStopwords[t]; ok {
			continue
		}
		out = append(out, t)
	}
	return out
}

// tokenSimilarity scores one query token against a doc, in [0,1], higher =
// closer. Name-field matches outrank notes/unit matches so the entry whose
// name carries the term wins over one merely mentioning it.
func tokenSimilarity(token string, doc catalogDoc) float64 {
	variants := artext.Variants(token)

	best := 0.0
	consider := func(v float64) {
		if v > best {
			best = v
		}
	}

	for _, v := range variants {
		if _, ok := doc.nameStems[v]; ok {
			if v == token {
				consider(1.0)
			} else {
				consider(0.9)
			}
			continue
		}
		if _, ok := doc.allStems[v]; ok {
			if v == token {
				consider(0.95)
			} else {
				consider(0.85)
			}
		}
	}
	if best >= 0.9 {
		return best
	}

	stem := artext.Stem(token)
	maxEdits := artext.MaxEditDistance(token)
	for _, tt := range doc.allTokens {
		if len([]rune(tt)) < 2 || artext.IsNumeric(tt) {
			continue
		}
		if strings.HasPrefix(tt, token) || strings.HasPrefix(token, tt) {
			consider(0.8)
		}
		if maxEdits > 0 {
			if dist, ok := artext.EditDistanceWithin(token, tt, maxEdits); ok {
				longer := len([]rune(token))
				if l := len([]rune(tt)); l > longer {
					longer = l
				}
				consider(0.95 * (1.0 - float64(dist)/float64(longer)))
			}
		}
		if sim := artext.NgramSimilarity(artext.Stem(tt), stem, 2); sim > 0 {
			consider(0.85 * sim)
		}
	}
	return best
}

// score rates a whole query against a doc; lower is closer.
func score(qNorm, qCompact string, tokens []string, doc catalogDoc) float64 {
	if qNorm != "" && qNorm == doc.nameNorm {
		return 0
	}
	best := 1.0
	if qNorm != "" && strings.Contains(doc.nameNorm, qNorm) {
		best = 0.05
	}
	if qCompact != "" && len([]rune(qCompact)) >= 4 {
		if s := 1.0 - artext.NgramSimilarity(qCompact, doc.nameCompact, 2); s < best {
			best = s
		}
	}
	for _, t := range tokens {
		if s := 1.0 - tokenSimilarity(t, doc); s < best {
			best = s
		}
	}
	return best
}

// Search ranks the whole snapshot against the query. Acceptance thresholds
// belong to the caller; everything comes back ordered by score then catalog
// order.
func (m *memoryCatalogRepository) Search(ctx context.Context, query string) ([]entity.ScoredEntry, error) {
	snap := m.snap.Load()
	if len(snap.docs) == 0 {
		return nil, nil
	}

	qNorm := artext.Normalize(query)
	tokens := queryTokens(qNorm)
	itemNorm := strings.Join(tokens, " ")
	qCompact := strings.ReplaceAll(itemNorm, " ", "")
	if itemNorm == "" {
		itemNorm = qNorm
		qCompact = strings.ReplaceAll(qNorm, " ", "")
	}

	results := make([]entity.ScoredEntry, 0, len(snap.docs))
	for _, doc := range snap.docs {
		results = append(results, entity.ScoredEntry{
			Entry: doc.entry,
			Score: score(itemNorm, qCompact, tokens, doc),
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score < results[j].Score
	})
	return results, nil
}

// Suggest returns the n nearest entry names for a query that matched
// nothing.
func (m *memoryCatalogRepository) Suggest(ctx context.Context, query string, n int) ([]string, error) {
	ranked, err := m.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, n)
	for _, r := range ranked {
		if len(names) == n {
			break
		}
		if r.Score >= 0.95 {
			break
		}
		names = append(names, r.Entry.Name)
	}
	return names, nil
}
