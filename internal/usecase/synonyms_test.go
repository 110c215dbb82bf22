package usecase

import (
	"context"
	"testing"

	"github.com/yourusername/customs-ai-bot/internal/domain/constants"
)

type stubSynonymRepo struct {
	learned   map[string]string
	unmatched []string
}

func newStubSynonymRepo() *stubSynonymRepo {
	return &stubSynonymRepo{learned: make(map[string]string)}
}

func (s *stubSynonymRepo) Lookup(_ context.Context, query string) (string, bool, error) {
	canonical, ok := s.learned[query]
	return canonical, ok, nil
}

func (s *stubSynonymRepo) Learn(_ context.Context, query, canonical string) error {
	if _, ok := s.learned[query]; !ok {
		s.learned[query] = canonical
	}
	return nil
}

func (s *stubSynonymRepo) LogUnmatched(_ context.Context, query string) error {
	s.unmatched = append(s.unmatched, query)
	return nil
}

func TestExpandKeepsOriginalFirst(t *testing.T) {
	e := newSynonymExpander(nil, nil)
	got := e.Expand(context.Background(), "جمارك مودم")
	if len(got) == 0 || got[0] != "جمارك مودم" {
		t.Fatalf("Expand()[0] = %q, want the query itself", got[0])
	}
	found := false
	for _, v := range got {
		if v == "جمارك مودمات" {
			found = true
		}
	}
	if !found {
		t.Fatalf("Expand(%q) = %v, want a مودمات variant", "جمارك مودم", got)
	}
}

func TestExpandCapped(t *testing.T) {
	e := newSynonymExpander(nil, nil)
	got := e.Expand(context.Background(), "شاشه تلفزيون بطاريه رول مودم جوال")
	if len(got) > constants.MaxQueryExpansions {
		t.Fatalf("Expand produced %d variants, cap is %d", len(got), constants.MaxQueryExpansions)
	}
}

func TestExpandLearnedTakesPriority(t *testing.T) {
	repo := newStubSynonymRepo()
	repo.learned["ثلاجه صغيره"] = "ثلاجات"
	e := newSynonymExpander(nil, repo)
	got := e.Expand(context.Background(), "ثلاجه صغيره")
	if len(got) == 0 || got[0] != "ثلاجات" {
		t.Fatalf("Expand()[0] = %q, want learned canonical first", got[0])
	}
}

func TestExpandDoesNotMutateDictionary(t *testing.T) {
	static := map[string][]string{"ثياب": {"ملابس"}}
	e := newSynonymExpander(static, nil)
	e.Expand(context.Background(), "ثياب اطفال")
	e.Expand(context.Background(), "كلمه جديده")
	if len(static) != 1 || len(static["ثياب"]) != 1 {
		t.Fatalf("static dictionary mutated: %v", static)
	}
}
