package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/yourusername/customs-ai-bot/internal/infrastructure/storage"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "catalog.json", `[
		{"name": "شاشات", "price": 4, "unit": "بوصه", "notes": "الفئة5%"},
		{"name": "", "price": 1},
		{"name": "مودمات", "price": 10, "unit": "حبه"}
	]`)

	repo := storage.NewMemoryCatalogRepository()
	loader := NewLoader(path, repo, zap.NewNop())
	ctx := context.Background()

	if err := loader.Load(ctx); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	// The nameless row is dropped.
	if got := repo.Count(ctx); got != 2 {
		t.Fatalf("Count() = %d, want 2", got)
	}

	ranked, err := repo.Search(ctx, "شاشات")
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if ranked[0].Entry.Price != 4 || ranked[0].Entry.Notes != "الفئة5%" {
		t.Fatalf("loaded entry = %+v, want price and notes preserved", ranked[0].Entry)
	}
}

func TestLoadMissingFileKeepsSnapshot(t *testing.T) {
	repo := storage.NewMemoryCatalogRepository()
	ctx := context.Background()
	goodPath := writeFile(t, "catalog.json", `[{"name": "شاشات", "price": 4}]`)

	if err := NewLoader(goodPath, repo, zap.NewNop()).Load(ctx); err != nil {
		t.Fatalf("Load(good) error: %v", err)
	}

	bad := NewLoader(filepath.Join(t.TempDir(), "missing.json"), repo, zap.NewNop())
	if err := bad.Load(ctx); err == nil {
		t.Fatal("Load(missing) succeeded, want error")
	}
	if got := repo.Count(ctx); got != 1 {
		t.Fatalf("Count() = %d after failed load, want previous snapshot intact", got)
	}
}

func TestLoadBadJSON(t *testing.T) {
	path := writeFile(t, "catalog.json", `{"name": "not an array"}`)
	repo := storage.NewMemoryCatalogRepository()
	if err := NewLoader(path, repo, zap.NewNop()).Load(context.Background()); err == nil {
		t.Fatal("Load(object) succeeded, want error")
	}
}

func TestHeaderColumns(t *testing.T) {
	cols := headerColumns([]string{"الصنف", "السعر", "الوحدة", "ملاحظات"})
	if cols["name"] != 0 || cols["price"] != 1 || cols["unit"] != 2 || cols["notes"] != 3 {
		t.Fatalf("Arabic header mapping = %v", cols)
	}

	// Unrecognized headers fall back to positional columns.
	cols = headerColumns([]string{"item", "cost"})
	if cols["name"] != 0 || cols["price"] != 1 {
		t.Fatalf("positional fallback = %v", cols)
	}
}
