// Package catalog loads the price catalog from a local JSON or XLSX file and
// republishes it into the catalog index on a timer. A failed load keeps the
// previous snapshot so service degrades, never corrupts.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/yourusername/customs-ai-bot/internal/domain/entity"
	"github.com/yourusername/customs-ai-bot/internal/domain/repository"
)

// Loader reads catalog files and publishes snapshots.
type Loader struct {
	path        string
	catalogRepo repository.CatalogRepository
	log         *zap.Logger
}

// NewLoader creates a catalog loader for the given file path.
func NewLoader(path string, catalogRepo repository.CatalogRepository, log *zap.Logger) *Loader {
	return &Loader{path: path, catalogRepo: catalogRepo, log: log}
}

// Load reads the catalog file and atomically replaces the index snapshot.
func (l *Loader) Load(ctx context.Context) error {
	entries, err := l.read()
	if err != nil {
		return err
	}
	if err := l.catalogRepo.Replace(ctx, entries); err != nil {
		return fmt.Errorf("failed to publish catalog snapshot: %w", err)
	}
	l.log.Info("catalog loaded", zap.String("path", l.path), zap.Int("items", len(entries)))
	return nil
}

func (l *Loader) read() ([]entity.CatalogEntry, error) {
	switch strings.ToLower(filepath.Ext(l.path)) {
	case ".xlsx":
		return readXLSX(l.path)
	default:
		return readJSON(l.path)
	}
}

func readJSON(path string) ([]entity.CatalogEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	var entries []entity.CatalogEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("catalog JSON is not an array of entries: %w", err)
	}
	return validEntries(entries), nil
}

// readXLSX expects the first sheet with header row name/price/unit/notes (or
// their Arabic equivalents); extra columns are ignored.
func readXLSX(path string) ([]entity.CatalogEntry, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("catalog workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("catalog sheet %q has no data rows", sheets[0])
	}

	cols := headerColumns(rows[0])
	var entries []entity.CatalogEntry
	for _, row := range rows[1:] {
		cell := func(idx int) string {
			if idx < 0 || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}
		name := cell(cols["name"])
		if name == "" {
			continue
		}
		price, _ := strconv.ParseFloat(strings.ReplaceAll(cell(cols["price"]), ",", ""), 64)
		entries = append(entries, entity.CatalogEntry{
			Name:  name,
			Price: price,
			Unit:  cell(cols["unit"]),
			Notes: cell(cols["notes"]),
		})
	}
	return validEntries(entries), nil
}

func headerColumns(header []string) map[string]int {
	cols := map[string]int{"name": -1, "price": -1, "unit": -1, "notes": -1}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "name", "الصنف", "اسم الصنف":
			cols["name"] = i
		case "price", "السعر":
			cols["price"] = i
		case "unit", "الوحدة":
			cols["unit"] = i
		case "notes", "ملاحظات", "الملاحظات":
			cols["notes"] = i
		}
	}
	// Positional fallback for sheets without a recognized header.
	if cols["name"] == -1 {
		cols["name"], cols["price"], cols["unit"], cols["notes"] = 0, 1, 2, 3
	}
	return cols
}

func validEntries(entries []entity.CatalogEntry) []entity.CatalogEntry {
	out := entries[:0]
	for _, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}

// RunRefresh reloads the catalog on a timer until ctx is cancelled. A failed
// reload logs and keeps serving the previous snapshot.
func (l *Loader) RunRefresh(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := l.Load(ctx); err != nil {
				l.log.Warn("catalog refresh failed, keeping previous snapshot", zap.Error(err))
			}
		}
	}
}
