package entity

import "github.com/yourusername/customs-ai-bot/pkg/artext"

// UnitKind is the unit-of-measure family a catalog entry is priced in.
type UnitKind int

const (
	UnitUnspecified UnitKind = iota
	UnitPiece
	UnitDozen
	UnitKilogram
	UnitTon
	UnitAmpHour
	UnitInch
)

// CatalogEntry is one row of the price catalog. Entries are immutable once
// loaded; a refresh replaces the whole set.
type CatalogEntry struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"` // unit price in USD
	Unit  string  `json:"unit"`
	Notes string  `json:"notes"` // free text carrying the duty-category marker
}

// UnitKind maps the entry's free-text unit field to a unit family. Catalog
// sheets mix Arabic and English unit spellings.
func (e CatalogEntry) UnitKind() UnitKind {
	switch artext.Normalize(e.Unit) {
	case "حبه", "قطعه", "عدد", "piece", "pcs", "pc":
		return UnitPiece
	case "درزن", "دزينه", "dozen", "dz":
		return UnitDozen
	case "كيلو", "كجم", "كغ", "kg", "kilogram":
		return UnitKilogram
	case "طن", "اطنان", "ton", "tons":
		return UnitTon
	case "امبير", "ah", "amp", "ampere":
		return UnitAmpHour
	case "بوصه", "انش", "inch", "in":
		return UnitInch
	default:
		return UnitUnspecified
	}
}

// ScoredEntry is a search hit with its match score. Lower is closer;
// 0 is an exact match, 1 no resemblance at all.
type ScoredEntry struct {
	Entry CatalogEntry
	Score float64
}

// CatalogSummary is the caller-facing view of a matched entry.
type CatalogSummary struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Unit  string  `json:"unit"`
	Notes string  `json:"notes"`
}

// Summary returns the caller-facing view of the entry.
func (e CatalogEntry) Summary() CatalogSummary {
	return CatalogSummary{Name: e.Name, Price: e.Price, Unit: e.Unit, Notes: e.Notes}
}
