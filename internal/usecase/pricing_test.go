package usecase

import (
	"testing"

	"github.com/yourusername/customs-ai-bot/internal/domain/entity"
)

func fp(v float64) *float64 { return &v }

func TestComputeAmountTV(t *testing.T) {
	entry := entity.CatalogEntry{Name: "شاشات", Price: 4, Unit: "بوصه"}
	got, ok := computeAmount(entry, entity.IntentTV, entity.SlotSet{Inches: fp(50)})
	if !ok || got != 200 {
		t.Fatalf("computeAmount(tv, 50in) = %v, %v, want 200, true", got, ok)
	}
}

func TestComputeAmountPieces(t *testing.T) {
	entry := entity.CatalogEntry{Name: "مودمات", Price: 10, Unit: "حبه"}

	got, ok := computeAmount(entry, entity.IntentPieces, entity.SlotSet{Cartons: fp(2), PerCarton: fp(12)})
	if !ok || got != 240 {
		t.Fatalf("computeAmount(pcs, 2x12) = %v, %v, want 240, true", got, ok)
	}

	// A direct count short-circuits the carton pair.
	got, ok = computeAmount(entry, entity.IntentPieces, entity.SlotSet{Count: fp(24)})
	if !ok || got != 240 {
		t.Fatalf("computeAmount(pcs, count 24) = %v, %v, want 240, true", got, ok)
	}
}

func TestComputeAmountDozen(t *testing.T) {
	entry := entity.CatalogEntry{Name: "جوارب", Price: 5, Unit: "درزن"}

	got, ok := computeAmount(entry, entity.IntentDozen, entity.SlotSet{Cartons: fp(3), DzPerCarton: fp(10)})
	if !ok || got != 150 {
		t.Fatalf("computeAmount(dz, 3x10) = %v, %v, want 150, true", got, ok)
	}

	got, ok = computeAmount(entry, entity.IntentDozen, entity.SlotSet{Pieces: fp(120)})
	if !ok || got != 50 {
		t.Fatalf("computeAmount(dz, 120 pieces) = %v, %v, want 50, true", got, ok)
	}
}

func TestComputeAmountWeightDirection(t *testing.T) {
	// Ton-priced entry: tons go straight in, kilograms divide by 1000.
	perTon := entity.CatalogEntry{Name: "حديد", Price: 100, Unit: "طن"}
	if got, ok := computeAmount(perTon, entity.IntentWeight, entity.SlotSet{Tons: fp(3)}); !ok || got != 300 {
		t.Fatalf("ton entry, 3 tons = %v, %v, want 300, true", got, ok)
	}
	if got, ok := computeAmount(perTon, entity.IntentWeight, entity.SlotSet{Kg: fp(500)}); !ok || got != 50 {
		t.Fatalf("ton entry, 500 kg = %v, %v, want 50, true", got, ok)
	}

	// Kilogram-priced entry: the conversion flips.
	perKg := entity.CatalogEntry{Name: "رولات شفافه", Price: 2, Unit: "كيلو"}
	if got, ok := computeAmount(perKg, entity.IntentRolls, entity.SlotSet{Kg: fp(40), RollType: entity.RollTransparent}); !ok || got != 80 {
		t.Fatalf("kg entry, 40 kg = %v, %v, want 80, true", got, ok)
	}
	if got, ok := computeAmount(perKg, entity.IntentRolls, entity.SlotSet{Tons: fp(2), RollType: entity.RollTransparent}); !ok || got != 4000 {
		t.Fatalf("kg entry, 2 tons = %v, %v, want 4000, true", got, ok)
	}
}

func TestComputeAmountBattery(t *testing.T) {
	perAh := entity.CatalogEntry{Name: "بطاريات", Price: 1.5, Unit: "امبير"}
	got, ok := computeAmount(perAh, entity.IntentBattery, entity.SlotSet{BatteryType: entity.BatteryLithium, Ah: fp(200)})
	if !ok || got != 300 {
		t.Fatalf("ah battery = %v, %v, want 300, true", got, ok)
	}

	// Piece-priced battery without an amp-hour rating defaults to one unit.
	perPc := entity.CatalogEntry{Name: "بطاريات جافه", Price: 20, Unit: "حبه"}
	got, ok = computeAmount(perPc, entity.IntentBattery, entity.SlotSet{BatteryType: entity.BatteryDry})
	if !ok || got != 20 {
		t.Fatalf("piece battery = %v, %v, want 20, true", got, ok)
	}

	// The chemistry is mandatory.
	if _, ok := computeAmount(perAh, entity.IntentBattery, entity.SlotSet{Ah: fp(200)}); ok {
		t.Fatal("battery without type computed, want not ok")
	}
}

func TestComputeAmountRejectsDegenerate(t *testing.T) {
	entry := entity.CatalogEntry{Name: "مودمات", Price: 10, Unit: "حبه"}
	if _, ok := computeAmount(entry, entity.IntentPieces, entity.SlotSet{Count: fp(0)}); ok {
		t.Fatal("zero count computed, want not ok")
	}
	if _, ok := computeAmount(entity.CatalogEntry{Name: "x", Price: 0}, entity.IntentGeneric, entity.SlotSet{Qty: fp(3)}); ok {
		t.Fatal("zero price computed, want not ok")
	}
}

func TestClearInvalidNumeric(t *testing.T) {
	s := entity.SlotSet{Cartons: fp(0), PerCarton: fp(12)}
	clearInvalidNumeric(&s)
	if s.Cartons != nil {
		t.Fatal("zero cartons kept after clearInvalidNumeric")
	}
	if s.PerCarton == nil || *s.PerCarton != 12 {
		t.Fatal("valid perCarton dropped by clearInvalidNumeric")
	}
}
