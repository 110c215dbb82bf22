package usecase

import (
	"testing"

	"github.com/yourusername/customs-ai-bot/internal/domain/entity"
)

func TestClassifyIntentKeywords(t *testing.T) {
	tests := []struct {
		text string
		want entity.IntentKind
	}{
		{"شاشة سمارت", entity.IntentTV},
		{"تلفزيون 50 بوصة", entity.IntentTV},
		{"بطاريات ليثيوم", entity.IntentBattery},
		{"رولات تغليف", entity.IntentRolls},
		{"جوارب درزن", entity.IntentDozen},
		{"حديد تسليح", entity.IntentWeight},
		{"كرتون مودمات", entity.IntentPieces},
	}
	for _, tt := range tests {
		if got := classifyIntent(tt.text, entity.UnitUnspecified); got != tt.want {
			t.Errorf("classifyIntent(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestClassifyIntentUnitFallback(t *testing.T) {
	tests := []struct {
		unit entity.UnitKind
		want entity.IntentKind
	}{
		{entity.UnitDozen, entity.IntentDozen},
		{entity.UnitTon, entity.IntentWeight},
		{entity.UnitKilogram, entity.IntentWeight},
		{entity.UnitAmpHour, entity.IntentBattery},
		{entity.UnitInch, entity.IntentTV},
		{entity.UnitPiece, entity.IntentPieces},
		{entity.UnitUnspecified, entity.IntentPieces},
	}
	for _, tt := range tests {
		if got := classifyIntent("صنف عام", tt.unit); got != tt.want {
			t.Errorf("classifyIntent(unit %d) = %q, want %q", tt.unit, got, tt.want)
		}
	}
}

func TestMissingSlotsAlternatives(t *testing.T) {
	// A direct count satisfies the per-piece intent entirely.
	if got := missingSlots(entity.IntentPieces, entity.UnitPiece, entity.SlotSet{Count: fp(24)}); len(got) != 0 {
		t.Fatalf("pieces with count: %d missing, want 0", len(got))
	}
	// Without it both carton slots are asked, cartons first.
	got := missingSlots(entity.IntentPieces, entity.UnitPiece, entity.SlotSet{})
	if len(got) != 2 || got[0].Name != entity.SlotCartons || got[1].Name != entity.SlotPerCarton {
		t.Fatalf("pieces empty: got %+v, want cartons then perCarton", got)
	}

	// Dozen: a raw piece total stands in for the carton pair.
	if got := missingSlots(entity.IntentDozen, entity.UnitDozen, entity.SlotSet{Pieces: fp(120)}); len(got) != 0 {
		t.Fatalf("dozen with pieces: %d missing, want 0", len(got))
	}
}

func TestMissingSlotsBattery(t *testing.T) {
	// Chemistry always comes first.
	got := missingSlots(entity.IntentBattery, entity.UnitAmpHour, entity.SlotSet{})
	if len(got) == 0 || got[0].Name != entity.SlotBatteryType {
		t.Fatalf("battery empty: got %+v, want batteryType first", got)
	}
	// Amp-hour priced entries also need the rating.
	got = missingSlots(entity.IntentBattery, entity.UnitAmpHour, entity.SlotSet{BatteryType: entity.BatteryLithium})
	if len(got) != 1 || got[0].Name != entity.SlotAh {
		t.Fatalf("ah battery with type: got %+v, want ah", got)
	}
	// Piece-priced ones do not.
	if got := missingSlots(entity.IntentBattery, entity.UnitPiece, entity.SlotSet{BatteryType: entity.BatteryDry}); len(got) != 0 {
		t.Fatalf("piece battery with type: %d missing, want 0", len(got))
	}
}

func TestMissingSlotsRolls(t *testing.T) {
	got := missingSlots(entity.IntentRolls, entity.UnitKilogram, entity.SlotSet{})
	if len(got) != 2 || got[0].Name != entity.SlotRollType {
		t.Fatalf("rolls empty: got %+v, want rollType then weight", got)
	}
	if got := missingSlots(entity.IntentRolls, entity.UnitKilogram, entity.SlotSet{RollType: entity.RollPrinted, Kg: fp(40)}); len(got) != 0 {
		t.Fatalf("rolls complete: %d missing, want 0", len(got))
	}
}
