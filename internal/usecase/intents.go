package usecase

import (
	"strings"

	"github.com/yourusername/customs-ai-bot/internal/domain/entity"
	"github.com/yourusername/customs-ai-bot/pkg/artext"
)

// intentKeywords is scanned in declared priority order; the first keyword
// found as a substring of the normalized input decides the intent. Keywords
// are normalized forms.
var intentKeywords = []struct {
	kind     entity.IntentKind
	keywords []string
}{
	{entity.IntentTV, []string{"شاشه", "شاشات", "تلفزيون", "تلفاز", "بوصه", "انش"}},
	{entity.IntentBattery, []string{"بطاريه", "بطاريات", "بطاري", "امبير"}},
	{entity.IntentRolls, []string{"رولات", "رول"}},
	{entity.IntentDozen, []string{"درزن", "درازن", "دزينه"}},
	{entity.IntentWeight, []string{"حديد", "اسمنت", "طن", "كيلو", "كجم"}},
	{entity.IntentPieces, []string{"كرتون", "كراتين", "حبه", "قطعه", "مودم"}},
}

// Follow-up prompts, one slot each, in asking order.
var (
	promptInches = entity.SlotSpec{
		Name:    entity.SlotInches,
		Prompt:  "كم حجم الشاشة بالبوصة؟",
		Choices: []string{"32", "43", "50", "55", "65"},
	}
	promptCartons = entity.SlotSpec{
		Name:   entity.SlotCartons,
		Prompt: "كم عدد الكراتين؟",
	}
	promptPerCarton = entity.SlotSpec{
		Name:   entity.SlotPerCarton,
		Prompt: "كم حبة داخل الكرتون الواحد؟",
	}
	promptDzPerCarton = entity.SlotSpec{
		Name:   entity.SlotDzPerCarton,
		Prompt: "كم درزن داخل الكرتون الواحد؟",
	}
	promptWeight = entity.SlotSpec{
		Name:   entity.SlotKg,
		Prompt: "كم الوزن؟ اكتب بالكيلو (مثال: 500 كيلو) أو بالطن (مثال: 2 طن)",
	}
	promptRollType = entity.SlotSpec{
		Name:    entity.SlotRollType,
		Prompt:  "ما نوع الرول؟",
		Choices: []string{"شفاف", "مطبوع"},
	}
	promptBatteryType = entity.SlotSpec{
		Name:    entity.SlotBatteryType,
		Prompt:  "ما نوع البطارية؟",
		Choices: []string{"ليثيوم", "جافة", "سائلة"},
	}
	promptAh = entity.SlotSpec{
		Name:   entity.SlotAh,
		Prompt: "كم أمبير البطارية؟",
	}
	promptQty = entity.SlotSpec{
		Name:   entity.SlotQty,
		Prompt: "كم الكمية المطلوبة؟",
	}
)

// classifyIntent maps a resolved entry name (or the raw query) to an intent
// kind: keyword table first, then the entry's unit family, then per-piece as
// the default.
func classifyIntent(entryNameOrQuery string, unit entity.UnitKind) entity.IntentKind {
	norm := artext.Normalize(entryNameOrQuery)
	for _, row := range intentKeywords {
		for _, kw := range row.keywords {
			if strings.Contains(norm, kw) {
				return row.kind
			}
		}
	}
	switch unit {
	case entity.UnitPiece:
		return entity.IntentPieces
	case entity.UnitDozen:
		return entity.IntentDozen
	case entity.UnitKilogram, entity.UnitTon:
		return entity.IntentWeight
	case entity.UnitAmpHour:
		return entity.IntentBattery
	case entity.UnitInch:
		return entity.IntentTV
	default:
		return entity.IntentPieces
	}
}

// missingSlots returns, in asking order, the slots still needed before the
// given intent can be priced. Alternative slot groups (count vs
// cartons×perCarton) count as satisfied as soon as one alternative is
// complete.
func missingSlots(kind entity.IntentKind, unit entity.UnitKind, slots entity.SlotSet) []entity.SlotSpec {
	var missing []entity.SlotSpec
	switch kind {
	case entity.IntentTV:
		if slots.Inches == nil {
			missing = append(missing, promptInches)
		}
	case entity.IntentPieces:
		if slots.Count != nil {
			return nil
		}
		if slots.Cartons == nil {
			missing = append(missing, promptCartons)
		}
		if slots.PerCarton == nil {
			missing = append(missing, promptPerCarton)
		}
	case entity.IntentDozen:
		if slots.Pieces != nil {
			return nil
		}
		if slots.Cartons == nil {
			missing = append(missing, promptCartons)
		}
		if slots.DzPerCarton == nil {
			missing = append(missing, promptDzPerCarton)
		}
	case entity.IntentRolls:
		if slots.RollType == "" {
			missing = append(missing, promptRollType)
		}
		if slots.Kg == nil && slots.Tons == nil {
			missing = append(missing, promptWeight)
		}
	case entity.IntentWeight:
		if slots.Kg == nil && slots.Tons == nil {
			missing = append(missing, promptWeight)
		}
	case entity.IntentBattery:
		if slots.BatteryType == "" {
			missing = append(missing, promptBatteryType)
		}
		// Amp-hour priced batteries need the rating; piece-priced ones
		// default to a single unit.
		if unit == entity.UnitAmpHour && slots.Ah == nil {
			missing = append(missing, promptAh)
		}
	default:
		if slots.Qty == nil {
			missing = append(missing, promptQty)
		}
	}
	return missing
}

// rollTypeTokens are the normalized name tokens distinguishing roll
// sub-variants in the catalog.
var rollTypeTokens = map[string][]string{
	entity.RollTransparent: {"شفاف", "شفافه"},
	entity.RollPrinted:     {"مطبوع", "مطبوعه"},
}
