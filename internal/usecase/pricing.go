package usecase

import (
	"math"

	"github.com/yourusername/customs-ai-bot/internal/domain/entity"
)

// computeAmount turns a complete slot set into a USD amount for the entry.
// ok is false when the inputs are inconsistent or yield a non-positive
// amount; the dialogue re-prompts instead of answering with a degenerate
// number. No rounding happens here — only the final duty conversion rounds.
func computeAmount(e entity.CatalogEntry, kind entity.IntentKind, slots entity.SlotSet) (float64, bool) {
	if !(e.Price > 0) {
		return 0, false
	}

	pos := func(p *float64) (float64, bool) {
		if p == nil || !(*p > 0) {
			return 0, false
		}
		return *p, true
	}

	var amount float64
	switch kind {
	case entity.IntentTV:
		inches, ok := pos(slots.Inches)
		if !ok {
			return 0, false
		}
		amount = inches * e.Price

	case entity.IntentPieces:
		if count, ok := pos(slots.Count); ok {
			amount = count * e.Price
			break
		}
		cartons, ok1 := pos(slots.Cartons)
		per, ok2 := pos(slots.PerCarton)
		if !ok1 || !ok2 {
			return 0, false
		}
		amount = cartons * per * e.Price

	case entity.IntentDozen:
		if cartons, ok1 := pos(slots.Cartons); ok1 {
			if dz, ok2 := pos(slots.DzPerCarton); ok2 {
				amount = cartons * dz * e.Price
				break
			}
		}
		pieces, ok := pos(slots.Pieces)
		if !ok {
			return 0, false
		}
		amount = pieces / 12 * e.Price

	case entity.IntentWeight, entity.IntentRolls:
		kg, hasKg := pos(slots.Kg)
		tons, hasTons := pos(slots.Tons)
		if !hasKg && !hasTons {
			return 0, false
		}
		// The catalog's listed unit decides the conversion direction; the
		// other unit is converted into it.
		if e.UnitKind() == entity.UnitTon {
			if hasTons {
				amount = tons * e.Price
			} else {
				amount = kg / 1000 * e.Price
			}
		} else {
			if hasKg {
				amount = kg * e.Price
			} else {
				amount = tons * 1000 * e.Price
			}
		}

	case entity.IntentBattery:
		if slots.BatteryType == "" {
			return 0, false
		}
		if e.UnitKind() == entity.UnitAmpHour {
			ah, ok := pos(slots.Ah)
			if !ok {
				return 0, false
			}
			amount = ah * e.Price
			break
		}
		count := 1.0
		if c, ok := pos(slots.Count); ok {
			count = c
		}
		amount = count * e.Price

	default:
		qty, ok := pos(slots.Qty)
		if !ok {
			return 0, false
		}
		amount = qty * e.Price
	}

	if !(amount > 0) || math.IsInf(amount, 0) || math.IsNaN(amount) {
		return 0, false
	}
	return amount, true
}

// clearInvalidNumeric drops zero-valued numeric slots so the dialogue asks
// for them again instead of looping on an indeterminate computation.
func clearInvalidNumeric(slots *entity.SlotSet) {
	drop := func(p **float64) {
		if *p != nil && !(**p > 0) {
			*p = nil
		}
	}
	drop(&slots.Count)
	drop(&slots.Cartons)
	drop(&slots.PerCarton)
	drop(&slots.DzPerCarton)
	drop(&slots.Pieces)
	drop(&slots.Kg)
	drop(&slots.Tons)
	drop(&slots.Inches)
	drop(&slots.Ah)
	drop(&slots.Qty)
}
