package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/yourusername/customs-ai-bot/internal/domain/entity"
	"github.com/yourusername/customs-ai-bot/pkg/artext"
)

const num = `(\d+(?:\.\d+)?)`

// numericSlotPatterns are tried in order against the normalized text; a
// match is blanked out so the same number cannot feed two slots. Compound
// patterns (per-carton) come before the plain ones they overlap with.
var numericSlotPatterns = []struct {
	slots    []string // a matched number fills every listed slot
	patterns []*regexp.Regexp
}{
	{
		slots: []string{entity.SlotPerCarton},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(num + `\s*(?:حبه|حبات|قطعه|قطع)\s+(?:في|داخل|لكل|بكل)\s+(?:كل\s+)?(?:ال)?كرتون`),
			regexp.MustCompile(`(?:ال)?كرتون\w*\s+(?:فيه|به|يحتوي)\s+` + num),
		},
	},
	{
		slots: []string{entity.SlotDzPerCarton},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(num + `\s*(?:درزن|درازن|دزينه)\s+(?:في|داخل|لكل|بكل)\s+(?:كل\s+)?(?:ال)?كرتون`),
			regexp.MustCompile(num + `\s*(?:درزن|درازن|دزينه)`),
			regexp.MustCompile(`(?:درزن|درازن|دزينه)\s*` + num),
		},
	},
	{
		slots: []string{entity.SlotCartons},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(num + `\s*(?:كرتون|كراتين|كرتونه)`),
			regexp.MustCompile(`(?:كرتون|كراتين)\s*` + num),
		},
	},
	{
		slots: []string{entity.SlotInches},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(num + `\s*(?:بوصه|انش|inch|in\b)`),
			regexp.MustCompile(`(?:بوصه|انش|inch)\s*` + num),
		},
	},
	{
		slots: []string{entity.SlotAh},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(num + `\s*(?:امبير|امبيرات|ah\b)`),
			regexp.MustCompile(`(?:امبير|امبيرات)\s*` + num),
		},
	},
	{
		slots: []string{entity.SlotTons},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(num + `\s*(?:طن|اطنان|ton)`),
			regexp.MustCompile(`(?:طن|اطنان)\s*` + num),
		},
	},
	{
		slots: []string{entity.SlotKg},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(num + `\s*(?:كيلو|كجم|كغ|kg)`),
			regexp.MustCompile(`(?:كيلو|كجم|كغ)\s*` + num),
		},
	},
	{
		// A piece count serves both the per-piece intent (count) and the
		// dozen intent (pieces); only one of them is ever read.
		slots: []string{entity.SlotCount, entity.SlotPieces},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(num + `\s*(?:حبه|حبات|قطعه|قطع)`),
			regexp.MustCompile(`(?:حبه|حبات|قطعه|قطع|عدد)\s*:?\s*` + num),
		},
	},
}

// categoricalMarkers map a normalized marker word (matched by token prefix)
// to a categorical slot value.
var categoricalMarkers = []struct {
	slot    string
	value   string
	markers []string
}{
	{entity.SlotRollType, entity.RollTransparent, []string{"شفاف"}},
	{entity.SlotRollType, entity.RollPrinted, []string{"مطبوع"}},
	{entity.SlotBatteryType, entity.BatteryLithium, []string{"ليثيوم"}},
	{entity.SlotBatteryType, entity.BatteryDry, []string{"جاف"}},
	{entity.SlotBatteryType, entity.BatteryLiquid, []string{"سائل"}},
}

// extractSlots scans normalized text for keyword-anchored numbers and
// categorical markers. When the text is nothing but a bare number and no
// keyword matched, the number fills pendingSlot (the slot the last question
// asked for). Extraction never invents a slot the text does not mention.
func extractSlots(normText, pendingSlot string) entity.SlotSet {
	var out entity.SlotSet
	if normText == "" {
		return out
	}

	work := normText
	for _, group := range numericSlotPatterns {
		for _, re := range group.patterns {
			loc := re.FindStringSubmatchIndex(work)
			if loc == nil {
				continue
			}
			raw := work[loc[2]:loc[3]]
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				continue
			}
			for _, slot := range group.slots {
				out.SetNumeric(slot, v)
			}
			// Blank the span so the number is consumed.
			work = work[:loc[0]] + strings.Repeat(" ", loc[1]-loc[0]) + work[loc[1]:]
			break
		}
	}

	for _, tok := range strings.Fields(normText) {
		for _, cm := range categoricalMarkers {
			for _, marker := range cm.markers {
				if strings.HasPrefix(tok, marker) {
					switch cm.slot {
					case entity.SlotRollType:
						if out.RollType == "" {
							out.RollType = cm.value
						}
					case entity.SlotBatteryType:
						if out.BatteryType == "" {
							out.BatteryType = cm.value
						}
					}
				}
			}
		}
	}

	// Bare-number fallback: "50" as an answer to "كم حجم الشاشة بالبوصة؟".
	if out.IsEmpty() && pendingSlot != "" {
		trimmed := strings.TrimSpace(normText)
		if artext.IsNumeric(trimmed) {
			if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
				out.SetNumeric(pendingSlot, v)
			}
		}
	}

	return out
}
