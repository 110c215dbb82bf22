package usecase

import (
	"math"
	"strings"
)

// DutyConfig carries the externally configured exchange rate and the
// per-category conversion factors.
type DutyConfig struct {
	ExchangeRateYER float64
	Factors         map[int]float64 // duty percentage → factor
	DefaultCategory int             // used when notes carry no marker
}

// parseDutyCategory reads the duty bracket out of an entry's notes. The
// catalog writes it as "الفئة5%" or "الفئة 10%" in the notes column; the 10%
// marker is checked first so "10%" is never misread through its "0%" tail.
func parseDutyCategory(notes string, defaultCategory int) int {
	squeezed := strings.Join(strings.Fields(notes), "")
	if strings.Contains(squeezed, "10%") {
		return 10
	}
	if strings.Contains(squeezed, "5%") {
		return 5
	}
	return defaultCategory
}

// convertDuty converts a USD amount into Yemeni rial duty for the category,
// rounded to the nearest rial. This is the only rounding step in the whole
// computation.
func convertDuty(amountUSD float64, category int, cfg DutyConfig) int64 {
	factor, ok := cfg.Factors[category]
	if !ok {
		factor = cfg.Factors[cfg.DefaultCategory]
	}
	return int64(math.Round(amountUSD * cfg.ExchangeRateYER * factor))
}
