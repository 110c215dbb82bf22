package constants

// Duty model defaults, taken from the original calculator configuration.
const (
	// DefaultExchangeRateYER is the YER per 1 USD rate used when none is
	// configured.
	DefaultExchangeRateYER = 910.0

	// DefaultFactor5 converts a USD amount in the 5% duty category.
	DefaultFactor5 = 0.1325

	// DefaultFactor10 converts a USD amount in the 10% duty category.
	DefaultFactor10 = 0.265

	// DefaultDutyCategory is used when the notes carry no category marker.
	// The higher bracket is the conservative default.
	DefaultDutyCategory = 10
)

// Fuzzy matching thresholds (scores, lower = closer).
const (
	// DirectAcceptScore accepts a candidate without further checks.
	DirectAcceptScore = 0.35

	// FuzzyAcceptScore is the outer acceptance bound after token-overlap
	// and trigram rescoring.
	FuzzyAcceptScore = 0.45

	// MaxSuggestions caps the nearest-name hints on a failed lookup.
	MaxSuggestions = 3

	// MaxQueryExpansions bounds synonym-expansion combinations so search
	// cost stays flat no matter how many variants a token has.
	MaxQueryExpansions = 10
)

// Session handling.
const (
	// DefaultSessionTTLMinutes evicts a dialogue idle longer than this.
	DefaultSessionTTLMinutes = 30

	// SessionCleanupMinutes is the eviction sweep interval.
	SessionCleanupMinutes = 5
)

// Catalog loading.
const (
	// DefaultCatalogRefreshMinutes is the out-of-band reload interval.
	DefaultCatalogRefreshMinutes = 15
)

// AI fallback model settings.
const (
	GeminiModelName = "gemini-2.5-flash"
	AITemperature   = 0.3
	AITopK          = 20
	AITopP          = 0.9
)
