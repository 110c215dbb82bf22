package entity

// ReplyKind tags the outcome of one dialogue turn.
type ReplyKind int

const (
	// ReplyFollowUp asks for the next missing slot.
	ReplyFollowUp ReplyKind = iota
	// ReplyComputed carries a finished duty estimate.
	ReplyComputed
	// ReplyNotFound means no catalog entry matched within threshold.
	ReplyNotFound
	// ReplyUnavailable means the catalog is empty or not loaded.
	ReplyUnavailable
)

// Reply is the closed result union of a dialogue turn. Exactly the fields of
// the tagged kind are meaningful; Text always carries the rendered message.
type Reply struct {
	Kind ReplyKind `json:"-"`

	Text string `json:"reply"`

	// Follow-up fields.
	Ask     string   `json:"-"`
	Choices []string `json:"quick,omitempty"`

	// Computed fields.
	AmountUSD float64         `json:"amount_usd,omitempty"`
	DutyPct   int             `json:"duty_pct,omitempty"`
	AmountYER int64           `json:"amount_yer,omitempty"`
	Item      *CatalogSummary `json:"matchedItem,omitempty"`
	OpenCalc  string          `json:"open_calc,omitempty"`

	// Not-found fields.
	Suggestions []string `json:"suggestions,omitempty"`
}
