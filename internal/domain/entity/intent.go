package entity

// IntentKind is the closed set of computation families. Each kind decides
// which slots a price computation needs.
type IntentKind int

const (
	IntentGeneric IntentKind = iota
	IntentTV                 // priced per inch
	IntentPieces             // per piece, possibly carton × per-carton
	IntentDozen              // per dozen
	IntentWeight             // per kilogram or ton
	IntentBattery            // per amp-hour, chemistry required
	IntentRolls              // weight-priced with a roll-type sub-variant
)

// String returns the stable tag used in logs and stored state.
func (k IntentKind) String() string {
	switch k {
	case IntentTV:
		return "tv"
	case IntentPieces:
		return "pcs"
	case IntentDozen:
		return "dz"
	case IntentWeight:
		return "kgOrTon"
	case IntentBattery:
		return "batteryTypeAh"
	case IntentRolls:
		return "rolls"
	default:
		return "generic"
	}
}

// SlotSpec describes one required input: its name, the follow-up question
// asked when it is missing, and an optional fixed choice list.
type SlotSpec struct {
	Name    string
	Prompt  string
	Choices []string
}
