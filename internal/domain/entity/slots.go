package entity

// Slot names shared by the extractor, the intent table and the calculator.
const (
	SlotCount       = "count"
	SlotCartons     = "cartons"
	SlotPerCarton   = "perCarton"
	SlotDzPerCarton = "dzPerCarton"
	SlotPieces      = "pieces"
	SlotKg          = "kg"
	SlotTons        = "tons"
	SlotInches      = "inches"
	SlotAh          = "ah"
	SlotQty         = "qty"
	SlotRollType    = "rollType"
	SlotBatteryType = "batteryType"
)

// Roll type values.
const (
	RollTransparent = "transparent"
	RollPrinted     = "printed"
)

// Battery chemistry values.
const (
	BatteryLithium = "lithium"
	BatteryDry     = "dry"
	BatteryLiquid  = "liquid"
)

// SlotSet holds the numeric and categorical inputs gathered so far. A nil
// numeric field means "unknown", never zero. Categorical fields use "" for
// unknown.
type SlotSet struct {
	Count       *float64 `json:"count,omitempty"`
	Cartons     *float64 `json:"cartons,omitempty"`
	PerCarton   *float64 `json:"perCarton,omitempty"`
	DzPerCarton *float64 `json:"dzPerCarton,omitempty"`
	Pieces      *float64 `json:"pieces,omitempty"`
	Kg          *float64 `json:"kg,omitempty"`
	Tons        *float64 `json:"tons,omitempty"`
	Inches      *float64 `json:"inches,omitempty"`
	Ah          *float64 `json:"ah,omitempty"`
	Qty         *float64 `json:"qty,omitempty"`
	RollType    string   `json:"rollType,omitempty"`
	BatteryType string   `json:"batteryType,omitempty"`
}

// Merge copies every value present in other into s. Values already set are
// overwritten, never unset.
func (s *SlotSet) Merge(other SlotSet) {
	if other.Count != nil {
		s.Count = other.Count
	}
	if other.Cartons != nil {
		s.Cartons = other.Cartons
	}
	if other.PerCarton != nil {
		s.PerCarton = other.PerCarton
	}
	if other.DzPerCarton != nil {
		s.DzPerCarton = other.DzPerCarton
	}
	if other.Pieces != nil {
		s.Pieces = other.Pieces
	}
	if other.Kg != nil {
		s.Kg = other.Kg
	}
	if other.Tons != nil {
		s.Tons = other.Tons
	}
	if other.Inches != nil {
		s.Inches = other.Inches
	}
	if other.Ah != nil {
		s.Ah = other.Ah
	}
	if other.Qty != nil {
		s.Qty = other.Qty
	}
	if other.RollType != "" {
		s.RollType = other.RollType
	}
	if other.BatteryType != "" {
		s.BatteryType = other.BatteryType
	}
}

// SetNumeric sets a numeric slot by name. Unknown names are ignored.
func (s *SlotSet) SetNumeric(name string, v float64) {
	switch name {
	case SlotCount:
		s.Count = &v
	case SlotCartons:
		s.Cartons = &v
	case SlotPerCarton:
		s.PerCarton = &v
	case SlotDzPerCarton:
		s.DzPerCarton = &v
	case SlotPieces:
		s.Pieces = &v
	case SlotKg:
		s.Kg = &v
	case SlotTons:
		s.Tons = &v
	case SlotInches:
		s.Inches = &v
	case SlotAh:
		s.Ah = &v
	case SlotQty:
		s.Qty = &v
	}
}

// Has reports whether the named slot carries a value.
func (s SlotSet) Has(name string) bool {
	switch name {
	case SlotCount:
		return s.Count != nil
	case SlotCartons:
		return s.Cartons != nil
	case SlotPerCarton:
		return s.PerCarton != nil
	case SlotDzPerCarton:
		return s.DzPerCarton != nil
	case SlotPieces:
		return s.Pieces != nil
	case SlotKg:
		return s.Kg != nil
	case SlotTons:
		return s.Tons != nil
	case SlotInches:
		return s.Inches != nil
	case SlotAh:
		return s.Ah != nil
	case SlotQty:
		return s.Qty != nil
	case SlotRollType:
		return s.RollType != ""
	case SlotBatteryType:
		return s.BatteryType != ""
	default:
		return false
	}
}

// IsEmpty reports whether no slot carries a value.
func (s SlotSet) IsEmpty() bool {
	return s.Count == nil && s.Cartons == nil && s.PerCarton == nil &&
		s.DzPerCarton == nil && s.Pieces == nil && s.Kg == nil &&
		s.Tons == nil && s.Inches == nil && s.Ah == nil && s.Qty == nil &&
		s.RollType == "" && s.BatteryType == ""
}
