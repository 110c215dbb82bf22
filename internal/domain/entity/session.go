package entity

import "time"

// ConversationState is a per-session accumulator of the resolved item, its
// intent and the slots filled so far. One state exists per session key; it
// is cleared after a successful computation or on idle eviction.
type ConversationState struct {
	SessionID    string
	Entry        *CatalogEntry
	Intent       IntentKind
	Slots        SlotSet
	PendingSlot  string // slot the last follow-up question asked for
	Query        string // normalized query the item was resolved from
	LastActivity time.Time
}

// Touch refreshes the idle timestamp.
func (s *ConversationState) Touch() {
	s.LastActivity = time.Now()
}
