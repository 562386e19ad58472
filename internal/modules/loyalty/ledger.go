package loyalty

import "time"

// EntryKind is the reason code of a ledger entry.
type EntryKind string

const (
	EntryEarned   EntryKind = "EARNED"
	EntryRedeemed EntryKind = "REDEEMED"
	EntryExpired  EntryKind = "EXPIRED"
	EntryBonus    EntryKind = "BONUS"
)

// Entry is an immutable record of a point balance change. The ledger is
// append-only; the balance is always the sum of entry deltas.
//
// JSON field names match the persisted loyalty transaction format.
type Entry struct {
	ID          string     `json:"id"`
	Kind        EntryKind  `json:"type"`
	Points      int        `json:"points"` // signed delta
	Description string     `json:"description"`
	OrderID     string     `json:"orderId,omitempty"`
	Timestamp   time.Time  `json:"timestamp"`
	ExpiryDate  *time.Time `json:"expiryDate,omitempty"`
	Ref         string     `json:"ref,omitempty"` // EXPIRED entries reference the earned entry
}

// balanceOf sums the signed deltas of a ledger.
func balanceOf(entries []Entry) int {
	total := 0
	for _, e := range entries {
		total += e.Points
	}
	return total
}
