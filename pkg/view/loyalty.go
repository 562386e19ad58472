package view

import (
	"time"

	"sbtcstore.com/app/internal/modules/currency"
	"sbtcstore.com/app/internal/modules/loyalty"
)

type TierInfo struct {
	Name       string   `json:"name"`
	MinPoints  int      `json:"minPoints"`
	Multiplier float64  `json:"multiplier"`
	Benefits   []string `json:"benefits"`
}

type Reward struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	PointsCost    int     `json:"pointsCost"`
	DiscountValue float64 `json:"discountValue"`
	DiscountType  string  `json:"discountType"`
	MinOrderValue float64 `json:"minOrderValue,omitempty"`
	MaxDiscount   float64 `json:"maxDiscount,omitempty"`
	MinTier       string  `json:"minTier,omitempty"`
}

type Transaction struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Points      int        `json:"points"`
	Description string     `json:"description"`
	OrderID     string     `json:"orderId,omitempty"`
	Timestamp   time.Time  `json:"timestamp"`
	ExpiryDate  *time.Time `json:"expiryDate,omitempty"`
}

type Loyalty struct {
	Balance         int       `json:"points"`
	Tier            TierInfo  `json:"tier"`
	NextTier        *TierInfo `json:"nextTier,omitempty"`
	TierProgress    float64   `json:"tierProgress"`
	PointsToNext    int       `json:"pointsToNextTier"`
	AppliedReward   *Reward   `json:"appliedReward,omitempty"`
	AppliedDiscount float64   `json:"appliedDiscount"`
	DiscountFmt     string    `json:"appliedDiscountFormatted,omitempty"`
	LastEarned      int       `json:"lastEarnedPoints"`
	Available       []Reward  `json:"availableRewards"`
	Error           string    `json:"error,omitempty"`
}

func TierFromInfo(t loyalty.TierInfo) TierInfo {
	return TierInfo{
		Name:       string(t.Name),
		MinPoints:  t.MinPoints,
		Multiplier: t.Multiplier,
		Benefits:   t.Benefits,
	}
}

func RewardFromCatalog(r loyalty.Reward) Reward {
	return Reward{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		PointsCost:    r.PointsCost,
		DiscountValue: r.DiscountValue,
		DiscountType:  string(r.DiscountType),
		MinOrderValue: r.MinOrderValue,
		MaxDiscount:   r.MaxDiscount,
		MinTier:       string(r.MinTier),
	}
}

func TransactionFromEntry(e loyalty.Entry) Transaction {
	return Transaction{
		ID:          e.ID,
		Type:        string(e.Kind),
		Points:      e.Points,
		Description: e.Description,
		OrderID:     e.OrderID,
		Timestamp:   e.Timestamp,
		ExpiryDate:  e.ExpiryDate,
	}
}

func Transactions(entries []loyalty.Entry) []Transaction {
	out := make([]Transaction, len(entries))
	for i, e := range entries {
		out[i] = TransactionFromEntry(e)
	}
	return out
}

func LoyaltyFromSummary(s loyalty.Summary, available []loyalty.Reward) Loyalty {
	v := Loyalty{
		Balance:         s.Balance,
		Tier:            TierFromInfo(s.Tier),
		TierProgress:    s.TierProgress,
		PointsToNext:    s.PointsToNext,
		AppliedDiscount: s.AppliedDiscount,
		LastEarned:      s.LastEarned,
		Available:       make([]Reward, len(available)),
		Error:           s.Error,
	}
	if s.NextTier != nil {
		next := TierFromInfo(*s.NextTier)
		v.NextTier = &next
	}
	if s.AppliedReward != nil {
		r := RewardFromCatalog(*s.AppliedReward)
		v.AppliedReward = &r
		v.DiscountFmt = currency.FormatSAR(s.AppliedDiscount)
	}
	for i, r := range available {
		v.Available[i] = RewardFromCatalog(r)
	}
	return v
}
