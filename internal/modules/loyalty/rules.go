package loyalty

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// PointsPerSAR: 1 point per SAR 10 spent.
const PointsPerSAR = 0.1

// ExpiryMonths is how long earned points stay valid.
const ExpiryMonths = 12

// PointsEarned computes points for an order value under a tier multiplier.
// Base and bonus are floored separately, so SILVER on SAR 500 is 50 + 10.
func PointsEarned(orderValue float64, multiplier float64) int {
	if orderValue <= 0 {
		return 0
	}
	base := int(math.Floor(orderValue * PointsPerSAR))
	bonus := int(math.Floor(float64(base) * (multiplier - 1)))
	return base + bonus
}

// RewardDiscount computes the discount amount a reward yields on an order.
func RewardDiscount(r Reward, orderValue float64) float64 {
	switch r.DiscountType {
	case DiscountPercentage:
		d := orderValue * r.DiscountValue / 100
		if r.MaxDiscount > 0 && d > r.MaxDiscount {
			return r.MaxDiscount
		}
		return d
	case DiscountFixed:
		return r.DiscountValue
	case DiscountShipping:
		// Treated as a shipping-fee waiver amount.
		return r.DiscountValue
	default:
		return 0
	}
}

// ValidateRewardEligibility checks whether a reward can be applied. When a
// single condition fails, exactly one user-displayable reason comes back.
func ValidateRewardEligibility(r Reward, pointBalance int, orderValue float64, tier Tier) error {
	if !r.IsActive {
		return &EligibilityError{Reason: "This reward is not currently available"}
	}

	if pointBalance < r.PointsCost {
		return &EligibilityError{
			Reason: fmt.Sprintf("You need %d more points for this reward", r.PointsCost-pointBalance),
		}
	}

	if r.MinOrderValue > 0 && orderValue < r.MinOrderValue {
		return &EligibilityError{
			Reason: "This reward requires a minimum order of SAR " + strconv.FormatFloat(r.MinOrderValue, 'f', -1, 64),
		}
	}

	if r.MinTier != "" && tierRank(tier) < tierRank(r.MinTier) {
		if r.MinTier == TierPlatinum {
			return &EligibilityError{Reason: "This reward is exclusive to Platinum tier members"}
		}
		return &EligibilityError{
			Reason: fmt.Sprintf("This reward requires %s tier or higher", titleTier(r.MinTier)),
		}
	}

	return nil
}

// TierForPoints returns the highest tier whose threshold the balance meets.
func TierForPoints(points int) TierInfo {
	current := Tiers[0]
	for _, t := range Tiers {
		if points >= t.MinPoints {
			current = t
		}
	}
	return current
}

// NextTier returns the tier above t, or false at the top.
func NextTier(t Tier) (TierInfo, bool) {
	i := tierRank(t)
	if i < 0 || i >= len(Tiers)-1 {
		return TierInfo{}, false
	}
	return Tiers[i+1], true
}

// TierProgress is the percentage of the way from the current tier's
// threshold to the next, clamped to [0, 100]. Max tier is always 100.
func TierProgress(points int, tier Tier) float64 {
	cur, ok := TierByName(tier)
	if !ok {
		return 0
	}
	next, ok := NextTier(tier)
	if !ok {
		return 100
	}
	p := float64(points-cur.MinPoints) / float64(next.MinPoints-cur.MinPoints) * 100
	return math.Min(math.Max(p, 0), 100)
}

// PointsToNextTier returns how many points remain until the next tier,
// 0 at the max tier.
func PointsToNextTier(points int, tier Tier) int {
	next, ok := NextTier(tier)
	if !ok {
		return 0
	}
	if d := next.MinPoints - points; d > 0 {
		return d
	}
	return 0
}

// EventBonusPoints scales base points for a promotional event.
func EventBonusPoints(basePoints int, eventType string) int {
	multiplier := 1.0
	switch eventType {
	case "birthday":
		multiplier = 2.0
	case "anniversary":
		multiplier = 1.5
	case "promotion":
		multiplier = 1.25
	case "referral":
		multiplier = 1.0
	}
	return int(math.Floor(float64(basePoints) * multiplier))
}

// PointsExpiry returns when points earned at a given time expire.
func PointsExpiry(earnedAt time.Time) time.Time {
	return earnedAt.AddDate(0, ExpiryMonths, 0)
}

// ValidateTransaction sanity-checks a prospective ledger entry against the
// current balance.
func ValidateTransaction(kind EntryKind, points int, balance int) error {
	if kind == EntryRedeemed && -points > balance {
		return &EligibilityError{Reason: "Insufficient points balance for redemption"}
	}
	if kind == EntryEarned && points <= 0 {
		return &EligibilityError{Reason: "Earned points must be greater than zero"}
	}
	return nil
}

func titleTier(t Tier) string {
	s := strings.ToLower(string(t))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
