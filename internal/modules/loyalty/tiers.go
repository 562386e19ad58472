package loyalty

// Tier is a named loyalty level determined solely by cumulative point balance.
type Tier string

const (
	TierBronze   Tier = "BRONZE"
	TierSilver   Tier = "SILVER"
	TierGold     Tier = "GOLD"
	TierPlatinum Tier = "PLATINUM"
)

// TierInfo is a static tier definition. The catalog is fixed; nothing
// mutates it at runtime.
type TierInfo struct {
	Name       Tier
	MinPoints  int
	Multiplier float64
	Benefits   []string
}

// Tiers is ordered by ascending MinPoints. Thresholds are fixed and
// non-overlapping: 0, 1000, 5000, 15000.
var Tiers = []TierInfo{
	{
		Name:       TierBronze,
		MinPoints:  0,
		Multiplier: 1.0,
		Benefits:   []string{"Basic rewards", "Standard support"},
	},
	{
		Name:       TierSilver,
		MinPoints:  1000,
		Multiplier: 1.2,
		Benefits:   []string{"Priority support", "Early access", "Birthday bonus"},
	},
	{
		Name:       TierGold,
		MinPoints:  5000,
		Multiplier: 1.5,
		Benefits:   []string{"Free shipping", "Exclusive products", "Extended returns"},
	},
	{
		Name:       TierPlatinum,
		MinPoints:  15000,
		Multiplier: 2.0,
		Benefits:   []string{"Personal shopper", "VIP events", "Premium support"},
	},
}

// tierRank returns the index of t in Tiers, or -1.
func tierRank(t Tier) int {
	for i, ti := range Tiers {
		if ti.Name == t {
			return i
		}
	}
	return -1
}

// TierByName looks up a tier definition by name.
func TierByName(t Tier) (TierInfo, bool) {
	if i := tierRank(t); i >= 0 {
		return Tiers[i], true
	}
	return TierInfo{}, false
}
