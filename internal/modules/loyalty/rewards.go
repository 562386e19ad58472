package loyalty

// DiscountType classifies how a reward discounts the order.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
	DiscountShipping   DiscountType = "shipping"
)

// Reward is a static catalog entry redeemable for points. Whether it is
// available to a given user is always derived (balance, active flag, tier),
// never stored.
type Reward struct {
	ID            string
	Name          string
	Description   string
	PointsCost    int
	DiscountValue float64
	DiscountType  DiscountType
	MinOrderValue float64 // 0 = no minimum
	MaxDiscount   float64 // 0 = no cap
	MinTier       Tier    // "" = no tier restriction
	IsActive      bool
}

var Rewards = []Reward{
	{
		ID:            "discount-5",
		Name:          "5% Discount",
		Description:   "Get 5% off your entire order",
		PointsCost:    500,
		DiscountValue: 5,
		DiscountType:  DiscountPercentage,
		MaxDiscount:   100,
		IsActive:      true,
	},
	{
		ID:            "discount-10",
		Name:          "10% Discount",
		Description:   "Get 10% off your entire order",
		PointsCost:    1000,
		DiscountValue: 10,
		DiscountType:  DiscountPercentage,
		MaxDiscount:   200,
		IsActive:      true,
	},
	{
		ID:            "discount-15",
		Name:          "15% Discount",
		Description:   "Get 15% off your entire order (Gold+ only)",
		PointsCost:    1500,
		DiscountValue: 15,
		DiscountType:  DiscountPercentage,
		MaxDiscount:   300,
		MinTier:       TierSilver,
		IsActive:      true,
	},
	{
		ID:            "fixed-25",
		Name:          "SAR 25 Off",
		Description:   "Get SAR 25 off your order",
		PointsCost:    400,
		DiscountValue: 25,
		DiscountType:  DiscountFixed,
		MinOrderValue: 100,
		IsActive:      true,
	},
	{
		ID:            "fixed-50",
		Name:          "SAR 50 Off",
		Description:   "Get SAR 50 off your order",
		PointsCost:    750,
		DiscountValue: 50,
		DiscountType:  DiscountFixed,
		MinOrderValue: 200,
		IsActive:      true,
	},
	{
		ID:            "fixed-100",
		Name:          "SAR 100 Off",
		Description:   "Get SAR 100 off your order",
		PointsCost:    1500,
		DiscountValue: 100,
		DiscountType:  DiscountFixed,
		MinOrderValue: 400,
		IsActive:      true,
	},
	{
		ID:            "fixed-200",
		Name:          "SAR 200 Off",
		Description:   "Get SAR 200 off your order (Platinum only)",
		PointsCost:    2500,
		DiscountValue: 200,
		DiscountType:  DiscountFixed,
		MinOrderValue: 800,
		MinTier:       TierPlatinum,
		IsActive:      true,
	},
	{
		ID:            "free-shipping",
		Name:          "Free Express Shipping",
		Description:   "Get free express shipping on your order",
		PointsCost:    300,
		DiscountValue: 48.75,
		DiscountType:  DiscountShipping,
		IsActive:      true,
	},
}

// RewardByID looks up a catalog reward.
func RewardByID(id string) (Reward, bool) {
	for _, r := range Rewards {
		if r.ID == id {
			return r, true
		}
	}
	return Reward{}, false
}
