package view

import (
	"sbtcstore.com/app/internal/modules/checkout"
	"sbtcstore.com/app/internal/modules/currency"
	"sbtcstore.com/app/internal/modules/pricing"
)

type Quote struct {
	Subtotal           float64 `json:"subtotal"`
	LoyaltyDiscount    float64 `json:"loyaltyDiscount"`
	DiscountedSubtotal float64 `json:"discountedSubtotal"`
	VAT                float64 `json:"vat"`
	ShippingFee        float64 `json:"shippingFee"`
	PaymentSurcharge   float64 `json:"paymentSurcharge"`
	GrandTotal         float64 `json:"grandTotal"`
	GrandTotalFmt      string  `json:"grandTotalFormatted"`
	PointsToEarn       int     `json:"pointsToEarn,omitempty"`
}

type SubmitResult struct {
	OrderID      string `json:"orderId"`
	Quote        Quote  `json:"quote"`
	EarnedPoints int    `json:"earnedPoints"`
	BonusPoints  int    `json:"bonusPoints"`
	TierUpgraded bool   `json:"tierUpgraded"`
	RedirectURL  string `json:"redirectUrl,omitempty"`
}

func QuoteFromPricing(q pricing.Quote) Quote {
	return Quote{
		Subtotal:           q.Subtotal,
		LoyaltyDiscount:    q.LoyaltyDiscount,
		DiscountedSubtotal: q.DiscountedSubtotal,
		VAT:                q.VAT,
		ShippingFee:        q.ShippingFee,
		PaymentSurcharge:   q.PaymentSurcharge,
		GrandTotal:         q.GrandTotal,
		GrandTotalFmt:      currency.FormatSAR(q.GrandTotal),
	}
}

func SubmitResultFrom(r checkout.SubmitResult) SubmitResult {
	return SubmitResult{
		OrderID:      r.OrderID,
		Quote:        QuoteFromPricing(r.Quote),
		EarnedPoints: r.EarnedPoints,
		BonusPoints:  r.BonusPoints,
		TierUpgraded: r.TierUpgraded,
		RedirectURL:  r.RedirectURL,
	}
}
