// Package pricing computes the itemized checkout total. Everything here is
// pure and idempotent: it runs on every input change without side effects.
package pricing

import (
	"sbtcstore.com/app/internal/modules/currency"
)

// DeliveryMethod selects the shipping rule.
type DeliveryMethod string

const (
	DeliveryStandard DeliveryMethod = "standard"
	DeliveryExpress  DeliveryMethod = "express"
)

// PaymentMethod selects the surcharge rule.
type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentTabby  PaymentMethod = "tabby"
	PaymentTamara PaymentMethod = "tamara"
	PaymentCOD    PaymentMethod = "cod"
)

const (
	// FreeShippingThreshold: standard shipping is free at or above this
	// discounted subtotal.
	FreeShippingThreshold = 187.5
	StandardShippingFee   = 37.5
	ExpressShippingFee    = 48.75
	CODFee                = 7.5
)

// QuoteInput are the pipeline's inputs; the quote is a function of nothing
// else.
type QuoteInput struct {
	Subtotal        float64
	LoyaltyDiscount float64
	Delivery        DeliveryMethod
	Payment         PaymentMethod
}

// Quote is the ephemeral itemized total. Never persisted, always
// recomputed.
type Quote struct {
	Subtotal           float64
	LoyaltyDiscount    float64
	DiscountedSubtotal float64
	VAT                float64
	ShippingFee        float64
	PaymentSurcharge   float64
	GrandTotal         float64
}

// Compute prices the order.
func Compute(in QuoteInput) Quote {
	discounted := in.Subtotal - in.LoyaltyDiscount
	if discounted < 0 {
		discounted = 0
	}

	vat := currency.VAT(discounted)
	shipping := shippingFee(in.Delivery, discounted)
	surcharge := 0.0
	if in.Payment == PaymentCOD {
		surcharge = CODFee
	}

	return Quote{
		Subtotal:           in.Subtotal,
		LoyaltyDiscount:    in.LoyaltyDiscount,
		DiscountedSubtotal: discounted,
		VAT:                vat,
		ShippingFee:        shipping,
		PaymentSurcharge:   surcharge,
		GrandTotal:         discounted + vat + shipping + surcharge,
	}
}

func shippingFee(method DeliveryMethod, discountedSubtotal float64) float64 {
	if method == DeliveryExpress {
		return ExpressShippingFee
	}
	if discountedSubtotal >= FreeShippingThreshold {
		return 0
	}
	return StandardShippingFee
}

// ValidDelivery reports whether the method is one the pipeline knows.
func ValidDelivery(m DeliveryMethod) bool {
	return m == DeliveryStandard || m == DeliveryExpress
}

// ValidPayment reports whether the method is one the pipeline knows.
func ValidPayment(m PaymentMethod) bool {
	switch m {
	case PaymentCard, PaymentTabby, PaymentTamara, PaymentCOD:
		return true
	}
	return false
}
