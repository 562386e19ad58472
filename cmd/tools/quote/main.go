// quote prices an order offline: same pipeline the checkout endpoint runs,
// handy for checking shipping and VAT math from the terminal.
//
// Usage:
//
//	go run ./cmd/tools/quote -subtotal 150 -discount 25 -delivery standard -payment cod
package main

import (
	"flag"
	"fmt"
	"log"

	"sbtcstore.com/app/internal/modules/currency"
	"sbtcstore.com/app/internal/modules/pricing"
)

func main() {
	subtotal := flag.Float64("subtotal", 0, "cart subtotal in SAR")
	discount := flag.Float64("discount", 0, "loyalty discount in SAR")
	delivery := flag.String("delivery", "standard", "standard | express")
	payment := flag.String("payment", "card", "card | tabby | tamara | cod")
	flag.Parse()

	d := pricing.DeliveryMethod(*delivery)
	p := pricing.PaymentMethod(*payment)
	if !pricing.ValidDelivery(d) {
		log.Fatalf("unknown delivery method: %s", *delivery)
	}
	if !pricing.ValidPayment(p) {
		log.Fatalf("unknown payment method: %s", *payment)
	}

	q := pricing.Compute(pricing.QuoteInput{
		Subtotal:        *subtotal,
		LoyaltyDiscount: *discount,
		Delivery:        d,
		Payment:         p,
	})

	fmt.Printf("Subtotal            %s\n", currency.FormatSAR(q.Subtotal))
	fmt.Printf("Loyalty discount   -%s\n", currency.FormatSAR(q.LoyaltyDiscount))
	fmt.Printf("After discount      %s\n", currency.FormatSAR(q.DiscountedSubtotal))
	fmt.Printf("VAT (15%%)           %s\n", currency.FormatSAR(q.VAT))
	fmt.Printf("Shipping            %s\n", currency.FormatSAR(q.ShippingFee))
	if q.PaymentSurcharge > 0 {
		fmt.Printf("COD fee             %s\n", currency.FormatSAR(q.PaymentSurcharge))
	}
	fmt.Printf("Grand total         %s\n", currency.FormatSAR(q.GrandTotal))
}
