package checkout

import (
	"context"
	"log"

	"github.com/google/uuid"

	"sbtcstore.com/app/internal/modules/cart"
	"sbtcstore.com/app/internal/modules/loyalty"
	"sbtcstore.com/app/internal/modules/payments"
	"sbtcstore.com/app/internal/modules/pricing"
)

// Service sequences order finalization: price, collect payment, post the
// loyalty ledger, clear the cart. It holds no order state of its own.
type Service struct {
	provider payments.Provider
	baseURL  string
}

func NewService(provider payments.Provider, baseURL string) *Service {
	return &Service{provider: provider, baseURL: baseURL}
}

type SubmitInput struct {
	Cart     *cart.Engine
	Loyalty  *loyalty.Engine
	Delivery pricing.DeliveryMethod
	Payment  pricing.PaymentMethod
}

type SubmitResult struct {
	OrderID      string
	Quote        pricing.Quote
	EarnedPoints int
	BonusPoints  int
	TierUpgraded bool
	RedirectURL  string
}

// QuoteFor recomputes the itemized total for the current cart, applied
// loyalty discount, and selections. Safe to call on every input change.
func (s *Service) QuoteFor(c *cart.Engine, l *loyalty.Engine, delivery pricing.DeliveryMethod, payment pricing.PaymentMethod) pricing.Quote {
	discount := 0.0
	if _, d, ok := l.AppliedReward(); ok {
		discount = d
	}
	return pricing.Compute(pricing.QuoteInput{
		Subtotal:        c.Subtotal(),
		LoyaltyDiscount: discount,
		Delivery:        delivery,
		Payment:         payment,
	})
}

// Submit finalizes the order. A gateway failure aborts before anything
// mutates; after payment the loyalty ledger is posted and the cart cleared.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (SubmitResult, error) {
	items := in.Cart.Items()
	if len(items) == 0 {
		return SubmitResult{}, ErrCartEmpty
	}
	if !pricing.ValidDelivery(in.Delivery) {
		return SubmitResult{}, ErrInvalidDelivery
	}
	if !pricing.ValidPayment(in.Payment) {
		return SubmitResult{}, ErrInvalidPayment
	}

	quote := s.QuoteFor(in.Cart, in.Loyalty, in.Delivery, in.Payment)
	orderID := "ORD-" + uuid.NewString()

	redirectURL := ""
	if in.Payment != pricing.PaymentCOD {
		resp, err := s.provider.CreateCheckout(ctx, payments.CheckoutRequest{
			OrderID:    orderID,
			Amount:     quote.GrandTotal,
			Currency:   "SAR",
			Method:     string(in.Payment),
			Items:      checkoutItems(items),
			SuccessURL: s.baseURL + "/order-success?order=" + orderID,
			CancelURL:  s.baseURL + "/cart",
			FailureURL: s.baseURL + "/cart",
		})
		if err != nil {
			log.Printf("Submit: provider %s error for order %s: %v", s.provider.Name(), orderID, err)
			return SubmitResult{}, &PaymentError{}
		}
		if resp.Status == payments.StatusFailed {
			return SubmitResult{}, &PaymentError{Reason: resp.Reason}
		}
		redirectURL = resp.RedirectURL
	}

	loyaltyRes, err := in.Loyalty.ProcessOrder(loyalty.Order{
		OrderID:         orderID,
		Subtotal:        quote.Subtotal,
		LoyaltyDiscount: quote.LoyaltyDiscount,
	})
	if err != nil {
		// Payment already went through; surface the failure but don't
		// lose the order.
		log.Printf("Submit: loyalty processing failed for order %s: %v", orderID, err)
		return SubmitResult{OrderID: orderID, Quote: quote, RedirectURL: redirectURL}, ErrLoyaltyProcessing
	}

	in.Cart.Clear()

	return SubmitResult{
		OrderID:      orderID,
		Quote:        quote,
		EarnedPoints: loyaltyRes.EarnedPoints,
		BonusPoints:  loyaltyRes.BonusPoints,
		TierUpgraded: loyaltyRes.TierUpgraded,
		RedirectURL:  redirectURL,
	}, nil
}

func checkoutItems(items []cart.LineItem) []payments.CheckoutItem {
	out := make([]payments.CheckoutItem, len(items))
	for i, it := range items {
		out[i] = payments.CheckoutItem{Name: it.Name, Quantity: it.Quantity, UnitPrice: it.Price}
	}
	return out
}
