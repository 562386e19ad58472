package checkout

import "errors"

var (
	ErrCartEmpty         = errors.New("cart is empty")
	ErrInvalidDelivery   = errors.New("unknown delivery method")
	ErrInvalidPayment    = errors.New("unknown payment method")
	ErrLoyaltyProcessing = errors.New("order placed but loyalty processing failed")
)

// PaymentError carries the gateway's user-displayable failure reason.
type PaymentError struct {
	Reason string
}

func (e *PaymentError) Error() string {
	if e.Reason == "" {
		return "payment failed"
	}
	return "payment failed: " + e.Reason
}
