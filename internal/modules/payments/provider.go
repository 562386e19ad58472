// Package payments is the boundary to the external gateways (card
// processors, Tabby/Tamara BNPL). This engine only consumes a
// success/failure result plus any returned checkout URL; gateway protocols
// and signature schemes live on the other side of Provider.
package payments

import "context"

const (
	StatusSucceeded        = "succeeded"
	StatusFailed           = "failed"
	StatusRequiresRedirect = "requires_redirect"
)

type CheckoutItem struct {
	Name      string
	Quantity  int
	UnitPrice float64
}

type CheckoutRequest struct {
	OrderID  string
	Amount   float64
	Currency string
	Method   string // card|tabby|tamara
	Items    []CheckoutItem

	SuccessURL string
	CancelURL  string
	FailureURL string
}

type CheckoutResponse struct {
	ProviderRef string
	Status      string
	RedirectURL string // set when the buyer must complete checkout remotely
	Reason      string // failure reason, user-displayable
}

type Provider interface {
	Name() string
	CreateCheckout(ctx context.Context, req CheckoutRequest) (CheckoutResponse, error)
}
