package payments

import (
	"context"

	"github.com/google/uuid"
)

// Mock is the development/test provider. Card charges succeed inline; BNPL
// methods hand back a redirect the way Tabby and Tamara do.
type Mock struct {
	// FailAll makes every checkout fail, for exercising the abort path.
	FailAll bool
}

func (m *Mock) Name() string { return "mock" }

func (m *Mock) CreateCheckout(ctx context.Context, req CheckoutRequest) (CheckoutResponse, error) {
	_ = ctx

	if m.FailAll {
		return CheckoutResponse{Status: StatusFailed, Reason: "Payment was declined"}, nil
	}

	ref := "pay_" + uuid.NewString()
	switch req.Method {
	case "tabby", "tamara":
		return CheckoutResponse{
			ProviderRef: ref,
			Status:      StatusRequiresRedirect,
			RedirectURL: "https://checkout.example.com/" + req.Method + "/" + ref,
		}, nil
	default:
		return CheckoutResponse{ProviderRef: ref, Status: StatusSucceeded}, nil
	}
}
