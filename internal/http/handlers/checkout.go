package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sbtcstore.com/app/internal/http/middleware"
	"sbtcstore.com/app/internal/modules/checkout"
	"sbtcstore.com/app/internal/modules/pricing"
	"sbtcstore.com/app/internal/shared/apperr"
	"sbtcstore.com/app/pkg/view"
)

// CheckoutHandler prices and finalizes orders under /api/checkout.
type CheckoutHandler struct {
	Svc *checkout.Service
}

func NewCheckoutHandler(svc *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{Svc: svc}
}

type checkoutRequest struct {
	Delivery string `json:"delivery" binding:"required,oneof=standard express"`
	Payment  string `json:"payment" binding:"required,oneof=card tabby tamara cod"`
}

// Quote handles POST /api/checkout/quote. Pure computation, safe to call on
// every selection change.
func (h *CheckoutHandler) Quote(c *gin.Context) {
	e, ok := engines(c)
	if !ok {
		return
	}

	var req checkoutRequest
	if !bindJSON(c, &req) {
		return
	}

	q := h.Svc.QuoteFor(e.Cart, e.Loyalty,
		pricing.DeliveryMethod(req.Delivery), pricing.PaymentMethod(req.Payment))
	out := view.QuoteFromPricing(q)
	out.PointsToEarn = e.Loyalty.EarningPreview(q.Subtotal)
	c.JSON(http.StatusOK, out)
}

// Submit handles POST /api/checkout/submit.
func (h *CheckoutHandler) Submit(c *gin.Context) {
	e, ok := engines(c)
	if !ok {
		return
	}

	var req checkoutRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.Svc.Submit(c.Request.Context(), checkout.SubmitInput{
		Cart:     e.Cart,
		Loyalty:  e.Loyalty,
		Delivery: pricing.DeliveryMethod(req.Delivery),
		Payment:  pricing.PaymentMethod(req.Payment),
	})
	if err != nil {
		middleware.Fail(c, submitError(err))
		return
	}

	log.Printf("Submit: session %s placed order %s total=%.2f", middleware.GetSessionID(c), res.OrderID, res.Quote.GrandTotal)
	c.JSON(http.StatusOK, view.SubmitResultFrom(res))
}

func submitError(err error) error {
	var pe *checkout.PaymentError
	switch {
	case errors.Is(err, checkout.ErrCartEmpty):
		return apperr.InvalidErr("Your cart is empty.", nil)
	case errors.Is(err, checkout.ErrInvalidDelivery):
		return apperr.InvalidErr("Unknown delivery method.", nil)
	case errors.Is(err, checkout.ErrInvalidPayment):
		return apperr.InvalidErr("Unknown payment method.", nil)
	case errors.As(err, &pe):
		msg := "Payment failed. Please try again."
		if pe.Reason != "" {
			msg = pe.Reason
		}
		return apperr.PaymentErr(msg)
	case errors.Is(err, checkout.ErrLoyaltyProcessing):
		return apperr.ConflictErr("Your order was placed but loyalty points could not be processed.")
	default:
		return apperr.Wrap(err)
	}
}
