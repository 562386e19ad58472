package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sbtcstore.com/app/internal/http/middleware"
	"sbtcstore.com/app/internal/http/sessioncookie"
	"sbtcstore.com/app/internal/modules/cart"
	"sbtcstore.com/app/internal/modules/checkout"
	"sbtcstore.com/app/internal/modules/payments"
	"sbtcstore.com/app/internal/storage"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	codec := sessioncookie.New([]byte("test-secret"), "sbtc_session", false)
	registry := middleware.NewRegistry(storage.NewMemory(), cart.Options{})
	svc := checkout.NewService(&payments.Mock{}, "http://localhost:8080")

	return NewRouter(logger, Deps{
		Sessions: codec,
		Registry: registry,
		Checkout: svc,
	})
}

// client keeps the session cookie across requests, like a browser would.
type client struct {
	t       *testing.T
	r       *gin.Engine
	cookies []*http.Cookie
}

func (c *client) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	c.r.ServeHTTP(w, req)

	if got := w.Result().Cookies(); len(got) > 0 {
		c.cookies = got
	}
	return w
}

func (c *client) doJSON(method, path string, body any, out any) *httptest.ResponseRecorder {
	c.t.Helper()
	w := c.do(method, path, body)
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), out))
	return w
}

func addItemBody(id string, price float64, qty int) gin.H {
	return gin.H{
		"id":       id,
		"size":     "M",
		"name":     "Test Product " + id,
		"brand":    "Acme",
		"price":    price,
		"quantity": qty,
		"category": "shoes",
	}
}

func TestCartLifecycleOverHTTP(t *testing.T) {
	c := &client{t: t, r: newTestRouter(t)}

	var got struct {
		Items       []map[string]any `json:"items"`
		ItemCount   int              `json:"itemCount"`
		Subtotal    float64          `json:"subtotal"`
		SubtotalFmt string           `json:"subtotalFormatted"`
		Ready       bool             `json:"isInitialized"`
		Error       string           `json:"error"`
	}

	w := c.doJSON(http.MethodGet, "/api/cart", nil, &got)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, got.Ready)
	assert.Empty(t, got.Items)
	require.NotEmpty(t, c.cookies, "session cookie should be set")

	w = c.doJSON(http.MethodPost, "/api/cart/items", addItemBody("p1", 100, 2), &got)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, got.ItemCount)
	assert.Equal(t, 200.0, got.Subtotal)
	assert.Equal(t, "SAR 200.00", got.SubtotalFmt)

	// Same session on the next request: state survives.
	c.doJSON(http.MethodGet, "/api/cart", nil, &got)
	assert.Equal(t, 2, got.ItemCount)

	c.doJSON(http.MethodPost, "/api/cart/items/update", gin.H{"id": "p1", "size": "M", "quantity": 5}, &got)
	assert.Equal(t, 5, got.ItemCount)

	c.doJSON(http.MethodPost, "/api/cart/items/remove", gin.H{"id": "p1", "size": "M"}, &got)
	assert.Zero(t, got.ItemCount)
}

func TestCartCeilingRejectionOverHTTP(t *testing.T) {
	c := &client{t: t, r: newTestRouter(t)}

	var got struct {
		ItemCount int    `json:"itemCount"`
		Error     string `json:"error"`
	}

	body := addItemBody("p1", 50, 60)
	c.doJSON(http.MethodPost, "/api/cart/items", body, &got)
	require.Equal(t, 60, got.ItemCount)

	// Second add would cross the default ceiling of 99: rejected whole,
	// quantity unchanged, error carried on the state.
	w := c.doJSON(http.MethodPost, "/api/cart/items", body, &got)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 60, got.ItemCount)
	assert.Equal(t, "Cannot add more than 99 items of this product", got.Error)

	c.doJSON(http.MethodPost, "/api/cart/error/clear", nil, &got)
	assert.Empty(t, got.Error)
	assert.Equal(t, 60, got.ItemCount)
}

func TestCartValidationErrorOverHTTP(t *testing.T) {
	c := &client{t: t, r: newTestRouter(t)}

	w := c.do(http.MethodPost, "/api/cart/items", gin.H{"size": "M"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var got struct {
		Error     string            `json:"error"`
		RequestID string            `json:"request_id"`
		Fields    map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.NotEmpty(t, got.RequestID)
	assert.Contains(t, got.Fields, "id")
}

func TestLoyaltyFlowOverHTTP(t *testing.T) {
	c := &client{t: t, r: newTestRouter(t)}

	var acct struct {
		Points int `json:"points"`
		Tier   struct {
			Name string `json:"name"`
		} `json:"tier"`
		AppliedDiscount float64 `json:"appliedDiscount"`
		Error           string  `json:"error"`
		Available       []struct {
			ID string `json:"id"`
		} `json:"availableRewards"`
	}

	c.doJSON(http.MethodGet, "/api/loyalty", nil, &acct)
	assert.Zero(t, acct.Points)
	assert.Equal(t, "BRONZE", acct.Tier.Name)

	c.doJSON(http.MethodPost, "/api/loyalty/bonus", gin.H{"points": 600, "description": "Welcome bonus"}, &acct)
	assert.Equal(t, 600, acct.Points)

	// Not enough points for the 1000-point reward: guard reason lands on
	// the account state, HTTP stays 200.
	w := c.doJSON(http.MethodPost, "/api/loyalty/rewards/apply", gin.H{"rewardId": "discount-10", "orderValue": 300.0}, &acct)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "You need 400 more points for this reward", acct.Error)
	assert.Zero(t, acct.AppliedDiscount)

	c.doJSON(http.MethodPost, "/api/loyalty/rewards/apply", gin.H{"rewardId": "discount-5", "orderValue": 300.0}, &acct)
	assert.Empty(t, acct.Error)
	assert.Equal(t, 15.0, acct.AppliedDiscount)

	c.doJSON(http.MethodPost, "/api/loyalty/rewards/remove", nil, &acct)
	assert.Zero(t, acct.AppliedDiscount)

	w = c.do(http.MethodPost, "/api/loyalty/rewards/apply", gin.H{"rewardId": "no-such-reward"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckoutOverHTTP(t *testing.T) {
	c := &client{t: t, r: newTestRouter(t)}

	w := c.do(http.MethodPost, "/api/checkout/submit", gin.H{"delivery": "standard", "payment": "card"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "empty cart")

	var cartResp map[string]any
	c.doJSON(http.MethodPost, "/api/cart/items", addItemBody("p1", 250, 2), &cartResp)

	var quote struct {
		Subtotal     float64 `json:"subtotal"`
		VAT          float64 `json:"vat"`
		ShippingFee  float64 `json:"shippingFee"`
		GrandTotal   float64 `json:"grandTotal"`
		PointsToEarn int     `json:"pointsToEarn"`
	}
	c.doJSON(http.MethodPost, "/api/checkout/quote", gin.H{"delivery": "standard", "payment": "card"}, &quote)
	assert.Equal(t, 500.0, quote.Subtotal)
	assert.Equal(t, 75.0, quote.VAT)
	assert.Zero(t, quote.ShippingFee, "free shipping above threshold")
	assert.Equal(t, 575.0, quote.GrandTotal)
	assert.Equal(t, 50, quote.PointsToEarn)

	var res struct {
		OrderID      string `json:"orderId"`
		EarnedPoints int    `json:"earnedPoints"`
		RedirectURL  string `json:"redirectUrl"`
	}
	c.doJSON(http.MethodPost, "/api/checkout/submit", gin.H{"delivery": "standard", "payment": "card"}, &res)
	assert.NotEmpty(t, res.OrderID)
	assert.Equal(t, 50, res.EarnedPoints)
	assert.Empty(t, res.RedirectURL)

	var got struct {
		ItemCount int `json:"itemCount"`
	}
	c.doJSON(http.MethodGet, "/api/cart", nil, &got)
	assert.Zero(t, got.ItemCount, "cart cleared after submit")

	var acct struct {
		Points int `json:"points"`
	}
	c.doJSON(http.MethodGet, "/api/loyalty", nil, &acct)
	assert.Equal(t, 50, acct.Points)
}

func TestCheckoutBNPLRedirectOverHTTP(t *testing.T) {
	c := &client{t: t, r: newTestRouter(t)}

	var cartResp map[string]any
	c.doJSON(http.MethodPost, "/api/cart/items", addItemBody("p1", 100, 1), &cartResp)

	var res struct {
		RedirectURL string `json:"redirectUrl"`
	}
	c.doJSON(http.MethodPost, "/api/checkout/submit", gin.H{"delivery": "express", "payment": "tabby"}, &res)
	assert.Contains(t, res.RedirectURL, "https://checkout.example.com/tabby/")
}

func TestUnknownMethodRejectedByBinding(t *testing.T) {
	c := &client{t: t, r: newTestRouter(t)}

	var cartResp map[string]any
	c.doJSON(http.MethodPost, "/api/cart/items", addItemBody("p1", 100, 1), &cartResp)

	w := c.do(http.MethodPost, "/api/checkout/quote", gin.H{"delivery": "drone", "payment": "card"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
