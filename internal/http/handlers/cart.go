package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sbtcstore.com/app/internal/http/middleware"
	"sbtcstore.com/app/internal/modules/cart"
	"sbtcstore.com/app/internal/shared/apperr"
	"sbtcstore.com/app/pkg/view"
)

// CartHandler serves the session cart (GET /api/cart and the mutation
// endpoints under /api/cart/...).
type CartHandler struct{}

func NewCartHandler() *CartHandler { return &CartHandler{} }

// Get handles GET /api/cart.
func (h *CartHandler) Get(c *gin.Context) {
	e, ok := engines(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, view.CartFromState(e.Cart.Snapshot()))
}

type addItemRequest struct {
	ProductID     string   `json:"id" binding:"required"`
	Size          string   `json:"size"`
	Name          string   `json:"name" binding:"required"`
	Brand         string   `json:"brand"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	OriginalPrice *float64 `json:"originalPrice"`
	Quantity      int      `json:"quantity" binding:"omitempty,min=1"`
	MaxQuantity   int      `json:"maxQuantity" binding:"omitempty,min=1"`
	Category      string   `json:"category"`
}

// Add handles POST /api/cart/items.
func (h *CartHandler) Add(c *gin.Context) {
	e, ok := engines(c)
	if !ok {
		return
	}

	var req addItemRequest
	if !bindJSON(c, &req) {
		return
	}
	qty := req.Quantity
	if qty == 0 {
		qty = 1
	}

	item := cart.LineItem{
		ProductID:     req.ProductID,
		Size:          req.Size,
		Name:          req.Name,
		Brand:         req.Brand,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		MaxQuantity:   req.MaxQuantity,
		Category:      req.Category,
	}

	if err := e.Cart.AddItem(item, qty); err != nil {
		var ce *cart.CeilingError
		if errors.As(err, &ce) {
			log.Printf("CartAdd: rejected id=%s size=%s qty=%d: %s", req.ProductID, req.Size, qty, ce.Message)
			// The rejection is already recorded on the cart state; return
			// the state so the client shows the inline error.
			c.JSON(http.StatusOK, view.CartFromState(e.Cart.Snapshot()))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, view.CartFromState(e.Cart.Snapshot()))
}

type itemKeyRequest struct {
	ProductID string `json:"id" binding:"required"`
	Size      string `json:"size"`
}

type updateQuantityRequest struct {
	ProductID string `json:"id" binding:"required"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// Update handles POST /api/cart/items/update. A quantity at or below zero
// removes the line.
func (h *CartHandler) Update(c *gin.Context) {
	e, ok := engines(c)
	if !ok {
		return
	}

	var req updateQuantityRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := e.Cart.UpdateQuantity(req.ProductID, req.Size, req.Quantity); err != nil {
		var ce *cart.CeilingError
		if errors.As(err, &ce) {
			c.JSON(http.StatusOK, view.CartFromState(e.Cart.Snapshot()))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, view.CartFromState(e.Cart.Snapshot()))
}

// Remove handles POST /api/cart/items/remove.
func (h *CartHandler) Remove(c *gin.Context) {
	e, ok := engines(c)
	if !ok {
		return
	}

	var req itemKeyRequest
	if !bindJSON(c, &req) {
		return
	}

	e.Cart.RemoveItem(req.ProductID, req.Size)
	c.JSON(http.StatusOK, view.CartFromState(e.Cart.Snapshot()))
}

// Clear handles POST /api/cart/clear.
func (h *CartHandler) Clear(c *gin.Context) {
	e, ok := engines(c)
	if !ok {
		return
	}

	e.Cart.Clear()
	c.JSON(http.StatusOK, view.CartFromState(e.Cart.Snapshot()))
}

type panelRequest struct {
	Action string `json:"action" binding:"required,oneof=open close toggle"`
}

// Panel handles POST /api/cart/panel.
func (h *CartHandler) Panel(c *gin.Context) {
	e, ok := engines(c)
	if !ok {
		return
	}

	var req panelRequest
	if !bindJSON(c, &req) {
		return
	}

	switch req.Action {
	case "open":
		e.Cart.OpenPanel()
	case "close":
		e.Cart.ClosePanel()
	case "toggle":
		e.Cart.TogglePanel()
	}

	c.JSON(http.StatusOK, view.CartFromState(e.Cart.Snapshot()))
}

// ClearError handles POST /api/cart/error/clear.
func (h *CartHandler) ClearError(c *gin.Context) {
	e, ok := engines(c)
	if !ok {
		return
	}

	e.Cart.ClearError()
	c.JSON(http.StatusOK, view.CartFromState(e.Cart.Snapshot()))
}
