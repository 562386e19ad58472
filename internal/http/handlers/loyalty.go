package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sbtcstore.com/app/internal/http/middleware"
	"sbtcstore.com/app/internal/modules/loyalty"
	"sbtcstore.com/app/internal/shared/apperr"
	"sbtcstore.com/app/pkg/view"
)

// LoyaltyHandler serves the member's points account under /api/loyalty.
type LoyaltyHandler struct{}

func NewLoyaltyHandler() *LoyaltyHandler { return &LoyaltyHandler{} }

func loyaltyView(e *middleware.Engines) view.Loyalty {
	return view.LoyaltyFromSummary(e.Loyalty.Snapshot(), e.Loyalty.AvailableRewards())
}

// Get handles GET /api/loyalty.
func (h *LoyaltyHandler) Get(c *gin.Context) {
	e, ok := engines(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, loyaltyView(e))
}

// Transactions handles GET /api/loyalty/transactions.
func (h *LoyaltyHandler) Transactions(c *gin.Context) {
	e, ok := engines(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": view.Transactions(e.Loyalty.Transactions())})
}

type applyRewardRequest struct {
	RewardID   string   `json:"rewardId" binding:"required"`
	OrderValue *float64 `json:"orderValue" binding:"omitempty,gt=0"`
}

// ApplyReward handles POST /api/loyalty/rewards/apply. When the caller
// omits orderValue the current cart subtotal is used.
func (h *LoyaltyHandler) ApplyReward(c *gin.Context) {
	e, ok := engines(c)
	if !ok {
		return
	}

	var req applyRewardRequest
	if !bindJSON(c, &req) {
		return
	}

	orderValue := e.Cart.Subtotal()
	if req.OrderValue != nil {
		orderValue = *req.OrderValue
	}

	if err := e.Loyalty.ApplyReward(req.RewardID, orderValue); err != nil {
		var ee *loyalty.EligibilityError
		if errors.As(err, &ee) {
			// Guard rejection: the reason is already on the account state.
			c.JSON(http.StatusOK, loyaltyView(e))
			return
		}
		if errors.Is(err, loyalty.ErrRewardNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Reward not found"))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	log.Printf("ApplyReward: session %s applied %s at orderValue=%.2f", middleware.GetSessionID(c), req.RewardID, orderValue)
	c.JSON(http.StatusOK, loyaltyView(e))
}

// RemoveReward handles POST /api/loyalty/rewards/remove.
func (h *LoyaltyHandler) RemoveReward(c *gin.Context) {
	e, ok := engines(c)
	if !ok {
		return
	}

	e.Loyalty.RemoveReward()
	c.JSON(http.StatusOK, loyaltyView(e))
}

type bonusRequest struct {
	Points      int    `json:"points" binding:"required,gt=0"`
	Description string `json:"description" binding:"required"`
}

// Bonus handles POST /api/loyalty/bonus.
func (h *LoyaltyHandler) Bonus(c *gin.Context) {
	e, ok := engines(c)
	if !ok {
		return
	}

	var req bonusRequest
	if !bindJSON(c, &req) {
		return
	}

	e.Loyalty.AddBonusPoints(req.Points, req.Description)
	c.JSON(http.StatusOK, loyaltyView(e))
}

// Refresh handles POST /api/loyalty/refresh: re-reads the persisted ledger
// and re-derives balance and tier.
func (h *LoyaltyHandler) Refresh(c *gin.Context) {
	e, ok := engines(c)
	if !ok {
		return
	}

	if err := e.Loyalty.Refresh(c.Request.Context()); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, loyaltyView(e))
}

// Export handles GET /api/loyalty/export: the full account as a download.
func (h *LoyaltyHandler) Export(c *gin.Context) {
	e, ok := engines(c)
	if !ok {
		return
	}

	blob, err := e.Loyalty.Export()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="loyalty-export.json"`)
	c.Data(http.StatusOK, "application/json", blob)
}
