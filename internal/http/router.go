package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"sbtcstore.com/app/internal/http/handlers"
	"sbtcstore.com/app/internal/http/middleware"
	"sbtcstore.com/app/internal/http/sessioncookie"
	"sbtcstore.com/app/internal/modules/checkout"
)

// Deps is everything the router needs wired by main.
type Deps struct {
	Sessions *sessioncookie.Codec
	Registry *middleware.Registry
	Checkout *checkout.Service
}

// NewRouter assembles the gin engine with the full middleware chain and
// the JSON API routes.
func NewRouter(logger *slog.Logger, deps Deps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.ErrorHandler(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(middleware.Session(deps.Sessions, deps.Registry))

	cartH := handlers.NewCartHandler()
	api.GET("/cart", cartH.Get)
	api.POST("/cart/items", cartH.Add)
	api.POST("/cart/items/update", cartH.Update)
	api.POST("/cart/items/remove", cartH.Remove)
	api.POST("/cart/clear", cartH.Clear)
	api.POST("/cart/panel", cartH.Panel)
	api.POST("/cart/error/clear", cartH.ClearError)

	loyaltyH := handlers.NewLoyaltyHandler()
	api.GET("/loyalty", loyaltyH.Get)
	api.GET("/loyalty/transactions", loyaltyH.Transactions)
	api.GET("/loyalty/export", loyaltyH.Export)
	api.POST("/loyalty/rewards/apply", loyaltyH.ApplyReward)
	api.POST("/loyalty/rewards/remove", loyaltyH.RemoveReward)
	api.POST("/loyalty/bonus", loyaltyH.Bonus)
	api.POST("/loyalty/refresh", loyaltyH.Refresh)

	checkoutH := handlers.NewCheckoutHandler(deps.Checkout)
	api.POST("/checkout/quote", checkoutH.Quote)
	api.POST("/checkout/submit", checkoutH.Submit)

	return r
}
