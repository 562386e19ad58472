package main

import (
	"context"
	"log"
	"os"

	"log/slog"

	"sbtcstore.com/app/internal/config"
	apphttp "sbtcstore.com/app/internal/http"
	"sbtcstore.com/app/internal/http/middleware"
	"sbtcstore.com/app/internal/http/sessioncookie"
	"sbtcstore.com/app/internal/modules/cart"
	"sbtcstore.com/app/internal/modules/checkout"
	"sbtcstore.com/app/internal/modules/payments"
	"sbtcstore.com/app/internal/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	st, err := storage.FromEnv(context.Background())
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	logger.Info("storage ready", "driver", st.Driver)

	codec := sessioncookie.New([]byte(cfg.SessionSecret), cfg.CookieName, cfg.CookieSecure)
	registry := middleware.NewRegistry(st.Storage, cart.Options{
		EnforceCeilingOnUpdate: cfg.StrictQuantityCeiling,
	})

	provider := &payments.Mock{FailAll: cfg.PaymentFailAll}
	checkoutSvc := checkout.NewService(provider, cfg.BaseURL)

	r := apphttp.NewRouter(logger, apphttp.Deps{
		Sessions: codec,
		Registry: registry,
		Checkout: checkoutSvc,
	})

	logger.Info("listening", "addr", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
