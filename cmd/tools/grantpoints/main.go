// grantpoints posts a bonus to a session's loyalty ledger. Support tool
// for promotions and goodwill credits. With -expire it instead writes off
// any earned points past their expiry date.
//
// Usage:
//
//	go run ./cmd/tools/grantpoints -session <id> -points 250 -desc "Ramadan promotion"
//	go run ./cmd/tools/grantpoints -session <id> -expire
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"sbtcstore.com/app/internal/modules/loyalty"
	"sbtcstore.com/app/internal/storage"
)

func main() {
	session := flag.String("session", "", "session ID to credit")
	points := flag.Int("points", 0, "points to grant (positive)")
	desc := flag.String("desc", "Promotional bonus", "ledger entry description")
	expire := flag.Bool("expire", false, "write off expired earned points instead of granting")
	flag.Parse()

	if *session == "" {
		log.Fatal("-session is required")
	}
	if !*expire && *points <= 0 {
		log.Fatal("-points must be positive")
	}

	_ = godotenv.Load()

	ctx := context.Background()
	st, err := storage.FromEnv(ctx)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	eng := loyalty.NewEngine(storage.Namespace(st.Storage, "session/"+*session))
	eng.Restore(ctx)

	before := eng.Balance()

	if *expire {
		expired := eng.ExpirePoints()
		eng.Flush()
		fmt.Printf("✓ expired %d points for session %s (%d -> %d, tier %s)\n",
			expired, *session, before, eng.Balance(), eng.CurrentTier().Name)
		return
	}

	eng.AddBonusPoints(*points, *desc)
	eng.Flush()

	fmt.Printf("✓ granted %d points to session %s (%d -> %d, tier %s)\n",
		*points, *session, before, eng.Balance(), eng.CurrentTier().Name)
}
