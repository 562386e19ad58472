package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"sbtcstore.com/app/internal/storage"
)

// keyCart holds the persisted cart: a JSON array of line items.
const keyCart = "sbtc-cart"

func loadItems(ctx context.Context, store storage.Store) ([]LineItem, error) {
	b, err := store.Get(ctx, keyCart)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var items []LineItem
	if err := json.Unmarshal(b, &items); err != nil {
		// Malformed data restores as empty, never as a fatal error.
		log.Printf("cart: malformed cart data, starting empty: %v", err)
		return nil, nil
	}
	return items, nil
}

// saveLocked snapshots the item list under the caller's lock and writes it
// on a background goroutine. Failures are logged and swallowed.
func (e *Engine) saveLocked() {
	blob, err := json.Marshal(e.state.Items)
	if err != nil {
		log.Printf("cart: marshal items: %v", err)
		return
	}
	if e.state.Items == nil {
		blob = []byte("[]")
	}

	store := e.store
	e.saves.Add(1)
	go func() {
		defer e.saves.Done()
		if err := store.Set(context.Background(), keyCart, blob); err != nil {
			log.Printf("cart: save failed: %v", err)
		}
	}()
}
