package loyalty

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"sbtcstore.com/app/internal/storage"
)

// Storage keys. The balance key holds a bare JSON integer, the transactions
// key a JSON array with ISO-8601 timestamps.
const (
	keyPoints       = "loyaltyPoints"
	keyTransactions = "loyaltyTransactions"
)

func loadBalance(ctx context.Context, store storage.Store) (int, error) {
	b, err := store.Get(ctx, keyPoints)
	if err != nil {
		return 0, err
	}
	var points int
	if err := json.Unmarshal(b, &points); err != nil {
		return 0, err
	}
	return points, nil
}

func loadLedger(ctx context.Context, store storage.Store) ([]Entry, error) {
	b, err := store.Get(ctx, keyTransactions)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var entries []Entry
	if err := json.Unmarshal(b, &entries); err != nil {
		// Malformed data restores as empty, never as a fatal error.
		log.Printf("loyalty: malformed ledger, starting empty: %v", err)
		return nil, nil
	}
	return entries, nil
}

// saveLocked snapshots the ledger and balance under the caller's lock and
// mirrors them to storage on a background goroutine. Write failures are
// logged and swallowed; in-memory state stays authoritative.
func (e *Engine) saveLocked() {
	pointsBlob, err := json.Marshal(e.balance)
	if err != nil {
		log.Printf("loyalty: marshal points: %v", err)
		return
	}
	ledgerBlob, err := json.Marshal(e.entries)
	if err != nil {
		log.Printf("loyalty: marshal ledger: %v", err)
		return
	}

	store := e.store
	e.saves.Add(1)
	go func() {
		defer e.saves.Done()
		ctx := context.Background()
		if err := store.Set(ctx, keyPoints, pointsBlob); err != nil {
			log.Printf("loyalty: save points: %v", err)
		}
		if err := store.Set(ctx, keyTransactions, ledgerBlob); err != nil {
			log.Printf("loyalty: save transactions: %v", err)
		}
	}()
}

type exportBlob struct {
	Points     int       `json:"points"`
	Tier       Tier      `json:"tier"`
	Entries    []Entry   `json:"transactions"`
	ExportDate time.Time `json:"exportDate"`
}

// Export serializes the account for support/debugging handoff.
func (e *Engine) Export() ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return json.MarshalIndent(exportBlob{
		Points:     e.balance,
		Tier:       e.tier.Name,
		Entries:    e.entries,
		ExportDate: e.now(),
	}, "", "  ")
}
