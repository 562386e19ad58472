package cart

import (
	"context"
	"log"
	"sync"

	"sbtcstore.com/app/internal/storage"
)

// Engine owns cart state for one session. All mutations are synchronous
// against in-memory state; persistence is a fire-and-forget mirror.
type Engine struct {
	mu    sync.Mutex
	store storage.Store
	opt   Options
	state State
	saves sync.WaitGroup
}

func NewEngine(store storage.Store, opt Options) *Engine {
	return &Engine{store: store, opt: opt}
}

// Restore loads the persisted item list. Absent, malformed, or empty data
// starts an empty cart. Ready flips exactly once, restore failure included;
// consumers key their loading placeholder off it.
func (e *Engine) Restore(ctx context.Context) {
	items, err := loadItems(ctx, e.store)
	if err != nil {
		log.Printf("cart: restore failed, starting empty: %v", err)
		items = nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.Ready {
		return
	}
	e.state.Items = items
	e.state.Ready = true
}

// apply runs a command through the pure transition and mirrors the item
// list to storage when it changed.
func (e *Engine) apply(cmd Command) State {
	e.mu.Lock()
	defer e.mu.Unlock()

	next, changed := reduce(e.state, cmd, e.opt)
	e.state = next
	if changed {
		e.saveLocked()
	}
	return next
}

// AddItem merges into an existing line or inserts a new one. A quantity
// that would pass the item's ceiling is rejected outright and reported via
// the returned error and the state's error message.
func (e *Engine) AddItem(item LineItem, quantity int) error {
	next := e.apply(AddItem{Item: item, Quantity: quantity})
	if next.Err != "" {
		return &CeilingError{Message: next.Err}
	}
	return nil
}

// RemoveItem deletes the matching line; absent lines are a no-op.
func (e *Engine) RemoveItem(productID, size string) {
	e.apply(RemoveItem{Key: Key{ProductID: productID, Size: size}})
}

// UpdateQuantity overwrites a line's quantity; zero or less removes the
// line. Unless configured otherwise this path does not check the ceiling.
func (e *Engine) UpdateQuantity(productID, size string, quantity int) error {
	next := e.apply(UpdateQuantity{Key: Key{ProductID: productID, Size: size}, Quantity: quantity})
	if next.Err != "" {
		return &CeilingError{Message: next.Err}
	}
	return nil
}

func (e *Engine) Clear()       { e.apply(Clear{}) }
func (e *Engine) OpenPanel()   { e.apply(OpenPanel{}) }
func (e *Engine) ClosePanel()  { e.apply(ClosePanel{}) }
func (e *Engine) TogglePanel() { e.apply(TogglePanel{}) }
func (e *Engine) ClearError()  { e.apply(ClearError{}) }

// Flush blocks until in-flight persistence writes finish. Mutations remain
// fire-and-forget; this is for process exit and tests.
func (e *Engine) Flush() {
	e.saves.Wait()
}

func (e *Engine) Ready() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Ready
}

func (e *Engine) IsOpen() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Open
}

func (e *Engine) LastError() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Err
}

func (e *Engine) Items() []LineItem {
	e.mu.Lock()
	defer e.mu.Unlock()
	return cloneItems(e.state.Items)
}

func (e *Engine) ItemCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.ItemCount()
}

func (e *Engine) Subtotal() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Subtotal()
}

// Snapshot returns a defensive copy of the full state.
func (e *Engine) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := e.state
	s.Items = cloneItems(e.state.Items)
	return s
}
