package cart

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sbtcstore.com/app/internal/storage"
)

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("boom")
}
func (failingStore) Set(context.Context, string, []byte) error { return errors.New("boom") }
func (failingStore) Delete(context.Context, string) error      { return errors.New("boom") }

func newTestEngine(t *testing.T) (*Engine, *storage.Memory) {
	t.Helper()
	store := storage.NewMemory()
	e := NewEngine(store, Options{})
	e.Restore(context.Background())
	return e, store
}

func TestEngine_AddSameItemTwice(t *testing.T) {
	e, _ := newTestEngine(t)

	p1 := item("p1", "M", 14.99)
	require.NoError(t, e.AddItem(p1, 1))
	require.NoError(t, e.AddItem(p1, 1))

	items := e.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 29.98, e.Subtotal())
	assert.Equal(t, 2, e.ItemCount())
}

func TestEngine_RepeatedAddsStopAtCeiling(t *testing.T) {
	e, _ := newTestEngine(t)

	p2 := item("p2", "M", 5)
	p2.MaxQuantity = 25

	var firstErr error
	for i := 0; i < 30; i++ {
		if err := e.AddItem(p2, 1); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	require.Error(t, firstErr)
	var ce *CeilingError
	assert.ErrorAs(t, firstErr, &ce)
	assert.LessOrEqual(t, e.Items()[0].Quantity, 25)
	assert.Equal(t, 25, e.Items()[0].Quantity)
	assert.NotEmpty(t, e.LastError())
}

func TestEngine_UpdateQuantityAsymmetry(t *testing.T) {
	e, _ := newTestEngine(t)

	p2 := item("p2", "M", 5)
	p2.MaxQuantity = 25
	require.NoError(t, e.AddItem(p2, 1))

	// The explicit update path historically bypasses the ceiling.
	require.NoError(t, e.UpdateQuantity("p2", "M", 40))
	assert.Equal(t, 40, e.Items()[0].Quantity)

	// With the unification flag on, updates reject too.
	strict := NewEngine(storage.NewMemory(), Options{EnforceCeilingOnUpdate: true})
	strict.Restore(context.Background())
	require.NoError(t, strict.AddItem(p2, 1))
	err := strict.UpdateQuantity("p2", "M", 40)
	require.Error(t, err)
	assert.Equal(t, 1, strict.Items()[0].Quantity)
}

func TestEngine_ReadyAfterFailedRestore(t *testing.T) {
	e := NewEngine(failingStore{}, Options{})
	assert.False(t, e.Ready())

	e.Restore(context.Background())
	assert.True(t, e.Ready(), "ready must flip even when the restore fails")
	assert.Empty(t, e.Items())
}

func TestEngine_RestoreMalformedData(t *testing.T) {
	store := storage.NewMemory()
	require.NoError(t, store.Set(context.Background(), keyCart, []byte("~~garbage~~")))

	e := NewEngine(store, Options{})
	e.Restore(context.Background())
	assert.True(t, e.Ready())
	assert.Empty(t, e.Items())
}

func TestEngine_RoundTrip(t *testing.T) {
	e, store := newTestEngine(t)
	require.NoError(t, e.AddItem(item("p1", "M", 14.99), 2))
	require.NoError(t, e.AddItem(item("p3", "L", 7.5), 1))
	e.saves.Wait()

	e2 := NewEngine(store, Options{})
	e2.Restore(context.Background())

	assert.Equal(t, e.Items(), e2.Items())
	assert.Equal(t, e.Subtotal(), e2.Subtotal())
	assert.Equal(t, e.ItemCount(), e2.ItemCount())
}

func TestEngine_RejectedAddDoesNotPersist(t *testing.T) {
	e, store := newTestEngine(t)

	p := item("p1", "M", 5)
	p.MaxQuantity = 1
	require.NoError(t, e.AddItem(p, 1))
	e.saves.Wait()

	before, err := store.Get(context.Background(), keyCart)
	require.NoError(t, err)

	require.Error(t, e.AddItem(p, 1))
	e.saves.Wait()

	after, err := store.Get(context.Background(), keyCart)
	require.NoError(t, err)
	assert.Equal(t, before, after, "a rejected add must not trigger a save")
}

func TestEngine_ClearPersistsEmptyList(t *testing.T) {
	e, store := newTestEngine(t)
	require.NoError(t, e.AddItem(item("p1", "M", 5), 1))
	e.Clear()
	e.saves.Wait()

	blob, err := store.Get(context.Background(), keyCart)
	require.NoError(t, err)

	var items []LineItem
	require.NoError(t, json.Unmarshal(blob, &items))
	assert.Empty(t, items)
	assert.Empty(t, e.LastError())
}

func TestEngine_PanelAndErrorLifecycle(t *testing.T) {
	e, _ := newTestEngine(t)

	e.OpenPanel()
	assert.True(t, e.IsOpen())
	e.TogglePanel()
	assert.False(t, e.IsOpen())

	p := item("p1", "M", 5)
	p.MaxQuantity = 1
	require.NoError(t, e.AddItem(p, 1))
	require.Error(t, e.AddItem(p, 1))
	require.NotEmpty(t, e.LastError())

	e.ClearError()
	assert.Empty(t, e.LastError())
	assert.Len(t, e.Items(), 1, "clearing the error keeps the items")
}

func TestEngine_SnapshotIsDefensiveCopy(t *testing.T) {
	e, _ := newTestEngine(t)
	require.NoError(t, e.AddItem(item("p1", "M", 5), 1))

	s := e.Snapshot()
	s.Items[0].Quantity = 99
	assert.Equal(t, 1, e.Items()[0].Quantity)
}
