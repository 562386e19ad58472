package middleware

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sbtcstore.com/app/internal/http/sessioncookie"
	"sbtcstore.com/app/internal/modules/cart"
	"sbtcstore.com/app/internal/modules/loyalty"
	"sbtcstore.com/app/internal/storage"
)

const (
	CtxKeySessionID = "session_id"
	ctxKeyEngines   = "session_engines"
)

// Engines is the per-session pair of state engines. Each session sees its
// own copy of the fixed storage keys through a namespaced store view.
type Engines struct {
	Cart    *cart.Engine
	Loyalty *loyalty.Engine
}

// Registry hands out one Engines per session ID, constructing and restoring
// them on first touch.
type Registry struct {
	store   storage.Store
	cartOpt cart.Options

	mu       sync.Mutex
	sessions map[string]*Engines
}

func NewRegistry(store storage.Store, cartOpt cart.Options) *Registry {
	return &Registry{
		store:    store,
		cartOpt:  cartOpt,
		sessions: make(map[string]*Engines),
	}
}

// For returns the session's engines, building and restoring them once.
func (r *Registry) For(ctx context.Context, sessionID string) *Engines {
	r.mu.Lock()
	if e, ok := r.sessions[sessionID]; ok {
		r.mu.Unlock()
		return e
	}

	ns := storage.Namespace(r.store, "session/"+sessionID)
	e := &Engines{
		Cart:    cart.NewEngine(ns, r.cartOpt),
		Loyalty: loyalty.NewEngine(ns),
	}
	r.sessions[sessionID] = e
	r.mu.Unlock()

	// Restore outside the registry lock; it flips ready exactly once.
	e.Cart.Restore(ctx)
	e.Loyalty.Restore(ctx)
	return e
}

// Session resolves (or mints) the anonymous session and attaches its
// engines to the request context.
func Session(codec *sessioncookie.Codec, reg *Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := codec.GetSessionID(c)
		if !ok {
			sid = uuid.NewString()
			codec.Set(c, sid)
		}

		c.Set(CtxKeySessionID, sid)
		c.Set(ctxKeyEngines, reg.For(c.Request.Context(), sid))

		c.Next()
	}
}

func GetSessionID(c *gin.Context) string {
	if v, ok := c.Get(CtxKeySessionID); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// CurrentEngines returns the session's engines, or false outside the
// session middleware.
func CurrentEngines(c *gin.Context) (*Engines, bool) {
	v, ok := c.Get(ctxKeyEngines)
	if !ok {
		return nil, false
	}
	e, ok := v.(*Engines)
	return e, ok
}
