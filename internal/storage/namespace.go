package storage

import "context"

// Namespaced prefixes every key so independent sessions can share one
// backing store without seeing each other's cart or ledger.
type Namespaced struct {
	inner  Store
	prefix string
}

func Namespace(inner Store, prefix string) *Namespaced {
	return &Namespaced{inner: inner, prefix: prefix}
}

func (n *Namespaced) Get(ctx context.Context, key string) ([]byte, error) {
	return n.inner.Get(ctx, n.prefix+":"+key)
}

func (n *Namespaced) Set(ctx context.Context, key string, value []byte) error {
	return n.inner.Set(ctx, n.prefix+":"+key, value)
}

func (n *Namespaced) Delete(ctx context.Context, key string) error {
	return n.inner.Delete(ctx, n.prefix+":"+key)
}
