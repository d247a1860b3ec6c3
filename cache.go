package slotcache

import (
	"context"
	"fmt"
	"sync"

	c "github.com/unkn0wn-root/slotcache/codec"
	st "github.com/unkn0wn-root/slotcache/store"
)

type cache[V any] struct {
	key        string // caller-chosen key
	storageKey string // namespaced key used at the store
	store      st.Store
	codec      c.Codec[V]
	log        Logger
	hooks      Hooks
	closeStore bool

	// memory slot; populated only with values that were set through this
	// instance or decoded successfully from the store
	mu  sync.RWMutex
	val V
	has bool
}

func newCache[V any](opts Options[V]) (*cache[V], error) {
	if opts.Key == "" {
		return nil, fmt.Errorf("slotcache: key is required")
	}
	if opts.Store == nil {
		return nil, fmt.Errorf("slotcache: store is required")
	}

	cc := &cache[V]{
		key:        opts.Key,
		storageKey: storageKey(opts.Namespace, opts.Key),
		store:      opts.Store,
		closeStore: opts.CloseStore,
	}

	// defaults
	if opts.Codec != nil {
		cc.codec = opts.Codec
	} else {
		cc.codec = c.JSON[V]{}
	}
	cc.log = coalesce[Logger](opts.Logger, NopLogger{})
	cc.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})

	return cc, nil
}

func (cc *cache[V]) Key() string { return cc.key }

func (cc *cache[V]) Close(ctx context.Context) error {
	if cc.closeStore && cc.store != nil {
		return cc.store.Close(ctx)
	}
	return nil
}

func (cc *cache[V]) Get(ctx context.Context) (V, bool) {
	cc.mu.RLock()
	if cc.has {
		v := cc.val
		cc.mu.RUnlock()
		return v, true
	}
	cc.mu.RUnlock()
	return cc.load(ctx)
}

func (cc *cache[V]) Reload(ctx context.Context) (V, bool) {
	return cc.load(ctx)
}

// load resolves from the store and, on a successful decode, populates the
// memory slot. Read errors and decode failures are absorbed as a miss; a
// record that failed to decode stays in the store (a compatible reader may
// still want it).
func (cc *cache[V]) load(ctx context.Context) (V, bool) {
	var zero V
	raw, ok, err := cc.store.Read(ctx, cc.storageKey)
	if err != nil {
		cc.log.Warn("store read failed; treating as miss", Fields{"key": cc.key, "err": err})
		cc.hooks.ReadError(cc.storageKey, err)
		return zero, false
	}
	if !ok {
		return zero, false
	}
	v, err := cc.codec.Decode(raw)
	if err != nil {
		cc.log.Debug("record failed to decode; treating as miss", Fields{"key": cc.key, "err": err})
		cc.hooks.DecodeFailure(cc.storageKey, err)
		return zero, false
	}
	cc.mu.Lock()
	cc.val = v
	cc.has = true
	cc.mu.Unlock()
	return v, true
}

func (cc *cache[V]) Set(ctx context.Context, value V) error {
	raw, err := cc.codec.Encode(value)
	if err != nil {
		return &EncodeError{Key: cc.key, Err: err}
	}
	if err := cc.store.Write(ctx, cc.storageKey, raw); err != nil {
		// slot untouched: a previously cached value is still durable
		return &WriteError{Key: cc.key, Err: err}
	}
	cc.mu.Lock()
	cc.val = value
	cc.has = true
	cc.mu.Unlock()
	return nil
}

func (cc *cache[V]) Clear(ctx context.Context) error {
	err := cc.store.Delete(ctx, cc.storageKey)

	// empty the slot even when the delete failed, so the discarded value is
	// never re-served from memory; the error below tells the caller the
	// store may still hold it
	cc.Forget()

	if err != nil {
		return &DeleteError{Key: cc.key, Err: err}
	}
	return nil
}

func (cc *cache[V]) Cached() (V, bool) {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return cc.val, cc.has
}

func (cc *cache[V]) Forget() {
	var zero V
	cc.mu.Lock()
	cc.val = zero
	cc.has = false
	cc.mu.Unlock()
}

// storageKey isolates slots by namespace when one is set.
func storageKey(ns, key string) string {
	if ns == "" {
		return key
	}
	return ns + ":" + key
}
