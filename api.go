package slotcache

import (
	"context"

	c "github.com/unkn0wn-root/slotcache/codec"
	st "github.com/unkn0wn-root/slotcache/store"
)

// Cache is the single-slot durable cache API. V is the caller's value type.
// Serialization is handled by a pluggable Codec[V]; persistence by a Store.
// One instance owns one key; instances sharing a key see the same persisted
// record (last writer wins).
type Cache[V any] interface {
	// Get resolves the current value: memory slot first, then the store.
	// Absence and decode failure are both a miss; Get never errors.
	Get(ctx context.Context) (v V, ok bool)

	// Set encodes value and writes it through to the store. The memory slot
	// is updated only after the store write succeeds.
	Set(ctx context.Context, value V) error

	// Clear deletes the persisted record and empties the memory slot. The
	// slot is emptied even when the store delete fails, so a discarded value
	// is never re-served from memory.
	Clear(ctx context.Context) error

	// Cached peeks the memory slot without touching the store.
	Cached() (v V, ok bool)

	// Forget drops only the memory slot; the persisted record stays.
	Forget()

	// Reload bypasses the memory slot and re-resolves from the store,
	// picking up writes made by other instances. Miss semantics as Get.
	Reload(ctx context.Context) (v V, ok bool)

	// Key returns the caller-chosen slot key.
	Key() string

	// Close releases resources. The store is closed only when the cache was
	// constructed with CloseStore.
	Close(ctx context.Context) error
}

// Options tune the behavior of a Cache. Only Key and Store are required.
type Options[V any] struct {
	// Required
	Key   string // caller-chosen slot identifier, stable across processes
	Store st.Store

	Codec      c.Codec[V] // nil => codec.JSON[V]{}
	Namespace  string     // optional prefix; storage key becomes "<ns>:<key>"
	Logger     Logger     // nil => NopLogger
	Hooks      Hooks      // nil => NopHooks
	CloseStore bool       // set true only if this cache exclusively owns the store
}

func New[V any](opts Options[V]) (Cache[V], error) {
	return newCache[V](opts)
}
