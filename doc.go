// Package slotcache implements a durable, single-slot serialization cache:
// one typed value per string key, kept consistent across an in-process memory
// slot and a persistent byte store. Writes go through to the store before the
// memory slot is updated, so the in-memory view never claims durability it
// doesn't have. Reads prefer the memory slot and fall back to decoding the
// persisted record; a record that fails to decode is reported as a miss, not
// an error, and is left in the store.
//
// Components:
//   - Store: byte-oriented key-value medium (e.g. SQLite, filesystem, Redis).
//   - Codec[V]: (de)serializes V <-> []byte. Defaults to JSON.
//   - Cache[V]: the read/write/clear protocol over one key.
//
// Typical use:
//
//	st, _ := sqlite.Open(sqlite.Config{Path: "app.db"})
//	cc, _ := slotcache.New[Settings](slotcache.Options[Settings]{
//	    Key:   "settings",
//	    Store: st,
//	})
//	if s, ok := cc.Get(ctx); ok { ... }
//	_ = cc.Set(ctx, s)
//
// Instances sharing a key (even across processes) observe the same persisted
// record, last writer wins. The package does not coordinate concurrent writers
// beyond the store's own per-key atomicity.
package slotcache
