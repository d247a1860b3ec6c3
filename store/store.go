// Package store defines the persistence abstraction used by slotcache.
//
// Implementations MUST be byte-for-byte transparent: Read must return exactly
// the same []byte that was previously passed to Write for a key (no
// prepended/appended metadata, no re-encoding, no mutation). If a store
// performs internal transforms (e.g., compression), they MUST be fully
// reversed so that the bytes returned by Read are identical to the bytes
// provided to Write.
//
// "Key not found" is not an error anywhere in this package: Read reports it
// as a plain miss and Delete of an absent key succeeds.
package store

import (
	"context"
)

// Store is a minimal durable byte store addressed by string key.
// Must be safe for concurrent use. Per-key writes must be atomic
// (last writer wins); no cross-key transactional guarantee is assumed.
type Store interface {
	// Read returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// If an IO/remote error happens, return (nil, false, err).
	Read(ctx context.Context, key string) ([]byte, bool, error)

	// Write stores value under key, replacing any previous record.
	Write(ctx context.Context, key string, value []byte) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources.
	Close(ctx context.Context) error
}
