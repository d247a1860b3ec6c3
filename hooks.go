package slotcache

// Hooks lightweight callbacks for conditions the cache absorbs instead of
// returning. Implementations MUST be cheap and non-blocking.
// The cache calls them on hot paths.
type Hooks interface {
	// A persisted record could not be decoded and was served as a miss.
	// The record was left in the store.
	DecodeFailure(storageKey string, err error)

	// The store returned an error on read; the read was served as a miss.
	ReadError(storageKey string, err error)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) DecodeFailure(string, error) {}
func (NopHooks) ReadError(string, error)     {}
