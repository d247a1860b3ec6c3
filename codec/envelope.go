package codec

import (
	"github.com/unkn0wn-root/slotcache/internal/wire"
)

// Envelope wraps another codec with a small versioned frame (magic + format
// version) around the encoded payload. Records written by foreign code under
// the same key, or by a future incompatible frame version, fail Decode
// cleanly instead of mis-decoding — the cache then serves them as a miss.
//
// Both writers and readers of a shared key must use Envelope (or neither);
// no format negotiation is performed.
type Envelope[V any] struct {
	// Inner is the underlying codec being wrapped. It must be set.
	Inner Codec[V]
}

func (c Envelope[V]) Encode(v V) ([]byte, error) {
	payload, err := c.Inner.Encode(v)
	if err != nil {
		return nil, err
	}
	return wire.EncodeRecord(payload), nil
}

func (c Envelope[V]) Decode(b []byte) (V, error) {
	payload, err := wire.DecodeRecord(b)
	if err != nil {
		var zero V
		return zero, err
	}
	return c.Inner.Decode(payload)
}
