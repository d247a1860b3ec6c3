// Package codec defines the serialization strategy used by slotcache.
//
// A Codec is fully opaque to the cache: the cache never inspects or repairs
// codec output, and both sides of a shared key must agree on the wire format
// for round-trip correctness across the process boundary.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
