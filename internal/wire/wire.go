package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const version byte = 1

var (
	ErrCorrupt = errors.New("slotcache: corrupt record")
	magic4     = [...]byte{'S', 'L', 'O', 'T'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Record: magic(4) | ver(1) | plen(u32 be) | payload(plen)
func EncodeRecord(payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(4 + 1 + 4 + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes()
}

func DecodeRecord(b []byte) (payload []byte, err error) {
	const hdr = 4 + 1 + 4
	if len(b) < hdr || !hasMagic(b) || b[4] != version {
		return nil, ErrCorrupt
	}

	plen := int(binary.BigEndian.Uint32(b[5:9]))
	if plen < 0 || plen != len(b)-hdr { // trailing bytes are corruption too
		return nil, ErrCorrupt
	}
	return b[hdr : hdr+plen], nil
}
