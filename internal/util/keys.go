package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// Filename returns a deterministic, filesystem-safe file name for a storage
// key. Keys are caller-chosen and may contain separators or other characters
// that are unsafe in paths, so the name is a hex digest rather than the key.
func Filename(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:16]) + ".slot"
}
