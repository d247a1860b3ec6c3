package slotcache

import (
	"fmt"
)

// EncodeError reports that Set could not turn the value into bytes. Neither
// the persisted record nor the memory slot was modified.
type EncodeError struct {
	Key string
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("slotcache: encode %q failed: %v", e.Key, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// WriteError reports that the store rejected the write during Set. The memory
// slot was left unchanged, so a previously cached value is not invalidated.
type WriteError struct {
	Key string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("slotcache: write %q failed: %v", e.Key, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// DeleteError reports that the store delete failed during Clear. The memory
// slot was emptied regardless; the store may still hold the record.
type DeleteError struct {
	Key string
	Err error
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("slotcache: delete %q failed: %v", e.Key, e.Err)
}

func (e *DeleteError) Unwrap() error { return e.Err }
