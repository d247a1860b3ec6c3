package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/slotcache"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	DecodeFailureEvery uint64
	ReadErrorEvery     uint64
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	decodeCtr atomic.Uint64
	readCtr   atomic.Uint64
}

var _ slotcache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) DecodeFailure(storageKey string, err error) {
	if h.l == nil || !sample(h.opts.DecodeFailureEvery, &h.decodeCtr) {
		return
	}
	h.l.Info("slotcache.decode_failure",
		"key", h.redact(storageKey),
		"err", err)
}

func (h *Hooks) ReadError(storageKey string, err error) {
	if h.l == nil || !sample(h.opts.ReadErrorEvery, &h.readCtr) {
		return
	}
	h.l.Warn("slotcache.read_error",
		"key", h.redact(storageKey),
		"err", err)
}
