// usage:
//
// import (
//
//	"log/slog"
//
//	"github.com/unkn0wn-root/slotcache"
//	"github.com/unkn0wn-root/slotcache/hooks/async"
//	"github.com/unkn0wn-root/slotcache/sloghooks"
//
// )
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    DecodeFailureEvery: 10, // sample logs: ~every 10th decode failure
//	    ReadErrorEvery:     1,  // log every absorbed read error
//	})
//
// hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
// defer hooks.Close()
//
//	cache, _ := slotcache.New[Settings](slotcache.Options[Settings]{
//	    Key:   "settings",
//	    Store: st,
//	    Hooks: hooks, // or `raw` if you don’t want async
//	})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/slotcache"
)

type Hooks struct {
	inner slotcache.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ slotcache.Hooks = (*Hooks)(nil)

func New(inner slotcache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) DecodeFailure(k string, err error) { h.try(func() { h.inner.DecodeFailure(k, err) }) }
func (h *Hooks) ReadError(k string, err error)     { h.try(func() { h.inner.ReadError(k, err) }) }
