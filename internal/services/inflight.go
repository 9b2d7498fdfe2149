package services

import (
	"context"
	"sync"
)

// inflight tracks at most one running call per key. Starting a call for a
// key cancels the call it replaces; only the newest call may commit.
type inflight struct {
	mu    sync.Mutex
	seq   uint64
	slots map[string]*slot
}

type slot struct {
	gen    uint64
	cancel context.CancelFunc
}

func newInflight() *inflight {
	return &inflight{slots: make(map[string]*slot)}
}

// begin registers a new call for key and returns its context and generation.
func (f *inflight) begin(ctx context.Context, key string) (context.Context, uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if prev, ok := f.slots[key]; ok {
		prev.cancel()
	}
	f.seq++
	callCtx, cancel := context.WithCancel(ctx)
	f.slots[key] = &slot{gen: f.seq, cancel: cancel}
	return callCtx, f.seq
}

// current reports whether gen is still the newest call for key.
func (f *inflight) current(key string, gen uint64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.slots[key]
	return ok && s.gen == gen
}

// end releases the slot if gen still owns it.
func (f *inflight) end(key string, gen uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if s, ok := f.slots[key]; ok && s.gen == gen {
		s.cancel()
		delete(f.slots, key)
	}
}
