package service

import "sync/atomic"

// latch guards a screen operation against double submission while a call is
// outstanding. Advisory only: there is exactly one active UI context, so
// this is not a backend lock.
type latch struct {
	busy atomic.Bool
}

func (l *latch) tryAcquire() bool {
	return l.busy.CompareAndSwap(false, true)
}

func (l *latch) release() {
	l.busy.Store(false)
}
