package ospace

import "context"

// waiter is a suspended blocking Read or Take: a predicate plus a
// signalling channel. Waiters live in their Entry's list in arrival
// order and keep their position across wakeups that lose the race, so
// servicing stays fair within a predicate class.
type waiter struct {
	q  query
	ch chan struct{}
}

// notifyWaiters probes the waiter set with a freshly written tree and
// signals, in arrival order, every waiter whose predicate admits it.
// The channel holds one pending signal; a waiter that is already
// signalled is not signalled again. Woken waiters re-evaluate under the
// mutation lock, so at most one of them can win a take. Must be called
// with the space lock held.
func (e *entry) notifyWaiters(sp *Space, t tree) {
	for _, w := range e.waiters {
		if w.q.matches(t) {
			select {
			case w.ch <- struct{}{}:
				sp.WakeCount.Add(1)
			default:
			}
		}
	}
}

// addWaiter registers a waiter at the back of the arrival queue. Must be
// called with the space lock held.
func (e *entry) addWaiter(sp *Space, q query) *waiter {
	w := &waiter{q: q, ch: make(chan struct{}, 1)}
	e.waiters = append(e.waiters, w)
	sp.WaiterCount.Add(1)
	return w
}

// removeWaiter unregisters w whether it completed or was cancelled.
// Must be called with the space lock held.
func (e *entry) removeWaiter(sp *Space, w *waiter) {
	for i, cur := range e.waiters {
		if cur == w {
			e.waiters = append(e.waiters[:i], e.waiters[i+1:]...)
			sp.WaiterCount.Add(-1)
			return
		}
	}
}

// await blocks until the waiter is signalled, the context ends, or the
// space closes. Called with the space lock held, which it releases while
// waiting; returns with the lock reacquired and nil, or with the lock
// released and the terminal error.
func (sp *Space) await(ctx context.Context, e *entry, w *waiter) error {
	sp.mu.Unlock()
	var err error
	select {
	case <-w.ch:
	case <-ctx.Done():
		err = ctx.Err()
	case <-sp.done:
		err = ErrClosed
	}
	sp.mu.Lock()
	if err != nil {
		e.removeWaiter(sp, w)
		sp.mu.Unlock()
		return err
	}
	return nil
}
