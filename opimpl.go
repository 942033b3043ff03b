package ospace

import "context"

// retrieveLocked finds the earliest-written value admitted by q, decodes
// it, and (for takes) removes it, all under the mutation lock. A
// candidate that fails to decode is logged and skipped, never removed:
// decode happens before the removal commits.
func retrieveLocked[T any](sp *Space, e *entry, q query, remove bool) (T, bool) {
	var zero T
	id, ok := e.first(q)
	for ok {
		sv, _ := e.fetch(id)
		var obj T
		if err := decodeObject(sv.raw, &obj); err != nil {
			sp.logUndecodable(e.typ, err)
			id, ok = e.nextAfter(q, id)
			continue
		}
		if remove {
			e.remove(id)
			sp.tracef("ospace: take %v id=%d", e.typ, id)
		}
		return obj, true
	}
	return zero, false
}

// tryOne is the non-blocking single-result core shared by the Try
// operations.
func tryOne[T any](sp *Space, q query, remove bool) (T, bool) {
	var zero T
	sp.mu.Lock()
	defer sp.mu.Unlock()
	e := sp.existingEntry(typeOf[T]())
	if e == nil {
		return zero, false
	}
	return retrieveLocked[T](sp, e, q, remove)
}

// blockOne is the blocking single-result core. It registers a waiter
// when the predicate has no current match and re-evaluates under the
// lock on every wakeup; a woken waiter that loses the race to another
// taker goes back to sleep without losing its place in the arrival
// queue.
func blockOne[T any](ctx context.Context, sp *Space, q query, remove bool) (T, error) {
	var zero T
	sp.mu.Lock()
	e := sp.entryFor(typeOf[T]())
	var w *waiter
	for {
		if sp.closed {
			if w != nil {
				e.removeWaiter(sp, w)
			}
			sp.mu.Unlock()
			return zero, ErrClosed
		}
		if obj, ok := retrieveLocked[T](sp, e, q, remove); ok {
			if w != nil {
				e.removeWaiter(sp, w)
			}
			sp.mu.Unlock()
			return obj, nil
		}
		if w == nil {
			w = e.addWaiter(sp, q)
		}
		if err := sp.await(ctx, e, w); err != nil {
			return zero, err
		}
	}
}

// bulk snapshots the set of matching ids under the mutation lock and
// decodes them before returning, so the result is consistent and finite:
// later writes do not appear. For takes, exactly the decoded ids are
// removed, atomically with the snapshot.
func bulk[T any](sp *Space, q query, remove bool) []T {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	e := sp.existingEntry(typeOf[T]())
	if e == nil {
		return nil
	}
	ids := e.candidates(q)
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		sv, ok := e.fetch(id)
		if !ok {
			continue
		}
		var obj T
		if err := decodeObject(sv.raw, &obj); err != nil {
			sp.logUndecodable(e.typ, err)
			continue
		}
		if remove {
			e.remove(id)
		}
		out = append(out, obj)
	}
	if remove && len(out) > 0 {
		sp.tracef("ospace: take_all %v n=%d", e.typ, len(out))
	}
	return out
}
