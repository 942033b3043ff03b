package ospace

// Write deposits a value into the space. The value is encoded before the
// mutation lock is taken; an encoding failure leaves the space
// untouched. On success the value is stored, indexed, and offered to
// every waiter whose predicate admits it.
//
// The Entry is selected by the type parameter, not the dynamic type of
// v, so writes through interface-typed code still land in the Entry of
// the static type.
func Write[T any](sp *Space, v T) error {
	raw, t, err := encodeObject(v)
	if err != nil {
		return err
	}

	sp.mu.Lock()
	defer sp.mu.Unlock()
	if sp.closed {
		return ErrClosed
	}
	e := sp.entryFor(typeOf[T]())
	id := e.insert(storedValue{raw: raw, tree: t})
	sp.WriteCount.Add(1)
	sp.tracef("ospace: write %v id=%d", e.typ, id)
	e.notifyWaiters(sp, t)
	return nil
}
