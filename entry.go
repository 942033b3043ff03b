package ospace

import (
	"math"
	"reflect"
)

// storedValue pairs the verbatim msgpack bytes of a stored value with
// its canonical tree. Bytes feed decode; the tree feeds the indices and
// waiter predicates.
type storedValue struct {
	raw  []byte
	tree tree
}

// entry owns every stored value of a single user type plus the indices
// over them. All access is serialized by the owning Space's mutation
// lock.
type entry struct {
	typ     reflect.Type
	nextID  uint64
	members map[uint64]storedValue
	order   idList // present ids, ascending = insertion order
	values  valueIndex
	ranges  rangeIndex
	waiters []*waiter
}

func newEntry(typ reflect.Type) *entry {
	return &entry{
		typ:     typ,
		nextID:  1,
		members: make(map[uint64]storedValue),
		values:  make(valueIndex),
		ranges:  make(rangeIndex),
	}
}

// insert assigns the next id, stores the value and indexes every
// addressable leaf. NaN leaves are skipped by both indices: they can
// never match a query, and keeping them out preserves the invariant
// that whatever an index holds, a query can find.
func (e *entry) insert(sv storedValue) uint64 {
	id := e.nextID
	e.nextID++
	e.members[id] = sv
	e.order = append(e.order, id)
	for _, lp := range sv.tree.leafPaths() {
		if lp.leaf.isNaN() {
			continue
		}
		e.values.add(lp.path, lp.leaf, id)
		if lp.leaf.isNumeric() {
			e.ranges.add(lp.path, lp.leaf, id)
		}
	}
	return id
}

// remove deletes the id from members and from every index bucket its
// leaves occupy. Removing an absent id is a no-op.
func (e *entry) remove(id uint64) {
	sv, ok := e.members[id]
	if !ok {
		return
	}
	delete(e.members, id)
	e.order = e.order.without(id)
	for _, lp := range sv.tree.leafPaths() {
		if lp.leaf.isNaN() {
			continue
		}
		e.values.remove(lp.path, lp.leaf, id)
		if lp.leaf.isNumeric() {
			e.ranges.remove(lp.path, lp.leaf, id)
		}
	}
}

func (e *entry) fetch(id uint64) (storedValue, bool) {
	sv, ok := e.members[id]
	return sv, ok
}

func (e *entry) candidatesAll() idList {
	return e.order
}

func (e *entry) candidatesEqual(path string, key leaf) idList {
	return e.values.lookup(path, key)
}

// candidatesRange returns matching ids ordered by leaf value ascending,
// ties broken by insertion order.
func (e *entry) candidatesRange(path string, rb rangeBounds) idList {
	var out idList
	e.ranges.enumerate(path, rb, func(_ leaf, ids idList) bool {
		out = append(out, ids...)
		return true
	})
	return out
}

// candidates returns the ids admitted by q in the order the bulk
// operations hand them out: insertion order for any/equality queries,
// value-ascending for range queries.
func (e *entry) candidates(q query) idList {
	switch q.mode {
	case matchEqual:
		return e.candidatesEqual(q.path, q.key)
	case matchRange:
		return e.candidatesRange(q.path, q.rng)
	default:
		return e.candidatesAll()
	}
}

// first returns the lowest present id admitted by q: the value written
// earliest wins, so no stored value is perpetually skipped in favor of
// newer matches.
func (e *entry) first(q query) (uint64, bool) {
	return e.nextAfter(q, 0)
}

// nextAfter returns the lowest admitted id strictly greater than prev.
// The retrieval loop uses it to step past candidates that fail to
// decode.
func (e *entry) nextAfter(q query, prev uint64) (uint64, bool) {
	switch q.mode {
	case matchEqual:
		ids := e.candidatesEqual(q.path, q.key)
		return firstAbove(ids, prev)
	case matchRange:
		best := uint64(math.MaxUint64)
		found := false
		e.ranges.enumerate(q.path, q.rng, func(_ leaf, ids idList) bool {
			if id, ok := firstAbove(ids, prev); ok && id < best {
				best = id
				found = true
			}
			return true
		})
		return best, found
	default:
		return firstAbove(e.order, prev)
	}
}

func firstAbove(ids idList, prev uint64) (uint64, bool) {
	i, ok := ids.search(prev)
	if ok {
		i++
	}
	if i >= len(ids) {
		return 0, false
	}
	return ids[i], true
}
