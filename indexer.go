package ospace

import (
	"sort"

	"github.com/benbjohnson/immutable"
)

// idList is an ordered set of insertion ids. Ids are assigned
// monotonically and appended on insert, so the slice stays sorted and
// doubles as the insertion-order view.
type idList []uint64

func (ids idList) search(id uint64) (int, bool) {
	i := sort.Search(len(ids), func(i int) bool { return ids[i] >= id })
	return i, i < len(ids) && ids[i] == id
}

func (ids idList) with(id uint64) idList {
	out := make(idList, len(ids), len(ids)+1)
	copy(out, ids)
	return append(out, id)
}

func (ids idList) without(id uint64) idList {
	i, ok := ids.search(id)
	if !ok {
		return ids
	}
	out := make(idList, 0, len(ids)-1)
	out = append(out, ids[:i]...)
	return append(out, ids[i+1:]...)
}

// valueIndex is the equality index: path → (leaf → ordered id set).
// Leaves are canonicalized before they get here, so mathematically equal
// numbers share one bucket regardless of the written Go kind.
type valueIndex map[string]map[leaf]idList

func (vi valueIndex) add(path string, lf leaf, id uint64) {
	buckets := vi[path]
	if buckets == nil {
		buckets = make(map[leaf]idList)
		vi[path] = buckets
	}
	buckets[lf] = buckets[lf].with(id)
}

func (vi valueIndex) remove(path string, lf leaf, id uint64) {
	buckets := vi[path]
	if buckets == nil {
		return
	}
	ids := buckets[lf].without(id)
	if len(ids) == 0 {
		delete(buckets, lf)
	} else {
		buckets[lf] = ids
	}
}

func (vi valueIndex) lookup(path string, lf leaf) idList {
	return vi[path][lf]
}

// rangeIndex maps each numeric path to a persistent sorted map from leaf
// value to ordered id set, supporting bounded in-order enumeration.
type rangeIndex map[string]*immutable.SortedMap[leaf, idList]

func (ri rangeIndex) add(path string, lf leaf, id uint64) {
	m := ri[path]
	if m == nil {
		m = immutable.NewSortedMap[leaf, idList](leafComparer{})
	}
	ids, _ := m.Get(lf)
	ri[path] = m.Set(lf, ids.with(id))
}

func (ri rangeIndex) remove(path string, lf leaf, id uint64) {
	m := ri[path]
	if m == nil {
		return
	}
	ids, ok := m.Get(lf)
	if !ok {
		return
	}
	ids = ids.without(id)
	if len(ids) == 0 {
		ri[path] = m.Delete(lf)
	} else {
		ri[path] = m.Set(lf, ids)
	}
}

// enumerate walks the path's sorted map over the bounds of rb, ascending
// by leaf value, calling fn with each id bucket until fn returns false.
func (ri rangeIndex) enumerate(path string, rb rangeBounds, fn func(lf leaf, ids idList) bool) {
	m := ri[path]
	if m == nil || rb.empty {
		return
	}
	itr := m.Iterator()
	if rb.lo.valid() {
		itr.Seek(rb.lo)
	} else {
		itr.First()
	}
	for !itr.Done() {
		lf, ids, _ := itr.Next()
		if !rb.admits(lf) {
			if rb.above(lf) {
				return
			}
			continue // excluded lower bound key
		}
		if !fn(lf, ids) {
			return
		}
	}
}
