package ospace

import (
	"fmt"
	"sort"
	"strings"
)

type DumpFlags uint64

const (
	DumpEntryHeaders = DumpFlags(1 << iota)
	DumpValues
	DumpIndices
	DumpStats
	DumpWaiters

	DumpAll = DumpFlags(0xFFFFFFFFFFFFFFFF)

	indentStep = "  "
)

var (
	dumpSep1 = strings.Repeat("=", 80)
	dumpSep2 = strings.Repeat("-", 60)
)

func (f DumpFlags) Contains(v DumpFlags) bool {
	return (f & v) == v
}

// Dump renders the space's current contents for debugging. The output
// format is unstable; do not parse it.
func (sp *Space) Dump(f DumpFlags) string {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	var entries []*entry
	for _, e := range sp.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].typ.String() < entries[j].typ.String()
	})

	var buf strings.Builder
	for _, e := range entries {
		sp.dumpEntry(&buf, f, e)
	}
	return buf.String()
}

func (sp *Space) dumpEntry(w *strings.Builder, f DumpFlags, e *entry) {
	name := e.typ.String()

	if f.Contains(DumpEntryHeaders) {
		fmt.Fprintln(w, dumpSep1)
		fmt.Fprintf(w, "%s (%d values)\n", name, len(e.members))
	}
	if f.Contains(DumpStats) {
		var vk, rk int
		for _, buckets := range e.values {
			vk += len(buckets)
		}
		for _, m := range e.ranges {
			rk += m.Len()
		}
		fmt.Fprintf(w, "%s.stats: next_id = %d, value_index_keys = %d, range_index_keys = %d, waiters = %d\n", name, e.nextID, vk, rk, len(e.waiters))
	}
	if f.Contains(DumpValues) {
		if f.Contains(DumpStats) {
			fmt.Fprintln(w, dumpSep2)
		}
		for _, id := range e.order {
			sv := e.members[id]
			fmt.Fprintf(w, "%s%d = %s\n", indentStep, id, loggableRaw(sv.raw))
		}
	}
	if f.Contains(DumpIndices) {
		var paths []string
		for path := range e.values {
			paths = append(paths, path)
		}
		sort.Strings(paths)
		for _, path := range paths {
			buckets := e.values[path]
			leaves := make([]leaf, 0, len(buckets))
			for lf := range buckets {
				leaves = append(leaves, lf)
			}
			sort.Slice(leaves, func(i, j int) bool { return leaves[i].compare(leaves[j]) < 0 })
			for _, lf := range leaves {
				fmt.Fprintf(w, "%svalue_index[%q][%s] = %v\n", indentStep, path, lf, buckets[lf])
			}
		}
		paths = paths[:0]
		for path := range e.ranges {
			paths = append(paths, path)
		}
		sort.Strings(paths)
		for _, path := range paths {
			itr := e.ranges[path].Iterator()
			itr.First()
			for !itr.Done() {
				lf, ids, _ := itr.Next()
				fmt.Fprintf(w, "%srange_index[%q][%s] = %v\n", indentStep, path, lf, ids)
			}
		}
	}
	if f.Contains(DumpWaiters) {
		for i, wt := range e.waiters {
			fmt.Fprintf(w, "%swaiter[%d] = %s\n", indentStep, i, wt.q.describe())
		}
	}
}

// loggableRaw renders stored msgpack bytes as a human-readable literal.
func loggableRaw(raw []byte) string {
	v, err := looseValue(raw)
	if err != nil {
		return fmt.Sprintf("<%d undecodable bytes>", len(raw))
	}
	return fmt.Sprintf("%v", v)
}

func (q query) describe() string {
	switch q.mode {
	case matchEqual:
		return fmt.Sprintf("equal(%q, %s)", q.path, q.key)
	case matchRange:
		return fmt.Sprintf("range(%q)", q.path)
	default:
		return "any"
	}
}
