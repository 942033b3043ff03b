package ospace

import (
	"strings"
	"testing"
)

func TestSpaceStats(t *testing.T) {
	sp := setup(t)
	deepEqual(t, sp.Stats(), SpaceStats{})

	ensure(t, Write(sp, Task{Start: 1}))
	ensure(t, Write(sp, Task{Start: 2}))
	ensure(t, Write[int64](sp, 5))

	deepEqual(t, sp.Stats(), SpaceStats{Types: 2, Values: 3})

	es := EntryStatsOf[Task](sp)
	deepEqual(t, es.Values, 2)
	// finished=false, start∈{1,2}, end=0 → 4 distinct equality keys
	deepEqual(t, es.ValueIndexKeys, 4)
	// start∈{1,2} plus end=0 → 3 distinct range keys
	deepEqual(t, es.RangeIndexKeys, 3)

	deepEqual(t, EntryStatsOf[Job](sp), EntryStats{})

	TakeAll[Task](sp)
	deepEqual(t, EntryStatsOf[Task](sp).Values, 0)
	deepEqual(t, EntryStatsOf[Task](sp).ValueIndexKeys, 0)
	deepEqual(t, EntryStatsOf[Task](sp).RangeIndexKeys, 0)
}

func TestOpCounters(t *testing.T) {
	sp := setup(t)
	ensure(t, Write[int64](sp, 1))
	ensure(t, Write[int64](sp, 2))
	TryRead[int64](sp)
	ReadAll[int64](sp)
	TryTake[int64](sp)

	deepEqual(t, sp.WriteCount.Load(), 2)
	deepEqual(t, sp.ReadCount.Load(), 2)
	deepEqual(t, sp.TakeCount.Load(), 1)
}

func TestDump(t *testing.T) {
	sp := setup(t)
	ensure(t, Write(sp, Task{Finished: true, Start: 3, End: 9}))
	ensure(t, Write[int64](sp, 7))

	out := sp.Dump(DumpAll)
	for _, want := range []string{
		"ospace.Task (1 values)",
		"int64 (1 values)",
		`value_index["finished"][true]`,
		`range_index["start"][3]`,
		`value_index[""][7]`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("** dump is missing %q:\n%s", want, out)
		}
	}

	deepEqual(t, sp.Dump(0), "")
}
