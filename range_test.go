package ospace

import (
	"math"
	"testing"
)

func TestRangeHalfOpenIntegers(t *testing.T) {
	sp := setup(t)
	for i := int64(1); i <= 100; i++ {
		ensure(t, Write(sp, i))
	}

	want := []int64{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}
	deepEqual(t, ReadAllByRange[int64](sp, "", RangeIE(10, 20)), want)

	// lower inclusive, upper exclusive
	got, ok := TryReadByRange[int64](sp, "", RangeIE(10, 20))
	isTrue(t, ok)
	deepEqual(t, got, 10)
	_, ok = TryReadByRange[int64](sp, "", RangeIE(101, 200))
	isFalse(t, ok)
}

func TestRangeInclusivityVariants(t *testing.T) {
	sp := setup(t)
	for i := int64(1); i <= 5; i++ {
		ensure(t, Write(sp, i))
	}

	deepEqual(t, ReadAllByRange[int64](sp, "", RangeII(2, 4)), []int64{2, 3, 4})
	deepEqual(t, ReadAllByRange[int64](sp, "", RangeEE(2, 4)), []int64{3})
	deepEqual(t, ReadAllByRange[int64](sp, "", RangeEI(2, 4)), []int64{3, 4})
	deepEqual(t, ReadAllByRange[int64](sp, "", RangeIO(4)), []int64{4, 5})
	deepEqual(t, ReadAllByRange[int64](sp, "", RangeEO(4)), []int64{5})
	deepEqual(t, ReadAllByRange[int64](sp, "", RangeOI(2)), []int64{1, 2})
	deepEqual(t, ReadAllByRange[int64](sp, "", RangeOE(2)), []int64{1})
	deepEqual(t, ReadAllByRange[int64](sp, "", RangeOO()), []int64{1, 2, 3, 4, 5})
}

func TestRangeTakeRemoves(t *testing.T) {
	sp := setup(t)
	ensure(t, Write[int64](sp, 3))
	ensure(t, Write[int64](sp, 5))

	got, ok := TryTakeByRange[int64](sp, "", RangeIE(2, 4))
	isTrue(t, ok)
	deepEqual(t, got, 3)
	got, ok = TryTakeByRange[int64](sp, "", RangeIO(2))
	isTrue(t, ok)
	deepEqual(t, got, 5)
	deepEqual(t, len(ReadAll[int64](sp)), 0)
}

func TestRangeTakeAll(t *testing.T) {
	sp := setup(t)
	for i := int64(1); i <= 10; i++ {
		ensure(t, Write(sp, i))
	}

	deepEqual(t, TakeAllByRange[int64](sp, "", RangeIE(3, 7)), []int64{3, 4, 5, 6})
	deepEqual(t, ReadAll[int64](sp), []int64{1, 2, 7, 8, 9, 10})
}

func TestRangeOnFields(t *testing.T) {
	sp := setup(t)
	ensure(t, Write(sp, Task{Start: 5, End: 10}))
	ensure(t, Write(sp, Task{Start: 15, End: 20}))
	ensure(t, Write(sp, Task{Start: 25, End: 30}))

	got := ReadAllByRange[Task](sp, "start", RangeIE(10, 30))
	deepEqual(t, len(got), 2)
	deepEqual(t, got[0].Start, 15)
	deepEqual(t, got[1].Start, 25)

	// float bounds against integer leaves
	got = ReadAllByRange[Task](sp, "start", RangeIE(4.5, 15.5))
	deepEqual(t, len(got), 2)
}

func TestRangeMixedNumericKinds(t *testing.T) {
	sp := setup(t)
	ensure(t, Write(sp, Reading{Sensor: "a", Value: 1.5}))
	ensure(t, Write(sp, Reading{Sensor: "b", Value: 2}))
	ensure(t, Write(sp, Reading{Sensor: "c", Value: 2.5}))

	got := ReadAllByRange[Reading](sp, "value", RangeIE(2, 3))
	deepEqual(t, len(got), 2)
	deepEqual(t, got[0].Sensor, "b")
	deepEqual(t, got[1].Sensor, "c")
}

func TestRangeNonNumeric(t *testing.T) {
	sp := setup(t)
	ensure(t, Write(sp, Job{ID: 1, Meta: JobMeta{Owner: "ann"}}))

	// range queries on string leaves return no candidates
	deepEqual(t, len(ReadAllByRange[Job](sp, "meta.owner", RangeIE(0, 10))), 0)
	// and string bounds make an empty range
	deepEqual(t, len(ReadAllByRange[Job](sp, "id", RangeIE("a", "z"))), 0)
	_, ok := TryReadByRange[Job](sp, "id", RangeIE("a", "z"))
	isFalse(t, ok)
}

func TestRangeNaN(t *testing.T) {
	sp := setup(t)
	ensure(t, Write(sp, Reading{Sensor: "n", Value: math.NaN()}))
	ensure(t, Write(sp, Reading{Sensor: "x", Value: 0.5}))

	// NaN never matches equality or range queries
	_, ok := TryReadByValue[Reading](sp, "value", math.NaN())
	isFalse(t, ok)
	got := ReadAllByRange[Reading](sp, "value", RangeIE(0.0, 1.0))
	deepEqual(t, len(got), 1)
	deepEqual(t, got[0].Sensor, "x")
	// NaN bounds match nothing
	deepEqual(t, len(ReadAllByRange[Reading](sp, "value", RangeIE(math.NaN(), 1.0))), 0)

	// but predicate-free reads still see the value
	deepEqual(t, len(ReadAll[Reading](sp)), 2)
}
