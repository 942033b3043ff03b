package ospace

import "context"

// TryTake removes and returns some stored value of type T, or reports
// that none is present. When several values are stored, the
// earliest-written one is taken. Ownership transfers to the caller: no
// subsequent operation will see the taken value.
func TryTake[T any](sp *Space) (T, bool) {
	sp.TakeCount.Add(1)
	return tryOne[T](sp, anyQuery(), true)
}

// Take blocks until a value of type T is present, then atomically
// removes and returns the earliest-written one. When several callers
// block on the same predicate, each written value is delivered to
// exactly one of them.
func Take[T any](ctx context.Context, sp *Space) (T, error) {
	sp.TakeCount.Add(1)
	return blockOne[T](ctx, sp, anyQuery(), true)
}

// TakeAll atomically removes and returns all currently stored values of
// type T in insertion order.
func TakeAll[T any](sp *Space) []T {
	sp.TakeCount.Add(1)
	return bulk[T](sp, anyQuery(), true)
}

// TryTakeByValue is TryTake narrowed to values whose leaf at the dotted
// field path equals key.
func TryTakeByValue[T any](sp *Space, path string, key any) (T, bool) {
	sp.TakeCount.Add(1)
	return tryOne[T](sp, equalQuery(path, key), true)
}

// TakeByValue blocks until some value of type T carries the given leaf
// at path, then atomically removes and returns the earliest-written
// match.
func TakeByValue[T any](ctx context.Context, sp *Space, path string, key any) (T, error) {
	sp.TakeCount.Add(1)
	return blockOne[T](ctx, sp, equalQuery(path, key), true)
}

// TakeAllByValue atomically removes and returns all stored values of
// type T whose leaf at path equals key, in insertion order.
func TakeAllByValue[T any](sp *Space, path string, key any) []T {
	sp.TakeCount.Add(1)
	return bulk[T](sp, equalQuery(path, key), true)
}

// TryTakeByRange is TryTake narrowed to values whose numeric leaf at
// path falls within rng.
func TryTakeByRange[T any](sp *Space, path string, rng Range) (T, bool) {
	sp.TakeCount.Add(1)
	return tryOne[T](sp, rangeQuery(path, rng), true)
}

// TakeByRange blocks until some value of type T carries a numeric leaf
// at path within rng, then atomically removes and returns the
// earliest-written match.
func TakeByRange[T any](ctx context.Context, sp *Space, path string, rng Range) (T, error) {
	sp.TakeCount.Add(1)
	return blockOne[T](ctx, sp, rangeQuery(path, rng), true)
}

// TakeAllByRange atomically removes and returns all stored values of
// type T whose numeric leaf at path falls within rng, ordered by leaf
// value ascending, ties in insertion order.
func TakeAllByRange[T any](sp *Space, path string, rng Range) []T {
	sp.TakeCount.Add(1)
	return bulk[T](sp, rangeQuery(path, rng), true)
}
