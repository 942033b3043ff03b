package ospace

import "context"

// TryRead returns a copy of some stored value of type T, leaving it in
// the space, or reports that none is present. When several values are
// stored, the earliest-written one is returned.
func TryRead[T any](sp *Space) (T, bool) {
	sp.ReadCount.Add(1)
	return tryOne[T](sp, anyQuery(), false)
}

// Read blocks until a value of type T is present, then returns a copy of
// the earliest-written one without removing it. Returns ctx.Err on
// cancellation and ErrClosed after Space.Close.
func Read[T any](ctx context.Context, sp *Space) (T, error) {
	sp.ReadCount.Add(1)
	return blockOne[T](ctx, sp, anyQuery(), false)
}

// ReadAll returns copies of all currently stored values of type T in
// insertion order. The set is snapshotted atomically: writes racing with
// the call do not appear in the result.
func ReadAll[T any](sp *Space) []T {
	sp.ReadCount.Add(1)
	return bulk[T](sp, anyQuery(), false)
}

// TryReadByValue is TryRead narrowed to values whose leaf at the dotted
// field path equals key. A path that does not resolve to a leaf, or a
// key of an unsupported kind, matches nothing.
func TryReadByValue[T any](sp *Space, path string, key any) (T, bool) {
	sp.ReadCount.Add(1)
	return tryOne[T](sp, equalQuery(path, key), false)
}

// ReadByValue blocks until some value of type T carries the given leaf
// at path, then returns a copy of the earliest-written match.
func ReadByValue[T any](ctx context.Context, sp *Space, path string, key any) (T, error) {
	sp.ReadCount.Add(1)
	return blockOne[T](ctx, sp, equalQuery(path, key), false)
}

// ReadAllByValue returns copies of all stored values of type T whose
// leaf at path equals key, in insertion order.
func ReadAllByValue[T any](sp *Space, path string, key any) []T {
	sp.ReadCount.Add(1)
	return bulk[T](sp, equalQuery(path, key), false)
}

// TryReadByRange is TryRead narrowed to values whose numeric leaf at
// path falls within rng. Range queries never match non-numeric leaves.
func TryReadByRange[T any](sp *Space, path string, rng Range) (T, bool) {
	sp.ReadCount.Add(1)
	return tryOne[T](sp, rangeQuery(path, rng), false)
}

// ReadByRange blocks until some value of type T carries a numeric leaf
// at path within rng, then returns a copy of the earliest-written match.
func ReadByRange[T any](ctx context.Context, sp *Space, path string, rng Range) (T, error) {
	sp.ReadCount.Add(1)
	return blockOne[T](ctx, sp, rangeQuery(path, rng), false)
}

// ReadAllByRange returns copies of all stored values of type T whose
// numeric leaf at path falls within rng, ordered by leaf value
// ascending, ties in insertion order.
func ReadAllByRange[T any](sp *Space, path string, rng Range) []T {
	sp.ReadCount.Add(1)
	return bulk[T](sp, rangeQuery(path, rng), false)
}
