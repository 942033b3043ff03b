/*
Package ospace implements an object space: a process-wide, thread-safe
associative store of heterogeneously-typed values that doubles as a
coordination primitive between concurrent workers, in the tuple-space
tradition.

Producers deposit structured values with Write; consumers retrieve them
by type, optionally narrowed by the value or numeric range of a named
field, with atomic take semantics and blocking variants that suspend
until a matching value appears.

We implement:

1. A per-type Entry owning all stored values of one Go type, keyed by
nominal type identity. Two distinct types never share an Entry, even if
their encoded shapes are identical.

2. An equality index per Entry, mapping (field path, leaf value) to the
ids of stored values carrying that exact leaf.

3. A range index per Entry, an ordered map per numeric field path
supporting bounded in-order enumeration.

4. A waiter set: blocking Read/Take calls register a predicate and
suspend; every Write wakes the waiters whose type and predicate admit
the new value, in arrival order.

# Technical Details

**Encoding.**
Values are marshaled to msgpack on Write and the bytes are kept verbatim;
reads and takes unmarshal them back into the caller's type. For indexing,
the msgpack bytes are additionally decoded into a canonical tree whose
leaves are int64, uint64, float64, bool, string or nil. Sequence
interiors are opaque: the query layer never addresses array elements.

**Field paths.**
A path is the dotted sequence of msgpack field names from the root to a
primitive leaf ("" addresses a bare primitive written as the whole
value, "job.id" addresses a nested field). Paths that do not resolve to
a leaf simply match nothing.

**Insertion ids.**
Each Entry assigns monotonically increasing ids. When several stored
values match a single-result read or take, the one with the lowest id
wins, so no value is perpetually skipped in favor of newer ones.

**Numeric comparison.**
Equality and ordering compare int64, uint64 and float64 leaves by
mathematical value; integral floats index identically to the equal
integer. NaN leaves are never indexed and never match any query, though
values containing them are still stored and returned by predicate-free
reads.

**Blocking and cancellation.**
Blocking variants accept a context; cancellation or deadline expiry
returns the context's error. Closing the space releases every waiter
with ErrClosed. There is no persistence: the space is volatile and
single-process.
*/
package ospace
